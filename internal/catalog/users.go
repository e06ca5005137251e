// Package catalog holds the static read-only datasets bundled with the
// application: users, psychologists, quiz questions, learning activities,
// badges and child profiles. Everything here is loaded once and never
// mutated; it is configuration, not runtime state.
package catalog

import (
	"strings"

	"github.com/readle-app/readle/internal/services"
)

var users = []*services.UserRecord{
	{
		ID:       "u-001",
		Name:     "Kasun Perera",
		Email:    "parent@readle.com",
		Password: "parent123",
		Role:     services.RoleParent,
		Preferences: services.Preferences{
			Language:      "en",
			Notifications: true,
		},
	},
	{
		ID:       "u-002",
		Name:     "Shenaya Perera",
		Email:    "child@readle.com",
		Password: "child123",
		Role:     services.RoleChild,
		Preferences: services.Preferences{
			Language:      "en",
			Notifications: false,
		},
	},
	{
		ID:       "u-003",
		Name:     "Maya Fernando",
		Email:    "admin@readle.com",
		Password: "admin123",
		Role:     services.RoleParent,
		Preferences: services.Preferences{
			Language:      "es",
			Notifications: true,
		},
		IsAdmin: true,
	},
}

// UserDirectory implements services.UserDirectory over the bundled dataset.
type UserDirectory struct{}

func NewUserDirectory() *UserDirectory { return &UserDirectory{} }

// FindByEmail matches case-insensitively. Emails are unique in the dataset,
// so the first hit in directory order is the only one.
func (d *UserDirectory) FindByEmail(email string) *services.UserRecord {
	for _, u := range users {
		if strings.EqualFold(u.Email, email) {
			return u
		}
	}
	return nil
}

var _ services.UserDirectory = (*UserDirectory)(nil)
