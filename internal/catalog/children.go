package catalog

import "github.com/readle-app/readle/internal/services"

var children = []*services.ChildProfile{
	{
		ID:            "ch-001",
		Name:          "Shenaya",
		Age:           7,
		Level:         1,
		Coins:         50,
		ReadingScore:  68,
		WeeklyMinutes: []int{20, 35, 15, 40, 25, 30, 45},
		Accuracy:      0.82,
	},
	{
		ID:            "ch-002",
		Name:          "Dineth",
		Age:           9,
		Level:         3,
		Coins:         210,
		ReadingScore:  81,
		WeeklyMinutes: []int{30, 30, 45, 20, 50, 35, 40},
		Accuracy:      0.91,
	},
}

func Children() []*services.ChildProfile {
	return append([]*services.ChildProfile(nil), children...)
}

func GetChild(id string) *services.ChildProfile {
	for _, c := range children {
		if c.ID == id {
			return c
		}
	}
	return nil
}
