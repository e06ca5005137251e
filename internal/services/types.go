package services

import "time"

// Role controls which chrome and navigation gating applies to a visitor.
type Role string

const (
	RolePublic Role = "public"
	RoleParent Role = "parent"
	RoleChild  Role = "child"
	// RoleAdmin is only ever derived from the /admin path heuristic; no
	// directory record carries it.
	RoleAdmin Role = "admin"
)

func ValidRole(r Role) bool {
	switch r {
	case RolePublic, RoleParent, RoleChild:
		return true
	}
	return false
}

type Preferences struct {
	Language      string `json:"language"`
	Notifications bool   `json:"notifications"`
}

// UserRecord is one entry of the bundled user directory. Read-only after load.
type UserRecord struct {
	ID          string      `json:"id"`
	Name        string      `json:"name"`
	Email       string      `json:"email"`
	Password    string      `json:"password"`
	Role        Role        `json:"role"`
	Preferences Preferences `json:"preferences"`
	IsAdmin     bool        `json:"isAdmin,omitempty"`
}

// Session is an authenticated identity. It deliberately has no password field,
// so a serialized session can never leak one.
type Session struct {
	ID          string      `json:"id"`
	Name        string      `json:"name"`
	Email       string      `json:"email"`
	Role        Role        `json:"role"`
	Preferences Preferences `json:"preferences"`
	IsAdmin     bool        `json:"isAdmin,omitempty"`
	CreatedAt   time.Time   `json:"created_at"`
}

// Psychologist is one entry of the bundled psychologist directory.
type Psychologist struct {
	ID           string   `json:"id"`
	Name         string   `json:"name"`
	Specialties  []string `json:"specialties"`
	Availability string   `json:"availability"`
	Rating       float64  `json:"rating"`
	Reviews      int      `json:"reviews"`
	Languages    []string `json:"languages"`
	Bio          string   `json:"bio"`
	ImageURL     string   `json:"image_url"`
}

// QuizQuestion is one step of the fixed screening question set.
type QuizQuestion struct {
	ID       int      `json:"id"`
	Question string   `json:"question"`
	Options  []string `json:"options"`
}

// QuizState is the in-progress state of one quiz session.
type QuizState struct {
	ID          string         `json:"id"`
	Answers     map[int]string `json:"answers"`
	CurrentStep int            `json:"current_step"`
	StartedAt   time.Time      `json:"started_at"`
}

type ActivityQuestion struct {
	Question      string   `json:"question"`
	Options       []string `json:"options"`
	CorrectAnswer string   `json:"correct_answer"`
}

// Activity is one learning activity of the child dashboard.
type Activity struct {
	ID              string             `json:"id"`
	Title           string             `json:"title"`
	Type            string             `json:"type"`
	Difficulty      string             `json:"difficulty"`
	Description     string             `json:"description"`
	ThumbnailURL    string             `json:"thumbnail_url,omitempty"`
	DurationMinutes int                `json:"duration_minutes,omitempty"`
	Questions       []ActivityQuestion `json:"questions,omitempty"`
}

// Badge is an earned achievement shown on the child dashboard.
type Badge struct {
	ID          string    `json:"id"`
	Title       string    `json:"title"`
	Category    string    `json:"category"`
	Icon        string    `json:"icon"`
	EarnedOn    time.Time `json:"earned_on"`
	Description string    `json:"description"`
	Level       int       `json:"level,omitempty"`
}

// ChildProfile summarizes one child for the parent dashboard.
type ChildProfile struct {
	ID            string  `json:"id"`
	Name          string  `json:"name"`
	Age           int     `json:"age"`
	Level         int     `json:"level"`
	Coins         int     `json:"coins"`
	ReadingScore  int     `json:"reading_score"`
	WeeklyMinutes []int   `json:"weekly_minutes"`
	Accuracy      float64 `json:"accuracy"`
}

// BookingRequest records a consultation request against a psychologist.
type BookingRequest struct {
	ID             string    `json:"id"`
	PsychologistID string    `json:"psychologist_id"`
	ParentName     string    `json:"parent_name"`
	Email          string    `json:"email"`
	PreferredSlot  string    `json:"preferred_slot"`
	Note           string    `json:"note,omitempty"`
	CreatedAt      time.Time `json:"created_at"`
}
