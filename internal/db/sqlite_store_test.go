package db

import (
	"database/sql"
	"testing"
	"time"

	_ "github.com/mattn/go-sqlite3"

	"github.com/readle-app/readle/internal/services"
)

func newTestStore(t *testing.T) *SQLiteStore {
	t.Helper()
	sqlDB, err := sql.Open("sqlite3", ":memory:")
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	t.Cleanup(func() { _ = sqlDB.Close() })
	// The in-memory driver drops state when the pool opens a second
	// connection.
	sqlDB.SetMaxOpenConns(1)
	if err := RunMigrations(sqlDB, ""); err != nil {
		t.Fatalf("run migrations: %v", err)
	}
	store, err := NewSQLiteStore(sqlDB, nil)
	if err != nil {
		t.Fatalf("new store: %v", err)
	}
	return store
}

func TestSessionRoundTrip(t *testing.T) {
	store := newTestStore(t)

	sess := &services.Session{
		ID:        "u-001",
		Name:      "Kasun Perera",
		Email:     "parent@readle.com",
		Role:      services.RoleParent,
		CreatedAt: time.Unix(0, 0).UTC(),
	}
	if err := store.SaveSession(sess); err != nil {
		t.Fatalf("SaveSession returned error: %v", err)
	}

	got, err := store.GetSession("u-001")
	if err != nil {
		t.Fatalf("GetSession returned error: %v", err)
	}
	if got == nil || got.Name != "Kasun Perera" || got.Role != services.RoleParent {
		t.Fatalf("unexpected session: %+v", got)
	}

	// Saving again overwrites in place.
	sess.Role = services.RoleChild
	if err := store.SaveSession(sess); err != nil {
		t.Fatalf("SaveSession returned error: %v", err)
	}
	got, _ = store.GetSession("u-001")
	if got.Role != services.RoleChild {
		t.Fatalf("expected overwrite, got %q", got.Role)
	}

	if err := store.DeleteSession("u-001"); err != nil {
		t.Fatalf("DeleteSession returned error: %v", err)
	}
	got, err = store.GetSession("u-001")
	if err != nil || got != nil {
		t.Fatalf("expected no session after delete, got %v err %v", got, err)
	}
	// Deleting again is not an error.
	if err := store.DeleteSession("u-001"); err != nil {
		t.Fatalf("second delete must succeed: %v", err)
	}
}

func TestCorruptSessionReadsAsLoggedOut(t *testing.T) {
	store := newTestStore(t)

	_, err := store.db.Exec(
		`INSERT INTO sessions (id, payload, updated_at) VALUES (?, ?, ?)`,
		"u-bad", "{not json", time.Now())
	if err != nil {
		t.Fatalf("seed corrupt row: %v", err)
	}

	got, err := store.GetSession("u-bad")
	if err != nil {
		t.Fatalf("corrupt payload must not surface an error: %v", err)
	}
	if got != nil {
		t.Fatalf("corrupt payload must read as absent, got %+v", got)
	}
}

func TestQuizStateRoundTrip(t *testing.T) {
	store := newTestStore(t)

	st := &services.QuizState{
		ID:          "quiz-1",
		Answers:     map[int]string{1: "Often", 3: "Sometimes"},
		CurrentStep: 4,
		StartedAt:   time.Unix(0, 0).UTC(),
	}
	if err := store.SaveQuizState(st); err != nil {
		t.Fatalf("SaveQuizState returned error: %v", err)
	}

	got, err := store.GetQuizState("quiz-1")
	if err != nil {
		t.Fatalf("GetQuizState returned error: %v", err)
	}
	if got.CurrentStep != 4 || got.Answers[1] != "Often" || got.Answers[3] != "Sometimes" {
		t.Fatalf("unexpected quiz state: %+v", got)
	}

	missing, err := store.GetQuizState("nope")
	if err != nil || missing != nil {
		t.Fatalf("missing state must read as nil, got %v err %v", missing, err)
	}
}

func TestBookingsFilterAndOrder(t *testing.T) {
	store := newTestStore(t)

	base := time.Unix(0, 0).UTC()
	for i, b := range []*services.BookingRequest{
		{ID: "bk1", PsychologistID: "1", ParentName: "A", Email: "a@x.com", PreferredSlot: "Mon"},
		{ID: "bk2", PsychologistID: "2", ParentName: "B", Email: "b@x.com", PreferredSlot: "Tue"},
		{ID: "bk3", PsychologistID: "1", ParentName: "C", Email: "c@x.com", PreferredSlot: "Wed"},
	} {
		b.CreatedAt = base.Add(time.Duration(i) * time.Minute)
		if err := store.AddBooking(b); err != nil {
			t.Fatalf("AddBooking returned error: %v", err)
		}
	}

	got, err := store.ListBookings("1")
	if err != nil {
		t.Fatalf("ListBookings returned error: %v", err)
	}
	if len(got) != 2 || got[0].ID != "bk1" || got[1].ID != "bk3" {
		t.Fatalf("unexpected bookings: %+v", got)
	}

	none, err := store.ListBookings("9")
	if err != nil || len(none) != 0 {
		t.Fatalf("expected empty list, got %v err %v", none, err)
	}
}
