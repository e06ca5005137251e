package db

import (
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"path/filepath"
	"time"

	"go.uber.org/zap"

	"github.com/readle-app/readle/internal/services"
)

// SQLiteStore is the durable store behind the session and quiz services.
// Records are stored as JSON payloads keyed by id; an unreadable payload is
// logged and treated as absent, never propagated as an error.
type SQLiteStore struct {
	db     *sql.DB
	logger *zap.Logger
	now    func() time.Time
}

func NewSQLiteStore(db *sql.DB, logger *zap.Logger) (*SQLiteStore, error) {
	if db == nil {
		return nil, errors.New("nil db")
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	pragmas := []string{
		"PRAGMA foreign_keys = ON",
		"PRAGMA journal_mode = WAL",
		"PRAGMA synchronous = NORMAL",
	}
	for _, stmt := range pragmas {
		if _, err := db.Exec(stmt); err != nil {
			return nil, fmt.Errorf("apply sqlite pragma %q: %w", stmt, err)
		}
	}
	return &SQLiteStore{
		db:     db,
		logger: logger,
		now:    func() time.Time { return time.Now().UTC() },
	}, nil
}

// Open opens (creating if needed) the SQLite database at path.
func Open(path string) (*sql.DB, error) {
	dsn := fmt.Sprintf("file:%s?cache=shared&_busy_timeout=5000", filepath.ToSlash(path))
	return sql.Open("sqlite3", dsn)
}

func (s *SQLiteStore) SaveSession(sess *services.Session) error {
	if sess == nil {
		return errors.New("nil session")
	}
	payload, err := json.Marshal(sess)
	if err != nil {
		return fmt.Errorf("encode session: %w", err)
	}
	_, err = s.db.Exec(
		`INSERT INTO sessions (id, payload, updated_at) VALUES (?, ?, ?)
		 ON CONFLICT(id) DO UPDATE SET payload = excluded.payload, updated_at = excluded.updated_at`,
		sess.ID, string(payload), s.now(),
	)
	if err != nil {
		return fmt.Errorf("save session: %w", err)
	}
	return nil
}

func (s *SQLiteStore) GetSession(id string) (*services.Session, error) {
	var payload string
	err := s.db.QueryRow(`SELECT payload FROM sessions WHERE id = ?`, id).Scan(&payload)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("load session: %w", err)
	}
	var sess services.Session
	if err := json.Unmarshal([]byte(payload), &sess); err != nil {
		// Corrupt stored value means logged-out, not a failure.
		s.logger.Warn("discarding corrupt session record", zap.String("id", id), zap.Error(err))
		return nil, nil
	}
	return &sess, nil
}

func (s *SQLiteStore) DeleteSession(id string) error {
	if _, err := s.db.Exec(`DELETE FROM sessions WHERE id = ?`, id); err != nil {
		return fmt.Errorf("delete session: %w", err)
	}
	return nil
}

func (s *SQLiteStore) SaveQuizState(st *services.QuizState) error {
	if st == nil {
		return errors.New("nil quiz state")
	}
	payload, err := json.Marshal(st)
	if err != nil {
		return fmt.Errorf("encode quiz state: %w", err)
	}
	_, err = s.db.Exec(
		`INSERT INTO quiz_states (id, payload, updated_at) VALUES (?, ?, ?)
		 ON CONFLICT(id) DO UPDATE SET payload = excluded.payload, updated_at = excluded.updated_at`,
		st.ID, string(payload), s.now(),
	)
	if err != nil {
		return fmt.Errorf("save quiz state: %w", err)
	}
	return nil
}

func (s *SQLiteStore) GetQuizState(id string) (*services.QuizState, error) {
	var payload string
	err := s.db.QueryRow(`SELECT payload FROM quiz_states WHERE id = ?`, id).Scan(&payload)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("load quiz state: %w", err)
	}
	var st services.QuizState
	if err := json.Unmarshal([]byte(payload), &st); err != nil {
		s.logger.Warn("discarding corrupt quiz state", zap.String("id", id), zap.Error(err))
		return nil, nil
	}
	return &st, nil
}

func (s *SQLiteStore) DeleteQuizState(id string) error {
	if _, err := s.db.Exec(`DELETE FROM quiz_states WHERE id = ?`, id); err != nil {
		return fmt.Errorf("delete quiz state: %w", err)
	}
	return nil
}

func (s *SQLiteStore) AddBooking(b *services.BookingRequest) error {
	if b == nil {
		return errors.New("nil booking")
	}
	payload, err := json.Marshal(b)
	if err != nil {
		return fmt.Errorf("encode booking: %w", err)
	}
	_, err = s.db.Exec(
		`INSERT INTO bookings (id, psychologist_id, payload, created_at) VALUES (?, ?, ?, ?)`,
		b.ID, b.PsychologistID, string(payload), b.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("save booking: %w", err)
	}
	return nil
}

func (s *SQLiteStore) ListBookings(psychologistID string) ([]*services.BookingRequest, error) {
	rows, err := s.db.Query(
		`SELECT payload FROM bookings WHERE psychologist_id = ? ORDER BY created_at`, psychologistID)
	if err != nil {
		return nil, fmt.Errorf("list bookings: %w", err)
	}
	defer rows.Close()
	out := []*services.BookingRequest{}
	for rows.Next() {
		var payload string
		if err := rows.Scan(&payload); err != nil {
			return nil, fmt.Errorf("scan booking: %w", err)
		}
		var b services.BookingRequest
		if err := json.Unmarshal([]byte(payload), &b); err != nil {
			s.logger.Warn("discarding corrupt booking record", zap.Error(err))
			continue
		}
		out = append(out, &b)
	}
	return out, rows.Err()
}
