package services

import (
	"strings"
	"time"
)

// UserDirectory is the bundled, read-only user dataset. Lookup is
// case-insensitive on email.
type UserDirectory interface {
	FindByEmail(email string) *UserRecord
}

// SessionStore persists session records keyed by session id. A session record
// never contains a password, so whatever the store serializes cannot leak one.
type SessionStore interface {
	SaveSession(s *Session) error
	GetSession(id string) (*Session, error)
	DeleteSession(id string) error
}

type TokenSigner func(sessionID string, role Role, email string, ttl time.Duration) (string, error)

type SessionService struct {
	directory UserDirectory
	store     SessionStore
	signToken TokenSigner
	now       func() time.Time
	tokenTTL  time.Duration
}

type LoginResult struct {
	Role    Role
	Token   string
	Session *Session
}

// Placeholder identity used by SetRole when no session exists yet. Lets the
// shell preview role-specific chrome without a real login.
const (
	devSessionID    = "dev-user"
	devSessionName  = "Test User"
	devSessionEmail = "test@readle.com"
)

func NewSessionService(directory UserDirectory, store SessionStore, signer TokenSigner) *SessionService {
	return &SessionService{
		directory: directory,
		store:     store,
		signToken: signer,
		now:       func() time.Time { return time.Now().UTC() },
		tokenTTL:  30 * 24 * time.Hour,
	}
}

// Login authenticates against the user directory: case-insensitive email,
// exact password. The directory is a bundled mock, so passwords are compared
// in plaintext. A failed login leaves any previously stored session untouched.
func (s *SessionService) Login(email, password string) (*LoginResult, error) {
	email = strings.TrimSpace(email)
	if email == "" || password == "" {
		return nil, NewInvalidError("email and password required")
	}
	u := s.directory.FindByEmail(email)
	if u == nil || u.Password != password {
		// Same message whether the email exists or not.
		return nil, NewUnauthorizedError("invalid email or password")
	}
	sess := &Session{
		ID:          u.ID,
		Name:        u.Name,
		Email:       u.Email,
		Role:        u.Role,
		Preferences: u.Preferences,
		CreatedAt:   s.now(),
	}
	if u.IsAdmin {
		sess.IsAdmin = true
	}
	if err := s.store.SaveSession(sess); err != nil {
		return nil, err
	}
	if s.signToken == nil {
		return nil, NewInvalidError("token signer not configured")
	}
	token, err := s.signToken(sess.ID, sess.Role, sess.Email, s.tokenTTL)
	if err != nil {
		return nil, err
	}
	return &LoginResult{Role: sess.Role, Token: token, Session: sess}, nil
}

// Logout clears the stored session. Safe to call with no active session.
func (s *SessionService) Logout(sessionID string) error {
	if sessionID == "" {
		return nil
	}
	return s.store.DeleteSession(sessionID)
}

// SetRole replaces the role of the active session, or synthesizes a default
// session with placeholder identity fields when none exists. It never
// consults the user directory.
func (s *SessionService) SetRole(sessionID string, role Role) (*LoginResult, error) {
	if !ValidRole(role) {
		return nil, NewInvalidError("unknown role")
	}
	var sess *Session
	if sessionID != "" {
		cur, err := s.store.GetSession(sessionID)
		if err != nil {
			return nil, err
		}
		if cur != nil {
			copy := *cur
			copy.Role = role
			sess = &copy
		}
	}
	if sess == nil {
		sess = &Session{
			ID:    devSessionID,
			Name:  devSessionName,
			Email: devSessionEmail,
			Role:  role,
			Preferences: Preferences{
				Language:      "en",
				Notifications: true,
			},
			CreatedAt: s.now(),
		}
	}
	if err := s.store.SaveSession(sess); err != nil {
		return nil, err
	}
	if s.signToken == nil {
		return nil, NewInvalidError("token signer not configured")
	}
	token, err := s.signToken(sess.ID, sess.Role, sess.Email, s.tokenTTL)
	if err != nil {
		return nil, err
	}
	return &LoginResult{Role: sess.Role, Token: token, Session: sess}, nil
}

// Current returns the stored session, or nil when none is held (including
// when the stored value was unreadable).
func (s *SessionService) Current(sessionID string) (*Session, error) {
	if sessionID == "" {
		return nil, nil
	}
	return s.store.GetSession(sessionID)
}

// IsAuthenticated is derived from session presence, never stored on its own.
func (s *SessionService) IsAuthenticated(sessionID string) (bool, error) {
	sess, err := s.Current(sessionID)
	if err != nil {
		return false, err
	}
	return sess != nil, nil
}

func (s *SessionService) TokenTTL() time.Duration {
	return s.tokenTTL
}
