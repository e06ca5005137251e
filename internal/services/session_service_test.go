package services

import (
	"encoding/json"
	"strings"
	"testing"
	"time"
)

type sessionStubDirectory struct {
	users map[string]*UserRecord
}

func (d *sessionStubDirectory) FindByEmail(email string) *UserRecord {
	for _, u := range d.users {
		if strings.EqualFold(u.Email, email) {
			copy := *u
			return &copy
		}
	}
	return nil
}

type sessionStubStore struct {
	sessions map[string]*Session
	saves    int
}

func newSessionStubStore() *sessionStubStore {
	return &sessionStubStore{sessions: map[string]*Session{}}
}

func (s *sessionStubStore) SaveSession(sess *Session) error {
	copy := *sess
	s.sessions[sess.ID] = &copy
	s.saves++
	return nil
}

func (s *sessionStubStore) GetSession(id string) (*Session, error) {
	if sess, ok := s.sessions[id]; ok {
		copy := *sess
		return &copy, nil
	}
	return nil, nil
}

func (s *sessionStubStore) DeleteSession(id string) error {
	delete(s.sessions, id)
	return nil
}

func stubSigner(sessionID string, role Role, email string, ttl time.Duration) (string, error) {
	return "token:" + sessionID + ":" + string(role), nil
}

func newTestSessionService(store *sessionStubStore) *SessionService {
	dir := &sessionStubDirectory{users: map[string]*UserRecord{
		"u-001": {
			ID: "u-001", Name: "Kasun Perera", Email: "parent@readle.com",
			Password: "parent123", Role: RoleParent,
			Preferences: Preferences{Language: "en", Notifications: true},
		},
		"u-003": {
			ID: "u-003", Name: "Maya Fernando", Email: "admin@readle.com",
			Password: "admin123", Role: RoleParent, IsAdmin: true,
		},
	}}
	svc := NewSessionService(dir, store, stubSigner)
	svc.now = func() time.Time { return time.Unix(0, 0).UTC() }
	return svc
}

func TestLogin(t *testing.T) {
	store := newSessionStubStore()
	svc := newTestSessionService(store)

	res, err := svc.Login("parent@readle.com", "parent123")
	if err != nil {
		t.Fatalf("Login returned error: %v", err)
	}
	if res.Role != RoleParent {
		t.Fatalf("expected parent role, got %q", res.Role)
	}
	if res.Token != "token:u-001:parent" {
		t.Fatalf("unexpected token %q", res.Token)
	}
	sess, err := svc.Current("u-001")
	if err != nil || sess == nil {
		t.Fatalf("expected stored session, got %v err %v", sess, err)
	}
	if sess.Name != "Kasun Perera" || sess.Preferences.Language != "en" {
		t.Fatalf("session fields not copied from directory: %+v", sess)
	}
}

func TestLoginEmailCaseInsensitivePasswordExact(t *testing.T) {
	store := newSessionStubStore()
	svc := newTestSessionService(store)

	if _, err := svc.Login("PARENT@Readle.COM", "parent123"); err != nil {
		t.Fatalf("mixed-case email should authenticate: %v", err)
	}
	_, err := svc.Login("parent@readle.com", "PARENT123")
	se, ok := AsServiceError(err)
	if !ok || se.Code != ErrorUnauthorized {
		t.Fatalf("mixed-case password must fail with unauthorized, got %v", err)
	}
}

func TestLoginSameMessageForUnknownEmailAndWrongPassword(t *testing.T) {
	svc := newTestSessionService(newSessionStubStore())

	_, errUnknown := svc.Login("nobody@readle.com", "parent123")
	_, errWrong := svc.Login("parent@readle.com", "wrong")
	if errUnknown == nil || errWrong == nil {
		t.Fatalf("expected both logins to fail")
	}
	if errUnknown.Error() != errWrong.Error() {
		t.Fatalf("failure messages differ: %q vs %q", errUnknown, errWrong)
	}
}

func TestLoginEmptyFields(t *testing.T) {
	svc := newTestSessionService(newSessionStubStore())

	for _, c := range [][2]string{{"", "parent123"}, {"parent@readle.com", ""}, {"", ""}} {
		_, err := svc.Login(c[0], c[1])
		se, ok := AsServiceError(err)
		if !ok || se.Code != ErrorInvalid {
			t.Fatalf("Login(%q, %q): expected invalid error, got %v", c[0], c[1], err)
		}
	}
}

func TestFailedLoginLeavesSessionUntouched(t *testing.T) {
	store := newSessionStubStore()
	svc := newTestSessionService(store)

	if _, err := svc.Login("parent@readle.com", "parent123"); err != nil {
		t.Fatalf("Login returned error: %v", err)
	}
	saves := store.saves

	if _, err := svc.Login("parent@readle.com", "wrong"); err == nil {
		t.Fatalf("expected error for wrong password")
	}
	if store.saves != saves {
		t.Fatalf("failed login wrote to the store")
	}
	sess, _ := svc.Current("u-001")
	if sess == nil || sess.Role != RoleParent {
		t.Fatalf("existing session was disturbed: %+v", sess)
	}
}

func TestSessionNeverSerializesPassword(t *testing.T) {
	store := newSessionStubStore()
	svc := newTestSessionService(store)

	res, err := svc.Login("parent@readle.com", "parent123")
	if err != nil {
		t.Fatalf("Login returned error: %v", err)
	}
	raw, err := json.Marshal(res.Session)
	if err != nil {
		t.Fatalf("marshal session: %v", err)
	}
	if strings.Contains(strings.ToLower(string(raw)), "password") {
		t.Fatalf("serialized session leaks password material: %s", raw)
	}
}

func TestLoginAdminFlag(t *testing.T) {
	store := newSessionStubStore()
	svc := newTestSessionService(store)

	res, err := svc.Login("admin@readle.com", "admin123")
	if err != nil {
		t.Fatalf("Login returned error: %v", err)
	}
	if !res.Session.IsAdmin {
		t.Fatalf("expected admin flag carried onto session")
	}
	if res.Role != RoleParent {
		t.Fatalf("admin directory record still logs in as parent, got %q", res.Role)
	}
}

func TestLogoutIdempotent(t *testing.T) {
	store := newSessionStubStore()
	svc := newTestSessionService(store)

	if err := svc.Logout("u-001"); err != nil {
		t.Fatalf("logout with no session must succeed: %v", err)
	}
	if err := svc.Logout(""); err != nil {
		t.Fatalf("logout with empty id must succeed: %v", err)
	}

	if _, err := svc.Login("parent@readle.com", "parent123"); err != nil {
		t.Fatalf("Login returned error: %v", err)
	}
	if err := svc.Logout("u-001"); err != nil {
		t.Fatalf("Logout returned error: %v", err)
	}
	ok, err := svc.IsAuthenticated("u-001")
	if err != nil || ok {
		t.Fatalf("expected unauthenticated after logout, got %v err %v", ok, err)
	}
	if err := svc.Logout("u-001"); err != nil {
		t.Fatalf("second logout must succeed: %v", err)
	}
}

func TestSetRoleKeepsIdentity(t *testing.T) {
	store := newSessionStubStore()
	svc := newTestSessionService(store)

	if _, err := svc.Login("parent@readle.com", "parent123"); err != nil {
		t.Fatalf("Login returned error: %v", err)
	}
	res, err := svc.SetRole("u-001", RoleChild)
	if err != nil {
		t.Fatalf("SetRole returned error: %v", err)
	}
	if res.Session.Role != RoleChild {
		t.Fatalf("expected child role, got %q", res.Session.Role)
	}
	if res.Session.Name != "Kasun Perera" || res.Session.Email != "parent@readle.com" {
		t.Fatalf("identity fields must survive a role change: %+v", res.Session)
	}
}

func TestSetRoleSynthesizesDevSession(t *testing.T) {
	store := newSessionStubStore()
	svc := newTestSessionService(store)

	res, err := svc.SetRole("", RoleChild)
	if err != nil {
		t.Fatalf("SetRole returned error: %v", err)
	}
	sess := res.Session
	if sess.ID != "dev-user" || sess.Name != "Test User" || sess.Email != "test@readle.com" {
		t.Fatalf("unexpected placeholder identity: %+v", sess)
	}
	if sess.Role != RoleChild {
		t.Fatalf("expected child role, got %q", sess.Role)
	}
	if sess.Preferences.Language != "en" || !sess.Preferences.Notifications {
		t.Fatalf("unexpected default preferences: %+v", sess.Preferences)
	}
	ok, _ := svc.IsAuthenticated("dev-user")
	if !ok {
		t.Fatalf("placeholder session must count as authenticated")
	}
}

func TestSetRoleRejectsAdminAndUnknown(t *testing.T) {
	svc := newTestSessionService(newSessionStubStore())

	for _, role := range []Role{RoleAdmin, Role("teacher"), Role("")} {
		_, err := svc.SetRole("", role)
		se, ok := AsServiceError(err)
		if !ok || se.Code != ErrorInvalid {
			t.Fatalf("SetRole(%q): expected invalid error, got %v", role, err)
		}
	}
}
