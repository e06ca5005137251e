package api

import (
	"sync"

	"github.com/readle-app/readle/internal/services"
)

// memoryStore keeps runtime state in process memory. It is the default store
// when no SQLite path is configured, and the store used by tests.
type memoryStore struct {
	mu       sync.RWMutex
	sessions map[string]*services.Session
	quizzes  map[string]*services.QuizState
	bookings map[string][]*services.BookingRequest
}

func NewMemoryStore() Store {
	return &memoryStore{
		sessions: map[string]*services.Session{},
		quizzes:  map[string]*services.QuizState{},
		bookings: map[string][]*services.BookingRequest{},
	}
}

func (s *memoryStore) SaveSession(sess *services.Session) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	copy := *sess
	s.sessions[sess.ID] = &copy
	return nil
}

func (s *memoryStore) GetSession(id string) (*services.Session, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	sess, ok := s.sessions[id]
	if !ok {
		return nil, nil
	}
	copy := *sess
	return &copy, nil
}

func (s *memoryStore) DeleteSession(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.sessions, id)
	return nil
}

func (s *memoryStore) SaveQuizState(st *services.QuizState) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	copy := *st
	copy.Answers = make(map[int]string, len(st.Answers))
	for k, v := range st.Answers {
		copy.Answers[k] = v
	}
	s.quizzes[st.ID] = &copy
	return nil
}

func (s *memoryStore) GetQuizState(id string) (*services.QuizState, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	st, ok := s.quizzes[id]
	if !ok {
		return nil, nil
	}
	copy := *st
	copy.Answers = make(map[int]string, len(st.Answers))
	for k, v := range st.Answers {
		copy.Answers[k] = v
	}
	return &copy, nil
}

func (s *memoryStore) DeleteQuizState(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.quizzes, id)
	return nil
}

func (s *memoryStore) AddBooking(b *services.BookingRequest) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	copy := *b
	s.bookings[b.PsychologistID] = append(s.bookings[b.PsychologistID], &copy)
	return nil
}

func (s *memoryStore) ListBookings(psychologistID string) ([]*services.BookingRequest, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]*services.BookingRequest(nil), s.bookings[psychologistID]...), nil
}
