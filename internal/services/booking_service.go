package services

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

type BookingStore interface {
	AddBooking(b *BookingRequest) error
	ListBookings(psychologistID string) ([]*BookingRequest, error)
}

type BookingService struct {
	directory PsychologistDirectory
	store     BookingStore
	now       func() time.Time
	idGen     func() string
}

func NewBookingService(directory PsychologistDirectory, store BookingStore) *BookingService {
	return &BookingService{
		directory: directory,
		store:     store,
		now:       func() time.Time { return time.Now().UTC() },
		idGen:     func() string { return "bk" + strings.ReplaceAll(uuid.NewString(), "-", "")[:10] },
	}
}

// Request records a consultation request against a psychologist. The record
// is kept in-process only; no scheduling backend exists.
func (s *BookingService) Request(psychologistID, parentName, email, preferredSlot, note string) (*BookingRequest, error) {
	if strings.TrimSpace(parentName) == "" || strings.TrimSpace(email) == "" || strings.TrimSpace(preferredSlot) == "" {
		return nil, NewInvalidError("name, email and preferred slot required")
	}
	if s.directory.GetPsychologist(psychologistID) == nil {
		return nil, NewNotFoundError("psychologist not found")
	}
	b := &BookingRequest{
		ID:             s.idGen(),
		PsychologistID: psychologistID,
		ParentName:     strings.TrimSpace(parentName),
		Email:          strings.TrimSpace(email),
		PreferredSlot:  preferredSlot,
		Note:           note,
		CreatedAt:      s.now(),
	}
	if err := s.store.AddBooking(b); err != nil {
		return nil, err
	}
	return b, nil
}
