package api

import "github.com/readle-app/readle/internal/services"

// Store is the runtime state store behind the router: session records, quiz
// progress and booking requests. The static directories are not part of it;
// they live in the catalog package and never change.
type Store interface {
	services.SessionStore
	services.QuizStore
	services.BookingStore
}

var _ Store = (*memoryStore)(nil)
