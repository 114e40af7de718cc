// Package db implements the in-memory data store backing the FixMaster
// core. Collections are plain slices scanned in insertion order; every
// write goes through the store so the settlement timer and the caller
// never observe half-applied state.
package db

import (
	"errors"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/fixmaster/fixmaster-core/models"
)

var ErrNotFound = errors.New("record not found")

// Store owns every entity collection for the lifetime of the process.
// Construct one per application (or per test) instead of sharing a
// package-level instance.
type Store struct {
	mu sync.RWMutex

	users         []models.User
	services      []models.Service
	providers     []models.Provider
	bookings      []models.Booking
	payments      []models.Payment
	reviews       []models.Review
	notifications []models.Notification
}

// New returns an empty store.
func New() *Store {
	return &Store{}
}

// NewSeeded returns a store populated with the fixture data.
func NewSeeded() *Store {
	s := New()
	s.Seed()
	return s
}

// newID stamps an entity-prefixed unique id, e.g. "booking-6ba7b810-...".
func newID(prefix string) string {
	return prefix + "-" + uuid.NewString()
}

func now() time.Time {
	return time.Now()
}
