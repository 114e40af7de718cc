package db

import (
	"github.com/fixmaster/fixmaster-core/models"
)

func (s *Store) CreateReview(r models.Review) models.Review {
	s.mu.Lock()
	defer s.mu.Unlock()

	r.ID = newID("review")
	r.CreatedAt = now()
	s.reviews = append(s.reviews, r)
	return r
}

func (s *Store) ListReviewsByProviderID(providerID string) []models.Review {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var out []models.Review
	for _, r := range s.reviews {
		if r.ProviderID == providerID {
			out = append(out, r)
		}
	}
	return out
}

// FindReviewByBookingID backs the one-review-per-booking check.
func (s *Store) FindReviewByBookingID(bookingID string) (models.Review, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, r := range s.reviews {
		if r.BookingID == bookingID {
			return r, nil
		}
	}
	return models.Review{}, ErrNotFound
}
