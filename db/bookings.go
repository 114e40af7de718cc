package db

import (
	"github.com/fixmaster/fixmaster-core/models"
)

func (s *Store) CreateBooking(b models.Booking) models.Booking {
	s.mu.Lock()
	defer s.mu.Unlock()

	b.ID = newID("booking")
	b.CreatedAt = now()
	b.UpdatedAt = b.CreatedAt
	s.bookings = append(s.bookings, b)
	return b
}

func (s *Store) FindBookingByID(id string) (models.Booking, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, b := range s.bookings {
		if b.ID == id {
			return b, nil
		}
	}
	return models.Booking{}, ErrNotFound
}

func (s *Store) ListBookingsByCustomerID(customerID string) []models.Booking {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var out []models.Booking
	for _, b := range s.bookings {
		if b.CustomerID == customerID {
			out = append(out, b)
		}
	}
	return out
}

func (s *Store) ListBookingsByProviderID(providerID string) []models.Booking {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var out []models.Booking
	for _, b := range s.bookings {
		if b.ProviderID == providerID {
			out = append(out, b)
		}
	}
	return out
}

func (s *Store) ListBookingsByStatus(status models.BookingStatus) []models.Booking {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var out []models.Booking
	for _, b := range s.bookings {
		if b.Status == status {
			out = append(out, b)
		}
	}
	return out
}

// UpdateBooking merges the non-nil fields of upd over the stored record
// and refreshes UpdatedAt. Status legality is the caller's check; the
// generic update accepts whatever is written.
func (s *Store) UpdateBooking(id string, upd models.BookingUpdate) (models.Booking, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.bookings {
		if s.bookings[i].ID != id {
			continue
		}
		b := &s.bookings[i]
		if upd.Status != nil {
			b.Status = *upd.Status
		}
		if upd.ScheduledDate != nil {
			b.ScheduledDate = *upd.ScheduledDate
		}
		if upd.ScheduledTime != nil {
			b.ScheduledTime = *upd.ScheduledTime
		}
		if upd.Address != nil {
			b.Address = *upd.Address
		}
		if upd.Description != nil {
			b.Description = *upd.Description
		}
		if upd.EstimatedCost != nil {
			b.EstimatedCost = *upd.EstimatedCost
		}
		if upd.FinalCost != nil {
			b.FinalCost = upd.FinalCost
		}
		if upd.PaymentID != nil {
			b.PaymentID = *upd.PaymentID
		}
		if upd.CancellationReason != nil {
			b.CancellationReason = *upd.CancellationReason
		}
		if upd.CompletedAt != nil {
			b.CompletedAt = upd.CompletedAt
		}
		b.UpdatedAt = now()
		return *b, nil
	}
	return models.Booking{}, ErrNotFound
}
