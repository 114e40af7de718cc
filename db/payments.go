package db

import (
	"fmt"

	"github.com/fixmaster/fixmaster-core/models"
)

func (s *Store) CreatePayment(p models.Payment) models.Payment {
	s.mu.Lock()
	defer s.mu.Unlock()

	p.ID = newID("payment")
	p.CreatedAt = now()
	s.payments = append(s.payments, p)
	return p
}

func (s *Store) FindPaymentByID(id string) (models.Payment, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, p := range s.payments {
		if p.ID == id {
			return p, nil
		}
	}
	return models.Payment{}, ErrNotFound
}

func (s *Store) ListPaymentsByCustomerID(customerID string) []models.Payment {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var out []models.Payment
	for _, p := range s.payments {
		if p.CustomerID == customerID {
			out = append(out, p)
		}
	}
	return out
}

// UpdatePayment merges the non-nil fields of upd over the stored record.
func (s *Store) UpdatePayment(id string, upd models.PaymentUpdate) (models.Payment, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.payments {
		if s.payments[i].ID != id {
			continue
		}
		p := &s.payments[i]
		if upd.Status != nil {
			p.Status = *upd.Status
		}
		if upd.TransactionID != nil {
			p.TransactionID = *upd.TransactionID
		}
		if upd.Metadata != nil {
			p.Metadata = upd.Metadata
		}
		if upd.CompletedAt != nil {
			p.CompletedAt = upd.CompletedAt
		}
		return *p, nil
	}
	return models.Payment{}, ErrNotFound
}

// SettlePayment applies the settlement commit as one atomic step: the
// payment moves to completed and the linked booking moves to confirmed
// with the payment attached. Either both records change or neither does,
// so no reader can see a confirmed booking without a completed payment
// or the reverse.
func (s *Store) SettlePayment(paymentID, transactionID string) (models.Payment, models.Booking, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var payment *models.Payment
	for i := range s.payments {
		if s.payments[i].ID == paymentID {
			payment = &s.payments[i]
			break
		}
	}
	if payment == nil {
		return models.Payment{}, models.Booking{}, fmt.Errorf("settle payment %s: %w", paymentID, ErrNotFound)
	}
	if err := models.CheckPaymentTransition(payment.Status, models.PaymentCompleted); err != nil {
		return models.Payment{}, models.Booking{}, err
	}

	var booking *models.Booking
	for i := range s.bookings {
		if s.bookings[i].ID == payment.BookingID {
			booking = &s.bookings[i]
			break
		}
	}
	if booking == nil {
		return models.Payment{}, models.Booking{}, fmt.Errorf("settle booking %s: %w", payment.BookingID, ErrNotFound)
	}
	// A pending booking gets confirmed by the payment. A booking the
	// provider already moved forward (confirmed, in-progress, completed)
	// keeps its status and only gets the payment attached. Cancelled
	// bookings cannot be paid.
	confirm := false
	switch booking.Status {
	case models.BookingPending:
		confirm = true
	case models.BookingConfirmed, models.BookingInProgress, models.BookingCompleted:
	default:
		return models.Payment{}, models.Booking{}, fmt.Errorf("%w: %s to %s",
			models.ErrInvalidTransition, booking.Status, models.BookingConfirmed)
	}

	ts := now()
	payment.Status = models.PaymentCompleted
	payment.TransactionID = transactionID
	payment.CompletedAt = &ts

	if confirm {
		booking.Status = models.BookingConfirmed
	}
	booking.PaymentID = payment.ID
	booking.UpdatedAt = ts

	return *payment, *booking, nil
}
