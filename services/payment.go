package services

import (
	"errors"
	"fmt"
	"log"
	"sync"
	"time"

	"github.com/fixmaster/fixmaster-core/db"
	"github.com/fixmaster/fixmaster-core/models"
)

var (
	ErrAlreadyPaid       = errors.New("booking already has a completed payment")
	ErrBookingCancelled  = errors.New("cancelled bookings cannot be paid")
	ErrSettlementPending = errors.New("a payment for this booking is already being processed")
	ErrNoPendingTask     = errors.New("no pending settlement for payment")
)

// PaymentService initiates payments and simulates asynchronous gateway
// settlement. Each pending settlement is a cancellable timer keyed by
// payment id; at most one settlement may be in flight per booking.
type PaymentService struct {
	store *db.Store
	delay time.Duration

	mu        sync.Mutex
	pending   map[string]*time.Timer // payment id -> settlement timer
	byBooking map[string]string      // booking id -> payment id
}

func NewPaymentService(store *db.Store, settlementDelay time.Duration) *PaymentService {
	return &PaymentService{
		store:     store,
		delay:     settlementDelay,
		pending:   make(map[string]*time.Timer),
		byBooking: make(map[string]string),
	}
}

type InitiatePaymentInput struct {
	BookingID string               `validate:"required"`
	Method    models.PaymentMethod `validate:"required,oneof=card mobile-banking cash"`
	Metadata  map[string]string
}

// Initiate creates a payment for the booking's current cost and
// schedules its settlement. The returned payment is in processing
// state; completion arrives through the settlement timer.
func (ps *PaymentService) Initiate(in InitiatePaymentInput) (models.Payment, error) {
	if err := models.Validate.Struct(in); err != nil {
		return models.Payment{}, fmt.Errorf("invalid payment: %w", err)
	}

	// Reserve the booking's settlement slot before anything else so a
	// concurrent attempt backs off instead of racing the checks below.
	// The booking is read after the reservation: a settlement that just
	// committed is visible through PaymentID by then.
	ps.mu.Lock()
	if _, busy := ps.byBooking[in.BookingID]; busy {
		ps.mu.Unlock()
		return models.Payment{}, ErrSettlementPending
	}
	ps.byBooking[in.BookingID] = ""
	ps.mu.Unlock()

	release := func() {
		ps.mu.Lock()
		delete(ps.byBooking, in.BookingID)
		ps.mu.Unlock()
	}

	booking, err := ps.store.FindBookingByID(in.BookingID)
	if err != nil {
		release()
		return models.Payment{}, fmt.Errorf("booking %s: %w", in.BookingID, err)
	}
	if booking.Status == models.BookingCancelled {
		release()
		return models.Payment{}, ErrBookingCancelled
	}
	if booking.PaymentID != "" {
		release()
		return models.Payment{}, ErrAlreadyPaid
	}

	amount := booking.EstimatedCost
	if booking.FinalCost != nil {
		amount = *booking.FinalCost
	}
	if amount <= 0 {
		release()
		return models.Payment{}, ErrInvalidCost
	}

	payment := ps.store.CreatePayment(models.Payment{
		BookingID:  booking.ID,
		CustomerID: booking.CustomerID,
		ProviderID: booking.ProviderID,
		Amount:     amount,
		Method:     in.Method,
		Status:     models.PaymentPending,
		Metadata:   in.Metadata,
	})

	// Hand off to the simulated gateway.
	processing := models.PaymentProcessing
	payment, err = ps.store.UpdatePayment(payment.ID, models.PaymentUpdate{Status: &processing})
	if err != nil {
		release()
		return models.Payment{}, err
	}

	ps.mu.Lock()
	ps.pending[payment.ID] = time.AfterFunc(ps.delay, func() { ps.settle(payment.ID) })
	ps.byBooking[booking.ID] = payment.ID
	ps.mu.Unlock()

	log.Printf("payment %s initiated for booking %s (%.2f via %s)", payment.ID, booking.ID, amount, in.Method)
	return payment, nil
}

// settle runs on the timer goroutine when the simulated gateway
// confirms. The payment/booking pair is committed in one store step.
func (ps *PaymentService) settle(paymentID string) {
	ps.mu.Lock()
	timer, ok := ps.pending[paymentID]
	if !ok {
		// Cancelled between firing and locking.
		ps.mu.Unlock()
		return
	}
	timer.Stop()
	delete(ps.pending, paymentID)
	ps.mu.Unlock()

	transactionID := fmt.Sprintf("TXN%d", time.Now().UnixMilli())
	payment, booking, err := ps.store.SettlePayment(paymentID, transactionID)

	if record, findErr := ps.store.FindPaymentByID(paymentID); findErr == nil {
		ps.mu.Lock()
		delete(ps.byBooking, record.BookingID)
		ps.mu.Unlock()
	}

	if err != nil {
		// The booking moved somewhere unpayable while the settlement was
		// in flight (e.g. cancelled). The payment must not sit in
		// processing forever; mark it failed so the state is terminal.
		log.Printf("settlement of payment %s rejected: %v", paymentID, err)
		failed := models.PaymentFailed
		if _, updErr := ps.store.UpdatePayment(paymentID, models.PaymentUpdate{Status: &failed}); updErr != nil {
			log.Printf("failed to mark payment %s failed: %v", paymentID, updErr)
		}
		return
	}

	ps.store.CreateNotification(models.Notification{
		UserID:  booking.CustomerID,
		Title:   "Payment Successful",
		Message: fmt.Sprintf("Payment of %.2f received, booking confirmed (ref %s)", payment.Amount, payment.TransactionID),
		Type:    models.NotificationPayment,
	})
	if provider, err := ps.store.FindProviderByID(booking.ProviderID); err == nil {
		ps.store.CreateNotification(models.Notification{
			UserID:  provider.UserID,
			Title:   "Payment Received",
			Message: fmt.Sprintf("Payment of %.2f received for booking on %s", payment.Amount, booking.ScheduledDate),
			Type:    models.NotificationPayment,
		})
	}

	log.Printf("payment %s settled, booking %s confirmed", payment.ID, booking.ID)
}

// CancelSettlement deterministically stops a pending settlement and
// marks the payment failed, so a resubmission can start clean.
func (ps *PaymentService) CancelSettlement(paymentID string) error {
	ps.mu.Lock()
	timer, ok := ps.pending[paymentID]
	if !ok {
		ps.mu.Unlock()
		return ErrNoPendingTask
	}
	timer.Stop()
	delete(ps.pending, paymentID)
	ps.mu.Unlock()

	failed := models.PaymentFailed
	payment, err := ps.store.UpdatePayment(paymentID, models.PaymentUpdate{Status: &failed})
	if err != nil {
		return err
	}

	ps.mu.Lock()
	delete(ps.byBooking, payment.BookingID)
	ps.mu.Unlock()

	log.Printf("settlement of payment %s cancelled", paymentID)
	return nil
}

// HasPendingSettlement reports whether a settlement is in flight for the
// booking. The UI uses this to block a second payment attempt.
func (ps *PaymentService) HasPendingSettlement(bookingID string) bool {
	ps.mu.Lock()
	defer ps.mu.Unlock()
	_, ok := ps.byBooking[bookingID]
	return ok
}
