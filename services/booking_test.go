package services

import (
	"errors"
	"math"
	"testing"

	"github.com/fixmaster/fixmaster-core/db"
	"github.com/fixmaster/fixmaster-core/models"
)

func bookingInput() CreateBookingInput {
	return CreateBookingInput{
		CustomerID:    "user-1",
		ProviderID:    "provider-1",
		ServiceID:     "service-2",
		ScheduledDate: "2024-06-01",
		ScheduledTime: "14:00",
		Address:       "House 25, Road 7, Dhanmondi, Dhaka",
		Description:   "Kitchen sink is leaking",
	}
}

func TestCreateBookingComputesEstimate(t *testing.T) {
	store := db.NewSeeded()
	bs := NewBookingService(store, 0.10)

	booking, err := bs.Create(bookingInput())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if booking.Status != models.BookingPending {
		t.Errorf("expected pending, got %s", booking.Status)
	}
	// service-2 base price 800 plus the 10% service charge.
	if math.Abs(booking.EstimatedCost-880) > 1e-9 {
		t.Errorf("expected estimate 880, got %v", booking.EstimatedCost)
	}
}

func TestCreateBookingNotifiesProvider(t *testing.T) {
	store := db.NewSeeded()
	bs := NewBookingService(store, 0.10)

	before := len(store.ListNotificationsByUserID("user-3"))
	if _, err := bs.Create(bookingInput()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	// provider-1 belongs to user-3.
	after := store.ListNotificationsByUserID("user-3")
	if len(after) != before+1 {
		t.Fatalf("expected one new notification, got %d", len(after)-before)
	}
	last := after[len(after)-1]
	if last.Title != "New Booking Request" || last.Type != models.NotificationBooking {
		t.Errorf("unexpected notification: %+v", last)
	}
}

func TestCreateBookingRejectsUnknownRecords(t *testing.T) {
	store := db.NewSeeded()
	bs := NewBookingService(store, 0.10)

	in := bookingInput()
	in.ServiceID = "service-missing"
	if _, err := bs.Create(in); !errors.Is(err, db.ErrNotFound) {
		t.Errorf("expected ErrNotFound for unknown service, got %v", err)
	}

	in = bookingInput()
	in.ProviderID = "provider-missing"
	if _, err := bs.Create(in); !errors.Is(err, db.ErrNotFound) {
		t.Errorf("expected ErrNotFound for unknown provider, got %v", err)
	}

	in = bookingInput()
	in.ScheduledDate = "June 1st"
	if _, err := bs.Create(in); err == nil {
		t.Error("expected malformed date to be rejected")
	}
}

func TestBookingLifecycle(t *testing.T) {
	store := db.NewSeeded()
	bs := NewBookingService(store, 0.10)

	booking, err := bs.Create(bookingInput())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if booking, err = bs.Accept(booking.ID); err != nil {
		t.Fatalf("accept: %v", err)
	}
	if booking.Status != models.BookingConfirmed {
		t.Fatalf("expected confirmed, got %s", booking.Status)
	}

	if booking, err = bs.Start(booking.ID); err != nil {
		t.Fatalf("start: %v", err)
	}
	if booking.Status != models.BookingInProgress {
		t.Fatalf("expected in-progress, got %s", booking.Status)
	}

	if booking, err = bs.Complete(booking.ID, 750); err != nil {
		t.Fatalf("complete: %v", err)
	}
	if booking.Status != models.BookingCompleted {
		t.Fatalf("expected completed, got %s", booking.Status)
	}
	if booking.FinalCost == nil || *booking.FinalCost != 750 {
		t.Errorf("expected final cost 750, got %v", booking.FinalCost)
	}
	if booking.CompletedAt == nil {
		t.Error("expected CompletedAt to be set")
	}
}

func TestBookingIllegalTransitionsRejected(t *testing.T) {
	store := db.NewSeeded()
	bs := NewBookingService(store, 0.10)

	booking, err := bs.Create(bookingInput())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	// Pending bookings cannot be started or completed.
	if _, err := bs.Start(booking.ID); !errors.Is(err, models.ErrInvalidTransition) {
		t.Errorf("expected ErrInvalidTransition, got %v", err)
	}
	if _, err := bs.Complete(booking.ID, 500); !errors.Is(err, models.ErrInvalidTransition) {
		t.Errorf("expected ErrInvalidTransition, got %v", err)
	}

	// A failed transition leaves the record unchanged.
	reread, _ := store.FindBookingByID(booking.ID)
	if reread.Status != models.BookingPending {
		t.Errorf("record mutated by failed transition: %s", reread.Status)
	}
}

func TestCompleteRejectsNonPositiveCost(t *testing.T) {
	bs := NewBookingService(db.NewSeeded(), 0.10)

	if _, err := bs.Complete("booking-2", 0); !errors.Is(err, ErrInvalidCost) {
		t.Errorf("expected ErrInvalidCost, got %v", err)
	}
	if _, err := bs.Complete("booking-2", -100); !errors.Is(err, ErrInvalidCost) {
		t.Errorf("expected ErrInvalidCost, got %v", err)
	}
}

func TestCancelKeepsRecordWithReason(t *testing.T) {
	store := db.NewSeeded()
	bs := NewBookingService(store, 0.10)

	booking, err := bs.Create(bookingInput())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	cancelled, err := bs.Cancel(booking.ID, "customer changed plans")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cancelled.Status != models.BookingCancelled {
		t.Errorf("expected cancelled, got %s", cancelled.Status)
	}
	if cancelled.CancellationReason != "customer changed plans" {
		t.Errorf("expected reason to be recorded, got %q", cancelled.CancellationReason)
	}

	// Cancellation never deletes the record.
	if _, err := store.FindBookingByID(booking.ID); err != nil {
		t.Errorf("cancelled booking disappeared: %v", err)
	}

	// And cancelled is terminal.
	if _, err := bs.Accept(booking.ID); !errors.Is(err, models.ErrInvalidTransition) {
		t.Errorf("expected ErrInvalidTransition, got %v", err)
	}
}
