package models

import (
	"errors"
	"fmt"
	"time"
)

type BookingStatus string

const (
	BookingPending    BookingStatus = "pending"
	BookingConfirmed  BookingStatus = "confirmed"
	BookingInProgress BookingStatus = "in-progress"
	BookingCompleted  BookingStatus = "completed"
	BookingCancelled  BookingStatus = "cancelled"
)

var ErrInvalidTransition = errors.New("invalid status transition")

type Booking struct {
	ID                 string        `json:"id"`
	CustomerID         string        `json:"customer_id"`
	ProviderID         string        `json:"provider_id"`
	ServiceID          string        `json:"service_id"`
	Status             BookingStatus `json:"status"`
	ScheduledDate      string        `json:"scheduled_date"` // "2006-01-02"
	ScheduledTime      string        `json:"scheduled_time"` // "15:04"
	Address            string        `json:"address"`
	Description        string        `json:"description,omitempty"`
	EstimatedCost      float64       `json:"estimated_cost"`
	FinalCost          *float64      `json:"final_cost,omitempty"`
	PaymentID          string        `json:"payment_id,omitempty"`
	CancellationReason string        `json:"cancellation_reason,omitempty"`
	CreatedAt          time.Time     `json:"created_at"`
	UpdatedAt          time.Time     `json:"updated_at"`
	CompletedAt        *time.Time    `json:"completed_at,omitempty"`
}

// BookingUpdate carries a partial update; nil fields are left untouched.
type BookingUpdate struct {
	Status             *BookingStatus
	ScheduledDate      *string
	ScheduledTime      *string
	Address            *string
	Description        *string
	EstimatedCost      *float64
	FinalCost          *float64
	PaymentID          *string
	CancellationReason *string
	CompletedAt        *time.Time
}

// CheckBookingTransition validates a booking status change against the
// lifecycle pending -> confirmed -> in-progress -> completed, with
// cancellation allowed from pending or confirmed.
func CheckBookingTransition(from, to BookingStatus) error {
	switch from {
	case BookingPending:
		if to != BookingConfirmed && to != BookingCancelled {
			return fmt.Errorf("%w: %s to %s", ErrInvalidTransition, from, to)
		}
	case BookingConfirmed:
		if to != BookingInProgress && to != BookingCancelled {
			return fmt.Errorf("%w: %s to %s", ErrInvalidTransition, from, to)
		}
	case BookingInProgress:
		if to != BookingCompleted {
			return fmt.Errorf("%w: %s to %s", ErrInvalidTransition, from, to)
		}
	case BookingCompleted, BookingCancelled:
		return fmt.Errorf("%w: no transitions allowed from %s", ErrInvalidTransition, from)
	default:
		return fmt.Errorf("%w: unknown status %q", ErrInvalidTransition, from)
	}
	return nil
}
