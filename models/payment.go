package models

import (
	"fmt"
	"time"
)

type PaymentStatus string

const (
	PaymentPending    PaymentStatus = "pending"
	PaymentProcessing PaymentStatus = "processing"
	PaymentCompleted  PaymentStatus = "completed"
	PaymentFailed     PaymentStatus = "failed"
	PaymentRefunded   PaymentStatus = "refunded"
)

type PaymentMethod string

const (
	MethodCard          PaymentMethod = "card"
	MethodMobileBanking PaymentMethod = "mobile-banking"
	MethodCash          PaymentMethod = "cash"
)

type Payment struct {
	ID            string            `json:"id"`
	BookingID     string            `json:"booking_id"`
	CustomerID    string            `json:"customer_id"`
	ProviderID    string            `json:"provider_id"`
	Amount        float64           `json:"amount"`
	Method        PaymentMethod     `json:"method"`
	Status        PaymentStatus     `json:"status"`
	TransactionID string            `json:"transaction_id,omitempty"`
	Metadata      map[string]string `json:"metadata,omitempty"`
	CreatedAt     time.Time         `json:"created_at"`
	CompletedAt   *time.Time        `json:"completed_at,omitempty"`
}

// PaymentUpdate carries a partial update; nil fields are left untouched.
type PaymentUpdate struct {
	Status        *PaymentStatus
	TransactionID *string
	Metadata      map[string]string
	CompletedAt   *time.Time
}

// CheckPaymentTransition validates a payment status change. Settlement may
// complete a payment from either pending or processing; refunds are only
// defined from completed.
func CheckPaymentTransition(from, to PaymentStatus) error {
	switch from {
	case PaymentPending:
		if to != PaymentProcessing && to != PaymentCompleted {
			return fmt.Errorf("%w: %s to %s", ErrInvalidTransition, from, to)
		}
	case PaymentProcessing:
		if to != PaymentCompleted && to != PaymentFailed {
			return fmt.Errorf("%w: %s to %s", ErrInvalidTransition, from, to)
		}
	case PaymentCompleted:
		if to != PaymentRefunded {
			return fmt.Errorf("%w: %s to %s", ErrInvalidTransition, from, to)
		}
	case PaymentFailed, PaymentRefunded:
		return fmt.Errorf("%w: no transitions allowed from %s", ErrInvalidTransition, from)
	default:
		return fmt.Errorf("%w: unknown status %q", ErrInvalidTransition, from)
	}
	return nil
}
