package models

import (
	"errors"
	"testing"
)

func TestPaymentTransitions_Legal(t *testing.T) {
	legal := []struct {
		from, to PaymentStatus
	}{
		{PaymentPending, PaymentProcessing},
		{PaymentPending, PaymentCompleted},
		{PaymentProcessing, PaymentCompleted},
		{PaymentProcessing, PaymentFailed},
		{PaymentCompleted, PaymentRefunded},
	}
	for _, tc := range legal {
		if err := CheckPaymentTransition(tc.from, tc.to); err != nil {
			t.Errorf("expected %s -> %s to be legal, got %v", tc.from, tc.to, err)
		}
	}
}

func TestPaymentTransitions_Illegal(t *testing.T) {
	illegal := []struct {
		from, to PaymentStatus
	}{
		{PaymentPending, PaymentFailed},
		{PaymentPending, PaymentRefunded},
		{PaymentProcessing, PaymentRefunded},
		{PaymentCompleted, PaymentPending},
		{PaymentCompleted, PaymentProcessing},
		{PaymentFailed, PaymentCompleted},
		{PaymentRefunded, PaymentCompleted},
	}
	for _, tc := range illegal {
		err := CheckPaymentTransition(tc.from, tc.to)
		if err == nil {
			t.Errorf("expected %s -> %s to be rejected", tc.from, tc.to)
			continue
		}
		if !errors.Is(err, ErrInvalidTransition) {
			t.Errorf("expected ErrInvalidTransition for %s -> %s, got %v", tc.from, tc.to, err)
		}
	}
}
