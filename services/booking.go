package services

import (
	"errors"
	"fmt"
	"log"
	"time"

	"github.com/fixmaster/fixmaster-core/db"
	"github.com/fixmaster/fixmaster-core/models"
	"github.com/fixmaster/fixmaster-core/utils"
)

var (
	ErrServiceInactive = errors.New("service is not active")
	ErrInvalidCost     = errors.New("cost must be positive")
)

type BookingService struct {
	store             *db.Store
	serviceChargeRate float64
}

func NewBookingService(store *db.Store, serviceChargeRate float64) *BookingService {
	return &BookingService{store: store, serviceChargeRate: serviceChargeRate}
}

type CreateBookingInput struct {
	CustomerID    string `validate:"required"`
	ProviderID    string `validate:"required"`
	ServiceID     string `validate:"required"`
	ScheduledDate string `validate:"required"`
	ScheduledTime string `validate:"required"`
	Address       string `validate:"required"`
	Description   string
}

// Create books a job in pending state with an estimated cost computed
// from the service's base price plus the platform service charge, and
// notifies the provider.
func (bs *BookingService) Create(in CreateBookingInput) (models.Booking, error) {
	if err := models.Validate.Struct(in); err != nil {
		return models.Booking{}, fmt.Errorf("invalid booking: %w", err)
	}
	if _, err := utils.ParseSchedule(in.ScheduledDate, in.ScheduledTime); err != nil {
		return models.Booking{}, err
	}

	customer, err := bs.store.FindUserByID(in.CustomerID)
	if err != nil {
		return models.Booking{}, fmt.Errorf("customer %s: %w", in.CustomerID, err)
	}
	provider, err := bs.store.FindProviderByID(in.ProviderID)
	if err != nil {
		return models.Booking{}, fmt.Errorf("provider %s: %w", in.ProviderID, err)
	}
	service, err := bs.store.FindServiceByID(in.ServiceID)
	if err != nil {
		return models.Booking{}, fmt.Errorf("service %s: %w", in.ServiceID, err)
	}
	if !service.IsActive {
		return models.Booking{}, ErrServiceInactive
	}

	estimate := service.BasePrice * (1 + bs.serviceChargeRate)

	booking := bs.store.CreateBooking(models.Booking{
		CustomerID:    in.CustomerID,
		ProviderID:    in.ProviderID,
		ServiceID:     in.ServiceID,
		Status:        models.BookingPending,
		ScheduledDate: in.ScheduledDate,
		ScheduledTime: in.ScheduledTime,
		Address:       in.Address,
		Description:   in.Description,
		EstimatedCost: estimate,
	})

	bs.store.CreateNotification(models.Notification{
		UserID:  provider.UserID,
		Title:   "New Booking Request",
		Message: fmt.Sprintf("New %s booking request from %s", service.Name, customer.Name),
		Type:    models.NotificationBooking,
	})

	log.Printf("booking %s created for customer %s (estimate %.2f)", booking.ID, customer.ID, estimate)
	return booking, nil
}

// Accept moves a pending booking to confirmed on behalf of the provider.
func (bs *BookingService) Accept(bookingID string) (models.Booking, error) {
	booking, err := bs.transition(bookingID, models.BookingConfirmed, models.BookingUpdate{})
	if err != nil {
		return models.Booking{}, err
	}
	bs.notifyCustomer(booking, "Booking Confirmed",
		fmt.Sprintf("Your booking for %s at %s has been confirmed", booking.ScheduledDate, booking.ScheduledTime))
	return booking, nil
}

// Start moves a confirmed booking to in-progress when the provider
// begins the job.
func (bs *BookingService) Start(bookingID string) (models.Booking, error) {
	booking, err := bs.transition(bookingID, models.BookingInProgress, models.BookingUpdate{})
	if err != nil {
		return models.Booking{}, err
	}
	bs.notifyCustomer(booking, "Job Started",
		"Your service provider has started working on your booking")
	return booking, nil
}

// Complete finishes an in-progress booking and records the final cost.
func (bs *BookingService) Complete(bookingID string, finalCost float64) (models.Booking, error) {
	if finalCost <= 0 {
		return models.Booking{}, ErrInvalidCost
	}
	completedAt := time.Now()
	booking, err := bs.transition(bookingID, models.BookingCompleted, models.BookingUpdate{
		FinalCost:   &finalCost,
		CompletedAt: &completedAt,
	})
	if err != nil {
		return models.Booking{}, err
	}
	bs.notifyCustomer(booking, "Job Completed",
		fmt.Sprintf("Your booking has been completed. Final cost: %.2f", finalCost))
	return booking, nil
}

// Cancel marks a pending or confirmed booking cancelled. The record is
// kept; cancellation is a status change, never a deletion.
func (bs *BookingService) Cancel(bookingID, reason string) (models.Booking, error) {
	booking, err := bs.transition(bookingID, models.BookingCancelled, models.BookingUpdate{
		CancellationReason: &reason,
	})
	if err != nil {
		return models.Booking{}, err
	}
	bs.notifyCustomer(booking, "Booking Cancelled",
		fmt.Sprintf("Your booking has been cancelled: %s", reason))
	return booking, nil
}

// transition validates the status change against the current record
// before writing it, then applies it together with the extra fields.
func (bs *BookingService) transition(bookingID string, to models.BookingStatus, upd models.BookingUpdate) (models.Booking, error) {
	booking, err := bs.store.FindBookingByID(bookingID)
	if err != nil {
		return models.Booking{}, fmt.Errorf("booking %s: %w", bookingID, err)
	}
	if err := models.CheckBookingTransition(booking.Status, to); err != nil {
		return models.Booking{}, err
	}
	upd.Status = &to
	return bs.store.UpdateBooking(bookingID, upd)
}

func (bs *BookingService) notifyCustomer(booking models.Booking, title, message string) {
	bs.store.CreateNotification(models.Notification{
		UserID:  booking.CustomerID,
		Title:   title,
		Message: message,
		Type:    models.NotificationBooking,
	})
}
