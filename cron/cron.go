// Package cron runs the booking reminder job: confirmed bookings
// starting within the next hour get a reminder notification for both
// the customer and the provider.
package cron

import (
	"fmt"
	"log"
	"sync"
	"time"

	"github.com/robfig/cron/v3"

	"github.com/fixmaster/fixmaster-core/db"
	"github.com/fixmaster/fixmaster-core/models"
	"github.com/fixmaster/fixmaster-core/utils"
)

type ReminderScheduler struct {
	store *db.Store
	cron  *cron.Cron

	mu       sync.Mutex
	reminded map[string]bool // booking ids already reminded
}

func NewReminderScheduler(store *db.Store) *ReminderScheduler {
	return &ReminderScheduler{
		store:    store,
		cron:     cron.New(),
		reminded: make(map[string]bool),
	}
}

// Start registers the reminder job and starts the scheduler.
func (rs *ReminderScheduler) Start(spec string) error {
	if _, err := rs.cron.AddFunc(spec, rs.SendReminders); err != nil {
		return fmt.Errorf("failed to add reminder job: %w", err)
	}
	rs.cron.Start()
	log.Println("reminder scheduler started")
	return nil
}

// Stop halts the scheduler. Pending settlement timers are unaffected.
func (rs *ReminderScheduler) Stop() {
	rs.cron.Stop()
}

// SendReminders scans confirmed bookings and notifies each one starting
// within the next hour, once per booking per process run.
func (rs *ReminderScheduler) SendReminders() {
	now := time.Now()
	windowEnd := now.Add(time.Hour)

	for _, booking := range rs.store.ListBookingsByStatus(models.BookingConfirmed) {
		start, err := utils.ParseSchedule(booking.ScheduledDate, booking.ScheduledTime)
		if err != nil {
			log.Printf("booking %s has an unparseable schedule: %v", booking.ID, err)
			continue
		}
		if start.Before(now) || start.After(windowEnd) {
			continue
		}

		rs.mu.Lock()
		if rs.reminded[booking.ID] {
			rs.mu.Unlock()
			continue
		}
		rs.reminded[booking.ID] = true
		rs.mu.Unlock()

		rs.remind(booking, start)
	}
}

func (rs *ReminderScheduler) remind(booking models.Booking, start time.Time) {
	message := fmt.Sprintf("Upcoming booking at %s", start.Format("15:04"))
	if service, err := rs.store.FindServiceByID(booking.ServiceID); err == nil {
		message = fmt.Sprintf("Upcoming %s booking at %s", service.Name, start.Format("15:04"))
	}

	rs.store.CreateNotification(models.Notification{
		UserID:  booking.CustomerID,
		Title:   "Booking Reminder",
		Message: message,
		Type:    models.NotificationBooking,
	})
	if provider, err := rs.store.FindProviderByID(booking.ProviderID); err == nil {
		rs.store.CreateNotification(models.Notification{
			UserID:  provider.UserID,
			Title:   "Booking Reminder",
			Message: message,
			Type:    models.NotificationBooking,
		})
	}

	log.Printf("sent reminder for booking %s", booking.ID)
}
