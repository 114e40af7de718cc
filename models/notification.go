package models

import (
	"time"
)

type NotificationType string

const (
	NotificationBooking NotificationType = "booking"
	NotificationPayment NotificationType = "payment"
	NotificationReview  NotificationType = "review"
	NotificationSystem  NotificationType = "system"
)

type Notification struct {
	ID        string           `json:"id"`
	UserID    string           `json:"user_id"`
	Title     string           `json:"title"`
	Message   string           `json:"message"`
	Type      NotificationType `json:"type"`
	Read      bool             `json:"read"`
	CreatedAt time.Time        `json:"created_at"`
}
