package db

import (
	"github.com/fixmaster/fixmaster-core/models"
)

func (s *Store) CreateNotification(n models.Notification) models.Notification {
	s.mu.Lock()
	defer s.mu.Unlock()

	n.ID = newID("notif")
	n.CreatedAt = now()
	s.notifications = append(s.notifications, n)
	return n
}

func (s *Store) ListNotificationsByUserID(userID string) []models.Notification {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var out []models.Notification
	for _, n := range s.notifications {
		if n.UserID == userID {
			out = append(out, n)
		}
	}
	return out
}

func (s *Store) MarkNotificationRead(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.notifications {
		if s.notifications[i].ID == id {
			s.notifications[i].Read = true
			return nil
		}
	}
	return ErrNotFound
}
