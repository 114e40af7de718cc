package db

import (
	"github.com/fixmaster/fixmaster-core/models"
)

// ListServices returns the active services in insertion order.
func (s *Store) ListServices() []models.Service {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]models.Service, 0, len(s.services))
	for _, svc := range s.services {
		if svc.IsActive {
			out = append(out, svc)
		}
	}
	return out
}

func (s *Store) FindServiceByID(id string) (models.Service, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, svc := range s.services {
		if svc.ID == id {
			return svc, nil
		}
	}
	return models.Service{}, ErrNotFound
}
