package db

import (
	"github.com/fixmaster/fixmaster-core/models"
)

// ListProviders returns all providers in insertion order.
func (s *Store) ListProviders() []models.Provider {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]models.Provider, len(s.providers))
	copy(out, s.providers)
	return out
}

func (s *Store) FindProviderByID(id string) (models.Provider, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, p := range s.providers {
		if p.ID == id {
			return p, nil
		}
	}
	return models.Provider{}, ErrNotFound
}

func (s *Store) FindProviderByUserID(userID string) (models.Provider, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, p := range s.providers {
		if p.UserID == userID {
			return p, nil
		}
	}
	return models.Provider{}, ErrNotFound
}

// CreateProvider stamps an id and appends the profile. Used when a signup
// of type provider needs a matching business profile.
func (s *Store) CreateProvider(p models.Provider) models.Provider {
	s.mu.Lock()
	defer s.mu.Unlock()

	p.ID = newID("provider")
	s.providers = append(s.providers, p)
	return p
}
