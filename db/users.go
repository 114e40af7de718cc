package db

import (
	"github.com/fixmaster/fixmaster-core/models"
)

// CreateUser stamps id and timestamps and appends the record. Email
// uniqueness is the caller's check; the store only guarantees id
// uniqueness.
func (s *Store) CreateUser(u models.User) models.User {
	s.mu.Lock()
	defer s.mu.Unlock()

	u.ID = newID("user")
	u.CreatedAt = now()
	u.UpdatedAt = u.CreatedAt
	s.users = append(s.users, u)
	return u
}

func (s *Store) FindUserByID(id string) (models.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, u := range s.users {
		if u.ID == id {
			return u, nil
		}
	}
	return models.User{}, ErrNotFound
}

func (s *Store) FindUserByEmail(email string) (models.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, u := range s.users {
		if u.Email == email {
			return u, nil
		}
	}
	return models.User{}, ErrNotFound
}

// UpdateUser merges the non-nil fields of upd over the stored record and
// refreshes UpdatedAt. A missing id mutates nothing.
func (s *Store) UpdateUser(id string, upd models.UserUpdate) (models.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.users {
		if s.users[i].ID != id {
			continue
		}
		u := &s.users[i]
		if upd.Name != nil {
			u.Name = *upd.Name
		}
		if upd.Phone != nil {
			u.Phone = *upd.Phone
		}
		if upd.Address != nil {
			u.Address = *upd.Address
		}
		if upd.Avatar != nil {
			u.Avatar = *upd.Avatar
		}
		u.UpdatedAt = now()
		return *u, nil
	}
	return models.User{}, ErrNotFound
}
