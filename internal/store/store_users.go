package store

import (
	"context"

	"github.com/dkurbatov/lifehub/models"
)

// GetUserByOpenID looks a user up by the external identity handle.
// Returns ErrNotFound when no user carries the handle.
func (s *Store) GetUserByOpenID(ctx context.Context, openID string) (models.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	id, ok := s.usersByOpenID[openID]
	if !ok {
		return models.User{}, ErrNotFound
	}

	return s.users[id], nil
}

// UpsertUser creates a user keyed by OpenID, or refreshes the existing one.
// On update, zero-valued optional fields of the payload are left untouched;
// the role defaults to RoleUser on creation. LastSignedIn is refreshed on
// every call.
func (s *Store) UpsertUser(ctx context.Context, data models.UpsertUser) (models.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.now()

	if id, ok := s.usersByOpenID[data.OpenID]; ok {
		user := s.users[id]
		if data.Name != "" {
			user.Name = data.Name
		}
		if data.Email != "" {
			user.Email = data.Email
		}
		if data.LoginMethod != "" {
			user.LoginMethod = data.LoginMethod
		}
		if data.Role != "" {
			user.Role = data.Role
		}
		user.UpdatedAt = now
		user.LastSignedIn = now
		s.users[id] = user
		return user, nil
	}

	role := data.Role
	if role == "" {
		role = models.RoleUser
	}

	s.userSeq++
	user := models.User{
		ID:           s.userSeq,
		OpenID:       data.OpenID,
		Name:         data.Name,
		Email:        data.Email,
		LoginMethod:  data.LoginMethod,
		Role:         role,
		CreatedAt:    now,
		UpdatedAt:    now,
		LastSignedIn: now,
	}
	s.users[user.ID] = user
	s.usersByOpenID[user.OpenID] = user.ID

	return user, nil
}
