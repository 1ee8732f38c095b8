package users

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"
)

var _ Store = (*MemoryStore)(nil)

type MemoryStore struct {
	mu    sync.RWMutex
	users map[string]User
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{users: make(map[string]User)}
}

func (m *MemoryStore) FindOrCreateByProvider(_ context.Context, identity ProviderIdentity, isAdmin bool) (*User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	now := time.Now().UTC()

	for id, u := range m.users {
		if u.Provider == identity.Provider && u.ProviderID == identity.ProviderID {
			u.Email = identity.Email
			u.Name = identity.Name
			u.AvatarURL = identity.AvatarURL
			u.IsAdmin = isAdmin
			u.UpdatedAt = now
			m.users[id] = u

			return &u, nil
		}
	}

	u := User{
		ID:         uuid.NewString(),
		Email:      identity.Email,
		Provider:   identity.Provider,
		ProviderID: identity.ProviderID,
		Name:       identity.Name,
		AvatarURL:  identity.AvatarURL,
		IsAdmin:    isAdmin,
		CreatedAt:  now,
		UpdatedAt:  now,
	}
	m.users[u.ID] = u

	return &u, nil
}

func (m *MemoryStore) FindByID(_ context.Context, userID string) (*User, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	u, ok := m.users[userID]
	if !ok {
		return nil, ErrUserNotFound
	}

	return &u, nil
}

func (m *MemoryStore) IsAdmin(ctx context.Context, userID string) (bool, error) {
	u, err := m.FindByID(ctx, userID)
	if err != nil {
		return false, err
	}

	return u.IsAdmin, nil
}
