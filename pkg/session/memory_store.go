package session

import (
	"context"
	"sync"

	"github.com/google/uuid"

	"github.com/dmitrymomot/exauth/pkg/auth"
	"github.com/dmitrymomot/exauth/pkg/pg"
)

// MemoryStore implements Store in memory. It ignores the database handle
// and is intended for tests and local development; users known to the
// store must be added up front with AddUser.
type MemoryStore struct {
	mu       sync.RWMutex
	users    map[uuid.UUID]auth.User
	sessions map[string]uuid.UUID
}

// NewMemoryStore creates an empty in-memory session store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		users:    make(map[uuid.UUID]auth.User),
		sessions: make(map[string]uuid.UUID),
	}
}

// AddUser registers a user record that session keys may resolve to.
func (m *MemoryStore) AddUser(user auth.User) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.users[user.ID] = user
}

// Create stores a (user, key) pair. Unknown users are rejected to mimic the
// foreign-key constraint of the Postgres store.
func (m *MemoryStore) Create(ctx context.Context, _ pg.Querier, userID uuid.UUID, key string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if _, exists := m.users[userID]; !exists {
		return ErrNotPersisted
	}
	m.sessions[key] = userID
	return nil
}

// Resolve maps a key back to its user, or (nil, nil) on a miss.
func (m *MemoryStore) Resolve(ctx context.Context, _ pg.Querier, key string) (*auth.User, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	userID, exists := m.sessions[key]
	if !exists {
		return nil, nil
	}
	user, exists := m.users[userID]
	if !exists {
		return nil, nil
	}
	return &user, nil
}

// Len returns the number of stored sessions.
func (m *MemoryStore) Len() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.sessions)
}
