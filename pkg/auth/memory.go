package auth

import (
	"context"
	"sync"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/dmitrymomot/exauth/pkg/pg"
)

type memoryCredential struct {
	user User
	hash []byte
}

// MemoryAuthenticator is an in-memory Authenticator for tests and local
// development. It ignores the database handle entirely.
type MemoryAuthenticator struct {
	mu    sync.RWMutex
	users map[string]memoryCredential
}

// NewMemoryAuthenticator creates an empty in-memory authenticator.
func NewMemoryAuthenticator() *MemoryAuthenticator {
	return &MemoryAuthenticator{users: make(map[string]memoryCredential)}
}

// Register adds a user with the given credentials and returns the created
// record. The password is hashed with bcrypt at the default cost.
func (a *MemoryAuthenticator) Register(username, realname, password string) (*User, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	a.mu.Lock()
	defer a.mu.Unlock()

	if _, exists := a.users[username]; exists {
		return nil, ErrUserExists
	}

	user := User{ID: uuid.New(), Username: username, Realname: realname}
	a.users[username] = memoryCredential{user: user, hash: hash}
	return &user, nil
}

// Authenticate implements Authenticator. The db handle is unused.
func (a *MemoryAuthenticator) Authenticate(ctx context.Context, _ pg.Querier, username, password string) (*User, error) {
	a.mu.RLock()
	cred, exists := a.users[username]
	a.mu.RUnlock()

	if !exists {
		return nil, nil
	}
	if bcrypt.CompareHashAndPassword(cred.hash, []byte(password)) != nil {
		return nil, nil
	}

	user := cred.user
	return &user, nil
}
