package session

import (
	"context"

	"github.com/google/uuid"

	"github.com/dmitrymomot/exauth/pkg/auth"
	"github.com/dmitrymomot/exauth/pkg/pg"
)

// Store persists (user, key) pairs and resolves a key back to its user.
// Implementations receive the request's own database handle so that every
// statement of a request runs on the same checked-out connection.
type Store interface {
	// Create inserts exactly one session row. Any outcome other than a
	// confirmed single-row insert is reported as ErrNotPersisted (with the
	// underlying cause joined in).
	Create(ctx context.Context, db pg.Querier, userID uuid.UUID, key string) error

	// Resolve returns the user whose session matches key exactly, or
	// (nil, nil) when no session matches. Errors are reserved for query
	// failures; a plain miss is not an error.
	Resolve(ctx context.Context, db pg.Querier, key string) (*auth.User, error)
}
