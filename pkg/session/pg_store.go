package session

import (
	"context"
	"errors"

	"github.com/google/uuid"

	"github.com/dmitrymomot/exauth/pkg/auth"
	"github.com/dmitrymomot/exauth/pkg/pg"
)

// PGStore implements Store over the users/sessions tables.
type PGStore struct{}

// NewPGStore creates a Postgres-backed session store.
func NewPGStore() *PGStore {
	return &PGStore{}
}

const (
	createSessionQuery = `INSERT INTO sessions (user_id, cookie) VALUES ($1, $2)`

	// LIMIT 1 is defensive: key uniqueness rests on generation entropy,
	// not a database constraint, so a collision must not break resolution.
	resolveSessionQuery = `
		SELECT u.id, u.username, u.realname
		FROM users u
		INNER JOIN sessions s ON s.user_id = u.id
		WHERE s.cookie = $1
		LIMIT 1`
)

// Create inserts the session row and confirms exactly one row was written.
func (st *PGStore) Create(ctx context.Context, db pg.Querier, userID uuid.UUID, key string) error {
	tag, err := db.Exec(ctx, createSessionQuery, userID, key)
	if err != nil {
		return errors.Join(ErrNotPersisted, err)
	}
	if tag.RowsAffected() != 1 {
		return ErrNotPersisted
	}
	return nil
}

// Resolve joins sessions to users on exact key equality.
func (st *PGStore) Resolve(ctx context.Context, db pg.Querier, key string) (*auth.User, error) {
	var user auth.User
	err := db.QueryRow(ctx, resolveSessionQuery, key).
		Scan(&user.ID, &user.Username, &user.Realname)
	if pg.IsNotFoundError(err) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &user, nil
}
