package auth

import (
	"context"
	"errors"

	"golang.org/x/crypto/bcrypt"

	"github.com/dmitrymomot/exauth/pkg/pg"
)

// Authenticator verifies a username/password pair against stored
// credentials. A nil user with a nil error means the credentials did not
// match; implementations must not reveal whether the username exists.
// A non-nil error is reserved for infrastructure failures.
type Authenticator interface {
	Authenticate(ctx context.Context, db pg.Querier, username, password string) (*User, error)
}

// PostgresAuthenticator verifies credentials against the users table using
// the connection handle checked out for the current request.
type PostgresAuthenticator struct{}

// NewPostgresAuthenticator creates a Postgres-backed Authenticator.
func NewPostgresAuthenticator() *PostgresAuthenticator {
	return &PostgresAuthenticator{}
}

const credentialsQuery = `SELECT id, username, realname, password FROM users WHERE username = $1`

// Authenticate looks up the user row and compares the stored bcrypt hash.
// bcrypt.CompareHashAndPassword is constant-time over the hash comparison,
// so the password check does not leak match position.
func (a *PostgresAuthenticator) Authenticate(ctx context.Context, db pg.Querier, username, password string) (*User, error) {
	var (
		user User
		hash []byte
	)
	err := db.QueryRow(ctx, credentialsQuery, username).
		Scan(&user.ID, &user.Username, &user.Realname, &hash)
	if pg.IsNotFoundError(err) {
		return nil, nil
	}
	if err != nil {
		return nil, errors.Join(ErrQueryFailed, err)
	}

	if bcrypt.CompareHashAndPassword(hash, []byte(password)) != nil {
		return nil, nil
	}

	return &user, nil
}
