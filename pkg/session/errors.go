package session

import "errors"

var (
	// ErrInvalidCredentials indicates the username/password pair did not
	// match any account. Wrong password and unknown user are deliberately
	// indistinguishable.
	ErrInvalidCredentials = errors.New("session.invalid_credentials")

	// ErrNotPersisted indicates the session row could not be confirmed
	// written (database error, or affected rows != 1). A login is never
	// reported successful on this path.
	ErrNotPersisted = errors.New("session.not_persisted")

	// ErrPoolAcquire indicates a connection could not be checked out for
	// the request. Fatal to the request, never downgraded to "no user".
	ErrPoolAcquire = errors.New("session.pool_acquire_failed")
)
