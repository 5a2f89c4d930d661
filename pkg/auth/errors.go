package auth

import "errors"

var (
	// ErrQueryFailed indicates the credential lookup itself failed, as
	// opposed to credentials simply not matching.
	ErrQueryFailed = errors.New("auth.query_failed")

	// ErrUserExists indicates a registration attempt for a taken username.
	ErrUserExists = errors.New("auth.user_exists")
)
