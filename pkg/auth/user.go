package auth

import "github.com/google/uuid"

// User is the identity record resolved for an authenticated session.
// The session layer only ever reads these fields; the user lifecycle
// (registration, password changes, deletion) lives elsewhere.
type User struct {
	ID       uuid.UUID `json:"id"`
	Username string    `json:"username"`
	Realname string    `json:"realname"`
}
