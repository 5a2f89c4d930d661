package session

import "net/http"

// Transport defines how the session key travels between server and client.
type Transport interface {
	// GetKey extracts the session key from the request, or "" if absent.
	GetKey(r *http.Request) string

	// SetKey sends the session key in the response.
	SetKey(w http.ResponseWriter, key string)

	// ClearKey removes the session key from the client.
	ClearKey(w http.ResponseWriter)
}
