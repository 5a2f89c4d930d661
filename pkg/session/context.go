package session

import (
	"context"

	"github.com/dmitrymomot/exauth/pkg/auth"
)

type sessionContextKey struct{}

// WithSession adds a session to the context.
func WithSession(ctx context.Context, sess *Session) context.Context {
	return context.WithValue(ctx, sessionContextKey{}, sess)
}

// FromContext retrieves the session from the context.
func FromContext(ctx context.Context) (*Session, bool) {
	sess, ok := ctx.Value(sessionContextKey{}).(*Session)
	return sess, ok
}

// MustFromContext retrieves the session from the context or panics. Use in
// handlers mounted behind Resolver.Middleware, where a missing session
// means broken wiring, not a runtime condition.
func MustFromContext(ctx context.Context) *Session {
	sess, ok := FromContext(ctx)
	if !ok {
		panic("session: not found in context")
	}
	return sess
}

// UserFromContext retrieves the authenticated user from the session in
// context, if any.
func UserFromContext(ctx context.Context) (*auth.User, bool) {
	sess, ok := FromContext(ctx)
	if !ok {
		return nil, false
	}
	return sess.User()
}
