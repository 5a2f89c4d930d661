package session

import (
	"sync"

	"github.com/dmitrymomot/exauth/pkg/auth"
	"github.com/dmitrymomot/exauth/pkg/pg"
)

// Session is the request-scoped value handed to every downstream handler:
// a checked-out database handle plus the optionally resolved user. It is
// owned by a single request flow and must not be shared across requests.
type Session struct {
	db      pg.Querier
	user    *auth.User
	release func()
	once    sync.Once
}

// NewSession builds a Session around a database handle. The release
// callback, if non-nil, is invoked exactly once by Release and returns the
// handle to its pool. Production sessions are constructed by the Resolver;
// this constructor exists for tests and custom integrations.
func NewSession(db pg.Querier, user *auth.User, release func()) *Session {
	return &Session{db: db, user: user, release: release}
}

// DB returns the database handle checked out for this request.
func (s *Session) DB() pg.Querier {
	return s.db
}

// User returns the authenticated user, if any. The second return value is
// false for anonymous sessions, making the anonymous state explicit at
// every call site.
func (s *Session) User() (*auth.User, bool) {
	if s == nil || s.user == nil {
		return nil, false
	}
	return s.user, true
}

// Authenticated reports whether the session carries a resolved user.
func (s *Session) Authenticated() bool {
	return s != nil && s.user != nil
}

// Release returns the connection to the pool. Safe to call more than once;
// only the first call has effect.
func (s *Session) Release() {
	if s == nil {
		return
	}
	s.once.Do(func() {
		if s.release != nil {
			s.release()
		}
	})
}
