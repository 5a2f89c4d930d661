package session

import (
	"context"
	"errors"
	"io"
	"log/slog"

	"github.com/dmitrymomot/exauth/pkg/auth"
	"github.com/dmitrymomot/exauth/pkg/logger"
	"github.com/dmitrymomot/exauth/pkg/token"
)

// Resolver is the single integration point between the HTTP layer and the
// authentication/storage layer. It turns an optional cookie value into a
// Session and performs logins against the request's session.
type Resolver struct {
	pool   Pool
	store  Store
	authn  auth.Authenticator
	tokens *token.Generator
	config Config
	log    *slog.Logger
}

// Option configures a Resolver.
type Option func(*Resolver)

// WithConfig replaces the default configuration.
func WithConfig(cfg Config) Option {
	return func(r *Resolver) { r.config = cfg }
}

// WithLogger sets the logger used for persistence and checkout failures.
func WithLogger(log *slog.Logger) Option {
	return func(r *Resolver) {
		if log != nil {
			r.log = log
		}
	}
}

// WithTokenGenerator injects a custom key generator (seeded in tests).
func WithTokenGenerator(gen *token.Generator) Option {
	return func(r *Resolver) {
		if gen != nil {
			r.tokens = gen
		}
	}
}

// NewResolver creates a Resolver. Pool, store and authenticator are
// mandatory; misconfiguration panics rather than surfacing at request time.
func NewResolver(pool Pool, store Store, authn auth.Authenticator, opts ...Option) *Resolver {
	r := &Resolver{
		pool:   pool,
		store:  store,
		authn:  authn,
		tokens: token.NewGenerator(nil),
		config: DefaultConfig(),
		log:    slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
	for _, opt := range opts {
		opt(r)
	}

	if r.pool == nil {
		panic("session: resolver requires a connection pool")
	}
	if r.store == nil {
		panic("session: resolver requires a store")
	}
	if r.authn == nil {
		panic("session: resolver requires an authenticator")
	}

	return r
}

// Config returns the resolver configuration (cookie name, key length).
func (r *Resolver) Config() Config {
	return r.config
}

// ResolveSession checks a connection out of the pool and, when key is
// non-empty, matches it against the session store. A checkout failure is
// fatal to the request; a lookup miss or lookup error is collapsed into an
// anonymous session so public pages keep working with a stale cookie.
// The caller owns the returned Session and must Release it.
func (r *Resolver) ResolveSession(ctx context.Context, key string) (*Session, error) {
	conn, err := r.pool.Acquire(ctx)
	if err != nil {
		r.log.ErrorContext(ctx, "failed to acquire database connection",
			logger.Error(err),
			logger.Component("session"),
		)
		return nil, errors.Join(ErrPoolAcquire, err)
	}

	var user *auth.User
	if key != "" {
		user, err = r.store.Resolve(ctx, conn, key)
		if err != nil {
			r.log.ErrorContext(ctx, "session lookup failed",
				logger.Error(err),
				logger.Component("session"),
			)
			user = nil
		}
	}

	return NewSession(conn, user, conn.Release), nil
}

// Login validates credentials and, on success, persists a fresh session key
// for the user. The session is marked authenticated and the key returned
// only when the insert confirmably wrote exactly one row; any other outcome
// leaves the session untouched (fail closed).
func (r *Resolver) Login(ctx context.Context, sess *Session, username, password string) (string, error) {
	user, err := r.authn.Authenticate(ctx, sess.DB(), username, password)
	if err != nil {
		r.log.ErrorContext(ctx, "credential verification failed",
			slog.String("username", username),
			logger.Error(err),
			logger.Component("session"),
		)
		return "", ErrInvalidCredentials
	}
	if user == nil {
		return "", ErrInvalidCredentials
	}

	key := r.tokens.Generate(r.config.KeyLength)
	if err := r.store.Create(ctx, sess.DB(), user.ID, key); err != nil {
		r.log.ErrorContext(ctx, "failed to persist session",
			logger.UserID(user.ID.String()),
			slog.String("username", user.Username),
			logger.Error(err),
			logger.Component("session"),
		)
		if errors.Is(err, ErrNotPersisted) {
			return "", err
		}
		return "", errors.Join(ErrNotPersisted, err)
	}

	sess.user = user
	r.log.InfoContext(ctx, "user authenticated",
		logger.UserID(user.ID.String()),
		slog.String("username", user.Username),
		logger.Component("session"),
	)
	return key, nil
}
