// Package session implements cookie-based session authentication over a
// pooled Postgres connection.
//
// Every incoming request passes through the Resolver exactly once: a
// connection is checked out from the pool, the optional session cookie is
// matched against the sessions table, and the resulting Session value —
// connection handle plus optional authenticated user — is injected into the
// request context for downstream handlers. A missing, stale or unknown
// cookie yields an anonymous session; only a failed pool checkout fails the
// request itself.
//
// # Wiring
//
//	pool, err := pg.Connect(ctx, pgCfg)
//	if err != nil {
//	    log.Error("database unavailable", logger.Error(err))
//	    os.Exit(1)
//	}
//
//	resolver := session.NewResolver(
//	    session.NewPool(pool),
//	    session.NewPGStore(),
//	    auth.NewPostgresAuthenticator(),
//	)
//
//	r := chi.NewRouter()
//	r.Use(resolver.Middleware)
//	r.Mount("/login", login.NewService(resolver).Handle())
//
// Handlers read the identity back with session.FromContext:
//
//	sess := session.MustFromContext(r.Context())
//	if user, ok := sess.User(); ok {
//	    // authenticated request
//	}
//
// # Login
//
// Resolver.Login authenticates credentials, generates a fresh 48-character
// alphanumeric key, and persists the (user, key) pair. The login is reported
// as successful only when the insert confirmably wrote exactly one row;
// everything else fails closed. The returned key is what the HTTP layer sets
// as the EXAUTH cookie, and what later requests present to be recognized.
//
// Session rows carry no expiry; revocation is an external concern. The
// optional Redis-backed CachedStore only bounds how long a resolved identity
// may be served from cache, never how long the session itself is valid.
package session
