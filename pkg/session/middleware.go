package session

import "net/http"

// Middleware resolves a Session for every request and injects it into the
// request context. The connection is released when the downstream handler
// returns, on every path. A failed pool checkout answers 500; an absent or
// unknown cookie proceeds anonymously.
func (r *Resolver) Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
		var key string
		if c, err := req.Cookie(r.config.CookieName); err == nil {
			key = c.Value
		}

		sess, err := r.ResolveSession(req.Context(), key)
		if err != nil {
			http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
			return
		}
		defer sess.Release()

		ctx := WithSession(req.Context(), sess)
		next.ServeHTTP(w, req.WithContext(ctx))
	})
}
