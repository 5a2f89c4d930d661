package session

import "net/http"

// CookieTransport carries the session key in a plain cookie. The key is a
// bearer credential matched byte-for-byte against the store, so the cookie
// value is the key itself with no encoding or encryption layer on top.
type CookieTransport struct {
	name   string
	secure bool
}

// NewCookieTransport creates a cookie transport for the given cookie name.
func NewCookieTransport(name string, secure bool) *CookieTransport {
	return &CookieTransport{name: name, secure: secure}
}

// GetKey reads the session cookie, or "" when the request carries none.
func (t *CookieTransport) GetKey(r *http.Request) string {
	c, err := r.Cookie(t.name)
	if err != nil {
		return ""
	}
	return c.Value
}

// SetKey writes the session cookie. No Max-Age is set: sessions carry no
// expiry, so the cookie lives until the browser session ends or the client
// is told to clear it.
func (t *CookieTransport) SetKey(w http.ResponseWriter, key string) {
	http.SetCookie(w, &http.Cookie{
		Name:     t.name,
		Value:    key,
		Path:     "/",
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
		Secure:   t.secure,
	})
}

// ClearKey expires the session cookie on the client.
func (t *CookieTransport) ClearKey(w http.ResponseWriter) {
	http.SetCookie(w, &http.Cookie{
		Name:     t.name,
		Value:    "",
		Path:     "/",
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
		Secure:   t.secure,
		MaxAge:   -1,
	})
}
