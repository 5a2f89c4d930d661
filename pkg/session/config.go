package session

import "time"

// Config holds session resolution settings.
type Config struct {
	// CookieName is the name of the session cookie.
	CookieName string `env:"SESSION_COOKIE_NAME" envDefault:"EXAUTH"`

	// KeyLength is the length of generated session keys.
	KeyLength int `env:"SESSION_KEY_LENGTH" envDefault:"48"`

	// SecureCookies enables the Secure flag on session cookies
	// (recommended for production).
	SecureCookies bool `env:"SESSION_SECURE_COOKIES" envDefault:"false"`

	// CacheTTL bounds how long a resolved identity may be served from the
	// optional Redis cache. It does not expire the session itself.
	CacheTTL time.Duration `env:"SESSION_CACHE_TTL" envDefault:"5m"`
}

// DefaultConfig returns default session configuration.
func DefaultConfig() Config {
	return Config{
		CookieName:    "EXAUTH",
		KeyLength:     48,
		SecureCookies: false,
		CacheTTL:      5 * time.Minute,
	}
}
