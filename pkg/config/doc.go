// Package config loads application configuration from environment
// variables into tagged structs.
//
// It wraps github.com/joho/godotenv and github.com/caarlos0/env/v11:
// optional `.env` files are loaded first, then the environment is parsed
// into any struct with `env` field tags. Each configuration type is parsed
// at most once per process and served from a cache afterwards; tests can
// call ResetCache between cases.
//
//	type Config struct {
//	    DatabaseURL string `env:"DATABASE_URL,required"`
//	    CookieName  string `env:"SESSION_COOKIE_NAME" envDefault:"EXAUTH"`
//	}
//
//	var cfg Config
//	config.MustLoad(&cfg)
package config
