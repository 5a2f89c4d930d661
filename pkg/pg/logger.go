package pg

import "context"

// logger is the slice of slog.Logger the migration path needs. Declared
// locally so callers can pass any structured logger with context methods.
type logger interface {
	InfoContext(ctx context.Context, msg string, args ...any)
	ErrorContext(ctx context.Context, msg string, args ...any)
}
