package session

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"

	"github.com/dmitrymomot/exauth/pkg/auth"
	"github.com/dmitrymomot/exauth/pkg/logger"
	"github.com/dmitrymomot/exauth/pkg/pg"
)

// Cache is the subset of redis.Client the cached store depends on,
// kept narrow so tests can stub it with prebuilt command results.
type Cache interface {
	Get(ctx context.Context, key string) *redis.StringCmd
	Set(ctx context.Context, key string, value any, ttl time.Duration) *redis.StatusCmd
}

// CachedStore decorates a Store with a Redis read-through cache of
// key→user. The cache is strictly best-effort: any cache failure falls
// back to the underlying store, and a cache entry expiring early only
// costs one extra database join. Session validity itself is never decided
// by the cache.
type CachedStore struct {
	next   Store
	cache  Cache
	ttl    time.Duration
	prefix string
	log    *slog.Logger
}

// CachedStoreOption configures a CachedStore.
type CachedStoreOption func(*CachedStore)

// WithCacheTTL overrides the default 5 minute cache entry lifetime.
func WithCacheTTL(ttl time.Duration) CachedStoreOption {
	return func(c *CachedStore) {
		if ttl > 0 {
			c.ttl = ttl
		}
	}
}

// WithCacheLogger sets the logger for cache degradation events.
func WithCacheLogger(log *slog.Logger) CachedStoreOption {
	return func(c *CachedStore) {
		if log != nil {
			c.log = log
		}
	}
}

// NewCachedStore wraps next with a Redis read-through cache.
func NewCachedStore(next Store, cache Cache, opts ...CachedStoreOption) *CachedStore {
	c := &CachedStore{
		next:   next,
		cache:  cache,
		ttl:    5 * time.Minute,
		prefix: "session:",
		log:    slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Create delegates to the underlying store. The cache is populated lazily
// on the first Resolve, so a failed insert can never leave a cache entry
// behind for a session that was never persisted.
func (c *CachedStore) Create(ctx context.Context, db pg.Querier, userID uuid.UUID, key string) error {
	return c.next.Create(ctx, db, userID, key)
}

// Resolve serves the user from cache when possible and falls through to
// the underlying store otherwise. Store results are written back to the
// cache best-effort.
func (c *CachedStore) Resolve(ctx context.Context, db pg.Querier, key string) (*auth.User, error) {
	payload, err := c.cache.Get(ctx, c.prefix+key).Result()
	switch {
	case err == nil:
		var user auth.User
		if jsonErr := json.Unmarshal([]byte(payload), &user); jsonErr == nil {
			return &user, nil
		}
		// Corrupt entry: fall through and let the write-back repair it.
	case !errors.Is(err, redis.Nil):
		c.log.WarnContext(ctx, "session cache unavailable, falling back to store",
			logger.Error(err),
			logger.Component("session"),
		)
	}

	user, err := c.next.Resolve(ctx, db, key)
	if err != nil || user == nil {
		return user, err
	}

	if data, jsonErr := json.Marshal(user); jsonErr == nil {
		if setErr := c.cache.Set(ctx, c.prefix+key, data, c.ttl).Err(); setErr != nil {
			c.log.WarnContext(ctx, "failed to populate session cache",
				logger.Error(setErr),
				logger.Component("session"),
			)
		}
	}

	return user, nil
}
