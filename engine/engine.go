package engine

import (
	"log/slog"
	"time"

	"github.com/krisalay/memo-cache/expiration"
	"github.com/krisalay/memo-cache/types"
)

/*
CacheEngine is the "brain" of the cache system.
It is responsible for the "behavior" of the cache, NOT storage.
This acts as the policy layer.

It decides:
- What time it is
- When data is expired
- How a written entry is stamped
- How events are recorded (metrics and logs)

It does NOT:
- Store data
- Handle locking
- Decide eviction order
*/
type CacheEngine struct {

	// Expiration controls when a cache entry should be considered "too old".
	Expiration expiration.Strategy

	// Metrics receives hit, miss, eviction, expiration and size events.
	Metrics types.Metrics

	// Logger receives debug-level lifecycle events.
	Logger *slog.Logger

	// Clock is the single time source for one cache instance. Every timestamp
	// the cache compares comes from here.
	Clock func() time.Time
}

/*
NewCacheEngine creates a CacheEngine. Nil arguments fall back to
ExpireAfterWrite, NoopMetrics, a discarding logger and time.Now.
*/
func NewCacheEngine(
	exp expiration.Strategy,
	metrics types.Metrics,
	logger *slog.Logger,
	clock func() time.Time,
) *CacheEngine {

	if exp == nil {
		exp = expiration.ExpireAfterWrite{}
	}
	if metrics == nil {
		metrics = types.NoopMetrics{}
	}
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	if clock == nil {
		clock = time.Now
	}

	return &CacheEngine{
		Expiration: exp,
		Metrics:    metrics,
		Logger:     logger,
		Clock:      clock,
	}
}

// Now returns the current time from the engine clock.
func (e *CacheEngine) Now() time.Time {
	return e.Clock()
}

// IsExpired delegates the decision to the configured Expiration strategy.
func (e *CacheEngine) IsExpired(ent *types.CacheEntry, now time.Time) bool {
	return e.Expiration.IsExpired(ent, now)
}

// OnWrite stamps ent with its creation and expiry times.
func (e *CacheEngine) OnWrite(ent *types.CacheEntry, ttl time.Duration, now time.Time) {
	e.Expiration.OnWrite(ent, ttl, now)
}

// OnExpire records that ent was found stale and removed.
func (e *CacheEngine) OnExpire(ent *types.CacheEntry, now time.Time) {
	e.Metrics.Expire()
	e.Logger.Debug("cache entry expired",
		"key", ent.Key,
		"expires_at", ent.ExpiresAt,
		"late_by", now.Sub(ent.ExpiresAt),
	)
}

// OnEvict records that key was removed to make room for incoming.
func (e *CacheEngine) OnEvict(key, incoming string, lastAccess time.Time) {
	e.Metrics.Eviction()
	e.Logger.Debug("cache entry evicted",
		"key", key,
		"incoming", incoming,
		"last_access", lastAccess,
	)
}
