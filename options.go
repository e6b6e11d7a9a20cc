package cache

import (
	"log/slog"
	"time"

	"github.com/krisalay/memo-cache/types"
)

type options struct {
	clock   func() time.Time
	metrics types.Metrics
	logger  *slog.Logger
}

// Option customizes the collaborators of a Cache. Capacity and TTL are not
// options; they come from config.Config.
type Option func(*options)

// WithClock replaces time.Now as the cache's time source.
func WithClock(now func() time.Time) Option {
	return func(o *options) { o.clock = now }
}

// WithMetrics sends cache events to m.
func WithMetrics(m types.Metrics) Option {
	return func(o *options) { o.metrics = m }
}

// WithLogger sends debug events (evictions, expirations) to l.
func WithLogger(l *slog.Logger) Option {
	return func(o *options) { o.logger = l }
}
