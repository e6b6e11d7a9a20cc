package memo

import (
	"log/slog"
	"time"
)

// DefaultPrefix namespaces memoized keys unless WithPrefix says otherwise.
const DefaultPrefix = "func"

type options struct {
	ttl          time.Duration
	ttlSet       bool
	prefix       string
	singleFlight bool
	logger       *slog.Logger
}

// Option configures Wrap.
type Option func(*options)

// WithTTL stores results for ttl instead of the cache default. ttl must be positive.
func WithTTL(ttl time.Duration) Option {
	return func(o *options) {
		o.ttl = ttl
		o.ttlSet = true
	}
}

// WithPrefix replaces DefaultPrefix.
func WithPrefix(prefix string) Option {
	return func(o *options) { o.prefix = prefix }
}

/*
WithSingleFlight collapses concurrent misses on the same key into one call of
the wrapped function; the other callers wait and share its result and error.
The shared call runs with the context of the caller that started it.

Without it, simultaneous misses each call the function and the last write wins.
*/
func WithSingleFlight() Option {
	return func(o *options) { o.singleFlight = true }
}

// WithLogger receives warnings when a result cannot be stored.
func WithLogger(l *slog.Logger) Option {
	return func(o *options) { o.logger = l }
}
