package memo

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"golang.org/x/sync/singleflight"

	"github.com/krisalay/memo-cache/api"
)

// ErrInvalidWrap is returned by Wrap for unusable arguments.
var ErrInvalidWrap = errors.New("memo: invalid wrap")

// Func is a function whose results can be memoized.
type Func[A, R any] func(ctx context.Context, arg A) (R, error)

// KeyFunc renders an argument as a canonical string. Equal strings mean the
// calls are interchangeable.
type KeyFunc[A any] func(arg A) (string, error)

type memoizer[A, R any] struct {
	cache  api.Cache
	name   string
	fn     Func[A, R]
	key    KeyFunc[A]
	opts   options
	flight *singleflight.Group
}

/*
Wrap returns fn memoized in c under name.

On a hit the cached result is returned without calling fn. On a miss fn runs
once for that caller, its result is stored and returned. Errors from fn are
returned and never cached. A cached value that is not an R is treated as a miss
and overwritten.
*/
func Wrap[A, R any](c api.Cache, name string, fn Func[A, R], key KeyFunc[A], opts ...Option) (Func[A, R], error) {
	switch {
	case c == nil:
		return nil, fmt.Errorf("%w: nil cache", ErrInvalidWrap)
	case name == "":
		return nil, fmt.Errorf("%w: empty function name", ErrInvalidWrap)
	case fn == nil:
		return nil, fmt.Errorf("%w: nil function %q", ErrInvalidWrap, name)
	case key == nil:
		return nil, fmt.Errorf("%w: nil key function for %q", ErrInvalidWrap, name)
	}

	o := options{prefix: DefaultPrefix}
	for _, opt := range opts {
		opt(&o)
	}
	if o.ttlSet && o.ttl <= 0 {
		return nil, fmt.Errorf("%w: ttl must be positive for %q, got %s", ErrInvalidWrap, name, o.ttl)
	}
	if o.prefix == "" {
		return nil, fmt.Errorf("%w: empty prefix for %q", ErrInvalidWrap, name)
	}
	if o.logger == nil {
		o.logger = slog.New(slog.DiscardHandler)
	}

	m := &memoizer[A, R]{
		cache: c,
		name:  name,
		fn:    fn,
		key:   key,
		opts:  o,
	}
	if o.singleFlight {
		m.flight = &singleflight.Group{}
	}
	return m.call, nil
}

func (m *memoizer[A, R]) call(ctx context.Context, arg A) (R, error) {
	var zero R

	canonical, err := m.key(arg)
	if err != nil {
		return zero, fmt.Errorf("memo %s: derive key: %w", m.name, err)
	}
	k := cacheKey(m.opts.prefix, m.name, canonical)

	if r, ok := m.lookup(k); ok {
		return r, nil
	}

	if m.flight == nil {
		return m.fill(ctx, k, arg)
	}

	v, err, _ := m.flight.Do(k, func() (any, error) {
		return m.fill(ctx, k, arg)
	})
	if err != nil {
		return zero, err
	}
	r, _ := v.(R)
	return r, nil
}

func (m *memoizer[A, R]) lookup(k string) (R, bool) {
	var zero R

	v, ok, err := m.cache.Get(k)
	if err != nil || !ok {
		return zero, false
	}
	if v == nil {
		return zero, true
	}
	r, ok := v.(R)
	if !ok {
		m.opts.logger.Warn("memo cached value has unexpected type",
			"func", m.name,
			"key", k,
			"type", fmt.Sprintf("%T", v),
		)
		return zero, false
	}
	return r, true
}

func (m *memoizer[A, R]) fill(ctx context.Context, k string, arg A) (R, error) {
	r, err := m.fn(ctx, arg)
	if err != nil {
		return r, err
	}

	if m.opts.ttlSet {
		err = m.cache.SetWithTTL(k, r, m.opts.ttl)
	} else {
		err = m.cache.Set(k, r)
	}
	if err != nil {
		m.opts.logger.Warn("memo result not cached",
			"func", m.name,
			"key", k,
			"error", err,
		)
	}
	return r, nil
}
