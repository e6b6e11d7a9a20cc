package cache

import (
	"fmt"
	"sync"
	"time"

	"github.com/gobwas/glob"

	"github.com/krisalay/memo-cache/api"
	"github.com/krisalay/memo-cache/config"
	"github.com/krisalay/memo-cache/engine"
	"github.com/krisalay/memo-cache/eviction"
	"github.com/krisalay/memo-cache/store"
	"github.com/krisalay/memo-cache/types"
)

/*
Cache is the main cache implementation.
This struct is the orchestrator that connects:
- storage and LRU bookkeeping (store)
- expiry, clock, metrics and logging (engine)
- capacity and default TTL (config)
- hit/miss accounting

A single RWMutex guards all of it. Get takes the write lock because a hit
refreshes the key's access time.
*/
type Cache struct {
	mu sync.RWMutex

	store  *store.Store
	engine *engine.CacheEngine

	maxSize    int
	defaultTTL time.Duration

	hits        uint64
	misses      uint64
	evictions   uint64
	expirations uint64
}

// New builds a Cache from cfg. cfg is validated and then fixed for the life of
// the Cache.
func New(cfg config.Config, opts ...Option) (*Cache, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	var o options
	for _, opt := range opts {
		opt(&o)
	}

	return &Cache{
		store:      store.New(eviction.NewLRU()),
		engine:     engine.NewCacheEngine(nil, o.metrics, o.logger, o.clock),
		maxSize:    cfg.MaxSize,
		defaultTTL: cfg.DefaultTTL,
	}, nil
}

/*
Get retrieves a value from the cache.

  - absent key: miss
  - expired entry: removed, miss
  - live entry: access time refreshed, hit

Exactly one of hit or miss is counted per call with a valid key.
*/
func (c *Cache) Get(key string) (any, bool, error) {
	if key == "" {
		return nil, false, fmt.Errorf("%w: empty key", ErrInvalidKey)
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	now := c.engine.Now()

	ent, ok := c.store.Get(key)
	if !ok {
		c.misses++
		c.engine.Metrics.Miss()
		return nil, false, nil
	}

	if c.engine.IsExpired(ent, now) {
		c.store.Delete(key)
		c.expirations++
		c.misses++
		c.engine.OnExpire(ent, now)
		c.engine.Metrics.Miss()
		c.engine.Metrics.Size(c.store.Len())
		return nil, false, nil
	}

	c.store.Touch(key, now)
	c.hits++
	c.engine.Metrics.Hit()

	return ent.Value, true, nil
}

// Set stores value under key with the default TTL.
func (c *Cache) Set(key string, value any) error {
	return c.SetWithTTL(key, value, c.defaultTTL)
}

/*
SetWithTTL stores value under key for ttl.

If key is new and the cache is full, the least recently used entry is evicted
first. Overwriting an existing key never evicts anything. Concurrent writers of
the same key are serialized; the last one to take the lock wins.
*/
func (c *Cache) SetWithTTL(key string, value any, ttl time.Duration) error {
	if key == "" {
		return fmt.Errorf("%w: empty key", ErrInvalidKey)
	}
	if ttl <= 0 {
		return fmt.Errorf("%w: got %s for key %q", ErrInvalidTTL, ttl, key)
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	now := c.engine.Now()

	if _, exists := c.store.Get(key); !exists && c.store.Len() >= c.maxSize {
		c.evictLocked(key)
	}

	ent := &types.CacheEntry{Key: key, Value: value}
	c.engine.OnWrite(ent, ttl, now)
	c.store.Put(ent, now)
	c.engine.Metrics.Size(c.store.Len())

	return nil
}

// evictLocked removes the LRU victim through the same path as Delete.
func (c *Cache) evictLocked(incoming string) {
	victim, ok := c.store.Victim()
	if !ok {
		return
	}
	lastAccess, _ := c.store.AccessTime(victim)
	c.store.Delete(victim)
	c.evictions++
	c.engine.OnEvict(victim, incoming, lastAccess)
}

// Delete removes key, reporting whether it was present. Counters are untouched.
func (c *Cache) Delete(key string) (bool, error) {
	if key == "" {
		return false, fmt.Errorf("%w: empty key", ErrInvalidKey)
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	existed := c.store.Delete(key)
	if existed {
		c.engine.Metrics.Size(c.store.Len())
	}
	return existed, nil
}

/*
DeleteMatching removes every key matching a glob pattern and returns how many
were removed. "*" matches everything, "func:search:*" one memoized function's
results. Counters are untouched, unlike Clear.
*/
func (c *Cache) DeleteMatching(pattern string) (int, error) {
	if pattern == "" {
		return 0, fmt.Errorf("%w: empty pattern", ErrInvalidPattern)
	}
	g, err := glob.Compile(pattern)
	if err != nil {
		return 0, fmt.Errorf("%w: %q: %v", ErrInvalidPattern, pattern, err)
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	removed := 0
	for _, key := range c.store.Keys() {
		if g.Match(key) && c.store.Delete(key) {
			removed++
		}
	}
	if removed > 0 {
		c.engine.Metrics.Size(c.store.Len())
	}
	return removed, nil
}

// Clear removes every entry and resets all counters.
func (c *Cache) Clear() {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.store.Reset()
	c.hits = 0
	c.misses = 0
	c.evictions = 0
	c.expirations = 0
	c.engine.Metrics.Size(0)
}

/*
TTL returns the remaining time-to-live of key.

It returns -2 when the key does not exist or has already expired. TTL is a pure
read: it neither counts as a request nor refreshes recency.
*/
func (c *Cache) TTL(key string) time.Duration {
	c.mu.RLock()
	defer c.mu.RUnlock()

	ent, ok := c.store.Get(key)
	if !ok {
		return -2
	}
	now := c.engine.Now()
	if c.engine.IsExpired(ent, now) {
		return -2
	}
	return ent.ExpiresAt.Sub(now)
}

// Stats returns a snapshot of size and request counters.
func (c *Cache) Stats() Stats {
	c.mu.RLock()
	defer c.mu.RUnlock()

	total := c.hits + c.misses
	return Stats{
		Size:          c.store.Len(),
		MaxSize:       c.maxSize,
		Hits:          c.hits,
		Misses:        c.misses,
		HitRate:       hitRate(c.hits, total),
		TotalRequests: total,
		Evictions:     c.evictions,
		Expirations:   c.expirations,
	}
}

// Keys lists stored keys from most to least recently used, expired ones included.
func (c *Cache) Keys() []string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.store.Keys()
}

// Len returns the number of stored entries, expired ones included.
func (c *Cache) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.store.Len()
}

// DefaultTTL is the lifetime applied by Set.
func (c *Cache) DefaultTTL() time.Duration {
	return c.defaultTTL
}

var _ api.Cache = (*Cache)(nil)
