package types

import "time"

// CacheEntry is the stored unit. It is replaced wholesale on every write,
// never patched in place.
type CacheEntry struct {
	Key       string
	Value     any
	CreatedAt time.Time
	ExpiresAt time.Time // CreatedAt + ttl
}
