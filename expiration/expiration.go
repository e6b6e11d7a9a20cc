// This file defines how cache entries expire over time.

package expiration

import (
	"time"

	"github.com/krisalay/memo-cache/types"
)

/*
Strategy is the interface that all expiration rules must follow. Instead of hard-coding
expiration logic into the cache, we define a strategy so expiration behavior can be swapped easily.
*/
type Strategy interface {

	// IsExpired checks if the entry is expired at now.
	IsExpired(ent *types.CacheEntry, now time.Time) bool

	// OnWrite stamps a freshly written entry with its lifetime.
	OnWrite(ent *types.CacheEntry, ttl time.Duration, now time.Time)
}
