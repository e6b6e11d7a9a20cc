package expiration

import (
	"time"

	"github.com/krisalay/memo-cache/types"
)

/*
ExpireAfterWrite gives every entry a fixed lifetime counted from the write that
created it. Reads do not extend it; only another write does.
*/
type ExpireAfterWrite struct{}

// IsExpired reports whether now has reached the entry's deadline. An entry is
// already stale at the exact instant ExpiresAt.
func (ExpireAfterWrite) IsExpired(ent *types.CacheEntry, now time.Time) bool {
	return !now.Before(ent.ExpiresAt)
}

// OnWrite records creation at now and sets ExpiresAt to now + ttl.
func (ExpireAfterWrite) OnWrite(ent *types.CacheEntry, ttl time.Duration, now time.Time) {
	ent.CreatedAt = now
	ent.ExpiresAt = now.Add(ttl)
}
