package api

import "time"

/*
Cache defines the PUBLIC API of our in-memory cache system.
This is a contract that guarantees certain behaviors, without exposing internals.
Storage, eviction order, expiry and locking are hidden behind this interface.

Components that memoize results (AI provider responses, search results,
expensive computations) depend on this interface, never on the concrete type.
*/
type Cache interface {

	/*
		Get retrieves the value associated with the given key.

		BEHAVIOR:
		-------------------
		1. If the key exists and is NOT expired:
		   - Refresh its recency
		   - Return (value, true, nil) (cache hit)

		2. If the key does NOT exist or is expired:
		   - Drop the expired entry, if any
		   - Return (nil, false, nil) (cache miss)

		An empty key returns ErrInvalidKey and counts as neither.
	*/
	Get(key string) (any, bool, error)

	/*
		Set stores a key-value pair with the cache's default TTL.

		BEHAVIOR:
		---------
		- Evicts the least recently used entry first if the key is new and the cache is full
		- Replaces the whole entry if the key exists
		- Never fails because of capacity
	*/
	Set(key string, value any) error

	/*
		SetWithTTL stores a key-value pair with an explicit time-to-live (TTL).

		TTL (Time-To-Live):
		-------------------
		- Counted from this write
		- Must be positive, otherwise ErrInvalidTTL and the old entry stays
		- Expired keys are lazily removed on access
	*/
	SetWithTTL(key string, value any, ttl time.Duration) error

	/*
		Delete removes a key from the cache immediately.

		Returns whether the key was present. This operation is idempotent:
		deleting a missing key returns false and changes nothing.
	*/
	Delete(key string) (bool, error)

	/*
		DefaultTTL is the lifetime Set applies.
	*/
	DefaultTTL() time.Duration
}
