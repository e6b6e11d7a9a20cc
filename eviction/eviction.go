package eviction

import "time"

/*
This file defines how the cache decides what to remove when it runs out of space.
*/

/*
Policy is the bookkeeping side of eviction. It owns the last-access time of
every stored key and answers one question when the cache is full: which key goes?

The store keeps the policy in lock-step with its entries, so the policy's key set
is always the store's key set. Policies are not safe for concurrent use; the
cache serializes every call.
*/
type Policy interface {

	// OnGet is called whenever a live key is read from the cache.
	OnGet(key string, at time.Time)

	// OnPut is called whenever a key is written, both for new keys and overwrites.
	// A write counts as an access.
	OnPut(key string, at time.Time)

	// Remove drops the key's bookkeeping. Removing an untracked key is a no-op.
	Remove(key string)

	// Victim reports the key that Evict would remove, without removing it.
	Victim() (string, bool)

	// AccessTime returns the last recorded access of key.
	AccessTime(key string) (time.Time, bool)

	// Keys lists tracked keys from most to least recently used.
	Keys() []string

	// Len is the number of tracked keys.
	Len() int

	// Reset forgets every key.
	Reset()
}
