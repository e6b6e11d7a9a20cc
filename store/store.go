package store

import (
	"time"

	"github.com/krisalay/memo-cache/eviction"
	"github.com/krisalay/memo-cache/types"
)

/*
This file defines how data is actually stored. A Store pairs two structures:

  - entries: key -> *types.CacheEntry
  - the eviction policy, which owns the last-access time of every key

Every method updates both together, so the key sets never diverge. The Store
does no locking of its own; the cache holds one lock across every call.
*/
type Store struct {
	entries  map[string]*types.CacheEntry
	eviction eviction.Policy
}

// New returns an empty Store tracking access through policy.
func New(policy eviction.Policy) *Store {
	return &Store{
		entries:  make(map[string]*types.CacheEntry),
		eviction: policy,
	}
}

// Get returns the entry for key. It does not count as an access; call Touch
// once the entry is known to be live.
func (s *Store) Get(key string) (*types.CacheEntry, bool) {
	ent, ok := s.entries[key]
	return ent, ok
}

// Touch records a read of key at.
func (s *Store) Touch(key string, at time.Time) {
	if _, ok := s.entries[key]; ok {
		s.eviction.OnGet(key, at)
	}
}

// Put inserts or replaces the entry and records the write as an access at.
func (s *Store) Put(ent *types.CacheEntry, at time.Time) {
	s.entries[ent.Key] = ent
	s.eviction.OnPut(ent.Key, at)
}

// Delete removes key and its access record, reporting whether it was present.
func (s *Store) Delete(key string) bool {
	if _, ok := s.entries[key]; !ok {
		return false
	}
	delete(s.entries, key)
	s.eviction.Remove(key)
	return true
}

// Victim reports the least recently used key without removing it. The cache
// removes it with Delete so eviction and deletion share one path.
func (s *Store) Victim() (string, bool) {
	return s.eviction.Victim()
}

// AccessTime returns the last read or write of key.
func (s *Store) AccessTime(key string) (time.Time, bool) {
	return s.eviction.AccessTime(key)
}

// Keys lists keys from most to least recently used.
func (s *Store) Keys() []string {
	return s.eviction.Keys()
}

// Len returns how many entries are stored.
func (s *Store) Len() int {
	return len(s.entries)
}

// Reset drops every entry and access record.
func (s *Store) Reset() {
	s.entries = make(map[string]*types.CacheEntry)
	s.eviction.Reset()
}
