package types

// This file defines how the cache reports what it is doing.

/*
Metrics is an interface that defines what the cache wants to measure.
Each method represents an event in the cache lifecycle. The cache calls these
methods while holding its lock, so implementations must not call back into the cache.
*/
type Metrics interface {

	// Hit is called when Get returns a live value.
	Hit()

	// Miss is called when Get finds nothing, or finds an expired entry.
	Miss()

	// Eviction is called when a key is removed because the cache is full and a new key needs space.
	Eviction()

	// Expire is called when a key is removed because Get discovered it past its TTL.
	Expire()

	// Size reports the number of stored entries after a mutation.
	Size(n int)
}

/*
NoopMetrics is a "do nothing" implementation of Metrics.

Callers that do not care about metrics still get a working cache
without nil checks on every event.
*/
type NoopMetrics struct{}

func (NoopMetrics) Hit()      {}
func (NoopMetrics) Miss()     {}
func (NoopMetrics) Eviction() {}
func (NoopMetrics) Expire()   {}
func (NoopMetrics) Size(int)  {}
