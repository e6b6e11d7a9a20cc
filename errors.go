package cache

import "errors"

// Caller errors. Every one is returned before the cache is touched, so state
// is unchanged when they occur. A missing key is never an error.
var (
	ErrInvalidKey     = errors.New("cache: invalid key")
	ErrInvalidTTL     = errors.New("cache: ttl must be positive")
	ErrInvalidPattern = errors.New("cache: invalid key pattern")
)
