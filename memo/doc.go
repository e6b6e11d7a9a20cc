// Package memo memoizes functions through an api.Cache.
//
// A wrapped function is identified by a stable name and an explicit key
// function that renders its argument as a canonical string. The cache key is
//
//	<prefix>:<name>:<xxhash64 of name and canonical argument>
//
// so every result of one function can be dropped with
// Cache.DeleteMatching("<prefix>:<name>:*"). Two calls whose canonical strings
// are equal share one cache entry, whatever their values look like otherwise.
package memo
