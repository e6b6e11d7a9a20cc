package cache

import "math"

/*
Stats is a point-in-time snapshot of cache effectiveness.

Hits and Misses count Get calls since construction or the last Clear.
HitRate is a percentage rounded to two decimals, and 0 before the first Get.
*/
type Stats struct {
	Size          int
	MaxSize       int
	Hits          uint64
	Misses        uint64
	HitRate       float64
	TotalRequests uint64
	Evictions     uint64
	Expirations   uint64
}

func hitRate(hits, total uint64) float64 {
	if total == 0 {
		return 0
	}
	return math.Round(float64(hits)/float64(total)*100*100) / 100
}
