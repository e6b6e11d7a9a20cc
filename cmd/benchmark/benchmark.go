package main

import (
	"fmt"
	"os"
	"time"

	"go.uber.org/atomic"
	"golang.org/x/sync/errgroup"

	cache "github.com/krisalay/memo-cache"
	"github.com/krisalay/memo-cache/config"
)

// ================= BENCHMARK =================

func main() {
	if err := run(); err != nil {
		fmt.Fprintln(os.Stderr, "benchmark:", err)
		os.Exit(1)
	}
}

func run() error {
	// ---------------- Cache Config ----------------
	const (
		capacity    = 200000
		preloadKeys = 100000
		keySpace    = 250000 // larger than capacity so writes evict
		goroutines  = 200
		opsPerG     = 5000
		writeEvery  = 10 // one Set per this many operations
	)

	fmt.Println("\n================ CACHE LOAD BENCHMARK =================")
	fmt.Println("CONFIG")
	fmt.Println("---------------------------------")
	fmt.Println("Capacity     :", capacity)
	fmt.Println("Preload Keys :", preloadKeys)
	fmt.Println("Key Space    :", keySpace)
	fmt.Println("Goroutines   :", goroutines)
	fmt.Println("Ops/Goroutine:", opsPerG)
	fmt.Println("---------------------------------")

	c, err := cache.New(config.Config{MaxSize: capacity, DefaultTTL: time.Minute})
	if err != nil {
		return err
	}

	// ---------------- Preload Cache ----------------
	fmt.Println("Preloading cache...")
	for i := 0; i < preloadKeys; i++ {
		if err := c.Set(fmt.Sprintf("key-%d", i), i); err != nil {
			return err
		}
	}
	fmt.Println("Preload complete.")

	// ---------------- Load Test ----------------
	fmt.Println("Running concurrency benchmark...")

	var hits, misses atomic.Int64
	var g errgroup.Group

	start := time.Now()
	for i := 0; i < goroutines; i++ {
		g.Go(func() error {
			for j := 0; j < opsPerG; j++ {
				key := fmt.Sprintf("key-%d", (i*opsPerG+j)%keySpace)
				if j%writeEvery == 0 {
					if err := c.Set(key, j); err != nil {
						return err
					}
					continue
				}
				_, ok, err := c.Get(key)
				if err != nil {
					return err
				}
				if ok {
					hits.Inc()
				} else {
					misses.Inc()
				}
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return err
	}
	duration := time.Since(start)
	totalOps := goroutines * opsPerG

	s := c.Stats()

	fmt.Println("\n================ RESULTS =================")
	fmt.Printf("Total Operations : %d\n", totalOps)
	fmt.Printf("Total Time       : %v\n", duration)
	fmt.Printf("Throughput       : %.2f ops/sec\n", float64(totalOps)/duration.Seconds())
	fmt.Printf("Observed Hits    : %d\n", hits.Load())
	fmt.Printf("Observed Misses  : %d\n", misses.Load())
	fmt.Printf("Cache Hit Rate   : %.2f%%\n", s.HitRate)
	fmt.Printf("Evictions        : %d\n", s.Evictions)
	fmt.Printf("Size             : %d/%d\n", s.Size, s.MaxSize)
	fmt.Println("=========================================")

	return nil
}
