package cache_test

import (
	"context"
	"fmt"
	"sync"
	"testing"
	"time"

	cache "github.com/krisalay/memo-cache"
	"github.com/krisalay/memo-cache/config"
	"github.com/krisalay/memo-cache/memo"
)

func newBenchmarkCache(b *testing.B, capacity int) *cache.Cache {
	b.Helper()
	c, err := cache.New(config.Config{MaxSize: capacity, DefaultTTL: 10 * time.Second})
	if err != nil {
		b.Fatal(err)
	}
	return c
}

//
// ================= SINGLE THREAD BENCH =================
//

func BenchmarkCacheGetHit(b *testing.B) {
	c := newBenchmarkCache(b, 100000)

	_ = c.Set("key", "value")

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _, _ = c.Get("key")
	}
}

func BenchmarkCacheGetMiss(b *testing.B) {
	c := newBenchmarkCache(b, 100000)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _, _ = c.Get(fmt.Sprintf("miss-%d", i))
	}
}

//
// ================= PARALLEL BENCH =================
//

func BenchmarkCacheParallelGet(b *testing.B) {
	c := newBenchmarkCache(b, 100000)

	for i := 0; i < 1000; i++ {
		_ = c.Set(fmt.Sprintf("key-%d", i), i)
	}

	b.ResetTimer()
	b.RunParallel(func(pb *testing.PB) {
		for pb.Next() {
			_, _, _ = c.Get("key-42")
		}
	})
}

//
// ================= WRITE BENCH =================
//

func BenchmarkCacheSet(b *testing.B) {
	c := newBenchmarkCache(b, 100000)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = c.Set(fmt.Sprintf("key-%d", i), i)
	}
}

// Every Set beyond capacity evicts, so this measures the eviction path.
func BenchmarkCacheSetEvicting(b *testing.B) {
	c := newBenchmarkCache(b, 1024)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = c.Set(fmt.Sprintf("key-%d", i), i)
	}
}

//
// ================= MEMO BENCH =================
//

func BenchmarkMemoHit(b *testing.B) {
	c := newBenchmarkCache(b, 1024)
	square, err := memo.Wrap[int, int](c, "square", func(_ context.Context, n int) (int, error) {
		return n * n, nil
	}, memo.JSONKey[int])
	if err != nil {
		b.Fatal(err)
	}
	ctx := context.Background()
	_, _ = square(ctx, 12)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = square(ctx, 12)
	}
}

//
// ================= HIGH CONCURRENCY TEST =================
//

func BenchmarkCacheHighConcurrency(b *testing.B) {
	c := newBenchmarkCache(b, 100000)

	keys := make([]string, 10000)
	for i := range keys {
		keys[i] = fmt.Sprintf("key-%d", i)
		_ = c.Set(keys[i], i)
	}

	b.ResetTimer()

	wg := sync.WaitGroup{}
	for i := 0; i < 100; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < b.N/100; j++ {
				_, _, _ = c.Get(keys[j%len(keys)])
			}
		}()
	}
	wg.Wait()
}
