package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/prometheus/client_golang/prometheus"

	cache "github.com/krisalay/memo-cache"
	"github.com/krisalay/memo-cache/config"
	"github.com/krisalay/memo-cache/memo"
	"github.com/krisalay/memo-cache/metrics"
)

// ================= SLOW BACKEND =================

// searchBackend stands in for an expensive collaborator such as a document search.
type searchBackend struct {
	calls int
}

func (s *searchBackend) Search(ctx context.Context, query string) ([]string, error) {
	s.calls++
	fmt.Println("BACKEND → search:", query)
	time.Sleep(50 * time.Millisecond)
	return []string{"doc:" + strings.ToLower(query)}, nil
}

// ================= MAIN =================

func main() {
	configPath := flag.String("config", "", "YAML file with max_size and default_ttl")
	metricsAddr := flag.String("metrics-addr", "", "serve Prometheus metrics on this address and keep running")
	verbose := flag.Bool("v", false, "log evictions and expirations")
	flag.Parse()

	level := slog.LevelInfo
	if *verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))

	if err := run(*configPath, *metricsAddr, logger); err != nil {
		logger.Error("demo failed", "error", err)
		os.Exit(1)
	}
}

func run(configPath, metricsAddr string, logger *slog.Logger) error {
	ctx := context.Background()

	fmt.Println("\n==================== SYSTEM BOOT ====================")

	// ---------------- Config ----------------
	cfg := config.Config{MaxSize: 2, DefaultTTL: 100 * time.Second}
	if configPath != "" {
		loaded, err := config.LoadFile(configPath)
		if err != nil {
			return err
		}
		cfg = loaded
	}
	fmt.Println("EVICTION POLICY : LRU")
	fmt.Println("TTL STRATEGY    : ExpireAfterWrite")
	fmt.Println("MAX SIZE        :", cfg.MaxSize)
	fmt.Println("DEFAULT TTL     :", cfg.DefaultTTL)

	// ---------------- Metrics ----------------
	reg := prometheus.NewRegistry()
	prom := metrics.NewPrometheus(reg, "demo")

	// ---------------- Cache ----------------
	c, err := cache.New(cfg,
		cache.WithMetrics(prom),
		cache.WithLogger(logger),
	)
	if err != nil {
		return err
	}

	// ====================================================
	fmt.Println("\n==================== 1) MISS THEN HIT ====================")
	v, ok, _ := c.Get("a")
	fmt.Println("CACHE  → GET a =", v, ok)
	_ = c.Set("a", 1)
	v, ok, _ = c.Get("a")
	fmt.Println("CACHE  → GET a =", v, ok)

	// ====================================================
	fmt.Println("\n==================== 2) LRU EVICTION ====================")
	_ = c.Set("b", 2)
	_, _, _ = c.Get("a") // a becomes most recently used
	_ = c.Set("c", 3)
	for _, k := range []string{"a", "b", "c"} {
		v, ok, _ := c.Get(k)
		fmt.Printf("CACHE  → GET %s = %v (%v)\n", k, v, ok)
	}

	// ====================================================
	fmt.Println("\n==================== 3) TTL EXPIRATION ====================")
	_ = c.SetWithTTL("x", "temp-value", time.Second)
	fmt.Println("CACHE  → PUT x (TTL = 1s), remaining:", c.TTL("x").Round(time.Millisecond))
	time.Sleep(1100 * time.Millisecond)
	v, ok, _ = c.Get("x")
	fmt.Println("CACHE  → GET x after TTL =", v, ok)

	// ====================================================
	fmt.Println("\n==================== 4) MEMOIZATION ====================")
	backend := &searchBackend{}
	search, err := memo.Wrap[string, []string](c, "search", backend.Search, memo.StringKey,
		memo.WithTTL(time.Minute),
		memo.WithLogger(logger),
	)
	if err != nil {
		return err
	}
	for i := 0; i < 3; i++ {
		docs, err := search(ctx, "Golang")
		if err != nil {
			return err
		}
		fmt.Println("MEMO   → search(Golang) =", docs)
	}
	fmt.Println("MEMO   → backend calls:", backend.calls)

	n, _ := c.DeleteMatching(memo.DefaultPrefix + ":search:*")
	fmt.Println("CACHE  → invalidated memoized searches:", n)

	// ====================================================
	fmt.Println("\n==================== STATS ====================")
	s := c.Stats()
	fmt.Printf("SIZE      : %d/%d\n", s.Size, s.MaxSize)
	fmt.Printf("HITS      : %d\n", s.Hits)
	fmt.Printf("MISSES    : %d\n", s.Misses)
	fmt.Printf("HIT RATE  : %.2f%%\n", s.HitRate)
	fmt.Printf("EVICTIONS : %d\n", s.Evictions)
	fmt.Printf("EXPIRED   : %d\n", s.Expirations)

	if metricsAddr == "" {
		return nil
	}

	fmt.Println("\n==================== METRICS ====================")
	mux := http.NewServeMux()
	mux.Handle("/metrics", metrics.Handler(reg))
	srv := &http.Server{Addr: metricsAddr, Handler: mux, ReadHeaderTimeout: 5 * time.Second}
	logger.Info("serving metrics", "addr", metricsAddr)
	return srv.ListenAndServe()
}
