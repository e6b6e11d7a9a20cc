package metrics_test

import (
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	cache "github.com/krisalay/memo-cache"
	"github.com/krisalay/memo-cache/config"
	"github.com/krisalay/memo-cache/metrics"
)

func TestPrometheusFollowsCacheEvents(t *testing.T) {
	reg := prometheus.NewRegistry()
	m := metrics.NewPrometheus(reg, "test")

	now := time.Unix(0, 0)
	c, err := cache.New(
		config.Config{MaxSize: 2, DefaultTTL: time.Minute},
		cache.WithMetrics(m),
		cache.WithClock(func() time.Time { return now }),
	)
	require.NoError(t, err)

	require.NoError(t, c.Set("a", 1))
	require.NoError(t, c.Set("b", 2))
	_, _, _ = c.Get("a")
	require.NoError(t, c.Set("c", 3)) // evicts the oldest access
	_, _, _ = c.Get("missing")

	now = now.Add(time.Minute)
	_, _, _ = c.Get("c") // expired

	assert.Equal(t, 1.0, testutil.ToFloat64(m.Hits))
	assert.Equal(t, 2.0, testutil.ToFloat64(m.Misses))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.Evictions))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.Expirations))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.Entries))

	c.Clear()
	assert.Equal(t, 0.0, testutil.ToFloat64(m.Entries))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.Hits))
}

func TestHandlerExposesCollectors(t *testing.T) {
	reg := prometheus.NewRegistry()
	m := metrics.NewPrometheus(reg, "app")
	m.Hit()

	srv := httptest.NewServer(metrics.Handler(reg))
	defer srv.Close()

	resp, err := http.Get(srv.URL)
	require.NoError(t, err)
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)

	assert.Contains(t, string(body), "app_cache_hits_total 1")
	assert.Contains(t, string(body), "app_cache_entries 0")
}
