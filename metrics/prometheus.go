// Package metrics provides Prometheus metrics for the cache.
package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Prometheus implements types.Metrics with Prometheus collectors.
//
// Counters are monotonic: Cache.Clear resets the cache's own Stats but not
// these, as Prometheus expects.
type Prometheus struct {
	Hits        prometheus.Counter
	Misses      prometheus.Counter
	Evictions   prometheus.Counter
	Expirations prometheus.Counter
	Entries     prometheus.Gauge
}

// NewPrometheus registers the cache collectors on reg under namespace.
// Pass prometheus.DefaultRegisterer to expose them on the global registry.
func NewPrometheus(reg prometheus.Registerer, namespace string) *Prometheus {
	f := promauto.With(reg)
	return &Prometheus{
		Hits: f.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "cache",
			Name:      "hits_total",
			Help:      "Total number of cache lookups that returned a live value",
		}),
		Misses: f.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "cache",
			Name:      "misses_total",
			Help:      "Total number of cache lookups that found nothing or an expired entry",
		}),
		Evictions: f.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "cache",
			Name:      "evictions_total",
			Help:      "Total number of entries evicted to make room under capacity",
		}),
		Expirations: f.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "cache",
			Name:      "expirations_total",
			Help:      "Total number of entries removed after their TTL elapsed",
		}),
		Entries: f.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Subsystem: "cache",
			Name:      "entries",
			Help:      "Current number of stored entries",
		}),
	}
}

func (p *Prometheus) Hit()       { p.Hits.Inc() }
func (p *Prometheus) Miss()      { p.Misses.Inc() }
func (p *Prometheus) Eviction()  { p.Evictions.Inc() }
func (p *Prometheus) Expire()    { p.Expirations.Inc() }
func (p *Prometheus) Size(n int) { p.Entries.Set(float64(n)) }

// Handler serves the collectors of g in the Prometheus text format.
func Handler(g prometheus.Gatherer) http.Handler {
	return promhttp.HandlerFor(g, promhttp.HandlerOpts{})
}
