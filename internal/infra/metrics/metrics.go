// Package metrics collects and exposes Prometheus metrics for restaurant discovery.
package metrics

import (
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Recorder is the metrics surface used by the POI cache.
type Recorder interface {
	RecordCacheHit()
	RecordCacheMiss()
	RecordFetchSuccess(results int)
	RecordFetchFailure(reason string)
	RecordFetchLatency(duration time.Duration)
	SetCacheEntries(count int)
}

// Collector is the Prometheus implementation of Recorder.
type Collector struct {
	cacheHits    prometheus.Counter
	cacheMisses  prometheus.Counter
	fetchSuccess prometheus.Counter
	fetchFail    *prometheus.CounterVec
	fetchLatency prometheus.Histogram
	fetchResults prometheus.Histogram
	cacheEntries prometheus.Gauge
}

// NewCollector creates a Collector and registers its metrics on reg.
func NewCollector(reg prometheus.Registerer) *Collector {
	c := &Collector{
		cacheHits: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "kurvalgom_poi_cache_hits_total",
			Help: "Restaurant lookups answered from the cache.",
		}),
		cacheMisses: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "kurvalgom_poi_cache_misses_total",
			Help: "Restaurant lookups that required an upstream query.",
		}),
		fetchSuccess: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "kurvalgom_poi_fetch_success_total",
			Help: "Successful upstream restaurant queries.",
		}),
		fetchFail: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "kurvalgom_poi_fetch_fail_total",
			Help: "Failed upstream restaurant queries by reason.",
		}, []string{"reason"}),
		fetchLatency: prometheus.NewHistogram(prometheus.HistogramOpts{
			Name:    "kurvalgom_poi_fetch_latency_seconds",
			Help:    "Upstream restaurant query latency in seconds.",
			Buckets: prometheus.DefBuckets,
		}),
		fetchResults: prometheus.NewHistogram(prometheus.HistogramOpts{
			Name:    "kurvalgom_poi_fetch_results",
			Help:    "Restaurants kept per successful upstream query.",
			Buckets: prometheus.ExponentialBuckets(1, 2, 10),
		}),
		cacheEntries: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: "kurvalgom_poi_cache_entries",
			Help: "Entries currently held in the restaurant cache table.",
		}),
	}

	reg.MustRegister(
		c.cacheHits,
		c.cacheMisses,
		c.fetchSuccess,
		c.fetchFail,
		c.fetchLatency,
		c.fetchResults,
		c.cacheEntries,
	)

	return c
}

// NewRegistry returns a registry preloaded with the Go runtime and process collectors.
func NewRegistry() *prometheus.Registry {
	reg := prometheus.NewRegistry()
	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)

	return reg
}

func (c *Collector) RecordCacheHit() {
	c.cacheHits.Inc()
}

func (c *Collector) RecordCacheMiss() {
	c.cacheMisses.Inc()
}

func (c *Collector) RecordFetchSuccess(results int) {
	c.fetchSuccess.Inc()
	c.fetchResults.Observe(float64(results))
}

// RecordFetchFailure counts a failure; reason is "timeout" or "transport".
func (c *Collector) RecordFetchFailure(reason string) {
	c.fetchFail.WithLabelValues(reason).Inc()
}

func (c *Collector) RecordFetchLatency(duration time.Duration) {
	c.fetchLatency.Observe(duration.Seconds())
}

func (c *Collector) SetCacheEntries(count int) {
	c.cacheEntries.Set(float64(count))
}

// Handler returns the HTTP handler for Prometheus scrapes.
func Handler(gatherer prometheus.Gatherer) http.Handler {
	return promhttp.HandlerFor(gatherer, promhttp.HandlerOpts{})
}

// Nop discards every measurement. The CLI uses it.
type Nop struct{}

func (Nop) RecordCacheHit()                  {}
func (Nop) RecordCacheMiss()                 {}
func (Nop) RecordFetchSuccess(int)           {}
func (Nop) RecordFetchFailure(string)        {}
func (Nop) RecordFetchLatency(time.Duration) {}
func (Nop) SetCacheEntries(int)              {}
