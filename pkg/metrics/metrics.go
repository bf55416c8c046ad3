// Package metrics defines the Prometheus collectors exposed on /metrics.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// RequestsTotal counts HTTP requests by method, route, and status code.
	RequestsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "babelgate_requests_total",
		Help: "Total HTTP requests processed.",
	}, []string{"method", "path", "status"})

	// TranslationDuration tracks provider round-trip latency.
	TranslationDuration = promauto.NewHistogram(prometheus.HistogramOpts{
		Name:    "babelgate_translation_duration_seconds",
		Help:    "Time spent waiting on the translation provider.",
		Buckets: []float64{0.25, 0.5, 1, 2, 5, 10, 20, 30, 60},
	})

	// UpstreamFailures counts provider failures by classified kind.
	UpstreamFailures = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "babelgate_upstream_failures_total",
		Help: "Provider call failures by failure kind.",
	}, []string{"kind"})

	// CacheHits counts translate requests served from the cache.
	CacheHits = promauto.NewCounter(prometheus.CounterOpts{
		Name: "babelgate_cache_hits_total",
		Help: "Translate requests answered from the cache.",
	})

	// CacheMisses counts translate requests that reached the provider.
	CacheMisses = promauto.NewCounter(prometheus.CounterOpts{
		Name: "babelgate_cache_misses_total",
		Help: "Translate requests not found in the cache.",
	})

	// InputChars tracks the distribution of input text lengths.
	InputChars = promauto.NewHistogram(prometheus.HistogramOpts{
		Name:    "babelgate_input_chars",
		Help:    "Number of characters in translate input text.",
		Buckets: []float64{50, 100, 250, 500, 1000, 2500, 5000, 10000},
	})
)
