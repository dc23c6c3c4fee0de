// Package metrics holds the Prometheus collectors for the admin client.
package metrics

import (
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

var (
	// Registry holds the client-specific Prometheus collectors.
	Registry = prometheus.NewRegistry()

	apiRequests = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "flash_buy_admin",
			Subsystem: "api",
			Name:      "requests_total",
			Help:      "Total number of requests issued to the API.",
		},
		[]string{"method", "status"},
	)

	apiDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: "flash_buy_admin",
			Subsystem: "api",
			Name:      "request_duration_seconds",
			Help:      "Duration of API requests.",
			Buckets:   prometheus.ExponentialBuckets(0.005, 2, 10), // 5ms to ~5s
		},
		[]string{"method"},
	)

	cacheHits = prometheus.NewCounter(
		prometheus.CounterOpts{
			Namespace: "flash_buy_admin",
			Subsystem: "cache",
			Name:      "hits_total",
			Help:      "Query cache reads served from a fresh entry.",
		},
	)

	cacheMisses = prometheus.NewCounter(
		prometheus.CounterOpts{
			Namespace: "flash_buy_admin",
			Subsystem: "cache",
			Name:      "misses_total",
			Help:      "Query cache reads that triggered a fetch.",
		},
	)

	cacheInvalidations = prometheus.NewCounter(
		prometheus.CounterOpts{
			Namespace: "flash_buy_admin",
			Subsystem: "cache",
			Name:      "invalidations_total",
			Help:      "Cache entries marked stale by prefix invalidation.",
		},
	)

	queryRetries = prometheus.NewCounter(
		prometheus.CounterOpts{
			Namespace: "flash_buy_admin",
			Subsystem: "cache",
			Name:      "query_retries_total",
			Help:      "Read queries re-attempted after a retryable failure.",
		},
	)
)

func init() {
	Registry.MustRegister(
		apiRequests,
		apiDuration,
		cacheHits,
		cacheMisses,
		cacheInvalidations,
		queryRetries,
	)
}

// ObserveRequest records one API round-trip. A status of zero means the
// request never produced a response.
func ObserveRequest(method string, status int, elapsed time.Duration) {
	apiRequests.WithLabelValues(method, strconv.Itoa(status)).Inc()
	apiDuration.WithLabelValues(method).Observe(elapsed.Seconds())
}

// CacheHit records a read served from cache.
func CacheHit() { cacheHits.Inc() }

// CacheMiss records a read that went to the API.
func CacheMiss() { cacheMisses.Inc() }

// CacheInvalidated records n entries marked stale.
func CacheInvalidated(n int) { cacheInvalidations.Add(float64(n)) }

// QueryRetried records a retry attempt of a read query.
func QueryRetried() { queryRetries.Inc() }
