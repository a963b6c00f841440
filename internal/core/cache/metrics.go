package cache

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// Hits counts responses served directly from the cache.
	Hits = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "shop_cache_hits_total",
			Help: "Total number of responses served from the cache",
		},
	)

	// Misses counts lookups that fell through to the handler.
	Misses = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "shop_cache_misses_total",
			Help: "Total number of cache misses",
		},
	)

	// Errors counts failed cache operations by operation.
	Errors = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "shop_cache_errors_total",
			Help: "Total number of cache operation errors",
		},
		[]string{"operation"}, // "get", "set", "invalidate"
	)

	// Invalidations counts entries removed by pattern invalidation.
	Invalidations = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "shop_cache_invalidated_keys_total",
			Help: "Total number of cache entries removed by pattern invalidation",
		},
	)
)
