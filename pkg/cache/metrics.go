package cache

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// Hits tracks cache hits by layer (redis)
	Hits = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "lexicon_cache_hits_total",
			Help: "Total number of lexicon cache hits",
		},
		[]string{"layer"}, // "redis"
	)

	// Misses tracks cache misses
	Misses = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "lexicon_cache_misses_total",
			Help: "Total number of lexicon cache misses",
		},
	)

	// NotModifiedResponses tracks 304 Not Modified responses
	NotModifiedResponses = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "lexicon_304_responses_total",
			Help: "Total number of lexicon 304 Not Modified responses",
		},
	)

	// ConditionalRequestsSent tracks conditional requests sent with If-None-Match
	ConditionalRequestsSent = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "lexicon_conditional_requests_total",
			Help: "Total number of conditional requests sent to the lexicon",
		},
	)

	// Errors tracks cache operation errors
	Errors = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "lexicon_cache_errors_total",
			Help: "Total number of cache operation errors",
		},
		[]string{"operation"}, // "get", "set", "delete"
	)
)
