// Package metrics documents the Prometheus metrics exported by the lexicon
// viewer. Metrics are defined in their owning packages (client, cache) to
// keep dependencies one-directional; this package is the reference.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
)

// Registry is the default Prometheus registry used by the viewer.
// All metrics are automatically registered via promauto in their packages.
var Registry = prometheus.DefaultRegisterer

// Metrics Documentation
//
// Request Metrics (pkg/client):
//   - lexicon_requests_total{endpoint, status} (Counter): Requests by endpoint and HTTP status
//   - lexicon_request_duration_seconds{endpoint} (Histogram): Request duration
//   - lexicon_errors_total{class} (Counter): Fetch errors by class (client, server, network, decode)
//
// Cache Metrics (pkg/cache):
//   - lexicon_cache_hits_total{layer="redis"} (Counter): Cache hits by layer
//   - lexicon_cache_misses_total (Counter): Cache misses
//   - lexicon_304_responses_total (Counter): 304 Not Modified responses
//   - lexicon_conditional_requests_total (Counter): Conditional requests sent with If-None-Match
//   - lexicon_cache_errors_total{operation} (Counter): Cache operation errors
//
// Example Prometheus Queries:
//
//   # Cache Hit Rate
//   sum(rate(lexicon_cache_hits_total[5m])) /
//   (sum(rate(lexicon_cache_hits_total[5m])) + sum(rate(lexicon_cache_misses_total[5m])))
//
//   # Fetch Error Rate
//   rate(lexicon_errors_total[5m])
//
//   # P95 Fetch Latency
//   histogram_quantile(0.95, rate(lexicon_request_duration_seconds_bucket[5m]))
