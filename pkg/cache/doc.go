// Package cache provides Redis-backed caching of lexicon API responses.
//
// The cache manager layers on top of the concepts fetcher:
//
// - TTL from the Expires header, DefaultTTL fallback
// - ETag support for conditional requests (If-None-Match)
// - Last-Modified support (If-Modified-Since)
// - Prometheus metrics for observability
// - Deterministic cache key generation
//
// # Basic Usage
//
//	// Create Redis client
//	redisClient := redis.NewClient(&redis.Options{
//		Addr: "localhost:6379",
//	})
//
//	// Create cache manager
//	manager := cache.NewManager(redisClient)
//
//	// Create cache key
//	key := cache.Key{
//		Endpoint:    "/api/concepts",
//		QueryParams: url.Values{"page": []string{"1"}},
//	}
//
//	// Get from cache
//	entry, err := manager.Get(ctx, key)
//	if err == cache.ErrCacheMiss {
//		// Cache miss - fetch from the lexicon API
//	}
//
// # HTTP Response Caching
//
//	// Convert HTTP response to cache entry
//	entry, err := cache.ResponseToEntry(resp)
//	if err != nil {
//		return err
//	}
//
//	// Store in cache
//	if err := manager.Set(ctx, key, entry); err != nil {
//		return err
//	}
//
// # Conditional Requests
//
//	// Check if we should make a conditional request
//	if cache.ShouldMakeConditionalRequest(entry) {
//		cache.AddConditionalHeaders(req, entry)
//		// The API returns 304 if the page is unchanged
//	}
//
// # Metrics
//
// The cache manager exports Prometheus metrics:
//
//   - lexicon_cache_hits_total{layer="redis"} - Cache hits
//   - lexicon_cache_misses_total - Cache misses
//   - lexicon_304_responses_total - Conditional request successes
//   - lexicon_conditional_requests_total - Conditional requests sent
//   - lexicon_cache_errors_total{operation} - Cache operation errors
package cache
