package cache

import (
	"fmt"
	"net/url"
	"sort"
	"strings"
)

// Key identifies a cached lexicon response.
type Key struct {
	// Endpoint is the API path (e.g., "/api/concepts")
	Endpoint string

	// QueryParams are the request query parameters (e.g., {"page": "3"})
	QueryParams url.Values
}

// String generates a deterministic cache key string.
// Format: lexicon:endpoint:query1=val1:query2=val2
//
// Example:
//
//	lexicon:api/concepts:limit=20:page=3
func (k Key) String() string {
	parts := []string{"lexicon"}

	endpoint := strings.Trim(k.Endpoint, "/")
	if endpoint != "" {
		parts = append(parts, endpoint)
	}

	// Query params are sorted for determinism.
	if len(k.QueryParams) > 0 {
		queryKeys := make([]string, 0, len(k.QueryParams))
		for key := range k.QueryParams {
			queryKeys = append(queryKeys, key)
		}
		sort.Strings(queryKeys)

		for _, key := range queryKeys {
			parts = append(parts, fmt.Sprintf("%s=%s", key, k.QueryParams.Get(key)))
		}
	}

	return strings.Join(parts, ":")
}
