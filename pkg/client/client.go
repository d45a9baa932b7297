// Package client implements the Sentience Lexicon data fetcher: one HTTP
// GET per page request, with error classification and optional
// Redis-backed response caching.
package client

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/sentiencelab/lexicon-viewer/pkg/cache"
	"github.com/sentiencelab/lexicon-viewer/pkg/concept"
)

// conceptsEndpoint is the paginated listing endpoint of the lexicon API.
const conceptsEndpoint = "/api/concepts"

// Prometheus metrics for lexicon fetch operations.
var (
	lexiconRequestsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "lexicon_requests_total",
		Help: "Total lexicon requests by endpoint and status",
	}, []string{"endpoint", "status"})

	lexiconRequestDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "lexicon_request_duration_seconds",
		Help:    "Lexicon request duration in seconds by endpoint",
		Buckets: []float64{0.1, 0.5, 1, 2, 5, 10},
	}, []string{"endpoint"})

	lexiconErrorsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "lexicon_errors_total",
		Help: "Total lexicon fetch errors by class",
	}, []string{"class"})
)

// Client fetches concept pages from the lexicon API.
type Client struct {
	httpClient *http.Client
	baseURL    *url.URL
	cache      *cache.Manager
	config     Config
	logger     zerolog.Logger
}

// Config holds the client configuration.
type Config struct {
	// BaseURL of the lexicon API (e.g., "http://localhost:5000")
	BaseURL string

	// User-Agent header sent with every request
	UserAgent string

	// PerPage is the requested page size; 0 leaves it to the server default
	PerPage int

	// Timeout for the HTTP request
	Timeout time.Duration

	// Redis client for response caching; nil disables the cache
	Redis *redis.Client
}

// DefaultConfig returns a safe default configuration.
func DefaultConfig(baseURL string) Config {
	return Config{
		BaseURL:   baseURL,
		UserAgent: "lexicon-viewer/0.1.0",
		PerPage:   0,
		Timeout:   30 * time.Second,
	}
}

// New creates a new lexicon client.
func New(cfg Config) (*Client, error) {
	if cfg.BaseURL == "" {
		return nil, fmt.Errorf("base URL is required")
	}

	base, err := url.Parse(cfg.BaseURL)
	if err != nil {
		return nil, fmt.Errorf("parse base URL: %w", err)
	}

	if cfg.UserAgent == "" {
		return nil, fmt.Errorf("user-agent is required")
	}

	if cfg.PerPage < 0 {
		return nil, fmt.Errorf("per_page must be >= 0 (got %d)", cfg.PerPage)
	}

	if cfg.Timeout <= 0 {
		cfg.Timeout = 30 * time.Second
	}

	logger := log.With().Str("component", "lexicon-client").Logger()

	var cacheManager *cache.Manager
	if cfg.Redis != nil {
		cacheManager = cache.NewManager(cfg.Redis)
	}

	return &Client{
		httpClient: &http.Client{
			Timeout: cfg.Timeout,
		},
		baseURL: base,
		cache:   cacheManager,
		config:  cfg,
		logger:  logger,
	}, nil
}

// FetchConcepts retrieves one page of concepts from the lexicon API.
// The returned meta is authoritative: its current_page may differ from the
// requested page and callers must track that value, not the argument.
//
// Every failure is terminal for the request; there is no retry.
func (c *Client) FetchConcepts(ctx context.Context, page int) (*concept.Page, error) {
	if page < 1 {
		return nil, fmt.Errorf("page must be a positive integer (got %d)", page)
	}

	startTime := time.Now()
	defer func() {
		lexiconRequestDuration.WithLabelValues(conceptsEndpoint).Observe(time.Since(startTime).Seconds())
	}()

	query := url.Values{}
	query.Set("page", strconv.Itoa(page))
	if c.config.PerPage > 0 {
		query.Set("limit", strconv.Itoa(c.config.PerPage))
	}

	reqURL := c.baseURL.JoinPath(conceptsEndpoint)
	reqURL.RawQuery = query.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL.String(), nil)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("User-Agent", c.config.UserAgent)
	req.Header.Set("Accept", "application/json")

	// Check the cache for a prior response to this page.
	cacheKey := cache.Key{
		Endpoint:    conceptsEndpoint,
		QueryParams: query,
	}

	var cachedEntry *cache.Entry
	if c.cache != nil {
		cachedEntry, err = c.cache.Get(ctx, cacheKey)
		if err != nil && err != cache.ErrCacheMiss {
			c.logger.Warn().Err(err).Int("page", page).Msg("Cache get error")
		}

		if cache.ShouldMakeConditionalRequest(cachedEntry) {
			cache.AddConditionalHeaders(req, cachedEntry)
			cache.ConditionalRequestsSent.Inc()
			c.logger.Debug().
				Int("page", page).
				Str("etag", cachedEntry.ETag).
				Msg("Making conditional request")
		}
	}

	c.logger.Debug().
		Int("page", page).
		Str("url", reqURL.String()).
		Msg("Fetching concepts")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		lexiconErrorsTotal.WithLabelValues(string(ErrorClassNetwork)).Inc()
		lexiconRequestsTotal.WithLabelValues(conceptsEndpoint, "network_error").Inc()
		c.logger.Error().Err(err).Int("page", page).Msg("Lexicon request failed")
		return nil, networkError(err)
	}
	defer resp.Body.Close()

	lexiconRequestsTotal.WithLabelValues(conceptsEndpoint, strconv.Itoa(resp.StatusCode)).Inc()

	// 304 Not Modified: serve the cached body.
	if resp.StatusCode == http.StatusNotModified && cachedEntry != nil {
		cache.NotModifiedResponses.Inc()
		c.logger.Debug().Int("page", page).Msg("304 Not Modified - using cache")

		if expiresStr := resp.Header.Get("Expires"); expiresStr != "" {
			if newExpires, err := http.ParseTime(expiresStr); err == nil {
				if err := c.cache.UpdateTTL(ctx, cacheKey, newExpires); err != nil {
					c.logger.Warn().Err(err).Msg("Failed to update cache TTL")
				}
			}
		}

		cached := cache.EntryToResponse(cachedEntry)
		defer cached.Body.Close()
		return c.decode(cached, page)
	}

	if resp.StatusCode == http.StatusNotFound {
		lexiconErrorsTotal.WithLabelValues(string(ErrorClassClient)).Inc()
		c.logger.Warn().Int("page", page).Msg("Page not found")
		return nil, pageNotFoundError()
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		fetchErr := httpStatusError(resp.StatusCode)
		lexiconErrorsTotal.WithLabelValues(string(fetchErr.ErrorClass)).Inc()
		c.logger.Warn().
			Int("page", page).
			Int("status", resp.StatusCode).
			Str("error_class", string(fetchErr.ErrorClass)).
			Msg("Lexicon request error")
		return nil, fetchErr
	}

	// Cache the successful response before decoding.
	if c.cache != nil && resp.StatusCode == http.StatusOK {
		entry, err := cache.ResponseToEntry(resp)
		if err != nil {
			c.logger.Warn().Err(err).Msg("Failed to create cache entry")
		} else if err := c.cache.Set(ctx, cacheKey, entry); err != nil {
			c.logger.Warn().Err(err).Msg("Failed to cache response")
		}
	}

	return c.decode(resp, page)
}

// decode parses the concepts envelope from a successful response.
func (c *Client) decode(resp *http.Response, page int) (*concept.Page, error) {
	result, err := concept.DecodePage(resp.Body)
	if err != nil {
		lexiconErrorsTotal.WithLabelValues(string(ErrorClassDecode)).Inc()
		c.logger.Error().Err(err).Int("page", page).Msg("Failed to decode concepts")
		return nil, decodeError(err)
	}

	c.logger.Debug().
		Int("page", page).
		Int("concepts", len(result.Data)).
		Int("current_page", result.Meta.CurrentPage).
		Int("total_pages", result.Meta.TotalPages).
		Msg("Fetched concepts")

	return result, nil
}

// Close closes the client and releases resources.
func (c *Client) Close() error {
	c.httpClient.CloseIdleConnections()
	return nil
}

// SetHTTPClient sets a custom HTTP client (for testing).
func (c *Client) SetHTTPClient(client *http.Client) {
	c.httpClient = client
}
