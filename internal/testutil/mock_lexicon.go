// Package testutil provides testing utilities for the lexicon viewer.
package testutil

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strconv"
	"sync"
	"time"

	"github.com/sentiencelab/lexicon-viewer/pkg/concept"
)

// DefaultPerPage mirrors the upstream API's default page size.
const DefaultPerPage = 20

// MockLexicon is a configurable fake of the lexicon API for testing.
// By default it serves GET /api/concepts with the same pagination and
// error behavior as the real backend.
type MockLexicon struct {
	server   *httptest.Server
	mu       sync.RWMutex
	concepts []concept.Concept
	handlers map[string]http.HandlerFunc

	// ETag, when set, enables conditional request handling: requests
	// carrying a matching If-None-Match receive 304 Not Modified.
	ETag string

	// CacheTTL, when positive, adds an Expires header that far in the future.
	CacheTTL time.Duration

	// Tracking
	RequestCount     int
	ConditionalCount int
	LastQuery        map[string]string
}

// NewMockLexicon creates a mock lexicon serving the given concepts.
func NewMockLexicon(concepts []concept.Concept) *MockLexicon {
	mock := &MockLexicon{
		concepts: concepts,
		handlers: make(map[string]http.HandlerFunc),
	}

	mock.server = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		mock.mu.Lock()
		mock.RequestCount++
		mock.LastQuery = map[string]string{}
		for key := range r.URL.Query() {
			mock.LastQuery[key] = r.URL.Query().Get(key)
		}
		if r.Header.Get("If-None-Match") != "" || r.Header.Get("If-Modified-Since") != "" {
			mock.ConditionalCount++
		}
		handler := mock.handlers[r.URL.Path]
		mock.mu.Unlock()

		if handler != nil {
			handler(w, r)
			return
		}

		if r.URL.Path == "/api/concepts" {
			mock.conceptsHandler(w, r)
			return
		}

		http.NotFound(w, r)
	}))

	return mock
}

// URL returns the mock server URL.
func (m *MockLexicon) URL() string {
	return m.server.URL
}

// Close shuts down the mock server.
func (m *MockLexicon) Close() {
	m.server.Close()
}

// Reset clears all tracking counters.
func (m *MockLexicon) Reset() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.RequestCount = 0
	m.ConditionalCount = 0
	m.LastQuery = nil
}

// SetHandler overrides the response for a specific path.
func (m *MockLexicon) SetHandler(path string, handler http.HandlerFunc) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.handlers[path] = handler
}

// SetStatus makes a path answer with a fixed status and body.
func (m *MockLexicon) SetStatus(path string, status int, body string) {
	m.SetHandler(path, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(status)
		if body != "" {
			w.Write([]byte(body))
		}
	})
}

// SetConcepts replaces the served concept set.
func (m *MockLexicon) SetConcepts(concepts []concept.Concept) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.concepts = concepts
}

// GetRequestCount returns the number of requests made to the server.
func (m *MockLexicon) GetRequestCount() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.RequestCount
}

// GetConditionalCount returns the number of conditional requests.
func (m *MockLexicon) GetConditionalCount() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.ConditionalCount
}

// conceptsHandler reproduces the upstream pagination behavior:
// out-of-range pages answer 404, invalid parameters answer 400.
func (m *MockLexicon) conceptsHandler(w http.ResponseWriter, r *http.Request) {
	m.mu.RLock()
	concepts := m.concepts
	etag := m.ETag
	ttl := m.CacheTTL
	m.mu.RUnlock()

	page, limit := 1, DefaultPerPage
	var err error
	if s := r.URL.Query().Get("page"); s != "" {
		if page, err = strconv.Atoi(s); err != nil {
			writeError(w, http.StatusBadRequest, "Invalid page or limit parameter. Must be an integer.")
			return
		}
	}
	if s := r.URL.Query().Get("limit"); s != "" {
		if limit, err = strconv.Atoi(s); err != nil {
			writeError(w, http.StatusBadRequest, "Invalid page or limit parameter. Must be an integer.")
			return
		}
	}
	if page < 1 || limit < 1 {
		writeError(w, http.StatusBadRequest, "Page and limit parameters must be positive.")
		return
	}

	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	if etag != "" {
		if r.Header.Get("If-None-Match") == etag {
			w.WriteHeader(http.StatusNotModified)
			return
		}
		w.Header().Set("ETag", etag)
	}
	if ttl > 0 {
		w.Header().Set("Expires", time.Now().Add(ttl).Format(http.TimeFormat))
	}

	totalCount := len(concepts)
	totalPages := (totalCount + limit - 1) / limit

	start := (page - 1) * limit
	if start >= totalCount && totalCount > 0 {
		writeError(w, http.StatusNotFound, "Page not found.")
		return
	}

	end := min(start+limit, totalCount)
	pageData := concepts[start:end]
	if pageData == nil {
		pageData = []concept.Concept{}
	}

	json.NewEncoder(w).Encode(concept.Page{
		Data: pageData,
		Meta: concept.PageMeta{
			TotalCount:  totalCount,
			CurrentPage: page,
			TotalPages:  totalPages,
			PerPage:     limit,
		},
	})
}

func writeError(w http.ResponseWriter, status int, msg string) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(map[string]string{"error": msg})
}

// GenerateConcepts builds n distinct concepts for pagination tests.
func GenerateConcepts(n int) []concept.Concept {
	concepts := make([]concept.Concept, n)
	for i := range concepts {
		concepts[i] = concept.Concept{
			ConceptID:  fmt.Sprintf("concept-%04d", i+1),
			Label:      fmt.Sprintf("Concept %d", i+1),
			Definition: "A generated concept to demonstrate the lexicon's capacity.",
			Vectors: concept.SentienceVectors{
				CognitiveLoad:     0.5,
				TemporalRelevance: 0.1,
			},
			Origins: []string{"self_generated"},
		}
	}
	return concepts
}
