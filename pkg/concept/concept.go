// Package concept defines the Sentience Lexicon data model shared by the
// fetcher, the pagination window, and the renderers.
package concept

import (
	"encoding/json"
	"fmt"
	"io"
)

// SentienceVectors holds the scalar dimensions attached to a concept.
type SentienceVectors struct {
	EmotionalValence  float64 `json:"emotional_valence"`
	CognitiveLoad     float64 `json:"cognitive_load"`
	TemporalRelevance float64 `json:"temporal_relevance"`
}

// Concept is a single lexicon entry as returned by the upstream API.
// Instances are owned by the API response; the viewer holds only the
// current page's slice and discards it on the next fetch.
type Concept struct {
	ConceptID          string           `json:"concept_id"`
	Label              string           `json:"label"`
	Definition         string           `json:"definition"`
	AssociatedConcepts []string         `json:"associated_concepts,omitempty"`
	Vectors            SentienceVectors `json:"sentience_vectors"`
	Origins            []string         `json:"origins,omitempty"`
}

// PageMeta is the server-supplied pagination metadata.
// CurrentPage is authoritative: the viewer tracks it instead of the page
// number it asked for.
type PageMeta struct {
	CurrentPage int `json:"current_page"`
	TotalPages  int `json:"total_pages"`
	TotalCount  int `json:"total_count,omitempty"`
	PerPage     int `json:"per_page,omitempty"`
}

// Page is the JSON envelope of a paginated concepts response:
//
//	{ "data": [ ... ], "meta": { "current_page": 1, "total_pages": 5 } }
type Page struct {
	Data []Concept `json:"data"`
	Meta PageMeta  `json:"meta"`
}

// DecodePage decodes a concepts envelope from r.
func DecodePage(r io.Reader) (*Page, error) {
	var page Page
	if err := json.NewDecoder(r).Decode(&page); err != nil {
		return nil, fmt.Errorf("decode concepts envelope: %w", err)
	}
	return &page, nil
}
