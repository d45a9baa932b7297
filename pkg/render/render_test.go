package render

import (
	"bytes"
	"strings"
	"testing"

	"github.com/sentiencelab/lexicon-viewer/pkg/concept"
	"github.com/sentiencelab/lexicon-viewer/pkg/pagination"
	"github.com/sentiencelab/lexicon-viewer/pkg/viewer"
)

func newRenderer(t *testing.T) *Renderer {
	t.Helper()
	r, err := New()
	if err != nil {
		t.Fatalf("New() failed: %v", err)
	}
	return r
}

func TestConceptCards(t *testing.T) {
	r := newRenderer(t)

	concepts := []concept.Concept{
		{ConceptID: "c-1", Label: "Joy", Definition: "A strong feeling of happiness."},
		{ConceptID: "c-2", Label: "Logic", Definition: "Systematic rules for valid inference."},
	}

	var buf bytes.Buffer
	if err := r.ConceptCards(&buf, concepts); err != nil {
		t.Fatalf("ConceptCards() failed: %v", err)
	}
	out := buf.String()

	if got := strings.Count(out, `class="concept-card"`); got != 2 {
		t.Errorf("Rendered %d cards, want 2", got)
	}
	for _, want := range []string{"Joy", "Logic", "c-1", "c-2", "A strong feeling of happiness."} {
		if !strings.Contains(out, want) {
			t.Errorf("Output missing %q", want)
		}
	}

	// API order equals display order.
	if strings.Index(out, "Joy") > strings.Index(out, "Logic") {
		t.Error("Cards rendered out of order")
	}

	if strings.Contains(out, PlaceholderMessage) {
		t.Error("Placeholder rendered alongside cards")
	}
}

func TestConceptCards_Empty(t *testing.T) {
	r := newRenderer(t)

	var buf bytes.Buffer
	if err := r.ConceptCards(&buf, nil); err != nil {
		t.Fatalf("ConceptCards() failed: %v", err)
	}
	out := buf.String()

	if !strings.Contains(out, PlaceholderMessage) {
		t.Errorf("Output missing placeholder, got: %s", out)
	}
	if strings.Contains(out, "concept-card") {
		t.Error("Empty page must render zero cards")
	}
}

func TestConceptCards_EscapesUntrustedFields(t *testing.T) {
	r := newRenderer(t)

	concepts := []concept.Concept{
		{
			ConceptID:  `"><img src=x onerror=alert(1)>`,
			Label:      `<script>alert("label")</script>`,
			Definition: `<b onmouseover="steal()">definition</b>`,
		},
	}

	var buf bytes.Buffer
	if err := r.ConceptCards(&buf, concepts); err != nil {
		t.Fatalf("ConceptCards() failed: %v", err)
	}
	out := buf.String()

	if strings.Contains(out, "<script>") {
		t.Error("Label was not escaped")
	}
	if strings.Contains(out, "<b onmouseover") {
		t.Error("Definition was not escaped")
	}
	if strings.Contains(out, `"><img`) {
		t.Error("ConceptID attribute was not escaped")
	}
	if !strings.Contains(out, "&lt;script&gt;") {
		t.Error("Expected escaped label text in output")
	}
}

func TestPaginationStrip(t *testing.T) {
	r := newRenderer(t)

	strip := pagination.Window(concept.PageMeta{CurrentPage: 5, TotalPages: 10})

	var buf bytes.Buffer
	if err := r.PaginationStrip(&buf, strip); err != nil {
		t.Fatalf("PaginationStrip() failed: %v", err)
	}
	out := buf.String()

	// Window [3..7]; every numbered button links to its own page.
	for _, want := range []string{`href="?page=3"`, `href="?page=4"`, `href="?page=5"`, `href="?page=6"`, `href="?page=7"`} {
		if !strings.Contains(out, want) {
			t.Errorf("Output missing %q", want)
		}
	}
	if !strings.Contains(out, `<a class="page-number active" href="?page=5">5</a>`) {
		t.Error("Active page must be a marked, still-enabled link")
	}
	if !strings.Contains(out, `href="?page=4">Previous`) {
		t.Error("Previous must link to page 4")
	}
	if !strings.Contains(out, `href="?page=6">Next`) {
		t.Error("Next must link to page 6")
	}
}

func TestPaginationStrip_ActivePageStaysEnabled(t *testing.T) {
	r := newRenderer(t)

	strip := pagination.Window(concept.PageMeta{CurrentPage: 5, TotalPages: 10})

	var buf bytes.Buffer
	if err := r.PaginationStrip(&buf, strip); err != nil {
		t.Fatalf("PaginationStrip() failed: %v", err)
	}
	out := buf.String()

	// The current page's button is visually distinct but still a working
	// link to its own page.
	if !strings.Contains(out, `href="?page=5"`) {
		t.Error("Activating the current page button must re-request its own page")
	}
	if strings.Contains(out, `<span class="page-number active">`) {
		t.Error("Active page must not be rendered inert")
	}
}

func TestPaginationStrip_Edges(t *testing.T) {
	r := newRenderer(t)

	t.Run("first page disables previous", func(t *testing.T) {
		var buf bytes.Buffer
		strip := pagination.Window(concept.PageMeta{CurrentPage: 1, TotalPages: 10})
		if err := r.PaginationStrip(&buf, strip); err != nil {
			t.Fatalf("PaginationStrip() failed: %v", err)
		}
		out := buf.String()

		if !strings.Contains(out, `<span class="page-nav disabled">Previous</span>`) {
			t.Error("Previous must be an inert span on page 1")
		}
		if !strings.Contains(out, `href="?page=2">Next`) {
			t.Error("Next must stay enabled on page 1")
		}
	})

	t.Run("empty lexicon disables both", func(t *testing.T) {
		var buf bytes.Buffer
		strip := pagination.Window(concept.PageMeta{CurrentPage: 1, TotalPages: 0})
		if err := r.PaginationStrip(&buf, strip); err != nil {
			t.Fatalf("PaginationStrip() failed: %v", err)
		}
		out := buf.String()

		if strings.Contains(out, "page-number") {
			t.Error("Empty lexicon must render no numbered buttons")
		}
		if !strings.Contains(out, `<span class="page-nav disabled">Previous</span>`) {
			t.Error("Previous must be disabled")
		}
		if !strings.Contains(out, `<span class="page-nav disabled">Next</span>`) {
			t.Error("Next must be disabled")
		}
	})
}

func TestPage_Loaded(t *testing.T) {
	r := newRenderer(t)

	state := viewer.State{
		Phase: viewer.PhaseLoaded,
		Concepts: []concept.Concept{
			{ConceptID: "c-1", Label: "Joy", Definition: "Happiness."},
		},
		Meta:        concept.PageMeta{CurrentPage: 1, TotalPages: 3},
		CurrentPage: 1,
	}

	var buf bytes.Buffer
	if err := r.Page(&buf, state); err != nil {
		t.Fatalf("Page() failed: %v", err)
	}
	out := buf.String()

	if !strings.Contains(out, "<!DOCTYPE html>") {
		t.Error("Expected a full HTML document")
	}
	if !strings.Contains(out, "Joy") {
		t.Error("Expected the concept card")
	}
	if !strings.Contains(out, `class="pagination"`) {
		t.Error("Expected the pagination strip")
	}
	if strings.Contains(out, `class="error"`) {
		t.Error("Loaded page must not show an error")
	}
}

func TestPage_Errored(t *testing.T) {
	r := newRenderer(t)

	state := viewer.State{
		Phase:   viewer.PhaseErrored,
		Message: "Page not found. The lexicon might be empty or you've gone past the last page.",
	}

	var buf bytes.Buffer
	if err := r.Page(&buf, state); err != nil {
		t.Fatalf("Page() failed: %v", err)
	}
	out := buf.String()

	if !strings.Contains(out, "gone past the last page") {
		t.Error("Expected the error message")
	}
	// Concept and pagination containers stay empty on error.
	if strings.Contains(out, `class="concept-card"`) || strings.Contains(out, `class="pagination"`) {
		t.Error("Errored page must render neither cards nor pagination")
	}
}

func TestPage_Loading(t *testing.T) {
	r := newRenderer(t)

	var buf bytes.Buffer
	if err := r.Page(&buf, viewer.State{Phase: viewer.PhaseLoading}); err != nil {
		t.Fatalf("Page() failed: %v", err)
	}
	out := buf.String()

	if !strings.Contains(out, `class="loading"`) {
		t.Error("Expected the loading indicator")
	}
	if strings.Contains(out, `class="concept-card"`) {
		t.Error("Loading page must not render cards")
	}
}
