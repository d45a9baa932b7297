// Package render turns view state into HTML. All server-supplied text goes
// through html/template, so concept fields are escaped on insertion and
// markup in labels or definitions is rendered inert.
package render

import (
	"fmt"
	"html/template"
	"io"

	"github.com/sentiencelab/lexicon-viewer/pkg/concept"
	"github.com/sentiencelab/lexicon-viewer/pkg/pagination"
	"github.com/sentiencelab/lexicon-viewer/pkg/viewer"
)

// PlaceholderMessage is rendered instead of cards when a page is empty.
const PlaceholderMessage = "No concepts found in the lexicon."

const templates = `
{{define "cards"}}{{if not .}}<p class="placeholder">{{placeholder}}</p>
{{else}}{{range .}}<div class="concept-card" data-concept-id="{{.ConceptID}}">
  <h3 class="concept-label">{{.Label}}</h3>
  <p class="concept-definition">{{.Definition}}</p>
</div>
{{end}}{{end}}{{end}}

{{define "navbutton"}}{{if .Disabled}}<span class="page-nav disabled">{{.Label}}</span>{{else}}<a class="page-nav" href="?page={{.Page}}">{{.Label}}</a>{{end}}{{end}}

{{define "pagination"}}<nav class="pagination">
{{template "navbutton" .Prev}}
{{range .Pages}}{{if .Active}}<a class="page-number active" href="?page={{.Page}}">{{.Page}}</a>{{else}}<a class="page-number" href="?page={{.Page}}">{{.Page}}</a>{{end}}
{{end}}{{template "navbutton" .Next}}
</nav>{{end}}

{{define "page"}}<!DOCTYPE html>
<html lang="en">
<head>
<meta charset="utf-8">
<title>Sentience Lexicon</title>
<style>
body { font-family: sans-serif; max-width: 48rem; margin: 2rem auto; }
.concept-card { border: 1px solid #ccc; border-radius: 4px; padding: 0.75rem 1rem; margin: 0.5rem 0; }
.concept-card h3 { margin: 0 0 0.25rem; }
.pagination { margin: 1.5rem 0; }
.pagination a, .pagination span { margin: 0 0.25rem; }
.page-number.active { font-weight: bold; }
.disabled { color: #999; }
.error { color: #b00; }
</style>
</head>
<body>
<h1>Sentience Lexicon</h1>
{{if .State.IsLoading}}<p class="loading">Loading concepts&hellip;</p>
{{end}}{{if .State.IsErrored}}<p class="error">{{.State.Message}}</p>
{{end}}{{if .State.IsLoaded}}<div id="concepts">
{{template "cards" .State.Concepts}}</div>
{{template "pagination" .Strip}}
{{end}}</body>
</html>
{{end}}
`

// Renderer renders concept cards, pagination strips, and full pages.
type Renderer struct {
	tmpl *template.Template
}

// New parses the templates and returns a Renderer.
func New() (*Renderer, error) {
	tmpl, err := template.New("lexicon").Funcs(template.FuncMap{
		"placeholder": func() string { return PlaceholderMessage },
	}).Parse(templates)
	if err != nil {
		return nil, fmt.Errorf("parse templates: %w", err)
	}
	return &Renderer{tmpl: tmpl}, nil
}

// ConceptCards writes one card per concept in the order given. An empty
// slice produces a single placeholder message and no cards.
func (r *Renderer) ConceptCards(w io.Writer, concepts []concept.Concept) error {
	return r.tmpl.ExecuteTemplate(w, "cards", concepts)
}

// PaginationStrip writes the [Previous, pages..., Next] controls. Every
// enabled button is a link targeting its own ?page=N, the active page
// included; only disabled nav buttons are inert spans.
func (r *Renderer) PaginationStrip(w io.Writer, strip pagination.Strip) error {
	return r.tmpl.ExecuteTemplate(w, "pagination", strip)
}

// pageData is the root context for the full page template.
type pageData struct {
	State viewer.State
	Strip pagination.Strip
}

// Page writes the full HTML document for a view state: a loading notice,
// the cards plus pagination strip, or a single-line error message.
func (r *Renderer) Page(w io.Writer, state viewer.State) error {
	data := pageData{State: state}
	if state.IsLoaded() {
		data.Strip = pagination.Window(state.Meta)
	}
	return r.tmpl.ExecuteTemplate(w, "page", data)
}
