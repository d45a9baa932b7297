// Package viewer owns the fetch/render lifecycle of the concept list:
// exactly one of Loading, Loaded, or Errored is visible at a time, and
// every transition is driven by a page load's lifecycle.
package viewer

import (
	"context"
	"sync"

	"github.com/rs/zerolog"

	"github.com/sentiencelab/lexicon-viewer/pkg/client"
	"github.com/sentiencelab/lexicon-viewer/pkg/concept"
)

// Phase is the visible lifecycle phase of the view.
type Phase string

const (
	// PhaseLoading means a fetch is in flight; concepts and pagination are cleared.
	PhaseLoading Phase = "loading"

	// PhaseLoaded means the current page's concepts and meta are visible.
	PhaseLoaded Phase = "loaded"

	// PhaseErrored means the last fetch failed; a single message is visible.
	PhaseErrored Phase = "errored"
)

// State is a snapshot of the view. Concepts and Meta are populated only in
// PhaseLoaded; Message only in PhaseErrored.
type State struct {
	Phase    Phase
	Concepts []concept.Concept
	Meta     concept.PageMeta

	// CurrentPage tracks the server-reported current page, which is
	// authoritative over whatever page was requested.
	CurrentPage int

	// Message is the user-facing error text.
	Message string
}

// IsLoading reports whether a fetch is in flight.
func (s State) IsLoading() bool { return s.Phase == PhaseLoading }

// IsLoaded reports whether concepts are visible.
func (s State) IsLoaded() bool { return s.Phase == PhaseLoaded }

// IsErrored reports whether the error message is visible.
func (s State) IsErrored() bool { return s.Phase == PhaseErrored }

// Fetcher retrieves one page of concepts.
type Fetcher interface {
	FetchConcepts(ctx context.Context, page int) (*concept.Page, error)
}

// SelectFunc is invoked when a concept card is activated. The default
// implementation only logs; navigation is a future collaborator's job.
type SelectFunc func(c concept.Concept)

// Viewer drives page loads and owns the single view state. Loads may
// overlap: each takes a sequence number and a completion that is no longer
// the latest issued load is discarded without touching the state.
type Viewer struct {
	fetcher  Fetcher
	logger   zerolog.Logger
	onSelect SelectFunc

	mu    sync.Mutex
	state State
	seq   uint64
}

// Option configures a Viewer.
type Option func(*Viewer)

// WithSelectFunc replaces the card activation hook.
func WithSelectFunc(fn SelectFunc) Option {
	return func(v *Viewer) {
		v.onSelect = fn
	}
}

// New creates a viewer in the Loading phase, ready for its first page load.
func New(fetcher Fetcher, logger zerolog.Logger, opts ...Option) *Viewer {
	v := &Viewer{
		fetcher: fetcher,
		logger:  logger,
		state: State{
			Phase:       PhaseLoading,
			CurrentPage: 1,
		},
	}

	for _, opt := range opts {
		opt(v)
	}

	return v
}

// LoadPage fetches the given page and replaces the view state with the
// outcome. On entry the state becomes Loading (concepts, pagination meta,
// and any error message are cleared). On success the state becomes Loaded
// with the tracked page taken from the response meta; on failure it becomes
// Errored with the taxonomy's display message. The Loading phase is always
// exited: whichever load completes last settles the state.
//
// Returns the state as this load left it (or the newer state if this load
// was superseded while in flight).
func (v *Viewer) LoadPage(ctx context.Context, page int) State {
	v.mu.Lock()
	v.seq++
	seq := v.seq
	prior := v.state.CurrentPage
	v.state = State{
		Phase:       PhaseLoading,
		CurrentPage: prior,
	}
	v.mu.Unlock()

	result, err := v.fetcher.FetchConcepts(ctx, page)

	v.mu.Lock()
	defer v.mu.Unlock()

	// A newer load was issued while this one was in flight; its outcome
	// wins regardless of arrival order.
	if seq != v.seq {
		v.logger.Debug().
			Int("page", page).
			Uint64("seq", seq).
			Uint64("latest", v.seq).
			Msg("Discarding stale page load")
		return v.snapshotLocked()
	}

	if err != nil {
		v.logger.Warn().Err(err).Int("page", page).Msg("Page load failed")
		v.state = State{
			Phase:       PhaseErrored,
			CurrentPage: prior,
			Message:     client.UserMessage(err),
		}
		return v.snapshotLocked()
	}

	v.state = State{
		Phase:       PhaseLoaded,
		Concepts:    result.Data,
		Meta:        result.Meta,
		CurrentPage: result.Meta.CurrentPage,
	}

	v.logger.Debug().
		Int("requested_page", page).
		Int("current_page", v.state.CurrentPage).
		Int("concepts", len(v.state.Concepts)).
		Msg("Page loaded")

	return v.snapshotLocked()
}

// Snapshot returns a copy of the current view state.
func (v *Viewer) Snapshot() State {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.snapshotLocked()
}

// snapshotLocked copies the state; the caller holds v.mu.
func (v *Viewer) snapshotLocked() State {
	st := v.state
	if st.Concepts != nil {
		st.Concepts = append([]concept.Concept(nil), st.Concepts...)
	}
	return st
}

// Select activates a concept card. With no hook configured it only logs,
// as a placeholder for a future detail view.
func (v *Viewer) Select(c concept.Concept) {
	if v.onSelect != nil {
		v.onSelect(c)
		return
	}

	v.logger.Debug().
		Str("concept_id", c.ConceptID).
		Str("label", c.Label).
		Msg("Concept selected")
}
