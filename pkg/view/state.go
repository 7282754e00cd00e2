// Package view holds the dashboard's process-local state: the last snapshot,
// the load phase and the single expanded record.
//
// State is not safe for concurrent use. The terminal UI owns one on its event
// loop; the web server wraps one in a mutex.
package view

import (
	"github.com/portfolio-site/pkg/tokens"
)

// LoadErrorMessage is shown for every fetch failure, whatever the cause.
const LoadErrorMessage = "Unable to load token data"

const (
	LoadingMessage = "Loading live data..."
	EmptyMessage   = "Waiting for new tokens..."
)

// Phase is the one panel the dashboard renders.
type Phase int

const (
	PhaseLoading Phase = iota
	PhaseError
	PhaseEmpty
	PhaseList
)

func (p Phase) String() string {
	switch p {
	case PhaseLoading:
		return "loading"
	case PhaseError:
		return "error"
	case PhaseEmpty:
		return "empty"
	case PhaseList:
		return "list"
	}
	return "unknown"
}

// Outcome is the result of one fetch. Seq is the poller's issue order; zero
// means unsequenced and is always applied.
type Outcome struct {
	Seq     uint64
	Records []tokens.Record
	Err     error
}

type Options struct {
	// DropStale discards an outcome issued before the last applied one, so a
	// slow early response cannot overwrite a newer snapshot.
	DropStale bool
}

type State struct {
	opts Options

	records  []tokens.Record
	loaded   bool
	errMsg   string
	lastSeq  uint64
	expanded string
	hasExp   bool
}

func New(opts Options) *State {
	return &State{opts: opts}
}

// Apply folds a fetch outcome into the state and reports whether it was used.
// A failure keeps the previous records in memory but hides them behind the
// error panel. Expansion is never touched.
func (s *State) Apply(o Outcome) bool {
	if o.Seq != 0 {
		if s.opts.DropStale && o.Seq < s.lastSeq {
			return false
		}
		if o.Seq > s.lastSeq {
			s.lastSeq = o.Seq
		}
	}

	s.loaded = true
	if o.Err != nil {
		s.errMsg = LoadErrorMessage
		return true
	}
	s.records = o.Records
	if s.records == nil {
		s.records = []tokens.Record{}
	}
	s.errMsg = ""
	return true
}

// Phase resolves Loading > Error > Empty > List.
func (s *State) Phase() Phase {
	switch {
	case !s.loaded:
		return PhaseLoading
	case s.errMsg != "":
		return PhaseError
	case len(s.records) == 0:
		return PhaseEmpty
	default:
		return PhaseList
	}
}

func (s *State) ErrorMessage() string { return s.errMsg }

// Records returns the last successful snapshot in received order, including
// while the error panel is showing.
func (s *State) Records() []tokens.Record {
	out := make([]tokens.Record, len(s.records))
	copy(out, s.records)
	return out
}

// Toggle is a click on a row header: the expanded row collapses, any other
// row becomes the only expanded one.
func (s *State) Toggle(key string) {
	if s.hasExp && s.expanded == key {
		s.expanded, s.hasExp = "", false
		return
	}
	s.expanded, s.hasExp = key, true
}

// ExpandedKey may name a record that is no longer in the snapshot.
func (s *State) ExpandedKey() (string, bool) {
	return s.expanded, s.hasExp
}

// IsExpanded reports whether key is the expanded one. A key that dropped out
// of the snapshot simply matches no row.
func (s *State) IsExpanded(key string) bool {
	return s.hasExp && s.expanded == key
}

// Visible returns the records to render, or nil unless the phase is List.
func (s *State) Visible() []tokens.Record {
	if s.Phase() != PhaseList {
		return nil
	}
	return s.Records()
}
