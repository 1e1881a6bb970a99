// Package datasource tracks, per collection, whether the authoritative data
// source is the remote store or the local demo store. The decision is derived
// from the outcome of remote reads and recomputed on every full fetch.
package datasource

import "sync"

// Collection identifies one of the entity domains with an independent mode.
type Collection string

const (
	Norms Collection = "norms"
	Users Collection = "users"
	Areas Collection = "areas"
)

// IsDemoResult classifies the outcome of a remote list read: an error or an
// empty result both mean the collection is unavailable and demo data is
// authoritative.
func IsDemoResult(count int, err error) bool {
	return err != nil || count == 0
}

// Overall computes the composite demo flag used by the admin console and the
// metrics panel: norms being unavailable forces demo mode outright, and a
// privileged caller additionally needs the user collection. Area availability
// never forces demo mode on its own.
func Overall(normsDemo, usersDemo, privileged bool) bool {
	return normsDemo || (privileged && usersDemo)
}

// State holds the current per-collection mode. It is shared between the data
// facades (which write it on every fetch) and the status/metrics surfaces
// (which read it).
type State struct {
	mu    sync.RWMutex
	demo  map[Collection]bool
	known map[Collection]bool

	// Observer, when set, is invoked after every mode change. Used to feed
	// the Prometheus demo-mode gauge.
	Observer func(collection Collection, demo bool)
}

func NewState() *State {
	return &State{
		demo:  make(map[Collection]bool),
		known: make(map[Collection]bool),
	}
}

// SetDemo records the mode for a collection, replacing any previous value.
func (s *State) SetDemo(c Collection, demo bool) {
	s.mu.Lock()
	s.demo[c] = demo
	s.known[c] = true
	observer := s.Observer
	s.mu.Unlock()

	if observer != nil {
		observer(c, demo)
	}
}

// Demo reports whether demo mode is active for a collection. Before the first
// fetch of a collection it reports false.
func (s *State) Demo(c Collection) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.demo[c]
}

// Known reports whether a mode has been computed for the collection yet.
func (s *State) Known(c Collection) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.known[c]
}
