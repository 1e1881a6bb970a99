// Package demostore persists the demo-mode collections as JSON files, one per
// collection, under a local data directory. It mirrors the behavior of the
// browser-local storage it replaces: collections are written through in full
// on every mutation and deleted as soon as real remote data reappears.
package demostore

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"
)

type Store struct {
	dir string
	mu  sync.Mutex
}

func New(dir string) *Store {
	return &Store{dir: dir}
}

// Load reads a collection into v. It returns false when the collection has
// never been persisted.
func (s *Store) Load(collection string, v any) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	data, err := os.ReadFile(s.path(collection))
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return false, nil
		}
		return false, fmt.Errorf("reading demo collection %q: %w", collection, err)
	}
	if err := json.Unmarshal(data, v); err != nil {
		return false, fmt.Errorf("decoding demo collection %q: %w", collection, err)
	}
	return true, nil
}

// Save persists the full collection, creating the data directory on first use.
func (s *Store) Save(collection string, v any) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := os.MkdirAll(s.dir, 0o755); err != nil {
		return fmt.Errorf("creating demo data dir: %w", err)
	}
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("encoding demo collection %q: %w", collection, err)
	}
	if err := os.WriteFile(s.path(collection), data, 0o644); err != nil {
		return fmt.Errorf("writing demo collection %q: %w", collection, err)
	}
	return nil
}

// Clear deletes the persisted copy of a collection so stale demo edits cannot
// resurface after the remote store becomes available again.
func (s *Store) Clear(collection string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	err := os.Remove(s.path(collection))
	if err != nil && !errors.Is(err, os.ErrNotExist) {
		return fmt.Errorf("clearing demo collection %q: %w", collection, err)
	}
	return nil
}

func (s *Store) path(collection string) string {
	return filepath.Join(s.dir, "demo_"+collection+".json")
}
