// Package store provides a generic file-backed state container. Each store
// owns one named slice persisted as a versioned JSON envelope, loaded once at
// startup and rewritten synchronously after every mutation.
package store

import (
	"encoding/json"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"sync"
	"time"
)

// envelope wraps the persisted state with enough metadata to detect slices
// written by an incompatible older build. A mismatched name or version causes
// the loader to discard the record and start from the default state.
type envelope struct {
	Name      string          `json:"name"`
	Version   int             `json:"version"`
	UpdatedAt time.Time       `json:"updated_at"`
	State     json.RawMessage `json:"state"`
}

// Options configures a Store.
type Options[S any] struct {
	// Dir is the directory holding the slice file.
	Dir string
	// Name is the slice name; the file is <Dir>/<Name>.json.
	Name string
	// Version is the schema version of S. Persisted records with a
	// different version are discarded on load.
	Version int
	// Default constructs the fallback state used when no usable persisted
	// record exists.
	Default func() S
	// Partialize, when set, maps the state to its persisted subset before
	// every save. Fields stripped here are never written to disk.
	Partialize func(S) S
	// Clone, when set, deep-copies the state. Snapshots handed out by State
	// and Mutate then never alias the live map headers or slice backing
	// arrays, so readers cannot race with in-place mutations.
	Clone func(S) S
}

// Store is a single-slice persisted state container. The logical contract is
// one writer, but mutations are serialized with a mutex since HTTP handlers
// run concurrently.
type Store[S any] struct {
	opts  Options[S]
	mu    sync.Mutex
	state S
}

// Open creates the store and loads the persisted slice. A missing file,
// unreadable JSON, or name/version mismatch falls back to the default state;
// Open never fails for those reasons. Only an unusable configuration (no
// default constructor) is an error.
func Open[S any](opts Options[S]) (*Store[S], error) {
	if opts.Default == nil {
		return nil, fmt.Errorf("store %q: default state constructor is required", opts.Name)
	}
	if opts.Name == "" {
		return nil, fmt.Errorf("store: slice name is required")
	}
	if opts.Dir == "" {
		opts.Dir = "."
	}

	s := &Store[S]{opts: opts}
	s.state = s.load()
	return s, nil
}

// State returns a snapshot of the current in-memory state.
func (s *Store[S]) State() S {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.snapshot(s.state)
}

// Mutate applies fn to the current state, adopts the result as the new
// in-memory state, persists it, and returns it. Persistence errors are
// logged and never propagated; the in-memory state is authoritative.
func (s *Store[S]) Mutate(fn func(S) S) S {
	s.mu.Lock()
	defer s.mu.Unlock()

	next := fn(s.state)
	if s.opts.Partialize != nil {
		next = s.opts.Partialize(next)
	}
	s.state = next

	if err := s.save(next); err != nil {
		log.Printf("store %q: save failed: %v", s.opts.Name, err)
	}
	return s.snapshot(next)
}

func (s *Store[S]) snapshot(state S) S {
	if s.opts.Clone != nil {
		return s.opts.Clone(state)
	}
	return state
}

// Path returns the slice file location.
func (s *Store[S]) Path() string {
	return filepath.Join(s.opts.Dir, s.opts.Name+".json")
}

func (s *Store[S]) load() S {
	data, err := os.ReadFile(s.Path())
	if err != nil {
		if !os.IsNotExist(err) {
			log.Printf("store %q: read failed, using defaults: %v", s.opts.Name, err)
		}
		return s.opts.Default()
	}

	var env envelope
	if err := json.Unmarshal(data, &env); err != nil {
		log.Printf("store %q: corrupt slice, using defaults: %v", s.opts.Name, err)
		return s.opts.Default()
	}
	if env.Name != s.opts.Name || env.Version != s.opts.Version {
		log.Printf("store %q: slice version %d does not match %d, using defaults",
			s.opts.Name, env.Version, s.opts.Version)
		return s.opts.Default()
	}

	state := s.opts.Default()
	if err := json.Unmarshal(env.State, &state); err != nil {
		log.Printf("store %q: undecodable state, using defaults: %v", s.opts.Name, err)
		return s.opts.Default()
	}
	return state
}

func (s *Store[S]) save(state S) error {
	raw, err := json.Marshal(state)
	if err != nil {
		return fmt.Errorf("marshal state: %w", err)
	}

	env := envelope{
		Name:      s.opts.Name,
		Version:   s.opts.Version,
		UpdatedAt: time.Now().UTC(),
		State:     raw,
	}
	data, err := json.MarshalIndent(env, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal envelope: %w", err)
	}

	if err := os.MkdirAll(s.opts.Dir, 0o755); err != nil {
		return fmt.Errorf("create data dir: %w", err)
	}

	// Write-then-rename so a crash mid-write cannot corrupt the slice.
	tmp := s.Path() + ".tmp"
	if err := os.WriteFile(tmp, data, 0o644); err != nil {
		return fmt.Errorf("write slice: %w", err)
	}
	if err := os.Rename(tmp, s.Path()); err != nil {
		return fmt.Errorf("replace slice: %w", err)
	}
	return nil
}
