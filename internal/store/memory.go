// internal/store/memory.go
//
// In-memory registry of game sessions hosted behind the HTTP front end.
//
// Characteristics:
//   - Records keyed by ID in a map, RWMutex guarded.
//   - Each Record carries its own mutex: a session is a single-owner object,
//     so concurrent handlers for the same game serialize through Record.Do.
//   - State is lost when the process restarts; sessions are one round each,
//     which is all the game needs.

package store

import (
	"context"
	"errors"
	"sync"

	"wordlestar/internal/game"
)

// ErrNotFound reports a lookup for an unknown session ID.
var ErrNotFound = errors.New("session not found")

// Record is one hosted session plus the lock that serializes access to it.
type Record struct {
	ID      string
	Session *game.Session

	mu sync.Mutex
}

// Do runs fn with exclusive access to the record's session.
func (r *Record) Do(fn func(*game.Session) error) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	return fn(r.Session)
}

// Store defines the registry interface for hosted sessions.
// Implementations may be backed by memory (this package) or anything else.
type Store interface {
	// Save registers or replaces a record.
	Save(ctx context.Context, rec *Record) error

	// Get retrieves a record by ID, or ErrNotFound.
	Get(ctx context.Context, id string) (*Record, error)
}

type memory struct {
	mu   sync.RWMutex
	recs map[string]*Record
}

// NewMemoryStore constructs a new in-memory Store.
func NewMemoryStore() Store {
	return &memory{recs: make(map[string]*Record)}
}

func (m *memory) Save(ctx context.Context, rec *Record) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.recs[rec.ID] = rec
	return nil
}

func (m *memory) Get(ctx context.Context, id string) (*Record, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	if rec, ok := m.recs[id]; ok {
		return rec, nil
	}
	return nil, ErrNotFound
}
