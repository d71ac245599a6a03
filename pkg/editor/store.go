package editor

import (
	"fmt"
	"sort"
	"sync"

	"github.com/google/uuid"

	"github.com/goliatone/go-formbuilder/pkg/layout"
)

// Store keeps live sessions in memory, keyed by a random UUID.
type Store struct {
	mu       sync.RWMutex
	sessions map[string]*Session
	opts     []Option
}

// NewStore returns an empty store. opts are applied to every session it
// creates.
func NewStore(opts ...Option) *Store {
	return &Store{
		sessions: make(map[string]*Session),
		opts:     opts,
	}
}

// Create starts a new session on grid and returns its id.
func (st *Store) Create(grid layout.Grid) (string, *Session) {
	id := uuid.NewString()
	session := New(grid, st.opts...)

	st.mu.Lock()
	defer st.mu.Unlock()
	st.sessions[id] = session
	return id, session
}

// Get returns the session registered under id.
func (st *Store) Get(id string) (*Session, error) {
	st.mu.RLock()
	defer st.mu.RUnlock()

	session, ok := st.sessions[id]
	if !ok {
		return nil, fmt.Errorf("%q: %w", id, ErrSessionNotFound)
	}
	return session, nil
}

// Delete removes a session, reporting whether it existed.
func (st *Store) Delete(id string) bool {
	st.mu.Lock()
	defer st.mu.Unlock()

	if _, ok := st.sessions[id]; !ok {
		return false
	}
	delete(st.sessions, id)
	return true
}

// List returns the sorted session ids.
func (st *Store) List() []string {
	st.mu.RLock()
	defer st.mu.RUnlock()

	ids := make([]string, 0, len(st.sessions))
	for id := range st.sessions {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}

// Len reports the number of live sessions.
func (st *Store) Len() int {
	st.mu.RLock()
	defer st.mu.RUnlock()
	return len(st.sessions)
}
