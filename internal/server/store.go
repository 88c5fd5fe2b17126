package server

import (
	"context"
	"sync"
	"time"

	"github.com/gitrdm/queenslogic/pkg/queens"
	"github.com/google/uuid"
)

// Session wraps a solver session for one API client. The inner
// queens.Session is single-threaded, so each wrapper serializes its own
// Next calls; different sessions never contend.
type Session struct {
	ID         string    `json:"id"`
	Size       int       `json:"size"`
	Persistent bool      `json:"persistent"`
	Enumerate  bool      `json:"enumerate"`
	CreatedAt  time.Time `json:"created_at"`

	mu    sync.Mutex
	inner *queens.Session
}

// Next returns the session's next solution.
func (s *Session) Next(ctx context.Context) (queens.Solution, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.inner.Next(ctx, s.Size)
}

// Solutions returns how many distinct solutions the session has recorded.
func (s *Session) Solutions() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.inner.Solutions()
}

// Store holds all live sessions in memory, keyed by generated ID.
type Store struct {
	mu       sync.RWMutex
	sessions map[string]*Session
}

// NewStore creates an empty store.
func NewStore() *Store {
	return &Store{sessions: make(map[string]*Session)}
}

// Create registers a new session for the given board size and history
// mode.
func (st *Store) Create(size int, persistent, enumerate bool) *Session {
	var opts []queens.Option
	if persistent {
		opts = append(opts, queens.WithPersistentHistory())
	}
	if enumerate {
		opts = append(opts, queens.WithSearchPastDuplicates())
	}

	s := &Session{
		ID:         uuid.NewString(),
		Size:       size,
		Persistent: persistent,
		Enumerate:  enumerate,
		CreatedAt:  time.Now(),
		inner:      queens.NewSession(opts...),
	}

	st.mu.Lock()
	st.sessions[s.ID] = s
	st.mu.Unlock()
	return s
}

// Get returns a session by ID, or nil if not found.
func (st *Store) Get(id string) *Session {
	st.mu.RLock()
	defer st.mu.RUnlock()
	return st.sessions[id]
}

// Delete removes a session. Reports whether it existed.
func (st *Store) Delete(id string) bool {
	st.mu.Lock()
	defer st.mu.Unlock()
	if _, ok := st.sessions[id]; !ok {
		return false
	}
	delete(st.sessions, id)
	return true
}

// List returns all sessions, most recent first.
func (st *Store) List() []*Session {
	st.mu.RLock()
	defer st.mu.RUnlock()

	list := make([]*Session, 0, len(st.sessions))
	for _, s := range st.sessions {
		list = append(list, s)
	}
	for i := 1; i < len(list); i++ {
		for j := i; j > 0 && list[j].CreatedAt.After(list[j-1].CreatedAt); j-- {
			list[j], list[j-1] = list[j-1], list[j]
		}
	}
	return list
}
