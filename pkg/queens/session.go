package queens

import (
	"context"
	"fmt"
)

// Session coordinates one caller's "give me the next solution" requests.
// Each Next call is a full reset-search-normalize-record cycle over state
// the session owns: a Board holding the square domain and a History holding
// the normalized solutions already returned.
//
// By default every Next call clears the history along with the board, so
// repeated calls for the same size succeed and return the same first
// solution over and over. WithPersistentHistory and
// WithSearchPastDuplicates change that; see their documentation.
//
// A Session is not safe for concurrent use. Concurrent callers should each
// own a Session, which removes any need for locking.
type Session struct {
	board      *Board
	history    *History
	solver     *Solver
	persistent bool
	searchPast bool
}

// Option configures a Session.
type Option func(*Session)

// WithPersistentHistory keeps the history across Next calls for the same
// size instead of clearing it on every reset. On its own this surfaces the
// deterministic search order as an error: a second identical call finds the
// same first solution again and fails with ErrDuplicateSolution. Combine
// with WithSearchPastDuplicates to iterate over distinct solutions.
// Changing the board size still clears the history, since solutions of
// different sizes are never comparable.
func WithPersistentHistory() Option {
	return func(s *Session) { s.persistent = true }
}

// WithSearchPastDuplicates lets the solver backtrack through placement
// sequences whose normalized form is already in the history, so each Next
// call yields a genuinely new solution until the search tree is exhausted,
// at which point Next returns ErrNoSolutionFound. Only meaningful together
// with WithPersistentHistory.
func WithSearchPastDuplicates() Option {
	return func(s *Session) { s.searchPast = true }
}

// NewSession creates a session with an empty history.
func NewSession(opts ...Option) *Session {
	s := &Session{history: NewHistory()}
	for _, opt := range opts {
		opt(s)
	}
	s.solver = NewSolver()
	if s.searchPast {
		s.solver.reject = s.history.Contains
	}
	return s
}

// History exposes the session's solution history, mainly for inspection.
func (s *Session) History() *History {
	return s.history
}

// Solutions returns how many distinct solutions the session has recorded.
func (s *Session) Solutions() int {
	return s.history.Len()
}

// Next runs one end-to-end search for a board of the given size and
// returns the normalized solution.
//
// The request fails with ErrInvalidSize when n < 1, ErrNoSolutionFound
// when the search exhausts the domain (sizes 2 and 3, or an exhausted
// enumeration), and ErrDuplicateSolution when the result is already in the
// history. A duplicate is a hard failure: Next does not retry a different
// branch of the search tree.
func (s *Session) Next(ctx context.Context, n int) (Solution, error) {
	if n < 1 {
		return nil, fmt.Errorf("queens: size %d: %w", n, ErrInvalidSize)
	}

	prevSize := 0
	if s.board == nil {
		b, err := NewBoard(n)
		if err != nil {
			return nil, err
		}
		s.board = b
	} else {
		prevSize = s.board.Size()
		if err := s.board.Reset(n); err != nil {
			return nil, err
		}
	}
	// A persistent history survives same-size calls only; solutions of
	// different sizes are never comparable.
	if !s.persistent || prevSize != n {
		s.history.Clear()
	}

	raw, err := s.solver.Solve(ctx, s.board)
	if err != nil {
		return nil, err
	}
	norm := raw.Normalize()
	if s.history.Contains(norm) {
		return nil, fmt.Errorf("queens: size %d: %w", n, ErrDuplicateSolution)
	}
	s.history.Record(norm)
	return norm, nil
}

// Solve is the package-level convenience entry point: a one-shot default
// session. Each call performs a full reset-search-record cycle, so repeated
// calls for the same size return the same first solution.
func Solve(n int) (Solution, error) {
	return NewSession().Next(context.Background(), n)
}
