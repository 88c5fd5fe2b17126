// Package queens solves the N-Queens placement puzzle: assign N queens to
// an N×N board such that no two queens share a row, column, or diagonal.
//
// The package is built from three layers, leaves first:
//   - Board: the enumerable domain of placeable squares for the current size.
//   - Solver: a deterministic recursive backtracking search over that domain.
//   - Session: the controller that resets state, runs the solver, normalizes
//     the result, and checks it against the history of solutions already
//     returned.
//
// Two solutions are considered identical when they contain the same set of
// placements regardless of discovery order; deduplication always operates on
// the normalized (row-then-column sorted) form. Rotations and reflections are
// distinct solutions.
//
// Sessions are instance-scoped: concurrent callers each own a Session and
// need no locking. The History type is independently safe for shared use.
package queens

import "fmt"

// Square is a single board coordinate. Rows and columns are 1-based and
// both lie in [1, N] for a board of size N. Squares are immutable values.
type Square struct {
	Row int
	Col int
}

// String returns the square as "(row,col)".
func (s Square) String() string {
	return fmt.Sprintf("(%d,%d)", s.Row, s.Col)
}

// Board owns the domain of placeable squares for the current size. The
// domain is generated row-major (increasing row, then increasing column
// within a row) and the solver draws candidates in exactly that order,
// which is what makes the search deterministic.
//
// A Board is session-scoped state: it is rebuilt on every top-level search
// request and is not safe for concurrent mutation.
type Board struct {
	size    int
	squares []Square
}

// NewBoard creates a board of the given size and populates its square
// domain. Returns ErrInvalidSize if n < 1.
func NewBoard(n int) (*Board, error) {
	b := &Board{}
	if err := b.Reset(n); err != nil {
		return nil, err
	}
	return b, nil
}

// Reset discards the current square domain and repopulates it for the given
// size. It is idempotent: calling it repeatedly with the same or a different
// size always leaves the board in a freshly initialized state.
func (b *Board) Reset(n int) error {
	if n < 1 {
		return fmt.Errorf("queens: size %d: %w", n, ErrInvalidSize)
	}
	b.size = n
	b.squares = make([]Square, 0, n*n)
	for row := 1; row <= n; row++ {
		for col := 1; col <= n; col++ {
			b.squares = append(b.squares, Square{Row: row, Col: col})
		}
	}
	return nil
}

// Size returns the board's current size.
func (b *Board) Size() int {
	return b.size
}

// Squares returns the square domain in generation order. The returned slice
// is the board's own backing store; callers must not modify it.
func (b *Board) Squares() []Square {
	return b.squares
}
