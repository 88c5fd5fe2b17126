package queens

import (
	"context"
	"errors"
	"fmt"
)

// Attacks reports whether two squares attack each other: same row, same
// column, or a common diagonal (|Δrow| == |Δcol|). The degenerate Δ=0 case
// means a square attacks itself, which is what prevents the search from
// choosing an already-occupied square.
func Attacks(a, b Square) bool {
	if a.Row == b.Row || a.Col == b.Col {
		return true
	}
	dr := a.Row - b.Row
	if dr < 0 {
		dr = -dr
	}
	dc := a.Col - b.Col
	if dc < 0 {
		dc = -dc
	}
	return dr == dc
}

// noAttack reports whether the candidate attacks none of the placed
// queens. Vacuously true for an empty placement list.
func noAttack(candidate Square, placed []Placement) bool {
	for _, p := range placed {
		if Attacks(candidate, p.Square) {
			return false
		}
	}
	return true
}

// Solver produces one sequence of mutually non-attacking placements via
// recursive backtracking over a board's square domain. Candidates are tried
// in the domain's generation order (row-major ascending), so for a given
// size and an accepting reject predicate the first solution found is always
// the same raw sequence.
type Solver struct {
	// reject, when non-nil, is consulted with each completed placement
	// sequence. A rejected sequence is treated as a failed branch and the
	// search backtracks past it. Sessions use this to skip solutions the
	// history has already recorded.
	reject func(Solution) bool
}

// NewSolver creates a solver that accepts the first completed placement
// sequence it finds.
func NewSolver() *Solver {
	return &Solver{}
}

// Solve searches the board's domain for a full placement sequence of
// length board.Size(). It returns ErrNoSolutionFound when the domain is
// exhausted at some depth with no valid continuation (sizes 2 and 3), and
// the context's error if ctx is cancelled mid-search. Recursion depth is
// bounded by the board size, one level per placed queen.
func (s *Solver) Solve(ctx context.Context, board *Board) (Solution, error) {
	placed := make([]Placement, 0, board.Size())
	sol, err := s.search(ctx, board, board.Size(), placed)
	if err != nil {
		if errors.Is(err, ErrNoSolutionFound) {
			return nil, fmt.Errorf("queens: size %d: %w", board.Size(), ErrNoSolutionFound)
		}
		return nil, err
	}
	return sol, nil
}

// search places one queen per level. remaining counts the queens still to
// place; placed accumulates the sequence so far.
func (s *Solver) search(ctx context.Context, board *Board, remaining int, placed []Placement) (Solution, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if remaining == 0 {
		sol := append(Solution(nil), Solution(placed)...)
		if s.reject != nil && s.reject(sol) {
			return nil, ErrNoSolutionFound
		}
		return sol, nil
	}
	for _, sq := range board.Squares() {
		if !noAttack(sq, placed) {
			continue
		}
		sol, err := s.search(ctx, board, remaining-1, append(placed, Placement{Square: sq}))
		if err == nil {
			return sol, nil
		}
		if !errors.Is(err, ErrNoSolutionFound) {
			return nil, err
		}
		// Backtrack: try the next candidate square in domain order.
	}
	return nil, ErrNoSolutionFound
}
