package queens

import (
	"sort"
	"strings"
)

// Placement records that a queen occupies a specific square. It is kept as
// its own type rather than a bare Square because the solver composes
// placements into sequences positionally.
type Placement struct {
	Square Square
}

// String returns the placement's square as "(row,col)".
func (p Placement) String() string {
	return p.Square.String()
}

// Solution is an ordered sequence of N placements produced by one
// successful search. Its invariant is that no two placements share a row,
// column, or diagonal; Valid reports whether that holds.
//
// The placement order reflects discovery order. For equality and
// deduplication the canonical row-then-column order matters instead; see
// Normalize and Key.
type Solution []Placement

// Normalize returns a copy of the solution with its placements sorted by
// row, then column. Normalizing an already-normalized solution produces an
// identical sequence. The receiver is never modified.
func (s Solution) Normalize() Solution {
	norm := make(Solution, len(s))
	copy(norm, s)
	sort.Slice(norm, func(i, j int) bool {
		a, b := norm[i].Square, norm[j].Square
		if a.Row != b.Row {
			return a.Row < b.Row
		}
		return a.Col < b.Col
	})
	return norm
}

// Key returns the canonical string form of the solution, independent of
// placement order. The History uses it as its set key.
func (s Solution) Key() string {
	norm := s.Normalize()
	var sb strings.Builder
	for i, p := range norm {
		if i > 0 {
			sb.WriteByte(';')
		}
		sb.WriteString(p.Square.String())
	}
	return sb.String()
}

// Occupied reports whether a queen is placed on the given square. This is
// the only predicate presentation layers need to render a board.
func (s Solution) Occupied(row, col int) bool {
	for _, p := range s {
		if p.Square.Row == row && p.Square.Col == col {
			return true
		}
	}
	return false
}

// Valid reports whether the non-attack invariant holds: no two placements
// in the solution attack each other.
func (s Solution) Valid() bool {
	for i := 0; i < len(s); i++ {
		for j := i + 1; j < len(s); j++ {
			if Attacks(s[i].Square, s[j].Square) {
				return false
			}
		}
	}
	return true
}

// String returns the placements in sequence order, e.g.
// "[(1,2) (2,4) (3,1) (4,3)]".
func (s Solution) String() string {
	parts := make([]string, len(s))
	for i, p := range s {
		parts[i] = p.String()
	}
	return "[" + strings.Join(parts, " ") + "]"
}
