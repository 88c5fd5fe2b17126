package render

import (
	"strings"
	"testing"

	"github.com/gitrdm/queenslogic/pkg/queens"
)

func solution(squares ...queens.Square) queens.Solution {
	sol := make(queens.Solution, len(squares))
	for i, sq := range squares {
		sol[i] = queens.Placement{Square: sq}
	}
	return sol
}

// TestText tests the plain grid format row by row.
func TestText(t *testing.T) {
	sol := solution(
		queens.Square{Row: 1, Col: 2},
		queens.Square{Row: 2, Col: 4},
		queens.Square{Row: 3, Col: 1},
		queens.Square{Row: 4, Col: 3},
	)
	want := "X Q X X\nX X X Q\nQ X X X\nX X Q X\n"
	if got := Text(sol, 4); got != want {
		t.Errorf("Text rendered:\n%s\nwant:\n%s", got, want)
	}
}

// TestTextSingle tests the 1×1 board.
func TestTextSingle(t *testing.T) {
	sol := solution(queens.Square{Row: 1, Col: 1})
	if got := Text(sol, 1); got != "Q\n" {
		t.Errorf("Text(1) = %q, want %q", got, "Q\n")
	}
}

// TestStyled tests shape only; styling escapes depend on the terminal
// profile, so the assertion sticks to line count and queen glyphs.
func TestStyled(t *testing.T) {
	sol := solution(
		queens.Square{Row: 1, Col: 2},
		queens.Square{Row: 2, Col: 4},
		queens.Square{Row: 3, Col: 1},
		queens.Square{Row: 4, Col: 3},
	)
	out := Styled(sol, 4)
	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	if len(lines) != 4 {
		t.Fatalf("Expected 4 rows, got %d", len(lines))
	}
	if strings.Count(out, "♛") != 4 {
		t.Errorf("Expected 4 queen glyphs, got %d", strings.Count(out, "♛"))
	}
}
