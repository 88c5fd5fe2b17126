package queens

import (
	"errors"
	"testing"
)

// TestNewBoard tests domain generation and size validation.
func TestNewBoard(t *testing.T) {
	t.Run("generates row-major domain", func(t *testing.T) {
		b, err := NewBoard(2)
		if err != nil {
			t.Fatalf("NewBoard(2) failed: %v", err)
		}
		want := []Square{{1, 1}, {1, 2}, {2, 1}, {2, 2}}
		got := b.Squares()
		if len(got) != len(want) {
			t.Fatalf("Expected %d squares, got %d", len(want), len(got))
		}
		for i := range want {
			if got[i] != want[i] {
				t.Errorf("Square %d: got %v, want %v", i, got[i], want[i])
			}
		}
	})

	t.Run("domain size is n squared", func(t *testing.T) {
		b, err := NewBoard(5)
		if err != nil {
			t.Fatalf("NewBoard(5) failed: %v", err)
		}
		if len(b.Squares()) != 25 {
			t.Errorf("Expected 25 squares, got %d", len(b.Squares()))
		}
		if b.Size() != 5 {
			t.Errorf("Expected size 5, got %d", b.Size())
		}
	})

	t.Run("rejects sizes below 1", func(t *testing.T) {
		for _, n := range []int{0, -1, -100} {
			if _, err := NewBoard(n); !errors.Is(err, ErrInvalidSize) {
				t.Errorf("NewBoard(%d): expected ErrInvalidSize, got %v", n, err)
			}
		}
	})
}

// TestBoardReset tests that Reset is idempotent across same and different
// sizes.
func TestBoardReset(t *testing.T) {
	b, err := NewBoard(3)
	if err != nil {
		t.Fatalf("NewBoard(3) failed: %v", err)
	}

	t.Run("same size rebuilds identical domain", func(t *testing.T) {
		before := append([]Square(nil), b.Squares()...)
		if err := b.Reset(3); err != nil {
			t.Fatalf("Reset(3) failed: %v", err)
		}
		after := b.Squares()
		if len(before) != len(after) {
			t.Fatalf("Domain size changed: %d -> %d", len(before), len(after))
		}
		for i := range before {
			if before[i] != after[i] {
				t.Errorf("Square %d changed: %v -> %v", i, before[i], after[i])
			}
		}
	})

	t.Run("different size replaces domain", func(t *testing.T) {
		if err := b.Reset(4); err != nil {
			t.Fatalf("Reset(4) failed: %v", err)
		}
		if b.Size() != 4 {
			t.Errorf("Expected size 4, got %d", b.Size())
		}
		if len(b.Squares()) != 16 {
			t.Errorf("Expected 16 squares, got %d", len(b.Squares()))
		}
	})

	t.Run("invalid size leaves an error", func(t *testing.T) {
		if err := b.Reset(0); !errors.Is(err, ErrInvalidSize) {
			t.Errorf("Reset(0): expected ErrInvalidSize, got %v", err)
		}
	})
}
