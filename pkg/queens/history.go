package queens

import "sync"

// History is the set of normalized solutions already returned in the
// current session. It lives only for the lifetime of the process; nothing
// is persisted.
//
// History is safe for concurrent use. Entries are keyed by the solution's
// canonical key, so membership is insensitive to placement order.
type History struct {
	mu   sync.RWMutex
	seen map[string]Solution
}

// NewHistory creates an empty history.
func NewHistory() *History {
	return &History{seen: make(map[string]Solution)}
}

// Record adds a solution to the history. The stored form is normalized;
// recording a solution that is already present is a no-op.
func (h *History) Record(sol Solution) {
	norm := sol.Normalize()
	h.mu.Lock()
	h.seen[norm.Key()] = norm
	h.mu.Unlock()
}

// Contains reports whether the solution's normalized form has been
// recorded.
func (h *History) Contains(sol Solution) bool {
	key := sol.Key()
	h.mu.RLock()
	defer h.mu.RUnlock()
	_, ok := h.seen[key]
	return ok
}

// Len returns the number of distinct solutions recorded.
func (h *History) Len() int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.seen)
}

// Clear removes every recorded solution.
func (h *History) Clear() {
	h.mu.Lock()
	h.seen = make(map[string]Solution)
	h.mu.Unlock()
}
