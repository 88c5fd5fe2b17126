package queens

import "errors"

// Sentinel errors returned by the solver and session API.
// Callers should test for them with errors.Is, since the
// package wraps them with additional context.
var (
	// ErrInvalidSize is returned when a board size below 1 is requested.
	ErrInvalidSize = errors.New("board size must be at least 1")

	// ErrNoSolutionFound is returned when the search exhausts every
	// candidate square without completing a full placement sequence.
	// For sizes 2 and 3 this is the expected outcome; in enumeration
	// mode it also signals that every distinct solution has been seen.
	ErrNoSolutionFound = errors.New("no solution found")

	// ErrDuplicateSolution is returned when a search produces a solution
	// whose normalized form is already recorded in the session history.
	// The session never retries a different branch on its own; see
	// WithSearchPastDuplicates for iteration over distinct solutions.
	ErrDuplicateSolution = errors.New("solution already recorded")
)
