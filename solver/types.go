// Package solver provides tunable options and error definitions for the
// breadth-first chain search over a board.Board.
package solver

import (
	"errors"
	"fmt"
)

// DefaultMaxResults caps emitted full-coverage chains when the caller does
// not override it.
const DefaultMaxResults = 25

// Sentinel errors for chain search.
var (
	// ErrBoardNil is returned if a nil board pointer is passed.
	ErrBoardNil = errors.New("solver: board is nil")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("solver: invalid option supplied")

	// ErrPriorIndex is returned when a prior-word index does not point
	// into the word list.
	ErrPriorIndex = errors.New("solver: prior word index out of range")
)

// Result is one chain produced by Solve.
type Result struct {
	// Words is the chain in play order, prior words included.
	Words []string

	// Covered is the number of distinct board letters the chain uses.
	// It equals the board's LetterCount only for a full solution.
	Covered int
}

// Option configures Solve behavior via functional arguments.
// If an Option is invalid (e.g. non-positive MaxResults), it is recorded
// internally and surfaced as ErrOptionViolation when Solve is invoked.
type Option func(*Options)

// Options holds parameters that tune the chain search.
type Options struct {
	// MaxResults stops the entire search once this many full-coverage
	// chains have been emitted.
	MaxResults int

	// PriorWords holds indices into the word list of a chain already
	// committed to, in play order. The search extends that chain instead
	// of starting fresh.
	PriorWords []int

	// internal error recorded during option parsing
	err error
}

// DefaultOptions returns Options with sane defaults:
//   - MaxResults = DefaultMaxResults
//   - no prior words
//   - error channel clear.
func DefaultOptions() Options {
	return Options{
		MaxResults: DefaultMaxResults,
		PriorWords: nil,
		err:        nil,
	}
}

// WithMaxResults caps the number of full-coverage chains emitted.
//
//	n > 0:  emit at most n chains, stopping the search early
//	n <= 0: invalid option → ErrOptionViolation
func WithMaxResults(n int) Option {
	return func(o *Options) {
		if n <= 0 {
			o.err = fmt.Errorf("%w: MaxResults must be positive (%d)", ErrOptionViolation, n)

			return
		}
		o.MaxResults = n
	}
}

// WithPriorWords seeds the search with a chain already played, given as
// indices into the word list in play order. Prior words are committed
// as-is: they are not re-checked for eligibility. Indices are validated
// when Solve runs; an out-of-range value yields ErrPriorIndex.
func WithPriorWords(indices ...int) Option {
	return func(o *Options) {
		o.PriorWords = append([]int(nil), indices...)
	}
}
