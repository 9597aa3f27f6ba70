package libdiff

import (
	"errors"
	"fmt"
)

var (
	ErrTooLarge      = errors.New("sequences too large for exact alignment")
	ErrTooManyTokens = errors.New("too many distinct tokens")
	ErrBadAlgorithm  = errors.New("unknown algorithm")
	// ErrIllFormed is returned when a sequence does not nest, so that no
	// move keeps the script well formed.
	ErrIllFormed = errors.New("ill-formed sequence")
)

// SizeError reports a table of Rows by Cols cells exceeding Limit.
type SizeError struct {
	Rows, Cols int
	Limit      int64
}

func (e *SizeError) Error() string {
	return fmt.Sprintf("%s: %d x %d cells exceeds limit %d", ErrTooLarge, e.Rows, e.Cols, e.Limit)
}

func (e *SizeError) Unwrap() error {
	return ErrTooLarge
}
