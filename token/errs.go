package token

import (
	"errors"
	"fmt"
)

var (
	ErrImbalance = errors.New("imbalanced token sequence")
)

// ImbalanceError describes where a token sequence stops being well-formed.
//
// Open is nil for an end element without a matching start, Close is nil
// when an element is never closed.
type ImbalanceError struct {
	Open, Close *Token
	Index       int
}

func (e *ImbalanceError) Unwrap() error {
	return ErrImbalance
}

func (e *ImbalanceError) Error() string {
	if e.Open == nil {
		return fmt.Sprintf("%s: unexpected %s at %d", ErrImbalance, e.Close, e.Index)
	}
	if e.Close == nil {
		return fmt.Sprintf("%s: unclosed %s", ErrImbalance, e.Open)
	}
	return fmt.Sprintf("%s: %s closed by %s at %d", ErrImbalance, e.Open, e.Close, e.Index)
}
