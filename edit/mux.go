package edit

import (
	"errors"

	"github.com/signadot/diffx/token"
)

// Mux sends every entry to each of its handlers in turn.
type Mux []Handler

func (m Mux) Handle(op Operator, t *token.Token) error {
	for _, h := range m {
		if err := h.Handle(op, t); err != nil {
			return err
		}
	}
	return nil
}

// Close closes every handler which is a Closer.
func (m Mux) Close() error {
	var errs []error
	for _, h := range m {
		if err := Close(h); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}
