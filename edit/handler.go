package edit

import (
	"errors"
	"fmt"

	"github.com/signadot/diffx/token"
)

var (
	ErrUnbalanced = errors.New("unbalanced edit script")
)

// Handler receives the entries of an edit script, synchronously and in
// output order. Returning an error aborts the diff.
type Handler interface {
	Handle(op Operator, t *token.Token) error
}

// HandlerFunc adapts a function to a Handler.
type HandlerFunc func(op Operator, t *token.Token) error

func (f HandlerFunc) Handle(op Operator, t *token.Token) error {
	return f(op, t)
}

// Closer is implemented by handlers which buffer and must be told that the
// script is complete.
type Closer interface {
	Close() error
}

// Close closes h if it is a Closer.
func Close(h Handler) error {
	c, ok := h.(Closer)
	if !ok {
		return nil
	}
	return c.Close()
}

// Entry is one element of an edit script.
type Entry struct {
	Op    Operator
	Token *token.Token
}

func (e Entry) String() string {
	return e.Op.Symbol() + e.Token.String()
}

// Replay sends entries to h, stopping at the first error.
func Replay(entries []Entry, h Handler) error {
	for i, e := range entries {
		if err := h.Handle(e.Op, e.Token); err != nil {
			return fmt.Errorf("entry %d %s: %w", i, e, err)
		}
	}
	return nil
}
