package edit

import (
	"strings"

	"github.com/signadot/diffx/token"
)

// Coalescer merges consecutive text tokens which share an operator into a
// single text token before passing them on. Inside a region of edits,
// interleaved deleted and inserted text is regrouped as one deletion
// followed by one insertion.
type Coalescer struct {
	next    Handler
	current Operator
	buf     []*token.Token
	alt     []*token.Token
}

func NewCoalescer(next Handler) *Coalescer {
	return &Coalescer{next: next}
}

func (c *Coalescer) Handle(op Operator, t *token.Token) error {
	if t.Kind().IsText() {
		return c.handleText(op, t)
	}
	if err := c.Flush(); err != nil {
		return err
	}
	return c.next.Handle(op, t)
}

func (c *Coalescer) handleText(op Operator, t *token.Token) error {
	switch {
	case op == c.current:
		c.buf = append(c.buf, t)
	case op == Match || c.current == Match:
		if err := c.Flush(); err != nil {
			return err
		}
		c.current = op
		c.buf = append(c.buf, t)
	default:
		c.alt = append(c.alt, t)
	}
	return nil
}

// Flush passes on any buffered text.
func (c *Coalescer) Flush() error {
	if len(c.buf) > 0 {
		t := Coalesce(c.buf)
		c.buf = c.buf[:0]
		if err := c.next.Handle(c.current, t); err != nil {
			return err
		}
	}
	if len(c.alt) > 0 {
		t := Coalesce(c.alt)
		c.alt = c.alt[:0]
		if err := c.next.Handle(c.current.Flip(), t); err != nil {
			return err
		}
	}
	return nil
}

// Close flushes and closes the next handler.
func (c *Coalescer) Close() error {
	if err := c.Flush(); err != nil {
		return err
	}
	return Close(c.next)
}

// Coalesce joins text tokens into one. A single token is returned as is.
func Coalesce(toks []*token.Token) *token.Token {
	if len(toks) == 1 {
		return toks[0]
	}
	var b strings.Builder
	for _, t := range toks {
		b.WriteString(t.Value())
	}
	return token.Text(b.String())
}
