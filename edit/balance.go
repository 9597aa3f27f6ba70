package edit

import (
	"fmt"

	"github.com/signadot/diffx/token"
)

type openElement struct {
	op    Operator
	start *token.Token
}

// BalanceChecker verifies that a script can be written as one document:
// every end element closes the innermost open element, whichever side it
// belongs to, and carries its operator; every attribute directly follows the
// start tag of an element present on its side. Entries are passed on to
// next, which may be nil.
type BalanceChecker struct {
	next Handler
	open []*openElement
	// tag reports whether the start tag of the innermost element still
	// takes attributes.
	tag bool
	n   int
}

func NewBalanceChecker(next Handler) *BalanceChecker {
	return &BalanceChecker{next: next}
}

func (b *BalanceChecker) Handle(op Operator, t *token.Token) error {
	b.n++
	switch t.Kind() {
	case token.KindStartElement:
		b.open = append(b.open, &openElement{op: op, start: t})
		b.tag = true
	case token.KindEndElement:
		if err := b.close(op, t); err != nil {
			return err
		}
		b.tag = false
	case token.KindAttribute:
		if err := b.attribute(op, t); err != nil {
			return err
		}
	default:
		b.tag = false
	}
	if b.next == nil {
		return nil
	}
	return b.next.Handle(op, t)
}

func (b *BalanceChecker) close(op Operator, t *token.Token) error {
	top := peek(b.open)
	if top == nil || top.op != op || top.start.Name() != t.Name() || top.start.Namespace() != t.Namespace() {
		return fmt.Errorf("%w: %s%s at entry %d does not close the innermost element",
			ErrUnbalanced, op.Symbol(), t, b.n-1)
	}
	b.open = b.open[:len(b.open)-1]
	return nil
}

func (b *BalanceChecker) attribute(op Operator, t *token.Token) error {
	top := peek(b.open)
	ok := b.tag && top != nil
	if ok {
		switch op {
		case Del:
			ok = top.op != Ins
		case Ins:
			ok = top.op != Del
		default:
			ok = top.op == Match
		}
	}
	if !ok {
		return fmt.Errorf("%w: %s%s at entry %d is outside a %s start tag",
			ErrUnbalanced, op.Symbol(), t, b.n-1, op)
	}
	return nil
}

func peek(s []*openElement) *openElement {
	if len(s) == 0 {
		return nil
	}
	return s[len(s)-1]
}

// Close fails if an element is left open, then closes next.
func (b *BalanceChecker) Close() error {
	if e := peek(b.open); e != nil {
		return fmt.Errorf("%w: %s%s left open", ErrUnbalanced, e.op.Symbol(), e.start)
	}
	if b.next == nil {
		return nil
	}
	return Close(b.next)
}
