package libdiff

import (
	"github.com/signadot/diffx/edit"
	"github.com/signadot/diffx/token"
)

type frame struct {
	op edit.Operator
}

// elementState follows the open elements as entries are emitted: all of
// them in opening order, and those of each side.
//
// Every move it allows keeps the script writable as one document: an end
// element closes the innermost open element and an attribute is emitted
// while the start tag of its element is still open. On well-formed input
// some move is always allowed.
type elementState struct {
	h    edit.Handler
	open []*frame
	src  []*frame
	dst  []*frame
}

func newElementState(h edit.Handler) *elementState {
	return &elementState{h: h}
}

func (s *elementState) emit(op edit.Operator, t *token.Token) error {
	switch t.Kind() {
	case token.KindStartElement:
		f := &frame{op: op}
		s.open = append(s.open, f)
		if op != edit.Ins {
			s.src = append(s.src, f)
		}
		if op != edit.Del {
			s.dst = append(s.dst, f)
		}
	case token.KindEndElement:
		s.open = pop(s.open)
		if op != edit.Ins {
			s.src = pop(s.src)
		}
		if op != edit.Del {
			s.dst = pop(s.dst)
		}
	}
	return s.h.Handle(op, t)
}

func pop(fs []*frame) []*frame {
	if len(fs) == 0 {
		return fs
	}
	return fs[:len(fs)-1]
}

func top(fs []*frame) *frame {
	if len(fs) == 0 {
		return nil
	}
	return fs[len(fs)-1]
}

// allowed reports whether t may be emitted with op. nextA and nextB are
// the next unconsumed tokens of each side, nil at the end.
//
// An attribute next on a side belongs to the innermost element of that
// side, whose start tag is then still open: until it is consumed only
// attributes may be emitted.
func (s *elementState) allowed(op edit.Operator, t, nextA, nextB *token.Token) bool {
	cur := top(s.open)
	if t.Kind() == token.KindAttribute {
		if cur == nil {
			return false
		}
		switch op {
		case edit.Del:
			return top(s.src) == cur
		case edit.Ins:
			return top(s.dst) == cur
		default:
			return top(s.src) == cur && top(s.dst) == cur
		}
	}
	if isAttribute(nextA) || isAttribute(nextB) {
		return false
	}
	if t.Kind() == token.KindEndElement {
		return cur != nil && cur.op == op
	}
	return true
}

func isAttribute(t *token.Token) bool {
	return t != nil && t.Kind() == token.KindAttribute
}
