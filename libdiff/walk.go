package libdiff

import (
	"fmt"

	"github.com/signadot/diffx/edit"
	"github.com/signadot/diffx/token"
)

// planner ranks the moves available at (i, j) of two middles.
type planner interface {
	// rank appends to dst every move possible at (i, j), best first, and
	// reports how many of them follow the plan.
	rank(i, j int, dst []edit.Operator) ([]edit.Operator, int)
}

// walker turns a plan into a script over the middles a and b. tailA and
// tailB are the tokens following each middle, nil when the middle runs to
// the end.
type walker struct {
	a, b         []*token.Token
	tailA, tailB *token.Token
	// detours counts moves taken off the plan to keep the script well
	// formed.
	detours int
}

func (w *walker) next(i, j int) (*token.Token, *token.Token) {
	na, nb := w.tailA, w.tailB
	if i < len(w.a) {
		na = w.a[i]
	}
	if j < len(w.b) {
		nb = w.b[j]
	}
	return na, nb
}

func (w *walker) token(op edit.Operator, i, j int) *token.Token {
	if op == edit.Ins {
		return w.b[j]
	}
	return w.a[i]
}

// walk takes at each step the best ranked move the element state allows.
func (w *walker) walk(p planner, st *elementState) error {
	n, m := len(w.a), len(w.b)
	var buf [4]edit.Operator
	i, j := 0, 0
	for i < n || j < m {
		moves, onPlan := p.rank(i, j, buf[:0])
		na, nb := w.next(i, j)
		k := -1
		for c, op := range moves {
			if st.allowed(op, w.token(op, i, j), na, nb) {
				k = c
				break
			}
		}
		if k < 0 {
			return fmt.Errorf("%w: no move at %s / %s", ErrIllFormed, na, nb)
		}
		if k >= onPlan {
			w.detours++
		}
		op := moves[k]
		if err := st.emit(op, w.token(op, i, j)); err != nil {
			return err
		}
		switch op {
		case edit.Match:
			i++
			j++
		case edit.Del:
			i++
		case edit.Ins:
			j++
		}
	}
	return nil
}
