package libdiff

import (
	"math"

	"github.com/signadot/diffx/edit"
	"github.com/signadot/diffx/token"
)

type cell interface {
	~uint16 | ~uint32
}

// lcsTable holds at(i, j) = LCS(a[i:], b[j:]).
type lcsTable[T cell] struct {
	cols  int
	cells []T
}

func newLCSTable[T cell](a, b []*token.Token) *lcsTable[T] {
	n, m := len(a), len(b)
	t := &lcsTable[T]{cols: m + 1, cells: make([]T, (n+1)*(m+1))}
	for i := n - 1; i >= 0; i-- {
		row := i * t.cols
		next := row + t.cols
		for j := m - 1; j >= 0; j-- {
			if a[i].Equal(b[j]) {
				t.cells[row+j] = t.cells[next+j+1] + 1
			} else {
				t.cells[row+j] = max(t.cells[next+j], t.cells[row+j+1])
			}
		}
	}
	return t
}

func (t *lcsTable[T]) at(i, j int) T {
	return t.cells[i*t.cols+j]
}

// exactPlan ranks moves by the LCS table: the moves keeping the alignment
// optimal in the order Match, Del, Ins, then the others by how little they
// lose.
type exactPlan[T cell] struct {
	t    *lcsTable[T]
	a, b []*token.Token
}

func (p *exactPlan[T]) rank(i, j int, dst []edit.Operator) ([]edit.Operator, int) {
	n, m := len(p.a), len(p.b)
	here := p.t.at(i, j)
	if i < n && j < m && p.a[i].Equal(p.b[j]) {
		dst = append(dst, edit.Match)
	}
	del := i < n && p.t.at(i+1, j) == here
	ins := j < m && p.t.at(i, j+1) == here
	if del {
		dst = append(dst, edit.Del)
	}
	if ins {
		dst = append(dst, edit.Ins)
	}
	onPlan := len(dst)
	offDel, offIns := i < n && !del, j < m && !ins
	switch {
	case offDel && offIns:
		if p.t.at(i, j+1) > p.t.at(i+1, j) {
			dst = append(dst, edit.Ins, edit.Del)
		} else {
			dst = append(dst, edit.Del, edit.Ins)
		}
	case offDel:
		dst = append(dst, edit.Del)
	case offIns:
		dst = append(dst, edit.Ins)
	}
	return dst, onPlan
}

func runExact(w *walker, st *elementState) error {
	if min(len(w.a), len(w.b)) < math.MaxUint16 {
		return w.walk(&exactPlan[uint16]{t: newLCSTable[uint16](w.a, w.b), a: w.a, b: w.b}, st)
	}
	return w.walk(&exactPlan[uint32]{t: newLCSTable[uint32](w.a, w.b), a: w.a, b: w.b}, st)
}
