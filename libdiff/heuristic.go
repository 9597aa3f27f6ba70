package libdiff

import (
	"fmt"
	"time"

	diffpatch "github.com/sergi/go-diff/diffmatchpatch"

	"github.com/signadot/diffx/edit"
	"github.com/signadot/diffx/token"
)

const (
	surrogateMin = 0xD800
	surrogateLen = 0x800
	maxClasses   = 1_112_063
)

// classes maps tokens to runes so that equal tokens share a rune.
type classes struct {
	buckets map[uint64][]class
	n       int
}

type class struct {
	t *token.Token
	r rune
}

func newClasses() *classes {
	return &classes{buckets: map[uint64][]class{}}
}

func (c *classes) runeOf(t *token.Token) (rune, error) {
	h := t.Hash()
	for _, cl := range c.buckets[h] {
		if cl.t.Equal(t) {
			return cl.r, nil
		}
	}
	if c.n >= maxClasses {
		return 0, fmt.Errorf("%w: more than %d", ErrTooManyTokens, maxClasses)
	}
	r := rune(c.n)
	if r >= surrogateMin {
		r += surrogateLen
	}
	c.n++
	c.buckets[h] = append(c.buckets[h], class{t: t, r: r})
	return r, nil
}

func (c *classes) runes(toks []*token.Token) ([]rune, error) {
	rs := make([]rune, len(toks))
	for i, t := range toks {
		r, err := c.runeOf(t)
		if err != nil {
			return nil, err
		}
		rs[i] = r
	}
	return rs, nil
}

// heuristicPlan follows the alignment found by diffmatchpatch: pairA[i] is
// the token of b paired with a[i] and pairB[j] the token of a paired with
// b[j], -1 when unpaired.
type heuristicPlan struct {
	a, b         []*token.Token
	pairA, pairB []int
}

// newHeuristicPlan computes the alignment without emitting anything.
func newHeuristicPlan(a, b []*token.Token, timeout time.Duration) (*heuristicPlan, error) {
	cls := newClasses()
	ra, err := cls.runes(a)
	if err != nil {
		return nil, err
	}
	rb, err := cls.runes(b)
	if err != nil {
		return nil, err
	}
	dmp := diffpatch.New()
	dmp.DiffTimeout = timeout
	diffs := dmp.DiffMainRunes(ra, rb, false)

	p := &heuristicPlan{a: a, b: b, pairA: make([]int, len(a)), pairB: make([]int, len(b))}
	ai, bi := 0, 0
	for i := range diffs {
		diff := &diffs[i]
		for range diff.Text {
			switch diff.Type {
			case diffpatch.DiffDelete:
				p.pairA[ai] = -1
				ai++
			case diffpatch.DiffInsert:
				p.pairB[bi] = -1
				bi++
			case diffpatch.DiffEqual:
				p.pairA[ai] = bi
				p.pairB[bi] = ai
				ai++
				bi++
			}
		}
	}
	return p, nil
}

// rank puts first the planned Match, or else the edits the plan makes at
// (i, j). A token whose partner was passed by a detour counts as unpaired.
func (p *heuristicPlan) rank(i, j int, dst []edit.Operator) ([]edit.Operator, int) {
	n, m := len(p.a), len(p.b)
	planned := i < n && p.pairA[i] == j
	del := i < n && p.pairA[i] < j
	ins := j < m && p.pairB[j] < i
	if planned {
		dst = append(dst, edit.Match)
	}
	if del {
		dst = append(dst, edit.Del)
	}
	if ins {
		dst = append(dst, edit.Ins)
	}
	onPlan := len(dst)
	if i < n && !del {
		dst = append(dst, edit.Del)
	}
	if j < m && !ins {
		dst = append(dst, edit.Ins)
	}
	if !planned && i < n && j < m && p.a[i].Equal(p.b[j]) {
		dst = append(dst, edit.Match)
	}
	return dst, onPlan
}
