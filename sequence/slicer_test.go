package sequence

import (
	"testing"

	"github.com/signadot/diffx/token"
)

func words(ws ...string) []*token.Token {
	res := make([]*token.Token, len(ws))
	for i, w := range ws {
		res[i] = token.Text(w)
	}
	return res
}

func TestSlice(t *testing.T) {
	tests := []struct {
		a, b           []string
		prefix, suffix int
	}{
		{nil, nil, 0, 0},
		{[]string{"x"}, nil, 0, 0},
		{[]string{"a", "b", "c"}, []string{"a", "b", "c"}, 3, 0},
		{[]string{"a", "x", "c"}, []string{"a", "y", "c"}, 1, 1},
		{[]string{"a", "a"}, []string{"a", "a", "a"}, 2, 0},
		{[]string{"a", "b"}, []string{"b"}, 0, 1},
		{[]string{"q", "a", "b"}, []string{"r", "a", "b"}, 0, 2},
	}
	for i, tc := range tests {
		s := Slice(words(tc.a...), words(tc.b...))
		if s.Prefix != tc.prefix || s.Suffix != tc.suffix {
			t.Errorf("%d: got prefix=%d suffix=%d, want %d %d", i, s.Prefix, s.Suffix, tc.prefix, tc.suffix)
			continue
		}
		if n := len(s.Start()) + len(s.MiddleA()) + len(s.End()); n != len(tc.a) {
			t.Errorf("%d: A pieces cover %d of %d", i, n, len(tc.a))
		}
		if n := len(s.Start()) + len(s.MiddleB()) + len(s.End()); n != len(tc.b) {
			t.Errorf("%d: B pieces cover %d of %d", i, n, len(tc.b))
		}
	}
}

func TestBalance(t *testing.T) {
	r, x := token.StartElement("", "r"), token.StartElement("", "x")
	a := []*token.Token{r, token.Text("u"), x, token.Text("t"), token.EndElement(x), token.EndElement(r)}
	b := []*token.Token{r, x, token.Text("v"), token.Text("t"), token.EndElement(x), token.EndElement(r)}
	s := Slice(a, b)
	if s.Prefix != 1 || s.Suffix != 3 {
		t.Fatalf("got prefix=%d suffix=%d", s.Prefix, s.Suffix)
	}
	s.Balance()
	if s.Suffix != 1 {
		t.Errorf("balanced suffix = %d, want 1", s.Suffix)
	}
	if got := unclosed(0, s.MiddleA()...); got != 0 {
		t.Errorf("middle A leaves %d open", got)
	}
	if got := unclosed(0, s.MiddleB()...); got != 0 {
		t.Errorf("middle B leaves %d open", got)
	}
}
