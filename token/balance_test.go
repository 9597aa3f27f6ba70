package token

import (
	"errors"
	"testing"
)

func TestCheckBalance(t *testing.T) {
	a := StartElement("", "a")
	b := StartElement("", "b")
	nsA := StartElement("urn:x", "a")

	good := [][]*Token{
		nil,
		{Text("x")},
		{a, EndElement(a)},
		{a, Attribute("", "x", "1"), b, Text("y"), EndElement(b), EndElement(a)},
		{a, EndElement(a), b, EndElement(b)},
	}
	for i, toks := range good {
		if err := CheckBalance(toks); err != nil {
			t.Errorf("%d: unexpected error %v", i, err)
		}
	}

	bad := []struct {
		toks  []*Token
		open  *Token
		index int
	}{
		{[]*Token{EndElement(a)}, nil, 0},
		{[]*Token{a}, a, 1},
		{[]*Token{a, b, EndElement(a), EndElement(b)}, b, 2},
		{[]*Token{a, EndElement(nsA)}, a, 1},
	}
	for i, tc := range bad {
		err := CheckBalance(tc.toks)
		if !errors.Is(err, ErrImbalance) {
			t.Fatalf("%d: expected ErrImbalance, got %v", i, err)
		}
		var ie *ImbalanceError
		if !errors.As(err, &ie) {
			t.Fatalf("%d: expected *ImbalanceError", i)
		}
		if ie.Open != tc.open || ie.Index != tc.index {
			t.Errorf("%d: got open=%s index=%d, want open=%s index=%d", i, ie.Open, ie.Index, tc.open, tc.index)
		}
		if ie.Error() == "" {
			t.Errorf("%d: empty message", i)
		}
	}
}
