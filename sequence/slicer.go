package sequence

import "github.com/signadot/diffx/token"

// Slicer finds the common start and end of two token lists so that only the
// differing middle needs aligning.
type Slicer struct {
	A, B   []*token.Token
	Prefix int
	Suffix int
}

// Slice computes the longest common prefix, then the longest common suffix
// of what remains; the two never overlap.
func Slice(a, b []*token.Token) *Slicer {
	s := &Slicer{A: a, B: b}
	n := min(len(a), len(b))
	for s.Prefix < n && a[s.Prefix].Equal(b[s.Prefix]) {
		s.Prefix++
	}
	for s.Suffix < n-s.Prefix && a[len(a)-1-s.Suffix].Equal(b[len(b)-1-s.Suffix]) {
		s.Suffix++
	}
	return s
}

// Start returns the common prefix, taken from A.
func (s *Slicer) Start() []*token.Token { return s.A[:s.Prefix] }

// End returns the common suffix, taken from A.
func (s *Slicer) End() []*token.Token { return s.A[len(s.A)-s.Suffix:] }

// MiddleA returns the part of A between prefix and suffix.
func (s *Slicer) MiddleA() []*token.Token { return s.A[s.Prefix : len(s.A)-s.Suffix] }

// MiddleB returns the part of B between prefix and suffix.
func (s *Slicer) MiddleB() []*token.Token { return s.B[s.Prefix : len(s.B)-s.Suffix] }

// Balance shrinks the common suffix until neither middle leaves an element
// open. Every end element of the suffix then closes an element of the
// common prefix, on both sides.
func (s *Slicer) Balance() {
	openA, openB := unclosed(0, s.MiddleA()...), unclosed(0, s.MiddleB()...)
	for s.Suffix > 0 && (openA > 0 || openB > 0) {
		openA = unclosed(openA, s.A[len(s.A)-s.Suffix])
		openB = unclosed(openB, s.B[len(s.B)-s.Suffix])
		s.Suffix--
	}
}

// unclosed adds to open the start elements of toks not closed within toks.
func unclosed(open int, toks ...*token.Token) int {
	for _, t := range toks {
		if !t.Kind().IsElement() {
			continue
		}
		if t.Kind() == token.KindStartElement {
			open++
		} else if open > 0 {
			open--
		}
	}
	return open
}
