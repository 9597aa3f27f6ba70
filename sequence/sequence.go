// Package sequence holds the ordered token lists that are the input of the
// alignment algorithms.
package sequence

import (
	"slices"
	"strings"

	"github.com/signadot/diffx/token"
)

// Sequence is an ordered list of tokens with the namespaces used by them.
//
// A Sequence is built once by a loader and then only read.
type Sequence struct {
	toks       []*token.Token
	namespaces *PrefixMapping
}

func New() *Sequence {
	return &Sequence{namespaces: NewPrefixMapping()}
}

// FromTokens builds a sequence from toks, canonicalizing attribute runs.
func FromTokens(toks ...*token.Token) *Sequence {
	s := New()
	s.AppendAll(toks...)
	return s
}

// Append appends t. An attribute is moved into place within the run of
// attributes it ends, as with [Sequence.AppendAll].
func (s *Sequence) Append(t *token.Token) {
	s.toks = append(s.toks, t)
	if t.Kind() != token.KindAttribute {
		return
	}
	i := len(s.toks) - 1
	for i > 0 && s.toks[i-1].Kind() == token.KindAttribute && compareAttributes(s.toks[i-1], t) > 0 {
		s.toks[i] = s.toks[i-1]
		i--
	}
	s.toks[i] = t
}

// AppendAll appends toks in order, except that every run of consecutive
// attributes is sorted by namespace URI then local name so that attribute
// order in the source document never shows up as a difference. A run
// continues the attributes already at the end of s.
func (s *Sequence) AppendAll(toks ...*token.Token) {
	start := len(s.toks)
	for start > 0 && s.toks[start-1].Kind() == token.KindAttribute {
		start--
	}
	s.toks = append(s.toks, toks...)
	sortAttributeRuns(s.toks[start:])
}

func sortAttributeRuns(toks []*token.Token) {
	i := 0
	for i < len(toks) {
		if toks[i].Kind() != token.KindAttribute {
			i++
			continue
		}
		j := i + 1
		for j < len(toks) && toks[j].Kind() == token.KindAttribute {
			j++
		}
		if j-i > 1 {
			slices.SortStableFunc(toks[i:j], compareAttributes)
		}
		i = j
	}
}

func compareAttributes(a, b *token.Token) int {
	if c := strings.Compare(a.Namespace(), b.Namespace()); c != 0 {
		return c
	}
	return strings.Compare(a.Name(), b.Name())
}

// AddNamespace registers a namespace, see [PrefixMapping.Add].
func (s *Sequence) AddNamespace(uri, prefix string) bool {
	return s.namespaces.Add(uri, prefix)
}

func (s *Sequence) Len() int { return len(s.toks) }

func (s *Sequence) At(i int) *token.Token { return s.toks[i] }

// Tokens returns the tokens in order. The slice must not be modified.
func (s *Sequence) Tokens() []*token.Token { return s.toks }

func (s *Sequence) Namespaces() *PrefixMapping { return s.namespaces }

func (s *Sequence) String() string {
	var b strings.Builder
	for i, t := range s.toks {
		if i > 0 {
			b.WriteByte(' ')
		}
		b.WriteString(t.String())
	}
	return b.String()
}
