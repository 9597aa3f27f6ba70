package parse

import (
	"fmt"
	"regexp"
	"strings"
	"unicode"

	"github.com/rivo/uniseg"

	"github.com/signadot/diffx/token"
)

// Granularity is the unit in which character content is compared.
type Granularity int

const (
	// GranularitySpaceWord splits text into words which carry their
	// leading space, and single punctuation characters.
	GranularitySpaceWord Granularity = iota
	// GranularityWord splits text on white space.
	GranularityWord
	// GranularityText keeps each text node whole, apart from leading and
	// trailing white space.
	GranularityText
	// GranularityCharacter splits text into grapheme clusters.
	GranularityCharacter
	// GranularityPunctuation splits text after runs of punctuation.
	GranularityPunctuation
)

var granularityNames = map[Granularity]string{
	GranularitySpaceWord:   "space-word",
	GranularityWord:        "word",
	GranularityText:        "text",
	GranularityCharacter:   "character",
	GranularityPunctuation: "punctuation",
}

func ParseGranularity(s string) (Granularity, error) {
	for g, name := range granularityNames {
		if name == s {
			return g, nil
		}
	}
	return 0, fmt.Errorf("%w %q", ErrBadGranularity, s)
}

func (g Granularity) String() string {
	s, ok := granularityNames[g]
	if !ok {
		return fmt.Sprintf("Granularity(%d)", int(g))
	}
	return s
}

func (g Granularity) MarshalText() ([]byte, error) {
	s, ok := granularityNames[g]
	if !ok {
		return nil, fmt.Errorf("%w %d", ErrBadGranularity, int(g))
	}
	return []byte(s), nil
}

func (g *Granularity) UnmarshalText(d []byte) error {
	v, err := ParseGranularity(string(d))
	if err != nil {
		return err
	}
	*g = v
	return nil
}

// Whitespace selects how white space in character content is loaded.
type Whitespace int

const (
	// WhitespaceCompare loads white space as Space tokens, compared by
	// content.
	WhitespaceCompare Whitespace = iota
	// WhitespacePreserve loads white space as IgnorableSpace tokens, which
	// never differ but are kept for output.
	WhitespacePreserve
	// WhitespaceIgnore drops white space.
	WhitespaceIgnore
)

var whitespaceNames = map[Whitespace]string{
	WhitespaceCompare:  "compare",
	WhitespacePreserve: "preserve",
	WhitespaceIgnore:   "ignore",
}

func ParseWhitespace(s string) (Whitespace, error) {
	for w, name := range whitespaceNames {
		if name == s {
			return w, nil
		}
	}
	return 0, fmt.Errorf("%w %q", ErrBadWhitespace, s)
}

func (w Whitespace) String() string {
	s, ok := whitespaceNames[w]
	if !ok {
		return fmt.Sprintf("Whitespace(%d)", int(w))
	}
	return s
}

func (w Whitespace) MarshalText() ([]byte, error) {
	s, ok := whitespaceNames[w]
	if !ok {
		return nil, fmt.Errorf("%w %d", ErrBadWhitespace, int(w))
	}
	return []byte(s), nil
}

func (w *Whitespace) UnmarshalText(d []byte) error {
	v, err := ParseWhitespace(string(d))
	if err != nil {
		return err
	}
	*w = v
	return nil
}

var (
	spaceRun    = regexp.MustCompile(`\s+`)
	spaceWord   = regexp.MustCompile(`( ?[\p{L}\p{N}\p{M}_'-]+)|(\S)`)
	punctuation = regexp.MustCompile(`[.,?!;]+`)
)

// Tokenizer splits character content into text tokens.
type Tokenizer struct {
	f           *token.Factory
	granularity Granularity
	whitespace  Whitespace
}

func NewTokenizer(f *token.Factory, g Granularity, ws Whitespace) *Tokenizer {
	if f == nil {
		f = token.NewFactory()
	}
	return &Tokenizer{f: f, granularity: g, whitespace: ws}
}

// Tokenize appends the tokens of s to dst.
func (t *Tokenizer) Tokenize(dst []*token.Token, s string) []*token.Token {
	if s == "" {
		return dst
	}
	switch t.granularity {
	case GranularityWord:
		return t.byWord(dst, s)
	case GranularityText:
		return t.byText(dst, s)
	case GranularityCharacter:
		return t.byCharacter(dst, s)
	case GranularityPunctuation:
		return t.byPunctuation(dst, s)
	default:
		return t.bySpaceWord(dst, s)
	}
}

// space appends white space according to the white space processing.
func (t *Tokenizer) space(dst []*token.Token, s string) []*token.Token {
	switch t.whitespace {
	case WhitespaceIgnore:
		return dst
	case WhitespacePreserve:
		return append(dst, t.f.IgnorableSpace(s))
	default:
		return append(dst, t.f.Space(s))
	}
}

func isSpace(s string) bool {
	return strings.TrimLeftFunc(s, unicode.IsSpace) == ""
}

func (t *Tokenizer) byText(dst []*token.Token, s string) []*token.Token {
	if isSpace(s) {
		return t.space(dst, s)
	}
	body := strings.TrimLeftFunc(s, unicode.IsSpace)
	lead := s[:len(s)-len(body)]
	trimmed := strings.TrimRightFunc(body, unicode.IsSpace)
	trail := body[len(trimmed):]
	if lead != "" {
		dst = t.space(dst, lead)
	}
	dst = append(dst, t.f.Text(trimmed))
	if trail != "" {
		dst = t.space(dst, trail)
	}
	return dst
}

func (t *Tokenizer) byWord(dst []*token.Token, s string) []*token.Token {
	i := 0
	for _, m := range spaceRun.FindAllStringIndex(s, -1) {
		if i != m[0] {
			dst = append(dst, t.f.Text(s[i:m[0]]))
		}
		dst = t.space(dst, s[m[0]:m[1]])
		i = m[1]
	}
	if i != len(s) {
		dst = append(dst, t.f.Text(s[i:]))
	}
	return dst
}

func (t *Tokenizer) bySpaceWord(dst []*token.Token, s string) []*token.Token {
	i := 0
	for _, m := range spaceWord.FindAllStringIndex(s, -1) {
		if i != m[0] {
			dst = t.space(dst, s[i:m[0]])
		}
		dst = append(dst, t.f.Text(s[m[0]:m[1]]))
		i = m[1]
	}
	if i != len(s) {
		dst = t.space(dst, s[i:])
	}
	return dst
}

func (t *Tokenizer) byCharacter(dst []*token.Token, s string) []*token.Token {
	g := uniseg.NewGraphemes(s)
	for g.Next() {
		c := g.Str()
		if isSpace(c) {
			dst = t.space(dst, c)
			continue
		}
		dst = append(dst, t.f.Text(c))
	}
	return dst
}

func (t *Tokenizer) byPunctuation(dst []*token.Token, s string) []*token.Token {
	i := 0
	for _, m := range punctuation.FindAllStringIndex(s, -1) {
		dst = append(dst, t.f.Text(s[i:m[1]]))
		i = m[1]
	}
	if i == len(s) {
		return dst
	}
	if isSpace(s[i:]) {
		return t.space(dst, s[i:])
	}
	return append(dst, t.f.Text(s[i:]))
}
