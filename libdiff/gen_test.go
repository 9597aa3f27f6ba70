package libdiff

import (
	"math/rand/v2"

	"github.com/signadot/diffx/sequence"
	"github.com/signadot/diffx/token"
)

var (
	genNames = []string{"a", "b", "c"}
	genAttrs = []string{"x", "y"}
	genTexts = []string{"p", "q", "r", "s"}
)

// genSequence returns a random well-formed document with a small
// vocabulary, so that random pairs share many tokens.
func genSequence(r *rand.Rand, size int) *sequence.Sequence {
	var toks []*token.Token
	root := token.StartElement("", "root")
	toks = append(toks, root)
	toks = genContent(r, toks, size, 0)
	toks = append(toks, token.EndElement(root))
	return sequence.FromTokens(toks...)
}

func genContent(r *rand.Rand, toks []*token.Token, size, depth int) []*token.Token {
	for range size {
		switch r.IntN(4) {
		case 0:
			if depth > 3 {
				continue
			}
			start := token.StartElement("", genNames[r.IntN(len(genNames))])
			toks = append(toks, start)
			for _, a := range genAttrs {
				if r.IntN(2) == 0 {
					toks = append(toks, token.Attribute("", a, genTexts[r.IntN(2)]))
				}
			}
			toks = genContent(r, toks, r.IntN(size/2+1), depth+1)
			toks = append(toks, token.EndElement(start))
		case 1:
			toks = append(toks, token.Space(" "))
		default:
			toks = append(toks, token.Text(genTexts[r.IntN(len(genTexts))]))
		}
	}
	return toks
}

// genText returns a root holding size text tokens, where every alignment
// keeps the script well formed.
func genText(r *rand.Rand, size int) *sequence.Sequence {
	root := token.StartElement("", "root")
	toks := []*token.Token{root}
	for range size {
		toks = append(toks, token.Text(genTexts[r.IntN(len(genTexts))]))
	}
	return sequence.FromTokens(append(toks, token.EndElement(root))...)
}

// mutate derives a variant of s by dropping and inserting a few tokens
// while keeping it well-formed.
func mutate(r *rand.Rand, s *sequence.Sequence) *sequence.Sequence {
	var toks []*token.Token
	for _, t := range s.Tokens() {
		if t.Kind().IsText() && r.IntN(5) == 0 {
			continue
		}
		toks = append(toks, t)
		if t.Kind() == token.KindEndElement && r.IntN(4) == 0 {
			toks = append(toks, token.Text(genTexts[r.IntN(len(genTexts))]))
		}
	}
	return sequence.FromTokens(toks...)
}
