package parse

import (
	"os"
	"strings"

	"github.com/signadot/diffx/debug"
	"github.com/signadot/diffx/sequence"
	"github.com/signadot/diffx/token"
)

// loader accumulates the tokens of one document.
type loader struct {
	opts  *parseOpts
	f     *token.Factory
	tk    *Tokenizer
	seq   *sequence.Sequence
	stack []*token.Token
	text  strings.Builder
	buf   []*token.Token
}

func newLoader(opts []ParseOption) *loader {
	o := newParseOpts(opts)
	return &loader{
		opts: o,
		f:    o.factory,
		tk:   NewTokenizer(o.factory, o.granularity, o.whitespace),
		seq:  sequence.New(),
	}
}

// chars buffers character data. Outside the root element it is dropped.
func (l *loader) chars(s string) {
	if len(l.stack) == 0 {
		return
	}
	l.text.WriteString(s)
}

func (l *loader) flushText() {
	if l.text.Len() == 0 {
		return
	}
	l.buf = l.tk.Tokenize(l.buf[:0], l.text.String())
	l.text.Reset()
	l.seq.AppendAll(l.buf...)
}

// start appends an element with its attributes, which are put in
// canonical order.
func (l *loader) start(ns, name string, attrs []*token.Token) *token.Token {
	l.flushText()
	t := l.f.StartElement(ns, name)
	l.stack = append(l.stack, t)
	l.buf = append(l.buf[:0], t)
	l.buf = append(l.buf, attrs...)
	l.seq.AppendAll(l.buf...)
	return t
}

func (l *loader) end() {
	l.flushText()
	n := len(l.stack) - 1
	l.seq.Append(l.f.EndElement(l.stack[n]))
	l.stack = l.stack[:n]
}

func (l *loader) top() *token.Token {
	if len(l.stack) == 0 {
		return nil
	}
	return l.stack[len(l.stack)-1]
}

func (l *loader) other(t *token.Token) {
	l.flushText()
	l.seq.Append(t)
}

func (l *loader) done(name string) *sequence.Sequence {
	l.flushText()
	if debug.Load() {
		token.FprintTokens(os.Stderr, l.seq.Tokens(), name)
	}
	return l.seq
}
