package parse

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/signadot/diffx/sequence"
)

// LinesElement is the root element of documents loaded by Lines.
const LinesElement = "lines"

const maxLine = 16 << 20

// Lines loads plain text with one text token per line, wrapped in a
// LinesElement root. Line breaks are white space and follow the white
// space processing.
func Lines(r io.Reader, opts ...ParseOption) (*sequence.Sequence, error) {
	l := newLoader(opts)
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64<<10), maxLine)
	l.start("", LinesElement, nil)
	n := 0
	for sc.Scan() {
		if n > 0 {
			l.buf = l.tk.space(l.buf[:0], "\n")
			l.seq.AppendAll(l.buf...)
		}
		n++
		line := strings.TrimSuffix(sc.Text(), "\r")
		if line != "" {
			l.seq.Append(l.f.Text(line))
		}
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("%w: line %d: %w", ErrParse, n+1, err)
	}
	l.end()
	return l.done("lines"), nil
}
