package parse

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"golang.org/x/net/html"

	"github.com/signadot/diffx/sequence"
	"github.com/signadot/diffx/token"
)

var voidElements = map[string]bool{
	"area": true, "base": true, "br": true, "col": true, "embed": true,
	"hr": true, "img": true, "input": true, "link": true, "meta": true,
	"param": true, "source": true, "track": true, "wbr": true,
}

// HTMLRoot names the root element of every document loaded by HTML.
const HTMLRoot = "html"

// HTML loads an HTML document. Void elements are closed immediately, an
// end tag closes every element opened after its match and stray end tags
// are dropped. Elements still open at the end are closed.
//
// The document always has a single html root: content found before an html
// start tag is wrapped in one, and the end tag of the root is ignored so
// that trailing content stays inside.
func HTML(r io.Reader, opts ...ParseOption) (*sequence.Sequence, error) {
	l := newLoader(opts)
	z := html.NewTokenizer(r)
	for {
		tt := z.Next()
		switch tt {
		case html.ErrorToken:
			if err := z.Err(); !errors.Is(err, io.EOF) {
				return nil, fmt.Errorf("%w: html: %w", ErrParse, err)
			}
			for len(l.stack) > 0 {
				l.end()
			}
			return l.done("html"), nil
		case html.TextToken:
			text := string(z.Text())
			if len(l.stack) == 0 {
				if strings.TrimSpace(text) == "" {
					continue
				}
				l.start("", HTMLRoot, nil)
			}
			l.chars(text)
		case html.StartTagToken, html.SelfClosingTagToken:
			name, more := z.TagName()
			tag := string(name)
			if len(l.stack) == 0 && tag != HTMLRoot {
				l.start("", HTMLRoot, nil)
			}
			var attrs []*token.Token
			seen := map[string]bool{}
			for more {
				var k, v []byte
				k, v, more = z.TagAttr()
				if seen[string(k)] {
					continue
				}
				seen[string(k)] = true
				attrs = append(attrs, l.f.Attribute("", string(k), string(v)))
			}
			l.start("", tag, attrs)
			if (tt == html.SelfClosingTagToken || voidElements[tag]) && len(l.stack) > 1 {
				l.end()
			}
		case html.EndTagToken:
			name, _ := z.TagName()
			l.closeHTML(string(name))
		case html.CommentToken:
			l.other(l.f.Comment(string(z.Text())))
		}
	}
}

// closeHTML closes name and the elements opened after it. The root stays
// open.
func (l *loader) closeHTML(name string) {
	for i := len(l.stack) - 1; i > 0; i-- {
		if l.stack[i].Name() != name {
			continue
		}
		for len(l.stack) > i {
			l.end()
		}
		return
	}
}
