package parse

import (
	"encoding/xml"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/signadot/diffx/sequence"
	"github.com/signadot/diffx/token"
)

const xmlnsPrefix = "xmlns"

// XML loads an XML document.
func XML(r io.Reader, opts ...ParseOption) (*sequence.Sequence, error) {
	l := newLoader(opts)
	d := xml.NewDecoder(r)
	next := d.Token
	if !l.opts.namespaces {
		next = d.RawToken
	}
	for {
		tok, err := next()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, posError(d, err)
		}
		switch t := tok.(type) {
		case xml.StartElement:
			ns, name := l.elementName(t.Name)
			l.start(ns, name, l.attributes(t.Attr))
		case xml.EndElement:
			if !l.opts.namespaces {
				// RawToken does not check nesting
				open := l.top()
				if open == nil || open.Name() != rawName(t.Name) {
					return nil, posError(d, fmt.Errorf("unexpected end element </%s>", rawName(t.Name)))
				}
			}
			l.end()
		case xml.CharData:
			l.chars(string(t))
		case xml.Comment:
			l.other(l.f.Comment(string(t)))
		case xml.ProcInst:
			if t.Target == "xml" {
				continue
			}
			l.other(l.f.ProcInst(t.Target, string(t.Inst)))
		}
	}
	if len(l.stack) != 0 {
		return nil, posError(d, fmt.Errorf("unclosed element <%s>", l.top().Name()))
	}
	return l.done("xml"), nil
}

// XMLString loads an XML document held in s.
func XMLString(s string, opts ...ParseOption) (*sequence.Sequence, error) {
	return XML(strings.NewReader(s), opts...)
}

func posError(d *xml.Decoder, err error) error {
	line, col := d.InputPos()
	return fmt.Errorf("%w: %d:%d: %w", ErrParse, line, col, err)
}

// elementName returns the namespace and name of an element. Its shape
// depends on namespace processing.
func (l *loader) elementName(n xml.Name) (string, string) {
	if l.opts.namespaces {
		return n.Space, n.Local
	}
	return "", rawName(n)
}

func rawName(n xml.Name) string {
	if n.Space == "" {
		return n.Local
	}
	return n.Space + ":" + n.Local
}

func (l *loader) attributes(attrs []xml.Attr) []*token.Token {
	res := make([]*token.Token, 0, len(attrs))
	for _, a := range attrs {
		if !l.opts.namespaces {
			res = append(res, l.f.Attribute("", rawName(a.Name), a.Value))
			continue
		}
		switch {
		case a.Name.Space == xmlnsPrefix:
			l.seq.AddNamespace(a.Value, a.Name.Local)
		case a.Name.Space == "" && a.Name.Local == xmlnsPrefix:
			if a.Value != "" {
				l.seq.AddNamespace(a.Value, "")
			}
		default:
			res = append(res, l.f.Attribute(a.Name.Space, a.Name.Local, a.Value))
		}
	}
	return res
}
