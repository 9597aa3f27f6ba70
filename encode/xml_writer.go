package encode

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"
)

// XMLNamespace is bound to the xml prefix without declaration.
const XMLNamespace = "http://www.w3.org/XML/1998/namespace"

var (
	textEscaper = strings.NewReplacer("&", "&amp;", "<", "&lt;", ">", "&gt;", "\r", "&#xD;")
	attrEscaper = strings.NewReplacer("&", "&amp;", "<", "&lt;", ">", "&gt;", `"`, "&quot;",
		"\n", "&#xA;", "\r", "&#xD;", "\t", "&#x9;")
)

type xmlElement struct {
	qname string
	// prefix -> uri declared on this element
	decls map[string]string
	order []string
}

func (e *xmlElement) declare(prefix, uri string) {
	if _, ok := e.decls[prefix]; !ok {
		e.order = append(e.order, prefix)
	}
	e.decls[prefix] = uri
}

// XMLWriter serializes markup events as namespace aware XML. Start tags are
// left open until content follows, so that attributes can be added.
type XMLWriter struct {
	w       *bufio.Writer
	stack   []*xmlElement
	tagOpen bool
	pending []nsDecl
	auto    int
	written bool
}

type nsDecl struct {
	prefix, uri string
}

func NewXMLWriter(w io.Writer) *XMLWriter {
	return &XMLWriter{w: bufio.NewWriter(w)}
}

// Declaration writes the XML declaration. It must come first.
func (x *XMLWriter) Declaration() error {
	if x.written {
		return fmt.Errorf("%w: declaration after content", ErrStructure)
	}
	return x.write(`<?xml version="1.0" encoding="UTF-8"?>` + "\n")
}

// DeclareNamespace binds prefix to uri on the next element opened. An empty
// prefix declares the default namespace.
func (x *XMLWriter) DeclareNamespace(uri, prefix string) {
	if uri == XMLNamespace {
		return
	}
	x.pending = append(x.pending, nsDecl{prefix: prefix, uri: uri})
}

// Depth is the number of open elements.
func (x *XMLWriter) Depth() int { return len(x.stack) }

// TagOpen reports whether attributes can still be added to the innermost
// element.
func (x *XMLWriter) TagOpen() bool { return x.tagOpen }

func (x *XMLWriter) write(s string) error {
	x.written = true
	_, err := x.w.WriteString(s)
	return err
}

func (x *XMLWriter) closeTag() error {
	if !x.tagOpen {
		return nil
	}
	x.tagOpen = false
	return x.write(">")
}

// lookup finds the prefix bound to uri in scope. attr excludes the default
// namespace, which does not apply to attributes.
func (x *XMLWriter) lookup(uri string, attr bool) (string, bool) {
	if uri == XMLNamespace {
		return "xml", true
	}
	for i := len(x.stack) - 1; i >= 0; i-- {
		e := x.stack[i]
		for _, p := range e.order {
			if e.decls[p] == uri && (p != "" || !attr) && x.bound(p) == uri {
				return p, true
			}
		}
	}
	return "", false
}

// bound returns the uri in scope for prefix.
func (x *XMLWriter) bound(prefix string) string {
	for i := len(x.stack) - 1; i >= 0; i-- {
		if u, ok := x.stack[i].decls[prefix]; ok {
			return u
		}
	}
	return ""
}

func (x *XMLWriter) OpenElement(ns, name string) error {
	if err := x.closeTag(); err != nil {
		return err
	}
	e := &xmlElement{decls: map[string]string{}}
	x.stack = append(x.stack, e)
	for _, d := range x.pending {
		if x.bound(d.prefix) != d.uri {
			e.declare(d.prefix, d.uri)
		}
	}
	x.pending = x.pending[:0]
	prefix, ok := x.lookup(ns, false)
	switch {
	case ns == "" && x.bound("") != "":
		e.declare("", "")
	case !ok && ns != "":
		prefix = ""
		e.declare("", ns)
	}
	e.qname = qualify(prefix, name)
	if err := x.write("<" + e.qname); err != nil {
		return err
	}
	x.tagOpen = true
	return x.writeDecls(e)
}

func (x *XMLWriter) writeDecls(e *xmlElement) error {
	for _, p := range e.order {
		attr := "xmlns"
		if p != "" {
			attr += ":" + p
		}
		if err := x.write(" " + attr + `="` + attrEscaper.Replace(e.decls[p]) + `"`); err != nil {
			return err
		}
	}
	return nil
}

func (x *XMLWriter) Attribute(ns, name, value string) error {
	if len(x.stack) == 0 {
		return ErrNoOpenElement
	}
	if !x.tagOpen {
		return fmt.Errorf("%w: attribute %s", ErrTagClosed, name)
	}
	prefix := ""
	if ns != "" {
		p, ok := x.lookup(ns, true)
		if !ok {
			p = x.autoPrefix()
			x.stack[len(x.stack)-1].declare(p, ns)
			if err := x.write(" xmlns:" + p + `="` + attrEscaper.Replace(ns) + `"`); err != nil {
				return err
			}
		}
		prefix = p
	}
	return x.write(" " + qualify(prefix, name) + `="` + attrEscaper.Replace(value) + `"`)
}

func (x *XMLWriter) autoPrefix() string {
	for {
		p := "ns" + strconv.Itoa(x.auto)
		x.auto++
		if x.bound(p) == "" {
			return p
		}
	}
}

func (x *XMLWriter) CloseElement() error {
	if len(x.stack) == 0 {
		return ErrNoOpenElement
	}
	e := x.stack[len(x.stack)-1]
	x.stack = x.stack[:len(x.stack)-1]
	if x.tagOpen {
		x.tagOpen = false
		return x.write("/>")
	}
	return x.write("</" + e.qname + ">")
}

func (x *XMLWriter) Text(s string) error {
	if err := x.closeTag(); err != nil {
		return err
	}
	return x.write(textEscaper.Replace(s))
}

func (x *XMLWriter) Comment(s string) error {
	if err := x.closeTag(); err != nil {
		return err
	}
	s = strings.ReplaceAll(s, "--", "- -")
	if strings.HasSuffix(s, "-") {
		s += " "
	}
	return x.write("<!--" + s + "-->")
}

func (x *XMLWriter) ProcInst(target, data string) error {
	if err := x.closeTag(); err != nil {
		return err
	}
	s := "<?" + target
	if data != "" {
		s += " " + strings.ReplaceAll(data, "?>", "? >")
	}
	return x.write(s + "?>")
}

func (x *XMLWriter) Flush() error {
	return x.w.Flush()
}

func qualify(prefix, name string) string {
	if prefix == "" {
		return name
	}
	return prefix + ":" + name
}
