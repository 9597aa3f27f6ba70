package encode

import (
	"fmt"
	"io"
	"strings"

	"github.com/signadot/diffx/debug"
	"github.com/signadot/diffx/edit"
	"github.com/signadot/diffx/sequence"
	"github.com/signadot/diffx/token"
)

const (
	DiffNamespace   = "https://www.pageseeder.org/diffx"
	InsertNamespace = "https://www.pageseeder.org/diffx/insert"
	DeleteNamespace = "https://www.pageseeder.org/diffx/delete"
)

// Reconciler writes an edit script as a single annotated XML document
// holding both versions.
//
// Matched tokens are copied. Inserted or deleted elements carry
// dfx:insert="true" or dfx:delete="true"; inserted or deleted text is
// wrapped in dfx:ins or dfx:del. An inserted attribute is written with an
// ins: marker of the same name and a deleted attribute becomes a del:
// attribute holding the old value. Deleted comments and processing
// instructions are dropped.
//
// When the versions do not share their root element, both roots are
// written inside a dfx:diff element so that the output keeps a single root.
//
// The script must be balanced: an end element closes the element opened
// last and attributes directly follow their start element. Other scripts
// fail with an error wrapping [ErrStructure], as do scripts placing text or
// a second root element beside a matched root.
type Reconciler struct {
	xw   *XMLWriter
	opts *encOpts
	ns   *sequence.PrefixMapping

	depth      int
	wrap       edit.Operator
	pendingIns []*token.Token
	pendingDel []*token.Token
	begun      bool
	// rooted is set once the dfx:diff root is open.
	rooted     bool
	closedRoot bool
}

func NewReconciler(w io.Writer, opts ...EncodeOption) *Reconciler {
	o := newEncOpts(opts)
	ns := sequence.NewPrefixMapping()
	ns.Add(DiffNamespace, "dfx")
	ns.Add(InsertNamespace, "ins")
	ns.Add(DeleteNamespace, "del")
	ns.Merge(o.namespaces)
	return &Reconciler{
		xw:   NewXMLWriter(w),
		opts: o,
		ns:   ns,
		wrap: edit.Match,
	}
}

func (r *Reconciler) Handle(op edit.Operator, t *token.Token) error {
	if debug.Reconcile() {
		r.opts.logger.Info("reconcile", "op", op, "token", t.String(), "depth", r.depth, "wrap", r.wrap)
	}
	if !r.begun {
		r.begun = true
		if r.opts.xmlDecl {
			if err := r.xw.Declaration(); err != nil {
				return err
			}
		}
	}
	if t.Kind() != token.KindAttribute {
		if err := r.flushAttributes(); err != nil {
			return err
		}
	}
	if r.depth == 0 && !r.rooted {
		done, err := r.topLevel(op, t)
		if done || err != nil {
			return err
		}
	}
	if op == edit.Match {
		return r.match(t)
	}
	return r.edit(op, t)
}

func (r *Reconciler) match(t *token.Token) error {
	if t.Kind() == token.KindAttribute {
		if !r.xw.TagOpen() || r.depth == 0 {
			return fmt.Errorf("%w: attribute %s after content", ErrStructure, t)
		}
		return r.xw.Attribute(t.Namespace(), t.Name(), t.Value())
	}
	if err := r.closeWrap(); err != nil {
		return err
	}
	switch t.Kind() {
	case token.KindStartElement:
		return r.open(t.Namespace(), t.Name())
	case token.KindEndElement:
		return r.close(t)
	}
	return t.WriteTo(r.xw)
}

func (r *Reconciler) edit(op edit.Operator, t *token.Token) error {
	switch t.Kind() {
	case token.KindStartElement:
		if err := r.closeWrap(); err != nil {
			return err
		}
		if err := r.open(t.Namespace(), t.Name()); err != nil {
			return err
		}
		marker := "insert"
		if op == edit.Del {
			marker = "delete"
		}
		return r.xw.Attribute(DiffNamespace, marker, "true")
	case token.KindEndElement:
		if err := r.closeWrap(); err != nil {
			return err
		}
		return r.close(t)
	case token.KindAttribute:
		if !r.xw.TagOpen() || r.depth == 0 {
			return fmt.Errorf("%w: attribute %s after content", ErrStructure, t)
		}
		if op == edit.Ins {
			r.pendingIns = append(r.pendingIns, t)
		} else {
			r.pendingDel = append(r.pendingDel, t)
		}
		return nil
	case token.KindText, token.KindSpace, token.KindIgnorableSpace:
		if err := r.openWrap(op); err != nil {
			return err
		}
		return r.xw.Text(t.Value())
	case token.KindComment, token.KindProcInst:
		if err := r.closeWrap(); err != nil {
			return err
		}
		if op == edit.Del {
			return nil
		}
		return t.WriteTo(r.xw)
	}
	return nil
}

// topLevel handles t outside any element. It reports whether t was fully
// handled.
func (r *Reconciler) topLevel(op edit.Operator, t *token.Token) (bool, error) {
	switch t.Kind() {
	case token.KindSpace, token.KindIgnorableSpace:
		if op == edit.Del {
			return true, nil
		}
		return true, r.xw.Text(t.Value())
	case token.KindText, token.KindStartElement:
		if r.closedRoot {
			return false, fmt.Errorf("%w: %s after the root element", ErrStructure, t)
		}
		if op == edit.Match {
			if t.Kind() == token.KindText {
				return false, fmt.Errorf("%w: text %s outside the root element", ErrStructure, t)
			}
			return false, nil
		}
		return false, r.openRoot()
	}
	return false, nil
}

// openRoot opens the dfx:diff element holding both versions.
func (r *Reconciler) openRoot() error {
	for _, n := range r.ns.Namespaces() {
		r.xw.DeclareNamespace(n.URI, n.Prefix)
	}
	if err := r.xw.OpenElement(DiffNamespace, "diff"); err != nil {
		return err
	}
	r.rooted = true
	return nil
}

// open writes a start element, declaring all namespaces on root elements.
func (r *Reconciler) open(ns, name string) error {
	if r.xw.Depth() == 0 {
		for _, n := range r.ns.Namespaces() {
			r.xw.DeclareNamespace(n.URI, n.Prefix)
		}
	}
	if err := r.xw.OpenElement(ns, name); err != nil {
		return err
	}
	r.depth++
	return nil
}

func (r *Reconciler) close(t *token.Token) error {
	if r.depth == 0 {
		return fmt.Errorf("%w: %s without open element", ErrStructure, t)
	}
	r.depth--
	if r.depth == 0 && !r.rooted {
		r.closedRoot = true
	}
	return r.xw.CloseElement()
}

func (r *Reconciler) openWrap(op edit.Operator) error {
	if r.wrap == op {
		return nil
	}
	if err := r.closeWrap(); err != nil {
		return err
	}
	name := "ins"
	if op == edit.Del {
		name = "del"
	}
	if r.xw.Depth() == 0 {
		for _, n := range r.ns.Namespaces() {
			r.xw.DeclareNamespace(n.URI, n.Prefix)
		}
	}
	if err := r.xw.OpenElement(DiffNamespace, name); err != nil {
		return err
	}
	r.wrap = op
	return nil
}

func (r *Reconciler) closeWrap() error {
	if r.wrap == edit.Match {
		return nil
	}
	r.wrap = edit.Match
	return r.xw.CloseElement()
}

func (r *Reconciler) flushAttributes() error {
	if len(r.pendingIns) == 0 && len(r.pendingDel) == 0 {
		return nil
	}
	ins, del := r.pendingIns, r.pendingDel
	r.pendingIns, r.pendingDel = r.pendingIns[:0], r.pendingDel[:0]
	var children []edit.Entry
	for _, a := range ins {
		if !r.inline(a) {
			children = append(children, edit.Entry{Op: edit.Ins, Token: a})
			continue
		}
		if err := r.xw.Attribute("", a.Name(), a.Value()); err != nil {
			return err
		}
		if err := r.xw.Attribute(InsertNamespace, a.Name(), "true"); err != nil {
			return err
		}
	}
	for _, a := range del {
		if !r.inline(a) {
			children = append(children, edit.Entry{Op: edit.Del, Token: a})
			continue
		}
		if err := r.xw.Attribute(DeleteNamespace, a.Name(), a.Value()); err != nil {
			return err
		}
	}
	for _, c := range children {
		name := "ins"
		if c.Op == edit.Del {
			name = "del"
		}
		if err := r.xw.OpenElement(DiffNamespace, name); err != nil {
			return err
		}
		if err := r.xw.Attribute(c.Token.Namespace(), c.Token.Name(), c.Token.Value()); err != nil {
			return err
		}
		if err := r.xw.CloseElement(); err != nil {
			return err
		}
	}
	return nil
}

// inline reports whether a can carry an ins: or del: marker.
func (r *Reconciler) inline(a *token.Token) bool {
	return r.opts.attrMode == AttributeInline && a.Namespace() == "" && !strings.Contains(a.Name(), ":")
}

// Close completes the document and flushes the output. It fails with
// [ErrUnclosed] when elements remain open.
func (r *Reconciler) Close() error {
	if err := r.closeWrap(); err != nil {
		return err
	}
	if err := r.flushAttributes(); err != nil {
		return err
	}
	if r.depth != 0 {
		return fmt.Errorf("%w: %d", ErrUnclosed, r.depth)
	}
	if r.rooted {
		r.rooted = false
		if err := r.xw.CloseElement(); err != nil {
			return err
		}
	}
	return r.xw.Flush()
}
