package encode

import (
	"bytes"
	"encoding/xml"
	"errors"
	"io"
	"math/rand/v2"
	"strings"
	"testing"

	"github.com/signadot/diffx/edit"
	"github.com/signadot/diffx/sequence"
	"github.com/signadot/diffx/token"
)

const decls = ` xmlns:dfx="https://www.pageseeder.org/diffx"` +
	` xmlns:ins="https://www.pageseeder.org/diffx/insert"` +
	` xmlns:del="https://www.pageseeder.org/diffx/delete"`

func reconcile(entries []edit.Entry, opts ...EncodeOption) (string, error) {
	var buf bytes.Buffer
	r := NewReconciler(&buf, opts...)
	if err := edit.Replay(entries, r); err != nil {
		return "", err
	}
	if err := r.Close(); err != nil {
		return "", err
	}
	return buf.String(), nil
}

func TestReconciler(t *testing.T) {
	a := token.StartElement("", "a")
	b := token.StartElement("", "b")
	tests := []struct {
		name    string
		entries []edit.Entry
		opts    []EncodeOption
		want    string
	}{
		{
			name: "changed text",
			entries: []edit.Entry{
				{Op: edit.Match, Token: a},
				{Op: edit.Del, Token: token.Text("X")},
				{Op: edit.Ins, Token: token.Text("Y")},
				{Op: edit.Match, Token: token.EndElement(a)},
			},
			want: `<a` + decls + `><dfx:del>X</dfx:del><dfx:ins>Y</dfx:ins></a>`,
		},
		{
			name: "deleted element",
			entries: []edit.Entry{
				{Op: edit.Match, Token: a},
				{Op: edit.Del, Token: b},
				{Op: edit.Del, Token: token.EndElement(b)},
				{Op: edit.Match, Token: token.EndElement(a)},
			},
			want: `<a` + decls + `><b dfx:delete="true"/></a>`,
		},
		{
			name: "inserted element with text",
			entries: []edit.Entry{
				{Op: edit.Match, Token: a},
				{Op: edit.Ins, Token: b},
				{Op: edit.Ins, Token: token.Text("new")},
				{Op: edit.Ins, Token: token.EndElement(b)},
				{Op: edit.Match, Token: token.Text(" ")},
				{Op: edit.Match, Token: token.EndElement(a)},
			},
			want: `<a` + decls + `><b dfx:insert="true"><dfx:ins>new</dfx:ins></b> </a>`,
		},
		{
			name: "changed attribute",
			entries: []edit.Entry{
				{Op: edit.Match, Token: a},
				{Op: edit.Match, Token: token.Attribute("", "k", "same")},
				{Op: edit.Del, Token: token.Attribute("", "x", "1")},
				{Op: edit.Ins, Token: token.Attribute("", "x", "2")},
				{Op: edit.Match, Token: token.Text("t")},
				{Op: edit.Match, Token: token.EndElement(a)},
			},
			want: `<a` + decls + ` k="same" x="2" ins:x="true" del:x="1">t</a>`,
		},
		{
			name: "attribute elements",
			entries: []edit.Entry{
				{Op: edit.Match, Token: a},
				{Op: edit.Del, Token: token.Attribute("", "x", "1")},
				{Op: edit.Ins, Token: token.Attribute("", "x", "2")},
				{Op: edit.Match, Token: token.EndElement(a)},
			},
			opts: []EncodeOption{EncodeAttributeMode(AttributeElements)},
			want: `<a` + decls + `><dfx:ins x="2"/><dfx:del x="1"/></a>`,
		},
		{
			name: "namespaced attribute",
			entries: []edit.Entry{
				{Op: edit.Match, Token: a},
				{Op: edit.Ins, Token: token.Attribute("urn:n", "x", "2")},
				{Op: edit.Match, Token: token.EndElement(a)},
			},
			opts: func() []EncodeOption {
				ns := sequence.NewPrefixMapping()
				ns.Add("urn:n", "n")
				return []EncodeOption{EncodeNamespaces(ns)}
			}(),
			want: `<a` + decls + ` xmlns:n="urn:n"><dfx:ins n:x="2"/></a>`,
		},
		{
			name: "comments",
			entries: []edit.Entry{
				{Op: edit.Match, Token: a},
				{Op: edit.Del, Token: token.Comment("old")},
				{Op: edit.Ins, Token: token.Comment("new")},
				{Op: edit.Ins, Token: token.ProcInst("pi", "x")},
				{Op: edit.Match, Token: token.EndElement(a)},
			},
			want: `<a` + decls + `><!--new--><?pi x?></a>`,
		},
		{
			name: "declaration",
			entries: []edit.Entry{
				{Op: edit.Ins, Token: a},
				{Op: edit.Ins, Token: token.EndElement(a)},
			},
			opts: []EncodeOption{EncodeXMLDecl(true)},
			want: `<?xml version="1.0" encoding="UTF-8"?>` + "\n" + `<dfx:diff` + decls + `><a dfx:insert="true"/></dfx:diff>`,
		},
		{
			name: "replaced root",
			entries: []edit.Entry{
				{Op: edit.Del, Token: a},
				{Op: edit.Del, Token: token.Text("x")},
				{Op: edit.Del, Token: token.EndElement(a)},
				{Op: edit.Match, Token: token.Space("\n")},
				{Op: edit.Ins, Token: b},
				{Op: edit.Ins, Token: token.EndElement(b)},
			},
			want: `<dfx:diff` + decls + `><a dfx:delete="true"><dfx:del>x</dfx:del></a>` + "\n" + `<b dfx:insert="true"/></dfx:diff>`,
		},
		{
			name: "space around the root",
			entries: []edit.Entry{
				{Op: edit.Match, Token: token.Comment("c")},
				{Op: edit.Del, Token: token.Space("\n")},
				{Op: edit.Match, Token: a},
				{Op: edit.Match, Token: token.EndElement(a)},
				{Op: edit.Ins, Token: token.Space("\n")},
			},
			want: `<!--c--><a` + decls + `/>` + "\n",
		},
	}
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			got, err := reconcile(test.entries, test.opts...)
			if err != nil {
				t.Fatal(err)
			}
			if got != test.want {
				t.Errorf("got  %s\nwant %s", got, test.want)
			}
			checkWellFormed(t, got)
		})
	}
}

func TestReconcilerErrors(t *testing.T) {
	a := token.StartElement("", "a")
	tests := []struct {
		name    string
		entries []edit.Entry
		want    error
	}{
		{
			name:    "end at depth 0",
			entries: []edit.Entry{{Op: edit.Match, Token: token.EndElement(a)}},
			want:    ErrStructure,
		},
		{
			name:    "inserted end at depth 0",
			entries: []edit.Entry{{Op: edit.Ins, Token: token.EndElement(a)}},
			want:    ErrStructure,
		},
		{
			name: "attribute after content",
			entries: []edit.Entry{
				{Op: edit.Match, Token: a},
				{Op: edit.Match, Token: token.Text("t")},
				{Op: edit.Ins, Token: token.Attribute("", "x", "1")},
			},
			want: ErrStructure,
		},
		{
			name: "text beside the root",
			entries: []edit.Entry{
				{Op: edit.Match, Token: a},
				{Op: edit.Match, Token: token.EndElement(a)},
				{Op: edit.Ins, Token: token.Text("x")},
			},
			want: ErrStructure,
		},
		{
			name:    "matched text outside the root",
			entries: []edit.Entry{{Op: edit.Match, Token: token.Text("x")}},
			want:    ErrStructure,
		},
		{
			name: "second root",
			entries: []edit.Entry{
				{Op: edit.Match, Token: a},
				{Op: edit.Match, Token: token.EndElement(a)},
				{Op: edit.Ins, Token: a},
				{Op: edit.Ins, Token: token.EndElement(a)},
			},
			want: ErrStructure,
		},
		{
			name:    "unclosed",
			entries: []edit.Entry{{Op: edit.Match, Token: a}},
			want:    ErrUnclosed,
		},
	}
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			_, err := reconcile(test.entries)
			if !errors.Is(err, test.want) {
				t.Errorf("got %v, want %v", err, test.want)
			}
		})
	}
}

func TestReconcilerWellFormed(t *testing.T) {
	r := rand.New(rand.NewPCG(7, 11))
	for i := range 300 {
		root := token.StartElement("", "root")
		entries := []edit.Entry{{Op: edit.Match, Token: root}}
		entries = genEntries(r, entries, 3)
		entries = append(entries, edit.Entry{Op: edit.Match, Token: token.EndElement(root)})
		mode := AttributeInline
		if i%3 == 0 {
			mode = AttributeElements
		}
		out, err := reconcile(entries, EncodeAttributeMode(mode))
		if err != nil {
			t.Fatalf("%v\n%s", err, (&edit.Script{Entries: entries}).String())
		}
		checkWellFormed(t, out)
	}
}

var ops = []edit.Operator{edit.Match, edit.Ins, edit.Del}

// genEntries appends a random balanced script fragment.
func genEntries(r *rand.Rand, entries []edit.Entry, depth int) []edit.Entry {
	for range r.IntN(5) {
		op := ops[r.IntN(3)]
		switch r.IntN(5) {
		case 0, 1:
			if depth == 0 {
				continue
			}
			ns := ""
			if r.IntN(4) == 0 {
				ns = "urn:e"
			}
			start := token.StartElement(ns, []string{"a", "b", "c"}[r.IntN(3)])
			entries = append(entries, edit.Entry{Op: op, Token: start})
			for _, name := range []string{"x", "y"} {
				ns := ""
				if name == "y" && r.IntN(2) == 0 {
					ns = "urn:at"
				}
				switch r.IntN(5) {
				case 0:
					entries = append(entries, edit.Entry{Op: edit.Match, Token: token.Attribute(ns, name, "m&<")})
				case 1:
					entries = append(entries, edit.Entry{Op: edit.Ins, Token: token.Attribute(ns, name, `i"`)})
				case 2:
					entries = append(entries, edit.Entry{Op: edit.Del, Token: token.Attribute(ns, name, "d")})
				case 3:
					entries = append(entries,
						edit.Entry{Op: edit.Del, Token: token.Attribute(ns, name, "d")},
						edit.Entry{Op: edit.Ins, Token: token.Attribute(ns, name, "i")})
				}
			}
			entries = genEntries(r, entries, depth-1)
			entries = append(entries, edit.Entry{Op: op, Token: token.EndElement(start)})
		case 2:
			entries = append(entries, edit.Entry{Op: op, Token: token.Comment("c")})
		case 3:
			entries = append(entries, edit.Entry{Op: op, Token: token.Space("\n")})
		default:
			entries = append(entries, edit.Entry{Op: op, Token: token.Text("t<&>]]>")})
		}
	}
	return entries
}

// checkWellFormed parses doc and requires a single root element with
// nothing but white space, comments and processing instructions around it.
func checkWellFormed(t *testing.T, doc string) {
	t.Helper()
	d := xml.NewDecoder(strings.NewReader(doc))
	depth, roots := 0, 0
	for {
		tok, err := d.Token()
		if err == io.EOF {
			break
		}
		if err != nil {
			t.Fatalf("not well-formed: %v\n%s", err, doc)
		}
		switch tok := tok.(type) {
		case xml.StartElement:
			if depth == 0 {
				roots++
			}
			depth++
		case xml.EndElement:
			depth--
		case xml.CharData:
			if depth == 0 && len(bytes.TrimSpace(tok)) > 0 {
				t.Fatalf("text %q outside the root\n%s", tok, doc)
			}
		}
	}
	if roots != 1 {
		t.Fatalf("%d root elements\n%s", roots, doc)
	}
}
