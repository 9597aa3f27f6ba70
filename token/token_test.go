package token

import (
	"strings"
	"testing"
)

type eqTest struct {
	a, b  *Token
	equal bool
}

func eqTests() []eqTest {
	a := StartElement("", "a")
	nsA := StartElement("urn:x", "a")
	return []eqTest{
		{a, StartElement("", "a"), true},
		{a, StartElement("", "b"), false},
		{a, nsA, false},
		{nsA, StartElement("urn:x", "a"), true},
		{EndElement(a), EndElement(StartElement("", "a")), true},
		{EndElement(a), EndElement(nsA), false},
		{EndElement(a), a, false},
		{Attribute("", "x", "1"), Attribute("", "x", "1"), true},
		{Attribute("", "x", "1"), Attribute("", "x", "2"), false},
		{Attribute("", "x", "1"), Attribute("urn:x", "x", "1"), false},
		{Attribute("", "x", "1"), Attribute("", "y", "1"), false},
		{Text("hello"), Text("hello"), true},
		{Text("hello"), Text("hellO"), false},
		{Text(" "), Space(" "), false},
		{Space(" "), Space(" "), true},
		{Space(" "), Space("\n"), false},
		{IgnorableSpace(" "), IgnorableSpace("\n\t  "), true},
		{IgnorableSpace(" "), Space(" "), false},
		{Comment("c"), Comment("c"), true},
		{Comment("c"), Comment("d"), false},
		{ProcInst("t", "d"), ProcInst("t", "d"), true},
		{ProcInst("t", "d"), ProcInst("t", "e"), false},
		{ProcInst("t", "d"), ProcInst("u", "d"), false},
		{StartDocument(), StartDocument(), true},
		{EndDocument(), StartDocument(), false},
		{Nil(), Nil(), true},
		{Nil(), Text(""), false},
	}
}

func TestEqual(t *testing.T) {
	for i, tc := range eqTests() {
		if got := tc.a.Equal(tc.b); got != tc.equal {
			t.Errorf("%d: %s.Equal(%s) = %t, want %t", i, tc.a, tc.b, got, tc.equal)
		}
		if got := tc.b.Equal(tc.a); got != tc.equal {
			t.Errorf("%d: not symmetric: %s.Equal(%s) = %t", i, tc.b, tc.a, got)
		}
		if tc.equal && tc.a.Hash() != tc.b.Hash() {
			t.Errorf("%d: equal tokens %s and %s have different hashes", i, tc.a, tc.b)
		}
		if !tc.a.Equal(tc.a) {
			t.Errorf("%d: %s not reflexive", i, tc.a)
		}
	}
}

func TestEqualNil(t *testing.T) {
	var n *Token
	if n.Equal(Text("x")) || Text("x").Equal(nil) {
		t.Error("nil token must not equal a token")
	}
	if !n.Equal(nil) {
		t.Error("nil token must equal itself")
	}
}

func TestEndElementStart(t *testing.T) {
	s := StartElement("urn:x", "p")
	e := EndElement(s)
	if e.Start() != s {
		t.Fatal("end element lost its start")
	}
	if e.Name() != "p" || e.Namespace() != "urn:x" {
		t.Errorf("end element copied %q %q", e.Namespace(), e.Name())
	}
	if s.Start() != nil {
		t.Error("start element has a start")
	}
}

func TestString(t *testing.T) {
	a := StartElement("", "a")
	toks := []*Token{a, Attribute("", "x", "1"), Text("hi"), Space(" "), IgnorableSpace("\n"),
		Comment("c"), ProcInst("pi", "d"), ProcInst("pi", ""), EndElement(a), StartDocument(), EndDocument(), Nil()}
	var parts []string
	for _, tok := range toks {
		parts = append(parts, tok.String())
	}
	got := strings.Join(parts, " ")
	want := `<a> @x="1" "hi" _s_ _i_ <!--c--> <?pi d?> <?pi?> </a> #start #end #nil`
	if got != want {
		t.Errorf("got %s\nwant %s", got, want)
	}
}

func TestKindText(t *testing.T) {
	for _, k := range Kinds() {
		d, err := k.MarshalText()
		if err != nil {
			t.Fatal(err)
		}
		var back Kind
		if err := back.UnmarshalText(d); err != nil {
			t.Fatal(err)
		}
		if back != k {
			t.Errorf("%s round tripped to %s", k, back)
		}
	}
	var k Kind
	if err := k.UnmarshalText([]byte("Bogus")); err == nil {
		t.Error("expected error for unknown kind")
	}
	if Kind(99).String() != "Unknown" {
		t.Error("expected Unknown")
	}
}

type recWriter struct {
	b strings.Builder
}

func (r *recWriter) OpenElement(ns, name string) error {
	r.b.WriteString("open:" + ns + ":" + name + ";")
	return nil
}
func (r *recWriter) CloseElement() error { r.b.WriteString("close;"); return nil }
func (r *recWriter) Attribute(ns, name, value string) error {
	r.b.WriteString("attr:" + name + "=" + value + ";")
	return nil
}
func (r *recWriter) Text(s string) error    { r.b.WriteString("text:" + s + ";"); return nil }
func (r *recWriter) Comment(s string) error { r.b.WriteString("comment:" + s + ";"); return nil }
func (r *recWriter) ProcInst(target, data string) error {
	r.b.WriteString("pi:" + target + " " + data + ";")
	return nil
}

func TestWriteTo(t *testing.T) {
	a := StartElement("urn:a", "a")
	toks := []*Token{StartDocument(), a, Attribute("", "x", "1"), Text("t"), IgnorableSpace(" "),
		Comment("c"), ProcInst("p", "d"), EndElement(a), EndDocument(), Nil()}
	w := &recWriter{}
	for _, tok := range toks {
		if err := tok.WriteTo(w); err != nil {
			t.Fatal(err)
		}
	}
	want := "open:urn:a:a;attr:x=1;text:t;text: ;comment:c;pi:p d;close;"
	if got := w.b.String(); got != want {
		t.Errorf("got %s\nwant %s", got, want)
	}
}
