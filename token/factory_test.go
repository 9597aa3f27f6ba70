package token

import (
	"bytes"
	"strings"
	"testing"
)

func TestFactoryInterns(t *testing.T) {
	f := NewFactory()
	a1 := f.StartElement("", "a")
	a2 := f.StartElement("", "a")
	if a1 != a2 {
		t.Error("start elements not interned")
	}
	if f.EndElement(a1) != f.EndElement(a2) {
		t.Error("end elements not interned")
	}
	if f.Text("w") != f.Text("w") || f.Space(" ") != f.Space(" ") || f.IgnorableSpace(" ") != f.IgnorableSpace(" ") {
		t.Error("text not interned")
	}
	if f.Attribute("", "x", "1") != f.Attribute("", "x", "1") {
		t.Error("attributes not interned")
	}
	if f.Text(" ") == f.Space(" ") {
		t.Error("text and space must stay distinct")
	}
	if f.Len() != 6 {
		t.Errorf("expected 6 interned values, got %d", f.Len())
	}
}

func TestFactoryAgreesWithConstructors(t *testing.T) {
	f := NewFactory()
	pairs := [][2]*Token{
		{f.StartElement("urn:x", "a"), StartElement("urn:x", "a")},
		{f.Attribute("", "x", "1"), Attribute("", "x", "1")},
		{f.Text("w"), Text("w")},
		{f.Space(" "), Space(" ")},
		{f.IgnorableSpace(" "), IgnorableSpace("\t")},
		{f.Comment("c"), Comment("c")},
		{f.ProcInst("t", "d"), ProcInst("t", "d")},
	}
	for _, p := range pairs {
		if !p[0].Equal(p[1]) || p[0].Hash() != p[1].Hash() {
			t.Errorf("%s from factory differs from constructor", p[0])
		}
	}
}

func TestFprintTokens(t *testing.T) {
	var buf bytes.Buffer
	a := StartElement("", "a")
	FprintTokens(&buf, []*Token{a, EndElement(a)}, "trace")
	out := buf.String()
	if !strings.HasPrefix(out, "trace tokens:\n") || !strings.Contains(out, "EndElement </a>") {
		t.Errorf("unexpected output %q", out)
	}
}
