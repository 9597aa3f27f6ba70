package token

type key struct {
	kind            Kind
	ns, name, value string
}

// Factory interns tokens so that repeated element names, attributes and
// words share one value. A Factory is not safe for concurrent use; give
// each loader its own.
type Factory struct {
	tokens map[key]*Token
	ends   map[*Token]*Token
}

func NewFactory() *Factory {
	return &Factory{
		tokens: map[key]*Token{},
		ends:   map[*Token]*Token{},
	}
}

func (f *Factory) get(kind Kind, ns, name, value string) *Token {
	k := key{kind: kind, ns: ns, name: name, value: value}
	if t, ok := f.tokens[k]; ok {
		return t
	}
	t := newToken(kind, ns, name, value)
	f.tokens[k] = t
	return t
}

func (f *Factory) StartElement(ns, name string) *Token {
	return f.get(KindStartElement, ns, name, "")
}

// EndElement returns the end token for start. Since start elements are
// interned, every <a> of a document shares the same end token.
func (f *Factory) EndElement(start *Token) *Token {
	if t, ok := f.ends[start]; ok {
		return t
	}
	t := EndElement(start)
	f.ends[start] = t
	return t
}

func (f *Factory) Attribute(ns, name, value string) *Token {
	return f.get(KindAttribute, ns, name, value)
}

func (f *Factory) Text(s string) *Token {
	return f.get(KindText, "", "", s)
}

func (f *Factory) Space(s string) *Token {
	return f.get(KindSpace, "", "", s)
}

func (f *Factory) IgnorableSpace(s string) *Token {
	return f.get(KindIgnorableSpace, "", "", s)
}

// Comment and ProcInst are rarely repeated and are not interned.
func (f *Factory) Comment(s string) *Token {
	return Comment(s)
}

func (f *Factory) ProcInst(target, data string) *Token {
	return ProcInst(target, data)
}

// Len returns the number of distinct interned values.
func (f *Factory) Len() int {
	return len(f.tokens) + len(f.ends)
}
