package token

import (
	"hash/fnv"
	"strconv"
	"strings"
)

// Token is an immutable markup event.
//
// The zero value is not useful; use the constructors or a [Factory].
type Token struct {
	kind  Kind
	ns    string
	name  string
	value string
	hash  uint64
	start *Token
}

func newToken(kind Kind, ns, name, value string) *Token {
	t := &Token{kind: kind, ns: ns, name: name, value: value}
	t.hash = hashOf(kind, ns, name, value)
	return t
}

// hashOf must agree with Equal: fields ignored by Equal for a kind are
// ignored here as well.
func hashOf(kind Kind, ns, name, value string) uint64 {
	h := fnv.New64a()
	h.Write([]byte{byte(kind)})
	switch kind {
	case KindStartElement, KindEndElement:
		h.Write([]byte(ns))
		h.Write([]byte{0})
		h.Write([]byte(name))
	case KindAttribute:
		h.Write([]byte(ns))
		h.Write([]byte{0})
		h.Write([]byte(name))
		h.Write([]byte{0})
		h.Write([]byte(value))
	case KindProcInst:
		h.Write([]byte(name))
		h.Write([]byte{0})
		h.Write([]byte(value))
	case KindText, KindSpace, KindComment:
		h.Write([]byte(value))
	}
	return h.Sum64()
}

// StartElement creates the start of an element.
func StartElement(ns, name string) *Token {
	return newToken(KindStartElement, ns, name, "")
}

// EndElement creates the end of the element opened by start.
//
// start must be a start element token.
func EndElement(start *Token) *Token {
	t := newToken(KindEndElement, start.ns, start.name, "")
	t.start = start
	return t
}

// Attribute creates an attribute.
func Attribute(ns, name, value string) *Token {
	return newToken(KindAttribute, ns, name, value)
}

// Text creates a run of text compared by content.
func Text(s string) *Token {
	return newToken(KindText, "", "", s)
}

// Space creates a run of white space compared by content.
func Space(s string) *Token {
	return newToken(KindSpace, "", "", s)
}

// IgnorableSpace creates white space that is equal to any other ignorable
// white space. Its content is kept for output.
func IgnorableSpace(s string) *Token {
	return newToken(KindIgnorableSpace, "", "", s)
}

// Comment creates a comment.
func Comment(s string) *Token {
	return newToken(KindComment, "", "", s)
}

// ProcInst creates a processing instruction.
func ProcInst(target, data string) *Token {
	return newToken(KindProcInst, "", target, data)
}

func StartDocument() *Token { return newToken(KindStartDocument, "", "", "") }
func EndDocument() *Token   { return newToken(KindEndDocument, "", "", "") }

// Nil creates a placeholder token.
func Nil() *Token { return newToken(KindNil, "", "", "") }

func (t *Token) Kind() Kind { return t.kind }

// Name is the local name of an element or attribute, or the target of a
// processing instruction.
func (t *Token) Name() string { return t.name }

// Value is the attribute value, character content, comment text or
// processing instruction data.
func (t *Token) Value() string { return t.value }

// Namespace is the namespace URI, empty when unbound.
func (t *Token) Namespace() string { return t.ns }

func (t *Token) Hash() uint64 { return t.hash }

// Start returns the start element closed by an end element, nil otherwise.
func (t *Token) Start() *Token { return t.start }

// Equal reports whether t and o are the same markup event.
func (t *Token) Equal(o *Token) bool {
	if t == o {
		return true
	}
	if t == nil || o == nil {
		return false
	}
	if t.hash != o.hash || t.kind != o.kind {
		return false
	}
	switch t.kind {
	case KindStartElement:
		return t.name == o.name && t.ns == o.ns
	case KindEndElement:
		if t.start != nil && t.start == o.start {
			return true
		}
		return t.name == o.name && t.ns == o.ns
	case KindAttribute:
		return t.name == o.name && t.value == o.value && t.ns == o.ns
	case KindProcInst:
		return t.name == o.name && t.value == o.value
	case KindText, KindSpace, KindComment:
		return t.value == o.value
	default:
		// ignorable space, document boundaries and nil
		return true
	}
}

// String renders the short form used by debugging output.
func (t *Token) String() string {
	if t == nil {
		return "-"
	}
	switch t.kind {
	case KindStartElement:
		return "<" + t.name + ">"
	case KindEndElement:
		return "</" + t.name + ">"
	case KindAttribute:
		return "@" + t.name + "=" + strconv.Quote(t.value)
	case KindText:
		return strconv.Quote(t.value)
	case KindSpace:
		return "_s_"
	case KindIgnorableSpace:
		return "_i_"
	case KindComment:
		return "<!--" + t.value + "-->"
	case KindProcInst:
		var b strings.Builder
		b.WriteString("<?")
		b.WriteString(t.name)
		if t.value != "" {
			b.WriteByte(' ')
			b.WriteString(t.value)
		}
		b.WriteString("?>")
		return b.String()
	case KindStartDocument:
		return "#start"
	case KindEndDocument:
		return "#end"
	default:
		return "#nil"
	}
}
