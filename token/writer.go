package token

// Writer is implemented by markup serializers.
type Writer interface {
	OpenElement(ns, name string) error
	CloseElement() error
	Attribute(ns, name, value string) error
	Text(s string) error
	Comment(s string) error
	ProcInst(target, data string) error
}

// WriteTo renders t through w. Document boundaries and nil tokens render
// nothing.
func (t *Token) WriteTo(w Writer) error {
	switch t.kind {
	case KindStartElement:
		return w.OpenElement(t.ns, t.name)
	case KindEndElement:
		return w.CloseElement()
	case KindAttribute:
		return w.Attribute(t.ns, t.name, t.value)
	case KindText, KindSpace, KindIgnorableSpace:
		return w.Text(t.value)
	case KindComment:
		return w.Comment(t.value)
	case KindProcInst:
		return w.ProcInst(t.name, t.value)
	default:
		return nil
	}
}
