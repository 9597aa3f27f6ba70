package encode

import (
	"fmt"
	"log/slog"

	"github.com/signadot/diffx/sequence"
)

// AttributeMode selects how the reconciler reports attribute changes.
type AttributeMode int

const (
	// AttributeInline reports changes with ins: and del: attributes on the
	// element itself, falling back to child elements for namespaced
	// attributes.
	AttributeInline AttributeMode = iota
	// AttributeElements reports every change as a dfx:ins or dfx:del child
	// element.
	AttributeElements
)

func (m AttributeMode) String() string {
	if m == AttributeElements {
		return "elements"
	}
	return "inline"
}

func (m AttributeMode) MarshalText() ([]byte, error) {
	return []byte(m.String()), nil
}

func (m *AttributeMode) UnmarshalText(d []byte) error {
	switch string(d) {
	case "inline":
		*m = AttributeInline
	case "elements":
		*m = AttributeElements
	default:
		return fmt.Errorf("unknown attribute mode %q", string(d))
	}
	return nil
}

type encOpts struct {
	namespaces *sequence.PrefixMapping
	attrMode   AttributeMode
	xmlDecl    bool
	colors     *Colors
	logger     *slog.Logger
}

type EncodeOption func(*encOpts)

// EncodeNamespaces declares the namespaces of the compared documents on
// the root element.
func EncodeNamespaces(m *sequence.PrefixMapping) EncodeOption {
	return func(o *encOpts) { o.namespaces = m }
}
func EncodeAttributeMode(m AttributeMode) EncodeOption {
	return func(o *encOpts) { o.attrMode = m }
}
func EncodeXMLDecl(v bool) EncodeOption {
	return func(o *encOpts) { o.xmlDecl = v }
}
func EncodeColors(c *Colors) EncodeOption {
	return func(o *encOpts) { o.colors = c }
}
func EncodeLogger(l *slog.Logger) EncodeOption {
	return func(o *encOpts) { o.logger = l }
}

func newEncOpts(opts []EncodeOption) *encOpts {
	o := &encOpts{}
	for _, opt := range opts {
		opt(o)
	}
	if o.namespaces == nil {
		o.namespaces = sequence.NewPrefixMapping()
	}
	if o.logger == nil {
		o.logger = slog.Default()
	}
	return o
}
