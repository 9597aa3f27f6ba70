package token

import "fmt"

// Kind discriminates the variants of a [Token].
type Kind int

const (
	KindNil Kind = iota
	KindStartElement
	KindEndElement
	KindAttribute
	KindText
	KindSpace
	KindIgnorableSpace
	KindComment
	KindProcInst
	KindStartDocument
	KindEndDocument
)

var kindNames = map[Kind]string{
	KindNil:            "Nil",
	KindStartElement:   "StartElement",
	KindEndElement:     "EndElement",
	KindAttribute:      "Attribute",
	KindText:           "Text",
	KindSpace:          "Space",
	KindIgnorableSpace: "IgnorableSpace",
	KindComment:        "Comment",
	KindProcInst:       "ProcInst",
	KindStartDocument:  "StartDocument",
	KindEndDocument:    "EndDocument",
}

// Kinds returns all kinds in declaration order.
func Kinds() []Kind {
	return []Kind{
		KindNil,
		KindStartElement,
		KindEndElement,
		KindAttribute,
		KindText,
		KindSpace,
		KindIgnorableSpace,
		KindComment,
		KindProcInst,
		KindStartDocument,
		KindEndDocument,
	}
}

func (k Kind) String() string {
	s, ok := kindNames[k]
	if !ok {
		return "Unknown"
	}
	return s
}

// IsText is true for the kinds holding character content.
func (k Kind) IsText() bool {
	switch k {
	case KindText, KindSpace, KindIgnorableSpace:
		return true
	default:
		return false
	}
}

// IsElement is true for element boundaries.
func (k Kind) IsElement() bool {
	return k == KindStartElement || k == KindEndElement
}

func (k Kind) MarshalText() ([]byte, error) {
	s, ok := kindNames[k]
	if !ok {
		return nil, fmt.Errorf("<err: %d is not a token kind>", int(k))
	}
	return []byte(s), nil
}

func (k *Kind) UnmarshalText(d []byte) error {
	for kind, name := range kindNames {
		if name == string(d) {
			*k = kind
			return nil
		}
	}
	return fmt.Errorf("unknown token kind %q", string(d))
}
