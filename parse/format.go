package parse

import (
	"errors"
	"fmt"
	"io"

	"github.com/signadot/diffx/sequence"
)

var ErrBadFormat = errors.New("unknown input format")

// Format names an input syntax.
type Format int

const (
	FormatXML Format = iota
	FormatHTML
	FormatLines
)

var formatNames = map[Format]string{
	FormatXML:   "xml",
	FormatHTML:  "html",
	FormatLines: "lines",
}

func ParseFormat(s string) (Format, error) {
	for f, name := range formatNames {
		if name == s {
			return f, nil
		}
	}
	return 0, fmt.Errorf("%w %q", ErrBadFormat, s)
}

func (f Format) String() string {
	s, ok := formatNames[f]
	if !ok {
		return fmt.Sprintf("Format(%d)", int(f))
	}
	return s
}

func (f Format) MarshalText() ([]byte, error) {
	s, ok := formatNames[f]
	if !ok {
		return nil, fmt.Errorf("%w %d", ErrBadFormat, int(f))
	}
	return []byte(s), nil
}

func (f *Format) UnmarshalText(d []byte) error {
	v, err := ParseFormat(string(d))
	if err != nil {
		return err
	}
	*f = v
	return nil
}

// Load reads r in format f.
func Load(r io.Reader, f Format, opts ...ParseOption) (*sequence.Sequence, error) {
	switch f {
	case FormatXML:
		return XML(r, opts...)
	case FormatHTML:
		return HTML(r, opts...)
	case FormatLines:
		return Lines(r, opts...)
	default:
		return nil, fmt.Errorf("%w %d", ErrBadFormat, int(f))
	}
}
