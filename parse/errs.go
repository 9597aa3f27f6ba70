package parse

import (
	"errors"
)

var (
	ErrParse          = errors.New("parse error")
	ErrBadGranularity = errors.New("unknown text granularity")
	ErrBadWhitespace  = errors.New("unknown white space processing")
)
