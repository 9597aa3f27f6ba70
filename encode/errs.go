package encode

import (
	"errors"
	"fmt"
)

var (
	ErrStructure     = errors.New("inconsistent structure")
	ErrUnclosed      = fmt.Errorf("%w: elements left open", ErrStructure)
	ErrNoOpenElement = fmt.Errorf("%w: no open element", ErrStructure)
	ErrTagClosed     = fmt.Errorf("%w: start tag already closed", ErrStructure)
)
