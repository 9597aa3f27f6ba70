package edit

import "fmt"

// Operator tags a token of an edit script.
type Operator int

const (
	// Match marks a token present unchanged in both sequences.
	Match Operator = iota
	// Ins marks a token present only in the target sequence.
	Ins
	// Del marks a token present only in the source sequence.
	Del
)

func (o Operator) String() string {
	d, err := o.MarshalText()
	if err != nil {
		return err.Error()
	}
	return string(d)
}

// Symbol is the one character form: '=', '+' or '-'.
func (o Operator) Symbol() string {
	switch o {
	case Ins:
		return "+"
	case Del:
		return "-"
	default:
		return "="
	}
}

// IsEdit is true for Ins and Del.
func (o Operator) IsEdit() bool {
	return o == Ins || o == Del
}

// Flip swaps Ins and Del.
func (o Operator) Flip() Operator {
	switch o {
	case Ins:
		return Del
	case Del:
		return Ins
	default:
		return o
	}
}

func (o Operator) MarshalText() ([]byte, error) {
	switch o {
	case Match:
		return []byte("match"), nil
	case Ins:
		return []byte("ins"), nil
	case Del:
		return []byte("del"), nil
	default:
		return nil, fmt.Errorf("<err: %d is not an operator>", int(o))
	}
}

func (o *Operator) UnmarshalText(d []byte) error {
	op, ok := map[string]Operator{
		"match": Match,
		"=":     Match,
		"ins":   Ins,
		"+":     Ins,
		"del":   Del,
		"-":     Del,
	}[string(d)]
	if !ok {
		return fmt.Errorf("unknown operator %q", string(d))
	}
	*o = op
	return nil
}
