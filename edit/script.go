package edit

import (
	"strings"

	"github.com/signadot/diffx/token"
)

// Script records an edit script.
type Script struct {
	Entries []Entry
}

func (s *Script) Handle(op Operator, t *token.Token) error {
	s.Entries = append(s.Entries, Entry{Op: op, Token: t})
	return nil
}

// Source replays the Match and Del tokens.
func (s *Script) Source() []*token.Token {
	return s.filter(Del)
}

// Target replays the Match and Ins tokens.
func (s *Script) Target() []*token.Token {
	return s.filter(Ins)
}

func (s *Script) filter(edit Operator) []*token.Token {
	var res []*token.Token
	for _, e := range s.Entries {
		if e.Op == Match || e.Op == edit {
			res = append(res, e.Token)
		}
	}
	return res
}

// Count returns the number of entries tagged op.
func (s *Script) Count(op Operator) int {
	n := 0
	for _, e := range s.Entries {
		if e.Op == op {
			n++
		}
	}
	return n
}

func (s *Script) Len() int { return len(s.Entries) }

// String renders the script in short form, for example `=<a> -"x" +"y" =</a>`.
func (s *Script) String() string {
	parts := make([]string, len(s.Entries))
	for i, e := range s.Entries {
		parts[i] = e.String()
	}
	return strings.Join(parts, " ")
}
