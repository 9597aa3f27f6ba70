package edit

import "github.com/signadot/diffx/token"

// Counts holds the number of entries per operator.
type Counts struct {
	Match int `yaml:"match" json:"match"`
	Ins   int `yaml:"ins" json:"ins"`
	Del   int `yaml:"del" json:"del"`
}

func (c *Counts) add(op Operator) {
	switch op {
	case Match:
		c.Match++
	case Ins:
		c.Ins++
	case Del:
		c.Del++
	}
}

// Total is the number of entries counted.
func (c Counts) Total() int { return c.Match + c.Ins + c.Del }

// Edits is the number of Ins and Del entries.
func (c Counts) Edits() int { return c.Ins + c.Del }

// Stats counts the entries of an edit script per operator and per token
// kind.
type Stats struct {
	Counts `yaml:",inline" json:"counts"`
	Kinds  map[string]*Counts `yaml:"kinds" json:"kinds"`
}

func NewStats() *Stats {
	return &Stats{Kinds: map[string]*Counts{}}
}

func (s *Stats) Handle(op Operator, t *token.Token) error {
	s.add(op)
	k := t.Kind().String()
	c := s.Kinds[k]
	if c == nil {
		c = &Counts{}
		s.Kinds[k] = c
	}
	c.add(op)
	return nil
}

// Env exposes the counts as a flat environment for expressions:
// match, ins, del, edits, total, and per kind maps under kinds.
func (s *Stats) Env() map[string]any {
	kinds := make(map[string]any, len(s.Kinds))
	for k, c := range s.Kinds {
		kinds[k] = map[string]any{"match": c.Match, "ins": c.Ins, "del": c.Del}
	}
	return map[string]any{
		"match": s.Match,
		"ins":   s.Ins,
		"del":   s.Del,
		"edits": s.Edits(),
		"total": s.Total(),
		"kinds": kinds,
	}
}
