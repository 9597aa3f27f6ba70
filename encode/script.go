package encode

import (
	"bufio"
	"io"

	"github.com/goccy/go-yaml"

	"github.com/signadot/diffx/edit"
	"github.com/signadot/diffx/token"
)

// ScriptWriter writes one line per entry in short form, such as +<a> or
// -"text".
type ScriptWriter struct {
	w      *bufio.Writer
	colors *Colors
}

func NewScriptWriter(w io.Writer, opts ...EncodeOption) *ScriptWriter {
	o := newEncOpts(opts)
	return &ScriptWriter{w: bufio.NewWriter(w), colors: o.colors}
}

func (s *ScriptWriter) Handle(op edit.Operator, t *token.Token) error {
	line := op.Symbol() + t.String()
	if s.colors != nil {
		line = s.colors.Color(op, line)
	}
	if _, err := s.w.WriteString(line); err != nil {
		return err
	}
	return s.w.WriteByte('\n')
}

func (s *ScriptWriter) Close() error {
	return s.w.Flush()
}

// ScriptEntry is the YAML form of an edit entry.
type ScriptEntry struct {
	Op        string `yaml:"op"`
	Kind      string `yaml:"kind"`
	Namespace string `yaml:"ns,omitempty"`
	Name      string `yaml:"name,omitempty"`
	Value     string `yaml:"value,omitempty"`
}

func NewScriptEntry(e edit.Entry) ScriptEntry {
	return ScriptEntry{
		Op:        e.Op.String(),
		Kind:      e.Token.Kind().String(),
		Namespace: e.Token.Namespace(),
		Name:      e.Token.Name(),
		Value:     e.Token.Value(),
	}
}

// EncodeScriptYAML writes the entries of s as a YAML list.
func EncodeScriptYAML(s *edit.Script, w io.Writer) error {
	entries := make([]ScriptEntry, len(s.Entries))
	for i, e := range s.Entries {
		entries[i] = NewScriptEntry(e)
	}
	return yaml.NewEncoder(w).Encode(entries)
}

// EncodeStatsYAML writes the counts of st as YAML.
func EncodeStatsYAML(st *edit.Stats, w io.Writer) error {
	return yaml.NewEncoder(w).Encode(st)
}
