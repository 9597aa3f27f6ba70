package encode

import (
	"strings"

	"github.com/fatih/color"

	"github.com/signadot/diffx/edit"
)

type Colors struct {
	Default func(string, ...any) string
	Map     map[edit.Operator]func(string, ...any) string
}

func NewColors() *Colors {
	colors := &Colors{
		Default: colorDefault,
		Map: map[edit.Operator]func(string, ...any) string{
			edit.Ins: color.RGB(8, 196, 16).SprintfFunc(),
			edit.Del: color.RGB(212, 48, 48).SprintfFunc(),
		},
	}
	for k, f := range colors.Map {
		colors.Map[k] = func(v string, _ ...any) string {
			return f(strings.ReplaceAll(v, "%", "%%"))
		}
	}
	return colors
}

func colorDefault(v string, _ ...any) string { return v }

func (c *Colors) Color(op edit.Operator, s string) string {
	return c.Get(op)(s)
}

func (c *Colors) Get(op edit.Operator) func(string, ...any) string {
	f := c.Map[op]
	if f == nil {
		return c.Default
	}
	return f
}
