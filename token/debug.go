package token

import (
	"fmt"
	"io"
)

func FprintTokens(w io.Writer, toks []*Token, msg string) {
	fmt.Fprintf(w, "%s tokens:\n", msg)
	for i, t := range toks {
		fmt.Fprintf(w, "\t%d %s %s\n", i, t.kind, t)
	}
}
