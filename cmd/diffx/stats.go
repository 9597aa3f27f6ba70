package main

import (
	"fmt"
	"io"

	"github.com/expr-lang/expr"
	"github.com/scott-cotton/cli"

	"github.com/signadot/diffx"
	"github.com/signadot/diffx/edit"
	"github.com/signadot/diffx/encode"
)

func stats(cfg *StatsConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Stats.Parse(cc, args)
	if err != nil {
		cfg.Stats.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	c, err := cfg.settings()
	if err != nil {
		return err
	}
	src, dst, err := loadPair(cc, c, args)
	if err != nil {
		return err
	}
	s, err := diffx.ScriptWithLogger(src, dst, c, cfg.logger())
	if err != nil {
		return err
	}
	st := edit.NewStats()
	if err := edit.Replay(s.Entries, st); err != nil {
		return err
	}
	err = cfg.output(cc.Out, func(w io.Writer) error {
		return encode.EncodeStatsYAML(st, w)
	})
	if err != nil {
		return err
	}
	if cfg.Expect == "" {
		return nil
	}
	ok, err := expect(cfg.Expect, st)
	if err != nil {
		return fmt.Errorf("%w: %w", cli.ErrUsage, err)
	}
	if !ok {
		return cli.ExitCodeErr(1)
	}
	return nil
}

// expect evaluates the boolean expression src over the counts in st.
func expect(src string, st *edit.Stats) (bool, error) {
	env := st.Env()
	prog, err := expr.Compile(src, expr.Env(env), expr.AsBool())
	if err != nil {
		return false, fmt.Errorf("bad expression %q: %w", src, err)
	}
	out, err := expr.Run(prog, env)
	if err != nil {
		return false, fmt.Errorf("evaluating %q: %w", src, err)
	}
	return out.(bool), nil
}
