package main

import (
	"io"

	"github.com/scott-cotton/cli"

	"github.com/signadot/diffx"
	"github.com/signadot/diffx/edit"
)

func diff(cfg *DiffConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Diff.Parse(cc, args)
	if err != nil {
		cfg.Diff.Usage(cc, err)
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
	var st *edit.Stats
	err = cfg.output(cc.Out, func(w io.Writer) error {
		st, err = diffx.DiffWithLogger(src, dst, w, c, cfg.logger())
		return err
	})
	if err != nil {
		return err
	}
	if st.Edits() > 0 {
		return cli.ExitCodeErr(1)
	}
	return nil
}
