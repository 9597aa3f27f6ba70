package main

import (
	"io"

	"github.com/scott-cotton/cli"

	"github.com/signadot/diffx"
	"github.com/signadot/diffx/edit"
	"github.com/signadot/diffx/encode"
)

func script(cfg *ScriptConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Script.Parse(cc, args)
	if err != nil {
		cfg.Script.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	c, err := cfg.settings()
	if err != nil {
		return err
	}
	if cfg.Coalesce {
		c.Output.Coalesce = true
	}
	src, dst, err := loadPair(cc, c, args)
	if err != nil {
		return err
	}
	s, err := diffx.ScriptWithLogger(src, dst, c, cfg.logger())
	if err != nil {
		return err
	}
	if cfg.Y {
		return cfg.output(cc.Out, func(w io.Writer) error {
			return encode.EncodeScriptYAML(s, w)
		})
	}
	var opts []encode.EncodeOption
	if colors := cfg.colors(cc.Out); colors != nil {
		opts = append(opts, encode.EncodeColors(colors))
	}
	return cfg.output(cc.Out, func(w io.Writer) error {
		sw := encode.NewScriptWriter(w, opts...)
		if err := edit.Replay(s.Entries, sw); err != nil {
			return err
		}
		return sw.Close()
	})
}
