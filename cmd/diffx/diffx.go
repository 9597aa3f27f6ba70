package main

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/scott-cotton/cli"
)

func diffxMain(cfg *MainConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Main.Parse(cc, args)
	if err != nil {
		return err
	}
	if cfg.HTML && cfg.Lines {
		return fmt.Errorf("%w: must specify at most one of -html -lines", cli.ErrUsage)
	}
	if len(args) == 0 {
		return cli.ErrNoCommandProvided
	}
	sub := cfg.Main.FindSub(cc, args[0])
	if sub == nil {
		return fmt.Errorf("%w: %q not found", cli.ErrNoSuchCommand, args[0])
	}
	err = sub.Run(cc, args[1:])
	if errors.Is(err, cli.ErrUsage) {
		sub.Usage(cc, err)
		os.Exit(sub.Exit(cc, err))
	}
	return err
}

func (cfg *MainConfig) outOpt(_ *cli.Context, a string) (any, error) {
	if a == "-" {
		a = ""
	}
	cfg.Out = a
	return a, nil
}

// output runs write against a buffer, then sends the result to the -o file
// or to stdout. The file is only created once write succeeds.
func (cfg *MainConfig) output(stdout io.Writer, write func(io.Writer) error) error {
	var buf bytes.Buffer
	if err := write(&buf); err != nil {
		return err
	}
	if cfg.Out == "" {
		_, err := buf.WriteTo(stdout)
		return err
	}
	return os.WriteFile(cfg.Out, buf.Bytes(), 0o644)
}
