package main

import (
	"fmt"
	"io"
	"os"

	"github.com/scott-cotton/cli"
	"golang.org/x/sync/errgroup"

	"github.com/signadot/diffx"
	"github.com/signadot/diffx/config"
	"github.com/signadot/diffx/sequence"
)

// loadPair loads the documents named by args concurrently. "-" names the
// standard input.
func loadPair(cc *cli.Context, c *config.Config, args []string) (src, dst *sequence.Sequence, err error) {
	if len(args) != 2 {
		return nil, nil, fmt.Errorf("%w: requires 2 args, got %v", cli.ErrUsage, args)
	}
	if args[0] == "-" && args[1] == "-" {
		return nil, nil, fmt.Errorf("%w: only one input may be -", cli.ErrUsage)
	}
	var g errgroup.Group
	g.Go(func() error {
		var err error
		src, err = loadFile(cc, c, args[0])
		return err
	})
	g.Go(func() error {
		var err error
		dst, err = loadFile(cc, c, args[1])
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, nil, err
	}
	return src, dst, nil
}

func loadFile(cc *cli.Context, c *config.Config, path string) (*sequence.Sequence, error) {
	var r io.Reader
	if path != "-" {
		f, err := os.Open(path)
		if err != nil {
			return nil, err
		}
		defer f.Close()
		r = f
	} else {
		r = cc.In
	}
	seq, err := diffx.Load(r, c)
	if err != nil {
		return nil, fmt.Errorf("error loading %s: %w", path, err)
	}
	return seq, nil
}
