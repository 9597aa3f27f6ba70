package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"strconv"
	"time"

	"github.com/mattn/go-isatty"
	"github.com/scott-cotton/cli"

	"github.com/signadot/diffx/config"
	"github.com/signadot/diffx/encode"
	"github.com/signadot/diffx/libdiff"
	"github.com/signadot/diffx/parse"
)

type MainConfig struct {
	Config      string `cli:"name=config desc='TOML settings file'"`
	Granularity string `cli:"name=g aliases=granularity desc='text granularity: space-word, word, text, character, punctuation'"`
	Whitespace  string `cli:"name=w aliases=whitespace desc='white space: compare, preserve, ignore'"`
	Algorithm   string `cli:"name=a aliases=algorithm desc='alignment: exact, heuristic, auto'"`
	HTML        bool   `cli:"name=html desc='load inputs as HTML'"`
	Lines       bool   `cli:"name=lines desc='load inputs as lines of text'"`
	NoNS        bool   `cli:"name=nons desc='ignore namespaces'"`
	Verbose     bool   `cli:"name=v desc='log at debug level'"`
	Color       bool   `cli:"name=color desc='write scripts in color'"`

	MaxCells int64
	Timeout  time.Duration

	// Out is the -o file, empty for stdout.
	Out string

	Main *cli.Command
}

func (cfg *MainConfig) maxCellsOpt(_ *cli.Context, a string) (any, error) {
	n, err := strconv.ParseInt(a, 10, 64)
	if err != nil || n < 0 {
		return nil, fmt.Errorf("%w: bad -max-cells %q", cli.ErrUsage, a)
	}
	cfg.MaxCells = n
	return n, nil
}

func (cfg *MainConfig) timeoutOpt(_ *cli.Context, a string) (any, error) {
	d, err := time.ParseDuration(a)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", cli.ErrUsage, err)
	}
	cfg.Timeout = d
	return d, nil
}

// settings returns the configuration file contents, or the defaults,
// with the flags given on the command line applied on top.
func (cfg *MainConfig) settings() (*config.Config, error) {
	c := config.Default()
	if cfg.Config != "" {
		var err error
		c, err = config.Load(cfg.Config)
		if err != nil {
			return nil, err
		}
	}
	switch {
	case cfg.HTML:
		c.Load.Format = parse.FormatHTML
	case cfg.Lines:
		c.Load.Format = parse.FormatLines
	}
	if cfg.Granularity != "" {
		g, err := parse.ParseGranularity(cfg.Granularity)
		if err != nil {
			return nil, fmt.Errorf("%w: %w", cli.ErrUsage, err)
		}
		c.Load.Granularity = g
	}
	if cfg.Whitespace != "" {
		w, err := parse.ParseWhitespace(cfg.Whitespace)
		if err != nil {
			return nil, fmt.Errorf("%w: %w", cli.ErrUsage, err)
		}
		c.Load.Whitespace = w
	}
	if cfg.NoNS {
		c.Load.Namespaces = false
	}
	if cfg.Algorithm != "" {
		a, err := libdiff.ParseAlgorithm(cfg.Algorithm)
		if err != nil {
			return nil, fmt.Errorf("%w: %w", cli.ErrUsage, err)
		}
		c.Diff.Algorithm = a
	}
	if cfg.MaxCells != 0 {
		c.Diff.MaxCells = cfg.MaxCells
	}
	if cfg.Timeout != 0 {
		c.Diff.Timeout = cfg.Timeout
	}
	return c, c.Validate()
}

func (cfg *MainConfig) logger() *slog.Logger {
	return newLogger(os.Stderr, cfg.Verbose)
}

// colors returns the script colors, nil when the output should get plain
// text. w is stdout.
func (cfg *MainConfig) colors(w io.Writer) *encode.Colors {
	if cfg.Color {
		return encode.NewColors()
	}
	if cfg.Out != "" {
		return nil
	}
	colorSet := false
	for _, opt := range cfg.Main.Opts {
		if opt.Name != "color" {
			continue
		}
		colorSet = opt.Value != nil
		break
	}
	if colorSet {
		return nil
	}
	f, ok := w.(*os.File)
	if !ok {
		return nil
	}
	if isatty.IsTerminal(f.Fd()) {
		return encode.NewColors()
	}
	return nil
}

type DiffConfig struct {
	*MainConfig
	Coalesce     bool `cli:"name=coalesce desc='merge adjacent text edits'"`
	AttrElements bool `cli:"name=attr-elements desc='write changed attributes as elements'"`
	Decl         bool `cli:"name=decl desc='write an XML declaration'"`

	Diff *cli.Command
}

func (cfg *DiffConfig) settings() (*config.Config, error) {
	c, err := cfg.MainConfig.settings()
	if err != nil {
		return nil, err
	}
	if cfg.Coalesce {
		c.Output.Coalesce = true
	}
	if cfg.AttrElements {
		c.Output.AttributeMode = encode.AttributeElements
	}
	if cfg.Decl {
		c.Output.XMLDecl = true
	}
	return c, nil
}

type ScriptConfig struct {
	*MainConfig
	Coalesce bool `cli:"name=coalesce desc='merge adjacent text edits'"`
	Y        bool `cli:"name=y aliases=yaml desc='write the script as YAML'"`

	Script *cli.Command
}

type StatsConfig struct {
	*MainConfig
	Expect string `cli:"name=expect desc='boolean expression over match, ins, del, edits, total and kinds'"`

	Stats *cli.Command
}
