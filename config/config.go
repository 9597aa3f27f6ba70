// Package config holds the settings of a diff: how documents are loaded,
// which alignment is used and how the result is written.
//
// Settings are read from TOML:
//
//	[load]
//	format = "xml"
//	granularity = "word"
//	whitespace = "preserve"
//	namespaces = true
//
//	[diff]
//	algorithm = "auto"
//	max_cells = 64000000
//	timeout = "10s"
//
//	[output]
//	coalesce = true
//	attribute_mode = "inline"
//	xml_declaration = false
package config

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strings"
	"time"

	"github.com/BurntSushi/toml"

	"github.com/signadot/diffx/encode"
	"github.com/signadot/diffx/libdiff"
	"github.com/signadot/diffx/parse"
	"github.com/signadot/diffx/sequence"
)

var ErrConfig = errors.New("invalid configuration")

type Config struct {
	Load   LoadConfig   `toml:"load" yaml:"load"`
	Diff   DiffConfig   `toml:"diff" yaml:"diff"`
	Output OutputConfig `toml:"output" yaml:"output"`
}

type LoadConfig struct {
	Format      parse.Format      `toml:"format" yaml:"format"`
	Granularity parse.Granularity `toml:"granularity" yaml:"granularity"`
	Whitespace  parse.Whitespace  `toml:"whitespace" yaml:"whitespace"`
	Namespaces  bool              `toml:"namespaces" yaml:"namespaces"`
}

type DiffConfig struct {
	Algorithm libdiff.Algorithm `toml:"algorithm" yaml:"algorithm"`
	MaxCells  int64             `toml:"max_cells" yaml:"max_cells"`
	// Timeout bounds the heuristic; zero means no bound.
	Timeout time.Duration `toml:"timeout" yaml:"timeout"`
}

type OutputConfig struct {
	Coalesce      bool                 `toml:"coalesce" yaml:"coalesce"`
	AttributeMode encode.AttributeMode `toml:"attribute_mode" yaml:"attribute_mode"`
	XMLDecl       bool                 `toml:"xml_declaration" yaml:"xml_declaration"`
}

// Default returns the settings used when nothing is configured.
func Default() *Config {
	return &Config{
		Load: LoadConfig{
			Format:      parse.FormatXML,
			Granularity: parse.GranularitySpaceWord,
			Whitespace:  parse.WhitespaceCompare,
			Namespaces:  true,
		},
		Diff: DiffConfig{
			Algorithm: libdiff.AlgorithmAuto,
			MaxCells:  libdiff.DefaultMaxCells,
		},
		Output: OutputConfig{
			AttributeMode: encode.AttributeInline,
		},
	}
}

// Load reads the TOML file at path on top of the defaults.
func Load(path string) (*Config, error) {
	cfg := Default()
	md, err := toml.DecodeFile(path, cfg)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %w", ErrConfig, path, err)
	}
	if err := checkKeys(md); err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return cfg, nil
}

// Decode reads TOML from r on top of the defaults.
func Decode(r io.Reader) (*Config, error) {
	cfg := Default()
	md, err := toml.NewDecoder(r).Decode(cfg)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrConfig, err)
	}
	if err := checkKeys(md); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func checkKeys(md toml.MetaData) error {
	undecoded := md.Undecoded()
	if len(undecoded) == 0 {
		return nil
	}
	keys := make([]string, len(undecoded))
	for i, k := range undecoded {
		keys[i] = k.String()
	}
	return fmt.Errorf("%w: unknown keys %s", ErrConfig, strings.Join(keys, ", "))
}

// Encode writes c as TOML.
func (c *Config) Encode(w io.Writer) error {
	return toml.NewEncoder(w).Encode(c)
}

func (c *Config) Validate() error {
	if c.Diff.MaxCells < 0 {
		return fmt.Errorf("%w: max_cells %d is negative", ErrConfig, c.Diff.MaxCells)
	}
	if c.Diff.Timeout < 0 {
		return fmt.Errorf("%w: timeout %s is negative", ErrConfig, c.Diff.Timeout)
	}
	return nil
}

func (c *Config) ParseOptions() []parse.ParseOption {
	return []parse.ParseOption{
		parse.WithGranularity(c.Load.Granularity),
		parse.WithWhitespace(c.Load.Whitespace),
		parse.WithNamespaces(c.Load.Namespaces),
	}
}

func (c *Config) DiffOptions(logger *slog.Logger) []libdiff.DiffOption {
	return []libdiff.DiffOption{
		libdiff.WithAlgorithm(c.Diff.Algorithm),
		libdiff.WithMaxCells(c.Diff.MaxCells),
		libdiff.WithTimeout(c.Diff.Timeout),
		libdiff.WithLogger(logger),
	}
}

// EncodeOptions returns the reconciler options, declaring ns on the root.
func (c *Config) EncodeOptions(ns *sequence.PrefixMapping) []encode.EncodeOption {
	return []encode.EncodeOption{
		encode.EncodeNamespaces(ns),
		encode.EncodeAttributeMode(c.Output.AttributeMode),
		encode.EncodeXMLDecl(c.Output.XMLDecl),
	}
}
