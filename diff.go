// Package diffx compares XML, HTML or plain text documents and writes
// the differences as a single annotated XML document.
//
// # Usage
//
//	stats, err := diffx.DiffXML(oldDoc, newDoc, os.Stdout, nil)
//	if err == nil && stats.Edits() > 0 {
//	    // documents differ
//	}
//
// The lower level pieces live in sub packages: parse loads documents into
// token sequences, libdiff aligns them, and encode writes the result.
//
// # Related Packages
//
//   - github.com/signadot/diffx/config - settings
//   - github.com/signadot/diffx/parse - loaders
//   - github.com/signadot/diffx/libdiff - alignment
//   - github.com/signadot/diffx/encode - output
package diffx

import (
	"bytes"
	"io"
	"log/slog"

	"github.com/signadot/diffx/config"
	"github.com/signadot/diffx/edit"
	"github.com/signadot/diffx/encode"
	"github.com/signadot/diffx/libdiff"
	"github.com/signadot/diffx/parse"
	"github.com/signadot/diffx/sequence"
)

// Diff writes the annotated document for src and dst to w and returns
// the edit counts. A nil cfg means config.Default(). Nothing is written to
// w unless the whole document could be produced.
func Diff(src, dst *sequence.Sequence, w io.Writer, cfg *config.Config) (*edit.Stats, error) {
	return DiffWithLogger(src, dst, w, cfg, slog.Default())
}

// DiffWithLogger is Diff with alignment logging sent to logger.
func DiffWithLogger(src, dst *sequence.Sequence, w io.Writer, cfg *config.Config, logger *slog.Logger) (*edit.Stats, error) {
	if cfg == nil {
		cfg = config.Default()
	}
	stats := edit.NewStats()
	opts := append(cfg.EncodeOptions(Namespaces(src, dst)), encode.EncodeLogger(logger))
	var buf bytes.Buffer
	var out edit.Handler = encode.NewReconciler(&buf, opts...)
	if cfg.Output.Coalesce {
		out = edit.NewCoalescer(out)
	}
	h := edit.Mux{stats, out}
	if err := libdiff.Diff(src, dst, h, cfg.DiffOptions(logger)...); err != nil {
		return nil, err
	}
	if err := h.Close(); err != nil {
		return nil, err
	}
	if _, err := buf.WriteTo(w); err != nil {
		return nil, err
	}
	return stats, nil
}

// Script returns the edit script for src and dst.
func Script(src, dst *sequence.Sequence, cfg *config.Config) (*edit.Script, error) {
	return ScriptWithLogger(src, dst, cfg, slog.Default())
}

func ScriptWithLogger(src, dst *sequence.Sequence, cfg *config.Config, logger *slog.Logger) (*edit.Script, error) {
	if cfg == nil {
		cfg = config.Default()
	}
	s := &edit.Script{}
	var h edit.Handler = s
	if cfg.Output.Coalesce {
		h = edit.NewCoalescer(s)
	}
	if err := libdiff.Diff(src, dst, h, cfg.DiffOptions(logger)...); err != nil {
		return nil, err
	}
	if err := edit.Close(h); err != nil {
		return nil, err
	}
	return s, nil
}

// Namespaces merges the namespaces of both documents, those of src
// first.
func Namespaces(src, dst *sequence.Sequence) *sequence.PrefixMapping {
	m := sequence.NewPrefixMapping()
	m.Merge(src.Namespaces())
	m.Merge(dst.Namespaces())
	return m
}

// Load reads one document in the configured format.
func Load(r io.Reader, cfg *config.Config) (*sequence.Sequence, error) {
	if cfg == nil {
		cfg = config.Default()
	}
	return parse.Load(r, cfg.Load.Format, cfg.ParseOptions()...)
}

// DiffReaders loads a and b in the configured format and diffs them.
func DiffReaders(a, b io.Reader, w io.Writer, cfg *config.Config) (*edit.Stats, error) {
	src, err := Load(a, cfg)
	if err != nil {
		return nil, err
	}
	dst, err := Load(b, cfg)
	if err != nil {
		return nil, err
	}
	return Diff(src, dst, w, cfg)
}

func DiffXML(a, b io.Reader, w io.Writer, cfg *config.Config) (*edit.Stats, error) {
	return DiffReaders(a, b, w, withFormat(cfg, parse.FormatXML))
}

func DiffHTML(a, b io.Reader, w io.Writer, cfg *config.Config) (*edit.Stats, error) {
	return DiffReaders(a, b, w, withFormat(cfg, parse.FormatHTML))
}

func DiffLines(a, b io.Reader, w io.Writer, cfg *config.Config) (*edit.Stats, error) {
	return DiffReaders(a, b, w, withFormat(cfg, parse.FormatLines))
}

func withFormat(cfg *config.Config, f parse.Format) *config.Config {
	c := config.Default()
	if cfg != nil {
		*c = *cfg
	}
	c.Load.Format = f
	return c
}
