package config

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/signadot/diffx/encode"
	"github.com/signadot/diffx/libdiff"
	"github.com/signadot/diffx/parse"
)

func TestDecode(t *testing.T) {
	in := `
[load]
format = "html"
granularity = "word"
whitespace = "preserve"

[diff]
algorithm = "heuristic"
timeout = "2s"

[output]
coalesce = true
attribute_mode = "elements"
`
	got, err := Decode(strings.NewReader(in))
	if err != nil {
		t.Fatal(err)
	}
	want := Default()
	want.Load.Format = parse.FormatHTML
	want.Load.Granularity = parse.GranularityWord
	want.Load.Whitespace = parse.WhitespacePreserve
	want.Diff.Algorithm = libdiff.AlgorithmHeuristic
	want.Diff.Timeout = 2 * time.Second
	want.Output.Coalesce = true
	want.Output.AttributeMode = encode.AttributeElements
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("(-want +got):\n%s", diff)
	}
}

func TestRoundTrip(t *testing.T) {
	cfg := Default()
	cfg.Load.Namespaces = false
	cfg.Diff.MaxCells = 1000
	cfg.Output.XMLDecl = true
	var buf bytes.Buffer
	if err := cfg.Encode(&buf); err != nil {
		t.Fatal(err)
	}
	back, err := Decode(&buf)
	if err != nil {
		t.Fatalf("%v\n%s", err, buf.String())
	}
	if diff := cmp.Diff(cfg, back); diff != "" {
		t.Errorf("(-want +got):\n%s", diff)
	}
}

func TestDecodeErrors(t *testing.T) {
	for _, in := range []string{
		"[load]\ngranularity = \"sentence\"\n",
		"[diff]\nalgorithm = \"fast\"\n",
		"[diff]\nmax_cells = -1\n",
		"[output]\ncolour = true\n",
		"not toml",
	} {
		if _, err := Decode(strings.NewReader(in)); !errors.Is(err, ErrConfig) {
			t.Errorf("%q: got %v", in, err)
		}
	}
}

func TestLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "diffx.toml")
	if err := os.WriteFile(path, []byte("[load]\nnamespaces = false\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	cfg, err := Load(path)
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Load.Namespaces || cfg.Diff.MaxCells != libdiff.DefaultMaxCells {
		t.Errorf("got %+v", cfg)
	}
	if _, err := Load(filepath.Join(t.TempDir(), "missing.toml")); !errors.Is(err, ErrConfig) {
		t.Errorf("got %v", err)
	}
}

func TestOptions(t *testing.T) {
	cfg := Default()
	if n := len(cfg.ParseOptions()); n != 3 {
		t.Errorf("%d parse options", n)
	}
	if n := len(cfg.DiffOptions(nil)); n != 4 {
		t.Errorf("%d diff options", n)
	}
	if n := len(cfg.EncodeOptions(nil)); n != 3 {
		t.Errorf("%d encode options", n)
	}
}
