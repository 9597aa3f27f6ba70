package libdiff

import (
	"log/slog"
	"time"
)

// DefaultMaxCells bounds the exact alignment table.
const DefaultMaxCells = 64_000_000

type diffOpts struct {
	algorithm Algorithm
	maxCells  int64
	timeout   time.Duration
	logger    *slog.Logger
}

type DiffOption func(*diffOpts)

func WithAlgorithm(a Algorithm) DiffOption {
	return func(o *diffOpts) { o.algorithm = a }
}

// WithMaxCells sets the largest exact table, counted as
// (n+1)*(m+1) for middles of n and m tokens. Non positive values restore
// the default.
func WithMaxCells(n int64) DiffOption {
	return func(o *diffOpts) {
		if n <= 0 {
			n = DefaultMaxCells
		}
		o.maxCells = n
	}
}

// WithTimeout bounds the running time of the heuristic. Zero, the default,
// means no bound and a deterministic result.
func WithTimeout(d time.Duration) DiffOption {
	return func(o *diffOpts) { o.timeout = d }
}

func WithLogger(l *slog.Logger) DiffOption {
	return func(o *diffOpts) { o.logger = l }
}

func newDiffOpts(opts []DiffOption) *diffOpts {
	o := &diffOpts{
		algorithm: AlgorithmExact,
		maxCells:  DefaultMaxCells,
	}
	for _, opt := range opts {
		opt(o)
	}
	if o.logger == nil {
		o.logger = slog.Default()
	}
	return o
}

func (o *diffOpts) fits(n, m int) bool {
	return int64(n+1)*int64(m+1) <= o.maxCells
}
