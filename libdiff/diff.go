package libdiff

import (
	"context"
	"log/slog"

	"github.com/signadot/diffx/debug"
	"github.com/signadot/diffx/edit"
	"github.com/signadot/diffx/sequence"
	"github.com/signadot/diffx/token"
)

// Diff aligns src with dst and reports the edit script to h in order.
//
// Replaying the Match and Del entries gives back the tokens of src and
// replaying the Match and Ins entries gives back those of dst. For
// well-formed sequences every end element of the script closes the
// innermost open element and attributes directly follow the start of their
// element, which can cost a few edits over the minimum. A handler
// error stops the diff and is returned unchanged. Size errors are detected
// before anything is sent to h.
//
// Diff does not close h.
func Diff(src, dst *sequence.Sequence, h edit.Handler, opts ...DiffOption) error {
	o := newDiffOpts(opts)
	sl := sequence.Slice(src.Tokens(), dst.Tokens())
	sl.Balance()
	ma, mb := sl.MiddleA(), sl.MiddleB()

	algo := o.algorithm
	if algo == AlgorithmAuto {
		algo = AlgorithmHeuristic
		if o.fits(len(ma), len(mb)) {
			algo = AlgorithmExact
		}
	}
	level := slog.LevelDebug
	if debug.Align() {
		level = slog.LevelInfo
	}
	o.logger.Log(context.Background(), level, "align",
		"algorithm", algo,
		"requested", o.algorithm,
		"source", src.Len(),
		"target", dst.Len(),
		"prefix", sl.Prefix,
		"suffix", sl.Suffix)

	var tailA, tailB *token.Token
	if sl.Suffix > 0 {
		tailA = sl.End()[0]
		tailB = sl.B[len(sl.B)-sl.Suffix]
	}
	w := &walker{a: ma, b: mb, tailA: tailA, tailB: tailB}

	var run func(*elementState) error
	switch algo {
	case AlgorithmHeuristic:
		p, err := newHeuristicPlan(ma, mb, o.timeout)
		if err != nil {
			return err
		}
		run = func(st *elementState) error {
			return w.walk(p, st)
		}
	default:
		if !o.fits(len(ma), len(mb)) {
			return &SizeError{Rows: len(ma) + 1, Cols: len(mb) + 1, Limit: o.maxCells}
		}
		run = func(st *elementState) error {
			return runExact(w, st)
		}
	}

	st := newElementState(h)
	for _, t := range sl.Start() {
		if err := st.emit(edit.Match, t); err != nil {
			return err
		}
	}
	if err := run(st); err != nil {
		return err
	}
	for _, t := range sl.End() {
		if err := st.emit(edit.Match, t); err != nil {
			return err
		}
	}
	if w.detours > 0 {
		o.logger.Log(context.Background(), level, "align: moves taken off the plan to keep elements paired", "moves", w.detours)
	}
	if debug.Align() {
		debug.LogAny(alignReport{
			Algorithm: algo,
			Prefix:    sl.Prefix,
			Suffix:    sl.Suffix,
			Source:    len(ma),
			Target:    len(mb),
			Detours:   w.detours,
		})
	}
	return nil
}

// alignReport is dumped when alignment tracing is on.
type alignReport struct {
	Algorithm Algorithm `yaml:"algorithm"`
	Prefix    int       `yaml:"prefix"`
	Suffix    int       `yaml:"suffix"`
	Source    int       `yaml:"middleSource"`
	Target    int       `yaml:"middleTarget"`
	Detours   int       `yaml:"detours"`
}
