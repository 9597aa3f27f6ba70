// Package libdiff aligns two token sequences and reports the result as an
// edit script.
//
// # Usage
//
//	// Record the script
//	s := &edit.Script{}
//	err := libdiff.Diff(src, dst, s)
//
//	// Or stream it into any handler, choosing the algorithm
//	err = libdiff.Diff(src, dst, h, libdiff.WithAlgorithm(libdiff.AlgorithmAuto))
//
// Two algorithms are provided. [AlgorithmExact] computes a longest common
// subsequence table and yields the minimum number of insertions and
// deletions, unless keeping elements paired costs a few more. It needs
// memory proportional to the product of the sequence
// lengths and refuses inputs above [WithMaxCells] with a [*SizeError].
// [AlgorithmHeuristic] runs the Myers bisection of
// github.com/sergi/go-diff over token equivalence classes in linear memory.
// [AlgorithmAuto] picks Exact when the table fits and Heuristic otherwise.
//
// Both algorithms first slice off the common prefix and suffix, which are
// reported as matches. The alignment of the middle is then walked one move
// at a time, skipping moves that would break the nesting of elements.
//
// # Related Packages
//
//   - github.com/signadot/diffx/edit - operators and handlers
//   - github.com/signadot/diffx/sequence - token sequences
package libdiff
