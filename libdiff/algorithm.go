package libdiff

import "fmt"

// Algorithm selects how the differing middle of two sequences is aligned.
type Algorithm int

const (
	// AlgorithmExact is the quadratic LCS alignment.
	AlgorithmExact Algorithm = iota
	// AlgorithmHeuristic is the linear memory Myers alignment.
	AlgorithmHeuristic
	// AlgorithmAuto uses Exact when its table fits the cell limit and
	// Heuristic otherwise.
	AlgorithmAuto
)

var algorithmNames = map[Algorithm]string{
	AlgorithmExact:     "exact",
	AlgorithmHeuristic: "heuristic",
	AlgorithmAuto:      "auto",
}

func ParseAlgorithm(s string) (Algorithm, error) {
	for a, name := range algorithmNames {
		if name == s {
			return a, nil
		}
	}
	return 0, fmt.Errorf("%w %q (want exact, heuristic or auto)", ErrBadAlgorithm, s)
}

func (a Algorithm) String() string {
	s, ok := algorithmNames[a]
	if !ok {
		return fmt.Sprintf("Algorithm(%d)", int(a))
	}
	return s
}

func (a Algorithm) MarshalText() ([]byte, error) {
	s, ok := algorithmNames[a]
	if !ok {
		return nil, fmt.Errorf("%w %d", ErrBadAlgorithm, int(a))
	}
	return []byte(s), nil
}

func (a *Algorithm) UnmarshalText(d []byte) error {
	v, err := ParseAlgorithm(string(d))
	if err != nil {
		return err
	}
	*a = v
	return nil
}
