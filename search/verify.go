package search

import (
	"fmt"

	"github.com/katalvlaran/gridpath/grid"
)

// Verdict classifies a strategy's result against the Dijkstra oracle rerun
// on an identical wall configuration.
type Verdict int

const (
	// VerdictOptimal: path lengths match, or both runs report no path.
	VerdictOptimal Verdict = iota
	// VerdictLonger: the strategy found a path, just not a shortest one.
	VerdictLonger
	// VerdictDisagree: exactly one side found a path, or the strategy
	// reported a path shorter than the oracle's (which a correct oracle
	// rules out — it signals a broken strategy, not a broken oracle).
	VerdictDisagree
)

// String implements fmt.Stringer.
func (v Verdict) String() string {
	switch v {
	case VerdictOptimal:
		return "optimal"
	case VerdictLonger:
		return "longer"
	case VerdictDisagree:
		return "disagree"
	default:
		return fmt.Sprintf("Verdict(%d)", int(v))
	}
}

// Classify runs alg on g's start/finish and grades the result against a
// ground-truth Dijkstra executed on an independent CloneWalls copy, so the
// oracle rerun can never disturb the strategy's own node state.
//
// g is Reset before the strategy runs; on return g holds the strategy's
// search state, available to the caller for animation. Both results are
// returned alongside the verdict. Errors surface from either run
// unchanged.
func Classify(g *grid.Grid, alg Algorithm) (Verdict, *Result, *Result, error) {
	if g == nil {
		return VerdictDisagree, nil, nil, ErrNilGrid
	}

	g.Reset()
	got, err := Run(alg, g, g.Start(), g.Finish())
	if err != nil {
		return VerdictDisagree, nil, nil, err
	}

	oracle := g.CloneWalls()
	want, err := RunDijkstra(oracle, oracle.Start(), oracle.Finish())
	if err != nil {
		return VerdictDisagree, got, nil, err
	}

	return compare(got, want), got, want, nil
}

// compare grades got against the oracle's want: both-empty counts as
// agreement that no path exists.
func compare(got, want *Result) Verdict {
	switch {
	case !got.Found() && !want.Found():
		return VerdictOptimal
	case got.Found() != want.Found():
		return VerdictDisagree
	case got.PathLen() == want.PathLen():
		return VerdictOptimal
	case got.PathLen() > want.PathLen():
		return VerdictLonger
	default:
		return VerdictDisagree
	}
}
