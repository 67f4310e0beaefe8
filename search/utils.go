package search

import "github.com/katalvlaran/gridpath/grid"

// validate checks the shared strategy preconditions without touching any
// search state, so a failed call leaves the grid exactly as it was.
//
// Order of checks (first failure wins):
//  1. g non-nil                    → ErrNilGrid
//  2. start/finish owned by grid   → ErrNodeNotFound
//  3. neither endpoint is a wall   → ErrWallEndpoint
//  4. endpoints distinct           → ErrSameEndpoint
func validate(g *grid.Grid, start, finish *grid.Node) error {
	if g == nil {
		return ErrNilGrid
	}
	if !g.Contains(start) || !g.Contains(finish) {
		return ErrNodeNotFound
	}
	if start.Wall || finish.Wall {
		return ErrWallEndpoint
	}
	if start == finish {
		return ErrSameEndpoint
	}

	return nil
}

// manhattan returns |Δrow| + |Δcol|, the admissible and consistent
// heuristic for a 4-connected unit-cost grid: it never overestimates the
// true remaining cost, so A*-family closed-set checks stay valid.
func manhattan(a, b *grid.Node) int {
	dr := a.Row - b.Row
	if dr < 0 {
		dr = -dr
	}
	dc := a.Col - b.Col
	if dc < 0 {
		dc = -dc
	}

	return dr + dc
}

// reconstructPath walks Prev links from finish back to the chain root and
// reverses, yielding the start→finish path inclusive. Returns nil when the
// finish was never reached (Dist still Infinity).
//
// A correct relaxation step re-parents a node only on a strictly smaller
// tentative distance, so the chain is acyclic and terminates within the
// grid's cell count.
func reconstructPath(finish *grid.Node) []*grid.Node {
	if finish.Dist == grid.Infinity {
		return nil
	}
	var path []*grid.Node
	for n := finish; n != nil; n = n.Prev {
		path = append(path, n)
	}
	// Reverse in place: the walk produced finish→start.
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}

	return path
}
