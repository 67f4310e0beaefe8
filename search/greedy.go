// Greedy Best-First: the same frontier skeleton ordered by heuristic
// distance alone, accumulated cost ignored. A neighbor is claimed the
// first time it is seen and never re-relaxed afterwards — the strategy
// deliberately trades optimality for raw speed toward the goal, so a
// returned path may be longer than the oracle's.

package search

import "github.com/katalvlaran/gridpath/grid"

// RunGreedy computes a start→finish path expanding whichever open node
// looks closest to the finish. Dist is still tracked (it parents the path
// and marks "seen"), but it plays no part in the ordering.
//
// Preconditions and error surface are identical to RunDijkstra. The Path
// is always contiguous and wall-free when non-empty; only its length is
// unguaranteed.
func RunGreedy(g *grid.Grid, start, finish *grid.Node) (*Result, error) {
	if err := validate(g, start, finish); err != nil {
		return nil, err
	}

	open := newOpenHeap(g.Rows * g.Cols / 2)
	var trace []*grid.Node

	start.Dist = 0
	start.Heur = manhattan(start, finish)
	start.Total = start.Heur
	open.push(start, start.Heur, 0)

	for {
		e := open.pop()
		if e == nil {
			break
		}
		u := e.node
		if u.Visited {
			continue
		}
		u.Visited = true
		trace = append(trace, u)
		if u == finish {
			break
		}

		// First-touch-only relaxation: a node already holding any finite
		// distance keeps its original parent, even if a cheaper route
		// shows up later.
		for _, v := range g.Neighbors(u) {
			if v.Dist != grid.Infinity {
				continue
			}
			v.Dist = u.Dist + 1
			v.Heur = manhattan(v, finish)
			v.Total = v.Dist + v.Heur
			v.Prev = u
			open.push(v, v.Heur, 0)
		}
	}

	return &Result{VisitedOrder: trace, Path: reconstructPath(finish)}, nil
}
