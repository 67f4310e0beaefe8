// A*: Dijkstra's frontier mechanics with the ordering key changed to
// Total = Dist + Manhattan heuristic. The heuristic is consistent on a
// unit-cost 4-connected grid, so a node closed once is closed for good —
// re-opening is never required and the Visited check stays exact.

package search

import "github.com/katalvlaran/gridpath/grid"

// RunAStar computes the shortest start→finish path ordering the frontier
// by Total = Dist + Heur, with the smaller heuristic winning among equal
// totals (among equally-costed candidates, prefer the one nearer the
// goal) and insertion order settling full ties.
//
// Optimality is guaranteed: Manhattan distance never overestimates the
// true remaining cost on this grid. Preconditions and error surface are
// identical to RunDijkstra.
func RunAStar(g *grid.Grid, start, finish *grid.Node) (*Result, error) {
	if err := validate(g, start, finish); err != nil {
		return nil, err
	}

	r := &astarRunner{
		g:      g,
		finish: finish,
		open:   newOpenHeap(g.Rows * g.Cols / 2),
	}
	r.init(start)
	r.process()

	return &Result{VisitedOrder: r.trace, Path: reconstructPath(finish)}, nil
}

// astarRunner holds the mutable state for a single A* execution.
type astarRunner struct {
	g      *grid.Grid
	finish *grid.Node
	open   *openHeap
	trace  []*grid.Node
}

func (r *astarRunner) init(start *grid.Node) {
	start.Dist = 0
	start.Heur = manhattan(start, r.finish)
	start.Total = start.Heur
	r.open.push(start, start.Total, start.Heur)
}

func (r *astarRunner) process() {
	for {
		e := r.open.pop()
		if e == nil {
			return
		}
		u := e.node
		if u.Visited {
			continue
		}
		u.Visited = true
		r.trace = append(r.trace, u)
		if u == r.finish {
			return
		}
		r.relax(u)
	}
}

// relax recomputes a neighbor's heuristic and total whenever its distance
// improves, then inserts or decrease-keys it in the open set.
func (r *astarRunner) relax(u *grid.Node) {
	nd := u.Dist + 1
	for _, v := range r.g.Neighbors(u) {
		if nd >= v.Dist {
			continue
		}
		v.Dist = nd
		v.Heur = manhattan(v, r.finish)
		v.Total = nd + v.Heur
		v.Prev = u
		r.open.push(v, v.Total, v.Heur)
	}
}
