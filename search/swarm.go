// Bidirectional Swarm: two independent A* frontiers — one rooted at the
// start aiming for the finish, one rooted at the finish aiming for the
// start — advanced alternately inside a single synchronous loop. The run
// ends the moment one side pops a node the other side has already priced,
// and the path is stitched from the two predecessor chains at that
// meeting node.
//
// Each side keeps its own distance/predecessor/closed maps keyed by node
// identity, so the two frontiers never contaminate each other's view of
// the shared grid; the only on-node field Swarm touches is Visited, kept
// for the animation trace. On this unweighted grid the meeting-point
// stitch matches the oracle in practice, but the strategy is a speed
// optimization (smaller combined search volume), not a correctness
// guarantee.

package search

import "github.com/katalvlaran/gridpath/grid"

// RunSwarm computes a start→finish path by meeting in the middle.
// Preconditions and error surface are identical to RunDijkstra; an empty
// Path means one frontier drained before any meeting occurred.
func RunSwarm(g *grid.Grid, start, finish *grid.Node) (*Result, error) {
	if err := validate(g, start, finish); err != nil {
		return nil, err
	}

	r := &swarmRunner{g: g}
	fwd := r.newSide(start, finish)
	bwd := r.newSide(finish, start)

	for fwd.open.Len() > 0 && bwd.open.Len() > 0 {
		// Start side moves first, then the finish side; strict
		// alternation keeps the two search volumes balanced and the
		// trace deterministic.
		if meet := r.step(fwd, bwd); meet != nil {
			return &Result{VisitedOrder: r.trace, Path: stitch(fwd, bwd, meet)}, nil
		}
		if meet := r.step(bwd, fwd); meet != nil {
			return &Result{VisitedOrder: r.trace, Path: stitch(fwd, bwd, meet)}, nil
		}
	}

	// One frontier drained: the endpoints sit in different wall-separated
	// regions and no path exists.
	return &Result{VisitedOrder: r.trace}, nil
}

// swarmRunner holds the state shared by both frontiers of one execution.
type swarmRunner struct {
	g     *grid.Grid
	trace []*grid.Node
}

// swarmSide is one frontier's private view of the grid: its own open set,
// tentative distances, predecessor links and closed markers. The root has
// no predecessor entry — absence is the explicit end-of-chain marker.
type swarmSide struct {
	root, target *grid.Node
	open         *openHeap
	dist         map[*grid.Node]int
	prev         map[*grid.Node]*grid.Node
	closed       map[*grid.Node]bool
}

func (r *swarmRunner) newSide(root, target *grid.Node) *swarmSide {
	s := &swarmSide{
		root:   root,
		target: target,
		open:   newOpenHeap(r.g.Rows * r.g.Cols / 4),
		dist:   map[*grid.Node]int{root: 0},
		prev:   make(map[*grid.Node]*grid.Node),
		closed: make(map[*grid.Node]bool),
	}
	s.open.push(root, manhattan(root, target), manhattan(root, target))

	return s
}

// step pops one node from side, closes it, records it for animation, and
// reports a meeting node if other has already reached it; otherwise it
// relaxes the node's neighbors into side's frontier and returns nil.
func (r *swarmRunner) step(side, other *swarmSide) *grid.Node {
	e := side.open.pop()
	if e == nil {
		return nil
	}
	u := e.node
	side.closed[u] = true
	u.Visited = true
	r.trace = append(r.trace, u)

	// Meeting condition: the other frontier has recorded a finite cost
	// for this exact node (closed there or merely open — either way both
	// chains reach u).
	if _, seen := other.dist[u]; seen {
		return u
	}

	nd := side.dist[u] + 1
	for _, v := range r.g.Neighbors(u) {
		if side.closed[v] {
			continue
		}
		if cur, seen := side.dist[v]; seen && nd >= cur {
			continue
		}
		side.dist[v] = nd
		side.prev[v] = u
		h := manhattan(v, side.target)
		side.open.push(v, nd+h, h)
	}

	return nil
}

// stitch assembles the full path through meet: the forward chain walked
// back to the start and reversed, then the backward chain followed out to
// the finish. Both walks rely on the absent-entry root marker, so no
// self-referential sentinel is needed to stop them.
func stitch(fwd, bwd *swarmSide, meet *grid.Node) []*grid.Node {
	var path []*grid.Node
	for n := meet; n != nil; n = fwd.prev[n] {
		path = append(path, n)
		if n == fwd.root {
			break
		}
	}
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}
	for n := bwd.prev[meet]; n != nil; n = bwd.prev[n] {
		path = append(path, n)
		if n == bwd.root {
			break
		}
	}

	return path
}
