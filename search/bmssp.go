// BMSSP: bounded multi-source shortest path, a divide-and-conquer search
// that recursively finalizes nodes under a distance ceiling B. Each level
// runs a pivot-selection pass (bounded 1-hop relaxation rounds), pulls
// batches of the cheapest frontier entries from a bucketed structure D,
// recurses one level down on each batch, and routes freshly relaxed
// neighbors back into D or into a cheap batch-prepend side list according
// to which distance window they fall in. Level 0 is a mini-Dijkstra capped
// at k+1 finalized nodes.
//
// Parameters derive once from the cell count N:
//
//	k = ⌊log₂(N)^(1/3)⌋ (≥ 2)   pivot rounds / base-case budget
//	t = ⌊log₂(N)^(2/3)⌋ (≥ 2)   per-level batch exponent
//	l = ⌈log₂(N) / t⌉   (≥ 1)   recursion depth
//
// All per-invocation state (parameters, grid, trace) lives on a runner
// threaded through the recursion, so overlapping or repeated invocations
// cannot interfere through shared globals.

package search

import (
	"math"

	"github.com/katalvlaran/gridpath/grid"
)

// RunBMSSP computes the shortest start→finish path via the bounded
// recursion, then reconstructs the path from Prev links exactly as
// Dijkstra does. On an unweighted grid the finalized distances equal
// Dijkstra's, so the returned path length matches the oracle whenever a
// path exists, and the empty result agrees with the oracle when none does.
//
// VisitedOrder for this strategy records both probing touches (a node
// relaxed before being finalized) and finalizations, so a node may appear
// more than once; external animation of "seen" versus "settled" relies on
// that distinction.
//
// Preconditions and error surface are identical to RunDijkstra.
func RunBMSSP(g *grid.Grid, start, finish *grid.Node) (*Result, error) {
	if err := validate(g, start, finish); err != nil {
		return nil, err
	}

	r := newBMSSPRunner(g)
	start.Dist = 0
	r.recurse(r.levels, grid.Infinity, []*grid.Node{start})

	return &Result{VisitedOrder: r.trace, Path: reconstructPath(finish)}, nil
}

// bmsspRunner carries one invocation's parameters and trace through the
// recursion. Nothing here outlives the call that created it.
type bmsspRunner struct {
	g      *grid.Grid
	k      int // pivot-round and base-case closure budget
	t      int // batch-size exponent per recursion level
	levels int // total recursion depth l
	trace  []*grid.Node
}

// newBMSSPRunner derives k, t and l from the grid's cell count.
func newBMSSPRunner(g *grid.Grid) *bmsspRunner {
	n := g.Rows * g.Cols
	lg := math.Log2(float64(n))
	if lg < 1 {
		lg = 1
	}

	k := int(math.Floor(math.Cbrt(lg)))
	if k < 2 {
		k = 2
	}
	t := int(math.Floor(math.Pow(lg, 2.0/3.0)))
	if t < 2 {
		t = 2
	}
	l := int(math.Ceil(lg / float64(t)))
	if l < 1 {
		l = 1
	}

	return &bmsspRunner{g: g, k: k, t: t, levels: l}
}

// pow2 returns min(2^exp, cap), guarding the shift against pathological
// exponents; no batch or workload limit ever needs to exceed the cell
// count anyway.
func pow2(exp, capacity int) int {
	if exp < 0 {
		exp = 0
	}
	if exp > 30 || 1<<uint(exp) > capacity {
		return capacity
	}

	return 1 << uint(exp)
}

// touch appends a probing event for a not-yet-finalized node to the trace.
func (r *bmsspRunner) touch(v *grid.Node) {
	if !v.Visited {
		r.trace = append(r.trace, v)
	}
}

// finalize closes u and appends its finalization event to the trace.
func (r *bmsspRunner) finalize(u *grid.Node) {
	u.Visited = true
	r.trace = append(r.trace, u)
}

// findPivots performs up to k rounds of bounded 1-hop relaxation from S,
// growing the witness set W (which starts as S). If W outgrows k·|S| the
// pass aborts early: this level cannot usefully compress the problem, and
// the caller proceeds with the sources themselves as pivots. Either way S
// is returned as the pivot set together with the accumulated witnesses.
func (r *bmsspRunner) findPivots(bound int, sources []*grid.Node) (pivots, witnesses []*grid.Node) {
	inW := make(map[*grid.Node]bool, len(sources))
	witnesses = append(witnesses, sources...)
	for _, s := range sources {
		inW[s] = true
	}

	frontier := sources
	for round := 0; round < r.k && len(frontier) > 0; round++ {
		var next []*grid.Node
		for _, u := range frontier {
			if u.Dist == grid.Infinity {
				continue
			}
			nd := u.Dist + 1
			for _, v := range r.g.Neighbors(u) {
				if nd >= v.Dist || nd >= bound {
					continue
				}
				v.Dist = nd
				v.Prev = u
				r.touch(v)
				if !inW[v] {
					inW[v] = true
					witnesses = append(witnesses, v)
					next = append(next, v)
				}
			}
		}
		frontier = next
		if len(witnesses) > r.k*len(sources) {
			break // witness blow-up: abort the compression attempt
		}
	}

	return sources, witnesses
}

// baseCase is the recursion's leaf: a mini-Dijkstra from the given sources
// bounded by B and capped at k+1 finalized nodes. With at most k closures
// it returns (B, closed) unchanged; past the cap it tightens the boundary
// to the maximum finalized distance and keeps only the nodes strictly
// below it, which is what bounds each call to O(k) finalized nodes.
//
// Every node a Dijkstra closes carries its true shortest distance
// regardless of when the loop stops, so when tightening would discard the
// whole set (all closures at one distance) the boundary moves just above
// that distance instead and the set is kept — discarding it would hand the
// caller back exactly the subproblem it delegated.
func (r *bmsspRunner) baseCase(bound int, sources []*grid.Node) (int, []*grid.Node) {
	open := newOpenHeap(len(sources) * 2)
	for _, s := range sources {
		if !s.Visited && s.Dist < bound {
			open.push(s, s.Dist, 0)
		}
	}

	var closed []*grid.Node
	for open.Len() > 0 && len(closed) < r.k+1 {
		e := open.pop()
		u := e.node
		if u.Visited {
			continue
		}
		if u.Dist >= bound {
			break // nothing strictly below B remains
		}
		r.finalize(u)
		closed = append(closed, u)

		nd := u.Dist + 1
		for _, v := range r.g.Neighbors(u) {
			if nd < v.Dist && nd < bound {
				v.Dist = nd
				v.Prev = u
				open.push(v, nd, 0)
			}
		}
	}

	if len(closed) <= r.k {
		return bound, closed
	}

	tight := 0
	for _, u := range closed {
		if u.Dist > tight {
			tight = u.Dist
		}
	}
	kept := make([]*grid.Node, 0, len(closed))
	for _, u := range closed {
		if u.Dist < tight {
			kept = append(kept, u)
		}
	}
	if len(kept) == 0 {
		// All closures share one distance; keep them under a boundary one
		// past it (still ≤ B, every closure was strictly below B).
		return tight + 1, closed
	}
	for _, u := range closed {
		if u.Dist == tight {
			u.Visited = false // re-finalized later through the side list
		}
	}

	return tight, kept
}

// recurse is BMSSPRecursive(level, B, S): delegate to baseCase at level 0,
// otherwise drive the bucketed frontier D through batch pulls and
// one-level-down recursions until the workload limit k·2^(level·t) is hit
// or D drains. Returns the running bound B' and the set U of nodes
// finalized under it.
func (r *bmsspRunner) recurse(level, bound int, sources []*grid.Node) (int, []*grid.Node) {
	if level == 0 {
		return r.baseCase(bound, sources)
	}

	cells := r.g.Rows * r.g.Cols
	pivots, witnesses := r.findPivots(bound, sources)

	// Seed D with the pivots' current distances.
	d := newBucketQueue(pow2((level-1)*r.t, cells), bound)
	running := bound // B': min pivot distance, or B when no pivot seeds
	for _, p := range pivots {
		if p.Visited || p.Dist >= bound {
			continue
		}
		d.insert(p, p.Dist)
		if p.Dist < running {
			running = p.Dist
		}
	}

	limit := r.k * pow2(level*r.t, cells)
	var settled []*grid.Node
	for len(settled) < limit && !d.empty() {
		batch, sub := d.pull()
		subBound, part := r.recurse(level-1, sub, batch)
		running = subBound
		settled = append(settled, part...)

		// Relax out of the freshly finalized nodes. A neighbor priced at
		// exactly nd was discovered inside the sub-call without being
		// finalized there, so the equal case re-routes it; dropping it
		// would strand a correctly priced node outside every frontier.
		var side []bucketEntry
		for _, u := range part {
			nd := u.Dist + 1
			for _, v := range r.g.Neighbors(u) {
				if nd > v.Dist {
					continue
				}
				if nd < v.Dist {
					v.Dist = nd
					v.Prev = u
					r.touch(v)
				}
				if v.Visited {
					continue // settled nodes are never re-routed
				}
				switch {
				case nd >= sub && nd < bound:
					d.insert(v, nd)
				case nd < sub:
					// Nominally the [B'ᵢ, Bᵢ) window; anything cheaper
					// still satisfies the prepend contract and must not
					// be stranded outside every frontier.
					side = append(side, bucketEntry{node: v, val: nd})
				}
			}
		}
		// Batch members the sub-call left unfinalized in [B'ᵢ, Bᵢ) go
		// back in through the cheap prepend path as well.
		for _, x := range batch {
			if !x.Visited && x.Dist < sub {
				side = append(side, bucketEntry{node: x, val: x.Dist})
			}
		}
		d.batchPrepend(side)
	}
	if d.empty() {
		running = bound // clean completion: nothing under B was cut off
	}

	// Witnesses already priced under the running bound are final.
	for _, w := range witnesses {
		if !w.Visited && w.Dist < running {
			r.finalize(w)
			settled = append(settled, w)
		}
	}

	return running, settled
}
