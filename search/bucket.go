package search

import (
	"sort"

	"github.com/katalvlaran/gridpath/grid"
)

// bucketEntry pairs a node with the frontier value it was filed under.
type bucketEntry struct {
	node *grid.Node
	val  int
}

// bucketQueue is the bounded frontier structure D of the BMSSP engine:
// a priority structure with a batched-pop contract. It keeps at most one
// entry per node (the best value seen), hands out the up-to-M smallest
// entries per pull together with the next separating boundary, and
// accepts bulk prepends of entries known to sit at or below the current
// minimum.
//
// The backing store is a single value-sorted slice. The block-list layout
// that makes batchPrepend O(1)-amortized in the source theory is not
// needed for correctness, only for the asymptotic claim, so the simpler
// slice is used and removal scans linearly — fine at the few-thousand-cell
// scale this engine targets.
type bucketQueue struct {
	batch   int // M: nominal maximum entries per pull
	bound   int // outer bound B, the boundary reported once drained
	entries []bucketEntry
	best    map[*grid.Node]int
}

// newBucketQueue returns an empty frontier with pull size m and outer
// bound b.
func newBucketQueue(m, b int) *bucketQueue {
	return &bucketQueue{
		batch: m,
		bound: b,
		best:  make(map[*grid.Node]int),
	}
}

func (d *bucketQueue) len() int    { return len(d.entries) }
func (d *bucketQueue) empty() bool { return len(d.entries) == 0 }

// insert files n under val, keeping only the best value per node: a
// strictly worse existing entry is removed first, a better-or-equal one
// makes the call a no-op.
// Complexity: O(n) worst case for the displacement scan, O(log n) search.
func (d *bucketQueue) insert(n *grid.Node, val int) {
	if cur, ok := d.best[n]; ok {
		if cur <= val {
			return
		}
		d.remove(n)
	}
	d.best[n] = val
	// Equal values file after existing ones: stable insertion order.
	i := sort.Search(len(d.entries), func(i int) bool { return d.entries[i].val > val })
	d.entries = append(d.entries, bucketEntry{})
	copy(d.entries[i+1:], d.entries[i:])
	d.entries[i] = bucketEntry{node: n, val: val}
}

// remove drops n's current entry. Caller guarantees membership.
func (d *bucketQueue) remove(n *grid.Node) {
	for i := range d.entries {
		if d.entries[i].node == n {
			d.entries = append(d.entries[:i], d.entries[i+1:]...)
			break
		}
	}
	delete(d.best, n)
}

// pull removes and returns the smallest entries plus the next boundary:
// the minimum value still filed, or the outer bound when the pull drained
// the structure.
//
// The batch nominally holds M entries but is extended across a run of
// equal values, so every returned value is strictly below the returned
// boundary. Without the extension a value tie split at the batch edge
// would hand the recursion a sub-bound equal to its inputs, which can
// finalize nothing and loop.
func (d *bucketQueue) pull() ([]*grid.Node, int) {
	m := d.batch
	if m > len(d.entries) {
		m = len(d.entries)
	}
	for m > 0 && m < len(d.entries) && d.entries[m].val == d.entries[m-1].val {
		m++
	}

	out := make([]*grid.Node, m)
	for i := 0; i < m; i++ {
		out[i] = d.entries[i].node
		delete(d.best, d.entries[i].node)
	}
	d.entries = d.entries[m:]

	if len(d.entries) == 0 {
		return out, d.bound
	}

	return out, d.entries[0].val
}

// batchPrepend bulk-inserts entries whose values are no larger than the
// structure's current minimum, the cheap reinsertion path of the BMSSP
// loop. Per-node best semantics still hold; prepended entries file before
// existing equal values.
func (d *bucketQueue) batchPrepend(batch []bucketEntry) {
	if len(batch) == 0 {
		return
	}
	// Keep only entries that beat whatever is already filed, deduping the
	// batch itself along the way (best value per node wins).
	seen := make(map[*grid.Node]int, len(batch))
	for _, e := range batch {
		if cur, ok := d.best[e.node]; ok && cur <= e.val {
			continue
		}
		if cur, ok := seen[e.node]; !ok || e.val < cur {
			seen[e.node] = e.val
		}
	}
	keep := make([]bucketEntry, 0, len(seen))
	for _, e := range batch {
		if val, ok := seen[e.node]; ok && val == e.val {
			delete(seen, e.node)
			if _, filed := d.best[e.node]; filed {
				d.remove(e.node)
			}
			d.best[e.node] = val
			keep = append(keep, bucketEntry{node: e.node, val: val})
		}
	}
	sort.SliceStable(keep, func(i, j int) bool { return keep[i].val < keep[j].val })

	merged := make([]bucketEntry, 0, len(keep)+len(d.entries))
	i, j := 0, 0
	for i < len(keep) && j < len(d.entries) {
		// Prepend semantics: the new entry wins value ties.
		if keep[i].val <= d.entries[j].val {
			merged = append(merged, keep[i])
			i++
		} else {
			merged = append(merged, d.entries[j])
			j++
		}
	}
	merged = append(merged, keep[i:]...)
	merged = append(merged, d.entries[j:]...)
	d.entries = merged
}
