package search

import (
	"container/heap"

	"github.com/katalvlaran/gridpath/grid"
)

// entry is one open-set slot: a node plus the ordering keys its strategy
// popped it by. key is the primary ordering (Dist for Dijkstra, Total for
// A*/Swarm, Heur for Greedy); tie is the secondary ordering (A* uses Heur,
// the rest pass 0); seq is the insertion sequence number giving the final,
// stable first-in-first-out tie-break.
type entry struct {
	node  *grid.Node
	key   int
	tie   int
	seq   uint64
	index int // position in the heap slice, maintained by Swap
}

// openHeap is an indexed binary min-heap over grid nodes. The node→entry
// map makes membership O(1) and decrease-key O(log n) via heap.Fix, a
// drop-in replacement for an array-scanned open list that preserves the
// same (key, tie, insertion-order) pop order.
type openHeap struct {
	entries []*entry
	byNode  map[*grid.Node]*entry
	seq     uint64
}

// newOpenHeap returns an empty open set with capacity for hint entries.
func newOpenHeap(hint int) *openHeap {
	return &openHeap{
		entries: make([]*entry, 0, hint),
		byNode:  make(map[*grid.Node]*entry, hint),
	}
}

// Len implements heap.Interface.
func (h *openHeap) Len() int { return len(h.entries) }

// Less implements heap.Interface: key ascending, then tie ascending,
// then insertion order.
func (h *openHeap) Less(i, j int) bool {
	a, b := h.entries[i], h.entries[j]
	if a.key != b.key {
		return a.key < b.key
	}
	if a.tie != b.tie {
		return a.tie < b.tie
	}

	return a.seq < b.seq
}

// Swap implements heap.Interface, keeping each entry's index current.
func (h *openHeap) Swap(i, j int) {
	h.entries[i], h.entries[j] = h.entries[j], h.entries[i]
	h.entries[i].index = i
	h.entries[j].index = j
}

// Push implements heap.Interface; use push instead.
func (h *openHeap) Push(x interface{}) {
	e := x.(*entry)
	e.index = len(h.entries)
	h.entries = append(h.entries, e)
}

// Pop implements heap.Interface; use pop instead.
func (h *openHeap) Pop() interface{} {
	old := h.entries
	n := len(old)
	e := old[n-1]
	old[n-1] = nil
	h.entries = old[:n-1]

	return e
}

// contains reports whether n currently sits in the open set.
func (h *openHeap) contains(n *grid.Node) bool {
	_, ok := h.byNode[n]

	return ok
}

// push inserts n with the given keys, or decreases an existing entry's
// keys in place. A decreased entry keeps its original sequence number, so
// relaxing a node does not demote it behind later insertions with equal
// keys — the same ordering an in-place array update produces.
// Complexity: O(log n).
func (h *openHeap) push(n *grid.Node, key, tie int) {
	if e, ok := h.byNode[n]; ok {
		e.key, e.tie = key, tie
		heap.Fix(h, e.index)

		return
	}
	e := &entry{node: n, key: key, tie: tie, seq: h.seq}
	h.seq++
	h.byNode[n] = e
	heap.Push(h, e)
}

// pop removes and returns the minimum entry, or nil when empty.
// Complexity: O(log n).
func (h *openHeap) pop() *entry {
	if len(h.entries) == 0 {
		return nil
	}
	e := heap.Pop(h).(*entry)
	delete(h.byNode, e.node)

	return e
}
