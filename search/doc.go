// Package search implements five interchangeable shortest-path strategies
// over the gridpath grid model, all behind one contract:
//
//	(grid, start, finish) → (visitation order, start→finish path)
//
// What:
//
//   - Dijkstra: uniform-cost frontier, ties by insertion order; the
//     ground-truth oracle for every other strategy.
//   - A*: same mechanics ordered by Dist + Manhattan heuristic, smaller
//     heuristic winning ties; optimal because the heuristic is consistent.
//   - Greedy Best-First: heuristic-only ordering, first-touch-only
//     relaxation; fast, no optimality guarantee.
//   - Bidirectional Swarm: two interleaved A* frontiers with per-side
//     state maps, terminating at the first node both sides have priced.
//   - BMSSP: bounded multi-source divide-and-conquer recursion over a
//     bucketed frontier; matches the oracle's path length on this grid.
//   - Classify: grades any strategy against a fresh Dijkstra rerun on an
//     identical wall configuration (both-empty counts as agreement).
//
// Why:
//
//   - Strategies trade optimality guarantees for speed and exploration
//     pattern; one contract lets callers swap them freely and animate the
//     visitation order externally.
//
// Contract:
//
//   - The caller resets the grid before each run (grid.Grid.Reset);
//     strategies mutate node search fields in place and never allocate a
//     new grid. "No path" is a first-class empty Path, not an error.
//   - Runs are synchronous and single-writer: one run may mutate a grid
//     at a time, and nothing else may edit walls or endpoints while it
//     does.
//
// Complexity (V = cell count; E ≤ 4V on this grid):
//
//   - Dijkstra / A* / Greedy / Swarm: O(V log V) time, O(V) space.
//   - BMSSP: designed around O(E·log^(2/3) V) in the source theory; this
//     implementation keeps the structure but favors clarity over the
//     block-list constants.
//
// Errors:
//
//   - ErrNilGrid, ErrNodeNotFound, ErrWallEndpoint, ErrSameEndpoint:
//     precondition violations, returned before any mutation.
//   - ErrUnknownAlgorithm: Algorithm value outside the closed enum.
//
// See: the grid package for the node model and reset/clone lifecycle.
package search
