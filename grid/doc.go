// Package grid models a rectangular 4-connected board of unit-cost cells,
// the shared substrate every search strategy in gridpath mutates in place.
//
// What:
//
//   - Node carries immutable identity (Row, Col), board state (Wall,
//     Start, Finish) and per-run search state (Visited, Dist, Heur,
//     Total, Prev).
//   - Grid owns all nodes for its lifetime, enforces the
//     one-start/one-finish invariant, and filters walls out of adjacency
//     at a single chokepoint (Neighbors).
//   - Reset/CloneWalls separate runs: Reset restores search fields in
//     place, CloneWalls yields an independent board with identical walls
//     for oracle reruns.
//   - RandomizeWalls is the maze generator: independent random wall
//     stamping with a seedable source, no coupling to search state.
//
// Why:
//
//   - Strategies relax distances directly on nodes, so the model must
//     guarantee stable node identity and a deterministic neighbor order.
//   - The external editor owns wall/endpoint placement; the model only
//     defends the invariants that would corrupt a run if broken.
//
// Complexity:
//
//   - NewGrid / Reset / CloneWalls / RandomizeWalls: O(rows×cols).
//   - At / InBounds / Neighbors / SetWall / SetStart / SetFinish: O(1).
//
// Errors:
//
//   - ErrEmptyGrid: requested dimensions below 1×1.
//   - ErrOutOfBounds: coordinate outside the rectangle.
//   - ErrWallEndpoint: walling an endpoint, or moving one onto a wall.
//   - ErrSameEndpoint: start and finish on the same cell.
//
// See: the search package for the strategies that consume this model.
package grid
