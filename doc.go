// Package gridpath is an in-memory shortest-path engine for rectangular
// grids: one shared grid/node model, one uniform search contract, and five
// interchangeable strategies that trade optimality for speed.
//
// 🚀 What is gridpath?
//
//	A small, synchronous library that brings together:
//		• grid/   — the Node/Grid model, 4-neighbor adjacency, reset/clone
//		            lifecycle and a random maze generator
//		• search/ — five strategies behind one contract:
//		            Dijkstra (the ground-truth oracle), A*, Greedy
//		            Best-First, Bidirectional Swarm and BMSSP (bounded
//		            multi-source divide-and-conquer shortest path),
//		            plus oracle classification of any run
//
// ✨ Why choose gridpath?
//
//   - One contract – every strategy is (grid, start, finish) →
//     (visitation order, path), so callers swap algorithms freely
//   - Honest results – "no path" is a first-class empty result, and
//     Classify grades any strategy against a fresh Dijkstra rerun
//   - Pure engine – no rendering, no timers, no persistence; the
//     visitation order exists so an external driver can animate it
//
// Quick ASCII example:
//
//	    S . . # .
//	    . # . # .
//	    . # . . F
//
//	'S' start, 'F' finish, '#' wall; edges are unit-cost and orthogonal.
//
// Dive into each package's doc.go for contracts, complexity notes and the
// full error surface.
//
//	go get github.com/katalvlaran/gridpath
package gridpath
