// Package search defines the shared contract, sentinel errors, and the
// closed algorithm enumeration for the search subpackage of
// github.com/katalvlaran/gridpath.
package search

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/gridpath/grid"
)

// Sentinel errors shared by all search strategies.
var (
	// ErrNilGrid indicates a nil *grid.Grid was passed to a strategy.
	ErrNilGrid = errors.New("search: grid is nil")
	// ErrNodeNotFound indicates start or finish is nil or not owned by the grid.
	ErrNodeNotFound = errors.New("search: node does not belong to grid")
	// ErrWallEndpoint indicates start or finish is a wall cell.
	ErrWallEndpoint = errors.New("search: start and finish must not be walls")
	// ErrSameEndpoint indicates start and finish are the same node.
	ErrSameEndpoint = errors.New("search: start and finish must be distinct")
	// ErrUnknownAlgorithm indicates an Algorithm value outside the closed set.
	ErrUnknownAlgorithm = errors.New("search: unknown algorithm")
)

// Result is the uniform output of every strategy.
//
// VisitedOrder is the exploration trace in the exact order nodes were
// processed, kept so an external driver can animate a run step by step.
// For BMSSP it records both probing touches and finalizations, so one node
// may appear more than once; for every other strategy each node appears at
// most once.
//
// Path runs start→finish inclusive. An empty Path is the first-class
// "no route exists" result, never an error.
type Result struct {
	VisitedOrder []*grid.Node
	Path         []*grid.Node
}

// Found reports whether the run reached the finish node.
func (r *Result) Found() bool { return len(r.Path) > 0 }

// PathLen returns the number of nodes on the path (0 when unreachable).
func (r *Result) PathLen() int { return len(r.Path) }

// Algorithm selects one of the five search strategies. The set is closed:
// dispatch is a switch over these constants, not a registry lookup.
type Algorithm int

const (
	// Dijkstra is the uniform-cost search and the ground-truth oracle.
	Dijkstra Algorithm = iota
	// AStar orders the frontier by Dist + Manhattan heuristic.
	AStar
	// GreedyBestFirst orders by heuristic alone; no optimality guarantee.
	GreedyBestFirst
	// BidirectionalSwarm runs interleaved A* frontiers from both endpoints.
	BidirectionalSwarm
	// BMSSP is the bounded multi-source divide-and-conquer search.
	BMSSP
)

// String implements fmt.Stringer with the tags ParseAlgorithm accepts.
func (a Algorithm) String() string {
	switch a {
	case Dijkstra:
		return "dijkstra"
	case AStar:
		return "astar"
	case GreedyBestFirst:
		return "greedy"
	case BidirectionalSwarm:
		return "swarm"
	case BMSSP:
		return "bmssp"
	default:
		return fmt.Sprintf("Algorithm(%d)", int(a))
	}
}

// Algorithms returns all five strategies in declaration order.
func Algorithms() []Algorithm {
	return []Algorithm{Dijkstra, AStar, GreedyBestFirst, BidirectionalSwarm, BMSSP}
}

// ParseAlgorithm maps a tag produced by Algorithm.String back to its
// Algorithm. Returns ErrUnknownAlgorithm for anything else.
func ParseAlgorithm(tag string) (Algorithm, error) {
	for _, a := range Algorithms() {
		if a.String() == tag {
			return a, nil
		}
	}

	return 0, fmt.Errorf("%w: %q", ErrUnknownAlgorithm, tag)
}

// Run dispatches to the strategy selected by alg. Every strategy obeys the
// same contract: it validates its inputs, mutates node search fields in
// place (the caller resets beforehand), and returns the visitation trace
// plus the start→finish path (empty when unreachable).
func Run(alg Algorithm, g *grid.Grid, start, finish *grid.Node) (*Result, error) {
	switch alg {
	case Dijkstra:
		return RunDijkstra(g, start, finish)
	case AStar:
		return RunAStar(g, start, finish)
	case GreedyBestFirst:
		return RunGreedy(g, start, finish)
	case BidirectionalSwarm:
		return RunSwarm(g, start, finish)
	case BMSSP:
		return RunBMSSP(g, start, finish)
	default:
		return nil, fmt.Errorf("%w: %d", ErrUnknownAlgorithm, int(alg))
	}
}
