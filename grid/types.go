// Package grid defines core types, options, and sentinel errors
// for the grid subpackage of github.com/katalvlaran/gridpath.
package grid

import (
	"errors"
	"math"
)

// Infinity is the sentinel distance for an unreached node.
// A Dist/Total of Infinity always means "no finite route known yet".
const Infinity = math.MaxInt

// Sentinel errors for grid operations.
var (
	// ErrEmptyGrid indicates requested dimensions below 1×1.
	ErrEmptyGrid = errors.New("grid: dimensions must be at least 1×1")
	// ErrOutOfBounds indicates a coordinate outside the grid rectangle.
	ErrOutOfBounds = errors.New("grid: coordinate out of bounds")
	// ErrWallEndpoint indicates an attempt to wall the start or finish cell,
	// or to move an endpoint onto a wall.
	ErrWallEndpoint = errors.New("grid: start and finish cells must stay open")
	// ErrSameEndpoint indicates start and finish placed on the same cell.
	ErrSameEndpoint = errors.New("grid: start and finish must be distinct cells")
)

// Node is a single grid cell. Row/Col are its immutable identity; the grid
// owns every Node for its whole lifetime and never re-identifies one.
//
// Wall, Start and Finish are board state, set between runs by the caller.
// Visited, Dist, Heur, Total and Prev are per-run search state, mutated in
// place by the search strategies and restored by Grid.Reset. Prev is a
// back-reference only: a nil Prev marks the root of a predecessor chain.
type Node struct {
	Row, Col int // coordinates within the grid (identity)

	Wall   bool // impassable cell; filtered out of all adjacency
	Start  bool // exactly one node per grid
	Finish bool // exactly one node per grid

	Visited bool  // finalized (closed) during the current run
	Dist    int   // best known cost from the run's source; Infinity = unreached
	Heur    int   // estimated cost to target (Manhattan); Infinity until computed
	Total   int   // Dist + Heur, the A*-family ordering key
	Prev    *Node // predecessor on the best known route; nil at chain roots
}

// GridOptions contains tunable parameters for grid construction.
type GridOptions struct {
	// StartRow/StartCol place the unique start cell. Default (0, 0).
	StartRow, StartCol int
	// FinishRow/FinishCol place the unique finish cell.
	// Default (rows-1, cols-1).
	FinishRow, FinishCol int

	haveStart, haveFinish bool
}

// Option represents a functional option for configuring NewGrid.
type Option func(*GridOptions)

// WithStart places the start cell at (row, col).
// Coordinates are validated against the grid inside NewGrid.
func WithStart(row, col int) Option {
	return func(o *GridOptions) {
		o.StartRow, o.StartCol = row, col
		o.haveStart = true
	}
}

// WithFinish places the finish cell at (row, col).
// Coordinates are validated against the grid inside NewGrid.
func WithFinish(row, col int) Option {
	return func(o *GridOptions) {
		o.FinishRow, o.FinishCol = row, col
		o.haveFinish = true
	}
}

// DefaultGridOptions returns a GridOptions with default endpoint placement
// for a rows×cols grid: start at (0,0), finish at (rows-1, cols-1).
func DefaultGridOptions(rows, cols int) GridOptions {
	return GridOptions{
		StartRow: 0, StartCol: 0,
		FinishRow: rows - 1, FinishCol: cols - 1,
	}
}

// Grid is a fixed-size row-major collection of Nodes. Dimensions are
// constant for the Grid's lifetime; wall and endpoint flags are mutable
// between runs, search fields are mutable within a run.
//
// Invariants maintained by the mutators:
//   - exactly one node has Start=true and exactly one has Finish=true;
//   - neither endpoint is ever a wall;
//   - Neighbors never yields a wall, so walls have no traversable edges
//     in either direction.
type Grid struct {
	Rows, Cols int

	cells  [][]*Node
	start  *Node
	finish *Node
}
