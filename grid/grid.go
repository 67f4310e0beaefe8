// Package grid provides the mutable node/grid model the search strategies
// operate on: construction, bounds, 4-neighbor adjacency, endpoint and wall
// editing, and the reset/clone lifecycle that separates one run from the next.
package grid

// neighborOffsets enumerates the 4-connected adjacency in a fixed order:
// up, down, left, right. Every traversal uses this slice so that visit
// order, and with it every strategy's trace, stays deterministic.
var neighborOffsets = [4][2]int{{-1, 0}, {1, 0}, {0, -1}, {0, 1}}

// NewGrid constructs a rows×cols grid with all cells open, all search
// fields reset, and the start/finish endpoints placed per opts
// (corners by default).
//
// Returns ErrEmptyGrid if rows < 1 or cols < 1, ErrOutOfBounds if a
// requested endpoint lies outside the rectangle, ErrSameEndpoint if both
// endpoints land on one cell.
// Complexity: O(rows×cols) time and memory.
func NewGrid(rows, cols int, opts ...Option) (*Grid, error) {
	// 1) Validate dimensions before any allocation.
	if rows < 1 || cols < 1 {
		return nil, ErrEmptyGrid
	}

	// 2) Build and validate options.
	cfg := DefaultGridOptions(rows, cols)
	for _, opt := range opts {
		opt(&cfg)
	}

	// 3) Allocate the row-major cell matrix; every node starts open,
	//    unvisited and unreached.
	cells := make([][]*Node, rows)
	for r := 0; r < rows; r++ {
		cells[r] = make([]*Node, cols)
		for c := 0; c < cols; c++ {
			cells[r][c] = &Node{
				Row: r, Col: c,
				Dist: Infinity, Heur: Infinity, Total: Infinity,
			}
		}
	}
	g := &Grid{Rows: rows, Cols: cols, cells: cells}

	// 4) Place endpoints through the validating mutators so that the
	//    one-start/one-finish invariant holds from birth.
	if !g.InBounds(cfg.StartRow, cfg.StartCol) || !g.InBounds(cfg.FinishRow, cfg.FinishCol) {
		return nil, ErrOutOfBounds
	}
	if cfg.StartRow == cfg.FinishRow && cfg.StartCol == cfg.FinishCol {
		return nil, ErrSameEndpoint
	}
	g.start = cells[cfg.StartRow][cfg.StartCol]
	g.start.Start = true
	g.finish = cells[cfg.FinishRow][cfg.FinishCol]
	g.finish.Finish = true

	return g, nil
}

// InBounds reports whether (row, col) lies within the grid rectangle.
// Complexity: O(1).
func (g *Grid) InBounds(row, col int) bool {
	return row >= 0 && row < g.Rows && col >= 0 && col < g.Cols
}

// At returns the node at (row, col), or ErrOutOfBounds.
// The returned pointer is the grid's own node, never a copy.
// Complexity: O(1).
func (g *Grid) At(row, col int) (*Node, error) {
	if !g.InBounds(row, col) {
		return nil, ErrOutOfBounds
	}

	return g.cells[row][col], nil
}

// Start returns the unique start node.
func (g *Grid) Start() *Node { return g.start }

// Finish returns the unique finish node.
func (g *Grid) Finish() *Node { return g.finish }

// Contains reports whether n is one of this grid's own nodes
// (pointer identity, not coordinate equality).
// Complexity: O(1).
func (g *Grid) Contains(n *Node) bool {
	if n == nil || !g.InBounds(n.Row, n.Col) {
		return false
	}

	return g.cells[n.Row][n.Col] == n
}

// Neighbors returns n's traversable 4-neighbors in up, down, left, right
// order. Walls are filtered out here, at the single adjacency chokepoint,
// so no strategy ever sees an edge into or out of a wall.
// Complexity: O(1).
func (g *Grid) Neighbors(n *Node) []*Node {
	out := make([]*Node, 0, 4)
	for _, d := range neighborOffsets {
		r, c := n.Row+d[0], n.Col+d[1]
		if !g.InBounds(r, c) {
			continue
		}
		if nb := g.cells[r][c]; !nb.Wall {
			out = append(out, nb)
		}
	}

	return out
}

// SetWall sets or clears the wall flag at (row, col).
// Returns ErrOutOfBounds for coordinates outside the grid and
// ErrWallEndpoint when asked to wall the start or finish cell.
// Complexity: O(1).
func (g *Grid) SetWall(row, col int, wall bool) error {
	n, err := g.At(row, col)
	if err != nil {
		return err
	}
	if wall && (n.Start || n.Finish) {
		return ErrWallEndpoint
	}
	n.Wall = wall

	return nil
}

// SetStart moves the unique start flag to (row, col).
// Returns ErrOutOfBounds, ErrWallEndpoint (target is a wall) or
// ErrSameEndpoint (target is the finish cell).
// Complexity: O(1).
func (g *Grid) SetStart(row, col int) error {
	n, err := g.At(row, col)
	if err != nil {
		return err
	}
	if n.Wall {
		return ErrWallEndpoint
	}
	if n.Finish {
		return ErrSameEndpoint
	}
	g.start.Start = false
	g.start = n
	n.Start = true

	return nil
}

// SetFinish moves the unique finish flag to (row, col).
// Returns ErrOutOfBounds, ErrWallEndpoint (target is a wall) or
// ErrSameEndpoint (target is the start cell).
// Complexity: O(1).
func (g *Grid) SetFinish(row, col int) error {
	n, err := g.At(row, col)
	if err != nil {
		return err
	}
	if n.Wall {
		return ErrWallEndpoint
	}
	if n.Start {
		return ErrSameEndpoint
	}
	g.finish.Finish = false
	g.finish = n
	n.Finish = true

	return nil
}

// Reset restores every node's search fields to their pre-run values:
// Dist/Heur/Total = Infinity, Visited = false, Prev = nil.
// Wall and endpoint flags are untouched. Callers run Reset before handing
// the grid to a strategy; strategies themselves never reset.
// Complexity: O(rows×cols).
func (g *Grid) Reset() {
	for _, row := range g.cells {
		for _, n := range row {
			n.Visited = false
			n.Dist = Infinity
			n.Heur = Infinity
			n.Total = Infinity
			n.Prev = nil
		}
	}
}

// CloneWalls returns a fresh grid with identical dimensions, wall flags and
// endpoint placement, and pristine search state. The clone shares no nodes
// with the receiver, so an oracle rerun on the clone cannot disturb a
// strategy's result on the original.
// Complexity: O(rows×cols).
func (g *Grid) CloneWalls() *Grid {
	// NewGrid cannot fail here: the receiver already satisfies every
	// constructor precondition.
	clone, _ := NewGrid(g.Rows, g.Cols,
		WithStart(g.start.Row, g.start.Col),
		WithFinish(g.finish.Row, g.finish.Col),
	)
	for _, row := range g.cells {
		for _, n := range row {
			if n.Wall {
				clone.cells[n.Row][n.Col].Wall = true
			}
		}
	}

	return clone
}
