package grid_test

import (
	"errors"
	"testing"

	"github.com/katalvlaran/gridpath/grid"
)

//----------------------------------------------------------------------------//
// NewGrid and InBounds Tests
//----------------------------------------------------------------------------//

// TestNewGrid_Errors verifies that NewGrid rejects degenerate dimensions
// and bad endpoint placement.
func TestNewGrid_Errors(t *testing.T) {
	cases := []struct {
		name string
		rows int
		cols int
		opts []grid.Option
		err  error
	}{
		{"ZeroRows", 0, 5, nil, grid.ErrEmptyGrid},
		{"ZeroCols", 5, 0, nil, grid.ErrEmptyGrid},
		{"NegativeRows", -1, 5, nil, grid.ErrEmptyGrid},
		{"StartOutOfBounds", 3, 3, []grid.Option{grid.WithStart(3, 0)}, grid.ErrOutOfBounds},
		{"FinishOutOfBounds", 3, 3, []grid.Option{grid.WithFinish(0, 9)}, grid.ErrOutOfBounds},
		{"CoincidentEndpoints", 3, 3, []grid.Option{grid.WithStart(1, 1), grid.WithFinish(1, 1)}, grid.ErrSameEndpoint},
		{"SingleCell", 1, 1, nil, grid.ErrSameEndpoint},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := grid.NewGrid(tc.rows, tc.cols, tc.opts...)
			if !errors.Is(err, tc.err) {
				t.Errorf("NewGrid(%d,%d) error = %v; want %v", tc.rows, tc.cols, err, tc.err)
			}
		})
	}
}

// TestNewGrid_Defaults checks default corner endpoints and pristine
// search state on a fresh grid.
func TestNewGrid_Defaults(t *testing.T) {
	g, err := grid.NewGrid(3, 4)
	if err != nil {
		t.Fatalf("NewGrid error: %v", err)
	}
	if s := g.Start(); s.Row != 0 || s.Col != 0 || !s.Start {
		t.Errorf("Start = (%d,%d); want (0,0)", s.Row, s.Col)
	}
	if f := g.Finish(); f.Row != 2 || f.Col != 3 || !f.Finish {
		t.Errorf("Finish = (%d,%d); want (2,3)", f.Row, f.Col)
	}
	for row := 0; row < g.Rows; row++ {
		for col := 0; col < g.Cols; col++ {
			n, err := g.At(row, col)
			if err != nil {
				t.Fatalf("At(%d,%d) error: %v", row, col, err)
			}
			if n.Dist != grid.Infinity || n.Visited || n.Prev != nil || n.Wall {
				t.Errorf("node (%d,%d) not pristine: %+v", row, col, n)
			}
		}
	}
}

// TestInBounds checks the rectangle boundary on a 2×3 grid.
func TestInBounds(t *testing.T) {
	g, err := grid.NewGrid(2, 3)
	if err != nil {
		t.Fatalf("NewGrid error: %v", err)
	}

	valid := [][2]int{{0, 0}, {1, 2}, {0, 2}, {1, 0}}
	for _, rc := range valid {
		if !g.InBounds(rc[0], rc[1]) {
			t.Errorf("InBounds(%d,%d)=false; want true", rc[0], rc[1])
		}
	}
	invalid := [][2]int{{-1, 0}, {2, 0}, {0, 3}, {0, -1}}
	for _, rc := range invalid {
		if g.InBounds(rc[0], rc[1]) {
			t.Errorf("InBounds(%d,%d)=true; want false", rc[0], rc[1])
		}
	}
}

//----------------------------------------------------------------------------//
// Neighbors Tests
//----------------------------------------------------------------------------//

// TestNeighbors_OrderAndBounds verifies the up, down, left, right
// enumeration order and corner clipping.
func TestNeighbors_OrderAndBounds(t *testing.T) {
	g, err := grid.NewGrid(3, 3)
	if err != nil {
		t.Fatalf("NewGrid error: %v", err)
	}

	center, _ := g.At(1, 1)
	got := g.Neighbors(center)
	want := [][2]int{{0, 1}, {2, 1}, {1, 0}, {1, 2}}
	if len(got) != len(want) {
		t.Fatalf("Neighbors(center) count = %d; want %d", len(got), len(want))
	}
	for i, n := range got {
		if n.Row != want[i][0] || n.Col != want[i][1] {
			t.Errorf("Neighbors[%d] = (%d,%d); want (%d,%d)", i, n.Row, n.Col, want[i][0], want[i][1])
		}
	}

	corner, _ := g.At(0, 0)
	if len(g.Neighbors(corner)) != 2 {
		t.Errorf("Neighbors(corner) count = %d; want 2", len(g.Neighbors(corner)))
	}
}

// TestNeighbors_FiltersWalls verifies that a walled cell never appears in
// any adjacency list.
func TestNeighbors_FiltersWalls(t *testing.T) {
	g, err := grid.NewGrid(3, 3)
	if err != nil {
		t.Fatalf("NewGrid error: %v", err)
	}
	if err = g.SetWall(0, 1, true); err != nil {
		t.Fatalf("SetWall error: %v", err)
	}

	center, _ := g.At(1, 1)
	for _, n := range g.Neighbors(center) {
		if n.Wall {
			t.Errorf("Neighbors yielded wall at (%d,%d)", n.Row, n.Col)
		}
	}
	if len(g.Neighbors(center)) != 3 {
		t.Errorf("Neighbors(center) count = %d; want 3 with one wall", len(g.Neighbors(center)))
	}
}

//----------------------------------------------------------------------------//
// Mutator Invariant Tests
//----------------------------------------------------------------------------//

// TestSetWall_ProtectsEndpoints verifies ErrWallEndpoint on both endpoints
// and ErrOutOfBounds outside the rectangle.
func TestSetWall_ProtectsEndpoints(t *testing.T) {
	g, _ := grid.NewGrid(2, 2)
	if err := g.SetWall(0, 0, true); !errors.Is(err, grid.ErrWallEndpoint) {
		t.Errorf("SetWall(start) error = %v; want ErrWallEndpoint", err)
	}
	if err := g.SetWall(1, 1, true); !errors.Is(err, grid.ErrWallEndpoint) {
		t.Errorf("SetWall(finish) error = %v; want ErrWallEndpoint", err)
	}
	if err := g.SetWall(5, 5, true); !errors.Is(err, grid.ErrOutOfBounds) {
		t.Errorf("SetWall(out) error = %v; want ErrOutOfBounds", err)
	}
	// Clearing a wall is always allowed on non-endpoint cells.
	if err := g.SetWall(0, 1, true); err != nil {
		t.Errorf("SetWall(open cell) error = %v; want nil", err)
	}
	if err := g.SetWall(0, 1, false); err != nil {
		t.Errorf("SetWall(clear) error = %v; want nil", err)
	}
}

// TestSetStart_MovesUniqueFlag verifies the one-start invariant across
// moves, plus wall and coincidence rejections.
func TestSetStart_MovesUniqueFlag(t *testing.T) {
	g, _ := grid.NewGrid(3, 3)
	if err := g.SetStart(1, 1); err != nil {
		t.Fatalf("SetStart error: %v", err)
	}
	old, _ := g.At(0, 0)
	if old.Start {
		t.Error("old start cell still flagged after move")
	}
	if s := g.Start(); s.Row != 1 || s.Col != 1 {
		t.Errorf("Start = (%d,%d); want (1,1)", s.Row, s.Col)
	}

	_ = g.SetWall(0, 1, true)
	if err := g.SetStart(0, 1); !errors.Is(err, grid.ErrWallEndpoint) {
		t.Errorf("SetStart(wall) error = %v; want ErrWallEndpoint", err)
	}
	if err := g.SetStart(2, 2); !errors.Is(err, grid.ErrSameEndpoint) {
		t.Errorf("SetStart(finish cell) error = %v; want ErrSameEndpoint", err)
	}
}

//----------------------------------------------------------------------------//
// Lifecycle Tests
//----------------------------------------------------------------------------//

// TestReset_RestoresSearchFields verifies that Reset clears search state
// and preserves board state.
func TestReset_RestoresSearchFields(t *testing.T) {
	g, _ := grid.NewGrid(2, 3)
	_ = g.SetWall(0, 1, true)

	n, _ := g.At(1, 1)
	n.Dist, n.Heur, n.Total = 4, 2, 6
	n.Visited = true
	n.Prev = g.Start()

	g.Reset()

	if n.Dist != grid.Infinity || n.Heur != grid.Infinity || n.Total != grid.Infinity {
		t.Errorf("distances not restored: %+v", n)
	}
	if n.Visited || n.Prev != nil {
		t.Errorf("visited/prev not restored: %+v", n)
	}
	w, _ := g.At(0, 1)
	if !w.Wall {
		t.Error("Reset cleared a wall flag")
	}
	if !g.Start().Start || !g.Finish().Finish {
		t.Error("Reset disturbed endpoint flags")
	}
}

// TestCloneWalls_Independence verifies identical board state on disjoint
// node sets.
func TestCloneWalls_Independence(t *testing.T) {
	g, _ := grid.NewGrid(3, 3, grid.WithStart(0, 2), grid.WithFinish(2, 0))
	_ = g.SetWall(1, 1, true)

	c := g.CloneWalls()
	if c.Rows != g.Rows || c.Cols != g.Cols {
		t.Fatalf("clone dimensions = %d×%d; want %d×%d", c.Rows, c.Cols, g.Rows, g.Cols)
	}
	if s := c.Start(); s.Row != 0 || s.Col != 2 {
		t.Errorf("clone start = (%d,%d); want (0,2)", s.Row, s.Col)
	}
	cw, _ := c.At(1, 1)
	if !cw.Wall {
		t.Error("clone missing wall at (1,1)")
	}

	// Shared nodes would let the oracle rerun corrupt a strategy's state.
	gn, _ := g.At(1, 1)
	if gn == cw {
		t.Error("clone shares node pointers with original")
	}
	if g.Contains(cw) {
		t.Error("original claims ownership of a clone node")
	}
}
