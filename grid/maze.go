package grid

import "math/rand"

// DefaultWallDensity is the probability RandomizeWalls stamps a wall onto
// each non-endpoint cell when no density option is given.
const DefaultWallDensity = 0.3

// MazeOptions contains tunable parameters for random wall stamping.
type MazeOptions struct {
	// Density is the per-cell wall probability in [0, 1).
	Density float64
	// Rand supplies the randomness; seed it for reproducible boards.
	Rand *rand.Rand
}

// MazeOption represents a functional option for configuring RandomizeWalls.
type MazeOption func(*MazeOptions)

// WithWallDensity sets the per-cell wall probability.
// Must be in [0, 1); values outside that range panic, matching the
// option-constructor convention used across this module.
func WithWallDensity(p float64) MazeOption {
	return func(o *MazeOptions) {
		if p < 0 || p >= 1 {
			panic("grid: wall density must be in [0, 1)")
		}
		o.Density = p
	}
}

// WithRand supplies a deterministic randomness source.
// A nil value is ignored and the default source kept.
func WithRand(r *rand.Rand) MazeOption {
	return func(o *MazeOptions) {
		if r != nil {
			o.Rand = r
		}
	}
}

// WithSeed is shorthand for WithRand(rand.New(rand.NewSource(seed))).
func WithSeed(seed int64) MazeOption {
	return WithRand(rand.New(rand.NewSource(seed)))
}

// DefaultMazeOptions returns MazeOptions with DefaultWallDensity and the
// package-global randomness source.
func DefaultMazeOptions() MazeOptions {
	return MazeOptions{
		Density: DefaultWallDensity,
		Rand:    nil, // nil means the shared math/rand source
	}
}

// RandomizeWalls produces a full replacement board from g: a fresh grid
// with the same dimensions and endpoint placement, all prior walls and
// search state discarded, and each non-endpoint cell flipped to a wall
// with probability Density.
//
// The input grid is not modified. Endpoints are never walled, so the
// one-start/one-finish invariant survives any density.
// Complexity: O(rows×cols).
func RandomizeWalls(g *Grid, opts ...MazeOption) *Grid {
	cfg := DefaultMazeOptions()
	for _, opt := range opts {
		opt(&cfg)
	}
	roll := rand.Float64
	if cfg.Rand != nil {
		roll = cfg.Rand.Float64
	}

	// Fresh board: CloneWalls then clear carries over only dimensions and
	// endpoints, which is exactly the generator's contract.
	maze := g.CloneWalls()
	for _, row := range maze.cells {
		for _, n := range row {
			n.Wall = false
			if n.Start || n.Finish {
				continue
			}
			if roll() < cfg.Density {
				n.Wall = true
			}
		}
	}

	return maze
}
