package search_test

import (
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"

	"github.com/katalvlaran/gridpath/search"
)

// SwarmSuite exercises the bidirectional strategy: meeting-point stitch,
// path validity, and the dual-frontier trace.
type SwarmSuite struct {
	suite.Suite
}

// TestStraightCorridor: both frontiers march toward each other and the
// stitched path covers the corridor exactly once.
func (s *SwarmSuite) TestStraightCorridor() {
	g := mustGrid(s.T(), "S...F")
	res := runOn(s.T(), g, search.BidirectionalSwarm)
	require.Equal(s.T(), 5, res.PathLen())
	requireValidPath(s.T(), g, res.Path)
}

// TestTinyBoard: adjacent endpoints meet immediately — the finish-side
// root already priced the start, or vice versa.
func (s *SwarmSuite) TestTinyBoard() {
	g := mustGrid(s.T(), "SF")
	res := runOn(s.T(), g, search.BidirectionalSwarm)
	require.Equal(s.T(), 2, res.PathLen())
	requireValidPath(s.T(), g, res.Path)
}

// TestTraceInterleavesBothSides: the animation trace starts with the two
// roots, start side first.
func (s *SwarmSuite) TestTraceInterleavesBothSides() {
	g := mustGrid(s.T(),
		"S....",
		".....",
		"....F",
	)
	res := runOn(s.T(), g, search.BidirectionalSwarm)
	require.GreaterOrEqual(s.T(), len(res.VisitedOrder), 2)
	require.Same(s.T(), g.Start(), res.VisitedOrder[0])
	require.Same(s.T(), g.Finish(), res.VisitedOrder[1])
}

// TestValidOrEmpty: same grading as Greedy — a contiguous path exactly
// when one exists, no length guarantee asserted in general.
func (s *SwarmSuite) TestValidOrEmpty() {
	for seed := int64(1); seed <= 20; seed++ {
		g := randomBoard(s.T(), seed)
		res := runOn(s.T(), g, search.BidirectionalSwarm)
		if oracleLen(s.T(), g) == 0 {
			require.Empty(s.T(), res.Path, "seed %d", seed)

			continue
		}
		requireValidPath(s.T(), g, res.Path)
		require.GreaterOrEqual(s.T(), res.PathLen(), oracleLen(s.T(), g), "seed %d", seed)
	}
}

// TestSearchVolumeOnOpenBoard: the combined frontiers close fewer nodes
// than single-ended Dijkstra on a wide open board — the strategy's whole
// selling point.
func (s *SwarmSuite) TestSearchVolumeOnOpenBoard() {
	art := []string{
		"S..........",
		"...........",
		"...........",
		"...........",
		"..........F",
	}
	gs := mustGrid(s.T(), art...)
	resS := runOn(s.T(), gs, search.BidirectionalSwarm)

	gd := mustGrid(s.T(), art...)
	resD := runOn(s.T(), gd, search.Dijkstra)

	require.True(s.T(), resS.Found())
	require.Less(s.T(), len(resS.VisitedOrder), len(resD.VisitedOrder))
}

// TestNoPath: either frontier draining ends the run with the empty result.
func (s *SwarmSuite) TestNoPath() {
	g := walledOffBoard(s.T())
	res := runOn(s.T(), g, search.BidirectionalSwarm)
	require.Empty(s.T(), res.Path)
}

func TestSwarmSuite(t *testing.T) {
	suite.Run(t, new(SwarmSuite))
}
