package search_test

import (
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"

	"github.com/katalvlaran/gridpath/search"
)

// AStarSuite checks A*'s optimality against the oracle and its goal-biased
// exploration order.
type AStarSuite struct {
	suite.Suite
}

// TestStraightCorridor: on an open corridor A* marches straight at the
// goal — optimal path, no wasted visits.
func (s *AStarSuite) TestStraightCorridor() {
	g := mustGrid(s.T(), "S...F")
	res := runOn(s.T(), g, search.AStar)
	require.Equal(s.T(), 5, res.PathLen())
	require.Len(s.T(), res.VisitedOrder, 5)
	requireValidPath(s.T(), g, res.Path)
}

// TestOracleAgreement: path length equals the Dijkstra ground truth on
// every seeded board, including the no-path boards (both empty).
func (s *AStarSuite) TestOracleAgreement() {
	for seed := int64(1); seed <= 20; seed++ {
		g := randomBoard(s.T(), seed)
		res := runOn(s.T(), g, search.AStar)
		require.Equal(s.T(), oracleLen(s.T(), g), res.PathLen(), "seed %d", seed)
		if res.Found() {
			requireValidPath(s.T(), g, res.Path)
		}
	}
}

// TestGoalBias: on a wide open board A* visits fewer nodes than Dijkstra.
func (s *AStarSuite) TestGoalBias() {
	art := []string{
		"S.........",
		"..........",
		"..........",
		"..........",
		".........F",
	}
	ga := mustGrid(s.T(), art...)
	resA := runOn(s.T(), ga, search.AStar)

	gd := mustGrid(s.T(), art...)
	resD := runOn(s.T(), gd, search.Dijkstra)

	require.Equal(s.T(), resD.PathLen(), resA.PathLen())
	require.Less(s.T(), len(resA.VisitedOrder), len(resD.VisitedOrder))
}

// TestTotalNeverBelowTrueCost: for every closed node Total = Dist + Heur
// and the heuristic never overestimates the remaining path.
func (s *AStarSuite) TestTotalNeverBelowTrueCost() {
	g := randomBoard(s.T(), 11)
	res := runOn(s.T(), g, search.AStar)
	for _, n := range res.VisitedOrder {
		require.Equal(s.T(), n.Dist+n.Heur, n.Total)
	}
	if res.Found() {
		require.Equal(s.T(), res.PathLen()-1, g.Finish().Dist)
	}
}

// TestNoPath: unreachable finish yields the empty result.
func (s *AStarSuite) TestNoPath() {
	g := walledOffBoard(s.T())
	res := runOn(s.T(), g, search.AStar)
	require.Empty(s.T(), res.Path)
}

func TestAStarSuite(t *testing.T) {
	suite.Run(t, new(AStarSuite))
}
