package gridgraph_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/gridnav/gridgraph"
	"github.com/katalvlaran/gridnav/heuristic"
	"github.com/katalvlaran/gridnav/occupancy"
)

// maskGraph builds a GridGraph from rows of '.' (free) and '#' (obstacle).
func maskGraph(t testing.TB, conn gridgraph.Connectivity, rows ...string) *gridgraph.GridGraph {
	t.Helper()
	mask := make([][]bool, len(rows))
	for r, row := range rows {
		mask[r] = make([]bool, len(row))
		for c, ch := range row {
			mask[r][c] = ch != '#'
		}
	}
	grid, err := occupancy.FromMask(mask)
	require.NoError(t, err)
	gg, err := gridgraph.NewGridGraph(grid, gridgraph.GridOptions{Conn: conn})
	require.NoError(t, err)
	return gg
}

//----------------------------------------------------------------------------//
// NewGridGraph and geometry
//----------------------------------------------------------------------------//

func TestNewGridGraph_Errors(t *testing.T) {
	_, err := gridgraph.NewGridGraph(nil, gridgraph.DefaultGridOptions())
	assert.ErrorIs(t, err, gridgraph.ErrNilGrid)

	grid, err := occupancy.FromMask([][]bool{{true}})
	require.NoError(t, err)
	_, err = gridgraph.NewGridGraph(grid, gridgraph.GridOptions{Conn: gridgraph.Connectivity(7)})
	assert.ErrorIs(t, err, gridgraph.ErrConnectivity)
}

func TestConnectivityFromDegree(t *testing.T) {
	c, err := gridgraph.ConnectivityFromDegree(4)
	require.NoError(t, err)
	assert.Equal(t, gridgraph.Conn4, c)
	c, err = gridgraph.ConnectivityFromDegree(8)
	require.NoError(t, err)
	assert.Equal(t, gridgraph.Conn8, c)
	assert.Equal(t, "conn8", c.String())

	_, err = gridgraph.ConnectivityFromDegree(6)
	assert.ErrorIs(t, err, gridgraph.ErrConnectivity)
}

// TestInBounds checks InBounds on a 2×3 grid under Conn4.
func TestInBounds(t *testing.T) {
	gg := maskGraph(t, gridgraph.Conn4, "...", "...")
	for _, p := range []occupancy.Position{occupancy.Pos(0, 0), occupancy.Pos(1, 2), occupancy.Pos(1, 1)} {
		assert.True(t, gg.InBounds(p), "%v", p)
	}
	for _, p := range []occupancy.Position{occupancy.Pos(-1, 0), occupancy.Pos(2, 0), occupancy.Pos(0, 3), occupancy.Pos(1, -1)} {
		assert.False(t, gg.InBounds(p), "%v", p)
	}
}

func TestIndexRoundTrip(t *testing.T) {
	gg := maskGraph(t, gridgraph.Conn4, "....", "....", "....")
	for i := 0; i < gg.Size(); i++ {
		assert.Equal(t, i, gg.Index(gg.Position(i)))
	}
	assert.Equal(t, occupancy.Pos(2, 1), gg.Position(9))
}

func TestOffsetsAndStepWeight(t *testing.T) {
	assert.Len(t, maskGraph(t, gridgraph.Conn4, "..").NeighborOffsets(), 4)
	assert.Len(t, maskGraph(t, gridgraph.Conn8, "..").NeighborOffsets(), 8)
	assert.Equal(t, 1.0, gridgraph.StepWeight([2]int{0, -1}))
	assert.Equal(t, math.Sqrt2, gridgraph.StepWeight([2]int{-1, 1}))

	gg := maskGraph(t, gridgraph.Conn4, "...", "...")
	assert.True(t, gg.Adjacent(occupancy.Pos(0, 0), occupancy.Pos(0, 1)))
	assert.False(t, gg.Adjacent(occupancy.Pos(0, 0), occupancy.Pos(1, 1)))
}

//----------------------------------------------------------------------------//
// Run discovery rules
//----------------------------------------------------------------------------//

func TestRun_NeighborsRules(t *testing.T) {
	gg := maskGraph(t, gridgraph.Conn4,
		"...",
		".#.",
		"...",
	)
	goal := occupancy.Pos(2, 2)
	run := gg.NewRun(goal, heuristic.Manhattan, gridgraph.RunOptions{FoldCost: true})
	start := run.Discover(occupancy.Pos(0, 1))
	assert.Equal(t, 0.0, start.Cost)
	assert.Equal(t, 3.0, start.Score)

	// (−1,1) is out of bounds, (1,1) is an obstacle.
	nbrs := run.Neighbors(start)
	got := make([]occupancy.Position, 0, len(nbrs))
	for _, n := range nbrs {
		got = append(got, n.Pos)
		assert.Equal(t, 1.0, n.Cost)
		assert.Equal(t, n.Heuristic+n.Cost, n.Score)
		parent, ok := run.Parent(n.Pos)
		require.True(t, ok)
		assert.Equal(t, start.Pos, parent)
		assert.True(t, run.Explored(n.Pos))
	}
	assert.ElementsMatch(t, []occupancy.Position{occupancy.Pos(0, 2), occupancy.Pos(0, 0)}, got)
	assert.False(t, run.Explored(occupancy.Pos(1, 1)))
	assert.Equal(t, 3, run.ExploredCount())

	// Second expansion from (0,2): (0,1) already explored, only (1,2) survives.
	nbrs = run.Neighbors(nbrs[0])
	require.Len(t, nbrs, 1)
	assert.Equal(t, occupancy.Pos(1, 2), nbrs[0].Pos)
	assert.Equal(t, 2.0, run.Cost(nbrs[0].Pos))
}

func TestRun_NoFoldScoresByHeuristicOnly(t *testing.T) {
	gg := maskGraph(t, gridgraph.Conn8, "....", "....")
	run := gg.NewRun(occupancy.Pos(1, 3), heuristic.Chebyshev, gridgraph.RunOptions{})
	for _, n := range run.Neighbors(run.Discover(occupancy.Pos(0, 0))) {
		assert.Equal(t, n.Heuristic, n.Score)
		if n.Pos == occupancy.Pos(1, 1) {
			assert.Equal(t, math.Sqrt2, n.Cost)
		}
	}
}

func TestRun_ParentOfStartAndUnknown(t *testing.T) {
	gg := maskGraph(t, gridgraph.Conn4, "...")
	run := gg.NewRun(occupancy.Pos(0, 2), heuristic.Zero, gridgraph.RunOptions{})
	run.Discover(occupancy.Pos(0, 0))
	_, ok := run.Parent(occupancy.Pos(0, 0))
	assert.False(t, ok)
	_, ok = run.Parent(occupancy.Pos(0, 2))
	assert.False(t, ok)
}

func TestRun_AllowReopen(t *testing.T) {
	gg := maskGraph(t, gridgraph.Conn8, "...", "...")
	target := occupancy.Pos(0, 2)

	closed := gg.NewRun(target, heuristic.Zero, gridgraph.RunOptions{})
	reopen := gg.NewRun(target, heuristic.Zero, gridgraph.RunOptions{AllowReopen: true})
	for _, run := range []*gridgraph.Run{closed, reopen} {
		s := run.Discover(occupancy.Pos(0, 0))
		run.Neighbors(s)
	}
	// (1,1) was reached diagonally at √2. A fake expansion of (0,1) at cost 0.1
	// offers it at 1.1: only the reopening run accepts the cheaper path.
	fake := gridgraph.Node{Pos: occupancy.Pos(0, 1), Cost: 0.1}
	hasCell := func(ns []gridgraph.Node, p occupancy.Position) bool {
		for _, n := range ns {
			if n.Pos == p {
				return true
			}
		}
		return false
	}
	assert.False(t, hasCell(closed.Neighbors(fake), occupancy.Pos(1, 1)))
	assert.True(t, hasCell(reopen.Neighbors(fake), occupancy.Pos(1, 1)))
	assert.InDelta(t, 1.1, reopen.Cost(occupancy.Pos(1, 1)), 1e-12)
	parent, _ := reopen.Parent(occupancy.Pos(1, 1))
	assert.Equal(t, occupancy.Pos(0, 1), parent)
}

func TestRun_Independence(t *testing.T) {
	gg := maskGraph(t, gridgraph.Conn4, "...", "...")
	a := gg.NewRun(occupancy.Pos(1, 2), heuristic.Manhattan, gridgraph.RunOptions{})
	b := gg.NewRun(occupancy.Pos(1, 2), heuristic.Manhattan, gridgraph.RunOptions{})
	a.Neighbors(a.Discover(occupancy.Pos(0, 0)))
	assert.Equal(t, 3, a.ExploredCount())
	assert.Zero(t, b.ExploredCount())
	assert.False(t, b.Explored(occupancy.Pos(0, 1)))
}
