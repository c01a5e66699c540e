package occupancy_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/gridnav/occupancy"
)

// uniform builds a rows×cols grid filled with v.
func uniform(rows, cols, v int) [][]int {
	g := make([][]int, rows)
	for r := range g {
		g[r] = make([]int, cols)
		for c := range g[r] {
			g[r][c] = v
		}
	}
	return g
}

// obstacleSet collects blocked positions for subset comparisons.
func obstacleSet(g *occupancy.Grid) map[occupancy.Position]bool {
	set := make(map[occupancy.Position]bool)
	for _, p := range g.Obstacles() {
		set[p] = true
	}
	return set
}

func TestInflate_Errors(t *testing.T) {
	cases := []struct {
		name string
		raw  [][]int
		opts occupancy.Options
		err  error
	}{
		{"EmptyRows", [][]int{}, occupancy.DefaultOptions(), occupancy.ErrEmptyGrid},
		{"EmptyCols", [][]int{{}}, occupancy.DefaultOptions(), occupancy.ErrEmptyGrid},
		{"NonRectangular", [][]int{{1, 2}, {3}}, occupancy.DefaultOptions(), occupancy.ErrNonRectangular},
		{"NegativeIterations", uniform(2, 2, 255), occupancy.Options{Iterations: -1, ObstacleThreshold: 100, InflatedValue: 99}, occupancy.ErrNegativeIterations},
		{"InflatedNotObstacle", uniform(2, 2, 255), occupancy.Options{Iterations: 1, ObstacleThreshold: 100, InflatedValue: 100}, occupancy.ErrInflatedValue},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := occupancy.Inflate(tc.raw, tc.opts)
			assert.ErrorIs(t, err, tc.err)
		})
	}
}

func TestInflate_ZeroIterationsIsThreshold(t *testing.T) {
	raw := [][]int{
		{255, 10, 255},
		{255, 255, 99},
		{100, 255, 0},
	}
	opts := occupancy.Options{Iterations: 0, ObstacleThreshold: 100, InflatedValue: 99}
	g, err := occupancy.Inflate(raw, opts)
	require.NoError(t, err)

	want := [][]int{
		{1, 0, 1},
		{1, 1, 0},
		{1, 1, 0},
	}
	assert.Equal(t, want, g.Values())

	plain, err := occupancy.Threshold(raw, 100)
	require.NoError(t, err)
	assert.Equal(t, plain.Values(), g.Values())
}

func TestInflate_SinglePassDoesNotCascade(t *testing.T) {
	raw := uniform(5, 5, 255)
	raw[2][2] = 0
	g, err := occupancy.Inflate(raw, occupancy.Options{Iterations: 1, ObstacleThreshold: 100, InflatedValue: 99})
	require.NoError(t, err)

	// exactly the 3×3 block around the centre
	assert.Equal(t, 9, g.ObstacleCount())
	for r := 0; r < 5; r++ {
		for c := 0; c < 5; c++ {
			inBlock := r >= 1 && r <= 3 && c >= 1 && c <= 3
			assert.Equal(t, !inBlock, g.Free(occupancy.Pos(r, c)), "cell (%d,%d)", r, c)
		}
	}
}

func TestInflate_ChebyshevRadius(t *testing.T) {
	raw := uniform(9, 9, 255)
	raw[4][4] = 0
	g, err := occupancy.Inflate(raw, occupancy.Options{Iterations: 3, ObstacleThreshold: 100, InflatedValue: 99})
	require.NoError(t, err)
	assert.Equal(t, 49, g.ObstacleCount())
	assert.False(t, g.Free(occupancy.Pos(1, 1)))
	assert.True(t, g.Free(occupancy.Pos(0, 4)))
}

func TestInflate_ClipsAtBoundary(t *testing.T) {
	raw := uniform(3, 3, 255)
	raw[0][0] = 0
	g, err := occupancy.Inflate(raw, occupancy.Options{Iterations: 1, ObstacleThreshold: 100, InflatedValue: 99})
	require.NoError(t, err)
	assert.Equal(t, 4, g.ObstacleCount())
	assert.True(t, g.Free(occupancy.Pos(2, 2)))
}

func TestInflate_Monotonic(t *testing.T) {
	raw := uniform(12, 15, 200)
	raw[3][4] = 5
	raw[9][11] = 50
	raw[0][14] = 0
	var prev map[occupancy.Position]bool
	for n := 0; n <= 6; n++ {
		g, err := occupancy.Inflate(raw, occupancy.Options{Iterations: n, ObstacleThreshold: 100, InflatedValue: 99})
		require.NoError(t, err)
		cur := obstacleSet(g)
		for p := range prev {
			assert.True(t, cur[p], "obstacle %v lost going to %d iterations", p, n)
		}
		assert.GreaterOrEqual(t, len(cur), len(prev))
		prev = cur
	}
}

func TestInflate_InputUntouched(t *testing.T) {
	raw := uniform(3, 3, 255)
	raw[1][1] = 0
	_, err := occupancy.Inflate(raw, occupancy.Options{Iterations: 2, ObstacleThreshold: 100, InflatedValue: 99})
	require.NoError(t, err)
	assert.Equal(t, 255, raw[0][0])
}

func TestInflateValues_StampsInflatedValue(t *testing.T) {
	raw := uniform(3, 3, 255)
	raw[1][1] = 7
	vals, err := occupancy.InflateValues(raw, occupancy.Options{Iterations: 1, ObstacleThreshold: 100, InflatedValue: 42})
	require.NoError(t, err)
	assert.Equal(t, 7, vals[1][1])
	assert.Equal(t, 42, vals[0][0])
	assert.Equal(t, 42, vals[2][1])
}

func TestFromMask_Copies(t *testing.T) {
	mask := [][]bool{{true, false}, {true, true}}
	g, err := occupancy.FromMask(mask)
	require.NoError(t, err)
	mask[0][0] = false
	assert.True(t, g.Free(occupancy.Pos(0, 0)))
	assert.False(t, g.Free(occupancy.Pos(0, 1)))
	assert.False(t, g.Free(occupancy.Pos(5, 5)))
	assert.Equal(t, []occupancy.Position{occupancy.Pos(0, 1)}, g.Obstacles())

	_, err = occupancy.FromMask(nil)
	assert.ErrorIs(t, err, occupancy.ErrEmptyGrid)
}

func TestObstacleIndex_Queries(t *testing.T) {
	raw := uniform(6, 6, 255)
	raw[0][5] = 0
	raw[4][1] = 0
	g, err := occupancy.Threshold(raw, 100)
	require.NoError(t, err)
	ix := occupancy.NewObstacleIndex(g)
	assert.Equal(t, 2, ix.Len())

	near, d, ok := ix.NearestObstacle(occupancy.Pos(4, 3))
	require.True(t, ok)
	assert.Equal(t, occupancy.Pos(4, 1), near)
	assert.InDelta(t, 2.0, d, 1e-9)

	assert.Equal(t, []occupancy.Position{occupancy.Pos(4, 1)}, ix.ObstaclesWithin(occupancy.Pos(3, 1), 1.5))
	assert.Len(t, ix.ObstaclesWithin(occupancy.Pos(2, 3), 10), 2)
	assert.Empty(t, ix.ObstaclesWithin(occupancy.Pos(2, 3), 1))

	path := []occupancy.Position{occupancy.Pos(0, 0), occupancy.Pos(1, 0), occupancy.Pos(2, 0)}
	assert.InDelta(t, math.Sqrt(5), ix.Clearance(path), 1e-9)
}

func TestObstacleIndex_NoObstacles(t *testing.T) {
	g, err := occupancy.Threshold(uniform(3, 3, 255), 100)
	require.NoError(t, err)
	ix := occupancy.NewObstacleIndex(g)
	_, d, ok := ix.NearestObstacle(occupancy.Pos(1, 1))
	assert.False(t, ok)
	assert.True(t, math.IsInf(d, 1))
	assert.True(t, math.IsInf(ix.Clearance([]occupancy.Position{occupancy.Pos(0, 0)}), 1))
}
