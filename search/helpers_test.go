package search_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/gridnav/gridgraph"
	"github.com/katalvlaran/gridnav/occupancy"
	"github.com/katalvlaran/gridnav/search"
)

// allAlgorithms lists every strategy for table-driven checks.
var allAlgorithms = []search.Algorithm{search.AStar, search.Greedy, search.Beam, search.Dijkstra}

// layout builds a GridGraph from rows of '.' (free) and '#' (obstacle).
func layout(t testing.TB, conn gridgraph.Connectivity, rows ...string) *gridgraph.GridGraph {
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

// wallGrid is the 5×5 grid with a wall in column 2 spanning rows 0–3.
func wallGrid(t testing.TB) *gridgraph.GridGraph {
	return layout(t, gridgraph.Conn4,
		"..#..",
		"..#..",
		"..#..",
		"..#..",
		".....",
	)
}
