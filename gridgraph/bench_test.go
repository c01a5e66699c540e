package gridgraph_test

import (
	"math/rand"
	"testing"

	"github.com/katalvlaran/gridnav/gridgraph"
	"github.com/katalvlaran/gridnav/occupancy"
)

// randomGraph builds an n×n grid with ~20% obstacles.
func randomGraph(b *testing.B, n int, conn gridgraph.Connectivity) *gridgraph.GridGraph {
	rng := rand.New(rand.NewSource(42))
	mask := make([][]bool, n)
	for r := range mask {
		mask[r] = make([]bool, n)
		for c := range mask[r] {
			mask[r][c] = rng.Intn(5) != 0
		}
	}
	grid, err := occupancy.FromMask(mask)
	if err != nil {
		b.Fatalf("setup FromMask failed: %v", err)
	}
	gg, err := gridgraph.NewGridGraph(grid, gridgraph.GridOptions{Conn: conn})
	if err != nil {
		b.Fatalf("setup NewGridGraph failed: %v", err)
	}
	return gg
}

// BenchmarkConnectedComponents measures labelling a 1000×1000 random grid.
// Complexity: O(R×C×d)
func BenchmarkConnectedComponents(b *testing.B) {
	gg := randomGraph(b, 1000, gridgraph.Conn4)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = gg.ConnectedComponents()
	}
}

// BenchmarkNewRun measures per-search state allocation on a 1000×1000 grid.
func BenchmarkNewRun(b *testing.B) {
	gg := randomGraph(b, 1000, gridgraph.Conn8)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = gg.NewRun(occupancy.Pos(999, 999), nil, gridgraph.RunOptions{})
	}
}
