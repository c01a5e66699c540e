package occupancy_test

import (
	"math/rand"
	"testing"

	"github.com/katalvlaran/gridnav/occupancy"
)

// BenchmarkInflate measures eight inflation passes over a 256×256 image
// with roughly 2% obstacle pixels.
// Complexity: O(I×R×C)
func BenchmarkInflate(b *testing.B) {
	const n = 256
	rng := rand.New(rand.NewSource(42))
	raw := make([][]int, n)
	for r := range raw {
		raw[r] = make([]int, n)
		for c := range raw[r] {
			raw[r][c] = 255
			if rng.Intn(50) == 0 {
				raw[r][c] = 0
			}
		}
	}
	opts := occupancy.DefaultOptions()

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = occupancy.Inflate(raw, opts)
	}
}
