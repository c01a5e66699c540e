package heuristic

import (
	"errors"
	"fmt"
	"math"
	"math/rand"
	"strings"

	"github.com/katalvlaran/gridnav/occupancy"
)

// ErrUnknownHeuristic is returned by ParseKind and New for unrecognized names.
var ErrUnknownHeuristic = errors.New("heuristic: unknown heuristic")

// Func estimates the remaining cost from a to b.
type Func func(a, b occupancy.Position) float64

// Kind names one of the built-in heuristics.
type Kind int

const (
	// KindManhattan is |dr| + |dc|.
	KindManhattan Kind = iota
	// KindEuclidean is the straight-line distance truncated to an integer.
	KindEuclidean
	// KindChebyshev is max(|dr|, |dc|).
	KindChebyshev
	// KindOctile is exact for unit cardinal and √2 diagonal steps.
	KindOctile
	// KindZero always returns 0, turning A* into uniform-cost search.
	KindZero
	// KindRandom returns a uniform random integer in [0, 100].
	KindRandom
)

var kindNames = [...]string{
	KindManhattan: "manhattan",
	KindEuclidean: "euclidean",
	KindChebyshev: "chebyshev",
	KindOctile:    "octile",
	KindZero:      "zero",
	KindRandom:    "random",
}

// String returns the canonical lowercase name.
func (k Kind) String() string {
	if k < 0 || int(k) >= len(kindNames) {
		return fmt.Sprintf("Kind(%d)", int(k))
	}
	return kindNames[k]
}

// ParseKind maps a name to a Kind. Matching is case-insensitive; "bozo" is an
// alias for random and "none" for zero.
func ParseKind(name string) (Kind, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "manhattan":
		return KindManhattan, nil
	case "euclidean":
		return KindEuclidean, nil
	case "chebyshev":
		return KindChebyshev, nil
	case "octile":
		return KindOctile, nil
	case "zero", "none":
		return KindZero, nil
	case "random", "bozo":
		return KindRandom, nil
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownHeuristic, name)
}

// defaultSeed is used when New receives seed 0, keeping runs reproducible.
const defaultSeed int64 = 1

// New returns the Func for kind. seed only matters for KindRandom; 0 selects
// a fixed default seed.
func New(kind Kind, seed int64) (Func, error) {
	switch kind {
	case KindManhattan:
		return Manhattan, nil
	case KindEuclidean:
		return Euclidean, nil
	case KindChebyshev:
		return Chebyshev, nil
	case KindOctile:
		return Octile, nil
	case KindZero:
		return Zero, nil
	case KindRandom:
		if seed == 0 {
			seed = defaultSeed
		}
		return Random(rand.New(rand.NewSource(seed))), nil
	}
	return nil, fmt.Errorf("%w: %v", ErrUnknownHeuristic, kind)
}

// Admissible reports whether kind never overestimates the true remaining
// cost under the given connectivity (unit cardinal steps, √2 diagonals).
func Admissible(kind Kind, diagonal bool) bool {
	switch kind {
	case KindManhattan:
		return !diagonal
	case KindEuclidean, KindChebyshev, KindOctile, KindZero:
		return true
	}
	return false
}

func deltas(a, b occupancy.Position) (dr, dc float64) {
	return math.Abs(float64(a.Row - b.Row)), math.Abs(float64(a.Col - b.Col))
}

// Manhattan returns |dr| + |dc|.
func Manhattan(a, b occupancy.Position) float64 {
	dr, dc := deltas(a, b)
	return dr + dc
}

// Euclidean returns sqrt(dr² + dc²) truncated toward zero.
func Euclidean(a, b occupancy.Position) float64 {
	dr, dc := deltas(a, b)
	return math.Trunc(math.Sqrt(dr*dr + dc*dc))
}

// Chebyshev returns max(|dr|, |dc|).
func Chebyshev(a, b occupancy.Position) float64 {
	dr, dc := deltas(a, b)
	return math.Max(dr, dc)
}

// Octile returns max(|dr|,|dc|) + (√2−1)·min(|dr|,|dc|).
func Octile(a, b occupancy.Position) float64 {
	dr, dc := deltas(a, b)
	return math.Max(dr, dc) + (math.Sqrt2-1)*math.Min(dr, dc)
}

// Zero ignores its arguments.
func Zero(_, _ occupancy.Position) float64 {
	return 0
}

// Random returns a Func drawing a uniform integer in [0, 100] from rng on
// every call, independent of the cells.
func Random(rng *rand.Rand) Func {
	return func(_, _ occupancy.Position) float64 {
		return float64(rng.Intn(101))
	}
}
