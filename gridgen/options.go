package gridgen

import "math/rand"

// Default intensities written by the generators.
const (
	// DefaultFree is the intensity written for traversable cells.
	DefaultFree = 255
	// DefaultObstacle is the intensity written for blocked cells.
	DefaultObstacle = 0
)

// defaultSeed keeps an unseeded Build reproducible.
const defaultSeed int64 = 1

// Option customizes Build.
type Option func(*config)

type config struct {
	rng      *rand.Rand
	free     int
	obstacle int
}

func newConfig(opts ...Option) config {
	c := config{free: DefaultFree, obstacle: DefaultObstacle}
	for _, opt := range opts {
		opt(&c)
	}
	if c.rng == nil {
		c.rng = rand.New(rand.NewSource(defaultSeed))
	}
	return c
}

// WithSeed seeds a fresh random source.
func WithSeed(seed int64) Option {
	return func(c *config) {
		c.rng = rand.New(rand.NewSource(seed))
	}
}

// WithRand supplies the random source directly. Panics on nil.
func WithRand(r *rand.Rand) Option {
	if r == nil {
		panic("gridgen: WithRand(nil)")
	}
	return func(c *config) {
		c.rng = r
	}
}

// WithValues sets the intensities written for free and obstacle cells.
// Panics unless free > obstacle, since a lower free value would invert the
// map under any threshold.
func WithValues(free, obstacle int) Option {
	if free <= obstacle {
		panic("gridgen: WithValues(free <= obstacle)")
	}
	return func(c *config) {
		c.free, c.obstacle = free, obstacle
	}
}
