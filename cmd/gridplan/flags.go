package main

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/paulmach/orb"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/gridnav/occupancy"
	"github.com/katalvlaran/gridnav/planner"
)

// configFlags are per-key overrides of planner.Config. A flag only takes
// effect when it was set explicitly.
type configFlags struct {
	iterations   int
	threshold    int
	connectivity int
	heuristic    string
	algorithm    string
	beamWidth    int
	budget       int
	allowReopen  bool
	seed         int64
}

func (f *configFlags) register(cmd *cobra.Command) {
	d := planner.DefaultConfig()
	fs := cmd.Flags()
	fs.IntVar(&f.iterations, "iterations", d.InflationIterations, "Obstacle inflation passes")
	fs.IntVar(&f.threshold, "threshold", d.ObstacleThreshold, "Intensities below this value are obstacles")
	fs.IntVar(&f.connectivity, "connectivity", d.Connectivity, "Neighbourhood: 4 or 8")
	fs.StringVar(&f.heuristic, "heuristic", d.Heuristic, "manhattan|euclidean|chebyshev|octile|zero|random")
	fs.StringVar(&f.algorithm, "algorithm", d.Algorithm, "astar|greedy|beam|dijkstra")
	fs.IntVar(&f.beamWidth, "beam-width", d.BeamWidth, "Nodes kept per level by beam search")
	fs.IntVar(&f.budget, "budget", d.ExpansionBudget, "Maximum node expansions")
	fs.BoolVar(&f.allowReopen, "allow-reopen", d.AllowReopen, "Let A* revisit cells reached by a cheaper path")
	fs.Int64Var(&f.seed, "seed", d.Seed, "Seed for the random heuristic (0 = fixed default)")
}

// apply copies every explicitly set flag onto cfg.
func (f *configFlags) apply(cmd *cobra.Command, cfg planner.Config) planner.Config {
	fs := cmd.Flags()
	if fs.Changed("iterations") {
		cfg.InflationIterations = f.iterations
	}
	if fs.Changed("threshold") {
		cfg.ObstacleThreshold = f.threshold
		if cfg.InflatedValue >= cfg.ObstacleThreshold {
			cfg.InflatedValue = cfg.ObstacleThreshold - 1
		}
	}
	if fs.Changed("connectivity") {
		cfg.Connectivity = f.connectivity
	}
	if fs.Changed("heuristic") {
		cfg.Heuristic = f.heuristic
	}
	if fs.Changed("algorithm") {
		cfg.Algorithm = f.algorithm
	}
	if fs.Changed("beam-width") {
		cfg.BeamWidth = f.beamWidth
	}
	if fs.Changed("budget") {
		cfg.ExpansionBudget = f.budget
	}
	if fs.Changed("allow-reopen") {
		cfg.AllowReopen = f.allowReopen
	}
	if fs.Changed("seed") {
		cfg.Seed = f.seed
	}
	return cfg
}

// parsePair splits "a,b" into two trimmed fields.
func parsePair(s string) (string, string, error) {
	a, b, ok := strings.Cut(s, ",")
	if !ok {
		return "", "", fmt.Errorf("%w: %q is not of the form a,b", errUsage, s)
	}
	return strings.TrimSpace(a), strings.TrimSpace(b), nil
}

// parsePosition parses "row,col".
func parsePosition(s string) (occupancy.Position, error) {
	a, b, err := parsePair(s)
	if err != nil {
		return occupancy.Position{}, err
	}
	row, err1 := strconv.Atoi(a)
	col, err2 := strconv.Atoi(b)
	if err1 != nil || err2 != nil {
		return occupancy.Position{}, fmt.Errorf("%w: %q is not row,col", errUsage, s)
	}
	return occupancy.Pos(row, col), nil
}

// parsePoint parses "x,y" in world units.
func parsePoint(s string) (orb.Point, error) {
	a, b, err := parsePair(s)
	if err != nil {
		return orb.Point{}, err
	}
	x, err1 := strconv.ParseFloat(a, 64)
	y, err2 := strconv.ParseFloat(b, 64)
	if err1 != nil || err2 != nil {
		return orb.Point{}, fmt.Errorf("%w: %q is not x,y", errUsage, s)
	}
	return orb.Point{x, y}, nil
}
