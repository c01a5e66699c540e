package planner

import (
	"fmt"
	"io"
	"log/slog"
	"math"

	"github.com/katalvlaran/gridnav/gridgraph"
	"github.com/katalvlaran/gridnav/heuristic"
	"github.com/katalvlaran/gridnav/occupancy"
	"github.com/katalvlaran/gridnav/search"
)

// Planner runs the inflate → graph → search pipeline with a fixed Config.
type Planner struct {
	cfg  Config
	log  *slog.Logger
	occ  occupancy.Options
	conn gridgraph.Connectivity
	algo search.Algorithm
	kind heuristic.Kind
}

// Plan is the outcome of one Planner.Plan call.
type Plan struct {
	// Grid is the inflated traversability map the search ran on.
	Grid *occupancy.Grid
	// Result is the search outcome; Result.Found is false when no path exists.
	Result *search.Result
	// Clearance is the smallest distance, in cells, between the path and an
	// obstacle. It is +Inf when no path was found or the grid has no obstacles.
	Clearance float64
	// Reachable reports whether start and goal share a connected component.
	Reachable bool
}

// New validates cfg and returns a Planner. A nil logger discards.
func New(cfg Config, logger *slog.Logger) (*Planner, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	// parse errors were ruled out by Validate
	conn, _ := gridgraph.ConnectivityFromDegree(cfg.Connectivity)
	algo, _ := search.ParseAlgorithm(cfg.Algorithm)
	kind, _ := heuristic.ParseKind(cfg.Heuristic)

	p := &Planner{
		cfg:  cfg,
		log:  logger,
		occ:  cfg.OccupancyOptions(),
		conn: conn,
		algo: algo,
		kind: kind,
	}
	if algo == search.AStar && !heuristic.Admissible(kind, conn == gridgraph.Conn8) {
		logger.Warn("heuristic is not admissible; A* may return a longer path",
			"heuristic", kind.String(), "connectivity", conn.String())
	}
	return p, nil
}

// Config returns the validated configuration.
func (p *Planner) Config() Config {
	return p.cfg
}

// Inflate applies the configured obstacle inflation to raw.
func (p *Planner) Inflate(raw [][]int) (*occupancy.Grid, error) {
	grid, err := occupancy.Inflate(raw, p.occ)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}
	p.log.Info("grid inflated",
		"rows", grid.Rows(), "cols", grid.Cols(),
		"iterations", p.occ.Iterations,
		"obstacles", grid.ObstacleCount())
	return grid, nil
}

// Plan inflates raw, checks both endpoints against the inflated grid and
// searches for a path. An endpoint outside the grid or on an obstacle cell
// is a configuration error; an unreachable goal is not.
func (p *Planner) Plan(raw [][]int, start, goal occupancy.Position) (*Plan, error) {
	grid, err := p.Inflate(raw)
	if err != nil {
		return nil, err
	}
	if err := checkEndpoint(grid, "start", start); err != nil {
		return nil, err
	}
	if err := checkEndpoint(grid, "goal", goal); err != nil {
		return nil, err
	}

	gg, err := gridgraph.NewGridGraph(grid, gridgraph.GridOptions{Conn: p.conn})
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}
	// a fresh heuristic per call keeps a seeded random source unshared
	h, err := heuristic.New(p.kind, p.cfg.Seed)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}

	res, err := search.Search(gg, start, goal,
		search.WithAlgorithm(p.algo),
		search.WithHeuristic(h),
		search.WithBeamWidth(p.cfg.BeamWidth),
		search.WithExpansionBudget(p.cfg.ExpansionBudget),
		search.WithAllowReopen(p.cfg.AllowReopen),
		search.WithLogger(p.log),
	)
	if err != nil {
		return nil, err
	}

	plan := &Plan{Grid: grid, Result: res, Clearance: math.Inf(1), Reachable: true}
	if !res.Found {
		plan.Reachable = gg.Reachable(start, goal)
		p.log.Info("no path found",
			"algorithm", res.Algorithm.String(),
			"expanded", res.Expanded,
			"budget", p.cfg.ExpansionBudget,
			"reachable", plan.Reachable)
		return plan, nil
	}

	plan.Clearance = occupancy.NewObstacleIndex(grid).Clearance(res.Path)
	p.log.Info("path found",
		"algorithm", res.Algorithm.String(),
		"steps", res.Steps(),
		"cost", res.Cost,
		"expanded", res.Expanded,
		"clearance", plan.Clearance)
	return plan, nil
}

func checkEndpoint(grid *occupancy.Grid, name string, p occupancy.Position) error {
	if !grid.InBounds(p) {
		return fmt.Errorf("%w: %s %v in %dx%d grid", ErrOutOfBounds, name, p, grid.Rows(), grid.Cols())
	}
	if !grid.Free(p) {
		return fmt.Errorf("%w: %s %v", ErrBlockedEndpoint, name, p)
	}
	return nil
}
