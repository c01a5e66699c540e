package search

import (
	"fmt"
	"time"

	"github.com/katalvlaran/gridnav/gridgraph"
	"github.com/katalvlaran/gridnav/occupancy"
)

// Search finds a path from start to goal on gg using the strategy selected by
// opts (A* with the Manhattan heuristic by default).
//
// Preconditions and validation (in order):
//  1. gg must be non-nil (ErrNilGraph).
//  2. Options must be valid (ErrExpansionBudget, ErrUnknownAlgorithm).
//  3. BeamWidth must be positive when Algorithm == Beam (ErrBeamWidth).
//  4. start and goal must lie inside the grid (ErrOutOfBounds).
//
// A blocked start or goal is not an error: the result is simply not found.
// All returned errors wrap ErrInvalidConfig.
func Search(gg *gridgraph.GridGraph, start, goal occupancy.Position, opts ...Option) (*Result, error) {
	if gg == nil {
		return nil, ErrNilGraph
	}
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}
	if o.Algorithm == Beam && o.BeamWidth <= 0 {
		return nil, fmt.Errorf("%w (%d)", ErrBeamWidth, o.BeamWidth)
	}
	if !gg.InBounds(start) {
		return nil, fmt.Errorf("%w: start %v in %dx%d grid", ErrOutOfBounds, start, gg.Rows, gg.Cols)
	}
	if !gg.InBounds(goal) {
		return nil, fmt.Errorf("%w: goal %v in %dx%d grid", ErrOutOfBounds, goal, gg.Rows, gg.Cols)
	}

	began := time.Now()
	var res *Result
	switch {
	case !gg.Free(start) || !gg.Free(goal):
		res = &Result{Algorithm: o.Algorithm}
	case o.Algorithm == AStar:
		res = bestFirst(gg, start, goal, o, true)
	case o.Algorithm == Greedy:
		res = bestFirst(gg, start, goal, o, false)
	case o.Algorithm == Beam:
		res = beam(gg, start, goal, o)
	default:
		res = dijkstra(gg, start, goal, o)
	}

	o.Logger.Debug("search finished",
		"algorithm", res.Algorithm.String(),
		"start", start.String(),
		"goal", goal.String(),
		"found", res.Found,
		"expanded", res.Expanded,
		"steps", res.Steps(),
		"cost", res.Cost,
		"elapsed", time.Since(began),
	)
	return res, nil
}

// VerifyPath checks that path is a valid route on gg from start to goal:
// non-empty, correct endpoints, every cell free, and each consecutive pair one
// permitted offset apart. It returns an error wrapping ErrInvalidPath.
func VerifyPath(gg *gridgraph.GridGraph, start, goal occupancy.Position, path []occupancy.Position) error {
	if len(path) == 0 {
		return fmt.Errorf("%w: empty", ErrInvalidPath)
	}
	if path[0] != start {
		return fmt.Errorf("%w: begins at %v, want %v", ErrInvalidPath, path[0], start)
	}
	if last := path[len(path)-1]; last != goal {
		return fmt.Errorf("%w: ends at %v, want %v", ErrInvalidPath, last, goal)
	}
	for i, p := range path {
		if !gg.Free(p) {
			return fmt.Errorf("%w: step %d at %v is not free", ErrInvalidPath, i, p)
		}
		if i > 0 && !gg.Adjacent(path[i-1], p) {
			return fmt.Errorf("%w: step %d jumps %v → %v", ErrInvalidPath, i, path[i-1], p)
		}
	}
	return nil
}
