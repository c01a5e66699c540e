package search

import (
	"sort"

	"github.com/katalvlaran/gridnav/gridgraph"
	"github.com/katalvlaran/gridnav/occupancy"
)

// beam runs level-synchronous beam search: the goal test covers the whole
// level before any expansion, then every level node is expanded, survivors
// are pooled, sorted by h (stable) and cut to BeamWidth.
func beam(gg *gridgraph.GridGraph, start, goal occupancy.Position, o Options) *Result {
	run := gg.NewRun(goal, o.Heuristic, gridgraph.RunOptions{})
	level := []gridgraph.Node{run.Discover(start)}

	res := &Result{Algorithm: Beam}
	for len(level) > 0 {
		for _, n := range level {
			if n.Pos == goal {
				res.Found = true
				res.Cost = n.Cost
				res.Path = Backtrack(run, start, goal)
				return res
			}
		}

		var pool []gridgraph.Node
		for _, n := range level {
			if res.Expanded >= o.ExpansionBudget {
				return res
			}
			res.Expanded++
			o.OnExpand(n)
			pool = append(pool, run.Neighbors(n)...)
		}

		sort.SliceStable(pool, func(i, j int) bool {
			return pool[i].Score < pool[j].Score
		})
		if len(pool) > o.BeamWidth {
			pool = pool[:o.BeamWidth]
		}
		level = pool
	}
	return res
}
