package search

import (
	"github.com/katalvlaran/gridnav/gridgraph"
	"github.com/katalvlaran/gridnav/occupancy"
)

// bestFirst runs A* (fold = true, Score = g + h) or greedy best-first
// (fold = false, Score = h) until the goal is popped, the frontier empties,
// or the expansion budget is spent.
func bestFirst(gg *gridgraph.GridGraph, start, goal occupancy.Position, o Options, fold bool) *Result {
	algo := Greedy
	if fold {
		algo = AStar
	}
	reopen := fold && o.AllowReopen
	run := gg.NewRun(goal, o.Heuristic, gridgraph.RunOptions{FoldCost: fold, AllowReopen: reopen})

	open := newFrontier(64)
	open.push(run.Discover(start))

	res := &Result{Algorithm: algo}
	for open.Len() > 0 && res.Expanded < o.ExpansionBudget {
		cur := open.pop()
		res.Expanded++

		// a cheaper duplicate was pushed after this one
		if reopen && cur.Cost > run.Cost(cur.Pos) {
			continue
		}
		o.OnExpand(cur)

		if cur.Pos == goal {
			res.Found = true
			res.Cost = cur.Cost
			res.Path = Backtrack(run, start, goal)
			return res
		}
		for _, n := range run.Neighbors(cur) {
			open.push(n)
		}
	}
	return res
}
