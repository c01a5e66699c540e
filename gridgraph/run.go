package gridgraph

import (
	"github.com/katalvlaran/gridnav/heuristic"
	"github.com/katalvlaran/gridnav/occupancy"
)

// NewRun allocates fresh discovery state for one search toward goal.
// Every cell starts unexplored, parentless and at cost 0.
// Complexity: O(R×C) time and memory.
func (gg *GridGraph) NewRun(goal occupancy.Position, h heuristic.Func, opts RunOptions) *Run {
	n := gg.Size()
	r := &Run{
		gg:       gg,
		goal:     goal,
		h:        h,
		opts:     opts,
		explored: make([]bool, n),
		parent:   make([]int, n),
		cost:     make([]float64, n),
	}
	for i := range r.parent {
		r.parent[i] = -1
	}
	return r
}

// Graph returns the GridGraph this run searches.
func (r *Run) Graph() *GridGraph {
	return r.gg
}

// Goal returns the target cell.
func (r *Run) Goal() occupancy.Position {
	return r.goal
}

// Discover seeds the run with start: explored, cost 0, no parent.
func (r *Run) Discover(start occupancy.Position) Node {
	i := r.gg.Index(start)
	if !r.explored[i] {
		r.explored[i] = true
		r.count++
	}
	r.cost[i] = 0
	r.parent[i] = -1
	return r.node(start, 0)
}

// Neighbors materializes the surviving neighbours of cur and records their
// discovery (parent, cost, explored). See the package doc for the rules.
func (r *Run) Neighbors(cur Node) []Node {
	out := make([]Node, 0, len(r.gg.neighborOffsets))
	ci := r.gg.Index(cur.Pos)
	for _, d := range r.gg.neighborOffsets {
		p := cur.Pos.Add(d[0], d[1])
		if !r.gg.InBounds(p) {
			continue
		}
		i := r.gg.Index(p)
		g := cur.Cost + StepWeight(d)
		if r.explored[i] && (!r.opts.AllowReopen || g >= r.cost[i]) {
			continue
		}
		if !r.gg.Free(p) {
			continue
		}
		if !r.explored[i] {
			r.explored[i] = true
			r.count++
		}
		r.parent[i] = ci
		r.cost[i] = g
		out = append(out, r.node(p, g))
	}
	return out
}

func (r *Run) node(p occupancy.Position, g float64) Node {
	h := r.h(p, r.goal)
	n := Node{Pos: p, Cost: g, Heuristic: h, Score: h}
	if r.opts.FoldCost {
		n.Score += g
	}
	return n
}

// Parent returns the cell that discovered p. ok is false for the start cell
// and for undiscovered cells.
func (r *Run) Parent(p occupancy.Position) (parent occupancy.Position, ok bool) {
	pi := r.parent[r.gg.Index(p)]
	if pi < 0 {
		return occupancy.Position{}, false
	}
	return r.gg.Position(pi), true
}

// Explored reports whether p has been placed in a frontier during this run.
func (r *Run) Explored(p occupancy.Position) bool {
	return r.explored[r.gg.Index(p)]
}

// Cost returns the best accumulated cost recorded for p (0 if undiscovered).
func (r *Run) Cost(p occupancy.Position) float64 {
	return r.cost[r.gg.Index(p)]
}

// ExploredCount is the number of distinct cells discovered so far.
func (r *Run) ExploredCount() int {
	return r.count
}
