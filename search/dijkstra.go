package search

import (
	"fmt"
	"math"

	"github.com/katalvlaran/gridnav/gridgraph"
	"github.com/katalvlaran/gridnav/occupancy"
)

// Unreachable is the distance reported for cells the relaxation never reached.
const Unreachable = math.MaxInt64

// DistanceField is the result of a uniform-cost relaxation from one start
// cell: a step count and a predecessor for every cell reached. One field can
// answer PathTo for any number of goals.
type DistanceField struct {
	gg       *gridgraph.GridGraph
	start    occupancy.Position
	dist     []int64
	prev     []int
	settled  []bool
	pq       *frontier
	expanded int
}

// NewDistanceField runs the relaxation from start over every free cell of gg,
// stopping early only if budget dequeues are spent. onExpand may be nil.
//
// Loop:
//  1. dist[v] = +∞ for all v, dist[start] = 0; push start.
//  2. Pop the minimum; skip it if its distance exceeds dist[u] (stale entry).
//  3. Settle u; relax each free neighbour v with dist[u] + 1.
//  4. Push every strict improvement.
//
// A blocked or out-of-bounds start yields an empty field.
func NewDistanceField(gg *gridgraph.GridGraph, start occupancy.Position, budget int, onExpand func(gridgraph.Node)) (*DistanceField, error) {
	if gg == nil {
		return nil, ErrNilGraph
	}
	if budget <= 0 {
		return nil, fmt.Errorf("%w (%d)", ErrExpansionBudget, budget)
	}
	if !gg.InBounds(start) {
		return nil, fmt.Errorf("%w: start %v", ErrOutOfBounds, start)
	}
	if onExpand == nil {
		onExpand = func(gridgraph.Node) {}
	}

	f := &DistanceField{
		gg:      gg,
		start:   start,
		dist:    make([]int64, gg.Size()),
		prev:    make([]int, gg.Size()),
		settled: make([]bool, gg.Size()),
	}
	f.init()
	if gg.Free(start) {
		f.process(budget, onExpand)
	}
	return f, nil
}

// init sets every distance to +∞ and every predecessor to -1.
func (f *DistanceField) init() {
	for i := range f.dist {
		f.dist[i] = Unreachable
		f.prev[i] = -1
	}
}

// process is the main relaxation loop.
func (f *DistanceField) process(budget int, onExpand func(gridgraph.Node)) {
	si := f.gg.Index(f.start)
	f.dist[si] = 0

	f.pq = newFrontier(64)
	f.pq.push(gridgraph.Node{Pos: f.start})

	for f.pq.Len() > 0 && f.expanded < budget {
		item := f.pq.pop()
		f.expanded++
		u := f.gg.Index(item.Pos)
		d := int64(item.Cost)
		if d > f.dist[u] {
			continue
		}
		f.settled[u] = true
		onExpand(item)
		f.relax(item.Pos, d)
	}
}

// relax offers dist(u)+1 to every free neighbour of u.
func (f *DistanceField) relax(u occupancy.Position, d int64) {
	ui := f.gg.Index(u)
	nd := d + 1
	for _, off := range f.gg.NeighborOffsets() {
		v := u.Add(off[0], off[1])
		if !f.gg.Free(v) {
			continue
		}
		vi := f.gg.Index(v)
		if nd >= f.dist[vi] {
			continue
		}
		f.dist[vi] = nd
		f.prev[vi] = ui
		// lazy decrease-key: the old entry stays and is skipped as stale
		f.pq.push(gridgraph.Node{Pos: v, Cost: float64(nd), Score: float64(nd)})
	}
}

// Start returns the source cell.
func (f *DistanceField) Start() occupancy.Position {
	return f.start
}

// Expanded is the number of dequeues performed.
func (f *DistanceField) Expanded() int {
	return f.expanded
}

// Distance returns the settled step count to p. ok is false when p was not
// settled within the budget.
func (f *DistanceField) Distance(p occupancy.Position) (int64, bool) {
	if !f.gg.InBounds(p) {
		return Unreachable, false
	}
	i := f.gg.Index(p)
	if !f.settled[i] {
		return Unreachable, false
	}
	return f.dist[i], true
}

// PathTo reconstructs the start → goal path from the predecessor map.
// It returns nil when goal was never settled. A reconstructed path that does
// not begin at the start cell panics with *InvariantViolation.
func (f *DistanceField) PathTo(goal occupancy.Position) []occupancy.Position {
	if _, ok := f.Distance(goal); !ok {
		return nil
	}
	path := []occupancy.Position{goal}
	for at := f.prev[f.gg.Index(goal)]; at >= 0; at = f.prev[at] {
		path = append(path, f.gg.Position(at))
		if len(path) > len(f.prev) {
			panic(&InvariantViolation{Op: "dijkstra", Pos: goal, Detail: "predecessor cycle"})
		}
	}
	reverse(path)
	if path[0] != f.start {
		panic(&InvariantViolation{Op: "dijkstra", Pos: path[0], Detail: fmt.Sprintf("path does not begin at start %v", f.start)})
	}
	return path
}

// dijkstra adapts a DistanceField to the Search result shape.
func dijkstra(gg *gridgraph.GridGraph, start, goal occupancy.Position, o Options) *Result {
	// arguments were validated by Search
	f, _ := NewDistanceField(gg, start, o.ExpansionBudget, o.OnExpand)
	res := &Result{Algorithm: Dijkstra, Expanded: f.Expanded()}
	if d, ok := f.Distance(goal); ok {
		res.Found = true
		res.Cost = float64(d)
		res.Path = f.PathTo(goal)
	}
	return res
}
