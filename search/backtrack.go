package search

import (
	"github.com/katalvlaran/gridnav/gridgraph"
	"github.com/katalvlaran/gridnav/occupancy"
)

// Backtrack follows the parent links recorded in run from goal back to start
// and returns the cells in start → goal order.
//
// A chain that ends before reaching start, or that is longer than the grid
// has cells, means the run's discovery state is corrupt; Backtrack panics
// with *InvariantViolation rather than returning a partial path.
//
// Complexity: O(L) for a path of L cells.
func Backtrack(run *gridgraph.Run, start, goal occupancy.Position) []occupancy.Position {
	limit := run.Graph().Size()
	path := []occupancy.Position{goal}
	for cur := goal; cur != start; {
		parent, ok := run.Parent(cur)
		if !ok {
			panic(&InvariantViolation{Op: "backtrack", Pos: cur, Detail: "parent chain broken before start"})
		}
		path = append(path, parent)
		if len(path) > limit {
			panic(&InvariantViolation{Op: "backtrack", Pos: cur, Detail: "parent chain longer than grid"})
		}
		cur = parent
	}
	reverse(path)
	return path
}

func reverse(path []occupancy.Position) {
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}
}
