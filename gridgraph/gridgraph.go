package gridgraph

import (
	"math"

	"github.com/katalvlaran/gridnav/occupancy"
)

var (
	offsets4 = [][2]int{{0, 1}, {1, 0}, {0, -1}, {-1, 0}}
	offsets8 = [][2]int{{0, 1}, {1, 0}, {0, -1}, {-1, 0}, {1, 1}, {1, -1}, {-1, 1}, {-1, -1}}
)

// NewGridGraph wraps grid with the connectivity in opts.
// Returns ErrNilGrid if grid is nil and ErrConnectivity for an unknown Conn.
// Complexity: O(1).
func NewGridGraph(grid *occupancy.Grid, opts GridOptions) (*GridGraph, error) {
	if grid == nil {
		return nil, ErrNilGrid
	}
	var offsets [][2]int
	switch opts.Conn {
	case Conn4:
		offsets = offsets4
	case Conn8:
		offsets = offsets8
	default:
		return nil, ErrConnectivity
	}
	return &GridGraph{
		Rows:            grid.Rows(),
		Cols:            grid.Cols(),
		Conn:            opts.Conn,
		grid:            grid,
		neighborOffsets: offsets,
	}, nil
}

// Grid returns the wrapped occupancy grid.
func (gg *GridGraph) Grid() *occupancy.Grid {
	return gg.grid
}

// InBounds reports whether p lies within the grid boundaries.
// Complexity: O(1).
func (gg *GridGraph) InBounds(p occupancy.Position) bool {
	return gg.grid.InBounds(p)
}

// Free reports whether p is in bounds and not an obstacle.
func (gg *GridGraph) Free(p occupancy.Position) bool {
	return gg.grid.Free(p)
}

// NeighborOffsets returns the precomputed (dRow, dCol) offsets. Callers must
// not modify the returned slice.
func (gg *GridGraph) NeighborOffsets() [][2]int {
	return gg.neighborOffsets
}

// StepWeight is 1 for a cardinal offset and √2 for a diagonal one.
func StepWeight(d [2]int) float64 {
	if d[0] != 0 && d[1] != 0 {
		return math.Sqrt2
	}
	return 1
}

// Index maps p to a row-major index: row*Cols + col.
// Complexity: O(1).
func (gg *GridGraph) Index(p occupancy.Position) int {
	return p.Row*gg.Cols + p.Col
}

// Position converts a row-major index back to a cell.
// Complexity: O(1).
func (gg *GridGraph) Position(idx int) occupancy.Position {
	return occupancy.Position{Row: idx / gg.Cols, Col: idx % gg.Cols}
}

// Size is the number of cells.
func (gg *GridGraph) Size() int {
	return gg.Rows * gg.Cols
}

// Adjacent reports whether b is exactly one permitted offset away from a.
func (gg *GridGraph) Adjacent(a, b occupancy.Position) bool {
	for _, d := range gg.neighborOffsets {
		if a.Row+d[0] == b.Row && a.Col+d[1] == b.Col {
			return true
		}
	}
	return false
}
