// Package gridgraph defines core types and options for the gridgraph
// subpackage of github.com/katalvlaran/gridnav.
package gridgraph

import (
	"fmt"

	"github.com/katalvlaran/gridnav/heuristic"
	"github.com/katalvlaran/gridnav/occupancy"
)

// Connectivity selects neighbor connectivity: orthogonal (Conn4) or including diagonals (Conn8).
type Connectivity int

const (
	// Conn4 uses 4-directional connectivity: N, E, S, W.
	Conn4 Connectivity = iota
	// Conn8 uses 8-directional connectivity: N, NE, E, SE, S, SW, W, NW.
	Conn8
)

// ConnectivityFromDegree maps 4 or 8 to Conn4 or Conn8.
func ConnectivityFromDegree(degree int) (Connectivity, error) {
	switch degree {
	case 4:
		return Conn4, nil
	case 8:
		return Conn8, nil
	}
	return 0, fmt.Errorf("%w: got %d", ErrConnectivity, degree)
}

// Degree returns 4 or 8.
func (c Connectivity) Degree() int {
	if c == Conn8 {
		return 8
	}
	return 4
}

// String returns "conn4" or "conn8".
func (c Connectivity) String() string {
	return fmt.Sprintf("conn%d", c.Degree())
}

// GridOptions contains tunable parameters for the graph view.
type GridOptions struct {
	// Conn chooses 4- or 8-directional connectivity.
	Conn Connectivity
}

// DefaultGridOptions returns GridOptions{Conn: Conn4}.
func DefaultGridOptions() GridOptions {
	return GridOptions{Conn: Conn4}
}

// GridGraph treats an occupancy grid as a graph. It is immutable once built.
// neighborOffsets is precomputed as (dRow, dCol) pairs.
type GridGraph struct {
	Rows, Cols      int
	Conn            Connectivity
	grid            *occupancy.Grid
	neighborOffsets [][2]int
}

// Node is one cell as seen by a single search run. It is a value: the
// authoritative discovery state lives in the Run.
type Node struct {
	Pos occupancy.Position
	// Cost is the accumulated path cost g from the start.
	Cost float64
	// Heuristic is the estimate h to the goal.
	Heuristic float64
	// Score orders the frontier: h+g with FoldCost, h otherwise.
	Score float64
}

// RunOptions tunes discovery bookkeeping for one search.
type RunOptions struct {
	// FoldCost adds the accumulated cost into Score (A*). Off for greedy and beam.
	FoldCost bool
	// AllowReopen lets an explored cell be rediscovered through a strictly
	// cheaper path. Off reproduces single-pass discovery.
	AllowReopen bool
}

// Run is the mutable discovery state of one search over a GridGraph.
type Run struct {
	gg       *GridGraph
	goal     occupancy.Position
	h        heuristic.Func
	opts     RunOptions
	explored []bool
	parent   []int
	cost     []float64
	count    int
}
