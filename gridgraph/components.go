package gridgraph

import "github.com/katalvlaran/gridnav/occupancy"

// ConnectedComponents finds all contiguous regions of free cells according
// to gg.Conn connectivity.
// Returns a slice of components; each component is a slice of cell-indices
// (row-major) in BFS order.
//
// To convert an index back to a cell, use Position(idx).
//
// Time:   O(R·C·d), where d = 4 or 8.
// Memory: O(R·C) for visited flags and output.
func (gg *GridGraph) ConnectedComponents() [][]int {
	_, comps := gg.label()
	return comps
}

// Reachable reports whether a and b are free cells in the same component.
// Complexity: O(R·C·d).
func (gg *GridGraph) Reachable(a, b occupancy.Position) bool {
	if !gg.Free(a) || !gg.Free(b) {
		return false
	}
	labels, _ := gg.label()
	return labels[gg.Index(a)] == labels[gg.Index(b)]
}

// label assigns every free cell its component number; obstacles get -1.
func (gg *GridGraph) label() ([]int, [][]int) {
	total := gg.Size()
	labels := make([]int, total)
	for i := range labels {
		labels[i] = -1
	}
	var comps [][]int

	for i0 := 0; i0 < total; i0++ {
		if labels[i0] >= 0 || !gg.Free(gg.Position(i0)) {
			continue
		}
		id := len(comps)
		// BFS to collect component
		queue := []int{i0}
		labels[i0] = id
		for qi := 0; qi < len(queue); qi++ {
			u := gg.Position(queue[qi])
			for _, d := range gg.neighborOffsets {
				v := u.Add(d[0], d[1])
				if !gg.Free(v) {
					continue
				}
				vi := gg.Index(v)
				if labels[vi] < 0 {
					labels[vi] = id
					queue = append(queue, vi)
				}
			}
		}
		comps = append(comps, queue)
	}
	return labels, comps
}
