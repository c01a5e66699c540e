// Package gridnav plans obstacle-free paths across 2-D occupancy grids taken
// from a top-down camera.
//
// What is gridnav?
//
//	A small pipeline of focused packages:
//		• occupancy:  validate raw intensities, inflate obstacles, R-tree clearance
//		• heuristic:  Manhattan, Euclidean, Chebyshev, Octile, zero and random estimates
//		• gridgraph:  the grid viewed as a 4- or 8-connected graph, per-search state
//		• search:     A*, greedy best-first, beam search and Dijkstra behind one Search call
//		• planner:    YAML configuration and the end-to-end Plan pipeline
//		• worldframe: world ↔ grid coordinates, GeoJSON export
//		• gridio:     text, PGM and PNG grid files
//
// Under the hood the flow is always the same:
//
//	raw [][]int ─Inflate→ occupancy.Grid ─NewGridGraph→ gridgraph.GridGraph ─Search→ search.Result
//
// "No path" is an ordinary result, never an error. Invalid settings and
// endpoints are errors wrapping an ErrInvalidConfig sentinel of the package
// that rejected them.
//
// The cmd/gridplan command exposes the pipeline on the command line:
//
//	go install github.com/katalvlaran/gridnav/cmd/gridplan@latest
//	gridplan plan --grid frame.pgm --start 10,12 --goal 400,380
package gridnav
