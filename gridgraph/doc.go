// Package gridgraph treats an occupancy.Grid as a graph whose vertices are
// cells, materializing neighbours lazily while a search runs.
//
// What:
//
//   - GridGraph wraps an immutable occupancy.Grid with Conn4 or Conn8
//     connectivity and precomputed neighbour offsets.
//   - Run holds the discovery state of exactly one search: explored flags,
//     parent links and accumulated cost, stored in flat slices keyed by cell
//     index rather than on node objects.
//   - ConnectedComponents and Reachable give a cheap reachability answer for
//     diagnostics.
//
// Discovery rules (Run.Neighbors):
//
//  1. Offsets are the 4 cardinal deltas, or all 8 with Conn8.
//  2. Out-of-bounds candidates are dropped.
//  3. Explored candidates are dropped, unless AllowReopen is set and the new
//     path is strictly cheaper.
//  4. Obstacles are dropped.
//  5. Survivors get parent = current, cost = current cost + step weight
//     (1 cardinal, √2 diagonal), explored = true, and a Score of h (+ cost
//     when FoldCost is set).
//
// Concurrency:
//
//   - A GridGraph is read-only and may back any number of concurrent Runs.
//   - A Run is owned by one search and must never be shared or reused.
//
// Complexity:
//
//   - NewRun:              O(R×C) memory, allocated once per search.
//   - Run.Neighbors:       O(d), d = 4 or 8.
//   - ConnectedComponents: O(R×C×d), Memory: O(R×C).
//
// Errors:
//
//   - ErrNilGrid:      NewGridGraph received a nil grid.
//   - ErrConnectivity: connectivity degree other than 4 or 8.
package gridgraph
