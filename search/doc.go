// Package search finds a path between two cells of a gridgraph.GridGraph
// with one of four strategies behind a single entry point, Search.
//
// Strategies:
//
//   - AStar:    priority queue on f = g + h. With an admissible heuristic it
//     returns shortest paths, except that explored cells are never reopened
//     by default: a cheaper route discovered after a cell was first reached is
//     ignored. Enable WithAllowReopen for the textbook variant.
//   - Greedy:   priority queue on h alone. Fast, not cost-optimal.
//   - Beam:     level-synchronous; each level expands every frontier node,
//     pools all discovered neighbours, keeps the best BeamWidth by h.
//   - Dijkstra: uniform-cost relaxation (unit step cost) over the whole grid,
//     producing a DistanceField from which the path to the goal is read.
//
// Expansion budget:
//
//	ExpansionBudget bounds the number of dequeue operations (node
//	expansions), not the length of the path. It is the only interruption
//	point; there is no cancellation or timeout.
//
// Outcomes:
//
//   - Found: Result.Path runs start → goal, each step one permitted offset.
//   - Not found (frontier exhausted, budget spent, blocked endpoint): an empty
//     Result.Path and a nil error. This is a normal outcome.
//   - Invalid arguments: an error wrapping ErrInvalidConfig.
//   - Corrupted discovery state: a panic carrying *InvariantViolation.
//
// Concurrency:
//
//	Every call allocates its own gridgraph.Run (or distance arrays), so many
//	searches may share one GridGraph. Options values holding a Random
//	heuristic must not be shared across goroutines.
//
// Complexity (V = cells, d = 4 or 8):
//
//   - AStar, Greedy: O(V log V) time, O(V) memory.
//   - Beam:          O(V·d log(k·d)) time, O(V) memory.
//   - Dijkstra:      O(V·d log V) time, O(V) memory.
package search
