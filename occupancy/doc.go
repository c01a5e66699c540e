// Package occupancy turns raw sensed intensities into an immutable
// traversability grid, growing obstacles by a safety margin on the way.
//
// What:
//
//   - Grid is a rows×cols boolean map indexed [row][col]; true means free.
//   - Inflate dilates every obstacle (value < ObstacleThreshold) by one cell of
//     Chebyshev radius per iteration, using a fresh write buffer per pass so a
//     single pass never cascades further than one cell.
//   - ObstacleIndex answers clearance queries ("how close does this path get to
//     an obstacle?") over an R-tree of obstacle cells.
//
// Why:
//
//   - A robot is not a point: inflating obstacles by its footprint lets the
//     planner treat it as one.
//   - Keeping the grid immutable lets any number of searches share it.
//
// Complexity:
//
//   - Inflate:          O(I×R×C), Memory: O(R×C)  (I = iterations).
//   - NewObstacleIndex: O(K log K), Memory: O(K)    (K = obstacle cells).
//
// Errors:
//
//   - ErrEmptyGrid:          input grid has no rows or no columns.
//   - ErrNonRectangular:     rows have differing lengths.
//   - ErrNegativeIterations: Iterations < 0.
//   - ErrInflatedValue:      InflatedValue would not mark margins as obstacles.
package occupancy
