package occupancy

import (
	"math"
	"sort"

	"github.com/dhconnelly/rtreego"
)

// cellTolerance is the half-extent of the degenerate rectangle stored per
// obstacle cell. Small enough that rectangle distance tracks centre distance.
const cellTolerance = 1e-6

// obstacleEntry wraps one blocked cell for R-tree storage.
type obstacleEntry struct {
	pos  Position
	bbox rtreego.Rect
}

// Bounds implements rtreego.Spatial.
func (e *obstacleEntry) Bounds() rtreego.Rect {
	return e.bbox
}

// ObstacleIndex answers proximity queries against the blocked cells of a Grid.
// It is read-only after construction and safe for concurrent queries.
type ObstacleIndex struct {
	tree *rtreego.Rtree
}

// NewObstacleIndex indexes every obstacle cell of g.
// Complexity: O(K log K) for K obstacle cells.
func NewObstacleIndex(g *Grid) *ObstacleIndex {
	obstacles := g.Obstacles()
	objs := make([]rtreego.Spatial, 0, len(obstacles))
	for _, p := range obstacles {
		objs = append(objs, &obstacleEntry{pos: p, bbox: cellPoint(p).ToRect(cellTolerance)})
	}
	// 2D, min 25, max 50 entries per node; bulk-loaded
	return &ObstacleIndex{tree: rtreego.NewTree(2, 25, 50, objs...)}
}

// Len returns the number of indexed obstacle cells.
func (ix *ObstacleIndex) Len() int {
	return ix.tree.Size()
}

// NearestObstacle returns the obstacle cell closest to p and its Euclidean
// distance in cells. ok is false when the grid has no obstacles.
func (ix *ObstacleIndex) NearestObstacle(p Position) (nearest Position, dist float64, ok bool) {
	if ix.tree.Size() == 0 {
		return Position{}, math.Inf(1), false
	}
	hit := ix.tree.NearestNeighbor(cellPoint(p))
	if hit == nil {
		return Position{}, math.Inf(1), false
	}
	nearest = hit.(*obstacleEntry).pos
	return nearest, cellDistance(p, nearest), true
}

// ObstaclesWithin lists obstacle cells whose centre lies within radius of p,
// in row-major order.
func (ix *ObstacleIndex) ObstaclesWithin(p Position, radius float64) []Position {
	if radius < 0 || ix.tree.Size() == 0 {
		return nil
	}
	side := 2*radius + 2*cellTolerance
	bbox, err := rtreego.NewRect(
		rtreego.Point{float64(p.Row) - radius - cellTolerance, float64(p.Col) - radius - cellTolerance},
		[]float64{side, side},
	)
	if err != nil {
		return nil
	}

	var out []Position
	for _, item := range ix.tree.SearchIntersect(bbox) {
		q := item.(*obstacleEntry).pos
		if cellDistance(p, q) <= radius {
			out = append(out, q)
		}
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Row != out[j].Row {
			return out[i].Row < out[j].Row
		}
		return out[i].Col < out[j].Col
	})
	return out
}

// Clearance returns the smallest obstacle distance over all cells of path,
// or +Inf when path is empty or the grid has no obstacles.
func (ix *ObstacleIndex) Clearance(path []Position) float64 {
	best := math.Inf(1)
	for _, p := range path {
		if _, d, ok := ix.NearestObstacle(p); ok && d < best {
			best = d
		}
	}
	return best
}

func cellPoint(p Position) rtreego.Point {
	return rtreego.Point{float64(p.Row), float64(p.Col)}
}

func cellDistance(a, b Position) float64 {
	dr := float64(a.Row - b.Row)
	dc := float64(a.Col - b.Col)
	return math.Sqrt(dr*dr + dc*dc)
}
