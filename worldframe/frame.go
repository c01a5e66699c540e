package worldframe

import (
	"errors"
	"fmt"
	"math"

	"github.com/paulmach/orb"
	"github.com/paulmach/orb/planar"

	"github.com/katalvlaran/gridnav/occupancy"
)

var (
	// ErrInvalidFrame indicates a non-positive world size or grid dimension.
	ErrInvalidFrame = errors.New("worldframe: world size and grid dimensions must be positive")
	// ErrOutsideGrid indicates a world point that maps outside the grid.
	ErrOutsideGrid = errors.New("worldframe: point maps outside the grid")
)

// Frame is the world extent covered by a Rows×Cols grid.
type Frame struct {
	// WorldSize is the side length, in world units, spanned by Rows cells.
	WorldSize float64
	Rows      int
	Cols      int
}

// New returns a validated Frame.
func New(worldSize float64, rows, cols int) (Frame, error) {
	f := Frame{WorldSize: worldSize, Rows: rows, Cols: cols}
	if err := f.Validate(); err != nil {
		return Frame{}, err
	}
	return f, nil
}

// Validate checks that every dimension is positive and finite.
func (f Frame) Validate() error {
	if !(f.WorldSize > 0) || math.IsInf(f.WorldSize, 0) || f.Rows <= 0 || f.Cols <= 0 {
		return fmt.Errorf("%w: size=%v rows=%d cols=%d", ErrInvalidFrame, f.WorldSize, f.Rows, f.Cols)
	}
	return nil
}

// Scale is the world length of one cell.
func (f Frame) Scale() float64 {
	return f.WorldSize / float64(f.Rows)
}

// ToGrid maps a world point to the nearest cell. The result may lie outside
// the grid; use Locate for a checked conversion.
func (f Frame) ToGrid(pt orb.Point) occupancy.Position {
	s := f.Scale()
	return occupancy.Position{
		Row: int(math.RoundToEven(pt.Y()/s + float64(f.Rows)/2)),
		Col: int(math.RoundToEven(pt.X()/s + float64(f.Cols)/2)),
	}
}

// Locate is ToGrid with a bounds check.
func (f Frame) Locate(pt orb.Point) (occupancy.Position, error) {
	p := f.ToGrid(pt)
	if p.Row < 0 || p.Row >= f.Rows || p.Col < 0 || p.Col >= f.Cols {
		return p, fmt.Errorf("%w: %v -> %v", ErrOutsideGrid, pt, p)
	}
	return p, nil
}

// ToWorld returns the world coordinates of the centre of cell p.
func (f Frame) ToWorld(p occupancy.Position) orb.Point {
	s := f.Scale()
	return orb.Point{
		(float64(p.Col) - float64(f.Cols)/2) * s,
		(float64(p.Row) - float64(f.Rows)/2) * s,
	}
}

// Trace converts a grid path to world waypoints.
func (f Frame) Trace(path []occupancy.Position) orb.LineString {
	ls := make(orb.LineString, len(path))
	for i, p := range path {
		ls[i] = f.ToWorld(p)
	}
	return ls
}

// Length is the world length of the polyline through the path's cells.
func (f Frame) Length(path []occupancy.Position) float64 {
	if len(path) < 2 {
		return 0
	}
	return planar.Length(f.Trace(path))
}

// Bound is the world rectangle spanned by the grid's cell centres.
func (f Frame) Bound() orb.Bound {
	return orb.MultiPoint{
		f.ToWorld(occupancy.Position{}),
		f.ToWorld(occupancy.Position{Row: f.Rows - 1, Col: f.Cols - 1}),
	}.Bound()
}
