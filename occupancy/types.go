package occupancy

import (
	"errors"
	"fmt"
)

// Sentinel errors for occupancy grid construction.
var (
	// ErrEmptyGrid indicates the input 2D slice has no rows or no columns.
	ErrEmptyGrid = errors.New("occupancy: input grid must have at least one row and one column")
	// ErrNonRectangular indicates rows of differing lengths.
	ErrNonRectangular = errors.New("occupancy: all rows must have the same length")
	// ErrNegativeIterations indicates a negative inflation iteration count.
	ErrNegativeIterations = errors.New("occupancy: inflation iterations must be non-negative")
	// ErrInflatedValue indicates an InflatedValue that is not below ObstacleThreshold,
	// which would leave inflated margins traversable.
	ErrInflatedValue = errors.New("occupancy: inflated value must be below the obstacle threshold")
)

// Position is a 0-indexed (row, col) cell coordinate.
type Position struct {
	Row, Col int
}

// Pos is shorthand for Position{Row: row, Col: col}.
func Pos(row, col int) Position {
	return Position{Row: row, Col: col}
}

// Add returns p shifted by (dr, dc).
func (p Position) Add(dr, dc int) Position {
	return Position{Row: p.Row + dr, Col: p.Col + dc}
}

// String renders p as "(row,col)".
func (p Position) String() string {
	return fmt.Sprintf("(%d,%d)", p.Row, p.Col)
}

// Options tunes obstacle inflation.
type Options struct {
	// Iterations is the number of dilation passes (Chebyshev radius). 0 is identity.
	Iterations int
	// ObstacleThreshold: any value strictly below it is an obstacle.
	ObstacleThreshold int
	// InflatedValue is written into cells swallowed by a margin.
	// It must be below ObstacleThreshold.
	InflatedValue int
}

// DefaultOptions returns the settings used for 8-bit camera images:
// Iterations=8, ObstacleThreshold=100, InflatedValue=99.
func DefaultOptions() Options {
	return Options{
		Iterations:        8,
		ObstacleThreshold: 100,
		InflatedValue:     99,
	}
}

// Validate reports the first invalid field of o.
func (o Options) Validate() error {
	if o.Iterations < 0 {
		return fmt.Errorf("%w: got %d", ErrNegativeIterations, o.Iterations)
	}
	if o.InflatedValue >= o.ObstacleThreshold {
		return fmt.Errorf("%w: inflated=%d threshold=%d", ErrInflatedValue, o.InflatedValue, o.ObstacleThreshold)
	}
	return nil
}

// Grid is an immutable traversability map. Rows and columns are fixed at
// construction; free[r*cols+c] is true when the cell can be entered.
type Grid struct {
	rows, cols int
	free       []bool
}
