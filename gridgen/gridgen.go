package gridgen

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/gridnav/occupancy"
)

// Sentinel errors.
var (
	ErrTooSmall           = errors.New("gridgen: grid is too small")
	ErrInvalidProbability = errors.New("gridgen: probability must be in [0,1]")
	ErrOutOfRange         = errors.New("gridgen: cell outside the grid")
	ErrNilGenerator       = errors.New("gridgen: nil generator")
)

// Canvas is the grid under construction.
type Canvas struct {
	Values [][]int
	cfg    config
}

// Rows returns the number of rows.
func (cv *Canvas) Rows() int { return len(cv.Values) }

// Cols returns the number of columns.
func (cv *Canvas) Cols() int { return len(cv.Values[0]) }

func (cv *Canvas) inBounds(p occupancy.Position) bool {
	return p.Row >= 0 && p.Row < cv.Rows() && p.Col >= 0 && p.Col < cv.Cols()
}

func (cv *Canvas) fill(v int) {
	for _, row := range cv.Values {
		for c := range row {
			row[c] = v
		}
	}
}

// Generator draws onto a Canvas.
type Generator func(cv *Canvas) error

// Build returns a rows×cols grid after applying gens in order.
func Build(rows, cols int, opts []Option, gens ...Generator) ([][]int, error) {
	if rows <= 0 || cols <= 0 {
		return nil, fmt.Errorf("Build: %dx%d: %w", rows, cols, ErrTooSmall)
	}
	cv := &Canvas{Values: make([][]int, rows), cfg: newConfig(opts...)}
	for r := range cv.Values {
		cv.Values[r] = make([]int, cols)
	}
	cv.fill(cv.cfg.free)

	for i, gen := range gens {
		if gen == nil {
			return nil, fmt.Errorf("Build: generator %d: %w", i, ErrNilGenerator)
		}
		if err := gen(cv); err != nil {
			return nil, fmt.Errorf("Build: %w", err)
		}
	}
	return cv.Values, nil
}

// Random turns each cell into an obstacle independently with probability p.
func Random(p float64) Generator {
	return func(cv *Canvas) error {
		if p < 0 || p > 1 {
			return fmt.Errorf("Random: p=%v: %w", p, ErrInvalidProbability)
		}
		for _, row := range cv.Values {
			for c := range row {
				if cv.cfg.rng.Float64() < p {
					row[c] = cv.cfg.obstacle
				}
			}
		}
		return nil
	}
}

// Border blocks the outermost ring of cells.
func Border() Generator {
	return func(cv *Canvas) error {
		last := cv.Rows() - 1
		for c := range cv.Values[0] {
			cv.Values[0][c] = cv.cfg.obstacle
			cv.Values[last][c] = cv.cfg.obstacle
		}
		for _, row := range cv.Values {
			row[0] = cv.cfg.obstacle
			row[len(row)-1] = cv.cfg.obstacle
		}
		return nil
	}
}

// Rect blocks the inclusive rectangle spanned by corners a and b.
func Rect(a, b occupancy.Position) Generator {
	return func(cv *Canvas) error {
		if !cv.inBounds(a) || !cv.inBounds(b) {
			return fmt.Errorf("Rect: %v-%v: %w", a, b, ErrOutOfRange)
		}
		r0, r1 := min(a.Row, b.Row), max(a.Row, b.Row)
		c0, c1 := min(a.Col, b.Col), max(a.Col, b.Col)
		for r := r0; r <= r1; r++ {
			for c := c0; c <= c1; c++ {
				cv.Values[r][c] = cv.cfg.obstacle
			}
		}
		return nil
	}
}

// Clear frees the given cells, typically a start and goal.
func Clear(cells ...occupancy.Position) Generator {
	return func(cv *Canvas) error {
		for _, p := range cells {
			if !cv.inBounds(p) {
				return fmt.Errorf("Clear: %v: %w", p, ErrOutOfRange)
			}
			cv.Values[p.Row][p.Col] = cv.cfg.free
		}
		return nil
	}
}

// mazeSteps moves two cells at a time so walls stay between corridors.
var mazeSteps = [4][2]int{{0, 2}, {2, 0}, {0, -2}, {-2, 0}}

// Maze overwrites the canvas with a perfect maze: corridors on odd
// coordinates, every free cell reachable from (1,1) by exactly one route
// under 4-connectivity. An even dimension leaves its last row or column
// blocked.
func Maze() Generator {
	return func(cv *Canvas) error {
		if cv.Rows() < 3 || cv.Cols() < 3 {
			return fmt.Errorf("Maze: %dx%d: %w", cv.Rows(), cv.Cols(), ErrTooSmall)
		}
		cv.fill(cv.cfg.obstacle)

		start := occupancy.Pos(1, 1)
		cv.Values[1][1] = cv.cfg.free
		stack := []occupancy.Position{start}
		for len(stack) > 0 {
			cur := stack[len(stack)-1]
			order := cv.cfg.rng.Perm(len(mazeSteps))

			carved := false
			for _, k := range order {
				d := mazeSteps[k]
				next := cur.Add(d[0], d[1])
				if next.Row <= 0 || next.Row >= cv.Rows()-1 || next.Col <= 0 || next.Col >= cv.Cols()-1 {
					continue
				}
				if cv.Values[next.Row][next.Col] == cv.cfg.free {
					continue
				}
				// knock out the wall between cur and next
				cv.Values[cur.Row+d[0]/2][cur.Col+d[1]/2] = cv.cfg.free
				cv.Values[next.Row][next.Col] = cv.cfg.free
				stack = append(stack, next)
				carved = true
				break
			}
			if !carved {
				stack = stack[:len(stack)-1]
			}
		}
		return nil
	}
}
