package occupancy

// validateRect checks that values is non-empty and rectangular.
func validateRect[T any](values [][]T) (rows, cols int, err error) {
	if len(values) == 0 || len(values[0]) == 0 {
		return 0, 0, ErrEmptyGrid
	}
	rows, cols = len(values), len(values[0])
	for _, row := range values {
		if len(row) != cols {
			return 0, 0, ErrNonRectangular
		}
	}
	return rows, cols, nil
}

// FromMask builds a Grid directly from a boolean mask (true = free).
// The mask is copied; later changes to it do not affect the Grid.
func FromMask(mask [][]bool) (*Grid, error) {
	rows, cols, err := validateRect(mask)
	if err != nil {
		return nil, err
	}
	g := &Grid{rows: rows, cols: cols, free: make([]bool, rows*cols)}
	for r := 0; r < rows; r++ {
		copy(g.free[r*cols:(r+1)*cols], mask[r])
	}
	return g, nil
}

// Threshold builds a Grid without inflation: a cell is free iff its value is
// at least threshold.
func Threshold(raw [][]int, threshold int) (*Grid, error) {
	rows, cols, err := validateRect(raw)
	if err != nil {
		return nil, err
	}
	return normalize(raw, rows, cols, threshold), nil
}

// normalize converts an intensity grid into a Grid.
func normalize(values [][]int, rows, cols, threshold int) *Grid {
	g := &Grid{rows: rows, cols: cols, free: make([]bool, rows*cols)}
	for r := 0; r < rows; r++ {
		for c := 0; c < cols; c++ {
			g.free[r*cols+c] = values[r][c] >= threshold
		}
	}
	return g
}

// Rows returns the number of rows.
func (g *Grid) Rows() int { return g.rows }

// Cols returns the number of columns.
func (g *Grid) Cols() int { return g.cols }

// InBounds reports whether p lies within [0,rows)×[0,cols).
func (g *Grid) InBounds(p Position) bool {
	return p.Row >= 0 && p.Row < g.rows && p.Col >= 0 && p.Col < g.cols
}

// Free reports whether p is in bounds and traversable.
func (g *Grid) Free(p Position) bool {
	return g.InBounds(p) && g.free[p.Row*g.cols+p.Col]
}

// Values returns the grid as a fresh {0,1} matrix, 1 denoting free space.
func (g *Grid) Values() [][]int {
	out := make([][]int, g.rows)
	for r := range out {
		out[r] = make([]int, g.cols)
		for c := range out[r] {
			if g.free[r*g.cols+c] {
				out[r][c] = 1
			}
		}
	}
	return out
}

// ObstacleCount returns the number of blocked cells.
func (g *Grid) ObstacleCount() int {
	n := 0
	for _, f := range g.free {
		if !f {
			n++
		}
	}
	return n
}

// Obstacles lists blocked cells in row-major order.
func (g *Grid) Obstacles() []Position {
	out := make([]Position, 0, g.ObstacleCount())
	for i, f := range g.free {
		if !f {
			out = append(out, Position{Row: i / g.cols, Col: i % g.cols})
		}
	}
	return out
}
