package occupancy

// chebyshevRing lists the eight neighbours a single inflation pass touches.
var chebyshevRing = [8][2]int{
	{-1, 0}, {1, 0}, {0, -1}, {0, 1},
	{-1, -1}, {-1, 1}, {1, -1}, {1, 1},
}

// Inflate thresholds raw and dilates its obstacles by opts.Iterations cells,
// returning the resulting immutable Grid. raw is never modified.
//
// Behavior:
//  1. Validate shape and options.
//  2. For each pass, copy the current snapshot; every obstacle in the current
//     snapshot stamps InflatedValue onto its in-bounds 8-neighbours in the copy.
//  3. Adopt the copy and repeat.
//  4. Normalize: free iff value >= ObstacleThreshold.
//
// Complexity: O(I×R×C) time, O(R×C) memory.
func Inflate(raw [][]int, opts Options) (*Grid, error) {
	values, err := InflateValues(raw, opts)
	if err != nil {
		return nil, err
	}
	return normalize(values, len(values), len(values[0]), opts.ObstacleThreshold), nil
}

// InflateValues runs the same passes as Inflate but returns the inflated
// intensity grid before normalization.
func InflateValues(raw [][]int, opts Options) ([][]int, error) {
	rows, cols, err := validateRect(raw)
	if err != nil {
		return nil, err
	}
	if err = opts.Validate(); err != nil {
		return nil, err
	}

	cur := clone(raw)
	for i := 0; i < opts.Iterations; i++ {
		next := clone(cur)
		for r := 0; r < rows; r++ {
			for c := 0; c < cols; c++ {
				if cur[r][c] >= opts.ObstacleThreshold {
					continue
				}
				for _, d := range chebyshevRing {
					nr, nc := r+d[0], c+d[1]
					if nr < 0 || nr >= rows || nc < 0 || nc >= cols {
						continue
					}
					// obstacles already below threshold keep their own value
					if next[nr][nc] >= opts.ObstacleThreshold {
						next[nr][nc] = opts.InflatedValue
					}
				}
			}
		}
		cur = next
	}
	return cur, nil
}

func clone(values [][]int) [][]int {
	out := make([][]int, len(values))
	for r, row := range values {
		out[r] = make([]int, len(row))
		copy(out[r], row)
	}
	return out
}
