// Package gridgen builds synthetic intensity grids for tests, benchmarks
// and demos.
//
// What:
//
//   - Build allocates a rows×cols canvas filled with the free intensity and
//     applies Generators to it in order, so layers compose:
//     Build(64, 64, nil, Random(0.2), Border(), Clear(start, goal)).
//   - Generators: Random (independent obstacle cells), Maze (perfect maze
//     carved by randomized depth-first search), Border, Rect, Clear.
//
// Determinism:
//
//   - Every stochastic generator draws from the configured *rand.Rand. The
//     default is seeded with 1, so equal inputs give equal grids.
//   - Cells are visited in row-major order; Maze shuffles directions with the
//     same source.
//
// Errors:
//
//   - ErrTooSmall:           non-positive dimensions or a maze smaller than 3×3.
//   - ErrInvalidProbability: Random density outside [0,1].
//   - ErrOutOfRange:         Rect or Clear outside the canvas.
//   - ErrNilGenerator:       a nil Generator passed to Build.
package gridgen
