// Package heuristic provides interchangeable distance estimators between two
// grid cells, used to order the frontier of informed searches.
//
//	| Kind      | Formula                                   | 4-conn admissible | 8-conn admissible |
//	|-----------|-------------------------------------------|-------------------|-------------------|
//	| manhattan | |dr| + |dc|                               | yes               | no                |
//	| euclidean | trunc(sqrt(dr² + dc²))                    | yes               | yes               |
//	| chebyshev | max(|dr|, |dc|)                           | yes               | yes               |
//	| octile    | max + (√2 − 1)·min                        | yes               | yes (tight)       |
//	| zero      | 0                                         | yes               | yes               |
//	| random    | uniform integer in [0, 100]               | no                | no                |
//
// The random ("bozo") heuristic is intentionally inadmissible and exists for
// benchmarking degenerate orderings. It draws from a caller-owned *rand.Rand,
// which is not goroutine-safe: give each concurrent search its own Func.
package heuristic
