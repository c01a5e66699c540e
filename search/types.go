package search

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/katalvlaran/gridnav/gridgraph"
	"github.com/katalvlaran/gridnav/heuristic"
	"github.com/katalvlaran/gridnav/occupancy"
)

// Sentinel errors returned by Search.
var (
	// ErrInvalidConfig is wrapped by every argument validation error.
	ErrInvalidConfig = errors.New("search: invalid configuration")

	// ErrNilGraph indicates that a nil *gridgraph.GridGraph was passed.
	ErrNilGraph = fmt.Errorf("%w: graph is nil", ErrInvalidConfig)

	// ErrOutOfBounds indicates a start or goal outside the grid.
	ErrOutOfBounds = fmt.Errorf("%w: position out of bounds", ErrInvalidConfig)

	// ErrBeamWidth indicates a beam width that is not positive.
	ErrBeamWidth = fmt.Errorf("%w: beam width must be positive", ErrInvalidConfig)

	// ErrExpansionBudget indicates an expansion budget that is not positive.
	ErrExpansionBudget = fmt.Errorf("%w: expansion budget must be positive", ErrInvalidConfig)

	// ErrUnknownAlgorithm indicates an unrecognized Algorithm value or name.
	ErrUnknownAlgorithm = fmt.Errorf("%w: unknown algorithm", ErrInvalidConfig)

	// ErrInvariant is the sentinel carried by *InvariantViolation panics.
	ErrInvariant = errors.New("search: internal invariant violated")

	// ErrInvalidPath is returned by VerifyPath.
	ErrInvalidPath = errors.New("search: invalid path")
)

// Algorithm selects the search strategy.
type Algorithm int

const (
	// AStar orders the frontier by g + h.
	AStar Algorithm = iota
	// Greedy orders the frontier by h only.
	Greedy
	// Beam keeps the best BeamWidth nodes per level.
	Beam
	// Dijkstra runs uniform-cost relaxation over the whole grid.
	Dijkstra
)

var algorithmNames = [...]string{
	AStar:    "astar",
	Greedy:   "greedy",
	Beam:     "beam",
	Dijkstra: "dijkstra",
}

// String returns the canonical lowercase name.
func (a Algorithm) String() string {
	if a < 0 || int(a) >= len(algorithmNames) {
		return fmt.Sprintf("Algorithm(%d)", int(a))
	}
	return algorithmNames[a]
}

// ParseAlgorithm maps a name to an Algorithm. Accepted spellings include the
// historical command-line names a_star, greedy_first and djikstra.
func ParseAlgorithm(name string) (Algorithm, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "astar", "a_star", "a*":
		return AStar, nil
	case "greedy", "greedy_first", "best_first":
		return Greedy, nil
	case "beam":
		return Beam, nil
	case "dijkstra", "djikstra", "ucs", "uniform_cost":
		return Dijkstra, nil
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownAlgorithm, name)
}

// DefaultExpansionBudget is used when no budget is configured.
const DefaultExpansionBudget = 1_000_000

// DefaultBeamWidth is the beam width used when none is configured.
const DefaultBeamWidth = 2

// Options configures one Search call.
type Options struct {
	// Algorithm selects the strategy. Default AStar.
	Algorithm Algorithm

	// Heuristic estimates distance to the goal. Default heuristic.Manhattan.
	// Ignored by Dijkstra.
	Heuristic heuristic.Func

	// BeamWidth is the number of nodes kept per level (Beam only). Must be > 0.
	BeamWidth int

	// ExpansionBudget bounds dequeue operations. Must be > 0.
	ExpansionBudget int

	// AllowReopen lets A* revisit explored cells through cheaper paths.
	AllowReopen bool

	// Logger receives one Debug record per search. Default discards.
	Logger *slog.Logger

	// OnExpand is called for each node as it is expanded.
	OnExpand func(n gridgraph.Node)

	// internal error recorded during option parsing
	err error
}

// Option represents a functional option for configuring Search.
type Option func(*Options)

// DefaultOptions returns an Options value with:
//   - Algorithm:       AStar
//   - Heuristic:       heuristic.Manhattan
//   - BeamWidth:       DefaultBeamWidth
//   - ExpansionBudget: DefaultExpansionBudget
//   - AllowReopen:     false
//   - Logger:          discarding logger
//   - OnExpand:        no-op
func DefaultOptions() Options {
	return Options{
		Algorithm:       AStar,
		Heuristic:       heuristic.Manhattan,
		BeamWidth:       DefaultBeamWidth,
		ExpansionBudget: DefaultExpansionBudget,
		Logger:          slog.New(slog.NewTextHandler(io.Discard, nil)),
		OnExpand:        func(gridgraph.Node) {},
	}
}

// WithAlgorithm selects the strategy.
func WithAlgorithm(a Algorithm) Option {
	return func(o *Options) {
		if a < AStar || a > Dijkstra {
			o.err = fmt.Errorf("%w: %v", ErrUnknownAlgorithm, a)
			return
		}
		o.Algorithm = a
	}
}

// WithHeuristic sets the heuristic; nil keeps the current one.
func WithHeuristic(h heuristic.Func) Option {
	return func(o *Options) {
		if h != nil {
			o.Heuristic = h
		}
	}
}

// WithBeamWidth sets the beam width. Values ≤ 0 are recorded as ErrBeamWidth
// and surface from Search when the Beam strategy runs.
func WithBeamWidth(k int) Option {
	return func(o *Options) {
		o.BeamWidth = k
	}
}

// WithExpansionBudget bounds the number of node expansions.
//
//	n > 0: limit to n dequeues
//	n ≤ 0: invalid option → ErrExpansionBudget
func WithExpansionBudget(n int) Option {
	return func(o *Options) {
		if n <= 0 {
			o.err = fmt.Errorf("%w (%d)", ErrExpansionBudget, n)
			return
		}
		o.ExpansionBudget = n
	}
}

// WithAllowReopen enables or disables reopening explored cells in A*.
func WithAllowReopen(allow bool) Option {
	return func(o *Options) {
		o.AllowReopen = allow
	}
}

// WithLogger routes the per-search Debug record to l.
func WithLogger(l *slog.Logger) Option {
	return func(o *Options) {
		if l != nil {
			o.Logger = l
		}
	}
}

// WithOnExpand registers a callback run for every expanded node.
func WithOnExpand(fn func(n gridgraph.Node)) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnExpand = fn
		}
	}
}

// CostUnit names how Result.Cost is measured.
type CostUnit string

const (
	// CostWeighted charges 1 per orthogonal move and √2 per diagonal.
	CostWeighted CostUnit = "weighted"
	// CostSteps charges 1 per move.
	CostSteps CostUnit = "steps"
)

// Result holds the outcome of a search.
//   - Path:     start → goal inclusive; empty when Found is false.
//   - Expanded: number of dequeue operations performed.
//   - Cost:     accumulated cost of Path, in the unit CostUnit reports.
type Result struct {
	Algorithm Algorithm
	Path      []occupancy.Position
	Found     bool
	Expanded  int
	Cost      float64
}

// CostUnit reports the unit of Cost. Dijkstra relaxes with unit steps, so
// its cost only equals the others' on Conn4 grids.
func (r *Result) CostUnit() CostUnit {
	if r.Algorithm == Dijkstra {
		return CostSteps
	}
	return CostWeighted
}

// Steps is the number of moves in Path (0 when not found or start == goal).
func (r *Result) Steps() int {
	if len(r.Path) == 0 {
		return 0
	}
	return len(r.Path) - 1
}

// InvariantViolation is the panic value raised when discovery state is
// inconsistent, e.g. a parent chain that does not lead back to the start.
type InvariantViolation struct {
	Op     string
	Pos    occupancy.Position
	Detail string
}

// Error implements error.
func (e *InvariantViolation) Error() string {
	return fmt.Sprintf("%v: %s at %v: %s", ErrInvariant, e.Op, e.Pos, e.Detail)
}

// Unwrap lets errors.Is(v, ErrInvariant) match a recovered violation.
func (e *InvariantViolation) Unwrap() error {
	return ErrInvariant
}
