package planner

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/gridnav/gridgraph"
	"github.com/katalvlaran/gridnav/heuristic"
	"github.com/katalvlaran/gridnav/occupancy"
	"github.com/katalvlaran/gridnav/search"
)

// Sentinel errors for configuration and endpoint validation.
var (
	// ErrInvalidConfig is wrapped by every configuration error.
	ErrInvalidConfig = errors.New("planner: invalid configuration")

	// ErrOutOfBounds indicates a start or goal outside the inflated grid.
	ErrOutOfBounds = fmt.Errorf("%w: endpoint out of bounds", ErrInvalidConfig)

	// ErrBlockedEndpoint indicates a start or goal on an obstacle or margin cell.
	ErrBlockedEndpoint = fmt.Errorf("%w: endpoint is not traversable", ErrInvalidConfig)
)

// Config is the full set of planner tunables.
type Config struct {
	InflationIterations int    `yaml:"inflation_iterations"`
	ObstacleThreshold   int    `yaml:"obstacle_threshold"`
	InflatedValue       int    `yaml:"inflated_value"`
	Connectivity        int    `yaml:"connectivity"`
	Heuristic           string `yaml:"heuristic"`
	Algorithm           string `yaml:"algorithm"`
	BeamWidth           int    `yaml:"beam_width"`
	ExpansionBudget     int    `yaml:"expansion_budget"`
	AllowReopen         bool   `yaml:"allow_reopen"`
	Seed                int64  `yaml:"seed"`
}

// DefaultConfig returns the settings used for 8-bit camera frames:
// eight inflation passes, threshold 100, A* with Manhattan on a 4-connected
// grid, beam width 2 and a budget of one million expansions.
func DefaultConfig() Config {
	occ := occupancy.DefaultOptions()
	return Config{
		InflationIterations: occ.Iterations,
		ObstacleThreshold:   occ.ObstacleThreshold,
		InflatedValue:       occ.InflatedValue,
		Connectivity:        4,
		Heuristic:           heuristic.KindManhattan.String(),
		Algorithm:           search.AStar.String(),
		BeamWidth:           search.DefaultBeamWidth,
		ExpansionBudget:     search.DefaultExpansionBudget,
	}
}

// LoadConfig reads and validates a YAML config file. Keys absent from the
// file keep their DefaultConfig value.
func LoadConfig(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("planner: read config: %w", err)
	}
	return ParseConfig(data)
}

// ParseConfig decodes YAML over DefaultConfig and validates the result.
// An empty document yields the defaults.
func ParseConfig(data []byte) (Config, error) {
	cfg := DefaultConfig()
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
		return Config{}, fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Marshal renders c as YAML.
func (c Config) Marshal() ([]byte, error) {
	return yaml.Marshal(c)
}

// Validate reports every invalid field of c, joined, each wrapping
// ErrInvalidConfig.
func (c Config) Validate() error {
	var errs []error
	if err := c.OccupancyOptions().Validate(); err != nil {
		errs = append(errs, err)
	}
	if _, err := gridgraph.ConnectivityFromDegree(c.Connectivity); err != nil {
		errs = append(errs, err)
	}
	if _, err := heuristic.ParseKind(c.Heuristic); err != nil {
		errs = append(errs, err)
	}
	if _, err := search.ParseAlgorithm(c.Algorithm); err != nil {
		errs = append(errs, err)
	}
	if c.BeamWidth <= 0 {
		errs = append(errs, fmt.Errorf("%w (%d)", search.ErrBeamWidth, c.BeamWidth))
	}
	if c.ExpansionBudget <= 0 {
		errs = append(errs, fmt.Errorf("%w (%d)", search.ErrExpansionBudget, c.ExpansionBudget))
	}
	if len(errs) == 0 {
		return nil
	}
	return fmt.Errorf("%w: %w", ErrInvalidConfig, errors.Join(errs...))
}

// OccupancyOptions converts the inflation fields to occupancy.Options.
func (c Config) OccupancyOptions() occupancy.Options {
	return occupancy.Options{
		Iterations:        c.InflationIterations,
		ObstacleThreshold: c.ObstacleThreshold,
		InflatedValue:     c.InflatedValue,
	}
}
