package planner_test

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/gridnav/gridgraph"
	"github.com/katalvlaran/gridnav/heuristic"
	"github.com/katalvlaran/gridnav/occupancy"
	"github.com/katalvlaran/gridnav/planner"
	"github.com/katalvlaran/gridnav/search"
)

func TestDefaultConfig(t *testing.T) {
	cfg := planner.DefaultConfig()
	require.NoError(t, cfg.Validate())
	assert.Equal(t, 8, cfg.InflationIterations)
	assert.Equal(t, 100, cfg.ObstacleThreshold)
	assert.Equal(t, 99, cfg.InflatedValue)
	assert.Equal(t, 4, cfg.Connectivity)
	assert.Equal(t, "manhattan", cfg.Heuristic)
	assert.Equal(t, "astar", cfg.Algorithm)
	assert.Equal(t, 2, cfg.BeamWidth)
	assert.Equal(t, 1_000_000, cfg.ExpansionBudget)
	assert.False(t, cfg.AllowReopen)
	assert.Zero(t, cfg.Seed)
}

func TestConfig_MarshalRoundTrip(t *testing.T) {
	want := planner.DefaultConfig()
	data, err := want.Marshal()
	require.NoError(t, err)
	assert.Contains(t, string(data), "inflation_iterations: 8")

	got, err := planner.ParseConfig(data)
	require.NoError(t, err)
	assert.Equal(t, want, got)
}

func TestParseConfig_EmptyKeepsDefaults(t *testing.T) {
	got, err := planner.ParseConfig(nil)
	require.NoError(t, err)
	assert.Equal(t, planner.DefaultConfig(), got)
}

func TestParseConfig_PartialOverride(t *testing.T) {
	got, err := planner.ParseConfig([]byte("algorithm: greedy_first\nconnectivity: 8\nseed: 42\n"))
	require.NoError(t, err)
	assert.Equal(t, "greedy_first", got.Algorithm)
	assert.Equal(t, 8, got.Connectivity)
	assert.Equal(t, int64(42), got.Seed)
	// untouched keys keep defaults
	assert.Equal(t, 8, got.InflationIterations)
	assert.Equal(t, "manhattan", got.Heuristic)
}

func TestParseConfig_Rejects(t *testing.T) {
	cases := []struct {
		name string
		yaml string
		is   []error
	}{
		{"malformed", "algorithm: [", nil},
		{"unknown key", "radius: 3\n", nil},
		{"negative iterations", "inflation_iterations: -1\n", []error{occupancy.ErrNegativeIterations}},
		{"inflated not obstacle", "inflated_value: 100\n", []error{occupancy.ErrInflatedValue}},
		{"connectivity", "connectivity: 6\n", []error{gridgraph.ErrConnectivity}},
		{"heuristic", "heuristic: straight_line\n", []error{heuristic.ErrUnknownHeuristic}},
		{"algorithm", "algorithm: dfs\n", []error{search.ErrUnknownAlgorithm}},
		{"beam width", "beam_width: 0\n", []error{search.ErrBeamWidth}},
		{"budget", "expansion_budget: -5\n", []error{search.ErrExpansionBudget}},
		{"several", "connectivity: 3\nexpansion_budget: 0\n", []error{gridgraph.ErrConnectivity, search.ErrExpansionBudget}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := planner.ParseConfig([]byte(tc.yaml))
			require.Error(t, err)
			assert.ErrorIs(t, err, planner.ErrInvalidConfig)
			for _, target := range tc.is {
				assert.ErrorIs(t, err, target)
			}
		})
	}
}

func TestLoadConfig(t *testing.T) {
	cfg, err := planner.LoadConfig(filepath.Join("testdata", "beam.yaml"))
	require.NoError(t, err)
	assert.Equal(t, 1, cfg.InflationIterations)
	assert.Equal(t, 8, cfg.Connectivity)
	assert.Equal(t, "octile", cfg.Heuristic)
	assert.Equal(t, "beam", cfg.Algorithm)
	assert.Equal(t, 16, cfg.BeamWidth)
	assert.Equal(t, 5000, cfg.ExpansionBudget)
	assert.Equal(t, 100, cfg.ObstacleThreshold)

	_, err = planner.LoadConfig(filepath.Join("testdata", "unknown_key.yaml"))
	assert.ErrorIs(t, err, planner.ErrInvalidConfig)

	_, err = planner.LoadConfig(filepath.Join("testdata", "missing.yaml"))
	require.Error(t, err)
	assert.NotErrorIs(t, err, planner.ErrInvalidConfig)
}
