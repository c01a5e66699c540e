package search

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/gridnav/gridgraph"
	"github.com/katalvlaran/gridnav/occupancy"
)

// corridorField relaxes a 1×3 open corridor from (0,0).
func corridorField(t *testing.T) *DistanceField {
	t.Helper()
	grid, err := occupancy.FromMask([][]bool{{true, true, true}})
	require.NoError(t, err)
	gg, err := gridgraph.NewGridGraph(grid, gridgraph.GridOptions{Conn: gridgraph.Conn4})
	require.NoError(t, err)
	f, err := NewDistanceField(gg, occupancy.Pos(0, 0), DefaultExpansionBudget, nil)
	require.NoError(t, err)
	return f
}

func recoverViolation(t *testing.T, fn func()) *InvariantViolation {
	t.Helper()
	var recovered any
	func() {
		defer func() { recovered = recover() }()
		fn()
	}()
	require.NotNil(t, recovered)
	v, ok := recovered.(*InvariantViolation)
	require.True(t, ok, "panic value %T", recovered)
	assert.True(t, errors.Is(v, ErrInvariant))
	return v
}

func TestPathTo_ChainMissingStartPanics(t *testing.T) {
	f := corridorField(t)
	goal := occupancy.Pos(0, 2)
	require.Len(t, f.PathTo(goal), 3)

	// cut the chain above the start
	f.prev[f.gg.Index(occupancy.Pos(0, 1))] = -1

	v := recoverViolation(t, func() { f.PathTo(goal) })
	assert.Equal(t, "dijkstra", v.Op)
	assert.Equal(t, occupancy.Pos(0, 1), v.Pos)
	assert.Contains(t, v.Detail, "does not begin at start")
}

func TestPathTo_PredecessorCyclePanics(t *testing.T) {
	f := corridorField(t)
	goal := occupancy.Pos(0, 2)
	f.prev[f.gg.Index(occupancy.Pos(0, 0))] = f.gg.Index(goal)

	v := recoverViolation(t, func() { f.PathTo(goal) })
	assert.Equal(t, goal, v.Pos)
	assert.Equal(t, "predecessor cycle", v.Detail)
}
