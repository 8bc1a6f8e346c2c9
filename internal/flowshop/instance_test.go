package flowshop_test

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"

	"fsspSolver/internal/flowshop"
)

// TestNewInstanceValid builds a 3×3 instance and checks the accessors.
func TestNewInstanceValid(t *testing.T) {
	inst, err := flowshop.NewInstance(3, 3, []int{
		8, 1, 5,
		3, 7, 2,
		4, 6, 7,
	})
	require.NoError(t, err)
	require.Equal(t, 3, inst.Jobs)
	require.Equal(t, 3, inst.Machines)
	require.Equal(t, 8, inst.Time(0, 0))
	require.Equal(t, 2, inst.Time(1, 2))
	require.Equal(t, 6, inst.Time(2, 1))
}

// TestNewInstanceRejectsBadInput covers the validation failure paths.
func TestNewInstanceRejectsBadInput(t *testing.T) {
	_, err := flowshop.NewInstance(0, 2, nil)
	require.Error(t, err)

	_, err = flowshop.NewInstance(2, 0, nil)
	require.Error(t, err)

	_, err = flowshop.NewInstance(2, 2, []int{1, 2, 3})
	require.Error(t, err)

	_, err = flowshop.NewInstance(2, 2, []int{1, 2, 3, -4})
	require.Error(t, err)
}

// TestTotalTime sums a job's processing times across machines.
func TestTotalTime(t *testing.T) {
	inst, err := flowshop.NewInstance(3, 3, []int{
		8, 1, 5,
		3, 7, 2,
		4, 6, 7,
	})
	require.NoError(t, err)
	require.Equal(t, 14, inst.TotalTime(0))
	require.Equal(t, 12, inst.TotalTime(1))
	require.Equal(t, 17, inst.TotalTime(2))
}

// TestRandomInstance checks dimensions and time bounds of generated matrices.
func TestRandomInstance(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	inst := flowshop.RandomInstance(10, 4, 1, 99, rng)

	require.NoError(t, inst.Validate())
	require.Equal(t, 10, inst.Jobs)
	require.Equal(t, 4, inst.Machines)
	for _, v := range inst.ProcTimes {
		require.GreaterOrEqual(t, v, 1)
		require.LessOrEqual(t, v, 99)
	}
}

// TestRandomInstancePanicsOnNilRng documents the fail-loud contract.
func TestRandomInstancePanicsOnNilRng(t *testing.T) {
	require.Panics(t, func() {
		flowshop.RandomInstance(3, 2, 1, 9, nil)
	})
}
