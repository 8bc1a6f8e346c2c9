package flowshop_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"fsspSolver/internal/flowshop"
)

// TestValidatePermutation covers the accept and reject paths of the
// full-permutation validator.
func TestValidatePermutation(t *testing.T) {
	require.NoError(t, flowshop.ValidatePermutation([]int{0}, 1))
	require.NoError(t, flowshop.ValidatePermutation([]int{2, 0, 1}, 3))

	require.Error(t, flowshop.ValidatePermutation([]int{0, 1}, 3))
	require.Error(t, flowshop.ValidatePermutation([]int{0, 1, 3}, 3))
	require.Error(t, flowshop.ValidatePermutation([]int{-1, 1, 2}, 3))
	require.Error(t, flowshop.ValidatePermutation([]int{0, 0, 1}, 3))
}

// TestValidatePartialPermutation allows any duplicate-free prefix,
// including the empty one.
func TestValidatePartialPermutation(t *testing.T) {
	require.NoError(t, flowshop.ValidatePartialPermutation(nil, 3))
	require.NoError(t, flowshop.ValidatePartialPermutation([]int{1}, 3))
	require.NoError(t, flowshop.ValidatePartialPermutation([]int{1, 0}, 3))
	require.NoError(t, flowshop.ValidatePartialPermutation([]int{2, 0, 1}, 3))

	require.Error(t, flowshop.ValidatePartialPermutation([]int{0, 1, 2, 0}, 3))
	require.Error(t, flowshop.ValidatePartialPermutation([]int{3}, 3))
	require.Error(t, flowshop.ValidatePartialPermutation([]int{1, 1}, 3))
}
