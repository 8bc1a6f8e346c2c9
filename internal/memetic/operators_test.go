package memetic_test

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"

	"fsspSolver/internal/flowshop"
	"fsspSolver/internal/memetic"
)

func randomPermutation(n int, rng *rand.Rand) []int {
	p := make([]int, n)
	for i := range p {
		p[i] = i
	}
	rng.Shuffle(n, func(i, j int) { p[i], p[j] = p[j], p[i] })
	return p
}

// TestOrderCrossoverProducesValidChildren checks permutation validity of
// both children across sizes, including the degenerate n=1 and n=2.
func TestOrderCrossoverProducesValidChildren(t *testing.T) {
	rng := rand.New(rand.NewSource(17))

	for _, n := range []int{1, 2, 3, 5, 8, 13} {
		mark := make([]int, n)
		stamp := 1
		c1 := make([]int, n)
		c2 := make([]int, n)

		for trial := 0; trial < 25; trial++ {
			p1 := randomPermutation(n, rng)
			p2 := randomPermutation(n, rng)

			memetic.OrderCrossover(p1, p2, c1, c2, rng, mark, &stamp)

			require.NoError(t, flowshop.ValidatePermutation(c1, n), "n=%d trial=%d", n, trial)
			require.NoError(t, flowshop.ValidatePermutation(c2, n), "n=%d trial=%d", n, trial)
		}
	}
}

// TestMutateSwapChangesExactlyTwoPositions verifies the operator keeps a
// valid permutation and touches exactly two entries.
func TestMutateSwapChangesExactlyTwoPositions(t *testing.T) {
	rng := rand.New(rand.NewSource(3))

	for trial := 0; trial < 50; trial++ {
		n := 2 + rng.Intn(10)
		p := randomPermutation(n, rng)
		orig := make([]int, n)
		copy(orig, p)

		memetic.MutateSwap(p, rng)

		require.NoError(t, flowshop.ValidatePermutation(p, n))

		changed := 0
		for i := range p {
			if p[i] != orig[i] {
				changed++
			}
		}
		require.Equal(t, 2, changed)
	}
}

// TestMutateSwapKeepsSingleton leaves a one-element permutation alone.
func TestMutateSwapKeepsSingleton(t *testing.T) {
	rng := rand.New(rand.NewSource(3))
	p := []int{0}
	memetic.MutateSwap(p, rng)
	require.Equal(t, []int{0}, p)
}

// TestTournamentSelectBiased checks that a size-3 tournament over four
// individuals picks the best one far more often than uniform choice would.
func TestTournamentSelectBiased(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	pop := []memetic.Individual{
		{Perm: []int{0, 1, 2, 3}, Makespan: 10},
		{Perm: []int{1, 0, 2, 3}, Makespan: 20},
		{Perm: []int{2, 0, 1, 3}, Makespan: 30},
		{Perm: []int{3, 0, 1, 2}, Makespan: 40},
	}

	bestWins := 0
	for trial := 0; trial < 200; trial++ {
		idx := memetic.TournamentSelect(pop, 3, rng)
		require.GreaterOrEqual(t, idx, 0)
		require.Less(t, idx, len(pop))
		if idx == 0 {
			bestWins++
		}
	}

	// При равномерном выборе лучший побеждал бы ~50 раз из 200;
	// турнир из трёх должен давать заметно больше
	require.GreaterOrEqual(t, bestWins, 80)
}
