package memetic_test

import (
	"context"
	"math/rand"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"

	"fsspSolver/internal/flowshop"
	"fsspSolver/internal/memetic"
)

// SolverSuite exercises the full evolution loop end to end.
type SolverSuite struct {
	suite.Suite
}

func (s *SolverSuite) instance3x2() *flowshop.Instance {
	inst, err := flowshop.NewInstance(3, 2, []int{
		1, 4,
		2, 3,
		4, 2,
	})
	require.NoError(s.T(), err)
	return inst
}

// TestNewRejectsBadInput covers config validation and the nil-rng guard.
func (s *SolverSuite) TestNewRejectsBadInput() {
	cfg := memetic.DefaultConfig()
	cfg.Population = 1
	_, err := memetic.New(cfg, rand.New(rand.NewSource(1)))
	require.Error(s.T(), err)

	_, err = memetic.New(memetic.DefaultConfig(), nil)
	require.Error(s.T(), err)
}

// TestSolveSmallInstance runs the documented small scenario: a known
// 3×2 matrix, population 10, 20 generations, fixed seed. The reported
// makespan must be a real evaluation of the reported permutation and
// can never beat the exhaustive optimum (10).
func (s *SolverSuite) TestSolveSmallInstance() {
	inst := s.instance3x2()

	cfg := memetic.DefaultConfig()
	cfg.Population = 10
	cfg.Generations = 20
	cfg.Workers = 1

	solver, err := memetic.New(cfg, rand.New(rand.NewSource(42)))
	require.NoError(s.T(), err)

	res, err := solver.Solve(context.Background(), inst)
	require.NoError(s.T(), err)

	require.Equal(s.T(), 20, res.Iterations)
	require.NoError(s.T(), flowshop.ValidatePermutation(res.Permutation, inst.Jobs))

	require.GreaterOrEqual(s.T(), res.Makespan, 10)
	require.LessOrEqual(s.T(), res.Makespan, 13)

	eval, err := flowshop.NewEvaluator(inst)
	require.NoError(s.T(), err)
	require.Equal(s.T(), res.Makespan, eval.MustMakespan(res.Permutation))

	require.Greater(s.T(), res.Evaluations, 0)
	require.Greater(s.T(), res.Duration, time.Duration(0))
	require.Equal(s.T(), 10, res.Meta["population"])
}

// TestSolveSingleMachine reports exactly the processing-time sum: with
// one machine every sequence has the same makespan.
func (s *SolverSuite) TestSolveSingleMachine() {
	inst, err := flowshop.NewInstance(4, 1, []int{3, 1, 4, 1})
	require.NoError(s.T(), err)

	cfg := memetic.DefaultConfig()
	cfg.Population = 6
	cfg.Generations = 3
	cfg.Workers = 1

	solver, err := memetic.New(cfg, rand.New(rand.NewSource(9)))
	require.NoError(s.T(), err)

	res, err := solver.Solve(context.Background(), inst)
	require.NoError(s.T(), err)
	require.Equal(s.T(), 9, res.Makespan)
}

// TestSolveConvergenceHistory records one best-so-far value per
// completed generation; the series never increases and ends at the
// reported makespan.
func (s *SolverSuite) TestSolveConvergenceHistory() {
	inst := s.instance3x2()

	cfg := memetic.DefaultConfig()
	cfg.Population = 8
	cfg.Generations = 15
	cfg.Workers = 1
	cfg.TrackConvergence = true

	solver, err := memetic.New(cfg, rand.New(rand.NewSource(4)))
	require.NoError(s.T(), err)

	res, err := solver.Solve(context.Background(), inst)
	require.NoError(s.T(), err)

	require.Len(s.T(), res.Convergence, 15)
	for i := 1; i < len(res.Convergence); i++ {
		require.LessOrEqual(s.T(), res.Convergence[i], res.Convergence[i-1])
	}
	require.Equal(s.T(), res.Makespan, res.Convergence[len(res.Convergence)-1])
	require.LessOrEqual(s.T(), res.BestIteration, res.Iterations)
}

// TestSolveDeterministicAcrossWorkers pins the per-slot RNG contract:
// a fixed seed yields the same search trajectory for any pool size.
func (s *SolverSuite) TestSolveDeterministicAcrossWorkers() {
	inst := flowshop.RandomInstance(6, 3, 1, 99, rand.New(rand.NewSource(5)))

	cfgFor := func(workers int) memetic.Config {
		cfg := memetic.DefaultConfig()
		cfg.Population = 12
		cfg.Generations = 10
		cfg.LocalSearchRate = 0.5
		cfg.Workers = workers
		cfg.TrackConvergence = true
		return cfg
	}

	solverA, err := memetic.New(cfgFor(1), rand.New(rand.NewSource(42)))
	require.NoError(s.T(), err)
	resA, err := solverA.Solve(context.Background(), inst)
	require.NoError(s.T(), err)

	solverB, err := memetic.New(cfgFor(4), rand.New(rand.NewSource(42)))
	require.NoError(s.T(), err)
	resB, err := solverB.Solve(context.Background(), inst)
	require.NoError(s.T(), err)

	require.Equal(s.T(), resA.Permutation, resB.Permutation)
	require.Equal(s.T(), resA.Makespan, resB.Makespan)
	require.Equal(s.T(), resA.Evaluations, resB.Evaluations)
	require.Equal(s.T(), resA.Iterations, resB.Iterations)
	require.Equal(s.T(), resA.BestIteration, resB.BestIteration)
	require.Equal(s.T(), resA.Convergence, resB.Convergence)
}

// TestSolveDurationLimit stops at a generation boundary once the time
// budget is spent, well before the generation limit.
func (s *SolverSuite) TestSolveDurationLimit() {
	inst := flowshop.RandomInstance(30, 10, 1, 99, rand.New(rand.NewSource(8)))

	cfg := memetic.DefaultConfig()
	cfg.Population = 30
	cfg.Generations = 10_000
	cfg.MaxDuration = 50 * time.Millisecond
	cfg.LocalSearchRate = 1.0
	cfg.Workers = 4

	solver, err := memetic.New(cfg, rand.New(rand.NewSource(6)))
	require.NoError(s.T(), err)

	res, err := solver.Solve(context.Background(), inst)
	require.NoError(s.T(), err)

	require.GreaterOrEqual(s.T(), res.Iterations, 1)
	require.Less(s.T(), res.Iterations, 10_000)
	require.Equal(s.T(), "duration", res.Meta["stopped"])
	require.GreaterOrEqual(s.T(), res.Duration, 50*time.Millisecond)
}

// TestSolveContextCancelled returns the initial population's best along
// with the cancellation error.
func (s *SolverSuite) TestSolveContextCancelled() {
	inst := s.instance3x2()

	cfg := memetic.DefaultConfig()
	cfg.Population = 10
	cfg.Generations = 100
	cfg.Workers = 1

	solver, err := memetic.New(cfg, rand.New(rand.NewSource(2)))
	require.NoError(s.T(), err)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	res, err := solver.Solve(ctx, inst)
	require.ErrorIs(s.T(), err, context.Canceled)
	require.Equal(s.T(), "context", res.Meta["stopped"])
	require.Equal(s.T(), 0, res.Iterations)
	require.NoError(s.T(), flowshop.ValidatePermutation(res.Permutation, inst.Jobs))
	require.GreaterOrEqual(s.T(), res.Makespan, 10)
}

// TestSolveConvergesToJohnson forces local search on every child: on a
// 3×2 instance where descent from any permutation reaches the optimum,
// the result must match Johnson's rule exactly.
func (s *SolverSuite) TestSolveConvergesToJohnson() {
	inst := s.instance3x2()

	johnson, err := flowshop.JohnsonSequence(inst)
	require.NoError(s.T(), err)
	eval, err := flowshop.NewEvaluator(inst)
	require.NoError(s.T(), err)
	optimal := eval.MustMakespan(johnson)

	cfg := memetic.DefaultConfig()
	cfg.Population = 6
	cfg.Generations = 5
	cfg.Elite = 1
	cfg.LocalSearchRate = 1.0
	cfg.Workers = 1

	solver, err := memetic.New(cfg, rand.New(rand.NewSource(13)))
	require.NoError(s.T(), err)

	res, err := solver.Solve(context.Background(), inst)
	require.NoError(s.T(), err)
	require.Equal(s.T(), optimal, res.Makespan)
	require.Equal(s.T(), 10, res.Makespan)
}

func TestSolverSuite(t *testing.T) {
	suite.Run(t, new(SolverSuite))
}
