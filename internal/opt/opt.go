package opt

import (
	"context"
	"time"

	"fsspSolver/internal/flowshop"
)

type Optimizer interface {
	Solve(ctx context.Context, inst *flowshop.Instance) (Result, error)
}

type Result struct {
	Permutation []int
	Makespan    int
	Evaluations int
	Iterations  int
	// BestIteration — поколение, в котором найдено лучшее решение
	// (0 — начальная популяция).
	BestIteration int
	// BestFoundAt — время от начала запуска до находки лучшего решения.
	BestFoundAt time.Duration
	// Convergence — лучший makespan после каждого завершённого поколения;
	// заполняется только по запросу.
	Convergence []int
	Duration    time.Duration
	Meta        map[string]any
}
