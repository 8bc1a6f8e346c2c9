package bench

import (
	"context"
	"encoding/csv"
	"fmt"
	"os"
	"time"

	"github.com/google/uuid"

	"fsspSolver/internal/memetic"
)

type Record struct {
	RunID    string
	Case     string
	Jobs     int
	Machines int

	Population      int
	Generations     int
	MutationRate    float64
	LocalSearchRate float64

	Runs int

	TimeBestMs float64
	TimeMeanMs float64
	TimeStdMs  float64

	MakespanBest int
	MakespanMean float64
	MakespanStd  float64
}

type Runner struct {
	Runs     int
	BaseSeed int64

	// Base carries the fixed solver parameters; the combo overrides
	// the swept ones.
	Base memetic.Config

	TrackConvergence bool
}

// RunCombo executes Runs seeded solver runs of one case at one grid point
// and aggregates them into a Record. When TrackConvergence is set, the
// per-generation best-makespan history of every run is returned alongside.
func (r Runner) RunCombo(ctx context.Context, c Case, combo Combo) (Record, [][]int, error) {
	inst, err := c.Instance()
	if err != nil {
		return Record{}, nil, err
	}

	cfg := r.Base
	cfg.Population = combo.Population
	cfg.Generations = combo.Generations
	cfg.MutationRate = combo.MutationRate
	cfg.LocalSearchRate = combo.LocalSearchRate
	cfg.TrackConvergence = r.TrackConvergence

	makespans := make([]int, 0, r.Runs)
	timesMs := make([]float64, 0, r.Runs)
	var histories [][]int
	if r.TrackConvergence {
		histories = make([][]int, 0, r.Runs)
	}

	for i := 0; i < r.Runs; i++ {
		runSeed := r.BaseSeed + int64(i)

		solver, err := memetic.New(cfg, randForSeed(runSeed))
		if err != nil {
			return Record{}, nil, fmt.Errorf("run %d: %w", i, err)
		}

		start := time.Now()
		res, err := solver.Solve(ctx, inst)
		dur := time.Since(start)

		if err != nil && ctx.Err() != nil {
			return Record{}, nil, fmt.Errorf("run %d: cancelled: %w", i, err)
		}
		if err != nil {
			return Record{}, nil, fmt.Errorf("run %d: solve error: %w", i, err)
		}
		if len(res.Permutation) != inst.Jobs {
			return Record{}, nil, fmt.Errorf("run %d: invalid permutation length %d (want %d)", i, len(res.Permutation), inst.Jobs)
		}

		makespans = append(makespans, res.Makespan)
		timesMs = append(timesMs, float64(dur.Microseconds())/1000.0)
		if r.TrackConvergence {
			histories = append(histories, res.Convergence)
		}
	}

	msStats := SummarizeInts(makespans)
	tStats := Summarize(timesMs)

	return Record{
		RunID:    uuid.New().String(),
		Case:     c.Name,
		Jobs:     c.Jobs,
		Machines: c.Machines,

		Population:      combo.Population,
		Generations:     combo.Generations,
		MutationRate:    combo.MutationRate,
		LocalSearchRate: combo.LocalSearchRate,

		Runs: r.Runs,

		TimeBestMs: tStats.Best,
		TimeMeanMs: tStats.Mean,
		TimeStdMs:  tStats.Std,

		MakespanBest: msStats.Best,
		MakespanMean: msStats.Mean,
		MakespanStd:  msStats.Std,
	}, histories, nil
}

func WriteCSV(path string, records []Record) error {
	if d := dirOf(path); d != "" {
		if err := os.MkdirAll(d, 0o755); err != nil {
			return err
		}
	}
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	w := csv.NewWriter(f)
	defer w.Flush()

	header := []string{
		"run_id", "case", "jobs", "machines",
		"population", "generations", "mutation_rate", "local_search_rate",
		"runs",
		"time_best_ms", "time_mean_ms", "time_std_ms",
		"makespan_best", "makespan_mean", "makespan_std",
	}
	if err := w.Write(header); err != nil {
		return err
	}

	for _, r := range records {
		row := []string{
			r.RunID,
			r.Case,
			itoa(r.Jobs),
			itoa(r.Machines),

			itoa(r.Population),
			itoa(r.Generations),
			ftoa(r.MutationRate),
			ftoa(r.LocalSearchRate),

			itoa(r.Runs),

			ftoa(r.TimeBestMs),
			ftoa(r.TimeMeanMs),
			ftoa(r.TimeStdMs),

			itoa(r.MakespanBest),
			ftoa(r.MakespanMean),
			ftoa(r.MakespanStd),
		}
		if err := w.Write(row); err != nil {
			return err
		}
	}

	return w.Error()
}
