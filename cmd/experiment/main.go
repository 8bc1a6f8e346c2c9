package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"runtime"

	"github.com/alitto/pond"

	"fsspSolver/internal/bench"
)

func main() {
	var (
		planPath = flag.String("plan", "experiment.yaml", "путь к YAML-файлу экспериментального плана")
	)
	flag.Parse()

	plan, err := bench.LoadPlan(*planPath)
	if err != nil {
		fmt.Fprintln(os.Stderr, "Конфликт:", err)
		os.Exit(2)
	}

	cases, err := plan.ResolveCases()
	if err != nil {
		fmt.Fprintln(os.Stderr, "Конфликт:", err)
		os.Exit(2)
	}
	combos := plan.Combos()

	runner := bench.Runner{
		Runs:             plan.Runs,
		BaseSeed:         plan.BaseSeed,
		Base:             plan.BaseConfig(),
		TrackConvergence: plan.PlotsDir != "",
	}

	workers := plan.Parallel
	if workers <= 0 {
		workers = runtime.NumCPU()
	}

	tasks := len(cases) * len(combos)
	fmt.Printf("Экспериментальный план: %d задач × %d комбинаций × %d запусков (воркеров: %d)\n",
		len(cases), len(combos), plan.Runs, workers)

	ctx := context.Background()

	// Результаты складываются по заранее известным индексам,
	// порядок записей не зависит от порядка завершения задач
	records := make([]bench.Record, tasks)
	histories := make([][][]int, tasks)
	errs := make([]error, tasks)

	pool := pond.New(workers, tasks)
	defer pool.StopAndWait()

	group := pool.Group()
	for ci, c := range cases {
		c := c
		for gi, combo := range combos {
			combo := combo
			idx := ci*len(combos) + gi
			group.Submit(func() {
				rec, hist, err := runner.RunCombo(ctx, c, combo)
				if err != nil {
					errs[idx] = fmt.Errorf("%s (pop=%d gen=%d mut=%g ls=%g): %w",
						c.Name, combo.Population, combo.Generations,
						combo.MutationRate, combo.LocalSearchRate, err)
					return
				}
				records[idx] = rec
				histories[idx] = hist
			})
		}
	}
	group.Wait()

	for _, err := range errs {
		if err != nil {
			fmt.Fprintln(os.Stderr, "Ошибка:", err)
			os.Exit(1)
		}
	}

	for _, rec := range records {
		fmt.Printf("%s: pop=%d gen=%d mut=%g ls=%g\n",
			rec.Case, rec.Population, rec.Generations, rec.MutationRate, rec.LocalSearchRate)
		fmt.Printf("  Значение целевой функции: лучшее=%d среднее=%.2f стандартное отклонение=%.2f | Время: среднее=%.2fms среднее отклонение=%.2fms\n",
			rec.MakespanBest, rec.MakespanMean, rec.MakespanStd,
			rec.TimeMeanMs, rec.TimeStdMs,
		)
	}

	if err := bench.WriteCSV(plan.Output, records); err != nil {
		fmt.Fprintln(os.Stderr, "Ошибка при записи в CSV:", err)
		os.Exit(1)
	}
	fmt.Println("Saved:", plan.Output)

	if plan.PlotsDir != "" {
		for i, rec := range records {
			name := fmt.Sprintf("%s_p%d_g%d_m%g_l%g.png",
				rec.Case, rec.Population, rec.Generations, rec.MutationRate, rec.LocalSearchRate)
			title := fmt.Sprintf("%s: pop=%d gen=%d mut=%g ls=%g",
				rec.Case, rec.Population, rec.Generations, rec.MutationRate, rec.LocalSearchRate)
			if err := bench.WriteConvergencePlot(filepath.Join(plan.PlotsDir, name), title, histories[i]); err != nil {
				fmt.Fprintln(os.Stderr, "Ошибка при записи графика:", err)
				os.Exit(1)
			}
		}
		fmt.Println("Saved:", plan.PlotsDir)
	}
}
