package main

import (
	"context"
	"flag"
	"fmt"
	"math/rand"
	"os"
	"time"

	"fsspSolver/internal/flowshop"
	"fsspSolver/internal/memetic"
	"fsspSolver/internal/report"
)

const version = "1.0.0"

func main() {
	// CLI флаги для настройки параметров запуска
	var (
		maxGenerations = flag.Int("max-generations", 100, "максимальное количество поколений")
		maxDuration    = flag.Float64("max-duration", 0, "лимит времени работы в секундах; 0 — без ограничения")
		outputDir      = flag.String("output-dir", ".", "каталог для итогового отчёта")

		populationSize = flag.Int("population-size", 100, "размер популяции")
		mutationRate   = flag.Float64("mutation-rate", 0.3, "вероятность мутации")
		lsRate         = flag.Float64("local-search-rate", 0.6, "вероятность локального поиска")

		tournamentSize = flag.Int("tournament-size", 3, "размер турнирной выборки")
		elite          = flag.Int("elite", 2, "размер элиты (количество лучших особей)")
		greedyFraction = flag.Float64("greedy-fraction", 0.1, "доля жадных решений в начальной популяции")
		lsNeighborhood = flag.String("ls-neighborhood", "swap", "тип окрестности локального поиска: swap | insert")
		lsMaxPasses    = flag.Int("ls-max-passes", 50, "максимум проходов локального поиска на вызов")
		workers        = flag.Int("workers", 0, "количество воркеров параллельной оценки; 0 — по числу CPU")
		seed           = flag.Int64("seed", 0, "сид генератора случайных чисел; 0 — по текущему времени")

		showVersion = flag.Bool("version", false, "вывести версию и выйти")
	)
	flag.BoolVar(showVersion, "V", false, "синоним для --version")
	flag.Parse()

	if *showVersion {
		fmt.Println("fssp", version)
		return
	}

	if flag.NArg() != 1 {
		fmt.Fprintln(os.Stderr, "Использование: fssp [флаги] <файл экземпляра>")
		flag.PrintDefaults()
		os.Exit(2)
	}
	instancePath := flag.Arg(0)

	cfg := memetic.DefaultConfig()
	cfg.Population = *populationSize
	cfg.Generations = *maxGenerations
	if *maxDuration > 0 {
		cfg.MaxDuration = time.Duration(*maxDuration * float64(time.Second))
	}
	cfg.Elite = *elite
	cfg.TournamentSize = *tournamentSize
	cfg.MutationRate = *mutationRate
	cfg.LocalSearchRate = *lsRate
	cfg.GreedyFraction = *greedyFraction
	cfg.Neighborhood = memetic.Neighborhood(*lsNeighborhood)
	cfg.LocalSearchPasses = *lsMaxPasses
	cfg.Workers = *workers
	cfg.OnGeneration = func(gen, best int) {
		if gen%20 == 0 {
			fmt.Printf("Поколение %d: лучший makespan = %d\n", gen, best)
		}
	}

	if err := cfg.Validate(); err != nil {
		fmt.Fprintln(os.Stderr, "Конфликт:", err)
		os.Exit(2)
	}

	fmt.Printf("Решается экземпляр: %s\n", instancePath)
	inst, err := flowshop.LoadInstance(instancePath)
	if err != nil {
		fmt.Fprintln(os.Stderr, "Ошибка при чтении экземпляра:", err)
		os.Exit(1)
	}
	fmt.Printf("Экземпляр загружен: %d работ, %d машин.\n", inst.Jobs, inst.Machines)

	runSeed := *seed
	if runSeed == 0 {
		runSeed = time.Now().UnixNano()
	}

	solver, err := memetic.New(cfg, rand.New(rand.NewSource(runSeed)))
	if err != nil {
		fmt.Fprintln(os.Stderr, "Конфликт:", err)
		os.Exit(2)
	}

	res, err := solver.Solve(context.Background(), inst)
	if err != nil {
		fmt.Fprintln(os.Stderr, "Ошибка:", err)
		os.Exit(1)
	}

	fmt.Println()
	fmt.Println("--- Итоговые результаты ---")
	fmt.Printf("Лучший makespan: %d\n", res.Makespan)
	fmt.Printf("Лучшая последовательность: %s\n", report.FormatSequence(res.Permutation))
	fmt.Printf("Поколение лучшего решения: %d\n", res.BestIteration)
	fmt.Printf("Количество оценок: %d\n", res.Evaluations)
	fmt.Printf("Время работы (секунды): %.4f\n", res.Duration.Seconds())

	path, err := report.WriteRunReport(*outputDir, instancePath, inst, res)
	if err != nil {
		fmt.Fprintln(os.Stderr, "Ошибка при записи отчёта:", err)
		os.Exit(1)
	}
	fmt.Println("Сохранено:", path)
}
