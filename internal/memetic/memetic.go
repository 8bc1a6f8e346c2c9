package memetic

import (
	"context"
	"fmt"
	"math"
	"math/rand"
	"runtime"
	"sort"
	"time"

	"github.com/alitto/pond"

	"fsspSolver/internal/flowshop"
	"fsspSolver/internal/opt"
)

// Solver — реализация меметического алгоритма для задачи flow-shop:
// генетический поиск поколениями, потомки которых дорабатываются
// локальным спуском.
type Solver struct {
	Cfg Config
	Rng *rand.Rand
}

var _ opt.Optimizer = (*Solver)(nil)

// New возвращает новый меметический солвер с валидацией конфигурации, с использованием инициализированного генератора случайных чисел.
// Используется в фабриках.
func New(cfg Config, rng *rand.Rand) (*Solver, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if rng == nil {
		return nil, fmt.Errorf("генератор случайных чисел не инициализирован (nil)")
	}
	return &Solver{Cfg: cfg, Rng: rng}, nil
}

// Solve — основной цикл алгоритма.
func (s *Solver) Solve(ctx context.Context, inst *flowshop.Instance) (opt.Result, error) {
	start := time.Now()

	// Проверка корректности входных данных и конфигурации
	if err := inst.Validate(); err != nil {
		return opt.Result{}, err
	}
	if err := s.Cfg.Validate(); err != nil {
		return opt.Result{}, err
	}
	if s.Rng == nil {
		return opt.Result{}, fmt.Errorf("генератор случайных чисел не инициализирован (nil)")
	}

	jobs := inst.Jobs
	popSize := s.Cfg.Population

	// Пул воркеров один на весь запуск, между поколениями не пересоздаётся
	workers := s.Cfg.Workers
	if workers <= 0 {
		workers = runtime.NumCPU()
	}
	pool := pond.New(workers, popSize*2)
	defer pool.StopAndWait()

	// Слоты параллельной оценки: по оценщику и генератору на позицию
	slots, err := newEvalSlots(inst, popSize, s.Rng)
	if err != nil {
		return opt.Result{}, err
	}

	// Оценщик оркестратора — для жадной инициализации
	eval, err := flowshop.NewEvaluator(inst)
	if err != nil {
		return opt.Result{}, err
	}

	// Вспомогательная анонимная функция для создания буфера популяции
	makePop := func() []Individual {
		backing := make([]int, popSize*jobs)
		pop := make([]Individual, popSize)
		for i := 0; i < popSize; i++ {
			pop[i] = Individual{
				Perm:     backing[i*jobs : (i+1)*jobs],
				Makespan: -1,
			}
		}
		return pop
	}

	// Две популяции: текущая (A) и следующая (B)
	curr := makePop()
	next := makePop()

	// Инициализация: доля жадных решений, остаток — случайные перестановки
	greedyCount := int(math.Round(s.Cfg.GreedyFraction * float64(popSize)))
	if greedyCount > popSize {
		greedyCount = popSize
	}
	seeds, greedyEvals := GreedySeeds(inst, eval, greedyCount)
	for i := range seeds {
		copy(curr[i].Perm, seeds[i])
	}
	for i := len(seeds); i < popSize; i++ {
		initPermutation(curr[i].Perm)
		shufflePermutation(curr[i].Perm, s.Rng)
	}

	evaluateAll(pool, slots, curr, 0)

	// Поиск лучшего решения в начальной популяции
	bestPerm := make([]int, jobs)
	bestMakespan := curr[0].Makespan
	copy(bestPerm, curr[0].Perm)
	for i := 1; i < popSize; i++ {
		if curr[i].Makespan < bestMakespan {
			bestMakespan = curr[i].Makespan
			copy(bestPerm, curr[i].Perm)
		}
	}
	bestIteration := 0
	bestFoundAt := time.Since(start)

	// Массивы для кроссовера:
	// mark и stamp используются для отметки уже включённых работ
	mark := make([]int, jobs)
	stamp := 1

	// Временный буфер для второго потомка,
	// если в популяции остаётся нечётное число мест
	scratchChild := make([]int, jobs)

	var convergence []int
	if s.Cfg.TrackConvergence {
		convergence = make([]int, 0, s.Cfg.Generations)
	}

	stopped := ""
	completed := 0

	for gen := 1; gen <= s.Cfg.Generations; gen++ {
		// Для поддержки отмены через context
		if err := ctx.Err(); err != nil {
			res := ToOptResult(
				bestPerm,
				bestMakespan,
				greedyEvals+totalEvals(slots),
				completed,
				map[string]any{"stopped": "context"},
			)
			res.BestIteration = bestIteration
			res.BestFoundAt = bestFoundAt
			res.Convergence = convergence
			res.Duration = time.Since(start)
			return res, err
		}

		// Ранжирование текущего поколения по возрастанию makespan
		sort.Slice(curr, func(i, j int) bool {
			return curr[i].Makespan < curr[j].Makespan
		})

		// Элитизм (переносим лучших особей без изменений)
		for e := 0; e < s.Cfg.Elite; e++ {
			copy(next[e].Perm, curr[e].Perm)
			next[e].Makespan = curr[e].Makespan
		}

		// Генерация остальных особей нового поколения
		write := s.Cfg.Elite
		for write < popSize {
			// Турнирный отбор
			p1 := TournamentSelect(curr, s.Cfg.TournamentSize, s.Rng)
			p2 := TournamentSelect(curr, s.Cfg.TournamentSize, s.Rng)
			if popSize > 1 {
				for p2 == p1 {
					p2 = TournamentSelect(curr, s.Cfg.TournamentSize, s.Rng)
				}
			}

			child1 := next[write].Perm
			hasSecond := write+1 < popSize
			child2 := scratchChild
			if hasSecond {
				child2 = next[write+1].Perm
			}

			// Кроссовер
			OrderCrossover(
				curr[p1].Perm,
				curr[p2].Perm,
				child1,
				child2,
				s.Rng,
				mark,
				&stamp,
			)

			// Мутация
			if s.Rng.Float64() < s.Cfg.MutationRate {
				MutateSwap(child1, s.Rng)
			}
			if hasSecond && s.Rng.Float64() < s.Cfg.MutationRate {
				MutateSwap(child2, s.Rng)
			}

			write++
			if hasSecond {
				write++
			}
		}

		// Параллельная оценка и локальный поиск потомков
		s.refineAll(pool, slots, next, s.Cfg.Elite)

		// Обновление глобально лучшего решения — строго после барьера
		for i := s.Cfg.Elite; i < popSize; i++ {
			if next[i].Makespan < bestMakespan {
				bestMakespan = next[i].Makespan
				copy(bestPerm, next[i].Perm)
				bestIteration = gen
				bestFoundAt = time.Since(start)
			}
		}

		// Смена поколений
		curr, next = next, curr
		completed = gen

		if s.Cfg.TrackConvergence {
			convergence = append(convergence, bestMakespan)
		}
		if s.Cfg.OnGeneration != nil {
			s.Cfg.OnGeneration(gen, bestMakespan)
		}

		// Лимит времени проверяется на границе поколений
		if s.Cfg.MaxDuration > 0 && time.Since(start) >= s.Cfg.MaxDuration {
			stopped = "duration"
			break
		}
	}

	meta := map[string]any{
		"population":        s.Cfg.Population,
		"generations":       s.Cfg.Generations,
		"elite":             s.Cfg.Elite,
		"mutation_rate":     s.Cfg.MutationRate,
		"local_search_rate": s.Cfg.LocalSearchRate,
		"neighborhood":      string(s.Cfg.Neighborhood),
		"workers":           workers,
	}
	if stopped != "" {
		meta["stopped"] = stopped
	}

	res := ToOptResult(
		bestPerm,
		bestMakespan,
		greedyEvals+totalEvals(slots),
		completed,
		meta,
	)
	res.BestIteration = bestIteration
	res.BestFoundAt = bestFoundAt
	res.Convergence = convergence
	res.Duration = time.Since(start)
	return res, nil
}
