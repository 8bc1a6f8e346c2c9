package memetic

import (
	"math/rand"

	"github.com/alitto/pond"

	"fsspSolver/internal/flowshop"
)

// evalSlot — ресурсы одной позиции популяции: собственный оценщик
// и генератор случайных чисел. Привязка генератора к позиции (а не к
// воркеру пула) даёт воспроизводимые результаты при любом числе воркеров.
type evalSlot struct {
	eval  *flowshop.Evaluator
	rng   *rand.Rand
	evals int
}

// newEvalSlots создаёт по слоту на каждую позицию популяции.
// Генераторы слотов засеваются последовательно из генератора оркестратора.
func newEvalSlots(inst *flowshop.Instance, n int, rng *rand.Rand) ([]evalSlot, error) {
	slots := make([]evalSlot, n)
	for i := range slots {
		eval, err := flowshop.NewEvaluator(inst)
		if err != nil {
			return nil, err
		}
		slots[i] = evalSlot{
			eval: eval,
			rng:  rand.New(rand.NewSource(rng.Int63())),
		}
	}
	return slots, nil
}

// totalEvals — суммарное число оценок по всем слотам.
func totalEvals(slots []evalSlot) int {
	sum := 0
	for i := range slots {
		sum += slots[i].evals
	}
	return sum
}

// evaluateAll параллельно оценивает makespan особей pop[from:].
// Используется для начальной популяции, где локальный поиск не применяется.
func evaluateAll(pool *pond.WorkerPool, slots []evalSlot, pop []Individual, from int) {
	group := pool.Group()
	for i := from; i < len(pop); i++ {
		i := i
		group.Submit(func() {
			slot := &slots[i]
			pop[i].Makespan = slot.eval.MustMakespan(pop[i].Perm)
			slot.evals++
		})
	}
	group.Wait()
}

// refineAll параллельно дорабатывает потомков pop[from:]: оценка makespan,
// затем с вероятностью LocalSearchRate — спуск локального поиска.
// Розыгрыш выполняется генератором слота ровно один раз на потомка,
// поэтому последовательность розыгрышей не зависит от числа воркеров.
// Элитные особи в pop[:from] уже оценены и в раздачу не попадают.
func (s *Solver) refineAll(pool *pond.WorkerPool, slots []evalSlot, pop []Individual, from int) {
	group := pool.Group()
	for i := from; i < len(pop); i++ {
		i := i
		group.Submit(func() {
			slot := &slots[i]
			ind := &pop[i]

			ind.Makespan = slot.eval.MustMakespan(ind.Perm)
			slot.evals++

			if slot.rng.Float64() < s.Cfg.LocalSearchRate {
				ms, n := LocalSearch(
					ind.Perm,
					ind.Makespan,
					slot.eval,
					s.Cfg.Neighborhood,
					s.Cfg.LocalSearchPasses,
				)
				ind.Makespan = ms
				slot.evals += n
			}
		})
	}
	group.Wait()
}
