package memetic

import (
	"sort"

	"fsspSolver/internal/flowshop"
)

// GreedySeeds строит count начальных решений жадной вставочной эвристикой.
// Работы упорядочиваются по убыванию суммарного времени обработки,
// затем поочерёдно вставляются в позицию частичной последовательности
// с минимальным makespan. Варианты различаются циклическим сдвигом
// приоритетного списка, поэтому результат детерминирован.
// Возвращаются построенные перестановки и число выполненных оценок.
func GreedySeeds(inst *flowshop.Instance, eval *flowshop.Evaluator, count int) ([][]int, int) {
	if count <= 0 {
		return nil, 0
	}
	n := inst.Jobs

	// Приоритетный список: по убыванию суммарного времени обработки.
	// Стабильная сортировка фиксирует порядок работ с равными суммами.
	order := make([]int, n)
	initPermutation(order)
	sort.SliceStable(order, func(i, j int) bool {
		return inst.TotalTime(order[i]) > inst.TotalTime(order[j])
	})

	seeds := make([][]int, count)
	evals := 0

	seq := make([]int, 0, n)
	cand := make([]int, n)

	for v := 0; v < count; v++ {
		offset := v % n
		seq = seq[:0]

		for k := 0; k < n; k++ {
			job := order[(offset+k)%n]

			// Перебор всех позиций вставки очередной работы
			bestPos := 0
			bestMs := -1
			for pos := 0; pos <= len(seq); pos++ {
				trial := cand[:0]
				trial = append(trial, seq[:pos]...)
				trial = append(trial, job)
				trial = append(trial, seq[pos:]...)

				ms := eval.MustPartialMakespan(trial)
				evals++
				if bestMs < 0 || ms < bestMs {
					bestMs = ms
					bestPos = pos
				}
			}

			seq = append(seq, 0)
			copy(seq[bestPos+1:], seq[bestPos:])
			seq[bestPos] = job
		}

		out := make([]int, n)
		copy(out, seq)
		seeds[v] = out
	}

	return seeds, evals
}
