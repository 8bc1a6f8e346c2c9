package memetic

import "fsspSolver/internal/flowshop"

// LocalSearch выполняет спуск наилучшего улучшения из заданного решения.
// За один проход сканируется вся окрестность и применяется лучший строго
// улучшающий ход; проходы повторяются до локального оптимума, но не более
// maxPasses. Перестановка изменяется на месте; порядок обхода фиксирован,
// поэтому спуск детерминирован. Возвращаются итоговый makespan и число
// выполненных оценок.
func LocalSearch(
	perm []int,
	makespan int,
	eval *flowshop.Evaluator,
	nb Neighborhood,
	maxPasses int,
) (int, int) {
	n := len(perm)
	if n < 2 {
		return makespan, 0
	}

	evals := 0
	for pass := 0; pass < maxPasses; pass++ {
		bestFrom, bestTo := -1, -1
		bestMs := makespan

		switch nb {
		case NeighborhoodInsert:
			for from := 0; from < n; from++ {
				for to := 0; to < n; to++ {
					if to == from {
						continue
					}
					applyInsert(perm, from, to)
					ms := eval.MustMakespan(perm)
					evals++
					applyInsert(perm, to, from)

					if ms < bestMs {
						bestMs = ms
						bestFrom, bestTo = from, to
					}
				}
			}
		default:
			for i := 0; i < n-1; i++ {
				for j := i + 1; j < n; j++ {
					applySwap(perm, i, j)
					ms := eval.MustMakespan(perm)
					evals++
					applySwap(perm, i, j)

					if ms < bestMs {
						bestMs = ms
						bestFrom, bestTo = i, j
					}
				}
			}
		}

		// Локальный оптимум — улучшающих ходов нет
		if bestFrom < 0 {
			break
		}

		switch nb {
		case NeighborhoodInsert:
			applyInsert(perm, bestFrom, bestTo)
		default:
			applySwap(perm, bestFrom, bestTo)
		}
		makespan = bestMs
	}

	return makespan, evals
}

// applySwap применяет swap-ход (обмен элементов в позициях i и j).
func applySwap(p []int, i, j int) {
	p[i], p[j] = p[j], p[i]
}

// applyInsert применяет insert-ход (элемент из позиции from вставляется в позицию to).
func applyInsert(p []int, from, to int) {
	if from == to {
		return
	}
	val := p[from]
	if from < to {
		copy(p[from:to], p[from+1:to+1])
		p[to] = val
		return
	}
	copy(p[to+1:from+1], p[to:from])
	p[to] = val
}
