package flowshop

import (
	"fmt"
	"sort"
)

// JohnsonSequence возвращает оптимальную последовательность работ для
// инстанции с двумя машинами по правилу Джонсона: работы, у которых время
// на первой машине меньше, идут в начало по возрастанию этого времени,
// остальные — в конец по убыванию времени на второй машине.
func JohnsonSequence(inst *Instance) ([]int, error) {
	if err := inst.Validate(); err != nil {
		return nil, err
	}
	if inst.Machines != 2 {
		return nil, fmt.Errorf("johnson rule requires exactly 2 machines (got %d)", inst.Machines)
	}

	var front, back []int
	for j := 0; j < inst.Jobs; j++ {
		if inst.Time(j, 0) < inst.Time(j, 1) {
			front = append(front, j)
		} else {
			back = append(back, j)
		}
	}
	sort.SliceStable(front, func(a, b int) bool {
		return inst.Time(front[a], 0) < inst.Time(front[b], 0)
	})
	sort.SliceStable(back, func(a, b int) bool {
		return inst.Time(back[a], 1) > inst.Time(back[b], 1)
	})
	return append(front, back...), nil
}
