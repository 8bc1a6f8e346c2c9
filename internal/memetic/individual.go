package memetic

// Individual — особь популяции: перестановка работ и её makespan.
// Makespan равен -1, пока особь не оценена.
type Individual struct {
	Perm     []int
	Makespan int
}
