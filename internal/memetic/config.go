package memetic

import (
	"fmt"
	"time"
)

// Neighborhood определяет тип окрестности локального поиска.
type Neighborhood string

const (
	NeighborhoodSwap   Neighborhood = "swap"
	NeighborhoodInsert Neighborhood = "insert"
)

type Config struct {
	Population  int
	Generations int

	// MaxDuration ограничивает время работы; проверяется на границе
	// поколений, 0 — без ограничения.
	MaxDuration time.Duration

	Elite          int
	TournamentSize int

	MutationRate    float64
	LocalSearchRate float64

	// GreedyFraction — доля начальной популяции, заполняемая жадной
	// вставочной эвристикой; остаток — случайные перестановки.
	GreedyFraction float64

	Neighborhood      Neighborhood
	LocalSearchPasses int

	// Workers — размер пула параллельной оценки; 0 — по числу CPU.
	Workers int

	TrackConvergence bool

	// OnGeneration вызывается после каждого завершённого поколения
	// (в потоке-оркестраторе); nil — без уведомлений.
	OnGeneration func(generation, bestMakespan int)
}

func (c Config) Validate() error {
	if c.Population <= 1 {
		return fmt.Errorf(
			"размер популяции должен быть > 1 (получено %d)",
			c.Population,
		)
	}
	if c.Generations <= 0 {
		return fmt.Errorf(
			"количество поколений должно быть > 0 (получено %d)",
			c.Generations,
		)
	}
	if c.MaxDuration < 0 {
		return fmt.Errorf(
			"лимит времени должен быть >= 0 (получено %v)",
			c.MaxDuration,
		)
	}
	if c.Elite < 1 || c.Elite >= c.Population {
		return fmt.Errorf(
			"число элитных особей должно быть в диапазоне [1, population) (получено %d)",
			c.Elite,
		)
	}
	if c.TournamentSize <= 0 {
		return fmt.Errorf(
			"размер турнира должен быть > 0 (получено %d)",
			c.TournamentSize,
		)
	}
	if c.MutationRate < 0 || c.MutationRate > 1 {
		return fmt.Errorf(
			"вероятность мутации должна быть в диапазоне [0,1] (получено %f)",
			c.MutationRate,
		)
	}
	if c.LocalSearchRate < 0 || c.LocalSearchRate > 1 {
		return fmt.Errorf(
			"вероятность локального поиска должна быть в диапазоне [0,1] (получено %f)",
			c.LocalSearchRate,
		)
	}
	if c.GreedyFraction < 0 || c.GreedyFraction > 1 {
		return fmt.Errorf(
			"доля жадных решений должна быть в диапазоне [0,1] (получено %f)",
			c.GreedyFraction,
		)
	}
	if c.LocalSearchPasses <= 0 {
		return fmt.Errorf(
			"число проходов локального поиска должно быть > 0 (получено %d)",
			c.LocalSearchPasses,
		)
	}
	if c.Workers < 0 {
		return fmt.Errorf(
			"количество воркеров должно быть >= 0 (получено %d)",
			c.Workers,
		)
	}
	switch c.Neighborhood {
	case NeighborhoodSwap, NeighborhoodInsert:
		// ok
	default:
		return fmt.Errorf(
			"неизвестный тип окрестности %q",
			c.Neighborhood,
		)
	}
	return nil
}

func DefaultConfig() Config {
	return Config{
		Population:  100,
		Generations: 100,
		MaxDuration: 0,

		Elite:          2,
		TournamentSize: 3,

		MutationRate:    0.30,
		LocalSearchRate: 0.60,
		GreedyFraction:  0.10,

		Neighborhood:      NeighborhoodSwap,
		LocalSearchPasses: 50,

		Workers: 0,
	}
}
