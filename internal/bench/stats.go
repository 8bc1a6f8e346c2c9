package bench

import (
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
)

type Summary struct {
	N    int
	Best float64
	Mean float64
	Std  float64
}

func Summarize(values []float64) Summary {
	s := Summary{N: len(values)}
	if s.N == 0 {
		return s
	}
	s.Best = floats.Min(values)
	s.Mean = stat.Mean(values, nil)
	if s.N >= 2 {
		s.Std = stat.StdDev(values, nil)
	}
	return s
}

type IntSummary struct {
	N    int
	Best int
	Mean float64
	Std  float64
}

func SummarizeInts(values []int) IntSummary {
	s := IntSummary{N: len(values)}
	if s.N == 0 {
		return s
	}

	fs := make([]float64, len(values))
	best := values[0]
	for i, v := range values {
		if v < best {
			best = v
		}
		fs[i] = float64(v)
	}

	s.Best = best
	s.Mean = stat.Mean(fs, nil)
	if s.N >= 2 {
		s.Std = stat.StdDev(fs, nil)
	}
	return s
}
