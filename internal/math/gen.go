package math

import (
	"math"

	"gonum.org/v1/gonum/floats"
)

// Series returns limit points spaced by factor, starting at 0.
func Series(factor float64, limit int) []float64 {
	xx := make([]float64, 0)
	for i := 0; i < limit; i++ {
		xx = append(xx, factor*float64(i))
	}
	return xx
}

// Linspace returns n evenly spaced points over [start, end], end included.
func Linspace(start, end float64, n int) []float64 {
	if n <= 0 {
		return []float64{}
	}
	if n == 1 {
		return []float64{start}
	}
	return floats.Span(make([]float64, n), start, end)
}

// Sine evaluates amplitude * sin(2 pi f t + phase) at every t.
func Sine(amplitude, f, phase float64, t []float64) []float64 {
	xx := make([]float64, len(t))
	for i, v := range t {
		xx[i] = amplitude * math.Sin(2*math.Pi*f*v+phase)
	}
	return xx
}
