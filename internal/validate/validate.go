// Package validate certifies a reduced basis empirically against an independent test set.
package validate

import (
	"errors"
	"fmt"
	"math"

	"github.com/drakos74/roq/internal/buffer"
	coin_math "github.com/drakos74/roq/internal/math"
	"github.com/drakos74/roq/internal/rb"
	"github.com/rs/zerolog/log"
)

// EmptyTestSetErr is returned when there is nothing to validate against.
var EmptyTestSetErr = errors.New("empty test set")

// Summary describes the distribution of the validation errors.
// Worst is the test set index with the largest error.
type Summary struct {
	Count int     `json:"count"`
	Min   float64 `json:"min"`
	Max   float64 `json:"max"`
	Mean  float64 `json:"mean"`
	StDev float64 `json:"stdev"`
	Worst int     `json:"worst"`
}

// Report holds the projection error of every test vector.
type Report struct {
	Errors  []float64 `json:"errors"`
	Summary Summary   `json:"summary"`
}

// Log10 returns the decimal logarithm of the errors, as they are usually inspected.
func (r *Report) Log10() []float64 {
	return coin_math.Log10(r.Errors)
}

// Exceeding counts the test vectors with an error at or above the given tolerance.
func (r *Report) Exceeding(tolerance float64) int {
	var n int
	for _, e := range r.Errors {
		if e >= tolerance {
			n++
		}
	}
	return n
}

// Run projects every (normalised) test vector on the basis
// and records the squared norm of its residual.
func Run[T coin_math.Scalar](basis *rb.Basis[T], test [][]T) (*Report, error) {
	if len(test) == 0 {
		return nil, EmptyTestSetErr
	}

	stats := buffer.NewStats()
	errs := make([]float64, len(test))
	for i, h := range test {
		if len(h) != basis.Samples() {
			return nil, fmt.Errorf("test vector %d has %d samples instead of %d: %w", i, len(h), basis.Samples(), coin_math.DimensionMismatchErr)
		}
		e, err := basis.ProjectionError(h)
		if err != nil {
			return nil, fmt.Errorf("could not validate test vector %d: %w", i, err)
		}
		errs[i] = e
		stats.Push(e)
	}

	min, _ := stats.Min()
	max, worst := stats.Max()
	report := &Report{
		Errors: errs,
		Summary: Summary{
			Count: stats.Count(),
			Min:   min,
			Max:   max,
			Mean:  stats.Avg(),
			StDev: stats.StDev(),
			Worst: worst,
		},
	}

	log.Info().
		Int("count", report.Summary.Count).
		Float64("max", max).
		Float64("mean", report.Summary.Mean).
		Float64("log10-max", math.Log10(max)).
		Msg("validation done")

	return report, nil
}
