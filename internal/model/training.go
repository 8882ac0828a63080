package model

import (
	"errors"
	"fmt"

	coin_math "github.com/drakos74/roq/internal/math"
	"github.com/drakos74/roq/internal/quadrature"
)

// NonFiniteErr is returned for a family member with NaN or Inf samples.
var NonFiniteErr = errors.New("non-finite sample")

// TrainingSet evaluates the family for every parameter draw on the given abscissas
// and normalises every member under the given weights.
func TrainingSet[T coin_math.Scalar](w quadrature.Weights, family Family[T], x []float64, params [][]float64) ([][]T, error) {
	ts := make([][]T, len(params))
	for i, p := range params {
		if len(p) != family.Dim() {
			return nil, fmt.Errorf("draw %d has %d parameters instead of %d for '%s': %w",
				i, len(p), family.Dim(), family.Name(), coin_math.DimensionMismatchErr)
		}
		v := family.Evaluate(p, x)
		for j, s := range v {
			if !coin_math.IsFinite(s) {
				return nil, fmt.Errorf("'%s' member %d for %v at sample %d: %w", family.Name(), i, p, j, NonFiniteErr)
			}
		}
		h, err := quadrature.Normalize(w, v)
		if err != nil {
			return nil, fmt.Errorf("could not normalise '%s' member %d for %v: %w", family.Name(), i, p, err)
		}
		ts[i] = h
	}
	return ts, nil
}
