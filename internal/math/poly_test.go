package math

import (
	"errors"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFit(t *testing.T) {

	type test struct {
		degree int
		f      func(x float64) float64
		coeffs []float64
	}

	tests := map[string]test{
		"line": {
			degree: 1,
			f: func(x float64) float64 {
				return 3*x - 2
			},
			coeffs: []float64{-2, 3},
		},
		"quadratic": {
			degree: 2,
			f: func(x float64) float64 {
				return 0.5*x*x + x + 1
			},
			coeffs: []float64{1, 1, 0.5},
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			x := Linspace(-2, 2, 11)
			y := make([]float64, len(x))
			for i, v := range x {
				y[i] = tt.f(v)
			}
			c, err := Fit(x, y, tt.degree)
			require.NoError(t, err)
			require.Equal(t, len(tt.coeffs), len(c))
			for i := range c {
				assert.InDelta(t, tt.coeffs[i], c[i], 1e-9)
			}
		})
	}
}

func TestFit_Mismatch(t *testing.T) {
	_, err := Fit([]float64{1, 2}, []float64{1}, 1)
	assert.True(t, errors.Is(err, DimensionMismatchErr))

	_, err = Fit([]float64{1, 2}, []float64{1, 2}, 2)
	assert.True(t, errors.Is(err, DimensionMismatchErr))
}

func TestConvergenceRate(t *testing.T) {
	errs := make([]float64, 8)
	for i := range errs {
		errs[i] = math.Pow(10, -2*float64(i))
	}
	// a zero entry must not break the fit
	errs = append(errs, 0)

	rate, err := ConvergenceRate(errs)
	require.NoError(t, err)
	assert.InDelta(t, -2, rate, 1e-9)
}
