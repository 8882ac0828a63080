// Package quadrature defines the discrete inner product used for every norm and projection
// of sampled functions.
//
//	<a, b> = sum_i w_i * conj(a_i) * b_i
//
// The weights are either a constant spacing (e.g. the time step of a uniform grid)
// or one weight per sample (e.g. Chebyshev-Gauss-Lobatto weights).
package quadrature

import (
	"errors"
	"fmt"
	"math"

	coin_math "github.com/drakos74/roq/internal/math"
)

// ZeroNormErr is returned when normalising a vector without any norm.
var ZeroNormErr = errors.New("zero norm")

// Weights holds the quadrature weights of a sampled domain.
type Weights struct {
	dx float64
	w  []float64
}

// Uniform creates constant weights for a uniformly spaced grid with the given spacing.
func Uniform(dx float64) Weights {
	return Weights{dx: dx}
}

// FromSlice creates per-sample weights.
func FromSlice(w []float64) Weights {
	ww := make([]float64, len(w))
	copy(ww, w)
	return Weights{w: ww}
}

// Len returns the number of samples the weights are bound to, or 0 for uniform weights.
func (q Weights) Len() int {
	return len(q.w)
}

// At returns the weight of the i-th sample.
func (q Weights) At(i int) float64 {
	if q.w == nil {
		return q.dx
	}
	return q.w[i]
}

// Values expands the weights for n samples.
func (q Weights) Values(n int) ([]float64, error) {
	if err := q.check(n); err != nil {
		return nil, err
	}
	ww := make([]float64, n)
	for i := range ww {
		ww[i] = q.At(i)
	}
	return ww, nil
}

func (q Weights) check(n int) error {
	if q.w != nil && len(q.w) != n {
		return fmt.Errorf("%d weights for %d samples: %w", len(q.w), n, coin_math.DimensionMismatchErr)
	}
	return nil
}

func (q Weights) String() string {
	if q.w == nil {
		return fmt.Sprintf("uniform(%v)", q.dx)
	}
	return fmt.Sprintf("weighted(%d)", len(q.w))
}

// Dot returns the weighted inner product of a and b, conjugating a.
func Dot[T coin_math.Scalar](q Weights, a, b []T) (T, error) {
	var sum T
	if len(a) != len(b) {
		return sum, fmt.Errorf("inner product of %d and %d samples: %w", len(a), len(b), coin_math.DimensionMismatchErr)
	}
	if err := q.check(len(a)); err != nil {
		return sum, err
	}
	if q.w == nil {
		for i := range a {
			sum += coin_math.Conj(a[i]) * b[i]
		}
		return sum * coin_math.FromReal[T](q.dx), nil
	}
	for i := range a {
		sum += coin_math.FromReal[T](q.w[i]) * coin_math.Conj(a[i]) * b[i]
	}
	return sum, nil
}

// Norm returns sqrt(|<v, v>|).
// The absolute value guards against tiny negative residues from cancellation.
func Norm[T coin_math.Scalar](q Weights, v []T) (float64, error) {
	d, err := Dot(q, v, v)
	if err != nil {
		return 0, err
	}
	return math.Sqrt(coin_math.Abs(d)), nil
}

// Normalize returns v scaled to unit norm.
func Normalize[T coin_math.Scalar](q Weights, v []T) ([]T, error) {
	n, err := Norm(q, v)
	if err != nil {
		return nil, err
	}
	if n == 0 || math.IsNaN(n) || math.IsInf(n, 0) {
		return nil, fmt.Errorf("could not normalize vector with norm %v: %w", n, ZeroNormErr)
	}
	return coin_math.Scale(v, n), nil
}
