package rb

import (
	"fmt"
	"math"

	coin_math "github.com/drakos74/roq/internal/math"
	"github.com/drakos74/roq/internal/quadrature"
	"gonum.org/v1/gonum/mat"
)

// Basis is the orthonormal reduced basis produced by the greedy builder.
type Basis[T coin_math.Scalar] struct {
	weights quadrature.Weights
	// Vectors are the basis elements in the order they were added.
	Vectors [][]T
	// Errors is the greedy error history, see Builder.Build.
	Errors []float64
	// Indices are the training set indices the basis elements were built from.
	Indices []int
	// Coefficients holds for every basis element its projection coefficient
	// on every training vector.
	Coefficients [][]T
}

// Size returns the number of basis vectors.
func (b *Basis[T]) Size() int {
	return len(b.Vectors)
}

// Samples returns the length of the basis vectors.
func (b *Basis[T]) Samples() int {
	if len(b.Vectors) == 0 {
		return 0
	}
	return len(b.Vectors[0])
}

// Weights returns the inner product the basis is orthonormal under.
func (b *Basis[T]) Weights() quadrature.Weights {
	return b.weights
}

// Error returns the final maximum training set projection error.
func (b *Basis[T]) Error() float64 {
	return b.Errors[len(b.Errors)-1]
}

// Project returns the projection of h onto the span of the basis,
// with coefficients computed afresh for h.
func (b *Basis[T]) Project(h []T) ([]T, error) {
	p := make([]T, len(h))
	for i, e := range b.Vectors {
		c, err := quadrature.Dot(b.weights, e, h)
		if err != nil {
			return nil, fmt.Errorf("could not project on basis %d: %w", i, err)
		}
		if err := coin_math.AddScaled(p, c, e); err != nil {
			return nil, err
		}
	}
	return p, nil
}

// ProjectionError returns the squared norm of the residual of h outside the basis span.
func (b *Basis[T]) ProjectionError(h []T) (float64, error) {
	p, err := b.Project(h)
	if err != nil {
		return 0, err
	}
	r, err := coin_math.Sub(h, p)
	if err != nil {
		return 0, err
	}
	d, err := quadrature.Dot(b.weights, r, r)
	if err != nil {
		return 0, err
	}
	return coin_math.Abs(d), nil
}

// MaxError recomputes the maximum projection error over the given set.
func (b *Basis[T]) MaxError(ts [][]T) (float64, error) {
	var max float64
	for i, h := range ts {
		e, err := b.ProjectionError(h)
		if err != nil {
			return 0, fmt.Errorf("could not compute projection error for %d: %w", i, err)
		}
		max = math.Max(max, e)
	}
	return max, nil
}

// Orthonormality returns max |<e_i, e_j> - delta_ij| over all basis pairs.
func (b *Basis[T]) Orthonormality() (float64, error) {
	var max float64
	for i, ei := range b.Vectors {
		for j, ej := range b.Vectors {
			d, err := quadrature.Dot(b.weights, ei, ej)
			if err != nil {
				return 0, err
			}
			if i == j {
				d -= coin_math.FromReal[T](1)
			}
			max = math.Max(max, coin_math.Abs(d))
		}
	}
	return max, nil
}

// Dense returns a real basis as a (bases x samples) matrix.
func Dense(b *Basis[float64]) *mat.Dense {
	k, m := b.Size(), b.Samples()
	d := mat.NewDense(k, m, nil)
	for i, v := range b.Vectors {
		d.SetRow(i, v)
	}
	return d
}

// Split returns the real and imaginary parts of a complex basis,
// for storing or plotting.
func Split(b *Basis[complex128]) (re, im [][]float64) {
	re = make([][]float64, b.Size())
	im = make([][]float64, b.Size())
	for i, v := range b.Vectors {
		re[i] = make([]float64, len(v))
		im[i] = make([]float64, len(v))
		for j, c := range v {
			re[i][j] = real(c)
			im[i][j] = imag(c)
		}
	}
	return re, im
}
