// Package rb builds reduced bases for a training set of sampled functions
// with the greedy algorithm of Field et al. (arXiv:1308.3565, Algorithm 1).
package rb

import (
	"fmt"
	"math"

	coin_math "github.com/drakos74/roq/internal/math"
	"github.com/drakos74/roq/internal/quadrature"
	"github.com/rs/zerolog/log"
	"gonum.org/v1/gonum/floats"
)

const (
	reorthogonalize = 0.5
	maxPasses       = 3
)

// Builder constructs an orthonormal basis spanning a training set to a target accuracy.
type Builder[T coin_math.Scalar] struct {
	weights   quadrature.Weights
	config    Config
	observers []Observer
}

// NewBuilder creates a new greedy builder for the given inner product.
func NewBuilder[T coin_math.Scalar](weights quadrature.Weights, config Config) *Builder[T] {
	return &Builder[T]{
		weights:   weights,
		config:    config,
		observers: make([]Observer, 0),
	}
}

// WithObserver adds observers to be notified for every greedy step.
func (b *Builder[T]) WithObserver(observers ...Observer) *Builder[T] {
	b.observers = append(b.observers, observers...)
	return b
}

// Build runs the greedy loop over the training set.
// Every training vector is expected to have unit norm under the builder weights.
// The training set is not modified.
//
// Errors[i] of the returned basis is the maximum projection error of the training set
// using the first i basis vectors, Errors[0] being the sentinel 1 for the empty basis.
// The loop stops at the first measurement below the tolerance,
// so the last entry is the error certificate of the returned basis.
func (b *Builder[T]) Build(ts [][]T) (*Basis[T], error) {
	n := len(ts)
	if n < 2 {
		return nil, fmt.Errorf("training set of %d vectors: %w", n, InsufficientTrainingDataErr)
	}
	if err := b.config.validate(n); err != nil {
		return nil, err
	}
	m := len(ts[0])
	if m == 0 {
		return nil, fmt.Errorf("empty training vectors: %w", coin_math.DimensionMismatchErr)
	}
	for i, h := range ts {
		if len(h) != m {
			return nil, fmt.Errorf("training vector %d has %d samples instead of %d: %w", i, len(h), m, coin_math.DimensionMismatchErr)
		}
	}
	if l := b.weights.Len(); l != 0 && l != m {
		return nil, fmt.Errorf("%d weights for %d samples: %w", l, m, coin_math.DimensionMismatchErr)
	}

	limit := b.config.limit(n)

	seed := make([]T, m)
	copy(seed, ts[b.config.Seed])

	basis := &Basis[T]{
		weights:      b.weights,
		Vectors:      [][]T{seed},
		Errors:       []float64{1},
		Indices:      []int{b.config.Seed},
		Coefficients: make([][]T, 0),
	}

	projections := make([][]T, n)
	for i := range projections {
		projections[i] = make([]T, m)
	}
	errs := make([]float64, n)

	for iteration := 0; ; iteration++ {
		// only the newest basis vector needs to be projected,
		// the previous ones are already accumulated
		e := basis.Vectors[len(basis.Vectors)-1]
		coefficients := make([]T, n)
		for j, h := range ts {
			c, err := quadrature.Dot(b.weights, e, h)
			if err != nil {
				return nil, fmt.Errorf("could not project training vector %d: %w", j, err)
			}
			coefficients[j] = c
			if err := coin_math.AddScaled(projections[j], c, e); err != nil {
				return nil, err
			}
		}
		basis.Coefficients = append(basis.Coefficients, coefficients)

		for j, h := range ts {
			residual, err := coin_math.Sub(h, projections[j])
			if err != nil {
				return nil, err
			}
			d, err := quadrature.Dot(b.weights, residual, residual)
			if err != nil {
				return nil, err
			}
			errs[j] = coin_math.Abs(d)
		}

		index := floats.MaxIdx(errs)
		sigma := errs[index]
		if floats.HasNaN(errs) || math.IsInf(sigma, 0) {
			return nil, fmt.Errorf("non-finite projection error at iteration %d: %w", iteration, DegenerateBasisVectorErr)
		}
		basis.Errors = append(basis.Errors, sigma)

		b.notify(Step{
			Iteration: iteration,
			Bases:     len(basis.Vectors),
			MaxError:  sigma,
			Index:     index,
		})

		if sigma < b.config.Tolerance {
			break
		}

		if len(basis.Vectors) >= limit {
			return nil, fmt.Errorf("max projection error %v with %d bases above tolerance %v: %w",
				sigma, len(basis.Vectors), b.config.Tolerance, ToleranceNotReachedErr)
		}

		// Gram-Schmidt on the worst represented training vector
		next, err := coin_math.Sub(ts[index], projections[index])
		if err != nil {
			return nil, err
		}
		norm, err := orthogonalize(b.weights, basis.Vectors, next)
		if err != nil {
			return nil, fmt.Errorf("could not orthogonalize training vector %d: %w", index, err)
		}
		if norm == 0 || math.IsNaN(norm) || math.IsInf(norm, 0) {
			return nil, fmt.Errorf("residual of training vector %d has norm %v: %w", index, norm, DegenerateBasisVectorErr)
		}

		basis.Vectors = append(basis.Vectors, coin_math.Scale(next, norm))
		basis.Indices = append(basis.Indices, index)
	}

	log.Info().
		Int("training", n).
		Int("samples", m).
		Int("bases", basis.Size()).
		Float64("sigma", basis.Error()).
		Float64("tolerance", b.config.Tolerance).
		Msg("reduced basis ready")

	return basis, nil
}

// orthogonalize removes in place the components of v along the given orthonormal vectors
// and returns the norm of what is left.
// Modified Gram-Schmidt passes are repeated as long as a pass shrinks the norm
// below reorthogonalize times its previous value, at most maxPasses times.
func orthogonalize[T coin_math.Scalar](q quadrature.Weights, vectors [][]T, v []T) (float64, error) {
	norm, err := quadrature.Norm(q, v)
	if err != nil {
		return 0, err
	}
	for pass := 0; pass < maxPasses; pass++ {
		for _, e := range vectors {
			c, err := quadrature.Dot(q, e, v)
			if err != nil {
				return 0, err
			}
			if err := coin_math.AddScaled(v, -c, e); err != nil {
				return 0, err
			}
		}
		n, err := quadrature.Norm(q, v)
		if err != nil {
			return 0, err
		}
		shrunk := n <= reorthogonalize*norm
		norm = n
		if !shrunk {
			break
		}
	}
	return norm, nil
}

func (b *Builder[T]) notify(step Step) {
	for _, o := range b.observers {
		o.Observe(step)
	}
}
