package eim

import (
	"fmt"

	coin_math "github.com/drakos74/roq/internal/math"
	"github.com/drakos74/roq/internal/quadrature"
	"gonum.org/v1/gonum/mat"
)

// DataWeights returns the reduced order quadrature weights for the data-model term,
// w_k = <B_k, d>, so that <d, h> ~ sum_k w_k h(x_k) for any h in the basis span.
func (in *Interpolant) DataWeights(q quadrature.Weights, data []float64) ([]float64, error) {
	k, _ := in.B.Dims()
	ww := make([]float64, k)
	for i := 0; i < k; i++ {
		w, err := quadrature.Dot(q, in.B.RawRowView(i), data)
		if err != nil {
			return nil, fmt.Errorf("could not compute data weight %d: %w", i, err)
		}
		ww[i] = w
	}
	return ww, nil
}

// ModelWeights returns the reduced order quadrature weights for the model-model term,
// G_kl = <B_k, B_l>, so that <h, h> ~ h(x)^T G h(x).
func (in *Interpolant) ModelWeights(q quadrature.Weights) (*mat.SymDense, error) {
	k, _ := in.B.Dims()
	g := mat.NewSymDense(k, nil)
	for i := 0; i < k; i++ {
		for j := i; j < k; j++ {
			w, err := quadrature.Dot(q, in.B.RawRowView(i), in.B.RawRowView(j))
			if err != nil {
				return nil, fmt.Errorf("could not compute model weight %d,%d: %w", i, j, err)
			}
			g.SetSym(i, j, w)
		}
	}
	return g, nil
}

// DataDotModel evaluates the reduced data-model term from the model values at the nodes.
func DataDotModel(weights, model []float64) (float64, error) {
	if len(weights) != len(model) {
		return 0, fmt.Errorf("%d weights for %d model values: %w", len(weights), len(model), coin_math.DimensionMismatchErr)
	}
	if len(model) == 0 {
		return 0, nil
	}
	return mat.Dot(mat.NewVecDense(len(weights), weights), mat.NewVecDense(len(model), model)), nil
}

// ModelDotModel evaluates the reduced model-model term from the model values at the nodes.
func ModelDotModel(weights mat.Symmetric, model []float64) (float64, error) {
	k := weights.Symmetric()
	if k != len(model) {
		return 0, fmt.Errorf("%dx%d weights for %d model values: %w", k, k, len(model), coin_math.DimensionMismatchErr)
	}
	if k == 0 {
		return 0, nil
	}
	v := mat.NewVecDense(k, model)
	return mat.Inner(v, weights, v), nil
}
