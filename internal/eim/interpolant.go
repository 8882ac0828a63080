// Package eim builds empirical interpolants of a reduced basis
// (Field et al., arXiv:1308.3565, Algorithm 2) and the reduced order quadrature
// weights derived from them.
package eim

import (
	"errors"
	"fmt"
	"math"

	coin_math "github.com/drakos74/roq/internal/math"
	"github.com/rs/zerolog/log"
	"gonum.org/v1/gonum/mat"
)

var (
	EmptyBasisErr = errors.New("empty basis")
	SingularErr   = errors.New("singular interpolation matrix")
)

// Interpolant reconstructs any function in the span of a reduced basis
// from its values at the interpolation nodes.
type Interpolant struct {
	// Nodes are the selected abscissa indices, one per basis vector.
	Nodes []int
	// B is the (bases x samples) interpolation matrix.
	B *mat.Dense
}

// New selects the interpolation nodes for the given (bases x samples) basis
// and computes the interpolation matrix.
func New(basis mat.Matrix) (*Interpolant, error) {
	k, m, err := dims(basis)
	if err != nil {
		return nil, err
	}

	nodes := make([]int, k)
	nodes[0] = argAbsMax(mat.Row(nil, 0, basis))

	log.Debug().Int("node", nodes[0]).Int("basis", 0).Msg("interpolation node")

	for i := 1; i < k; i++ {
		b, err := solve(basis, nodes[:i])
		if err != nil {
			return nil, fmt.Errorf("could not interpolate basis %d: %w", i, err)
		}
		e := mat.Row(nil, i, basis)
		samples := make([]float64, i)
		for j, n := range nodes[:i] {
			samples[j] = e[n]
		}
		interpolant := mat.NewVecDense(m, nil)
		interpolant.MulVec(b.T(), mat.NewVecDense(i, samples))
		interpolant.SubVec(interpolant, mat.NewVecDense(m, e))

		nodes[i] = argAbsMax(interpolant.RawVector().Data)

		log.Debug().Int("node", nodes[i]).Int("basis", i).Msg("interpolation node")
	}

	b, err := solve(basis, nodes)
	if err != nil {
		return nil, fmt.Errorf("could not create interpolation matrix: %w", err)
	}
	return &Interpolant{Nodes: nodes, B: b}, nil
}

// FromInverse builds the interpolant from a precomputed inverse interpolation matrix,
// B = invV^T * E[0:n], where n is the size of invV.
func FromInverse(invV, basis mat.Matrix, nodes []int) (*Interpolant, error) {
	k, m, err := dims(basis)
	if err != nil {
		return nil, err
	}
	r, c := invV.Dims()
	if r != c || r > k || len(nodes) != r {
		return nil, fmt.Errorf("inverse of %dx%d for %d bases and %d nodes: %w", r, c, k, len(nodes), coin_math.DimensionMismatchErr)
	}
	for _, n := range nodes {
		if n < 0 || n >= m {
			return nil, fmt.Errorf("node %d outside %d samples: %w", n, m, coin_math.DimensionMismatchErr)
		}
	}
	b := mat.NewDense(r, m, nil)
	b.Mul(invV.T(), slice(basis, r, m))
	nn := make([]int, len(nodes))
	copy(nn, nodes)
	return &Interpolant{Nodes: nn, B: b}, nil
}

// Size returns the number of interpolation nodes.
func (in *Interpolant) Size() int {
	return len(in.Nodes)
}

// Sample returns the values of f at the interpolation nodes.
func (in *Interpolant) Sample(f []float64) ([]float64, error) {
	_, m := in.B.Dims()
	if len(f) != m {
		return nil, fmt.Errorf("function of %d samples for %d: %w", len(f), m, coin_math.DimensionMismatchErr)
	}
	ss := make([]float64, len(in.Nodes))
	for i, n := range in.Nodes {
		ss[i] = f[n]
	}
	return ss, nil
}

// Interpolate reconstructs the full function from its values at the nodes.
func (in *Interpolant) Interpolate(samples []float64) ([]float64, error) {
	k, m := in.B.Dims()
	if len(samples) != k {
		return nil, fmt.Errorf("%d samples for %d nodes: %w", len(samples), k, coin_math.DimensionMismatchErr)
	}
	res := mat.NewVecDense(m, nil)
	res.MulVec(in.B.T(), mat.NewVecDense(k, samples))
	return res.RawVector().Data, nil
}

// Reconstruct samples f at the nodes and interpolates it back.
func (in *Interpolant) Reconstruct(f []float64) ([]float64, error) {
	ss, err := in.Sample(f)
	if err != nil {
		return nil, err
	}
	return in.Interpolate(ss)
}

// solve computes B = V^-T * E[0:n] for the nodes,
// where V[k][j] = E[j][nodes[k]].
func solve(basis mat.Matrix, nodes []int) (*mat.Dense, error) {
	n := len(nodes)
	_, m := basis.Dims()
	v := mat.NewDense(n, n, nil)
	for k, node := range nodes {
		for j := 0; j < n; j++ {
			v.Set(k, j, basis.At(j, node))
		}
	}
	var b mat.Dense
	err := b.Solve(v.T(), slice(basis, n, m))
	if err != nil {
		var c mat.Condition
		if errors.As(err, &c) && !math.IsInf(float64(c), 1) {
			log.Warn().Float64("condition", float64(c)).Int("nodes", n).Msg("ill-conditioned interpolation matrix")
			return &b, nil
		}
		return nil, fmt.Errorf("%v: %w", err, SingularErr)
	}
	return &b, nil
}

func slice(basis mat.Matrix, r, c int) mat.Matrix {
	if d, ok := basis.(*mat.Dense); ok {
		return d.Slice(0, r, 0, c)
	}
	d := mat.DenseCopyOf(basis)
	return d.Slice(0, r, 0, c)
}

func dims(basis mat.Matrix) (int, int, error) {
	if basis == nil {
		return 0, 0, EmptyBasisErr
	}
	k, m := basis.Dims()
	if k == 0 || m == 0 {
		return 0, 0, EmptyBasisErr
	}
	if k > m {
		return 0, 0, fmt.Errorf("%d bases for %d samples: %w", k, m, coin_math.DimensionMismatchErr)
	}
	return k, m, nil
}

// argAbsMax returns the first index of the largest absolute value.
func argAbsMax(xx []float64) int {
	var idx int
	max := -1.
	for i, x := range xx {
		if a := math.Abs(x); a > max {
			max = a
			idx = i
		}
	}
	return idx
}
