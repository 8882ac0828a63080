package eim

import (
	"errors"
	"math"
	"math/rand"
	"testing"

	coin_math "github.com/drakos74/roq/internal/math"
	"github.com/drakos74/roq/internal/quadrature"
	"github.com/drakos74/roq/internal/rb"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/mat"
)

type fixture struct {
	x      []float64
	q      quadrature.Weights
	basis  *rb.Basis[float64]
	member func(x float64) float64
}

func lineFixture(t *testing.T) fixture {
	x := coin_math.Linspace(0, 10, 20)
	q := quadrature.Uniform(x[1] - x[0])
	rnd := rand.New(rand.NewSource(1))
	ts := make([][]float64, 50)
	for i := range ts {
		m := rnd.Float64()*5 - 10
		c := rnd.Float64()*5 - 10
		h := make([]float64, len(x))
		for j, v := range x {
			h[j] = m*v + c
		}
		n, err := quadrature.Normalize(q, h)
		require.NoError(t, err)
		ts[i] = n
	}
	basis, err := rb.NewBuilder[float64](q, rb.NewConfig(1e-12)).Build(ts)
	require.NoError(t, err)
	return fixture{
		x:     x,
		q:     q,
		basis: basis,
		member: func(x float64) float64 {
			return 3*x - 7
		},
	}
}

func toneFixture(t *testing.T) fixture {
	dt := 60.
	x := coin_math.Series(dt, 2000)
	q := quadrature.Uniform(dt)
	ts := make([][]float64, 10)
	for k := range ts {
		f := -0.0001 + float64(k)*0.0002/9
		n, err := quadrature.Normalize(q, coin_math.Sine(1, f, 0, x))
		require.NoError(t, err)
		ts[k] = n
	}
	basis, err := rb.NewBuilder[float64](q, rb.NewConfig(1e-12)).Build(ts)
	require.NoError(t, err)
	f := -0.0001 + 6*0.0002/9
	return fixture{
		x:     x,
		q:     q,
		basis: basis,
		member: func(x float64) float64 {
			return 2.5 * math.Sin(2*math.Pi*f*x)
		},
	}
}

func TestInterpolant_RoundTrip(t *testing.T) {

	type test struct {
		fixture func(t *testing.T) fixture
	}

	tests := map[string]test{
		"lines": {fixture: lineFixture},
		"tones": {fixture: toneFixture},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			fx := tt.fixture(t)
			in, err := New(rb.Dense(fx.basis))
			require.NoError(t, err)

			// one distinct node per basis vector
			require.Equal(t, fx.basis.Size(), in.Size())
			seen := make(map[int]bool)
			for _, n := range in.Nodes {
				assert.False(t, seen[n], "node %d selected twice", n)
				seen[n] = true
			}

			f := make([]float64, len(fx.x))
			for i, v := range fx.x {
				f[i] = fx.member(v)
			}
			g, err := in.Reconstruct(f)
			require.NoError(t, err)
			require.Equal(t, len(f), len(g))
			for i := range f {
				assert.InDelta(t, f[i], g[i], 1e-8, "sample %d", i)
			}

			// the interpolant is exact at the nodes for any function
			noise := make([]float64, len(fx.x))
			for i := range noise {
				noise[i] = math.Cos(float64(i))
			}
			g, err = in.Reconstruct(noise)
			require.NoError(t, err)
			for _, n := range in.Nodes {
				assert.InDelta(t, noise[n], g[n], 1e-8)
			}
		})
	}
}

func TestInterpolant_Mismatch(t *testing.T) {
	fx := lineFixture(t)
	in, err := New(rb.Dense(fx.basis))
	require.NoError(t, err)

	_, err = in.Interpolate([]float64{1, 2, 3})
	assert.True(t, errors.Is(err, coin_math.DimensionMismatchErr))

	_, err = in.Sample([]float64{1, 2, 3})
	assert.True(t, errors.Is(err, coin_math.DimensionMismatchErr))
}

func TestFromInverse(t *testing.T) {
	fx := toneFixture(t)
	basis := rb.Dense(fx.basis)
	in, err := New(basis)
	require.NoError(t, err)

	k := in.Size()
	v := mat.NewDense(k, k, nil)
	for i, n := range in.Nodes {
		for j := 0; j < k; j++ {
			v.Set(i, j, basis.At(j, n))
		}
	}
	var inv mat.Dense
	require.NoError(t, inv.Inverse(v))

	other, err := FromInverse(&inv, basis, in.Nodes)
	require.NoError(t, err)
	assert.True(t, mat.EqualApprox(in.B, other.B, 1e-8))

	_, err = FromInverse(&inv, basis, in.Nodes[:1])
	assert.True(t, errors.Is(err, coin_math.DimensionMismatchErr))
}

func TestNew_Errors(t *testing.T) {

	_, err := New(nil)
	assert.True(t, errors.Is(err, EmptyBasisErr))

	_, err = New(mat.NewDense(3, 2, nil))
	assert.True(t, errors.Is(err, coin_math.DimensionMismatchErr))

	duplicate := mat.NewDense(2, 3, []float64{
		3, 1, 2,
		3, 1, 2,
	})
	_, err = New(duplicate)
	assert.True(t, errors.Is(err, SingularErr))
}

func TestROQ(t *testing.T) {
	fx := toneFixture(t)
	in, err := New(rb.Dense(fx.basis))
	require.NoError(t, err)

	rnd := rand.New(rand.NewSource(3))
	data := make([]float64, len(fx.x))
	model := make([]float64, len(fx.x))
	for i, v := range fx.x {
		data[i] = rnd.NormFloat64()
		model[i] = fx.member(v)
	}
	reduced, err := in.Sample(model)
	require.NoError(t, err)

	dw, err := in.DataWeights(fx.q, data)
	require.NoError(t, err)
	full, err := quadrature.Dot(fx.q, data, model)
	require.NoError(t, err)
	roq, err := DataDotModel(dw, reduced)
	require.NoError(t, err)
	assert.InDelta(t, full, roq, 1e-6*math.Abs(full))

	mw, err := in.ModelWeights(fx.q)
	require.NoError(t, err)
	full, err = quadrature.Dot(fx.q, model, model)
	require.NoError(t, err)
	roq, err = ModelDotModel(mw, reduced)
	require.NoError(t, err)
	assert.InDelta(t, full, roq, 1e-6*math.Abs(full))

	_, err = DataDotModel(dw, reduced[:1])
	assert.True(t, errors.Is(err, coin_math.DimensionMismatchErr))
	_, err = ModelDotModel(mw, reduced[:1])
	assert.True(t, errors.Is(err, coin_math.DimensionMismatchErr))
}
