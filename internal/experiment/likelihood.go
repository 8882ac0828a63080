package experiment

import (
	"errors"
	"fmt"
	"math"
	"math/rand"
	"time"

	"github.com/drakos74/roq/internal/eim"
	"github.com/drakos74/roq/internal/model"
	"github.com/drakos74/roq/internal/quadrature"
	"github.com/rs/zerolog/log"
)

// NoInterpolantErr is returned when a likelihood is requested from a run without interpolation nodes.
var NoInterpolantErr = errors.New("no interpolant")

// Term is one inner product evaluated on the full grid and with the reduced order quadrature.
type Term struct {
	Full        float64       `json:"full"`
	Reduced     float64       `json:"reduced"`
	FullTime    time.Duration `json:"full_time"`
	ReducedTime time.Duration `json:"reduced_time"`
}

// Speedup is the ratio of the full over the reduced evaluation time.
func (t Term) Speedup() float64 {
	if t.ReducedTime == 0 {
		return math.Inf(1)
	}
	return float64(t.FullTime) / float64(t.ReducedTime)
}

// Comparison holds the log likelihood terms <h,h> - 2<d,h> computed both ways.
type Comparison struct {
	ModelModel Term    `json:"model_model"`
	DataModel  Term    `json:"data_model"`
	Full       float64 `json:"full"`
	Reduced    float64 `json:"reduced"`
	// Fraction is the relative difference of the two likelihoods,
	// or the absolute one when the full likelihood is zero.
	Fraction float64 `json:"fraction"`
}

func fraction(full, reduced float64) float64 {
	d := math.Abs(full - reduced)
	if full == 0 {
		return d
	}
	return d / math.Abs(full)
}

// Likelihood evaluates the model for the given parameters against gaussian noise data
// drawn with the given seed, once on the full grid and once on the interpolation nodes only.
func Likelihood(r *Result, params []float64, seed int64) (*Comparison, error) {
	if r.Real == nil || r.Interpolant == nil {
		return nil, fmt.Errorf("run '%s' has no interpolation nodes: %w", r.ID, NoInterpolantErr)
	}
	family, err := model.NewReal(r.Config.Family)
	if err != nil {
		return nil, err
	}
	if len(params) != family.Dim() {
		return nil, fmt.Errorf("%d parameters for '%s' with %d: %w", len(params), family.Name(), family.Dim(), InvalidConfigErr)
	}

	q := r.Real.Weights()
	x := r.Abscissas
	in := r.Interpolant

	rnd := rand.New(rand.NewSource(seed))
	data := make([]float64, len(x))
	for i := range data {
		data[i] = rnd.NormFloat64()
	}

	xs := make([]float64, in.Size())
	for i, n := range in.Nodes {
		xs[i] = x[n]
	}

	dw, err := in.DataWeights(q, data)
	if err != nil {
		return nil, fmt.Errorf("could not compute data weights: %w", err)
	}
	mw, err := in.ModelWeights(q)
	if err != nil {
		return nil, fmt.Errorf("could not compute model weights: %w", err)
	}

	full := family.Evaluate(params, x)
	reduced := family.Evaluate(params, xs)

	c := &Comparison{}

	start := time.Now()
	c.ModelModel.Full, err = quadrature.Dot(q, full, full)
	c.ModelModel.FullTime = time.Since(start)
	if err != nil {
		return nil, err
	}
	start = time.Now()
	c.ModelModel.Reduced, err = eim.ModelDotModel(mw, reduced)
	c.ModelModel.ReducedTime = time.Since(start)
	if err != nil {
		return nil, err
	}

	start = time.Now()
	c.DataModel.Full, err = quadrature.Dot(q, data, full)
	c.DataModel.FullTime = time.Since(start)
	if err != nil {
		return nil, err
	}
	start = time.Now()
	c.DataModel.Reduced, err = eim.DataDotModel(dw, reduced)
	c.DataModel.ReducedTime = time.Since(start)
	if err != nil {
		return nil, err
	}

	c.Full = c.ModelModel.Full - 2*c.DataModel.Full
	c.Reduced = c.ModelModel.Reduced - 2*c.DataModel.Reduced
	c.Fraction = fraction(c.Full, c.Reduced)

	log.Info().
		Str("run", r.Config.Name).
		Floats64("params", params).
		Float64("full", c.Full).
		Float64("reduced", c.Reduced).
		Float64("fraction", c.Fraction).
		Float64("mm-speedup", c.ModelModel.Speedup()).
		Float64("dm-speedup", c.DataModel.Speedup()).
		Msg("likelihood")

	return c, nil
}
