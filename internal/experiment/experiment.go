// Package experiment runs a complete reduced basis experiment from its config:
// training set, greedy basis, interpolation nodes and validation.
package experiment

import (
	"fmt"
	"time"

	"github.com/drakos74/roq/internal/eim"
	coin_math "github.com/drakos74/roq/internal/math"
	"github.com/drakos74/roq/internal/model"
	"github.com/drakos74/roq/internal/quadrature"
	"github.com/drakos74/roq/internal/rb"
	"github.com/drakos74/roq/internal/storage"
	"github.com/drakos74/roq/internal/validate"
	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
)

const ResultLabel = "result"

// Result is the outcome of an experiment run.
// Basis holds the basis vectors, or their real part for complex families with Imag holding the imaginary one.
type Result struct {
	ID              string           `json:"id"`
	Config          Config           `json:"config"`
	Created         time.Time        `json:"created"`
	Duration        time.Duration    `json:"duration"`
	Size            int              `json:"size"`
	Errors          []float64        `json:"errors"`
	Indices         []int            `json:"indices"`
	Nodes           []int            `json:"nodes,omitempty"`
	ConvergenceRate float64          `json:"convergence_rate"`
	Validation      *validate.Report `json:"validation"`
	Abscissas       []float64        `json:"abscissas"`
	Basis           [][]float64      `json:"basis"`
	Imag            [][]float64      `json:"imag,omitempty"`

	Real        *rb.Basis[float64]    `json:"-"`
	Complex     *rb.Basis[complex128] `json:"-"`
	Interpolant *eim.Interpolant      `json:"-"`
}

// Key returns the storage key of the result.
func (r *Result) Key() storage.Key {
	return storage.Key{
		Name:  r.Config.Name,
		Run:   r.ID,
		Label: ResultLabel,
	}
}

// Option configures a run.
type Option func(r *runner)

// WithObserver adds observers for the greedy steps.
func WithObserver(observers ...rb.Observer) Option {
	return func(r *runner) {
		r.observers = append(r.observers, observers...)
	}
}

// WithID sets the run id instead of a random one.
func WithID(id string) Option {
	return func(r *runner) {
		r.id = id
	}
}

type runner struct {
	id        string
	observers []rb.Observer
}

// Run executes the experiment described by the config.
func Run(cfg Config, opts ...Option) (*Result, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	r := &runner{
		id:        uuid.New().String(),
		observers: make([]rb.Observer, 0),
	}
	for _, opt := range opts {
		opt(r)
	}
	observers := append([]rb.Observer{rb.LogObserver(cfg.Name)}, r.observers...)

	x, w, err := cfg.Grid.Build()
	if err != nil {
		return nil, fmt.Errorf("could not build grid for '%s': %w", cfg.Name, err)
	}

	result := &Result{
		ID:      r.id,
		Config:  cfg,
		Created: time.Now(),
	}

	var report *validate.Report
	if cfg.Family.IsComplex() {
		family, err := model.NewComplex(cfg.Family, cfg.Base)
		if err != nil {
			return nil, err
		}
		spectral, ok := family.(model.Spectral)
		if !ok {
			return nil, fmt.Errorf("family '%s' has no frequency domain: %w", family.Name(), InvalidConfigErr)
		}
		ff, df, err := spectral.Frequencies(x)
		if err != nil {
			return nil, err
		}
		basis, rep, err := build(cfg, family, x, quadrature.Uniform(df), observers)
		if err != nil {
			return nil, err
		}
		report = rep
		result.Complex = basis
		result.Basis, result.Imag = rb.Split(basis)
		result.Abscissas = ff
		result.Errors = basis.Errors
		result.Indices = basis.Indices
	} else {
		family, err := model.NewReal(cfg.Family)
		if err != nil {
			return nil, err
		}
		basis, rep, err := build(cfg, family, x, w, observers)
		if err != nil {
			return nil, err
		}
		report = rep
		result.Real = basis
		result.Basis = basis.Vectors
		result.Abscissas = x
		result.Errors = basis.Errors
		result.Indices = basis.Indices
		if cfg.Interpolate {
			in, err := eim.New(rb.Dense(basis))
			if err != nil {
				return nil, fmt.Errorf("could not create interpolant for '%s': %w", cfg.Name, err)
			}
			result.Interpolant = in
			result.Nodes = in.Nodes
		}
	}

	result.Size = len(result.Basis)
	result.Validation = report
	rate, err := coin_math.ConvergenceRate(result.Errors)
	if err != nil {
		log.Warn().Err(err).Str("run", cfg.Name).Msg("could not estimate convergence rate")
	}
	result.ConvergenceRate = rate
	result.Duration = time.Since(result.Created)

	log.Info().
		Str("id", result.ID).
		Str("run", cfg.Name).
		Str("family", string(cfg.Family)).
		Int("bases", result.Size).
		Ints("nodes", result.Nodes).
		Float64("rate", rate).
		Float64("validation-max", report.Summary.Max).
		Dur("duration", result.Duration).
		Msg("experiment done")

	return result, nil
}

func build[T coin_math.Scalar](cfg Config, family model.Family[T], x []float64, w quadrature.Weights, observers []rb.Observer) (*rb.Basis[T], *validate.Report, error) {
	ts, err := model.TrainingSet(w, family, x, cfg.Training.Draw())
	if err != nil {
		return nil, nil, fmt.Errorf("could not create training set: %w", err)
	}

	config := rb.NewConfig(cfg.Tolerance).
		WithSeed(cfg.Seed).
		WithMaxBases(cfg.MaxBases)
	basis, err := rb.NewBuilder[T](w, config).
		WithObserver(observers...).
		Build(ts)
	if err != nil {
		return nil, nil, fmt.Errorf("could not build basis for '%s': %w", cfg.Name, err)
	}

	vs, err := model.TrainingSet(w, family, x, cfg.Validation.Draw())
	if err != nil {
		return nil, nil, fmt.Errorf("could not create validation set: %w", err)
	}
	report, err := validate.Run(basis, vs)
	if err != nil {
		return nil, nil, fmt.Errorf("could not validate basis for '%s': %w", cfg.Name, err)
	}
	return basis, report, nil
}

// Save stores the result under its key.
func Save(p storage.Persistence, r *Result) error {
	if err := p.Store(r.Key(), r); err != nil {
		return fmt.Errorf("could not save result '%s': %w", r.ID, err)
	}
	log.Info().Str("id", r.ID).Str("run", r.Config.Name).Msg("result saved")
	return nil
}

// Load loads a stored result.
// Only the serialised fields are restored, the basis and interpolant objects are not.
func Load(p storage.Persistence, name, id string) (*Result, error) {
	var r Result
	err := p.Load(storage.Key{Name: name, Run: id, Label: ResultLabel}, &r)
	if err != nil {
		return nil, fmt.Errorf("could not load result '%s' for '%s': %w", id, name, err)
	}
	return &r, nil
}
