package experiment

import (
	"errors"
	"fmt"
	"math"

	"github.com/drakos74/roq/internal/model"
)

// InvalidConfigErr is returned for an experiment that cannot run.
var InvalidConfigErr = errors.New("invalid experiment config")

// Config is the full description of a reduced basis experiment.
type Config struct {
	Name string `json:"name" yaml:"name"`
	// Family is the signal family kind, Base the real family a spectral family wraps.
	Family model.Kind     `json:"family" yaml:"family"`
	Base   model.Kind     `json:"base,omitempty" yaml:"base,omitempty"`
	Grid   model.Grid     `json:"grid" yaml:"grid"`
	// Training and Validation describe how the parameters of both sets are drawn.
	Training   model.Sampling `json:"training" yaml:"training"`
	Validation model.Sampling `json:"validation" yaml:"validation"`
	Tolerance  float64        `json:"tolerance" yaml:"tolerance"`
	Seed       int            `json:"seed" yaml:"seed"`
	MaxBases   int            `json:"max_bases" yaml:"max_bases"`
	// Interpolate enables the empirical interpolation nodes, real families only.
	Interpolate bool `json:"interpolate" yaml:"interpolate"`
}

func (c Config) dim() (int, error) {
	if c.Family.IsComplex() {
		f, err := model.NewComplex(c.Family, c.Base)
		if err != nil {
			return 0, err
		}
		return f.Dim(), nil
	}
	f, err := model.NewReal(c.Family)
	if err != nil {
		return 0, err
	}
	return f.Dim(), nil
}

// Validate checks the config fields against each other.
func (c Config) Validate() error {
	if c.Name == "" {
		return fmt.Errorf("missing name: %w", InvalidConfigErr)
	}
	dim, err := c.dim()
	if err != nil {
		return fmt.Errorf("could not create family for '%s': %s: %w", c.Name, err.Error(), InvalidConfigErr)
	}
	if err := c.Grid.Validate(); err != nil {
		return fmt.Errorf("%s: %w", err.Error(), InvalidConfigErr)
	}
	if c.Family.IsComplex() {
		if c.Grid.Rule == model.CGLRule {
			return fmt.Errorf("spectral families need a uniform grid: %w", InvalidConfigErr)
		}
		if c.Interpolate {
			return fmt.Errorf("interpolation is only supported for real families: %w", InvalidConfigErr)
		}
	}
	if err := c.Training.Validate(dim); err != nil {
		return fmt.Errorf("training: %s: %w", err.Error(), InvalidConfigErr)
	}
	if c.Training.Size < 2 {
		return fmt.Errorf("training set of %d: %w", c.Training.Size, InvalidConfigErr)
	}
	if err := c.Validation.Validate(dim); err != nil {
		return fmt.Errorf("validation: %s: %w", err.Error(), InvalidConfigErr)
	}
	if !(c.Tolerance > 0) || math.IsInf(c.Tolerance, 1) {
		return fmt.Errorf("tolerance must be positive, got %v: %w", c.Tolerance, InvalidConfigErr)
	}
	if c.Seed < 0 || c.Seed >= c.Training.Size {
		return fmt.Errorf("seed %d outside training set of %d: %w", c.Seed, c.Training.Size, InvalidConfigErr)
	}
	if c.MaxBases < 0 {
		return fmt.Errorf("negative basis cap %d: %w", c.MaxBases, InvalidConfigErr)
	}
	return nil
}
