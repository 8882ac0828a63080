package rb

import (
	"errors"
	"fmt"
	"math"
)

var (
	InsufficientTrainingDataErr = errors.New("insufficient training data")
	DegenerateBasisVectorErr    = errors.New("degenerate basis vector")
	ToleranceNotReachedErr      = errors.New("tolerance not reached")
	InvalidConfigErr            = errors.New("invalid config")
)

// Config defines the greedy construction parameters.
// Tolerance is the maximum projection error allowed over the training set.
// Seed is the training set index of the first basis vector.
// MaxBases caps the size of the basis, 0 meaning the size of the training set.
type Config struct {
	Tolerance float64 `json:"tolerance" yaml:"tolerance"`
	Seed      int     `json:"seed" yaml:"seed"`
	MaxBases  int     `json:"max_bases" yaml:"max_bases"`
}

// NewConfig creates a config seeded with the first training vector.
func NewConfig(tolerance float64) Config {
	return Config{Tolerance: tolerance}
}

// WithSeed sets the seed index.
func (c Config) WithSeed(seed int) Config {
	c.Seed = seed
	return c
}

// WithMaxBases caps the basis size.
func (c Config) WithMaxBases(max int) Config {
	c.MaxBases = max
	return c
}

func (c Config) validate(n int) error {
	if !(c.Tolerance > 0) || math.IsInf(c.Tolerance, 1) {
		return fmt.Errorf("tolerance must be positive and finite, got %v: %w", c.Tolerance, InvalidConfigErr)
	}
	if c.MaxBases < 0 {
		return fmt.Errorf("negative basis cap %d: %w", c.MaxBases, InvalidConfigErr)
	}
	if c.Seed < 0 || c.Seed >= n {
		return fmt.Errorf("seed %d outside training set of %d: %w", c.Seed, n, InvalidConfigErr)
	}
	return nil
}

func (c Config) limit(n int) int {
	if c.MaxBases == 0 || c.MaxBases > n {
		return n
	}
	return c.MaxBases
}
