package model

import (
	"errors"
	"fmt"
	"math/rand"

	coin_math "github.com/drakos74/roq/internal/math"
)

// InvalidSamplingErr is returned for a sampling policy that cannot produce parameters.
var InvalidSamplingErr = errors.New("invalid sampling")

// Range is the closed interval a parameter is drawn from.
// A range with Min == Max keeps the parameter fixed.
type Range struct {
	Min float64 `json:"min" yaml:"min"`
	Max float64 `json:"max" yaml:"max"`
}

// Fixed creates a range for a constant parameter.
func Fixed(v float64) Range {
	return Range{Min: v, Max: v}
}

// Sampler produces parameter draws.
type Sampler interface {
	Sample(n int) [][]float64
}

// Uniform draws every parameter independently and uniformly from its range.
type Uniform struct {
	rnd    *rand.Rand
	ranges []Range
}

// NewUniform creates a uniform sampler with its own source for the given seed.
func NewUniform(seed int64, ranges ...Range) *Uniform {
	return &Uniform{
		rnd:    rand.New(rand.NewSource(seed)),
		ranges: ranges,
	}
}

// Sample returns n draws.
func (u *Uniform) Sample(n int) [][]float64 {
	pp := make([][]float64, n)
	for i := range pp {
		p := make([]float64, len(u.ranges))
		for j, r := range u.ranges {
			p[j] = r.Min + u.rnd.Float64()*(r.Max-r.Min)
		}
		pp[i] = p
	}
	return pp
}

// Sweep moves all parameters linearly and jointly from their min to their max.
type Sweep struct {
	ranges []Range
}

// NewSweep creates a deterministic sweep sampler.
func NewSweep(ranges ...Range) *Sweep {
	return &Sweep{ranges: ranges}
}

// Sample returns n draws, the first at the range minima and the last at the maxima.
func (s *Sweep) Sample(n int) [][]float64 {
	pp := make([][]float64, n)
	for i := range pp {
		pp[i] = make([]float64, len(s.ranges))
	}
	for j, r := range s.ranges {
		for i, v := range coin_math.Linspace(r.Min, r.Max, n) {
			pp[i][j] = v
		}
	}
	return pp
}

// Policy defines the sampler used for a set.
type Policy string

const (
	// UniformPolicy draws random parameters.
	UniformPolicy Policy = "uniform"
	// SweepPolicy sweeps the parameters linearly.
	SweepPolicy Policy = "sweep"
)

// Sampling describes how the parameters of a training or validation set are produced.
type Sampling struct {
	Policy Policy  `json:"policy" yaml:"policy"`
	Size   int     `json:"size" yaml:"size"`
	Seed   int64   `json:"seed" yaml:"seed"`
	Ranges []Range `json:"ranges" yaml:"ranges"`
}

// Validate checks the sampling against the number of parameters of a family.
func (s Sampling) Validate(dim int) error {
	if s.Size <= 0 {
		return fmt.Errorf("non-positive size %d: %w", s.Size, InvalidSamplingErr)
	}
	if len(s.Ranges) != dim {
		return fmt.Errorf("%d ranges for %d parameters: %w", len(s.Ranges), dim, InvalidSamplingErr)
	}
	for i, r := range s.Ranges {
		if r.Max < r.Min {
			return fmt.Errorf("range %d is inverted [%v, %v]: %w", i, r.Min, r.Max, InvalidSamplingErr)
		}
	}
	switch s.Policy {
	case UniformPolicy, SweepPolicy, "":
		return nil
	}
	return fmt.Errorf("unknown policy '%s': %w", s.Policy, InvalidSamplingErr)
}

// Sampler creates the sampler for the policy, uniform being the default.
func (s Sampling) Sampler() Sampler {
	if s.Policy == SweepPolicy {
		return NewSweep(s.Ranges...)
	}
	return NewUniform(s.Seed, s.Ranges...)
}

// Draw returns the parameters of the set.
func (s Sampling) Draw() [][]float64 {
	return s.Sampler().Sample(s.Size)
}
