package model

import (
	"errors"
	"fmt"

	coin_math "github.com/drakos74/roq/internal/math"
	"github.com/drakos74/roq/internal/quadrature"
)

// InvalidGridErr is returned for a grid that cannot be sampled.
var InvalidGridErr = errors.New("invalid grid")

// Rule defines how the grid abscissas and quadrature weights are placed.
type Rule string

const (
	// UniformRule spaces the samples evenly, the weight being the spacing.
	UniformRule Rule = "uniform"
	// CGLRule uses the Chebyshev-Gauss-Lobatto nodes and weights.
	CGLRule Rule = "cgl"
)

// Grid defines the shared abscissas of a family.
type Grid struct {
	Start   float64 `json:"start" yaml:"start"`
	End     float64 `json:"end" yaml:"end"`
	Samples int     `json:"samples" yaml:"samples"`
	Rule    Rule    `json:"rule" yaml:"rule"`
}

// NewGrid creates a uniform grid.
func NewGrid(start, end float64, samples int) Grid {
	return Grid{
		Start:   start,
		End:     end,
		Samples: samples,
		Rule:    UniformRule,
	}
}

// WithRule sets the quadrature rule of the grid.
func (g Grid) WithRule(rule Rule) Grid {
	g.Rule = rule
	return g
}

// Validate checks that the grid can be sampled.
func (g Grid) Validate() error {
	if g.Samples < 2 {
		return fmt.Errorf("need at least 2 samples, got %d: %w", g.Samples, InvalidGridErr)
	}
	if !(g.End > g.Start) {
		return fmt.Errorf("empty interval [%v, %v]: %w", g.Start, g.End, InvalidGridErr)
	}
	switch g.Rule {
	case UniformRule, CGLRule, "":
		return nil
	}
	return fmt.Errorf("unknown rule '%s': %w", g.Rule, InvalidGridErr)
}

// Build returns the abscissas and the quadrature weights of the grid.
// An empty rule means uniform.
func (g Grid) Build() ([]float64, quadrature.Weights, error) {
	if err := g.Validate(); err != nil {
		return nil, quadrature.Weights{}, err
	}
	if g.Rule == CGLRule {
		x, w, err := quadrature.ChebyshevGaussLobatto(g.Start, g.End, g.Samples)
		if err != nil {
			return nil, quadrature.Weights{}, fmt.Errorf("could not build lobatto grid: %w", err)
		}
		return x, w, nil
	}
	x := coin_math.Linspace(g.Start, g.End, g.Samples)
	return x, quadrature.Uniform(x[1] - x[0]), nil
}
