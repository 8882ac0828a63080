// Package model provides the signal families and parameter samplers
// that generate training and validation sets for the reduced basis.
package model

import (
	"errors"
	"fmt"
	"math"
	"sort"

	coin_math "github.com/drakos74/roq/internal/math"
)

// UnknownFamilyErr is returned for a family kind that is not registered.
var UnknownFamilyErr = errors.New("unknown family")

// Kind defines the kind of signal family.
type Kind string

const (
	// NoKind is an undefined family.
	NoKind Kind = ""
	// LineKind is the two-parameter line m*x + c.
	LineKind Kind = "line"
	// SinusoidKind is a sinusoid with spin-down.
	SinusoidKind Kind = "sinusoid"
	// ToneKind is a unit sinusoid of a single frequency.
	ToneKind Kind = "tone"
	// SpectralKind is the one-sided spectrum of a real family.
	SpectralKind Kind = "spectral"
)

// Kinds contains all the known family kinds.
var Kinds = map[string]Kind{
	"line":     LineKind,
	"sinusoid": SinusoidKind,
	"tone":     ToneKind,
	"spectral": SpectralKind,
}

// KnownKinds returns the names of the known family kinds.
func KnownKinds() []string {
	kk := make([]string, 0, len(Kinds))
	for k := range Kinds {
		kk = append(kk, k)
	}
	sort.Strings(kk)
	return kk
}

// IsComplex reports if the family produces complex samples.
func (k Kind) IsComplex() bool {
	return k == SpectralKind
}

// Family is a parametric family of sampled functions.
// Evaluate must return the same number of samples for every parameter draw on the same abscissas.
type Family[T coin_math.Scalar] interface {
	Name() string
	// Dim is the number of parameters the family expects.
	Dim() int
	Evaluate(params, x []float64) []T
}

// NewReal creates the real valued family of the given kind.
func NewReal(k Kind) (Family[float64], error) {
	switch k {
	case LineKind:
		return Line{}, nil
	case SinusoidKind:
		return Sinusoid{}, nil
	case ToneKind:
		return Tone{}, nil
	}
	return nil, fmt.Errorf("no real family for '%s': %w", k, UnknownFamilyErr)
}

// NewComplex creates the complex valued family of the given kind,
// built on top of the given real base family.
func NewComplex(k Kind, base Kind) (Family[complex128], error) {
	if k != SpectralKind {
		return nil, fmt.Errorf("no complex family for '%s': %w", k, UnknownFamilyErr)
	}
	f, err := NewReal(base)
	if err != nil {
		return nil, fmt.Errorf("could not create spectral base: %w", err)
	}
	return Spectral{Base: f}, nil
}

// Line is y = m*x + c with params [m, c].
type Line struct{}

func (l Line) Name() string { return string(LineKind) }

func (l Line) Dim() int { return 2 }

func (l Line) Evaluate(params, x []float64) []float64 {
	m, c := params[0], params[1]
	y := make([]float64, len(x))
	for i, v := range x {
		y[i] = m*v + c
	}
	return y
}

// Sinusoid is A*sin(2pi(f0*t + f1*t^2/2) + phi0) with params [A, f0, f1, phi0].
type Sinusoid struct{}

func (s Sinusoid) Name() string { return string(SinusoidKind) }

func (s Sinusoid) Dim() int { return 4 }

func (s Sinusoid) Evaluate(params, t []float64) []float64 {
	a, f0, f1, phi0 := params[0], params[1], params[2], params[3]
	y := make([]float64, len(t))
	for i, v := range t {
		y[i] = a * math.Sin(2*math.Pi*(f0*v+0.5*f1*v*v)+phi0)
	}
	return y
}

// Tone is sin(2pi*f*t) with params [f].
type Tone struct{}

func (t Tone) Name() string { return string(ToneKind) }

func (t Tone) Dim() int { return 1 }

func (t Tone) Evaluate(params, x []float64) []float64 {
	return coin_math.Sine(1, params[0], 0, x)
}

// Spectral evaluates the base family and returns its one-sided discrete fourier transform.
// For M abscissas it produces M/2+1 frequency bins.
type Spectral struct {
	Base Family[float64]
}

func (s Spectral) Name() string { return fmt.Sprintf("%s-%s", SpectralKind, s.Base.Name()) }

func (s Spectral) Dim() int { return s.Base.Dim() }

func (s Spectral) Evaluate(params, x []float64) []complex128 {
	return coin_math.OneSided(s.Base.Evaluate(params, x))
}

// Frequencies returns the frequency of every bin for uniformly spaced abscissas
// together with the frequency resolution.
func (s Spectral) Frequencies(x []float64) ([]float64, float64, error) {
	if len(x) < 2 {
		return nil, 0, fmt.Errorf("need at least 2 samples for a spectrum, got %d: %w", len(x), coin_math.DimensionMismatchErr)
	}
	df := 1 / (float64(len(x)) * (x[1] - x[0]))
	return coin_math.Series(df, len(x)/2+1), df, nil
}
