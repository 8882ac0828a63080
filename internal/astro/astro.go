// Package astro converts between the mass and spin parameterisations of compact binaries.
// Masses are in solar masses unless stated otherwise, mass ratios are q = m1/m2 >= 1.
package astro

import (
	"errors"
	"fmt"
	"math"
)

// SolarMassSeconds is G*Msun/c^3 in seconds.
const SolarMassSeconds = 4.92686088e-6

// InvalidParameterErr is returned for parameters outside their physical range.
var InvalidParameterErr = errors.New("invalid parameter")

// SolarMassToSeconds converts a mass to its light crossing time.
func SolarMassToSeconds(m float64) float64 {
	return m * SolarMassSeconds
}

// ChirpMass returns (m1*m2)^(3/5) / (m1+m2)^(1/5).
func ChirpMass(m1, m2 float64) float64 {
	return math.Pow(m1*m2, 3./5.) / math.Pow(m1+m2, 1./5.)
}

// SymmetricMassRatio returns m1*m2 / (m1+m2)^2.
func SymmetricMassRatio(m1, m2 float64) float64 {
	return m1 * m2 / ((m1 + m2) * (m1 + m2))
}

// MassRatioToNu converts a mass ratio to the symmetric mass ratio.
func MassRatioToNu(q float64) float64 {
	return q / ((1 + q) * (1 + q))
}

// NuToMassRatio converts a symmetric mass ratio in (0, 1/4] back to the mass ratio.
func NuToMassRatio(nu float64) (float64, error) {
	if !(nu > 0) || nu > 0.25 {
		return 0, fmt.Errorf("symmetric mass ratio %v outside (0, 0.25]: %w", nu, InvalidParameterErr)
	}
	return (1 + math.Sqrt(1-4*nu) - 2*nu) / (2 * nu), nil
}

// TotalMassRatioToComponents splits a total mass into its components for the mass ratio.
func TotalMassRatioToComponents(m, q float64) (m1, m2 float64) {
	m2 = m / (1 + q)
	m1 = m - m2
	return m1, m2
}

// ChirpMassFromTotal returns the chirp mass for the total mass and mass ratio.
func ChirpMassFromTotal(m, q float64) float64 {
	return m * math.Pow(MassRatioToNu(q), 3./5.)
}

// TotalFromChirpMass returns the total mass for the chirp mass and mass ratio.
func TotalFromChirpMass(mc, q float64) float64 {
	return mc * math.Pow(MassRatioToNu(q), -3./5.)
}

// ChirpMassNuToComponents returns the component masses for the chirp mass and symmetric mass ratio.
func ChirpMassNuToComponents(mc, nu float64) (m1, m2 float64, err error) {
	q, err := NuToMassRatio(nu)
	if err != nil {
		return 0, 0, err
	}
	m1, m2 = TotalMassRatioToComponents(TotalFromChirpMass(mc, q), q)
	return m1, m2, nil
}

// Delta returns the relative mass difference (m1-m2)/(m1+m2).
func Delta(m1, m2 float64) float64 {
	return (m1 - m2) / (m1 + m2)
}

// DeltaToNu converts the relative mass difference to the symmetric mass ratio.
func DeltaToNu(delta float64) float64 {
	return (1 - delta*delta) / 4
}

// NuToDelta converts the symmetric mass ratio to the relative mass difference.
func NuToDelta(nu float64) (float64, error) {
	if !(nu > 0) || nu > 0.25 {
		return 0, fmt.Errorf("symmetric mass ratio %v outside (0, 0.25]: %w", nu, InvalidParameterErr)
	}
	return math.Sqrt(1 - 4*nu), nil
}

// SymmetricSpin returns (x1+x2)/2 for the dimensionless spins.
func SymmetricSpin(x1, x2 float64) float64 {
	return (x1 + x2) / 2
}

// AntiSymmetricSpin returns (x1-x2)/2 for the dimensionless spins.
func AntiSymmetricSpin(x1, x2 float64) float64 {
	return (x1 - x2) / 2
}

// ISCOFrequency returns the gravitational wave frequency in Hz at the innermost stable circular orbit.
func ISCOFrequency(total float64) float64 {
	return math.Pow(6, -1.5) / (math.Pi * SolarMassToSeconds(total))
}

// Binary collects the derived parameters of a binary.
type Binary struct {
	M1                float64 `json:"m1"`
	M2                float64 `json:"m2"`
	X1                float64 `json:"x1"`
	X2                float64 `json:"x2"`
	Total             float64 `json:"total"`
	MassRatio         float64 `json:"q"`
	Chirp             float64 `json:"chirp_mass"`
	Nu                float64 `json:"nu"`
	Delta             float64 `json:"delta"`
	SymmetricSpin     float64 `json:"xs"`
	AntiSymmetricSpin float64 `json:"xa"`
	ISCO              float64 `json:"f_isco"`
}

// NewBinary derives all the parameters from the component masses and spins.
// The heavier body is taken as the primary.
func NewBinary(m1, m2, x1, x2 float64) (Binary, error) {
	if !(m1 > 0) || !(m2 > 0) {
		return Binary{}, fmt.Errorf("masses must be positive, got %v and %v: %w", m1, m2, InvalidParameterErr)
	}
	if math.Abs(x1) > 1 || math.Abs(x2) > 1 {
		return Binary{}, fmt.Errorf("spins must be within [-1, 1], got %v and %v: %w", x1, x2, InvalidParameterErr)
	}
	if m2 > m1 {
		m1, m2 = m2, m1
		x1, x2 = x2, x1
	}
	total := m1 + m2
	return Binary{
		M1:                m1,
		M2:                m2,
		X1:                x1,
		X2:                x2,
		Total:             total,
		MassRatio:         m1 / m2,
		Chirp:             ChirpMass(m1, m2),
		Nu:                SymmetricMassRatio(m1, m2),
		Delta:             Delta(m1, m2),
		SymmetricSpin:     SymmetricSpin(x1, x2),
		AntiSymmetricSpin: AntiSymmetricSpin(x1, x2),
		ISCO:              ISCOFrequency(total),
	}, nil
}
