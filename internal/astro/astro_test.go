package astro

import (
	"errors"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConversions(t *testing.T) {

	type test struct {
		m1, m2 float64
		chirp  float64
		nu     float64
		delta  float64
	}

	tests := map[string]test{
		"equal": {
			m1: 1.4, m2: 1.4,
			chirp: 1.2187707886145736,
			nu:    0.25,
			delta: 0,
		},
		"unequal": {
			m1: 10, m2: 5,
			chirp: 6.0836434189320565,
			nu:    2. / 9,
			delta: 1. / 3,
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			assert.InDelta(t, tt.chirp, ChirpMass(tt.m1, tt.m2), 1e-9)
			assert.InDelta(t, tt.nu, SymmetricMassRatio(tt.m1, tt.m2), 1e-12)
			assert.InDelta(t, tt.delta, Delta(tt.m1, tt.m2), 1e-12)

			q := tt.m1 / tt.m2
			assert.InDelta(t, tt.nu, MassRatioToNu(q), 1e-12)
			assert.InDelta(t, tt.nu, DeltaToNu(tt.delta), 1e-12)

			back, err := NuToMassRatio(tt.nu)
			require.NoError(t, err)
			assert.InDelta(t, q, back, 1e-6)

			d, err := NuToDelta(tt.nu)
			require.NoError(t, err)
			assert.InDelta(t, tt.delta, d, 1e-6)

			total := tt.m1 + tt.m2
			m1, m2 := TotalMassRatioToComponents(total, q)
			assert.InDelta(t, tt.m1, m1, 1e-12)
			assert.InDelta(t, tt.m2, m2, 1e-12)

			assert.InDelta(t, tt.chirp, ChirpMassFromTotal(total, q), 1e-9)
			assert.InDelta(t, total, TotalFromChirpMass(tt.chirp, q), 1e-9)

			m1, m2, err = ChirpMassNuToComponents(tt.chirp, tt.nu)
			require.NoError(t, err)
			assert.InDelta(t, tt.m1, m1, 1e-5)
			assert.InDelta(t, tt.m2, m2, 1e-5)
		})
	}
}

func TestSpins(t *testing.T) {
	assert.Equal(t, 0.5, SymmetricSpin(0.7, 0.3))
	assert.InDelta(t, 0.2, AntiSymmetricSpin(0.7, 0.3), 1e-15)
}

func TestISCOFrequency(t *testing.T) {
	assert.InDelta(t, 4.92686088e-6, SolarMassToSeconds(1), 1e-18)
	// ~4.4 kHz for a solar mass, scaling inversely with the total mass
	assert.InDelta(t, 4396, ISCOFrequency(1), 0.5)
	assert.InDelta(t, ISCOFrequency(1)/10, ISCOFrequency(10), 1e-9)
}

func TestInvalid(t *testing.T) {

	type test struct {
		nu float64
	}

	tests := map[string]test{
		"negative": {nu: -0.1},
		"zero":     {nu: 0},
		"above":    {nu: 0.3},
		"nan":      {nu: math.NaN()},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			_, err := NuToMassRatio(tt.nu)
			assert.True(t, errors.Is(err, InvalidParameterErr))
			_, err = NuToDelta(tt.nu)
			assert.True(t, errors.Is(err, InvalidParameterErr))
			_, _, err = ChirpMassNuToComponents(1, tt.nu)
			assert.True(t, errors.Is(err, InvalidParameterErr))
		})
	}
}

func TestNewBinary(t *testing.T) {
	b, err := NewBinary(5, 10, 0.1, 0.9)
	require.NoError(t, err)
	assert.Equal(t, 10., b.M1)
	assert.Equal(t, 5., b.M2)
	assert.Equal(t, 0.9, b.X1)
	assert.Equal(t, 2., b.MassRatio)
	assert.Equal(t, 15., b.Total)
	assert.InDelta(t, 0.5, b.SymmetricSpin, 1e-15)
	assert.InDelta(t, 0.4, b.AntiSymmetricSpin, 1e-15)

	_, err = NewBinary(0, 1, 0, 0)
	assert.True(t, errors.Is(err, InvalidParameterErr))
	_, err = NewBinary(1, 1, 1.5, 0)
	assert.True(t, errors.Is(err, InvalidParameterErr))
}
