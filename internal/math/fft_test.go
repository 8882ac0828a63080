package math

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFFT(t *testing.T) {

	n := 64
	x := Series(1, n)
	// 5 cycles over the window
	xx := Sine(1, 5./float64(n), 0, x)

	spectrum := FFT(xx)

	assert.Equal(t, n/2+1, len(spectrum.Values))
	assert.Equal(t, 5, spectrum.Dominant().Frequency)
	assert.InDelta(t, float64(n)/2, spectrum.Dominant().Amplitude, 1e-9)
}

func TestOneSided(t *testing.T) {
	cc := OneSided([]float64{1, 1, 1, 1})
	assert.Equal(t, 3, len(cc))
	assert.InDelta(t, 4, real(cc[0]), 1e-12)
	assert.InDelta(t, 0, real(cc[1]), 1e-12)
}
