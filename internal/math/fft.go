package math

import (
	"math/cmplx"
	"sort"

	"github.com/mjibson/go-dsp/fft"
)

// OneSided returns the non-negative frequency bins of the discrete fourier transform of xx.
// For n samples the result holds n/2+1 bins.
func OneSided(xx []float64) []complex128 {
	cc := fft.FFTReal(xx)
	return cc[:len(cc)/2+1]
}

// FFT returns the one-sided amplitude spectrum of xx, ordered by decreasing amplitude.
func FFT(xx []float64) *Spectrum {
	ss := newSpectrum()
	for i, n := range OneSided(xx) {
		ss.add(RNum{
			Amplitude: cmplx.Abs(n),
			Frequency: i,
			Phase:     cmplx.Phase(n),
		})
	}

	sort.Sort(sort.Reverse(spectrums(ss.Values)))

	return ss
}

// Spectrum is a collection of spectra
type Spectrum struct {
	Values    []RNum
	Amplitude float64
}

func newSpectrum() *Spectrum {
	return &Spectrum{
		Values: make([]RNum, 0),
	}
}

func (s *Spectrum) add(r RNum) {
	s.Values = append(s.Values, r)
	s.Amplitude += r.Amplitude
}

// Dominant returns the bin carrying the largest amplitude.
func (s *Spectrum) Dominant() RNum {
	if len(s.Values) == 0 {
		return RNum{}
	}
	return s.Values[0]
}

// RNum defines the attributes of a single frequency bin.
type RNum struct {
	Amplitude float64
	Frequency int
	Phase     float64
}

type spectrums []RNum

func (s spectrums) Len() int           { return len(s) }
func (s spectrums) Less(i, j int) bool { return s[i].Amplitude < s[j].Amplitude }
func (s spectrums) Swap(i, j int)      { s[i], s[j] = s[j], s[i] }
