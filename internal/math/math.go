package math

import (
	"math"
	"strconv"
)

// Format formats a float based on the given precision
func Format(f float64) string {
	return strconv.FormatFloat(f, 'f', 2, 64)
}

// Sci formats a float in scientific notation, suitable for projection errors.
func Sci(f float64) string {
	return strconv.FormatFloat(f, 'e', 3, 64)
}

// O10 returns the order of the value on a decimal basis
// NOTE : this does not differentiate between values bigger or smaller than 1
func O10(f float64) int {
	log10 := math.Log10(math.Abs(f))
	return int(math.Abs(log10))
}

// Log10 returns the decimal logarithm of every value.
// Zero values map to -Inf, as math.Log10 does.
func Log10(ff []float64) []float64 {
	ll := make([]float64, len(ff))
	for i, f := range ff {
		ll[i] = math.Log10(math.Abs(f))
	}
	return ll
}
