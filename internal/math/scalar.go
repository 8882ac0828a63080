package math

import (
	"errors"
	"math"
	"math/cmplx"
)

// DimensionMismatchErr is returned when two operands that must share a length do not.
var DimensionMismatchErr = errors.New("dimension mismatch")

// Scalar is the element type of sampled functions.
// Real valued time-domain models use float64, frequency-domain models use complex128.
type Scalar interface {
	float64 | complex128
}

// Conj returns the complex conjugate of x. Real values are returned as is.
func Conj[T Scalar](x T) T {
	if c, ok := any(x).(complex128); ok {
		return any(cmplx.Conj(c)).(T)
	}
	return x
}

// Abs returns the absolute value (modulus) of x.
func Abs[T Scalar](x T) float64 {
	switch v := any(x).(type) {
	case complex128:
		return cmplx.Abs(v)
	case float64:
		return math.Abs(v)
	}
	return 0
}

// FromReal lifts a real number into the scalar type.
func FromReal[T Scalar](f float64) T {
	var zero T
	if _, ok := any(zero).(complex128); ok {
		return any(complex(f, 0)).(T)
	}
	return any(f).(T)
}

// IsFinite checks that x carries no NaN or Inf component.
func IsFinite[T Scalar](x T) bool {
	switch v := any(x).(type) {
	case complex128:
		return !cmplx.IsNaN(v) && !cmplx.IsInf(v)
	case float64:
		return !math.IsNaN(v) && !math.IsInf(v, 0)
	}
	return false
}

// Sub returns a - b element-wise.
func Sub[T Scalar](a, b []T) ([]T, error) {
	if len(a) != len(b) {
		return nil, DimensionMismatchErr
	}
	r := make([]T, len(a))
	for i := range a {
		r[i] = a[i] - b[i]
	}
	return r, nil
}

// AddScaled computes dst += alpha * x in place.
func AddScaled[T Scalar](dst []T, alpha T, x []T) error {
	if len(dst) != len(x) {
		return DimensionMismatchErr
	}
	for i := range x {
		dst[i] += alpha * x[i]
	}
	return nil
}

// Scale returns x / d as a new slice.
func Scale[T Scalar](x []T, d float64) []T {
	s := FromReal[T](1 / d)
	r := make([]T, len(x))
	for i := range x {
		r[i] = x[i] * s
	}
	return r
}
