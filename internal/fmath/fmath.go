// Package fmath provides scalar math kernels generic over the supported
// float widths, dispatching to math32 for float32 and math for float64.
package fmath

import (
	"math"

	"github.com/chewxy/math32"
)

// Float is a constraint for the scalar types the engine differentiates.
// Plain (non-tilde) terms keep runtime type switches on values exact.
type Float interface {
	float32 | float64
}

// Exp returns e**x.
func Exp[T Float](x T) T {
	switch v := any(x).(type) {
	case float32:
		return T(math32.Exp(v))
	default:
		return T(math.Exp(any(x).(float64)))
	}
}

// Log returns the natural logarithm of x.
func Log[T Float](x T) T {
	switch v := any(x).(type) {
	case float32:
		return T(math32.Log(v))
	default:
		return T(math.Log(any(x).(float64)))
	}
}

// Sqrt returns the square root of x.
func Sqrt[T Float](x T) T {
	switch v := any(x).(type) {
	case float32:
		return T(math32.Sqrt(v))
	default:
		return T(math.Sqrt(any(x).(float64)))
	}
}

// Sin returns the sine of x (in radians).
func Sin[T Float](x T) T {
	switch v := any(x).(type) {
	case float32:
		return T(math32.Sin(v))
	default:
		return T(math.Sin(any(x).(float64)))
	}
}

// Cos returns the cosine of x (in radians).
func Cos[T Float](x T) T {
	switch v := any(x).(type) {
	case float32:
		return T(math32.Cos(v))
	default:
		return T(math.Cos(any(x).(float64)))
	}
}

// Tanh returns the hyperbolic tangent of x.
func Tanh[T Float](x T) T {
	switch v := any(x).(type) {
	case float32:
		return T(math32.Tanh(v))
	default:
		return T(math.Tanh(any(x).(float64)))
	}
}

// Abs returns the absolute value of x.
func Abs[T Float](x T) T {
	if x < 0 {
		return -x
	}
	return x
}

// PowInt returns x**n for a non-negative integer exponent using binary
// exponentiation. PowInt(x, 0) is 1 for every x, including 0.
func PowInt[T Float](x T, n int) T {
	result := T(1)
	for n > 0 {
		if n&1 == 1 {
			result *= x
		}
		x *= x
		n >>= 1
	}
	return result
}
