// SPDX-License-Identifier: MIT

package scalar

import (
	"math"

	"github.com/chewxy/math32"
)

// DTOR converts degrees to radians; RTOD is its inverse.
const (
	DTOR = math.Pi / 180.0
	RTOD = 180.0 / math.Pi
)

// DefaultEpsilon is the tolerance used by ApproxEqual helpers across lvmath
// when the caller does not supply one.
const DefaultEpsilon = 1e-6

// Sqrt returns the square root of x in x's own type.
// For integer types the result is truncated toward zero.
func Sqrt[T Number](x T) T {
	if f, ok := any(x).(float32); ok {
		return T(math32.Sqrt(f))
	}

	return T(math.Sqrt(float64(x)))
}

// Sin returns the sine of the radian argument x.
func Sin[T Float](x T) T {
	if f, ok := any(x).(float32); ok {
		return T(math32.Sin(f))
	}

	return T(math.Sin(float64(x)))
}

// Cos returns the cosine of the radian argument x.
func Cos[T Float](x T) T {
	if f, ok := any(x).(float32); ok {
		return T(math32.Cos(f))
	}

	return T(math.Cos(float64(x)))
}

// SinCos returns Sin(x), Cos(x).
func SinCos[T Float](x T) (T, T) {
	return Sin(x), Cos(x)
}

// Tan returns the tangent of the radian argument x.
func Tan[T Float](x T) T {
	if f, ok := any(x).(float32); ok {
		return T(math32.Tan(f))
	}

	return T(math.Tan(float64(x)))
}

// Acos returns the arccosine, in radians, of x.
// Inputs outside [-1, 1] yield NaN.
func Acos[T Float](x T) T {
	if f, ok := any(x).(float32); ok {
		return T(math32.Acos(f))
	}

	return T(math.Acos(float64(x)))
}

// Abs returns |x|. For unsigned types it is the identity.
func Abs[T Number](x T) T {
	if x < 0 {
		return -x
	}

	return x
}

// Clamp limits v to the closed range [lo, hi].
func Clamp[T Number](v, lo, hi T) T {
	return min(max(v, lo), hi)
}

// Lerp returns a + t*(b-a). t is not clamped.
func Lerp[T Float](a, b, t T) T {
	return a + t*(b-a)
}

// DegToRad converts an angle in degrees to radians.
func DegToRad[T Float](deg T) T { return deg * T(DTOR) }

// RadToDeg converts an angle in radians to degrees.
func RadToDeg[T Float](rad T) T { return rad * T(RTOD) }

// ApproxEqual reports whether |a-b| <= eps, evaluated in float64 so that
// unsigned operands never wrap.
func ApproxEqual[T Number](a, b T, eps float64) bool {
	return math.Abs(float64(a)-float64(b)) <= eps
}

// Inf returns +Inf (sign >= 0) or -Inf (sign < 0) in the requested float type.
func Inf[T Float](sign int) T {
	return T(math.Inf(sign))
}
