// Package scalar defines the numeric constraints shared by every lvmath
// value type, plus the small set of scalar helpers (square root, trig,
// degree/radian conversion, tolerance comparison) the vector, quaternion,
// matrix and box packages are written against.
//
// ✨ Key features:
//   - Number: every integer and floating-point kind (int/uint/float/double
//     variants of the classic per-type math libraries collapse into one
//     generic implementation).
//   - Float: floating-point only, for operations that need trig or sqrt.
//   - float32 values are routed to github.com/chewxy/math32 so that
//     single-precision code never round-trips through float64 trig.
//
// ⚙️ Usage:
//
//	r := scalar.DegToRad(float32(90)) // π/2 as float32
//	l := scalar.Sqrt(25)              // 5 (int in, int out)
package scalar
