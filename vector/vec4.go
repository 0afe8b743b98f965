// SPDX-License-Identifier: MIT

package vector

import (
	"fmt"

	"github.com/katalvlaran/lvmath/scalar"
)

// Vec4 is a 4-component vector, typically a homogeneous point or direction.
type Vec4[T scalar.Number] struct {
	X, Y, Z, W T
}

// V4 creates a Vec4 from its components.
func V4[T scalar.Number](x, y, z, w T) Vec4[T] {
	return Vec4[T]{X: x, Y: y, Z: z, W: w}
}

// FromSlice4 builds a Vec4 from the first four elements of s.
// Returns ErrMissingData if s is nil or shorter than 4.
func FromSlice4[T scalar.Number](s []T) (Vec4[T], error) {
	if err := checkSlice("FromSlice4", s, 4); err != nil {
		return Vec4[T]{}, err
	}

	return Vec4[T]{X: s[0], Y: s[1], Z: s[2], W: s[3]}, nil
}

// Zero4 returns (0, 0, 0, 0).
func Zero4[T scalar.Number]() Vec4[T] { return Vec4[T]{} }

// One4 returns (1, 1, 1, 1).
func One4[T scalar.Number]() Vec4[T] { return Vec4[T]{1, 1, 1, 1} }

// UnitX4 returns (1, 0, 0, 0).
func UnitX4[T scalar.Number]() Vec4[T] { return Vec4[T]{X: 1} }

// UnitY4 returns (0, 1, 0, 0).
func UnitY4[T scalar.Number]() Vec4[T] { return Vec4[T]{Y: 1} }

// UnitZ4 returns (0, 0, 1, 0).
func UnitZ4[T scalar.Number]() Vec4[T] { return Vec4[T]{Z: 1} }

// UnitW4 returns (0, 0, 0, 1).
func UnitW4[T scalar.Number]() Vec4[T] { return Vec4[T]{W: 1} }

// Add returns v + o.
func (v Vec4[T]) Add(o Vec4[T]) Vec4[T] {
	return Vec4[T]{v.X + o.X, v.Y + o.Y, v.Z + o.Z, v.W + o.W}
}

// Sub returns v - o.
func (v Vec4[T]) Sub(o Vec4[T]) Vec4[T] {
	return Vec4[T]{v.X - o.X, v.Y - o.Y, v.Z - o.Z, v.W - o.W}
}

// Neg returns -v.
func (v Vec4[T]) Neg() Vec4[T] { return Vec4[T]{-v.X, -v.Y, -v.Z, -v.W} }

// Scale returns v * s.
func (v Vec4[T]) Scale(s T) Vec4[T] {
	return Vec4[T]{v.X * s, v.Y * s, v.Z * s, v.W * s}
}

// Div returns v / s.
func (v Vec4[T]) Div(s T) Vec4[T] {
	return Vec4[T]{v.X / s, v.Y / s, v.Z / s, v.W / s}
}

// Mul returns the componentwise product.
func (v Vec4[T]) Mul(o Vec4[T]) Vec4[T] {
	return Vec4[T]{v.X * o.X, v.Y * o.Y, v.Z * o.Z, v.W * o.W}
}

// DivVec returns the componentwise quotient.
func (v Vec4[T]) DivVec(o Vec4[T]) Vec4[T] {
	return Vec4[T]{v.X / o.X, v.Y / o.Y, v.Z / o.Z, v.W / o.W}
}

// Dot returns the scalar product.
func (v Vec4[T]) Dot(o Vec4[T]) T {
	return v.X*o.X + v.Y*o.Y + v.Z*o.Z + v.W*o.W
}

// LengthSquared returns X²+Y²+Z²+W².
func (v Vec4[T]) LengthSquared() T { return v.Dot(v) }

// Length returns the Euclidean norm.
func (v Vec4[T]) Length() T { return scalar.Sqrt(v.LengthSquared()) }

// Normalize returns v scaled to unit length, or v itself when its length is 0.
func (v Vec4[T]) Normalize() Vec4[T] {
	l := v.Length()
	if l == 0 {
		return v
	}

	return v.Div(l)
}

// ComponentMin returns the componentwise minimum.
func (v Vec4[T]) ComponentMin(o Vec4[T]) Vec4[T] {
	return Vec4[T]{min(v.X, o.X), min(v.Y, o.Y), min(v.Z, o.Z), min(v.W, o.W)}
}

// ComponentMax returns the componentwise maximum.
func (v Vec4[T]) ComponentMax(o Vec4[T]) Vec4[T] {
	return Vec4[T]{max(v.X, o.X), max(v.Y, o.Y), max(v.Z, o.Z), max(v.W, o.W)}
}

// Clamp limits each component to [lo, hi] of the matching component.
func (v Vec4[T]) Clamp(lo, hi Vec4[T]) Vec4[T] {
	return Vec4[T]{
		scalar.Clamp(v.X, lo.X, hi.X),
		scalar.Clamp(v.Y, lo.Y, hi.Y),
		scalar.Clamp(v.Z, lo.Z, hi.Z),
		scalar.Clamp(v.W, lo.W, hi.W),
	}
}

// Equal reports exact componentwise equality.
func (v Vec4[T]) Equal(o Vec4[T]) bool { return v == o }

// ApproxEqual reports whether every component differs by at most eps.
func (v Vec4[T]) ApproxEqual(o Vec4[T], eps float64) bool {
	return scalar.ApproxEqual(v.X, o.X, eps) &&
		scalar.ApproxEqual(v.Y, o.Y, eps) &&
		scalar.ApproxEqual(v.Z, o.Z, eps) &&
		scalar.ApproxEqual(v.W, o.W, eps)
}

// Component returns the i'th component (0=X … 3=W).
func (v Vec4[T]) Component(i int) (T, error) {
	if err := checkIndex("Vec4.Component", i, 4); err != nil {
		return 0, err
	}

	return v.Array()[i], nil
}

// Array returns the components as a contiguous array.
func (v Vec4[T]) Array() [4]T { return [4]T{v.X, v.Y, v.Z, v.W} }

// XY drops Z and W.
func (v Vec4[T]) XY() Vec2[T] { return Vec2[T]{v.X, v.Y} }

// XYZ drops W.
func (v Vec4[T]) XYZ() Vec3[T] { return Vec3[T]{v.X, v.Y, v.Z} }

// LessThan returns the componentwise mask v < o.
func (v Vec4[T]) LessThan(o Vec4[T]) Bool4 {
	return Bool4{v.X < o.X, v.Y < o.Y, v.Z < o.Z, v.W < o.W}
}

// GreaterThan returns the componentwise mask v > o.
func (v Vec4[T]) GreaterThan(o Vec4[T]) Bool4 {
	return Bool4{v.X > o.X, v.Y > o.Y, v.Z > o.Z, v.W > o.W}
}

// EqualMask returns the componentwise mask v == o.
func (v Vec4[T]) EqualMask(o Vec4[T]) Bool4 {
	return Bool4{v.X == o.X, v.Y == o.Y, v.Z == o.Z, v.W == o.W}
}

func (v Vec4[T]) String() string {
	return fmt.Sprintf("(%v, %v, %v, %v)", v.X, v.Y, v.Z, v.W)
}

// Lerp4 returns a + t*(b-a); t is not clamped.
func Lerp4[T scalar.Number](a, b Vec4[T], t T) Vec4[T] {
	return a.Add(b.Sub(a).Scale(t))
}

// Barycentric4 returns a + u*(b-a) + v*(c-a).
func Barycentric4[T scalar.Number](a, b, c Vec4[T], u, v T) Vec4[T] {
	return a.Add(b.Sub(a).Scale(u)).Add(c.Sub(a).Scale(v))
}

// Convert4 converts each component to scalar type U.
func Convert4[U, T scalar.Number](v Vec4[T]) Vec4[U] {
	return Vec4[U]{U(v.X), U(v.Y), U(v.Z), U(v.W)}
}
