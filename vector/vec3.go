// SPDX-License-Identifier: MIT

package vector

import (
	"fmt"

	"github.com/katalvlaran/lvmath/scalar"
)

// Vec3 is a 3-component vector.
type Vec3[T scalar.Number] struct {
	X, Y, Z T
}

// V3 creates a Vec3 from its components.
func V3[T scalar.Number](x, y, z T) Vec3[T] {
	return Vec3[T]{X: x, Y: y, Z: z}
}

// FromSlice3 builds a Vec3 from the first three elements of s.
// Returns ErrMissingData if s is nil or shorter than 3.
func FromSlice3[T scalar.Number](s []T) (Vec3[T], error) {
	if err := checkSlice("FromSlice3", s, 3); err != nil {
		return Vec3[T]{}, err
	}

	return Vec3[T]{X: s[0], Y: s[1], Z: s[2]}, nil
}

// Zero3 returns (0, 0, 0).
func Zero3[T scalar.Number]() Vec3[T] { return Vec3[T]{} }

// One3 returns (1, 1, 1).
func One3[T scalar.Number]() Vec3[T] { return Vec3[T]{1, 1, 1} }

// UnitX3 returns (1, 0, 0).
func UnitX3[T scalar.Number]() Vec3[T] { return Vec3[T]{X: 1} }

// UnitY3 returns (0, 1, 0).
func UnitY3[T scalar.Number]() Vec3[T] { return Vec3[T]{Y: 1} }

// UnitZ3 returns (0, 0, 1).
func UnitZ3[T scalar.Number]() Vec3[T] { return Vec3[T]{Z: 1} }

// Add returns v + o.
func (v Vec3[T]) Add(o Vec3[T]) Vec3[T] {
	return Vec3[T]{v.X + o.X, v.Y + o.Y, v.Z + o.Z}
}

// Sub returns v - o.
func (v Vec3[T]) Sub(o Vec3[T]) Vec3[T] {
	return Vec3[T]{v.X - o.X, v.Y - o.Y, v.Z - o.Z}
}

// Neg returns -v.
func (v Vec3[T]) Neg() Vec3[T] {
	return Vec3[T]{-v.X, -v.Y, -v.Z}
}

// Scale returns v * s.
func (v Vec3[T]) Scale(s T) Vec3[T] {
	return Vec3[T]{v.X * s, v.Y * s, v.Z * s}
}

// Div returns v / s.
func (v Vec3[T]) Div(s T) Vec3[T] {
	return Vec3[T]{v.X / s, v.Y / s, v.Z / s}
}

// Mul returns the componentwise product.
func (v Vec3[T]) Mul(o Vec3[T]) Vec3[T] {
	return Vec3[T]{v.X * o.X, v.Y * o.Y, v.Z * o.Z}
}

// DivVec returns the componentwise quotient.
func (v Vec3[T]) DivVec(o Vec3[T]) Vec3[T] {
	return Vec3[T]{v.X / o.X, v.Y / o.Y, v.Z / o.Z}
}

// Dot returns the scalar product.
func (v Vec3[T]) Dot(o Vec3[T]) T {
	return v.X*o.X + v.Y*o.Y + v.Z*o.Z
}

// Cross returns the right-handed cross product v × o.
func (v Vec3[T]) Cross(o Vec3[T]) Vec3[T] {
	return Vec3[T]{
		v.Y*o.Z - v.Z*o.Y,
		v.Z*o.X - v.X*o.Z,
		v.X*o.Y - v.Y*o.X,
	}
}

// LengthSquared returns X²+Y²+Z².
func (v Vec3[T]) LengthSquared() T { return v.Dot(v) }

// Length returns the Euclidean norm.
func (v Vec3[T]) Length() T { return scalar.Sqrt(v.LengthSquared()) }

// Distance returns |v - o|.
func (v Vec3[T]) Distance(o Vec3[T]) T { return v.Sub(o).Length() }

// DistanceSquared returns |v - o|².
func (v Vec3[T]) DistanceSquared(o Vec3[T]) T { return v.Sub(o).LengthSquared() }

// Normalize returns v scaled to unit length, or v itself when its length is 0.
func (v Vec3[T]) Normalize() Vec3[T] {
	l := v.Length()
	if l == 0 {
		return v
	}

	return v.Div(l)
}

// ComponentMin returns the componentwise minimum.
func (v Vec3[T]) ComponentMin(o Vec3[T]) Vec3[T] {
	return Vec3[T]{min(v.X, o.X), min(v.Y, o.Y), min(v.Z, o.Z)}
}

// ComponentMax returns the componentwise maximum.
func (v Vec3[T]) ComponentMax(o Vec3[T]) Vec3[T] {
	return Vec3[T]{max(v.X, o.X), max(v.Y, o.Y), max(v.Z, o.Z)}
}

// Clamp limits each component to [lo, hi] of the matching component.
func (v Vec3[T]) Clamp(lo, hi Vec3[T]) Vec3[T] {
	return Vec3[T]{
		scalar.Clamp(v.X, lo.X, hi.X),
		scalar.Clamp(v.Y, lo.Y, hi.Y),
		scalar.Clamp(v.Z, lo.Z, hi.Z),
	}
}

// Equal reports exact componentwise equality.
func (v Vec3[T]) Equal(o Vec3[T]) bool { return v == o }

// ApproxEqual reports whether every component differs by at most eps.
func (v Vec3[T]) ApproxEqual(o Vec3[T], eps float64) bool {
	return scalar.ApproxEqual(v.X, o.X, eps) &&
		scalar.ApproxEqual(v.Y, o.Y, eps) &&
		scalar.ApproxEqual(v.Z, o.Z, eps)
}

// Component returns the i'th component (0=X, 1=Y, 2=Z).
func (v Vec3[T]) Component(i int) (T, error) {
	if err := checkIndex("Vec3.Component", i, 3); err != nil {
		return 0, err
	}

	return v.Array()[i], nil
}

// Array returns the components as a contiguous array.
func (v Vec3[T]) Array() [3]T { return [3]T{v.X, v.Y, v.Z} }

// XY drops Z.
func (v Vec3[T]) XY() Vec2[T] { return Vec2[T]{v.X, v.Y} }

// Extend widens v to a Vec4 with the given W.
func (v Vec3[T]) Extend(w T) Vec4[T] { return Vec4[T]{v.X, v.Y, v.Z, w} }

// LessThan returns the componentwise mask v < o.
func (v Vec3[T]) LessThan(o Vec3[T]) Bool3 {
	return Bool3{v.X < o.X, v.Y < o.Y, v.Z < o.Z}
}

// GreaterThan returns the componentwise mask v > o.
func (v Vec3[T]) GreaterThan(o Vec3[T]) Bool3 {
	return Bool3{v.X > o.X, v.Y > o.Y, v.Z > o.Z}
}

// EqualMask returns the componentwise mask v == o.
func (v Vec3[T]) EqualMask(o Vec3[T]) Bool3 {
	return Bool3{v.X == o.X, v.Y == o.Y, v.Z == o.Z}
}

func (v Vec3[T]) String() string {
	return fmt.Sprintf("(%v, %v, %v)", v.X, v.Y, v.Z)
}

// Lerp3 returns a + t*(b-a); t is not clamped.
func Lerp3[T scalar.Number](a, b Vec3[T], t T) Vec3[T] {
	return a.Add(b.Sub(a).Scale(t))
}

// Barycentric3 returns a + u*(b-a) + v*(c-a).
func Barycentric3[T scalar.Number](a, b, c Vec3[T], u, v T) Vec3[T] {
	return a.Add(b.Sub(a).Scale(u)).Add(c.Sub(a).Scale(v))
}

// Convert3 converts each component to scalar type U.
func Convert3[U, T scalar.Number](v Vec3[T]) Vec3[U] {
	return Vec3[U]{U(v.X), U(v.Y), U(v.Z)}
}
