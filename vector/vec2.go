// SPDX-License-Identifier: MIT

package vector

import (
	"fmt"

	"github.com/katalvlaran/lvmath/scalar"
)

// Vec2 is a 2-component vector.
type Vec2[T scalar.Number] struct {
	X, Y T
}

// V2 creates a Vec2 from its components.
func V2[T scalar.Number](x, y T) Vec2[T] {
	return Vec2[T]{X: x, Y: y}
}

// FromSlice2 builds a Vec2 from the first two elements of s.
// Returns ErrMissingData if s is nil or shorter than 2.
func FromSlice2[T scalar.Number](s []T) (Vec2[T], error) {
	if err := checkSlice("FromSlice2", s, 2); err != nil {
		return Vec2[T]{}, err
	}

	return Vec2[T]{X: s[0], Y: s[1]}, nil
}

// Zero2 returns (0, 0).
func Zero2[T scalar.Number]() Vec2[T] { return Vec2[T]{} }

// One2 returns (1, 1).
func One2[T scalar.Number]() Vec2[T] { return Vec2[T]{1, 1} }

// UnitX2 returns (1, 0).
func UnitX2[T scalar.Number]() Vec2[T] { return Vec2[T]{X: 1} }

// UnitY2 returns (0, 1).
func UnitY2[T scalar.Number]() Vec2[T] { return Vec2[T]{Y: 1} }

// Add returns v + o.
func (v Vec2[T]) Add(o Vec2[T]) Vec2[T] { return Vec2[T]{v.X + o.X, v.Y + o.Y} }

// Sub returns v - o.
func (v Vec2[T]) Sub(o Vec2[T]) Vec2[T] { return Vec2[T]{v.X - o.X, v.Y - o.Y} }

// Neg returns -v.
func (v Vec2[T]) Neg() Vec2[T] { return Vec2[T]{-v.X, -v.Y} }

// Scale returns v * s.
func (v Vec2[T]) Scale(s T) Vec2[T] { return Vec2[T]{v.X * s, v.Y * s} }

// Div returns v / s.
func (v Vec2[T]) Div(s T) Vec2[T] { return Vec2[T]{v.X / s, v.Y / s} }

// Mul returns the componentwise product.
func (v Vec2[T]) Mul(o Vec2[T]) Vec2[T] { return Vec2[T]{v.X * o.X, v.Y * o.Y} }

// DivVec returns the componentwise quotient.
func (v Vec2[T]) DivVec(o Vec2[T]) Vec2[T] { return Vec2[T]{v.X / o.X, v.Y / o.Y} }

// Dot returns the scalar product.
func (v Vec2[T]) Dot(o Vec2[T]) T { return v.X*o.X + v.Y*o.Y }

// PerpDot returns the z component of the 3-D cross product of (v,0) and (o,0).
func (v Vec2[T]) PerpDot(o Vec2[T]) T { return v.X*o.Y - v.Y*o.X }

// LengthSquared returns X²+Y².
func (v Vec2[T]) LengthSquared() T { return v.Dot(v) }

// Length returns the Euclidean norm.
func (v Vec2[T]) Length() T { return scalar.Sqrt(v.LengthSquared()) }

// Distance returns |v - o|.
func (v Vec2[T]) Distance(o Vec2[T]) T { return v.Sub(o).Length() }

// DistanceSquared returns |v - o|².
func (v Vec2[T]) DistanceSquared(o Vec2[T]) T { return v.Sub(o).LengthSquared() }

// Normalize returns v scaled to unit length, or v itself when its length is 0.
func (v Vec2[T]) Normalize() Vec2[T] {
	l := v.Length()
	if l == 0 {
		return v
	}

	return v.Div(l)
}

// ComponentMin returns the componentwise minimum.
func (v Vec2[T]) ComponentMin(o Vec2[T]) Vec2[T] {
	return Vec2[T]{min(v.X, o.X), min(v.Y, o.Y)}
}

// ComponentMax returns the componentwise maximum.
func (v Vec2[T]) ComponentMax(o Vec2[T]) Vec2[T] {
	return Vec2[T]{max(v.X, o.X), max(v.Y, o.Y)}
}

// Clamp limits each component to [lo, hi] of the matching component.
func (v Vec2[T]) Clamp(lo, hi Vec2[T]) Vec2[T] {
	return Vec2[T]{scalar.Clamp(v.X, lo.X, hi.X), scalar.Clamp(v.Y, lo.Y, hi.Y)}
}

// Equal reports exact componentwise equality.
func (v Vec2[T]) Equal(o Vec2[T]) bool { return v == o }

// ApproxEqual reports whether every component differs by at most eps.
func (v Vec2[T]) ApproxEqual(o Vec2[T], eps float64) bool {
	return scalar.ApproxEqual(v.X, o.X, eps) && scalar.ApproxEqual(v.Y, o.Y, eps)
}

// Component returns the i'th component (0=X, 1=Y).
func (v Vec2[T]) Component(i int) (T, error) {
	if err := checkIndex("Vec2.Component", i, 2); err != nil {
		return 0, err
	}

	return v.Array()[i], nil
}

// Array returns the components as a contiguous array.
func (v Vec2[T]) Array() [2]T { return [2]T{v.X, v.Y} }

// Extend widens v to a Vec3 with the given Z.
func (v Vec2[T]) Extend(z T) Vec3[T] { return Vec3[T]{v.X, v.Y, z} }

// LessThan returns the componentwise mask v < o.
func (v Vec2[T]) LessThan(o Vec2[T]) Bool2 { return Bool2{v.X < o.X, v.Y < o.Y} }

// GreaterThan returns the componentwise mask v > o.
func (v Vec2[T]) GreaterThan(o Vec2[T]) Bool2 { return Bool2{v.X > o.X, v.Y > o.Y} }

// EqualMask returns the componentwise mask v == o.
func (v Vec2[T]) EqualMask(o Vec2[T]) Bool2 { return Bool2{v.X == o.X, v.Y == o.Y} }

func (v Vec2[T]) String() string {
	return fmt.Sprintf("(%v, %v)", v.X, v.Y)
}

// Perp returns v rotated by +90°: (-Y, X).
func Perp[T scalar.Signed](v Vec2[T]) Vec2[T] {
	return Vec2[T]{-v.Y, v.X}
}

// Lerp2 returns a + t*(b-a); t is not clamped.
func Lerp2[T scalar.Number](a, b Vec2[T], t T) Vec2[T] {
	return a.Add(b.Sub(a).Scale(t))
}

// Barycentric2 returns a + u*(b-a) + v*(c-a).
func Barycentric2[T scalar.Number](a, b, c Vec2[T], u, v T) Vec2[T] {
	return a.Add(b.Sub(a).Scale(u)).Add(c.Sub(a).Scale(v))
}

// Convert2 converts each component to scalar type U.
func Convert2[U, T scalar.Number](v Vec2[T]) Vec2[U] {
	return Vec2[U]{U(v.X), U(v.Y)}
}
