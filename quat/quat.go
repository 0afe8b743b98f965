// SPDX-License-Identifier: MIT

package quat

import (
	"fmt"

	"github.com/katalvlaran/lvmath/scalar"
	"github.com/katalvlaran/lvmath/vector"
)

// AxisEpsilon is the minimum axis length MakeRotate accepts; shorter axes
// produce the identity rotation.
const AxisEpsilon = 1e-7

// axisAngleEpsilon bounds sin(angle/2) in ToAxisAngle below which the axis
// is undefined and UnitX is reported instead.
const axisAngleEpsilon = 1e-4

// Quat is a quaternion V.X·i + V.Y·j + V.Z·k + W.
type Quat[T scalar.Float] struct {
	V vector.Vec3[T]
	W T
}

// Identity returns the identity rotation (0, 0, 0, 1).
func Identity[T scalar.Float]() Quat[T] {
	return Quat[T]{W: 1}
}

// New creates a quaternion from its four components.
func New[T scalar.Float](x, y, z, w T) Quat[T] {
	return Quat[T]{V: vector.V3(x, y, z), W: w}
}

// FromVec creates a quaternion from a vector part and a scalar part.
func FromVec[T scalar.Float](v vector.Vec3[T], w T) Quat[T] {
	return Quat[T]{V: v, W: w}
}

// FromVec4 creates a quaternion from (X, Y, Z, W).
func FromVec4[T scalar.Float](v vector.Vec4[T]) Quat[T] {
	return Quat[T]{V: v.XYZ(), W: v.W}
}

// FromAxisAngle builds the rotation of angle radians about axis.
// The axis does not need to be normalized; a zero axis yields Identity.
func FromAxisAngle[T scalar.Float](axis vector.Vec3[T], angle T) Quat[T] {
	if axis.LengthSquared() == 0 {
		return Identity[T]()
	}

	s, c := scalar.SinCos(angle * 0.5)
	q := Quat[T]{V: axis.Normalize().Scale(s), W: c}

	return q.Normalize()
}

// MakeRotate builds the rotation of angle radians about axis from the
// half-angle sine and cosine. Axes shorter than AxisEpsilon yield Identity.
func MakeRotate[T scalar.Float](angle T, axis vector.Vec3[T]) Quat[T] {
	length := axis.Length()
	if float64(length) < AxisEpsilon {
		return Identity[T]()
	}

	inv := 1 / length
	s, c := scalar.SinCos(angle * 0.5)

	return Quat[T]{V: axis.Scale(s * inv), W: c}
}

// FromEuler builds a rotation from XYZ Euler angles in radians
// (rotate about X, then Y, then Z).
func FromEuler[T scalar.Float](rx, ry, rz T) Quat[T] {
	sx, cx := scalar.SinCos(rx * 0.5)
	sy, cy := scalar.SinCos(ry * 0.5)
	sz, cz := scalar.SinCos(rz * 0.5)

	return New(
		sx*cy*cz-cx*sy*sz,
		cx*sy*cz+sx*cy*sz,
		cx*cy*sz-sx*sy*cz,
		cx*cy*cz+sx*sy*sz,
	)
}

// Vec4 returns (X, Y, Z, W).
func (q Quat[T]) Vec4() vector.Vec4[T] { return q.V.Extend(q.W) }

// LengthSquared returns X²+Y²+Z²+W².
func (q Quat[T]) LengthSquared() T { return q.V.LengthSquared() + q.W*q.W }

// Length returns the quaternion norm.
func (q Quat[T]) Length() T { return scalar.Sqrt(q.LengthSquared()) }

// Normalize returns q scaled to unit length, or q itself when its length is 0.
func (q Quat[T]) Normalize() Quat[T] {
	l := q.Length()
	if l == 0 {
		return q
	}

	return q.Scale(1 / l)
}

// Conjugate returns (-V, W).
func (q Quat[T]) Conjugate() Quat[T] { return Quat[T]{V: q.V.Neg(), W: q.W} }

// Invert returns conj(q)/|q|². A quaternion with zero squared length is
// returned unchanged.
func (q Quat[T]) Invert() Quat[T] {
	l2 := q.LengthSquared()
	if l2 == 0 {
		return q
	}

	return q.Conjugate().Scale(1 / l2)
}

// Add returns the componentwise sum.
func (q Quat[T]) Add(o Quat[T]) Quat[T] { return Quat[T]{V: q.V.Add(o.V), W: q.W + o.W} }

// Sub returns the componentwise difference.
func (q Quat[T]) Sub(o Quat[T]) Quat[T] { return Quat[T]{V: q.V.Sub(o.V), W: q.W - o.W} }

// Scale multiplies every component by s.
func (q Quat[T]) Scale(s T) Quat[T] { return Quat[T]{V: q.V.Scale(s), W: q.W * s} }

// Neg returns -q, which represents the same rotation as q.
func (q Quat[T]) Neg() Quat[T] { return Quat[T]{V: q.V.Neg(), W: -q.W} }

// Dot returns the 4-D dot product.
func (q Quat[T]) Dot(o Quat[T]) T { return q.V.Dot(o.V) + q.W*o.W }

// Mul returns the Hamilton product q·o: rotating by the result applies o
// first and then q.
func (q Quat[T]) Mul(o Quat[T]) Quat[T] {
	v := o.V.Scale(q.W).Add(q.V.Scale(o.W)).Add(q.V.Cross(o.V))

	return Quat[T]{V: v, W: q.W*o.W - q.V.Dot(o.V)}
}

// Rotate rotates v by q using the sandwich product q·v·q⁻¹.
func (q Quat[T]) Rotate(v vector.Vec3[T]) vector.Vec3[T] {
	p := Quat[T]{V: v}

	return q.Mul(p).Mul(q.Invert()).V
}

// ToAxisAngle returns the rotation axis (unit length) and angle in radians.
// When the rotation angle is ~0 the axis is undefined and UnitX is returned.
func (q Quat[T]) ToAxisAngle() (vector.Vec3[T], T) {
	if scalar.Abs(q.W) > 1 {
		q = q.Normalize()
	}

	angle := 2 * scalar.Acos(q.W)
	den := scalar.Sqrt(1 - q.W*q.W)
	if float64(den) > axisAngleEpsilon {
		return q.V.Div(den), angle
	}

	return vector.UnitX3[T](), angle
}

// Equal reports exact componentwise equality.
func (q Quat[T]) Equal(o Quat[T]) bool { return q == o }

// ApproxEqual reports whether every component differs by at most eps.
func (q Quat[T]) ApproxEqual(o Quat[T], eps float64) bool {
	return q.Vec4().ApproxEqual(o.Vec4(), eps)
}

// SameRotation reports whether q and o describe the same rotation, i.e.
// are approximately equal up to a sign flip.
func (q Quat[T]) SameRotation(o Quat[T], eps float64) bool {
	return q.ApproxEqual(o, eps) || q.ApproxEqual(o.Neg(), eps)
}

func (q Quat[T]) String() string {
	return fmt.Sprintf("(%v, %v, %v, %v)", q.V.X, q.V.Y, q.V.Z, q.W)
}

// Transform rotates v by q; it is the free-function form of q.Rotate(v).
func Transform[T scalar.Float](v vector.Vec3[T], q Quat[T]) vector.Vec3[T] {
	return q.Rotate(v)
}
