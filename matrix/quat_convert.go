// SPDX-License-Identifier: MIT

package matrix

import (
	"github.com/katalvlaran/lvmath/quat"
	"github.com/katalvlaran/lvmath/scalar"
	"github.com/katalvlaran/lvmath/vector"
)

// FromQuat3 returns the 3x3 rotation of q. q need not be unit length; a
// zero quaternion yields the identity.
func FromQuat3[T scalar.Float](q quat.Quat[T]) Mat3[T] {
	n := q.LengthSquared()
	if n == 0 {
		return Identity3[T]()
	}
	s := 2 / n

	x, y, z, w := q.V.X, q.V.Y, q.V.Z, q.W
	xs, ys, zs := x*s, y*s, z*s
	wx, wy, wz := w*xs, w*ys, w*zs
	xx, xy, xz := x*xs, x*ys, x*zs
	yy, yz, zz := y*ys, y*zs, z*zs

	return Mat3[T]{
		1 - (yy + zz), xy + wz, xz - wy,
		xy - wz, 1 - (xx + zz), yz + wx,
		xz + wy, yz - wx, 1 - (xx + yy),
	}
}

// FromQuat returns the 4x4 rotation of q.
func FromQuat[T scalar.Float](q quat.Quat[T]) Mat4[T] {
	return FromQuat3(q).Mat4()
}

// QuatFromMat3 extracts the rotation of a pure rotation matrix. The branch
// is chosen on the trace and then on the largest diagonal element so the
// divisor never approaches zero.
func QuatFromMat3[T scalar.Float](m Mat3[T]) quat.Quat[T] {
	m00, m01, m02 := m[0], m[1], m[2]
	m10, m11, m12 := m[3], m[4], m[5]
	m20, m21, m22 := m[6], m[7], m[8]

	var x, y, z, w T
	trace := m00 + m11 + m22
	switch {
	case trace > 0:
		s := 0.5 / scalar.Sqrt(trace+1)
		w = 0.25 / s
		x = (m12 - m21) * s
		y = (m20 - m02) * s
		z = (m01 - m10) * s
	case m00 > m11 && m00 > m22:
		s := 2 * scalar.Sqrt(1+m00-m11-m22)
		w = (m12 - m21) / s
		x = 0.25 * s
		y = (m10 + m01) / s
		z = (m20 + m02) / s
	case m11 > m22:
		s := 2 * scalar.Sqrt(1+m11-m00-m22)
		w = (m20 - m02) / s
		x = (m10 + m01) / s
		y = 0.25 * s
		z = (m21 + m12) / s
	default:
		s := 2 * scalar.Sqrt(1+m22-m00-m11)
		w = (m01 - m10) / s
		x = (m20 + m02) / s
		y = (m21 + m12) / s
		z = 0.25 * s
	}

	return quat.FromVec(vector.V3(x, y, z), w)
}

// QuatFromMat4 extracts the rotation held in the upper-left 3x3 block.
func QuatFromMat4[T scalar.Float](m Mat4[T]) quat.Quat[T] {
	return QuatFromMat3(m.Mat3())
}
