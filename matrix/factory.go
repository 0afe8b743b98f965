// SPDX-License-Identifier: MIT

package matrix

import (
	"fmt"
	"math"

	"github.com/katalvlaran/lvmath/scalar"
	"github.com/katalvlaran/lvmath/vector"
)

// Translation returns the affine translation by (x, y, z); the offset
// occupies row 3.
func Translation[T scalar.Float](x, y, z T) Mat4[T] {
	m := Identity4[T]()
	m[12], m[13], m[14] = x, y, z

	return m
}

// Scale returns a non-uniform scale matrix.
func Scale[T scalar.Float](x, y, z T) Mat4[T] {
	return Mat4[T]{
		x, 0, 0, 0,
		0, y, 0, 0,
		0, 0, z, 0,
		0, 0, 0, 1,
	}
}

// RotationX returns a rotation of angle radians about the X axis.
func RotationX[T scalar.Float](angle T) Mat4[T] {
	s, c := scalar.SinCos(angle)

	return Mat4[T]{
		1, 0, 0, 0,
		0, c, s, 0,
		0, -s, c, 0,
		0, 0, 0, 1,
	}
}

// RotationY returns a rotation of angle radians about the Y axis.
func RotationY[T scalar.Float](angle T) Mat4[T] {
	s, c := scalar.SinCos(angle)

	return Mat4[T]{
		c, 0, -s, 0,
		0, 1, 0, 0,
		s, 0, c, 0,
		0, 0, 0, 1,
	}
}

// RotationZ returns a rotation of angle radians about the Z axis.
func RotationZ[T scalar.Float](angle T) Mat4[T] {
	s, c := scalar.SinCos(angle)

	return Mat4[T]{
		c, s, 0, 0,
		-s, c, 0, 0,
		0, 0, 1, 0,
		0, 0, 0, 1,
	}
}

// FromAxisAngle returns a rotation of angle radians about axis. The axis is
// normalized first; a zero axis yields the identity.
func FromAxisAngle[T scalar.Float](axis vector.Vec3[T], angle T) Mat4[T] {
	if axis.LengthSquared() == 0 {
		return Identity4[T]()
	}
	a := axis.Normalize()
	x, y, z := a.X, a.Y, a.Z
	s, c := scalar.SinCos(angle)
	t := 1 - c

	return Mat4[T]{
		t*x*x + c, t*x*y + s*z, t*x*z - s*y, 0,
		t*x*y - s*z, t*y*y + c, t*y*z + s*x, 0,
		t*x*z + s*y, t*y*z - s*x, t*z*z + c, 0,
		0, 0, 0, 1,
	}
}

// OrthographicOffCenter returns an orthographic projection of the box
// [left,right]×[bottom,top]×[zNear,zFar].
//
// Errors:
//   - ErrInvalidArgument when any pair of planes coincides.
func OrthographicOffCenter[T scalar.Float](left, right, bottom, top, zNear, zFar T) (Mat4[T], error) {
	if left == right || bottom == top || zNear == zFar {
		return Mat4[T]{}, matrixErrorf(opOrthoOffCtr, ErrInvalidArgument)
	}
	invRL := 1 / (right - left)
	invTB := 1 / (top - bottom)
	invFN := 1 / (zFar - zNear)

	m := Identity4[T]()
	m[0] = 2 * invRL
	m[5] = 2 * invTB
	m[10] = -2 * invFN
	m[12] = -(right + left) * invRL
	m[13] = -(top + bottom) * invTB
	m[14] = -(zFar + zNear) * invFN

	return m, nil
}

// Orthographic returns an orthographic projection of a width×height volume
// centred on the view axis.
func Orthographic[T scalar.Float](width, height, zNear, zFar T) (Mat4[T], error) {
	m, err := OrthographicOffCenter(-width/2, width/2, -height/2, height/2, zNear, zFar)
	if err != nil {
		return Mat4[T]{}, matrixErrorf(opOrtho, err)
	}

	return m, nil
}

// PerspectiveOffCenter returns a perspective projection of the frustum
// bounded by the given planes at the near distance.
//
// Errors:
//   - ErrInvalidArgument when zNear <= 0, zFar <= 0 or zNear >= zFar.
func PerspectiveOffCenter[T scalar.Float](left, right, bottom, top, zNear, zFar T) (Mat4[T], error) {
	switch {
	case zNear <= 0:
		return Mat4[T]{}, matrixErrorf(opOffCenter, fmt.Errorf("zNear %v: %w", zNear, ErrInvalidArgument))
	case zFar <= 0:
		return Mat4[T]{}, matrixErrorf(opOffCenter, fmt.Errorf("zFar %v: %w", zFar, ErrInvalidArgument))
	case zNear >= zFar:
		return Mat4[T]{}, matrixErrorf(opOffCenter, fmt.Errorf("zNear %v >= zFar %v: %w", zNear, zFar, ErrInvalidArgument))
	}

	x := 2 * zNear / (right - left)
	y := 2 * zNear / (top - bottom)
	a := (right + left) / (right - left)
	b := (top + bottom) / (top - bottom)
	c := -(zFar + zNear) / (zFar - zNear)
	d := -(2 * zFar * zNear) / (zFar - zNear)

	return Mat4[T]{
		x, 0, 0, 0,
		0, y, 0, 0,
		a, b, c, -1,
		0, 0, d, 0,
	}, nil
}

// PerspectiveFieldOfView returns a symmetric perspective projection.
// fovy is the vertical field of view in radians and aspect is width/height.
//
// Errors:
//   - ErrInvalidArgument when fovy is outside (0, π], aspect <= 0, or the
//     clip distances are rejected by PerspectiveOffCenter.
func PerspectiveFieldOfView[T scalar.Float](fovy, aspect, zNear, zFar T) (Mat4[T], error) {
	switch {
	case fovy <= 0 || float64(fovy) > math.Pi:
		return Mat4[T]{}, matrixErrorf(opPerspective, fmt.Errorf("fovy %v: %w", fovy, ErrInvalidArgument))
	case aspect <= 0:
		return Mat4[T]{}, matrixErrorf(opPerspective, fmt.Errorf("aspect %v: %w", aspect, ErrInvalidArgument))
	}

	yMax := zNear * scalar.Tan(fovy/2)
	yMin := -yMax
	xMin := yMin * aspect
	xMax := yMax * aspect

	m, err := PerspectiveOffCenter(xMin, xMax, yMin, yMax, zNear, zFar)
	if err != nil {
		return Mat4[T]{}, matrixErrorf(opPerspective, err)
	}

	return m, nil
}

// LookAt returns a view matrix for a camera at eye looking at target.
// The camera looks down its local -Z axis.
func LookAt[T scalar.Float](eye, target, up vector.Vec3[T]) Mat4[T] {
	z := eye.Sub(target).Normalize()
	x := up.Cross(z).Normalize()
	y := z.Cross(x).Normalize()

	return Mat4[T]{
		x.X, y.X, z.X, 0,
		x.Y, y.Y, z.Y, 0,
		x.Z, y.Z, z.Z, 0,
		-x.Dot(eye), -y.Dot(eye), -z.Dot(eye), 1,
	}
}
