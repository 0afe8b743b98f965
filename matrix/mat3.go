// SPDX-License-Identifier: MIT

package matrix

import (
	"github.com/katalvlaran/lvmath/scalar"
	"github.com/katalvlaran/lvmath/vector"
)

// Mat3 is a 3x3 matrix stored row-major: m[3*row+col].
type Mat3[T scalar.Number] [9]T

// Identity3 returns the 3x3 identity.
func Identity3[T scalar.Number]() Mat3[T] {
	return Mat3[T]{
		1, 0, 0,
		0, 1, 0,
		0, 0, 1,
	}
}

// NewMat3 builds a matrix from its elements in row-major order.
func NewMat3[T scalar.Number](m00, m01, m02, m10, m11, m12, m20, m21, m22 T) Mat3[T] {
	return Mat3[T]{m00, m01, m02, m10, m11, m12, m20, m21, m22}
}

// Mat3FromRows builds a matrix from three row vectors.
func Mat3FromRows[T scalar.Number](r0, r1, r2 vector.Vec3[T]) Mat3[T] {
	return Mat3[T]{
		r0.X, r0.Y, r0.Z,
		r1.X, r1.Y, r1.Z,
		r2.X, r2.Y, r2.Z,
	}
}

// Mat3FromSlice builds a matrix from the first 9 row-major elements of s.
func Mat3FromSlice[T scalar.Number](s []T) (Mat3[T], error) {
	var m Mat3[T]
	if err := validateSliceLen(s, len(m)); err != nil {
		return m, err
	}
	copy(m[:], s)

	return m, nil
}

// At returns the element at (row, col).
func (m Mat3[T]) At(row, col int) (T, error) {
	if err := validateRowCol(opAt, row, col, 3); err != nil {
		return 0, err
	}

	return m[3*row+col], nil
}

// Set assigns v at (row, col).
func (m *Mat3[T]) Set(row, col int, v T) error {
	if err := validateRowCol(opSet, row, col, 3); err != nil {
		return err
	}
	m[3*row+col] = v

	return nil
}

// Index returns the element at flat row-major index i.
func (m Mat3[T]) Index(i int) (T, error) {
	if err := validateIndex(opIndex, i, len(m)); err != nil {
		return 0, err
	}

	return m[i], nil
}

// Row returns row i.
func (m Mat3[T]) Row(i int) (vector.Vec3[T], error) {
	if err := validateIndex(opRow, i, 3); err != nil {
		return vector.Vec3[T]{}, err
	}

	return vector.V3(m[3*i], m[3*i+1], m[3*i+2]), nil
}

// Col returns column j.
func (m Mat3[T]) Col(j int) (vector.Vec3[T], error) {
	if err := validateIndex(opCol, j, 3); err != nil {
		return vector.Vec3[T]{}, err
	}

	return vector.V3(m[j], m[3+j], m[6+j]), nil
}

// Add returns m + o.
func (m Mat3[T]) Add(o Mat3[T]) Mat3[T] {
	var r Mat3[T]
	addSubInto(r[:], m[:], o[:], false)

	return r
}

// Sub returns m - o.
func (m Mat3[T]) Sub(o Mat3[T]) Mat3[T] {
	var r Mat3[T]
	addSubInto(r[:], m[:], o[:], true)

	return r
}

// Mul returns the product m·o (m applied first under the row-vector convention).
func (m Mat3[T]) Mul(o Mat3[T]) Mat3[T] {
	var r Mat3[T]
	mulInto(3, r[:], m[:], o[:])

	return r
}

// Scale multiplies every element by s.
func (m Mat3[T]) Scale(s T) Mat3[T] {
	var r Mat3[T]
	scaleInto(r[:], m[:], s)

	return r
}

// Transpose returns mᵀ.
func (m Mat3[T]) Transpose() Mat3[T] {
	var r Mat3[T]
	transposeInto(3, r[:], m[:])

	return r
}

// Trace returns the sum of the diagonal.
func (m Mat3[T]) Trace() T { return traceOf(3, m[:]) }

// Determinant expands along the first row.
func (m Mat3[T]) Determinant() T {
	return m[0]*(m[4]*m[8]-m[5]*m[7]) -
		m[1]*(m[3]*m[8]-m[5]*m[6]) +
		m[2]*(m[3]*m[7]-m[4]*m[6])
}

// Inverse returns m⁻¹ or ErrSingular.
func (m Mat3[T]) Inverse() (Mat3[T], error) {
	var r Mat3[T]
	if err := invertInto(3, r[:], m[:]); err != nil {
		return Mat3[T]{}, err
	}

	return r, nil
}

// Rotate composes m with a rotation of deg degrees applied to the
// upper-left 2x2 block (a 2-D rotation in homogeneous form): m·R.
func (m Mat3[T]) Rotate(deg float64) Mat3[T] {
	s, c := sinCosDeg(deg)
	r := Identity3[T]()
	r[0], r[1] = T(c), T(s)
	r[3], r[4] = T(-s), T(c)

	return m.Mul(r)
}

// MulVec3 transforms the row vector v: v·m.
func (m Mat3[T]) MulVec3(v vector.Vec3[T]) vector.Vec3[T] {
	return vector.V3(
		v.X*m[0]+v.Y*m[3]+v.Z*m[6],
		v.X*m[1]+v.Y*m[4]+v.Z*m[7],
		v.X*m[2]+v.Y*m[5]+v.Z*m[8],
	)
}

// Mat4 embeds m in the upper-left block of a 4x4 identity.
func (m Mat3[T]) Mat4() Mat4[T] {
	return Mat4[T]{
		m[0], m[1], m[2], 0,
		m[3], m[4], m[5], 0,
		m[6], m[7], m[8], 0,
		0, 0, 0, 1,
	}
}

// Equal reports exact elementwise equality.
func (m Mat3[T]) Equal(o Mat3[T]) bool { return m == o }

// ApproxEqual reports elementwise equality within WithEpsilon (DefaultEpsilon).
func (m Mat3[T]) ApproxEqual(o Mat3[T], opts ...Option) bool {
	return approxEqual(m[:], o[:], gatherOptions(opts...).eps)
}

// Array returns the row-major elements.
func (m Mat3[T]) Array() [9]T { return m }

func (m Mat3[T]) String() string { return formatRows(3, m[:]) }

// Convert3 converts every element to scalar type U.
func Convert3[U, T scalar.Number](m Mat3[T]) Mat3[U] {
	var r Mat3[U]
	for i, v := range m {
		r[i] = U(v)
	}

	return r
}
