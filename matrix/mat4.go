// SPDX-License-Identifier: MIT

package matrix

import (
	"github.com/katalvlaran/lvmath/scalar"
	"github.com/katalvlaran/lvmath/vector"
)

// Mat4 is a 4x4 matrix stored row-major: m[4*row+col].
//
// Vectors are rows and transform as v·M, so the translation of an affine
// transform sits in row 3 (m[12], m[13], m[14]).
type Mat4[T scalar.Number] [16]T

// Identity4 returns the 4x4 identity.
func Identity4[T scalar.Number]() Mat4[T] {
	return Mat4[T]{
		1, 0, 0, 0,
		0, 1, 0, 0,
		0, 0, 1, 0,
		0, 0, 0, 1,
	}
}

// NewMat4 builds a matrix from its 16 elements in row-major order.
func NewMat4[T scalar.Number](
	m00, m01, m02, m03,
	m10, m11, m12, m13,
	m20, m21, m22, m23,
	m30, m31, m32, m33 T,
) Mat4[T] {
	return Mat4[T]{
		m00, m01, m02, m03,
		m10, m11, m12, m13,
		m20, m21, m22, m23,
		m30, m31, m32, m33,
	}
}

// Mat4FromRows builds a matrix from four row vectors.
func Mat4FromRows[T scalar.Number](r0, r1, r2, r3 vector.Vec4[T]) Mat4[T] {
	return Mat4[T]{
		r0.X, r0.Y, r0.Z, r0.W,
		r1.X, r1.Y, r1.Z, r1.W,
		r2.X, r2.Y, r2.Z, r2.W,
		r3.X, r3.Y, r3.Z, r3.W,
	}
}

// Mat4FromSlice builds a matrix from the first 16 row-major elements of s.
func Mat4FromSlice[T scalar.Number](s []T) (Mat4[T], error) {
	var m Mat4[T]
	if err := validateSliceLen(s, len(m)); err != nil {
		return m, err
	}
	copy(m[:], s)

	return m, nil
}

// At returns the element at (row, col).
func (m Mat4[T]) At(row, col int) (T, error) {
	if err := validateRowCol(opAt, row, col, 4); err != nil {
		return 0, err
	}

	return m[4*row+col], nil
}

// Set assigns v at (row, col).
func (m *Mat4[T]) Set(row, col int, v T) error {
	if err := validateRowCol(opSet, row, col, 4); err != nil {
		return err
	}
	m[4*row+col] = v

	return nil
}

// Index returns the element at flat row-major index i.
func (m Mat4[T]) Index(i int) (T, error) {
	if err := validateIndex(opIndex, i, len(m)); err != nil {
		return 0, err
	}

	return m[i], nil
}

// Row returns row i.
func (m Mat4[T]) Row(i int) (vector.Vec4[T], error) {
	if err := validateIndex(opRow, i, 4); err != nil {
		return vector.Vec4[T]{}, err
	}

	return vector.V4(m[4*i], m[4*i+1], m[4*i+2], m[4*i+3]), nil
}

// Col returns column j.
func (m Mat4[T]) Col(j int) (vector.Vec4[T], error) {
	if err := validateIndex(opCol, j, 4); err != nil {
		return vector.Vec4[T]{}, err
	}

	return vector.V4(m[j], m[4+j], m[8+j], m[12+j]), nil
}

// Add returns m + o.
func (m Mat4[T]) Add(o Mat4[T]) Mat4[T] {
	var r Mat4[T]
	addSubInto(r[:], m[:], o[:], false)

	return r
}

// Sub returns m - o.
func (m Mat4[T]) Sub(o Mat4[T]) Mat4[T] {
	var r Mat4[T]
	addSubInto(r[:], m[:], o[:], true)

	return r
}

// Mul returns the product m·o. Under the row-vector convention the result
// applies m first and then o: v·(m·o) == (v·m)·o.
func (m Mat4[T]) Mul(o Mat4[T]) Mat4[T] {
	var r Mat4[T]
	mulInto(4, r[:], m[:], o[:])

	return r
}

// Mul is the free-function form of a.Mul(b).
func Mul[T scalar.Number](a, b Mat4[T]) Mat4[T] { return a.Mul(b) }

// Scale multiplies every element by s.
func (m Mat4[T]) Scale(s T) Mat4[T] {
	var r Mat4[T]
	scaleInto(r[:], m[:], s)

	return r
}

// Transpose returns mᵀ.
func (m Mat4[T]) Transpose() Mat4[T] {
	var r Mat4[T]
	transposeInto(4, r[:], m[:])

	return r
}

// Trace returns the sum of the diagonal.
func (m Mat4[T]) Trace() T { return traceOf(4, m[:]) }

// Determinant computes the full 24-term expansion, grouped as products of
// 2x2 minors taken from rows 0-1 and rows 2-3.
func (m Mat4[T]) Determinant() T {
	s0 := m[0]*m[5] - m[4]*m[1]
	s1 := m[0]*m[6] - m[4]*m[2]
	s2 := m[0]*m[7] - m[4]*m[3]
	s3 := m[1]*m[6] - m[5]*m[2]
	s4 := m[1]*m[7] - m[5]*m[3]
	s5 := m[2]*m[7] - m[6]*m[3]

	c5 := m[10]*m[15] - m[14]*m[11]
	c4 := m[9]*m[15] - m[13]*m[11]
	c3 := m[9]*m[14] - m[13]*m[10]
	c2 := m[8]*m[15] - m[12]*m[11]
	c1 := m[8]*m[14] - m[12]*m[10]
	c0 := m[8]*m[13] - m[12]*m[9]

	return s0*c5 - s1*c4 + s2*c3 + s3*c2 - s4*c1 + s5*c0
}

// Inverse returns m⁻¹ computed by full-pivot Gauss–Jordan elimination.
//
// Errors:
//   - ErrSingular when no usable pivot exists. The receiver is never
//     returned as a stand-in for the inverse.
//
// Complexity:
//   - Time O(64), Space O(16) float64 scratch.
func (m Mat4[T]) Inverse() (Mat4[T], error) {
	var r Mat4[T]
	if err := invertInto(4, r[:], m[:]); err != nil {
		return Mat4[T]{}, err
	}

	return r, nil
}

// Rotate composes m with a rotation of deg degrees about the Z axis,
// applied to the upper-left 2x2 block: m·R.
func (m Mat4[T]) Rotate(deg float64) Mat4[T] {
	s, c := sinCosDeg(deg)
	r := Identity4[T]()
	r[0], r[1] = T(c), T(s)
	r[4], r[5] = T(-s), T(c)

	return m.Mul(r)
}

// MulVec4 returns v·m without a homogeneous divide.
func (m Mat4[T]) MulVec4(v vector.Vec4[T]) vector.Vec4[T] {
	return vector.V4(
		v.X*m[0]+v.Y*m[4]+v.Z*m[8]+v.W*m[12],
		v.X*m[1]+v.Y*m[5]+v.Z*m[9]+v.W*m[13],
		v.X*m[2]+v.Y*m[6]+v.Z*m[10]+v.W*m[14],
		v.X*m[3]+v.Y*m[7]+v.Z*m[11]+v.W*m[15],
	)
}

// TransformPoint transforms p as (p, 1)·m. When the resulting w is neither
// 0 nor 1 the xyz part is divided by it.
func (m Mat4[T]) TransformPoint(p vector.Vec3[T]) vector.Vec3[T] {
	r := m.MulVec4(p.Extend(1))
	if r.W != 0 && r.W != 1 {
		return r.XYZ().Div(r.W)
	}

	return r.XYZ()
}

// TransformDir transforms d as (d, 0)·m; translation does not apply.
func (m Mat4[T]) TransformDir(d vector.Vec3[T]) vector.Vec3[T] {
	return vector.V3(
		d.X*m[0]+d.Y*m[4]+d.Z*m[8],
		d.X*m[1]+d.Y*m[5]+d.Z*m[9],
		d.X*m[2]+d.Y*m[6]+d.Z*m[10],
	)
}

// Translation returns row 3 as a vector.
func (m Mat4[T]) Translation() vector.Vec3[T] {
	return vector.V3(m[12], m[13], m[14])
}

// Mat3 returns the upper-left 3x3 block.
func (m Mat4[T]) Mat3() Mat3[T] {
	return Mat3[T]{
		m[0], m[1], m[2],
		m[4], m[5], m[6],
		m[8], m[9], m[10],
	}
}

// Equal reports exact elementwise equality.
func (m Mat4[T]) Equal(o Mat4[T]) bool { return m == o }

// ApproxEqual reports elementwise equality within WithEpsilon (DefaultEpsilon).
func (m Mat4[T]) ApproxEqual(o Mat4[T], opts ...Option) bool {
	return approxEqual(m[:], o[:], gatherOptions(opts...).eps)
}

// Array returns the row-major elements.
func (m Mat4[T]) Array() [16]T { return m }

func (m Mat4[T]) String() string { return formatRows(4, m[:]) }

// Convert4 converts every element to scalar type U.
func Convert4[U, T scalar.Number](m Mat4[T]) Mat4[U] {
	var r Mat4[U]
	for i, v := range m {
		r[i] = U(v)
	}

	return r
}
