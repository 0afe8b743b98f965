// SPDX-License-Identifier: MIT

package matrix

import (
	"github.com/katalvlaran/lvmath/scalar"
	"github.com/katalvlaran/lvmath/vector"
)

// Mat2 is a 2x2 matrix stored row-major: m[2*row+col].
type Mat2[T scalar.Number] [4]T

// Identity2 returns the 2x2 identity.
func Identity2[T scalar.Number]() Mat2[T] {
	return Mat2[T]{1, 0, 0, 1}
}

// NewMat2 builds a matrix from its elements in row-major order.
func NewMat2[T scalar.Number](m00, m01, m10, m11 T) Mat2[T] {
	return Mat2[T]{m00, m01, m10, m11}
}

// Mat2FromRows builds a matrix from two row vectors.
func Mat2FromRows[T scalar.Number](r0, r1 vector.Vec2[T]) Mat2[T] {
	return Mat2[T]{r0.X, r0.Y, r1.X, r1.Y}
}

// Mat2FromSlice builds a matrix from the first 4 row-major elements of s.
func Mat2FromSlice[T scalar.Number](s []T) (Mat2[T], error) {
	var m Mat2[T]
	if err := validateSliceLen(s, len(m)); err != nil {
		return m, err
	}
	copy(m[:], s)

	return m, nil
}

// At returns the element at (row, col).
func (m Mat2[T]) At(row, col int) (T, error) {
	if err := validateRowCol(opAt, row, col, 2); err != nil {
		return 0, err
	}

	return m[2*row+col], nil
}

// Set assigns v at (row, col).
func (m *Mat2[T]) Set(row, col int, v T) error {
	if err := validateRowCol(opSet, row, col, 2); err != nil {
		return err
	}
	m[2*row+col] = v

	return nil
}

// Index returns the element at flat row-major index i.
func (m Mat2[T]) Index(i int) (T, error) {
	if err := validateIndex(opIndex, i, len(m)); err != nil {
		return 0, err
	}

	return m[i], nil
}

// Row returns row i.
func (m Mat2[T]) Row(i int) (vector.Vec2[T], error) {
	if err := validateIndex(opRow, i, 2); err != nil {
		return vector.Vec2[T]{}, err
	}

	return vector.V2(m[2*i], m[2*i+1]), nil
}

// Col returns column j.
func (m Mat2[T]) Col(j int) (vector.Vec2[T], error) {
	if err := validateIndex(opCol, j, 2); err != nil {
		return vector.Vec2[T]{}, err
	}

	return vector.V2(m[j], m[2+j]), nil
}

// Add returns m + o.
func (m Mat2[T]) Add(o Mat2[T]) Mat2[T] {
	var r Mat2[T]
	addSubInto(r[:], m[:], o[:], false)

	return r
}

// Sub returns m - o.
func (m Mat2[T]) Sub(o Mat2[T]) Mat2[T] {
	var r Mat2[T]
	addSubInto(r[:], m[:], o[:], true)

	return r
}

// Mul returns the product m·o (m applied first under the row-vector convention).
func (m Mat2[T]) Mul(o Mat2[T]) Mat2[T] {
	var r Mat2[T]
	mulInto(2, r[:], m[:], o[:])

	return r
}

// Scale multiplies every element by s.
func (m Mat2[T]) Scale(s T) Mat2[T] {
	var r Mat2[T]
	scaleInto(r[:], m[:], s)

	return r
}

// Transpose returns mᵀ.
func (m Mat2[T]) Transpose() Mat2[T] {
	return Mat2[T]{m[0], m[2], m[1], m[3]}
}

// Trace returns the sum of the diagonal.
func (m Mat2[T]) Trace() T { return traceOf(2, m[:]) }

// Determinant returns m00·m11 − m01·m10.
func (m Mat2[T]) Determinant() T {
	return m[0]*m[3] - m[1]*m[2]
}

// Inverse returns m⁻¹ or ErrSingular.
func (m Mat2[T]) Inverse() (Mat2[T], error) {
	var r Mat2[T]
	if err := invertInto(2, r[:], m[:]); err != nil {
		return Mat2[T]{}, err
	}

	return r, nil
}

// Rotate composes m with a counter-clockwise rotation of deg degrees: m·R.
func (m Mat2[T]) Rotate(deg float64) Mat2[T] {
	s, c := sinCosDeg(deg)

	return m.Mul(Mat2[T]{T(c), T(s), T(-s), T(c)})
}

// MulVec2 transforms the row vector v: v·m.
func (m Mat2[T]) MulVec2(v vector.Vec2[T]) vector.Vec2[T] {
	return vector.V2(
		v.X*m[0]+v.Y*m[2],
		v.X*m[1]+v.Y*m[3],
	)
}

// Equal reports exact elementwise equality.
func (m Mat2[T]) Equal(o Mat2[T]) bool { return m == o }

// ApproxEqual reports elementwise equality within WithEpsilon (DefaultEpsilon).
func (m Mat2[T]) ApproxEqual(o Mat2[T], opts ...Option) bool {
	return approxEqual(m[:], o[:], gatherOptions(opts...).eps)
}

// Array returns the row-major elements.
func (m Mat2[T]) Array() [4]T { return m }

func (m Mat2[T]) String() string { return formatRows(2, m[:]) }

// Convert2 converts every element to scalar type U.
func Convert2[U, T scalar.Number](m Mat2[T]) Mat2[U] {
	var r Mat2[U]
	for i, v := range m {
		r[i] = U(v)
	}

	return r
}
