// SPDX-License-Identifier: MIT
// Package matrix: size-agnostic kernels shared by Mat2, Mat3 and Mat4.
//
// Every kernel works on row-major slices of an n×n matrix. Loop order is
// fixed (i→j→k).

package matrix

import (
	"math"

	"github.com/katalvlaran/lvmath/scalar"
)

// ZeroPivot is the sentinel for detecting a zero pivot in Gauss–Jordan.
const ZeroPivot = 0.0

// addSubInto computes out = a + sign*b elementwise.
func addSubInto[T scalar.Number](out, a, b []T, sub bool) {
	for i := range out {
		if sub {
			out[i] = a[i] - b[i]
		} else {
			out[i] = a[i] + b[i]
		}
	}
}

// scaleInto computes out = a * s.
func scaleInto[T scalar.Number](out, a []T, s T) {
	for i := range out {
		out[i] = a[i] * s
	}
}

// mulInto computes out = a·b for n×n row-major operands. out must not alias a or b.
func mulInto[T scalar.Number](n int, out, a, b []T) {
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			var sum T
			for k := 0; k < n; k++ {
				sum += a[i*n+k] * b[k*n+j]
			}
			out[i*n+j] = sum
		}
	}
}

// transposeInto writes aᵀ into out. out must not alias a.
func transposeInto[T scalar.Number](n int, out, a []T) {
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			out[j*n+i] = a[i*n+j]
		}
	}
}

// traceOf returns the sum of the main diagonal.
func traceOf[T scalar.Number](n int, a []T) T {
	var t T
	for i := 0; i < n; i++ {
		t += a[i*n+i]
	}

	return t
}

// approxEqual reports whether |a[i]-b[i]| <= eps for every element.
func approxEqual[T scalar.Number](a, b []T, eps float64) bool {
	for i := range a {
		if !scalar.ApproxEqual(a[i], b[i], eps) {
			return false
		}
	}

	return true
}

// invertInto inverts the n×n matrix src into out using Gauss–Jordan
// elimination with full pivoting on a float64 scratch copy.
//
// Implementation:
//   - Stage 1: copy src into a float64 dense scratch.
//   - Stage 2: for each of n steps pick the largest |a[j,k]| among unused
//     rows/columns, swap it onto the diagonal and eliminate its column.
//   - Stage 3: undo the column permutation recorded in rowIdx/colIdx.
//
// Errors:
//   - ErrSingular when no non-zero pivot remains (including NaN-only rows)
//     or a column would be pivoted twice. There is no silent fallback.
//
// Complexity:
//   - Time O(n³), Space O(n²).
func invertInto[T scalar.Number](n int, out, src []T) error {
	a := newDense(n, src)

	colIdx := make([]int, n)
	rowIdx := make([]int, n)
	pivotIdx := make([]int, n)
	for i := range pivotIdx {
		pivotIdx[i] = -1
	}

	var icol, irow int
	for i := 0; i < n; i++ {
		// find the largest pivot among rows and columns not yet used
		maxPivot := ZeroPivot
		for j := 0; j < n; j++ {
			if pivotIdx[j] == 0 {
				continue
			}
			for k := 0; k < n; k++ {
				if pivotIdx[k] == -1 {
					if abs := math.Abs(a.at(j, k)); abs > maxPivot {
						maxPivot = abs
						irow = j
						icol = k
					}
				} else if pivotIdx[k] > 0 {
					return matrixErrorf(opInverse, ErrSingular)
				}
			}
		}
		if maxPivot == ZeroPivot {
			return matrixErrorf(opInverse, ErrSingular)
		}

		pivotIdx[icol]++
		if irow != icol {
			a.swapRows(irow, icol)
		}
		rowIdx[i] = irow
		colIdx[i] = icol

		pivot := a.at(icol, icol)
		oneOverPivot := 1.0 / pivot
		a.set(icol, icol, 1.0)
		for k := 0; k < n; k++ {
			a.set(icol, k, a.at(icol, k)*oneOverPivot)
		}

		for j := 0; j < n; j++ {
			if j == icol {
				continue
			}
			f := a.at(j, icol)
			a.set(j, icol, 0)
			for k := 0; k < n; k++ {
				a.set(j, k, a.at(j, k)-a.at(icol, k)*f)
			}
		}
	}

	for j := n - 1; j >= 0; j-- {
		if rowIdx[j] != colIdx[j] {
			a.swapCols(rowIdx[j], colIdx[j])
		}
	}

	for i, v := range a.data {
		out[i] = T(v)
	}

	return nil
}
