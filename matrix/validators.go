// SPDX-License-Identifier: MIT
// Package: matrix
//
// Purpose:
//   - Single source of truth for index and slice-length checks shared by
//     Mat2, Mat3 and Mat4.
//   - Return wrapped sentinels so call sites stay one-liners.

package matrix

import "fmt"

// validateRowCol checks 0 <= row,col < n.
func validateRowCol(tag string, row, col, n int) error {
	if row < 0 || row >= n || col < 0 || col >= n {
		return matrixErrorf(fmt.Sprintf("%s(%d,%d)", tag, row, col), ErrOutOfRange)
	}

	return nil
}

// validateIndex checks 0 <= i < n.
func validateIndex(tag string, i, n int) error {
	if i < 0 || i >= n {
		return matrixErrorf(fmt.Sprintf("%s(%d)", tag, i), ErrOutOfRange)
	}

	return nil
}

// validateSliceLen checks that s carries at least n elements.
func validateSliceLen[T any](s []T, n int) error {
	if len(s) < n {
		return matrixErrorf(opFromSlice, fmt.Errorf("need %d elements, got %d: %w", n, len(s), ErrMissingData))
	}

	return nil
}
