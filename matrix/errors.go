// SPDX-License-Identifier: MIT
// Package matrix: sentinel error set.
// This file defines ONLY package-level sentinel errors used across the matrix
// package. Operations wrap them with an operation tag (see matrixErrorf) and
// tests match them via errors.Is. No operation panics on user input.

package matrix

import (
	"errors"
	"fmt"
)

// Every message is prefixed with "matrix: ...". Callers match
// with errors.Is; the op-tag prefix ("Inverse: ...") is informational only.

var (
	// ErrOutOfRange indicates that a row, column or flat index is outside
	// the matrix dimensions. Indexers (At/Set/Index/Row/Col) return it.
	ErrOutOfRange = errors.New("matrix: index out of range")

	// ErrMissingData is returned by slice constructors when the slice is nil
	// or shorter than the number of matrix elements.
	ErrMissingData = errors.New("matrix: missing data")

	// ErrSingular is returned when inversion finds no usable (non-zero) pivot.
	// It is the single failure policy for all inverses: a singular matrix is
	// never silently returned unchanged.
	ErrSingular = errors.New("matrix: singular matrix")

	// ErrInvalidArgument is returned by projection factories when an angle,
	// aspect ratio or clip distance is outside its valid range.
	ErrInvalidArgument = errors.New("matrix: invalid argument")
)

// Operation name constants for unified error wrapping.
const (
	opAt          = "At"
	opSet         = "Set"
	opIndex       = "Index"
	opRow         = "Row"
	opCol         = "Col"
	opFromSlice   = "FromSlice"
	opInverse     = "Inverse"
	opPerspective = "PerspectiveFieldOfView"
	opOffCenter   = "PerspectiveOffCenter"
	opOrthoOffCtr = "OrthographicOffCenter"
	opOrtho       = "Orthographic"
)

// matrixErrorf wraps err with an operation tag, preserving the original error via %w.
// Use only when err != nil.
func matrixErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}
