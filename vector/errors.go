// SPDX-License-Identifier: MIT

package vector

import (
	"errors"
	"fmt"
)

var (
	// ErrMissingData is returned when a slice-based constructor receives a nil
	// slice or fewer elements than the vector has components.
	ErrMissingData = errors.New("vector: missing data")

	// ErrOutOfRange indicates a component index outside [0, N).
	ErrOutOfRange = errors.New("vector: index out of range")
)

// vectorErrorf wraps err with an operation tag, preserving it for errors.Is.
func vectorErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// checkSlice validates that s carries at least n elements.
func checkSlice[T any](tag string, s []T, n int) error {
	if len(s) < n {
		return vectorErrorf(tag, fmt.Errorf("need %d elements, got %d: %w", n, len(s), ErrMissingData))
	}

	return nil
}

// checkIndex validates a component index against n.
func checkIndex(tag string, i, n int) error {
	if i < 0 || i >= n {
		return vectorErrorf(tag, fmt.Errorf("index %d: %w", i, ErrOutOfRange))
	}

	return nil
}
