// SPDX-License-Identifier: MIT

package batch

import (
	"errors"
	"fmt"
)

// ErrNilContext is returned when a nil context.Context is passed in.
var ErrNilContext = errors.New("batch: nil context")

const (
	opTransformPoints = "TransformPoints"
	opTransformDirs   = "TransformDirs"
	opRotateVectors   = "RotateVectors"
	opBounds          = "Bounds"
)

// batchErrorf wraps err with an operation tag. Use only when err != nil.
func batchErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}
