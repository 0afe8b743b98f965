// SPDX-License-Identifier: MIT

package scalar

import "golang.org/x/exp/constraints"

// Number is the element constraint for vectors and matrices.
// Integer instantiations follow Go's own overflow and truncation rules.
type Number interface {
	constraints.Integer | constraints.Float
}

// Float is the element constraint for quaternions, boxes and every
// operation that needs trigonometry.
type Float interface {
	constraints.Float
}

// Signed is the element constraint for operations that are only
// meaningful with a sign (e.g. perpendicular vectors).
type Signed interface {
	constraints.Signed | constraints.Float
}
