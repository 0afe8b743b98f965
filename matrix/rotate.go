// SPDX-License-Identifier: MIT

package matrix

import (
	"math"

	"github.com/katalvlaran/lvmath/scalar"
)

// sinCosDeg returns sin and cos of an angle given in degrees, converted
// with scalar.DTOR.
func sinCosDeg(deg float64) (float64, float64) {
	return math.Sincos(deg * scalar.DTOR)
}
