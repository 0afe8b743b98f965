// SPDX-License-Identifier: MIT

package quat

import "github.com/katalvlaran/lvmath/scalar"

// SlerpLinearThreshold is the half-angle cosine above which Slerp blends
// linearly instead of spherically, avoiding sin(θ)/sin(θ) with θ→0.
var SlerpLinearThreshold = 0.99

// Slerp interpolates between q1 (blend=0) and q2 (blend=1) along the
// shortest great arc.
//
// Degenerate inputs:
//   - both zero-length: Identity
//   - one zero-length: the other operand
//   - |cos(θ/2)| >= 1 (same or opposite orientation): q1
//
// The result is normalized; a zero-length blend yields Identity.
func Slerp[T scalar.Float](q1, q2 Quat[T], blend T) Quat[T] {
	if q1.LengthSquared() == 0 {
		if q2.LengthSquared() == 0 {
			return Identity[T]()
		}

		return q2
	} else if q2.LengthSquared() == 0 {
		return q1
	}

	cosHalfAngle := q1.Dot(q2)
	if cosHalfAngle >= 1 || cosHalfAngle <= -1 {
		return q1
	} else if cosHalfAngle < 0 {
		// take the shorter path
		q2 = q2.Neg()
		cosHalfAngle = -cosHalfAngle
	}

	var blendA, blendB T
	if float64(cosHalfAngle) < SlerpLinearThreshold {
		halfAngle := scalar.Acos(cosHalfAngle)
		oneOverSin := 1 / scalar.Sin(halfAngle)
		blendA = scalar.Sin(halfAngle*(1-blend)) * oneOverSin
		blendB = scalar.Sin(halfAngle*blend) * oneOverSin
	} else {
		blendA = 1 - blend
		blendB = blend
	}

	result := q1.Scale(blendA).Add(q2.Scale(blendB))
	if result.LengthSquared() > 0 {
		return result.Normalize()
	}

	return Identity[T]()
}
