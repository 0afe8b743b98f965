// SPDX-License-Identifier: MIT

package job

import (
	"fmt"

	"github.com/katalvlaran/lvmath/matrix"
	"github.com/katalvlaran/lvmath/quat"
	"github.com/katalvlaran/lvmath/scalar"
	"github.com/katalvlaran/lvmath/vector"
)

// Matrix returns the 4x4 transform of a single step.
func (s *Step) Matrix() (matrix.Mat4[float64], error) {
	if kinds := s.kinds(); len(kinds) != 1 {
		return matrix.Mat4[float64]{}, fmt.Errorf("%v: %w", kinds, ErrInvalidStep)
	}

	switch {
	case s.Translate != nil:
		t := s.Translate
		return matrix.Translation(t[0], t[1], t[2]), nil
	case s.Scale != nil:
		k := s.Scale
		return matrix.Scale(k[0], k[1], k[2]), nil
	case s.RotateX != nil:
		return matrix.RotationX(scalar.DegToRad(*s.RotateX)), nil
	case s.RotateY != nil:
		return matrix.RotationY(scalar.DegToRad(*s.RotateY)), nil
	case s.RotateZ != nil:
		return matrix.RotationZ(scalar.DegToRad(*s.RotateZ)), nil
	case s.AxisAngle != nil:
		return matrix.FromAxisAngle(v3(s.AxisAngle.Axis), scalar.DegToRad(s.AxisAngle.Degrees)), nil
	case s.Quat != nil:
		q := s.Quat
		return matrix.FromQuat(quat.New(q[0], q[1], q[2], q[3])), nil
	case s.LookAt != nil:
		up := v3(s.LookAt.Up)
		if up == (vector.Vec3[float64]{}) {
			up = vector.UnitY3[float64]()
		}
		return matrix.LookAt(v3(s.LookAt.Eye), v3(s.LookAt.Target), up), nil
	default:
		p := s.Perspective
		return matrix.PerspectiveFieldOfView(scalar.DegToRad(p.FovY), p.Aspect, p.Near, p.Far)
	}
}
