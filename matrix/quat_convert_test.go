// SPDX-License-Identifier: MIT
package matrix_test

import (
	"math"
	"testing"

	"github.com/katalvlaran/lvmath/matrix"
	"github.com/katalvlaran/lvmath/quat"
	"github.com/katalvlaran/lvmath/vector"
	"github.com/stretchr/testify/require"
)

func TestFromQuat_MatchesAxisAngle(t *testing.T) {
	t.Parallel()

	q := quat.FromAxisAngle(vector.UnitZ3[float64](), math.Pi/2)
	m := matrix.FromQuat(q)
	require.True(t, m.ApproxEqual(matrix.RotationZ(math.Pi/2), matrix.WithEpsilon(eps)), "got\n%v", m)

	axis := vector.V3(1.0, -2, 0.5)
	q = quat.FromAxisAngle(axis, 2.3)
	require.True(t, matrix.FromQuat(q).ApproxEqual(matrix.FromAxisAngle(axis, 2.3), matrix.WithEpsilon(eps)))
}

func TestFromQuat_AgreesWithRotate(t *testing.T) {
	t.Parallel()

	q := quat.FromEuler(0.3, -1.2, 2.0)
	m := matrix.FromQuat(q)
	for _, v := range []vector.Vec3[float64]{
		vector.UnitX3[float64](),
		vector.V3(1.0, 2, 3),
		vector.V3(-4.0, 0.5, 7),
	} {
		require.True(t, m.TransformPoint(v).ApproxEqual(q.Rotate(v), eps), "v=%v", v)
	}
}

func TestFromQuat_Unnormalized(t *testing.T) {
	t.Parallel()

	q := quat.FromAxisAngle(vector.UnitY3[float64](), 0.8)
	require.True(t, matrix.FromQuat3(q.Scale(3)).ApproxEqual(matrix.FromQuat3(q), matrix.WithEpsilon(eps)))
	require.Equal(t, matrix.Identity3[float64](), matrix.FromQuat3(quat.Quat[float64]{}))
	require.Equal(t, matrix.Identity4[float64](), matrix.FromQuat(quat.Identity[float64]()))
}

// TestQuatRoundTrip drives every branch of the matrix-to-quaternion
// extraction: positive trace and each dominant diagonal element.
func TestQuatRoundTrip(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name string
		q    quat.Quat[float64]
	}{
		{"identity", quat.Identity[float64]()},
		{"small angle", quat.FromAxisAngle(vector.V3(1.0, 1, 1), 0.2)},
		{"half turn X", quat.FromAxisAngle(vector.UnitX3[float64](), math.Pi)},
		{"half turn Y", quat.FromAxisAngle(vector.UnitY3[float64](), math.Pi)},
		{"half turn Z", quat.FromAxisAngle(vector.UnitZ3[float64](), math.Pi)},
		{"near half turn", quat.FromAxisAngle(vector.V3(0.2, 0.3, 1), 3.0)},
		{"euler", quat.FromEuler(1.0, 2.0, -0.5)},
	}
	for _, tc := range cases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			got := matrix.QuatFromMat4(matrix.FromQuat(tc.q))
			require.True(t, got.SameRotation(tc.q, 1e-9), "got %v want %v", got, tc.q)
			require.InDelta(t, 1.0, got.Length(), 1e-9)

			got3 := matrix.QuatFromMat3(matrix.FromQuat3(tc.q))
			require.True(t, got3.SameRotation(tc.q, 1e-9))
		})
	}
}

func TestQuatFromMat3_AxisRotations(t *testing.T) {
	t.Parallel()

	q := matrix.QuatFromMat4(matrix.RotationZ(math.Pi / 2))
	want := quat.FromAxisAngle(vector.UnitZ3[float64](), math.Pi/2)
	require.True(t, q.SameRotation(want, eps), "got %v", q)

	got := q.Rotate(vector.UnitX3[float64]())
	require.True(t, got.ApproxEqual(vector.UnitY3[float64](), eps))
}
