// SPDX-License-Identifier: MIT
package matrix_test

import (
	"math"
	"testing"

	"github.com/katalvlaran/lvmath/matrix"
	"github.com/katalvlaran/lvmath/vector"
	"github.com/stretchr/testify/require"
)

func TestAxisRotations(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name string
		m    matrix.Mat4[float64]
		in   vector.Vec3[float64]
		want vector.Vec3[float64]
	}{
		{"X: Y to Z", matrix.RotationX(math.Pi / 2), vector.UnitY3[float64](), vector.UnitZ3[float64]()},
		{"Y: Z to X", matrix.RotationY(math.Pi / 2), vector.UnitZ3[float64](), vector.UnitX3[float64]()},
		{"Z: X to Y", matrix.RotationZ(math.Pi / 2), vector.UnitX3[float64](), vector.UnitY3[float64]()},
		{"Z half turn", matrix.RotationZ(math.Pi), vector.UnitX3[float64](), vector.V3(-1.0, 0, 0)},
	}
	for _, tc := range cases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			got := tc.m.TransformPoint(tc.in)
			require.True(t, got.ApproxEqual(tc.want, eps), "got %v", got)
			require.InDelta(t, 1.0, tc.m.Determinant(), eps)
		})
	}
}

func TestFromAxisAngle_MatchesAxisRotations(t *testing.T) {
	t.Parallel()

	const angle = 0.7
	opt := matrix.WithEpsilon(eps)
	require.True(t, matrix.FromAxisAngle(vector.UnitX3[float64](), angle).ApproxEqual(matrix.RotationX(angle), opt))
	require.True(t, matrix.FromAxisAngle(vector.UnitY3[float64](), angle).ApproxEqual(matrix.RotationY(angle), opt))
	require.True(t, matrix.FromAxisAngle(vector.V3(0.0, 0, 3), angle).ApproxEqual(matrix.RotationZ(angle), opt))
	require.Equal(t, matrix.Identity4[float64](), matrix.FromAxisAngle(vector.Zero3[float64](), angle))

	// rotation matrices are orthonormal: Rᵀ == R⁻¹
	r := matrix.FromAxisAngle(vector.V3(1.0, 2, 3), 1.1)
	inv, err := r.Inverse()
	require.NoError(t, err)
	require.True(t, r.Transpose().ApproxEqual(inv, opt))
}

func TestScaleAndTranslation_Order(t *testing.T) {
	t.Parallel()

	p := vector.V3(1.0, 0, 0)
	s := matrix.Scale(2.0, 2, 2)
	tr := matrix.Translation(1.0, 0, 0)

	require.Equal(t, vector.V3(3.0, 0, 0), s.Mul(tr).TransformPoint(p))
	require.Equal(t, vector.V3(4.0, 0, 0), tr.Mul(s).TransformPoint(p))
	require.Equal(t, vector.V3(2.0, 6, 12), matrix.Scale(2.0, 3, 4).TransformPoint(vector.V3(1.0, 2, 3)))
}

func TestOrthographic(t *testing.T) {
	t.Parallel()

	m, err := matrix.Orthographic(2.0, 2, -1, 1)
	require.NoError(t, err)
	require.Equal(t, vector.V3(0.5, 0.5, -0.5), m.TransformPoint(vector.V3(0.5, 0.5, 0.5)))

	m, err = matrix.OrthographicOffCenter(0.0, 4, 0, 2, 1, 3)
	require.NoError(t, err)
	require.True(t, m.TransformPoint(vector.V3(0.0, 0, -1)).ApproxEqual(vector.V3(-1.0, -1, -1), eps))
	require.True(t, m.TransformPoint(vector.V3(4.0, 2, -3)).ApproxEqual(vector.V3(1.0, 1, 1), eps))
}

func TestOrthographic_Degenerate(t *testing.T) {
	t.Parallel()

	_, err := matrix.OrthographicOffCenter(1.0, 1, 0, 1, 0, 1)
	require.ErrorIs(t, err, matrix.ErrInvalidArgument)
	require.Contains(t, err.Error(), "OrthographicOffCenter")

	_, err = matrix.OrthographicOffCenter(0.0, 1, 2, 2, 0, 1)
	require.ErrorIs(t, err, matrix.ErrInvalidArgument)

	_, err = matrix.Orthographic(1.0, 1, 5, 5)
	require.ErrorIs(t, err, matrix.ErrInvalidArgument)
	require.Contains(t, err.Error(), "Orthographic")
}

func TestPerspective_MapsClipPlanes(t *testing.T) {
	t.Parallel()

	const near, far = 1.0, 10.0
	m, err := matrix.PerspectiveFieldOfView(math.Pi/2, 1.0, near, far)
	require.NoError(t, err)

	require.True(t, m.TransformPoint(vector.V3(0, 0, -near)).ApproxEqual(vector.V3(0.0, 0, -1), eps))
	require.True(t, m.TransformPoint(vector.V3(0, 0, -far)).ApproxEqual(vector.V3(0.0, 0, 1), eps))
	// fovy of 90° puts the top edge of the near plane at y = near
	require.True(t, m.TransformPoint(vector.V3(0, near, -near)).ApproxEqual(vector.V3(0.0, 1, -1), eps))

	off, err := matrix.PerspectiveOffCenter(-1.0, 1, -1, 1, near, far)
	require.NoError(t, err)
	require.True(t, off.ApproxEqual(m, matrix.WithEpsilon(eps)))
	require.Equal(t, -1.0, off[11])
	require.Equal(t, 0.0, off[15])
}

func TestPerspective_Guards(t *testing.T) {
	t.Parallel()

	fov := []struct {
		name                    string
		fovy, aspect, near, far float64
	}{
		{"fovy zero", 0, 1, 1, 10},
		{"fovy above pi", 3.2, 1, 1, 10},
		{"aspect zero", 1, 0, 1, 10},
		{"aspect negative", 1, -1, 1, 10},
		{"near zero", 1, 1, 0, 10},
		{"far negative", 1, 1, 1, -10},
		{"near beyond far", 1, 1, 10, 1},
		{"near equals far", 1, 1, 5, 5},
	}
	for _, tc := range fov {
		tc := tc
		t.Run("FieldOfView/"+tc.name, func(t *testing.T) {
			t.Parallel()
			m, err := matrix.PerspectiveFieldOfView(tc.fovy, tc.aspect, tc.near, tc.far)
			require.ErrorIs(t, err, matrix.ErrInvalidArgument)
			require.Contains(t, err.Error(), "PerspectiveFieldOfView")
			require.Equal(t, matrix.Mat4[float64]{}, m)
		})
	}

	off := []struct {
		name      string
		near, far float64
	}{
		{"near zero", 0, 1},
		{"near negative", -1, 1},
		{"far zero", 1, 0},
		{"near equals far", 2, 2},
	}
	for _, tc := range off {
		tc := tc
		t.Run("OffCenter/"+tc.name, func(t *testing.T) {
			t.Parallel()
			_, err := matrix.PerspectiveOffCenter(-1, 1, -1, 1, tc.near, tc.far)
			require.ErrorIs(t, err, matrix.ErrInvalidArgument)
			require.Contains(t, err.Error(), "PerspectiveOffCenter")
		})
	}

	// π itself is accepted
	_, err := matrix.PerspectiveFieldOfView(math.Pi, 1.0, 1, 2)
	require.NoError(t, err)
}

func TestLookAt(t *testing.T) {
	t.Parallel()

	eye := vector.V3(0.0, 0, 5)
	m := matrix.LookAt(eye, vector.Zero3[float64](), vector.UnitY3[float64]())

	want := matrix.Translation(0.0, 0, -5)
	require.True(t, m.ApproxEqual(want, matrix.WithEpsilon(eps)), "got\n%v", m)
	require.True(t, m.TransformPoint(eye).ApproxEqual(vector.Zero3[float64](), eps))

	// a camera on +X looking at the origin sees the origin straight ahead
	m = matrix.LookAt(vector.V3(3.0, 0, 0), vector.Zero3[float64](), vector.UnitY3[float64]())
	require.True(t, m.TransformPoint(vector.Zero3[float64]()).ApproxEqual(vector.V3(0.0, 0, -3), eps))
	require.True(t, m.TransformPoint(vector.V3(0.0, 1, 0)).ApproxEqual(vector.V3(0.0, 1, -3), eps))
}
