// SPDX-License-Identifier: MIT
// Package batch_test contains unit tests for parallel batch transforms.
package batch_test

import (
	"context"
	"math"
	"testing"

	"github.com/katalvlaran/lvmath/batch"
	"github.com/katalvlaran/lvmath/box"
	"github.com/katalvlaran/lvmath/matrix"
	"github.com/katalvlaran/lvmath/quat"
	"github.com/katalvlaran/lvmath/vector"
	"github.com/stretchr/testify/require"
)

const eps = 1e-9

// grid returns n deterministic points spread over a few units.
func grid(n int) []vector.Vec3[float64] {
	pts := make([]vector.Vec3[float64], n)
	for i := range pts {
		f := float64(i)
		pts[i] = vector.V3(math.Sin(f), math.Cos(f*0.5)*2, f/float64(n)-0.5)
	}

	return pts
}

func TestTransformPoints_MatchesSequential(t *testing.T) {
	t.Parallel()

	m := matrix.Scale(2.0, 3, 4).
		Mul(matrix.RotationY(0.4)).
		Mul(matrix.Translation(1.0, -1, 5))
	pts := grid(5000)

	cases := []struct {
		name string
		opts []batch.Option
	}{
		{"defaults", nil},
		{"one worker", []batch.Option{batch.WithWorkers(1)}},
		{"tiny chunks", []batch.Option{batch.WithChunkSize(7), batch.WithWorkers(4)}},
		{"single chunk", []batch.Option{batch.WithChunkSize(1 << 20)}},
	}
	for _, tc := range cases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			got, err := batch.TransformPoints(context.Background(), m, pts, tc.opts...)
			require.NoError(t, err)
			require.Len(t, got, len(pts))
			for i, p := range pts {
				require.Equal(t, m.TransformPoint(p), got[i], "index %d", i)
			}
		})
	}
}

func TestTransformPoints_InputUntouched(t *testing.T) {
	t.Parallel()

	pts := grid(10)
	orig := append([]vector.Vec3[float64](nil), pts...)
	_, err := batch.TransformPoints(context.Background(), matrix.Translation(1.0, 1, 1), pts, batch.WithChunkSize(3))
	require.NoError(t, err)
	require.Equal(t, orig, pts)
}

func TestTransformDirs_IgnoresTranslation(t *testing.T) {
	t.Parallel()

	dirs := []vector.Vec3[float64]{vector.UnitX3[float64](), vector.UnitZ3[float64]()}
	got, err := batch.TransformDirs(context.Background(), matrix.Translation(5.0, 5, 5), dirs)
	require.NoError(t, err)
	require.Equal(t, dirs, got)
}

func TestRotateVectors(t *testing.T) {
	t.Parallel()

	q := quat.FromAxisAngle(vector.UnitZ3[float64](), math.Pi/2)
	vs := []vector.Vec3[float64]{vector.UnitX3[float64](), vector.UnitY3[float64](), vector.UnitZ3[float64]()}
	want := []vector.Vec3[float64]{vector.UnitY3[float64](), vector.V3(-1.0, 0, 0), vector.UnitZ3[float64]()}

	got, err := batch.RotateVectors(context.Background(), q, vs, batch.WithChunkSize(1))
	require.NoError(t, err)
	for i := range want {
		require.True(t, got[i].ApproxEqual(want[i], eps), "index %d: got %v", i, got[i])
	}
}

func TestBounds(t *testing.T) {
	t.Parallel()

	pts := grid(3000)
	got, err := batch.Bounds(context.Background(), pts, batch.WithChunkSize(100), batch.WithWorkers(3))
	require.NoError(t, err)
	require.Equal(t, box.FromPoints3(pts...), got)
	for _, p := range pts {
		require.True(t, got.Contains(p))
	}

	empty, err := batch.Bounds[float64](context.Background(), nil)
	require.NoError(t, err)
	require.True(t, empty.IsEmpty())
}

func TestEmptyInput(t *testing.T) {
	t.Parallel()

	got, err := batch.TransformPoints[float64](context.Background(), matrix.Identity4[float64](), nil)
	require.NoError(t, err)
	require.Empty(t, got)
}

func TestNilContext(t *testing.T) {
	t.Parallel()

	var ctx context.Context
	_, err := batch.TransformPoints(ctx, matrix.Identity4[float64](), grid(3))
	require.ErrorIs(t, err, batch.ErrNilContext)
	require.Contains(t, err.Error(), "TransformPoints")

	_, err = batch.RotateVectors(ctx, quat.Identity[float64](), grid(3))
	require.ErrorIs(t, err, batch.ErrNilContext)

	b, err := batch.Bounds(ctx, grid(3))
	require.ErrorIs(t, err, batch.ErrNilContext)
	require.True(t, b.IsEmpty())
}

func TestCancelledContext(t *testing.T) {
	t.Parallel()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	got, err := batch.TransformPoints(ctx, matrix.Identity4[float64](), grid(100))
	require.ErrorIs(t, err, context.Canceled)
	require.Nil(t, got)

	_, err = batch.Bounds(ctx, grid(100))
	require.ErrorIs(t, err, context.Canceled)
}

func TestOptions_Panic(t *testing.T) {
	t.Parallel()

	require.Panics(t, func() { batch.WithWorkers(0) })
	require.Panics(t, func() { batch.WithChunkSize(-1) })
	require.NotPanics(t, func() { batch.WithWorkers(1) })
}
