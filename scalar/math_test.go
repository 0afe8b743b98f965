package scalar_test

import (
	"math"
	"testing"

	"github.com/katalvlaran/lvmath/scalar"
	"github.com/stretchr/testify/require"
)

// TestSqrt_Types checks the float32/float64/integer dispatch paths.
func TestSqrt_Types(t *testing.T) {
	t.Parallel()

	require.Equal(t, float32(3), scalar.Sqrt(float32(9)))
	require.Equal(t, 1.5, scalar.Sqrt(2.25))
	require.Equal(t, 4, scalar.Sqrt(17)) // truncated
	require.Equal(t, uint8(5), scalar.Sqrt(uint8(25)))
}

func TestTrig_Float32MatchesFloat64(t *testing.T) {
	t.Parallel()

	for _, a := range []float64{0, 0.25, math.Pi / 3, math.Pi / 2, 2.5} {
		require.InDelta(t, math.Sin(a), float64(scalar.Sin(float32(a))), 1e-6)
		require.InDelta(t, math.Cos(a), float64(scalar.Cos(float32(a))), 1e-6)
		require.InDelta(t, math.Sin(a), scalar.Sin(a), 0)
	}
	require.InDelta(t, 1.0, scalar.Tan(math.Pi/4), 1e-12)
	require.InDelta(t, math.Pi/2, scalar.Acos(0.0), 1e-12)
	require.True(t, math.IsNaN(scalar.Acos(1.5)))
}

func TestDegRad(t *testing.T) {
	t.Parallel()

	require.InDelta(t, math.Pi, scalar.DegToRad(180.0), 1e-12)
	require.InDelta(t, 90.0, scalar.RadToDeg(math.Pi/2), 1e-12)
	require.InDelta(t, math.Pi/2, float64(scalar.DegToRad(float32(90))), 1e-6)
}

func TestHelpers(t *testing.T) {
	t.Parallel()

	require.Equal(t, 3, scalar.Abs(-3))
	require.Equal(t, uint(3), scalar.Abs(uint(3)))
	require.Equal(t, 5, scalar.Clamp(9, 0, 5))
	require.Equal(t, 0, scalar.Clamp(-2, 0, 5))
	require.Equal(t, 2.5, scalar.Lerp(0.0, 10.0, 0.25))
	require.Equal(t, 15.0, scalar.Lerp(0.0, 10.0, 1.5)) // unclamped
	require.True(t, scalar.ApproxEqual(uint(3), uint(5), 2))
	require.False(t, scalar.ApproxEqual(uint(5), uint(3), 1))
	require.True(t, math.IsInf(scalar.Inf[float64](1), 1))
	require.True(t, math.IsInf(float64(scalar.Inf[float32](-1)), -1))
}
