// SPDX-License-Identifier: MIT
// Package matrix_test provides benchmarks for the hot 4x4 operations.
package matrix_test

import (
	"testing"

	"github.com/katalvlaran/lvmath/matrix"
	"github.com/katalvlaran/lvmath/vector"
)

// sinks to defeat dead-code elimination
var (
	sinkM4  matrix.Mat4[float64]
	sinkM4f matrix.Mat4[float32]
	sinkV3  vector.Vec3[float64]
	sinkF   float64
)

func benchModel() matrix.Mat4[float64] {
	return matrix.Scale(1.5, 2, 0.5).
		Mul(matrix.FromAxisAngle(vector.V3(1.0, 2, 3), 0.7)).
		Mul(matrix.Translation(4.0, -2, 9))
}

func BenchmarkMat4Mul(b *testing.B) {
	b.ReportAllocs()
	a, c := benchModel(), sample4
	for i := 0; i < b.N; i++ {
		sinkM4 = a.Mul(c)
	}
}

func BenchmarkMat4MulFloat32(b *testing.B) {
	b.ReportAllocs()
	a := matrix.Convert4[float32](benchModel())
	c := matrix.Convert4[float32](sample4)
	for i := 0; i < b.N; i++ {
		sinkM4f = a.Mul(c)
	}
}

func BenchmarkMat4Inverse(b *testing.B) {
	b.ReportAllocs()
	a := benchModel()
	for i := 0; i < b.N; i++ {
		m, err := a.Inverse()
		if err != nil {
			b.Fatal(err)
		}
		sinkM4 = m
	}
}

func BenchmarkMat4Determinant(b *testing.B) {
	b.ReportAllocs()
	a := benchModel()
	for i := 0; i < b.N; i++ {
		sinkF = a.Determinant()
	}
}

func BenchmarkMat4TransformPoint(b *testing.B) {
	b.ReportAllocs()
	a := benchModel()
	p := vector.V3(1.0, 2, 3)
	for i := 0; i < b.N; i++ {
		sinkV3 = a.TransformPoint(p)
	}
}
