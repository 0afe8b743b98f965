// SPDX-License-Identifier: MIT
package batch_test

import (
	"context"
	"fmt"
	"testing"

	"github.com/katalvlaran/lvmath/batch"
	"github.com/katalvlaran/lvmath/matrix"
	"github.com/katalvlaran/lvmath/vector"
)

var sinkPts []vector.Vec3[float64]

func BenchmarkTransformPoints(b *testing.B) {
	m := matrix.RotationZ(0.3).Mul(matrix.Translation(1.0, 2, 3))
	pts := grid(1 << 16)
	for _, workers := range []int{1, 4} {
		b.Run(fmt.Sprintf("workers=%d", workers), func(b *testing.B) {
			b.ReportAllocs()
			for i := 0; i < b.N; i++ {
				out, err := batch.TransformPoints(context.Background(), m, pts, batch.WithWorkers(workers))
				if err != nil {
					b.Fatal(err)
				}
				sinkPts = out
			}
		})
	}
}
