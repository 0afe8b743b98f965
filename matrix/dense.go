// SPDX-License-Identifier: MIT

package matrix

import (
	"fmt"

	"github.com/katalvlaran/lvmath/scalar"
)

// dense is a square row-major float64 scratch matrix. Inversion runs on it
// regardless of the element type of the matrix being inverted, so integer
// matrices are inverted in floating point and truncated on the way back.
type dense struct {
	n    int       // rows == cols
	data []float64 // length n*n, row-major
}

// newDense copies src (row-major, n*n elements) into a float64 scratch.
func newDense[T scalar.Number](n int, src []T) *dense {
	d := &dense{n: n, data: make([]float64, n*n)}
	for i, v := range src {
		d.data[i] = float64(v)
	}

	return d
}

func (d *dense) at(row, col int) float64 { return d.data[row*d.n+col] }

func (d *dense) set(row, col int, v float64) { d.data[row*d.n+col] = v }

func (d *dense) swapRows(a, b int) {
	for k := 0; k < d.n; k++ {
		d.data[a*d.n+k], d.data[b*d.n+k] = d.data[b*d.n+k], d.data[a*d.n+k]
	}
}

func (d *dense) swapCols(a, b int) {
	for k := 0; k < d.n; k++ {
		d.data[k*d.n+a], d.data[k*d.n+b] = d.data[k*d.n+b], d.data[k*d.n+a]
	}
}

// formatRows renders n×n row-major data as "[a, b]\n[c, d]\n".
func formatRows[T any](n int, data []T) string {
	var s string
	for i := 0; i < n; i++ {
		s += "["
		for j := 0; j < n; j++ {
			s += fmt.Sprintf("%v", data[i*n+j])
			if j < n-1 {
				s += ", "
			}
		}
		s += "]\n"
	}

	return s
}
