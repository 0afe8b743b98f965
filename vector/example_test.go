package vector_test

import (
	"fmt"

	"github.com/katalvlaran/lvmath/vector"
)

// ExampleVec3_Cross shows the right-handed cross product of the X and Y axes.
func ExampleVec3_Cross() {
	x := vector.UnitX3[float64]()
	y := vector.UnitY3[float64]()
	fmt.Println(x.Cross(y))
	// Output:
	// (0, 0, 1)
}

// ExampleLerp2 interpolates half-way between two points.
func ExampleLerp2() {
	a := vector.V2(0.0, 10.0)
	b := vector.V2(4.0, 20.0)
	fmt.Println(vector.Lerp2(a, b, 0.5))
	// Output:
	// (2, 15)
}
