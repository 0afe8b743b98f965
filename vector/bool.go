// SPDX-License-Identifier: MIT

package vector

import "fmt"

// Bool2 is a 2-component boolean mask.
type Bool2 struct{ X, Y bool }

// Bool3 is a 3-component boolean mask.
type Bool3 struct{ X, Y, Z bool }

// Bool4 is a 4-component boolean mask.
type Bool4 struct{ X, Y, Z, W bool }

// All reports whether every component is true.
func (b Bool2) All() bool { return b.X && b.Y }

// Any reports whether at least one component is true.
func (b Bool2) Any() bool { return b.X || b.Y }

// Not returns the componentwise negation.
func (b Bool2) Not() Bool2 { return Bool2{!b.X, !b.Y} }

// And returns the componentwise conjunction.
func (b Bool2) And(o Bool2) Bool2 { return Bool2{b.X && o.X, b.Y && o.Y} }

// Or returns the componentwise disjunction.
func (b Bool2) Or(o Bool2) Bool2 { return Bool2{b.X || o.X, b.Y || o.Y} }

// Equal reports componentwise equality.
func (b Bool2) Equal(o Bool2) bool { return b == o }

func (b Bool2) String() string { return fmt.Sprintf("(%t, %t)", b.X, b.Y) }

// All reports whether every component is true.
func (b Bool3) All() bool { return b.X && b.Y && b.Z }

// Any reports whether at least one component is true.
func (b Bool3) Any() bool { return b.X || b.Y || b.Z }

// Not returns the componentwise negation.
func (b Bool3) Not() Bool3 { return Bool3{!b.X, !b.Y, !b.Z} }

// And returns the componentwise conjunction.
func (b Bool3) And(o Bool3) Bool3 { return Bool3{b.X && o.X, b.Y && o.Y, b.Z && o.Z} }

// Or returns the componentwise disjunction.
func (b Bool3) Or(o Bool3) Bool3 { return Bool3{b.X || o.X, b.Y || o.Y, b.Z || o.Z} }

// Equal reports componentwise equality.
func (b Bool3) Equal(o Bool3) bool { return b == o }

func (b Bool3) String() string { return fmt.Sprintf("(%t, %t, %t)", b.X, b.Y, b.Z) }

// All reports whether every component is true.
func (b Bool4) All() bool { return b.X && b.Y && b.Z && b.W }

// Any reports whether at least one component is true.
func (b Bool4) Any() bool { return b.X || b.Y || b.Z || b.W }

// Not returns the componentwise negation.
func (b Bool4) Not() Bool4 { return Bool4{!b.X, !b.Y, !b.Z, !b.W} }

// And returns the componentwise conjunction.
func (b Bool4) And(o Bool4) Bool4 {
	return Bool4{b.X && o.X, b.Y && o.Y, b.Z && o.Z, b.W && o.W}
}

// Or returns the componentwise disjunction.
func (b Bool4) Or(o Bool4) Bool4 {
	return Bool4{b.X || o.X, b.Y || o.Y, b.Z || o.Z, b.W || o.W}
}

// Equal reports componentwise equality.
func (b Bool4) Equal(o Bool4) bool { return b == o }

func (b Bool4) String() string {
	return fmt.Sprintf("(%t, %t, %t, %t)", b.X, b.Y, b.Z, b.W)
}
