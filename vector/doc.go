// Package vector provides fixed-size 2-, 3- and 4-component vectors that are
// generic over their scalar type, together with bool mask vectors.
//
// 🚀 What is in here?
//
//	Vec2[T], Vec3[T], Vec4[T]  plain comparable value types (X, Y[, Z][, W])
//	Bool2, Bool3, Bool4         componentwise comparison masks
//
// One implementation serves every scalar kind: Vec3[int32], Vec3[uint16],
// Vec3[float32] and Vec3[float64] share the same code. Every operation is a
// pure value-receiver method that returns a new vector; nothing is mutated
// and nothing is allocated on the heap.
//
// ⚙️ Usage:
//
//	a := vector.V3(1.0, 2.0, 3.0)
//	b := vector.V3(4.0, 5.0, 6.0)
//	n := a.Cross(b).Normalize()
//	m := vector.Lerp3(a, b, 0.5)
//
// Normalizing a zero-length vector returns it unchanged instead of
// producing NaN (or panicking on integer division by zero).
//
// For interop with other numeric libraries, ToF32Vec3/ToF64Vec3 and friends
// convert to the golang.org/x/image/math layouts.
package vector
