// SPDX-License-Identifier: MIT

// Package matrix provides fixed-size square matrices for 2-D and 3-D
// transforms.
//
// Mat2, Mat3 and Mat4 are value types over any scalar.Number, stored
// row-major in flat arrays (element (r, c) of a Mat4 is m[4*r+c]). The
// zero value is the zero matrix; IdentityN returns the identity.
//
// Conventions:
//
//   - Vectors are rows and transform as v·M. The translation of a Mat4
//     lives in row 3.
//   - a.Mul(b) is the product a·b, which applies a first and b second.
//     Composition is therefore read left to right:
//     Scale(...).Mul(RotationZ(...)).Mul(Translation(...)).
//   - Angles taken by factories are radians; Rotate(deg) takes degrees.
//
// Inversion runs Gauss–Jordan elimination with full pivoting on a float64
// scratch copy. A matrix without a usable pivot yields ErrSingular; there is
// no silent fallback to the input.
//
// Projection factories validate their clip planes and report
// ErrInvalidArgument wrapped with the factory name. Indexers report
// ErrOutOfRange. All errors are matched with errors.Is.
//
// Rotations convert to and from quat.Quat via FromQuat3, FromQuat,
// QuatFromMat3 and QuatFromMat4. Mat3/Mat4 of float32 and float64 convert
// losslessly to the golang.org/x/image/math/f32 and f64 layouts.
package matrix
