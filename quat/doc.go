// Package quat implements rotation quaternions over float32 or float64.
//
// A Quat stores a vector part V and a scalar part W. Beware: the zero value
// Quat{} is (0, 0, 0, 0), which is NOT the identity rotation. Use
// Identity[T]() whenever a "no rotation" value is required.
//
// ✨ Key features:
//   - Constructors from axis+angle (FromAxisAngle, MakeRotate), components,
//     vectors and XYZ Euler angles.
//   - Normalize / Conjugate / Invert with documented degenerate-case guards.
//   - Slerp with shortest-path selection and a tunable linear fallback
//     (SlerpLinearThreshold).
//   - Rotate / Transform apply the sandwich product q·v·q⁻¹ to a vector.
//
// Conversions to and from rotation matrices live in package matrix
// (matrix.FromQuat, matrix.QuatFromMat3), which keeps the dependency
// graph acyclic.
package quat
