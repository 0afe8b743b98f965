// Package lvmath is a small linear-algebra toolkit for 2-D and 3-D
// geometry: vectors, square matrices, quaternions and bounding boxes,
// generic over the scalar type.
//
// What is in the box?
//
//   - Vectors: Vec2, Vec3, Vec4 over any integer or float type, with
//     arithmetic, dot/cross products, normalization and interpolation
//   - Matrices: Mat2, Mat3, Mat4 with determinant, inverse, transpose and
//     4x4 factories (translation, scale, rotations, projections, look-at)
//   - Quaternions: construction from axis-angle or Euler angles, Hamilton
//     product, vector rotation and Slerp
//   - Bounding boxes: Box2, Box3 with enlarge, containment and
//     box-by-matrix transform
//   - Batch: parallel transforms of large point sets
//
// Every type is a plain value: copying is cheap, nothing is shared, and all
// operations are safe to call concurrently on independent values.
//
// Conventions shared by all packages:
//
//   - Vectors are rows; a point p is transformed as p·M and the translation
//     of a Mat4 sits in row 3.
//   - a.Mul(b) applies a first, then b.
//   - Angles are radians, except Mat*.Rotate and the lvxform job file,
//     which take degrees.
//
// Layout:
//
//	scalar/      numeric constraints and generic math helpers
//	vector/      Vec2/Vec3/Vec4 and boolean masks
//	quat/        Quat and Slerp
//	matrix/      Mat2/Mat3/Mat4, factories, quaternion conversion
//	box/         Box2/Box3 axis-aligned bounds
//	batch/       errgroup-based parallel transforms
//	cmd/lvxform/ CLI applying YAML transform jobs to points and glTF models
package lvmath
