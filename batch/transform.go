// SPDX-License-Identifier: MIT

package batch

import (
	"context"
	"sync"

	"github.com/katalvlaran/lvmath/box"
	"github.com/katalvlaran/lvmath/matrix"
	"github.com/katalvlaran/lvmath/quat"
	"github.com/katalvlaran/lvmath/scalar"
	"github.com/katalvlaran/lvmath/vector"
)

// TransformPoints returns m.TransformPoint(p) for every p, in order.
func TransformPoints[T scalar.Float](ctx context.Context, m matrix.Mat4[T], pts []vector.Vec3[T], opts ...Option) ([]vector.Vec3[T], error) {
	return mapSlice(ctx, opTransformPoints, pts, m.TransformPoint, opts...)
}

// TransformDirs returns m.TransformDir(d) for every d, in order.
func TransformDirs[T scalar.Float](ctx context.Context, m matrix.Mat4[T], dirs []vector.Vec3[T], opts ...Option) ([]vector.Vec3[T], error) {
	return mapSlice(ctx, opTransformDirs, dirs, m.TransformDir, opts...)
}

// RotateVectors returns q.Rotate(v) for every v, in order.
func RotateVectors[T scalar.Float](ctx context.Context, q quat.Quat[T], vs []vector.Vec3[T], opts ...Option) ([]vector.Vec3[T], error) {
	return mapSlice(ctx, opRotateVectors, vs, q.Rotate, opts...)
}

// Bounds returns the smallest box holding every point. Each chunk builds
// its own box; the partial boxes are merged with EnlargeBox. No points give
// the empty box.
func Bounds[T scalar.Float](ctx context.Context, pts []vector.Vec3[T], opts ...Option) (box.Box3[T], error) {
	if ctx == nil {
		return box.Empty3[T](), batchErrorf(opBounds, ErrNilContext)
	}

	var (
		mu  sync.Mutex
		acc = box.Empty3[T]()
	)
	err := chunked(ctx, len(pts), gatherOptions(opts...), func(lo, hi int) {
		part := box.FromPoints3(pts[lo:hi]...)
		mu.Lock()
		acc = acc.EnlargeBox(part)
		mu.Unlock()
	})
	if err != nil {
		return box.Empty3[T](), batchErrorf(opBounds, err)
	}

	return acc, nil
}
