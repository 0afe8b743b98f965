// SPDX-License-Identifier: MIT

package box

import (
	"fmt"

	"github.com/katalvlaran/lvmath/matrix"
	"github.com/katalvlaran/lvmath/scalar"
	"github.com/katalvlaran/lvmath/vector"
)

// Box3 is an axis-aligned box.
type Box3[T scalar.Float] struct {
	Min, Max vector.Vec3[T]
}

// Empty3 returns the empty box.
func Empty3[T scalar.Float]() Box3[T] {
	inf, ninf := scalar.Inf[T](1), scalar.Inf[T](-1)

	return Box3[T]{
		Min: vector.V3(inf, inf, inf),
		Max: vector.V3(ninf, ninf, ninf),
	}
}

// New3 returns the box with the given extents, taken as given.
func New3[T scalar.Float](xmin, xmax, ymin, ymax, zmin, zmax T) Box3[T] {
	return Box3[T]{
		Min: vector.V3(xmin, ymin, zmin),
		Max: vector.V3(xmax, ymax, zmax),
	}
}

// FromCorners3 returns the smallest box holding both corners, in any order.
func FromCorners3[T scalar.Float](a, b vector.Vec3[T]) Box3[T] {
	return Box3[T]{Min: a.ComponentMin(b), Max: a.ComponentMax(b)}
}

// FromPoints3 returns the smallest box holding every point; no points give
// the empty box.
func FromPoints3[T scalar.Float](pts ...vector.Vec3[T]) Box3[T] {
	b := Empty3[T]()
	for _, p := range pts {
		b = b.Enlarge(p)
	}

	return b
}

func (b Box3[T]) XMin() T { return b.Min.X }
func (b Box3[T]) XMax() T { return b.Max.X }
func (b Box3[T]) YMin() T { return b.Min.Y }
func (b Box3[T]) YMax() T { return b.Max.Y }
func (b Box3[T]) ZMin() T { return b.Min.Z }
func (b Box3[T]) ZMax() T { return b.Max.Z }

// IsEmpty reports whether min exceeds max on any axis.
func (b Box3[T]) IsEmpty() bool {
	return b.Min.X > b.Max.X || b.Min.Y > b.Max.Y || b.Min.Z > b.Max.Z
}

// Enlarge returns the smallest box holding b and p.
func (b Box3[T]) Enlarge(p vector.Vec3[T]) Box3[T] {
	return Box3[T]{Min: b.Min.ComponentMin(p), Max: b.Max.ComponentMax(p)}
}

// EnlargeBox returns the smallest box holding b and o.
func (b Box3[T]) EnlargeBox(o Box3[T]) Box3[T] {
	return Box3[T]{Min: b.Min.ComponentMin(o.Min), Max: b.Max.ComponentMax(o.Max)}
}

// Contains reports whether p lies inside b, boundary included.
func (b Box3[T]) Contains(p vector.Vec3[T]) bool {
	return p.X >= b.Min.X && p.X <= b.Max.X &&
		p.Y >= b.Min.Y && p.Y <= b.Max.Y &&
		p.Z >= b.Min.Z && p.Z <= b.Max.Z
}

// ContainsBox reports whether o lies inside b. An empty o is contained by
// every box.
func (b Box3[T]) ContainsBox(o Box3[T]) bool {
	if o.IsEmpty() {
		return true
	}

	return b.Contains(o.Min) && b.Contains(o.Max)
}

// Intersects reports whether b and o share at least one point.
func (b Box3[T]) Intersects(o Box3[T]) bool {
	if b.IsEmpty() || o.IsEmpty() {
		return false
	}

	return b.Min.X <= o.Max.X && o.Min.X <= b.Max.X &&
		b.Min.Y <= o.Max.Y && o.Min.Y <= b.Max.Y &&
		b.Min.Z <= o.Max.Z && o.Min.Z <= b.Max.Z
}

// Size returns Max - Min, or zero for an empty box.
func (b Box3[T]) Size() vector.Vec3[T] {
	if b.IsEmpty() {
		return vector.Vec3[T]{}
	}

	return b.Max.Sub(b.Min)
}

// Center returns the midpoint, or zero for an empty box.
func (b Box3[T]) Center() vector.Vec3[T] {
	if b.IsEmpty() {
		return vector.Vec3[T]{}
	}

	return b.Min.Add(b.Max).Scale(0.5)
}

// Volume returns the volume, or zero for an empty box.
func (b Box3[T]) Volume() T {
	s := b.Size()

	return s.X * s.Y * s.Z
}

// Diagonal returns the length of the Min-Max diagonal.
func (b Box3[T]) Diagonal() T { return b.Size().Length() }

// Corners returns the eight corners. Bit i of the index selects Max on
// axis i (bit 0 = X, bit 1 = Y, bit 2 = Z).
func (b Box3[T]) Corners() [8]vector.Vec3[T] {
	var c [8]vector.Vec3[T]
	for i := range c {
		p := b.Min
		if i&1 != 0 {
			p.X = b.Max.X
		}
		if i&2 != 0 {
			p.Y = b.Max.Y
		}
		if i&4 != 0 {
			p.Z = b.Max.Z
		}
		c[i] = p
	}

	return c
}

// Transform returns the box enclosing the 8 corners of b mapped through m
// with matrix.Mat4.TransformPoint. An empty box stays empty.
func (b Box3[T]) Transform(m matrix.Mat4[T]) Box3[T] {
	if b.IsEmpty() {
		return Empty3[T]()
	}

	r := Empty3[T]()
	for _, c := range b.Corners() {
		r = r.Enlarge(m.TransformPoint(c))
	}

	return r
}

// XY drops the Z extent.
func (b Box3[T]) XY() Box2[T] {
	return Box2[T]{Min: b.Min.XY(), Max: b.Max.XY()}
}

// Equal reports exact equality of both corners.
func (b Box3[T]) Equal(o Box3[T]) bool { return b == o }

func (b Box3[T]) String() string {
	return fmt.Sprintf("Box3{min: %v, max: %v}", b.Min, b.Max)
}
