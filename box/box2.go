// SPDX-License-Identifier: MIT

package box

import (
	"fmt"

	"github.com/katalvlaran/lvmath/scalar"
	"github.com/katalvlaran/lvmath/vector"
)

// Box2 is an axis-aligned rectangle.
type Box2[T scalar.Float] struct {
	Min, Max vector.Vec2[T]
}

// Empty2 returns the empty rectangle.
func Empty2[T scalar.Float]() Box2[T] {
	inf, ninf := scalar.Inf[T](1), scalar.Inf[T](-1)

	return Box2[T]{
		Min: vector.V2(inf, inf),
		Max: vector.V2(ninf, ninf),
	}
}

// New2 returns the rectangle with the given extents. The extents are taken
// as given; pass min > max on an axis to describe an empty box.
func New2[T scalar.Float](xmin, xmax, ymin, ymax T) Box2[T] {
	return Box2[T]{
		Min: vector.V2(xmin, ymin),
		Max: vector.V2(xmax, ymax),
	}
}

// FromCorners2 returns the smallest rectangle holding both corners, in any
// order.
func FromCorners2[T scalar.Float](a, b vector.Vec2[T]) Box2[T] {
	return Box2[T]{Min: a.ComponentMin(b), Max: a.ComponentMax(b)}
}

func (b Box2[T]) XMin() T { return b.Min.X }
func (b Box2[T]) XMax() T { return b.Max.X }
func (b Box2[T]) YMin() T { return b.Min.Y }
func (b Box2[T]) YMax() T { return b.Max.Y }

// IsEmpty reports whether min exceeds max on any axis.
func (b Box2[T]) IsEmpty() bool {
	return b.Min.X > b.Max.X || b.Min.Y > b.Max.Y
}

// Enlarge returns the smallest box holding b and p.
func (b Box2[T]) Enlarge(p vector.Vec2[T]) Box2[T] {
	return Box2[T]{Min: b.Min.ComponentMin(p), Max: b.Max.ComponentMax(p)}
}

// EnlargeBox returns the smallest box holding b and o.
func (b Box2[T]) EnlargeBox(o Box2[T]) Box2[T] {
	return Box2[T]{Min: b.Min.ComponentMin(o.Min), Max: b.Max.ComponentMax(o.Max)}
}

// Contains reports whether p lies inside b, boundary included.
func (b Box2[T]) Contains(p vector.Vec2[T]) bool {
	return p.X >= b.Min.X && p.X <= b.Max.X &&
		p.Y >= b.Min.Y && p.Y <= b.Max.Y
}

// ContainsBox reports whether o lies inside b. An empty o is contained by
// every box.
func (b Box2[T]) ContainsBox(o Box2[T]) bool {
	if o.IsEmpty() {
		return true
	}

	return b.Contains(o.Min) && b.Contains(o.Max)
}

// Intersects reports whether b and o share at least one point.
func (b Box2[T]) Intersects(o Box2[T]) bool {
	if b.IsEmpty() || o.IsEmpty() {
		return false
	}

	return b.Min.X <= o.Max.X && o.Min.X <= b.Max.X &&
		b.Min.Y <= o.Max.Y && o.Min.Y <= b.Max.Y
}

// Size returns Max - Min, or zero for an empty box.
func (b Box2[T]) Size() vector.Vec2[T] {
	if b.IsEmpty() {
		return vector.Vec2[T]{}
	}

	return b.Max.Sub(b.Min)
}

// Center returns the midpoint, or zero for an empty box.
func (b Box2[T]) Center() vector.Vec2[T] {
	if b.IsEmpty() {
		return vector.Vec2[T]{}
	}

	return b.Min.Add(b.Max).Scale(0.5)
}

// Area returns the area, or zero for an empty box.
func (b Box2[T]) Area() T {
	s := b.Size()

	return s.X * s.Y
}

// Corners returns the four corners counter-clockwise from Min.
func (b Box2[T]) Corners() [4]vector.Vec2[T] {
	return [4]vector.Vec2[T]{
		b.Min,
		vector.V2(b.Max.X, b.Min.Y),
		b.Max,
		vector.V2(b.Min.X, b.Max.Y),
	}
}

// Equal reports exact equality of both corners.
func (b Box2[T]) Equal(o Box2[T]) bool { return b == o }

func (b Box2[T]) String() string {
	return fmt.Sprintf("Box2{min: %v, max: %v}", b.Min, b.Max)
}
