// SPDX-License-Identifier: MIT

package vector

import (
	"golang.org/x/image/math/f32"
	"golang.org/x/image/math/f64"
)

// Conversions to and from the golang.org/x/image/math array layouts, which
// store components contiguously in X, Y, Z, W order.

// ToF32Vec2 returns v as an f32.Vec2.
func ToF32Vec2(v Vec2[float32]) f32.Vec2 { return f32.Vec2(v.Array()) }

// ToF32Vec3 returns v as an f32.Vec3.
func ToF32Vec3(v Vec3[float32]) f32.Vec3 { return f32.Vec3(v.Array()) }

// ToF32Vec4 returns v as an f32.Vec4.
func ToF32Vec4(v Vec4[float32]) f32.Vec4 { return f32.Vec4(v.Array()) }

// FromF32Vec2 converts an f32.Vec2.
func FromF32Vec2(a f32.Vec2) Vec2[float32] { return Vec2[float32]{a[0], a[1]} }

// FromF32Vec3 converts an f32.Vec3.
func FromF32Vec3(a f32.Vec3) Vec3[float32] { return Vec3[float32]{a[0], a[1], a[2]} }

// FromF32Vec4 converts an f32.Vec4.
func FromF32Vec4(a f32.Vec4) Vec4[float32] { return Vec4[float32]{a[0], a[1], a[2], a[3]} }

// ToF64Vec2 returns v as an f64.Vec2.
func ToF64Vec2(v Vec2[float64]) f64.Vec2 { return f64.Vec2(v.Array()) }

// ToF64Vec3 returns v as an f64.Vec3.
func ToF64Vec3(v Vec3[float64]) f64.Vec3 { return f64.Vec3(v.Array()) }

// ToF64Vec4 returns v as an f64.Vec4.
func ToF64Vec4(v Vec4[float64]) f64.Vec4 { return f64.Vec4(v.Array()) }

// FromF64Vec2 converts an f64.Vec2.
func FromF64Vec2(a f64.Vec2) Vec2[float64] { return Vec2[float64]{a[0], a[1]} }

// FromF64Vec3 converts an f64.Vec3.
func FromF64Vec3(a f64.Vec3) Vec3[float64] { return Vec3[float64]{a[0], a[1], a[2]} }

// FromF64Vec4 converts an f64.Vec4.
func FromF64Vec4(a f64.Vec4) Vec4[float64] { return Vec4[float64]{a[0], a[1], a[2], a[3]} }
