// SPDX-License-Identifier: MIT

package matrix

import (
	"golang.org/x/image/math/f32"
	"golang.org/x/image/math/f64"
)

// The golang.org/x/image/math matrices are row-major with the same element
// order as Mat3 and Mat4, so conversions are plain array copies.

// ToF32Mat3 returns m as an f32.Mat3.
func ToF32Mat3(m Mat3[float32]) f32.Mat3 { return f32.Mat3(m) }

// ToF32Mat4 returns m as an f32.Mat4.
func ToF32Mat4(m Mat4[float32]) f32.Mat4 { return f32.Mat4(m) }

// FromF32Mat3 converts an f32.Mat3.
func FromF32Mat3(a f32.Mat3) Mat3[float32] { return Mat3[float32](a) }

// FromF32Mat4 converts an f32.Mat4.
func FromF32Mat4(a f32.Mat4) Mat4[float32] { return Mat4[float32](a) }

// ToF64Mat3 returns m as an f64.Mat3.
func ToF64Mat3(m Mat3[float64]) f64.Mat3 { return f64.Mat3(m) }

// ToF64Mat4 returns m as an f64.Mat4.
func ToF64Mat4(m Mat4[float64]) f64.Mat4 { return f64.Mat4(m) }

// FromF64Mat3 converts an f64.Mat3.
func FromF64Mat3(a f64.Mat3) Mat3[float64] { return Mat3[float64](a) }

// FromF64Mat4 converts an f64.Mat4.
func FromF64Mat4(a f64.Mat4) Mat4[float64] { return Mat4[float64](a) }
