// SPDX-License-Identifier: MIT

// Package box provides axis-aligned bounding boxes in two and three
// dimensions.
//
// A box is stored as its Min and Max corners. The empty box has Min = +Inf
// and Max = -Inf on every axis, which makes it the identity of Enlarge:
// enlarging an empty box by a point yields the degenerate box at that point,
// and enlarging it by another box yields that box.
//
// Boxes only grow. Enlarge and EnlargeBox return new values and never modify
// the receiver.
//
// Box3.Transform maps a box through a 4x4 matrix by enlarging a fresh empty
// box with all 8 transformed corners. The result is a conservative bound,
// not a tight refit of the transformed geometry.
package box
