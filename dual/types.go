// SPDX-License-Identifier: MIT
// Package dual: domain type, named constants and constructors.
// This file intentionally contains ONLY the Dual value type and the ways to
// build one. Arithmetic lives in arithmetic.go and pow.go; sentinel errors
// in errors.go, per the global conventions.

package dual

import "fmt"

// Dual is a dual number Real + Eps·ε with ε² = 0.
//
// Dual is a plain immutable value: operations never mutate their operands,
// two values are equal iff their fields are equal (==), and copying is free.
// Both fields are expected to be finite; NaN or ±Inf inputs are not rejected
// but propagate through arithmetic under the usual IEEE-754 rules.
type Dual struct {
	Real float64 // ordinary value
	Eps  float64 // infinitesimal (derivative) part
}

// Zero is the additive identity (0, 0).
var Zero = Dual{}

// One is the multiplicative identity (1, 0).
var One = Dual{Real: 1}

// E is the infinitesimal unit ε = (0, 1). Seeding x + 1·ε before a
// computation makes the Eps part of the result the derivative at x.
var E = Dual{Eps: 1}

// Scalar constrains the scalar operand types accepted by the canonical
// embedding and the scalar-on-the-left helpers in scalar.go.
type Scalar interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 | ~float32 | ~float64
}

// New builds a Dual from explicit real and epsilon parts.
// Complexity: O(1).
func New(real, eps float64) Dual {
	return Dual{Real: real, Eps: eps}
}

// FromReal embeds a plain scalar canonically: s ↦ (s, 0).
// Accepts any integer or float type for literal convenience.
// Complexity: O(1).
func FromReal[S Scalar](s S) Dual {
	return Dual{Real: float64(s)}
}

// IsZero reports whether d is exactly the additive identity.
// Structural test, not tolerance-based.
func (d Dual) IsZero() bool {
	return d == Zero
}

// IsUnity reports whether d is exactly the multiplicative identity.
// Structural test, not tolerance-based.
func (d Dual) IsUnity() bool {
	return d == One
}

// String renders d as "(r+eε)" with minimal digits, e.g. "(2.5-3ε)".
func (d Dual) String() string {
	return fmt.Sprintf("(%g%+gε)", d.Real, d.Eps)
}
