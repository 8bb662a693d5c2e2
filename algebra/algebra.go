// SPDX-License-Identifier: MIT
// Package algebra: the Hypercomplex[T] capability contract.
// This file defines ONLY the generic interface. Concrete families implement
// it with value receivers; all operations are pure and allocate nothing
// beyond the returned value. Operations that can fail for domain reasons
// return a package sentinel from the implementing package, matched via
// errors.Is — implementations MUST NOT panic on user-triggered conditions.

package algebra

// Hypercomplex is the closed algebraic contract a hypercomplex number type
// must satisfy. T is the implementing type itself, so every operation
// preserves the concrete type across chained calls.
//
// Scalar forms (AddReal, AddInt, …) must be equivalent to embedding the
// scalar via the family's canonical embedding s ↦ (s, 0, …) and applying
// the T-T operation. This equivalence is a conformance law, exercised by
// the implementing package's tests.
//
// Complexity: every method is O(1) in the number of components.
type Hypercomplex[T any] interface {
	// IsZero reports whether the value is exactly the additive identity.
	// Structural equality, not tolerance-based.
	IsZero() bool

	// IsUnity reports whether the value is exactly the multiplicative
	// identity. Structural equality, not tolerance-based.
	IsUnity() bool

	// Neg returns the additive inverse.
	Neg() T

	// Add, Sub, Mul and Div are the ring operations, closed over T.
	// Div is defined per-family; it need not coincide with Mul by Inv.
	Add(other T) T
	Sub(other T) T
	Mul(other T) T
	Div(other T) T

	// Scalar forms: embed the scalar canonically, then apply the T-T op.
	AddReal(s float64) T
	SubReal(s float64) T
	MulReal(s float64) T
	DivReal(s float64) T
	AddInt(n int) T
	SubInt(n int) T
	MulInt(n int) T
	DivInt(n int) T

	// PowInt, PowReal and Pow are the three exponentiation forms.
	// Each fails with a sentinel of the implementing package when the
	// operand lies outside the family's domain (e.g. non-positive base).
	PowInt(n int) (T, error)
	PowReal(k float64) (T, error)
	Pow(exp T) (T, error)

	// Inv returns the multiplicative inverse, failing when none exists.
	Inv() (T, error)

	// Conj returns the family's conjugate.
	Conj() T

	// Norm returns the family's non-negative real magnitude.
	Norm() float64
}
