// SPDX-License-Identifier: MIT
// Package dual: scalar-on-the-left helpers.
// Go has no operator overloading, so "s + d", "s − d", "s · d" and "s / d"
// with the scalar on the left are package-level functions, generic over the
// Scalar constraint (any int or float operand). Each is defined in terms of
// the canonical embedding s ↦ (s, 0).

package dual

// AddScalar computes s + d. Addition commutes, so this is d + (s, 0).
func AddScalar[S Scalar](s S, d Dual) Dual {
	return d.AddReal(float64(s))
}

// SubScalar computes s − d as (−d) + s: negate first, then add the scalar.
// This exact rule — not −(d − s) — is the left-subtraction contract.
func SubScalar[S Scalar](s S, d Dual) Dual {
	return d.Neg().AddReal(float64(s))
}

// MulScalar computes s · d. Multiplication by an embedded scalar commutes,
// so this is d · (s, 0).
func MulScalar[S Scalar](s S, d Dual) Dual {
	return d.MulReal(float64(s))
}

// DivScalar computes s / d as s · d⁻¹ — true inversion, unlike Dual.Div,
// which multiplies by the conjugate.
//
// Errors: ErrNoInverse when d.Real == 0.
func DivScalar[S Scalar](s S, d Dual) (Dual, error) {
	inv, err := d.Inv()
	if err != nil {
		return Zero, err
	}

	return FromReal(s).Mul(inv), nil
}
