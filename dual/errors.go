// SPDX-License-Identifier: MIT
// Package dual: sentinel error set (unified, consistent).
// This file defines ONLY package-level sentinel errors. All operations MUST
// return these sentinels and tests MUST check them via errors.Is. No
// operation panics on user-triggered error conditions.

package dual

import "errors"

// NOTE ON NAMING & PREFIXING
// --------------------------
// Every message is prefixed with "dual: ..." for consistency and to allow
// easy grepping across logs. DO NOT %w wrap these sentinels when returning
// directly; if context is essential, wrap with fmt.Errorf("ctx: %w", ErrX)
// at the outer boundary — callers will still use errors.Is to match.

var (
	// ErrNoInverse is returned by Inv (and DivScalar) when the real part is
	// zero: (0, b) has no multiplicative inverse in the dual algebra.
	ErrNoInverse = errors.New("dual: zero real part has no inverse")

	// ErrNonPositiveBase is returned by PowReal when the base's real part is
	// not strictly positive, and by Pow when it is negative: the first-order
	// log expansion needs ln(Real), undefined at or below zero.
	ErrNonPositiveBase = errors.New("dual: power requires positive real part")

	// ErrZeroBase is returned by Pow when the base's real part is zero and
	// the exponent's real part is not strictly positive: 0 raised to a
	// non-positive exponent is undefined. (0 to a positive dual exponent is
	// the Zero carve-out, not an error.)
	ErrZeroBase = errors.New("dual: zero base requires positive exponent")
)
