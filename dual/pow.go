// SPDX-License-Identifier: MIT

package dual

import "math"

// Exponentiation — three forms over the dual algebra
//
// Description:
//
//	Dual-number powers follow from first-order Taylor expansions: since
//	ε² = 0, every series over the ε part truncates after the linear term,
//	giving exact closed forms.
//
// Derivations (base x = (a,b), a > 0):
//
//  1. Real exponent k — write x = a(1 + (b/a)ε), expand (1+t)^k ≈ 1 + kt:
//     x^k = (a^k, k·(b/a)·a^k)
//
//  2. Dual exponent w = (c,d) — via x^w = exp(w · ln x), stage by stage:
//     ln(a + bε)        = ln(a) + (b/a)ε
//     (c + dε)·ln(a+bε) = c·ln(a) + (d·ln(a) + c·b/a)ε
//     exp(r + sε)       = e^r + s·e^r·ε
//     x^w               = (a^c, (c·b/a + d·ln(a))·a^c)
//
//  3. Integer exponent n — delegates to form 1 with k = float64(n).
//     No repeated-squaring fast path: exponents here are differentiation
//     bookkeeping, typically tiny, and one math.Pow call is exact enough.
//
// Domain:
//   - a > 0 for forms 1 and 2 (ln a must exist), with one carve-out:
//     a == 0 under form 2 yields Zero when c > 0 (0^positive = 0) and
//     fails otherwise. The carve-out is checked BEFORE the a > 0 guard.
//
// Errors:
//   - ErrNonPositiveBase — base real part ≤ 0 (form 1) or < 0 (form 2).
//   - ErrZeroBase        — zero base with exponent real part ≤ 0 (form 2).

// PowInt raises d to an integer exponent by delegating to PowReal.
//
// Errors: ErrNonPositiveBase when d.Real <= 0.
func (d Dual) PowInt(n int) (Dual, error) {
	return d.PowReal(float64(n))
}

// PowReal raises d = (a,b) to a real exponent k:
//
//	(a,b)^k = (a^k, k·(b/a)·a^k)
//
// Errors: ErrNonPositiveBase when a <= 0.
func (d Dual) PowReal(k float64) (Dual, error) {
	if d.Real <= 0 {
		return Zero, ErrNonPositiveBase
	}
	ak := math.Pow(d.Real, k)

	return Dual{Real: ak, Eps: k * (d.Eps / d.Real) * ak}, nil
}

// Pow raises d = (a,b) to a dual exponent exp = (c,d):
//
//	(a,b)^(c,d) = (a^c, (c·b/a + d·ln a)·a^c)
//
// Special case: a zero base yields Zero when c > 0; any other non-positive
// base fails. See the derivation block above.
//
// Errors: ErrZeroBase when a == 0 and c <= 0; ErrNonPositiveBase when a < 0.
func (d Dual) Pow(exp Dual) (Dual, error) {
	if d.Real == 0 {
		if exp.Real > 0 {
			return Zero, nil
		}

		return Zero, ErrZeroBase
	}
	if d.Real < 0 {
		return Zero, ErrNonPositiveBase
	}
	ac := math.Pow(d.Real, exp.Real)
	eps := (exp.Real*d.Eps/d.Real + exp.Eps*math.Log(d.Real)) * ac

	return Dual{Real: ac, Eps: eps}, nil
}
