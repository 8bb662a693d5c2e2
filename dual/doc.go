// Package dual implements dual numbers: two-component values a + bε with
// ε² = 0, the algebra behind forward-mode automatic differentiation.
//
// 🚀 What is a dual number?
//
//	A pair (Real, Eps). The Real part carries an ordinary value; the Eps
//	part carries a first-order perturbation. Because ε² vanishes, pushing
//	a seeded value f(x + 1·ε) through arithmetic yields f(x) in the Real
//	part and f′(x) in the Eps part — derivatives with no symbolic engine
//	and no finite-difference noise. Widely used in:
//	  • gradient computation for optimization & ML
//	  • sensitivity analysis of numeric models
//	  • geometric kinematics (screw theory)
//
// ✨ Key features:
//   - immutable value type: every operation returns a fresh Dual
//   - full ring arithmetic + conjugation, norm, inversion
//   - three exponentiation forms: integer, real and dual exponents,
//     derived from first-order expansions of log and exp
//   - scalar-on-the-left helpers (AddScalar, SubScalar, …) generic over
//     int and float operands
//   - implements algebra.Hypercomplex[Dual]
//
// ⚙️ Usage:
//
//	import "github.com/katalvlaran/hyperdual/dual"
//
//	x := dual.New(3, 1)          // seed the derivative slot
//	y, err := x.PowReal(2.5)     // y.Eps is d/dx x^2.5 at x=3
//	if err != nil {
//	  // handle ErrNonPositiveBase
//	}
//
// ⚠️ Domain errors:
//
//	Inv requires a nonzero real part; PowReal requires a positive real
//	part; Pow with a zero real base requires a positive exponent real
//	part. Each violation returns a package sentinel (errors.go) — nothing
//	in this package panics on user input.
//
// All values are plain two-field structs with no shared state: safe to
// copy, compare with ==, and use from many goroutines concurrently.
package dual
