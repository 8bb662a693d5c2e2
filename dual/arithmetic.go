// SPDX-License-Identifier: MIT
// Package dual: ring operations, conjugation, norm and inversion.
// All kernels are pure O(1) functions over value receivers; a fresh Dual is
// returned and operands are never mutated. Fallible operations return plain
// sentinels from errors.go.

package dual

import "github.com/katalvlaran/hyperdual/algebra"

// Compile-time conformance: Dual satisfies the generic contract.
var _ algebra.Hypercomplex[Dual] = Dual{}

// Neg returns the additive inverse (−Real, −Eps).
func (d Dual) Neg() Dual {
	return Dual{Real: -d.Real, Eps: -d.Eps}
}

// Add returns the componentwise sum d + o.
func (d Dual) Add(o Dual) Dual {
	return Dual{Real: d.Real + o.Real, Eps: d.Eps + o.Eps}
}

// Sub returns the componentwise difference d − o.
func (d Dual) Sub(o Dual) Dual {
	return Dual{Real: d.Real - o.Real, Eps: d.Eps - o.Eps}
}

// Mul returns the product under the rule
//
//	(a,b)·(c,d) = (ac − bd, ad + bc)
//
// The real part subtracts the ε-cross term bd. Commutative and closed; the
// Eps column is the bilinear derivative rule a·d + b·c.
func (d Dual) Mul(o Dual) Dual {
	return Dual{
		Real: d.Real*o.Real - d.Eps*o.Eps,
		Eps:  d.Real*o.Eps + d.Eps*o.Real,
	}
}

// Div returns the quotient defined as conjugate multiplication:
//
//	x / y := x · Conj(y)
//
// Total: never fails, for any divisor. For true division by the
// multiplicative inverse use Inv (or the left-scalar DivScalar helper).
func (d Dual) Div(o Dual) Dual {
	return d.Mul(o.Conj())
}

// Conj returns the conjugate (Real, −Eps).
func (d Dual) Conj() Dual {
	return Dual{Real: d.Real, Eps: -d.Eps}
}

// Norm returns the magnitude Real² + Eps² (always ≥ 0).
// Note: the component-square sum, not a Euclidean distance.
func (d Dual) Norm() float64 {
	return d.Real*d.Real + d.Eps*d.Eps
}

// Inv returns the multiplicative inverse of d = (a,b):
//
//	(a,b)⁻¹ = (1/a, −b/a²)
//
// derived by writing (a,b) = a(1 + (b/a)ε) and expanding 1/(1+x) ≈ 1 − x
// to first order (ε² = 0 kills every higher term).
//
// Errors: ErrNoInverse when a == 0.
func (d Dual) Inv() (Dual, error) {
	if d.Real == 0 {
		return Zero, ErrNoInverse
	}

	return Dual{Real: 1 / d.Real, Eps: -d.Eps / (d.Real * d.Real)}, nil
}

// AddReal embeds s canonically and adds: d + (s, 0).
func (d Dual) AddReal(s float64) Dual {
	return d.Add(Dual{Real: s})
}

// SubReal embeds s canonically and subtracts: d − (s, 0).
func (d Dual) SubReal(s float64) Dual {
	return d.Sub(Dual{Real: s})
}

// MulReal embeds s canonically and multiplies: d · (s, 0).
func (d Dual) MulReal(s float64) Dual {
	return d.Mul(Dual{Real: s})
}

// DivReal embeds s canonically and divides: d / (s, 0) = d · (s, −0).
func (d Dual) DivReal(s float64) Dual {
	return d.Div(Dual{Real: s})
}

// AddInt is AddReal over an integer scalar.
func (d Dual) AddInt(n int) Dual {
	return d.AddReal(float64(n))
}

// SubInt is SubReal over an integer scalar.
func (d Dual) SubInt(n int) Dual {
	return d.SubReal(float64(n))
}

// MulInt is MulReal over an integer scalar.
func (d Dual) MulInt(n int) Dual {
	return d.MulReal(float64(n))
}

// DivInt is DivReal over an integer scalar.
func (d Dual) DivInt(n int) Dual {
	return d.DivReal(float64(n))
}
