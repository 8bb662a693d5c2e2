package dual_test

import (
	"fmt"

	"github.com/katalvlaran/hyperdual/dual"
)

// //////////////////////////////////////////////////////////////////////////////
// ExampleDual_Mul
// //////////////////////////////////////////////////////////////////////////////
//
// Scenario:
//
//	Multiply two dual numbers and observe the product rule
//	(a,b)·(c,d) = (ac − bd, ad + bc).
//
// ExampleDual_Mul demonstrates the product on (2+3ε)·(4+5ε).
func ExampleDual_Mul() {
	p := dual.New(2, 3).Mul(dual.New(4, 5))
	fmt.Println(p)
	// Output:
	// (-7+22ε)
}

// //////////////////////////////////////////////////////////////////////////////
// ExampleDual_PowReal — forward-mode differentiation
// //////////////////////////////////////////////////////////////////////////////
//
// Scenario:
//
//	Differentiate f(x) = x^2.5 at x = 4 in a single pass: seed the ε slot
//	with 1, raise to the power, read the value from Real and f′(4) from Eps.
//
// Use case:
//
//	Gradient computation without symbolic algebra or finite differences.
//
// ExampleDual_PowReal demonstrates derivative extraction via the ε part.
func ExampleDual_PowReal() {
	x := dual.New(4, 1) // x = 4, seeded for d/dx
	y, err := x.PowReal(2.5)
	if err != nil {
		fmt.Println("error:", err)

		return
	}
	fmt.Printf("f(4)  = %g\nf'(4) = %g\n", y.Real, y.Eps)
	// Output:
	// f(4)  = 32
	// f'(4) = 20
}

// //////////////////////////////////////////////////////////////////////////////
// ExampleDivScalar
// //////////////////////////////////////////////////////////////////////////////
//
// Scenario:
//
//	Put a plain scalar on the left of a division: 1 / (2+0ε) uses the true
//	multiplicative inverse, yielding (0.5+0ε).
//
// ExampleDivScalar demonstrates scalar-on-the-left division.
func ExampleDivScalar() {
	q, err := dual.DivScalar(1, dual.New(2, 0))
	if err != nil {
		fmt.Println("error:", err)

		return
	}
	fmt.Println(q)
	// Output:
	// (0.5+0ε)
}

// //////////////////////////////////////////////////////////////////////////////
// ExampleDual_Pow
// //////////////////////////////////////////////////////////////////////////////
//
// Scenario:
//
//	Raise a dual base to a dual exponent. With a unit base the log term
//	vanishes and the result collapses to One — a handy sanity check of
//	x^w = exp(w·ln x).
//
// ExampleDual_Pow demonstrates the dual-exponent form.
func ExampleDual_Pow() {
	r, err := dual.One.Pow(dual.New(2, 0))
	if err != nil {
		fmt.Println("error:", err)

		return
	}
	fmt.Println(r, r.IsUnity())
	// Output:
	// (1+0ε) true
}
