// Package hyperdual is a small algebraic-number library: a generic
// hypercomplex-algebra contract plus dual numbers, the two-component
// number system behind forward-mode automatic differentiation.
//
// 🚀 What is hyperdual?
//
//	A compact, thread-safe, zero-dependency library built around two pieces:
//		• algebra/ — the generic Hypercomplex[T] contract: the closed set of
//		  operations (ring arithmetic, conjugation, norm, inversion, three
//		  exponentiation forms) any hypercomplex number family must provide
//		• dual/    — dual numbers a + bε with ε² = 0: carry a value and its
//		  first derivative through ordinary arithmetic
//
// ✨ Why choose hyperdual?
//
//   - Beginner-friendly – minimal API, clear, intuitive naming
//   - Value semantics – immutable two-field structs, freely copyable,
//     safe to share across goroutines without locks
//   - Pure Go – no cgo, no hidden deps
//   - Extensible – new hypercomplex families plug into the same
//     Hypercomplex[T] contract without touching call sites
//
// Quick taste — differentiate f(x) = x² at x = 5 in one pass:
//
//	x := dual.New(5, 1)     // seed ε = 1
//	y, _ := x.PowInt(2)     // f(x) in dual arithmetic
//	// y.Real == 25 (the value), y.Eps == 10 (the derivative f'(5))
//
// Dive into each package's doc.go for formulas, error contracts and
// worked examples.
//
//	go get github.com/katalvlaran/hyperdual
package hyperdual
