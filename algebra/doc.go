// Package algebra defines the generic contract every hypercomplex number
// family in this library must satisfy.
//
// 🚀 What is a hypercomplex algebra?
//
//	A number system built from several real components, closed under its own
//	multiplication rule.  Familiar members of the family:
//	  • complex numbers   (i² = −1)
//	  • dual numbers      (ε² =  0) — see the dual package
//	  • split-complex     (j² = +1)
//	  • quaternions       (4 components, non-commutative)
//
// ✨ Key idea:
//
//	Hypercomplex[T] is parameterized by the implementing type itself, so every
//	operation returns the concrete type, not an interface.  Chained arithmetic
//	like x.Add(y).Mul(z).Conj() stays fully typed with no casting — and any
//	future family (quaternions, split-complex, …) drops into existing generic
//	call sites unchanged.
//
// ⚙️ Usage:
//
//	func Square[T algebra.Hypercomplex[T]](x T) T { return x.Mul(x) }
//
// The dual package provides the one concrete implementation shipped today.
package algebra
