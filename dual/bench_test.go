package dual_test

import (
	"testing"

	"github.com/katalvlaran/hyperdual/dual"
)

// sink guards against the compiler optimizing the benchmarked ops away.
var sink dual.Dual

// BenchmarkDual_Mul measures the four-multiply product kernel.
func BenchmarkDual_Mul(b *testing.B) {
	x, y := dual.New(1.5, -2.5), dual.New(3.25, 0.75)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		sink = x.Mul(y)
	}
}

// BenchmarkDual_Div measures conjugate division.
func BenchmarkDual_Div(b *testing.B) {
	x, y := dual.New(1.5, -2.5), dual.New(3.25, 0.75)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		sink = x.Div(y)
	}
}

// BenchmarkDual_Inv measures inversion, including its domain guard.
func BenchmarkDual_Inv(b *testing.B) {
	x := dual.New(1.5, -2.5)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		v, err := x.Inv()
		if err != nil {
			b.Fatalf("Inv failed: %v", err)
		}
		sink = v
	}
}

// BenchmarkDual_PowReal measures the real-exponent power (one math.Pow call).
func BenchmarkDual_PowReal(b *testing.B) {
	x := dual.New(1.5, -2.5)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		v, err := x.PowReal(2.5)
		if err != nil {
			b.Fatalf("PowReal failed: %v", err)
		}
		sink = v
	}
}

// BenchmarkDual_Pow measures the dual-exponent power (math.Pow + math.Log).
func BenchmarkDual_Pow(b *testing.B) {
	x, w := dual.New(1.5, -2.5), dual.New(2, 3)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		v, err := x.Pow(w)
		if err != nil {
			b.Fatalf("Pow failed: %v", err)
		}
		sink = v
	}
}
