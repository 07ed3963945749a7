package poly_test

import (
	"testing"

	"github.com/katalvlaran/thermo/poly"
)

// benchSegs builds n contiguous segments of degree d for selection and
// evaluation benchmarks.
func benchSegs(n, d int) []poly.Segment {
	segs := make([]poly.Segment, n)
	for i := range segs {
		c := make([]float64, d+1)
		for k := range c {
			c[k] = 1.0 / float64(k+1)
		}
		segs[i] = poly.Segment{Min: float64(i), Max: float64(i + 1), Coeffs: c}
	}

	return segs
}

// BenchmarkEval_SingleSegment measures the pure Horner path.
func BenchmarkEval_SingleSegment(b *testing.B) {
	segs := benchSegs(1, 10)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := poly.Eval(segs, 0.5, "x"); err != nil {
			b.Fatalf("Eval failed: %v", err)
		}
	}
}

// BenchmarkEval_LastOfMany measures worst-case linear segment selection.
func BenchmarkEval_LastOfMany(b *testing.B) {
	segs := benchSegs(8, 10)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := poly.Eval(segs, 7.5, "x"); err != nil {
			b.Fatalf("Eval failed: %v", err)
		}
	}
}

// BenchmarkEvalDerivative measures differentiation plus evaluation.
func BenchmarkEvalDerivative(b *testing.B) {
	segs := benchSegs(1, 10)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := poly.EvalDerivative(segs, 0.5, 1, "x"); err != nil {
			b.Fatalf("EvalDerivative failed: %v", err)
		}
	}
}
