package quadrature_test

import (
	"math"
	"testing"

	"github.com/katalvlaran/integrix/quadrature"
)

// benchmarkIntegrate is a helper that integrates fn over [lo, hi] with opts.
// It resets the timer before entering the loop and fails on unexpected errors.
func benchmarkIntegrate(b *testing.B, fn quadrature.Fn, lo, hi float64, opts quadrature.Options) {
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, err := quadrature.Integrate(fn, lo, hi, opts)
		if err != nil {
			b.Fatalf("Integrate failed: %v", err)
		}
	}
}

// BenchmarkIntegrate_Polynomial benchmarks the single-panel fast path.
func BenchmarkIntegrate_Polynomial(b *testing.B) {
	fn := func(x float64) float64 { return x*x*x - 2*x + 1 }
	benchmarkIntegrate(b, fn, -1, 2, quadrature.DefaultOptions())
}

// BenchmarkIntegrate_Smooth benchmarks a transcendental integrand that
// still converges on few panels.
func BenchmarkIntegrate_Smooth(b *testing.B) {
	fn := func(x float64) float64 { return math.Exp(-x * x) }
	benchmarkIntegrate(b, fn, 0, 2, quadrature.DefaultOptions())
}

// BenchmarkIntegrate_Oscillatory benchmarks the adaptive loop under
// heavy subdivision.
func BenchmarkIntegrate_Oscillatory(b *testing.B) {
	fn := func(x float64) float64 { return math.Sin(50 * x) }
	benchmarkIntegrate(b, fn, 0, 2*math.Pi, quadrature.DefaultOptions())
}

// BenchmarkIntegrate_SharpPeak benchmarks subdivision concentrated on a
// narrow feature.
func BenchmarkIntegrate_SharpPeak(b *testing.B) {
	fn := func(x float64) float64 { d := x - 0.5; return 1 / (d*d + 0.01) }
	benchmarkIntegrate(b, fn, 0, 1, quadrature.DefaultOptions())
}
