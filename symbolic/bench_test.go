package symbolic_test

import (
	"testing"

	"github.com/katalvlaran/integrix/expr"
	"github.com/katalvlaran/integrix/symbolic"
)

// benchmarkIntegrate is a helper that parses src once and integrates it
// b.N times. wantOK pins the expected outcome so a behavior change
// fails loudly instead of skewing the numbers.
func benchmarkIntegrate(b *testing.B, src string, wantOK bool) {
	e := expr.MustParse(src)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, ok := symbolic.Integrate(e)
		if ok != wantOK {
			b.Fatalf("Integrate(%q) ok=%v, want %v", src, ok, wantOK)
		}
	}
}

// BenchmarkIntegrate_Direct benchmarks a first-rung hit.
func BenchmarkIntegrate_Direct(b *testing.B) {
	benchmarkIntegrate(b, "x**2 + 3*x + 1", true)
}

// BenchmarkIntegrate_Simplify benchmarks trig power reduction, the
// most expensive rewrite path.
func BenchmarkIntegrate_Simplify(b *testing.B) {
	benchmarkIntegrate(b, "sin(x)**4", true)
}

// BenchmarkIntegrate_Manual benchmarks two levels of integration by
// parts.
func BenchmarkIntegrate_Manual(b *testing.B) {
	benchmarkIntegrate(b, "x**2*sin(x)", true)
}

// BenchmarkIntegrate_Exhaustion benchmarks the full chain running to
// failure, the worst case a request can cost.
func BenchmarkIntegrate_Exhaustion(b *testing.B) {
	benchmarkIntegrate(b, "exp(x)*sin(x)", false)
}
