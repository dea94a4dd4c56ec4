package expr_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/katalvlaran/integrix/expr"
)

//----------------------------------------------------------------------------//
// Differentiation Tests
//----------------------------------------------------------------------------//

// TestDiff_Rules drives Diff through the rule table. Expected values are
// written as source text and compared structurally, so both sides pass
// through the same canonicalization.
func TestDiff_Rules(t *testing.T) {
	cases := []struct {
		name string
		in   string
		want string
	}{
		{"Constant", "7", "0"},
		{"SymbolicConstant", "pi", "0"},
		{"Identity", "x", "1"},
		{"PowerRule", "x**3", "3*x**2"},
		{"NegativePower", "1/x", "-1/x**2"},
		{"FractionalPower", "sqrt(x)", "1/(2*sqrt(x))"},
		{"Linearity", "3*cos(2*x) - 5", "-6*sin(2*x)"},
		{"ChainLinear", "sin(2*x)", "2*cos(2*x)"},
		{"ChainSquare", "sin(x**2)", "2*x*cos(x**2)"},
		{"ChainGaussian", "exp(-x**2)", "-2*x*exp(-x**2)"},
		{"ProductRule", "x*sin(x)", "sin(x) + x*cos(x)"},
		{"Log", "log(x)", "1/x"},
		{"Log10", "log10(x)", "1/(x*log(10))"},
		{"Tan", "tan(x)", "1 + tan(x)**2"},
		{"Asin", "asin(x)", "1/sqrt(1 - x**2)"},
		{"Acos", "acos(x)", "-1/sqrt(1 - x**2)"},
		{"Atan", "atan(x)", "1/(1 + x**2)"},
		{"AbsSignRatio", "abs(x)", "x/abs(x)"},
		{"ConstantBase", "2**x", "2**x*log(2)"},
		{"VariableBaseAndExponent", "x**x", "x**x*(log(x) + 1)"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := expr.Diff(expr.MustParse(tc.in), "x")
			want := expr.MustParse(tc.want)
			assert.True(t, got.Equal(want),
				"d/dx %s: got %s, want %s", tc.in, got, want)
		})
	}
}

// TestDiff_ResultVocabulary exercises the derivative table for the
// function names that only ever appear in produced antiderivatives.
// They are not parseable, so the expected trees are built directly.
func TestDiff_ResultVocabulary(t *testing.T) {
	x := expr.X()
	xSq := expr.Power(x, expr.Int(2))

	// d/dx erf(x) = 2·exp(-x²)/sqrt(pi)
	gotErf := expr.Diff(expr.Erf(x), "x")
	wantErf := expr.Prod(
		expr.Int(2),
		expr.Recip(expr.Sqrt(expr.Pi())),
		expr.Exp(expr.Neg(xSq)),
	)
	assert.True(t, gotErf.Equal(wantErf), "erf: got %s, want %s", gotErf, wantErf)

	// d/dx S(x) = sin(pi·x²/2)
	gotS := expr.Diff(expr.Apply(expr.FuncFresnelS, x), "x")
	wantS := expr.Sin(expr.Prod(expr.Ratio(1, 2), expr.Pi(), xSq))
	assert.True(t, gotS.Equal(wantS), "fresnels: got %s, want %s", gotS, wantS)

	// d/dx C(x) = cos(pi·x²/2)
	gotC := expr.Diff(expr.Apply(expr.FuncFresnelC, x), "x")
	wantC := expr.Cos(expr.Prod(expr.Ratio(1, 2), expr.Pi(), xSq))
	assert.True(t, gotC.Equal(wantC), "fresnelc: got %s, want %s", gotC, wantC)
}

// TestDiff_IntegralMarker confirms the marker behaves as the
// antiderivative it stands for: differentiating in x hands back the
// integrand unchanged.
func TestDiff_IntegralMarker(t *testing.T) {
	integrand := expr.MustParse("sin(x)*exp(x)")
	marker := expr.IntegralOf(integrand)

	got := expr.Diff(marker, "x")
	assert.True(t, got.Equal(integrand))
}

// TestDiff_ForeignName verifies that differentiating with respect to an
// unrelated name yields zero.
func TestDiff_ForeignName(t *testing.T) {
	got := expr.Diff(expr.MustParse("x**2 + sin(x)"), "t")
	assert.True(t, got.Equal(expr.Int(0)))
}

// TestDiff_SecondDerivative checks that repeated differentiation stays
// canonical: sin goes to -sin in two steps.
func TestDiff_SecondDerivative(t *testing.T) {
	first := expr.Diff(expr.MustParse("sin(x)"), "x")
	second := expr.Diff(first, "x")
	assert.True(t, second.Equal(expr.MustParse("-sin(x)")))
}
