package expr_test

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/integrix/expr"
)

//----------------------------------------------------------------------------//
// Expansion Tests
//----------------------------------------------------------------------------//

// TestExpand_DistributesAndMultipliesOut covers the two jobs of Expand:
// crossing products over sums and multiplying out small integer powers.
func TestExpand_DistributesAndMultipliesOut(t *testing.T) {
	cases := []struct {
		name string
		in   string
		want string
	}{
		{"ProductOverSum", "x*(x + 1)", "x**2 + x"},
		{"BinomialSquare", "(x + 1)**2", "x**2 + 2*x + 1"},
		{"BinomialCube", "(x + 1)**3", "x**3 + 3*x**2 + 3*x + 1"},
		{"TwoSums", "(x + 1)*(x - 1)", "x**2 - 1"},
		{"NestedScale", "2*(x + 3)**2", "2*x**2 + 12*x + 18"},
		{"InsideCall", "sin((x + 1)**2)", "sin(x**2 + 2*x + 1)"},
		{"AlreadyFlat", "x**2 + 2*x + 1", "x**2 + 2*x + 1"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := expr.Expand(expr.MustParse(tc.in))
			assert.True(t, got.Equal(expr.MustParse(tc.want)),
				"Expand(%s): got %s, want %s", tc.in, got, tc.want)
		})
	}
}

// TestExpand_PowerLimit verifies that oversized powers of sums are left
// factored instead of exploding the tree.
func TestExpand_PowerLimit(t *testing.T) {
	in := expr.MustParse("(x + 1)**17")
	assert.True(t, expr.Expand(in).Equal(in), "powers beyond the limit stay factored")
}

//----------------------------------------------------------------------------//
// Degree Tests
//----------------------------------------------------------------------------//

// TestDegree classifies polynomial and non-polynomial shapes.
func TestDegree(t *testing.T) {
	cases := []struct {
		name string
		in   string
		deg  int
		ok   bool
	}{
		{"Constant", "7", 0, true},
		{"SymbolicConstant", "pi", 0, true},
		{"Linear", "x", 1, true},
		{"Quadratic", "x**2 + 3*x", 2, true},
		{"ScaledCubic", "pi*x**3", 3, true},
		{"FactoredForm", "(x + 1)**17", 17, true},
		{"Reciprocal", "1/x", 0, false},
		{"FractionalPower", "sqrt(x)", 0, false},
		{"VariableExponent", "2**x", 0, false},
		{"VariableInsideCall", "sin(x)", 0, false},
		{"ConstantCall", "sin(1) + x", 1, true},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			deg, ok := expr.Degree(expr.MustParse(tc.in), "x")
			assert.Equal(t, tc.ok, ok)
			if tc.ok {
				assert.Equal(t, tc.deg, deg)
			}
		})
	}
}

//----------------------------------------------------------------------------//
// Coefficient Extraction Tests
//----------------------------------------------------------------------------//

// TestPolyCoeffs_Flat extracts exact rational coefficients from expanded
// polynomials.
func TestPolyCoeffs_Flat(t *testing.T) {
	cases := []struct {
		name string
		in   string
		want map[int]*expr.Num
	}{
		{
			name: "MonicQuadratic",
			in:   "x**2 + 2*x + 1",
			want: map[int]*expr.Num{2: expr.Int(1), 1: expr.Int(2), 0: expr.Int(1)},
		},
		{
			name: "RationalCoefficients",
			in:   "x/2 + 1/3",
			want: map[int]*expr.Num{1: expr.Ratio(1, 2), 0: expr.Ratio(1, 3)},
		},
		{
			name: "SparseQuintic",
			in:   "x**5 - x",
			want: map[int]*expr.Num{5: expr.Int(1), 1: expr.Int(-1)},
		},
		{
			name: "SingleMonomial",
			in:   "-3*x**4",
			want: map[int]*expr.Num{4: expr.Int(-3)},
		},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, ok := expr.PolyCoeffs(expr.MustParse(tc.in), "x")
			require.True(t, ok)
			if diff := cmp.Diff(tc.want, got); diff != "" {
				t.Fatalf("coefficient mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

// TestPolyCoeffs_RequiresExpandedInput documents the contract: factored
// polynomials must go through Expand first.
func TestPolyCoeffs_RequiresExpandedInput(t *testing.T) {
	factored := expr.MustParse("(x + 1)**2")

	_, ok := expr.PolyCoeffs(factored, "x")
	assert.False(t, ok, "factored input must be rejected")

	got, ok := expr.PolyCoeffs(expr.Expand(factored), "x")
	require.True(t, ok)
	want := map[int]*expr.Num{2: expr.Int(1), 1: expr.Int(2), 0: expr.Int(1)}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("coefficient mismatch (-want +got):\n%s", diff)
	}
}

// TestPolyCoeffs_RejectsNonPolynomials covers the shapes the extractor
// must refuse.
func TestPolyCoeffs_RejectsNonPolynomials(t *testing.T) {
	for _, in := range []string{"sin(x)", "1/x", "sqrt(x)", "x + exp(x)"} {
		_, ok := expr.PolyCoeffs(expr.MustParse(in), "x")
		assert.False(t, ok, "%q is not a polynomial", in)
	}
}

//----------------------------------------------------------------------------//
// Structural Query Tests
//----------------------------------------------------------------------------//

// TestDependsOn checks occurrence detection through every node shape.
func TestDependsOn(t *testing.T) {
	assert.True(t, expr.DependsOn(expr.MustParse("sin(x) + 1"), "x"))
	assert.True(t, expr.DependsOn(expr.MustParse("2**x"), "x"))
	assert.False(t, expr.DependsOn(expr.MustParse("pi*e + 1/2"), "x"))
	assert.False(t, expr.DependsOn(expr.MustParse("x**2"), "t"))
}

// TestFreeVars collects variable names.
func TestFreeVars(t *testing.T) {
	vars := expr.FreeVars(expr.MustParse("x**2 + sin(x)"))
	assert.Len(t, vars, 1)
	assert.Contains(t, vars, "x")

	assert.Empty(t, expr.FreeVars(expr.MustParse("pi + 1")))
}

// TestHasUnevaluated detects unresolved-integral markers at any depth.
func TestHasUnevaluated(t *testing.T) {
	plain := expr.MustParse("x*sin(x)")
	assert.False(t, expr.HasUnevaluated(plain))

	marked := expr.Sum(expr.X(), expr.IntegralOf(expr.Sin(expr.X())))
	assert.True(t, expr.HasUnevaluated(marked))

	nested := expr.Prod(expr.Int(2), expr.IntegralOf(plain))
	assert.True(t, expr.HasUnevaluated(nested))
}
