package expr_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/integrix/expr"
)

//----------------------------------------------------------------------------//
// Rejection Tests
//----------------------------------------------------------------------------//

// TestParse_EmptyInput verifies that empty and whitespace-only text
// return ErrEmptyInput.
func TestParse_EmptyInput(t *testing.T) {
	_, err := expr.Parse("")
	assert.ErrorIs(t, err, expr.ErrEmptyInput, "empty text must error")

	_, err = expr.Parse("   \t ")
	assert.ErrorIs(t, err, expr.ErrEmptyInput, "whitespace-only text must error")
}

// TestParse_SyntaxErrors checks the malformed shapes the grammar rejects.
func TestParse_SyntaxErrors(t *testing.T) {
	cases := []struct {
		name string
		text string
	}{
		{"ImplicitMultiplication", "2x"},
		{"TrailingOperator", "x +"},
		{"UnclosedParen", "(x + 1"},
		{"UnclosedCall", "sin(x"},
		{"DanglingPower", "x**"},
		{"InvalidCharacter", "x @ 2"},
		{"BareFunctionName", "sin"},
		{"EmptyParens", "()"},
		{"DoubleOperator", "x * / 2"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := expr.Parse(tc.text)
			assert.ErrorIs(t, err, expr.ErrSyntax, "Parse(%q) must be a syntax error", tc.text)
		})
	}
}

// TestParse_VocabularyErrors verifies the closed function and variable
// vocabulary, including that result-only names are not accepted as input.
func TestParse_VocabularyErrors(t *testing.T) {
	_, err := expr.Parse("foo(x)")
	assert.ErrorIs(t, err, expr.ErrUnknownFunction, "foo is not in the vocabulary")

	_, err = expr.Parse("erf(x)")
	assert.ErrorIs(t, err, expr.ErrUnknownFunction, "erf is result vocabulary only")

	_, err = expr.Parse("fresnels(x)")
	assert.ErrorIs(t, err, expr.ErrUnknownFunction, "fresnels is result vocabulary only")

	_, err = expr.Parse("sin(y)")
	assert.ErrorIs(t, err, expr.ErrForeignVariable, "y is not the free variable")

	_, err = expr.Parse("x + t")
	assert.ErrorIs(t, err, expr.ErrForeignVariable, "t is not the free variable")
}

// TestParse_ErrorPosition checks that ParseError carries the offending
// token and its byte offset.
func TestParse_ErrorPosition(t *testing.T) {
	_, err := expr.Parse("2x")
	var pe *expr.ParseError
	require.True(t, errors.As(err, &pe), "error must be a *ParseError")
	assert.Equal(t, 1, pe.Pos, "offset of the dangling identifier")
	assert.Equal(t, "x", pe.Tok, "offending token text")

	_, err = expr.Parse("x + foo(x)")
	require.True(t, errors.As(err, &pe))
	assert.Equal(t, 4, pe.Pos, "offset of the unknown function name")
	assert.Equal(t, "foo", pe.Tok)
}

//----------------------------------------------------------------------------//
// Acceptance Tests
//----------------------------------------------------------------------------//

// TestParse_Grammar exercises the operator and spelling rules: sqrt as a
// half power, ln as log, ^ as **, right-associative powers, and unary
// minus binding looser than exponentiation.
func TestParse_Grammar(t *testing.T) {
	cases := []struct {
		name string
		a, b string
	}{
		{"SqrtIsHalfPower", "sqrt(x)", "x**(1/2)"},
		{"LnAliasesLog", "ln(x)", "log(x)"},
		{"CaretAliasesDoubleStar", "x^2", "x**2"},
		{"PowerRightAssociative", "x**2**3", "x**8"},
		{"UnaryMinusBindsLoose", "-x**2", "-(x**2)"},
		{"NegativeExponent", "2**-3", "1/8"},
		{"WhitespaceIgnored", " x + 1 ", "x+1"},
		{"NestedParens", "((x))", "x"},
		{"DivisionIsRecipProduct", "x/2", "(1/2)*x"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			left, err := expr.Parse(tc.a)
			require.NoError(t, err)
			right, err := expr.Parse(tc.b)
			require.NoError(t, err)
			assert.True(t, left.Equal(right), "Parse(%q) and Parse(%q) must agree", tc.a, tc.b)
		})
	}
}

// TestParse_ExactDecimals verifies decimal literals become exact
// rationals, not binary floats.
func TestParse_ExactDecimals(t *testing.T) {
	e, err := expr.Parse("0.1")
	require.NoError(t, err)
	assert.True(t, e.Equal(expr.Ratio(1, 10)), "0.1 must be exactly 1/10")

	e, err = expr.Parse("2.5*x")
	require.NoError(t, err)
	assert.True(t, e.Equal(expr.Prod(expr.Ratio(5, 2), expr.X())))
}

// TestParse_RoundTrip confirms that canonical renderings re-parse to an
// equal tree.
func TestParse_RoundTrip(t *testing.T) {
	inputs := []string{
		"x**2 + 3*x - 5",
		"sin(x**2) + 1",
		"x**3/3",
		"-cos(x)",
		"1/x",
		"2*(x + 1)",
		"sqrt(x)",
		"exp(-x**2)",
		"2**x",
		"pi*x + e",
		"log(abs(x - 1))/2",
	}
	for _, in := range inputs {
		e, err := expr.Parse(in)
		require.NoError(t, err, "Parse(%q)", in)
		back, err := expr.Parse(e.String())
		require.NoError(t, err, "re-parse of %q", e.String())
		assert.True(t, back.Equal(e), "round trip of %q via %q", in, e.String())
	}
}

// TestMustParse_PanicsOnError covers the fixture helper.
func TestMustParse_PanicsOnError(t *testing.T) {
	assert.NotPanics(t, func() { expr.MustParse("x + 1") })
	assert.Panics(t, func() { expr.MustParse("x +") })
}
