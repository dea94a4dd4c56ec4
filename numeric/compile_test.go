package numeric_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/integrix/expr"
	"github.com/katalvlaran/integrix/numeric"
)

//----------------------------------------------------------------------------//
// Compilation Tests
//----------------------------------------------------------------------------//

// TestCompile_Arithmetic checks the closure against hand-computed values
// for polynomial and rational shapes.
func TestCompile_Arithmetic(t *testing.T) {
	cases := []struct {
		name string
		in   string
		x    float64
		want float64
	}{
		{"Quadratic", "x**2 + 1", 3, 10},
		{"Cubic", "x**3 - 2*x", 2, 4},
		{"RationalCoefficient", "x/2 + 1/4", 1, 0.75},
		{"Reciprocal", "1/x", 4, 0.25},
		{"IntegerPower", "x**10", 2, 1024},
		{"NegativePower", "x**-2", 2, 0.25},
		{"ConstantOnly", "7", 123, 7},
		{"PiTimesE", "pi*e", 0, math.Pi * math.E},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			fn, err := numeric.Compile(expr.MustParse(tc.in))
			require.NoError(t, err)
			assert.InDelta(t, tc.want, fn(tc.x), 1e-12)
		})
	}
}

// TestCompile_Functions checks the evaluable function vocabulary against
// the math package it is backed by.
func TestCompile_Functions(t *testing.T) {
	cases := []struct {
		name string
		in   string
		x    float64
		want float64
	}{
		{"Sin", "sin(x)", 1.3, math.Sin(1.3)},
		{"Cos", "cos(x)", 0.7, math.Cos(0.7)},
		{"Tan", "tan(x)", 0.4, math.Tan(0.4)},
		{"Asin", "asin(x)", 0.5, math.Asin(0.5)},
		{"Atan", "atan(x)", 2.0, math.Atan(2.0)},
		{"Exp", "exp(x)", 1.0, math.E},
		{"Log", "log(x)", 2.0, math.Log(2.0)},
		{"Log10", "log10(x)", 100, 2},
		{"Abs", "abs(x)", -3.5, 3.5},
		{"Gaussian", "exp(-x**2)", 1.0, math.Exp(-1)},
		{"Composite", "exp(-x**2)*sin(x) + x/2", 0.5, math.Exp(-0.25)*math.Sin(0.5) + 0.25},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			fn, err := numeric.Compile(expr.MustParse(tc.in))
			require.NoError(t, err)
			assert.InDelta(t, tc.want, fn(tc.x), 1e-12)
		})
	}
}

// TestCompile_ErrFunction verifies the error function is evaluable; its
// antiderivative vocabulary sibling, the Fresnel integral, is not.
func TestCompile_ErrFunction(t *testing.T) {
	fn, err := numeric.Compile(expr.Erf(expr.X()))
	require.NoError(t, err)
	assert.InDelta(t, math.Erf(1), fn(1), 1e-12)

	_, err = numeric.Compile(expr.Apply(expr.FuncFresnelS, expr.X()))
	assert.ErrorIs(t, err, numeric.ErrUnsupported)
}

// TestCompile_RejectsMarker confirms an unresolved-integral marker never
// reaches evaluation.
func TestCompile_RejectsMarker(t *testing.T) {
	marked := expr.Sum(expr.X(), expr.IntegralOf(expr.Sin(expr.X())))
	_, err := numeric.Compile(marked)
	assert.ErrorIs(t, err, numeric.ErrUnsupported)
}

// TestCompile_DomainViolationsAreValues pins the contract that evaluation
// never errors: out-of-domain points produce NaN or ±Inf samples.
func TestCompile_DomainViolationsAreValues(t *testing.T) {
	logFn, err := numeric.Compile(expr.MustParse("log(x)"))
	require.NoError(t, err)
	assert.True(t, math.IsNaN(logFn(-1)), "log of a negative is NaN")
	assert.True(t, math.IsInf(logFn(0), -1), "log(0) is -Inf")

	recipFn, err := numeric.Compile(expr.MustParse("1/x"))
	require.NoError(t, err)
	assert.True(t, math.IsInf(recipFn(0), 1), "1/0 is +Inf")

	rootFn, err := numeric.Compile(expr.MustParse("sqrt(x)"))
	require.NoError(t, err)
	assert.True(t, math.IsNaN(rootFn(-4)), "sqrt of a negative is NaN")
}

// TestCompile_LargeExponent exercises the math.Pow fallback beyond the
// repeated-multiplication window.
func TestCompile_LargeExponent(t *testing.T) {
	fn, err := numeric.Compile(expr.MustParse("2**100"))
	require.NoError(t, err)
	assert.InEpsilon(t, math.Pow(2, 100), fn(0), 1e-12)
}
