package expr_test

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/integrix/expr"
)

// //////////////////////////////////////////////////////////////////////////////
// ExampleParse
// //////////////////////////////////////////////////////////////////////////////
//
// Scenario:
//
//	Parse a quadratic typed the way a calculator user would type it and
//	print its canonical form together with its derivative.
//
// Use case:
//
//	Every request entering the engine goes through exactly this pair of
//	calls before anything numeric happens.
//
// Complexity: O(n) tokens for parsing, O(n) nodes for differentiation.
func ExampleParse() {
	e, err := expr.Parse("x**2 + 2*x + 1")
	if err != nil {
		fmt.Println("error:", err)

		return
	}
	fmt.Println(e)
	fmt.Println(expr.Diff(e, "x"))
	// Output:
	// x**2 + 2*x + 1
	// 2*x + 2
}

// //////////////////////////////////////////////////////////////////////////////
// ExampleParse_syntaxError
// //////////////////////////////////////////////////////////////////////////////
//
// Scenario:
//
//	Feed the parser "2x", the classic implicit-multiplication typo.
//	The error unwraps to ErrSyntax and carries the offending token with
//	its byte offset.
//
// Use case:
//
//	Shells branch on the sentinel and show the position to the user.
func ExampleParse_syntaxError() {
	_, err := expr.Parse("2x")
	fmt.Println(errors.Is(err, expr.ErrSyntax))
	fmt.Println(err)
	// Output:
	// true
	// expr: invalid syntax: "x" at offset 1
}

// //////////////////////////////////////////////////////////////////////////////
// ExampleDiff
// //////////////////////////////////////////////////////////////////////////////
//
// Scenario:
//
//	Differentiate sin(2*x). The chain rule fires and the constant factor
//	lands in front, already folded.
//
// Use case:
//
//	Integrate-then-differentiate is how every symbolic result is checked.
func ExampleDiff() {
	e := expr.MustParse("sin(2*x)")
	fmt.Println(expr.Diff(e, "x"))
	// Output:
	// 2*cos(2*x)
}

// //////////////////////////////////////////////////////////////////////////////
// ExampleExpand
// //////////////////////////////////////////////////////////////////////////////
//
// Scenario:
//
//	Multiply out (x + 1)**3. The binomial lands sorted by falling degree
//	with exact integer coefficients.
//
// Use case:
//
//	Rewriting strategies expand factored integrands before looking for a
//	polynomial shape.
//
// Complexity: O(k·n) terms for exponent k.
func ExampleExpand() {
	e := expr.MustParse("(x + 1)**3")
	fmt.Println(expr.Expand(e))
	// Output:
	// x**3 + 3*x**2 + 3*x + 1
}

// //////////////////////////////////////////////////////////////////////////////
// ExampleExpr_LaTeX
// //////////////////////////////////////////////////////////////////////////////
//
// Scenario:
//
//	Render x**2/2 for display. Quotients become \frac, powers move into
//	superscripts.
//
// Use case:
//
//	Front ends print the antiderivative next to the plotted curve.
func ExampleExpr_LaTeX() {
	fmt.Println(expr.MustParse("x**2/2").LaTeX())
	// Output:
	// \frac{x^{2}}{2}
}
