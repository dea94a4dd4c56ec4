// Package expr implements the symbolic expression model used throughout
// integrix: parsing of single-variable formulas, exact canonical
// simplification, differentiation, and plain-text / LaTeX rendering.
//
// 🚀 What is expr?
//
//	expr turns user text such as "x**2 + sin(3*x)" into an immutable
//	expression tree over one free variable x, with exact rational
//	constants (math/big.Rat) and symbolic pi / e.  The tree is the
//	common currency of the whole engine:
//	  • numeric compiles it into a float64 closure for sampling
//	  • quadrature integrates that closure between bounds
//	  • symbolic rewrites the tree into an antiderivative
//	  • plot legends and results render it back to text
//
// ✨ Key features:
//   - tokenizer + recursive-descent parser ("**" and "^" both mean power)
//   - canonical forms: flattened sums/products, folded rationals, merged
//     powers (x*x and x**2 simplify to the same tree)
//   - exact constants: 1/3 stays 1/3, pi stays pi
//   - derivative rules for the full function vocabulary
//   - precedence-aware String() that round-trips through Parse
//
// ⚙️ Usage:
//
//	e, err := expr.Parse("x**2 + sin(3*x)")
//	if err != nil {
//	  // *expr.ParseError wrapping ErrSyntax / ErrUnknownFunction / ErrForeignVariable
//	}
//	d := expr.Diff(e, "x")      // 2*x + 3*cos(3*x)
//	fmt.Println(e, d.LaTeX())
//
// Errors:
//
//	ErrEmptyInput       - the input is empty or only whitespace.
//	ErrSyntax           - malformed token or structure.
//	ErrUnknownFunction  - identifier called like a function but not in the vocabulary.
//	ErrForeignVariable  - identifier other than x, pi, e.
//
// Complexity: Parse is O(len(input)); Simplify is O(n·log n) per node layer
// in the number of children (sorting for canonical order).
package expr
