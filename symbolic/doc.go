// Package symbolic produces closed-form antiderivatives through an
// ordered fallback chain, and reports which strategy succeeded.
//
// 🚀 The fallback chain
//
//	General symbolic integration is incomplete for elementary functions,
//	so the package encodes a precision-vs-coverage policy as four
//	strategies, tried strictly in order, stopping at the first complete
//	result:
//	  1. Direct     — structural rule/table integration (power rule,
//	     linearity, f(a·x+b) forms, the function table).
//	  2. Simplify   — expand, partial fractions, trig power reduction,
//	     then Direct again on the rewritten form.
//	  3. Special    — a closed lookup of non-elementary patterns
//	     (sin/cos of a·x², Gaussians) onto Fresnel / error-function
//	     closed forms. A fixed table, not a general mechanism.
//	  4. Manual     — classical techniques: u-substitution, then
//	     integration by parts.
//
//	A candidate that still contains an unresolved-integral marker counts
//	as a failure and the chain advances.  Exhausting all four strategies
//	is an expected outcome (ok=false), never an error: plenty of
//	elementary integrands have no elementary antiderivative.
//
// ✨ Key properties:
//   - results are canonical expr trees; differentiation reproduces the
//     integrand up to simplification (tested property)
//   - an exact general-method result is never overridden by a
//     special-pattern guess: the table is consulted only after
//     strategies 1–2 provably failed
//   - structural matching: sin(x**2) and sin(x*x) canonicalize to the
//     same tree and hit the same table entry
//
// ⚙️ Usage:
//
//	res, ok := symbolic.Integrate(e)
//	if ok {
//	  fmt.Println(res.Strategy, res.Antiderivative)
//	}
//
// Complexity: each strategy is O(n) tree passes times simplification
// cost; the chain is a constant number of strategies.
package symbolic
