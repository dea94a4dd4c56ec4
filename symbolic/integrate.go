package symbolic

import (
	"github.com/katalvlaran/integrix/expr"
)

// Integrate computes an antiderivative of e with respect to x.
//
// Description:
//
//	The four strategies run in a fixed order, from exact and cheap to
//	heuristic and expensive, and the first complete result wins. A
//	candidate still carrying an unresolved-integral marker does not
//	count; the chain moves on as if the rung had failed.
//
// Outline:
//
//	1. canonicalize the input (so x*x and x**2 take the same path)
//	2. direct      - rule and table integration
//	3. simplify    - expand / partial fractions / trig reduction, retry
//	4. special     - the closed Fresnel and error-function table
//	5. manual      - u-substitution, then integration by parts
//
// The boolean reports whether any rung produced a complete result.
// Exhaustion is an expected outcome, not an error: many elementary
// integrands have no elementary antiderivative at all, and the caller
// is expected to fall back to its numeric answer.
func Integrate(e expr.Expr) (Result, bool) {
	e = e.Simplify()

	rungs := []struct {
		strategy Strategy
		run      func(expr.Expr) (expr.Expr, bool)
	}{
		{StrategyDirect, direct},
		{StrategySimplify, viaSimplify},
		{StrategySpecial, special},
		{StrategyManual, manual},
	}
	for _, r := range rungs {
		anti, ok := r.run(e)
		if !ok || expr.HasUnevaluated(anti) {
			continue
		}

		return Result{Antiderivative: anti.Simplify(), Strategy: r.strategy}, true
	}

	return Result{}, false
}
