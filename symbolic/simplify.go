package symbolic

import (
	"github.com/katalvlaran/integrix/expr"
)

// viaSimplify is the second rung: rewrite algebraically, then hand each
// rewritten form back to the direct rules. Every rewrite is an exact
// identity (expansion, partial fractions, trig power reduction), so a
// success here is as good as a direct hit.
func viaSimplify(e expr.Expr) (expr.Expr, bool) {
	for _, cand := range rewriteCandidates(e) {
		if cand.Equal(e) {
			continue
		}
		if anti, ok := direct(cand); ok {
			return anti, true
		}
	}

	return nil, false
}

// rewriteCandidates lists the algebraic rewrites of e, cheapest first.
// Callers skip candidates equal to the input.
func rewriteCandidates(e expr.Expr) []expr.Expr {
	out := make([]expr.Expr, 0, 4)
	out = append(out, expr.Expand(e))
	if pf, ok := partialFractions(e); ok {
		out = append(out, pf)
	}

	return append(out, trigForms(e)...)
}

// trigPowLimit caps the powers the trig rewrites touch.
const trigPowLimit = 8

// trigForms lists the successive trig-power rewrites of e, one identity
// pass plus expansion per stage. Every stage is a candidate in its own
// right: an odd power peels into a form substitution can finish
// (sin**3 becomes sin - sin*cos**2), while even powers need further
// passes to reach linear terms (sin**4 goes through cos(2x)**2 on its
// way to cos(4x)). Three stages flatten any power within trigPowLimit.
func trigForms(e expr.Expr) []expr.Expr {
	out := make([]expr.Expr, 0, 3)
	cur := e
	for i := 0; i < 3; i++ {
		next := expr.Expand(trigPass(expr.Expand(cur))).Simplify()
		if next.Equal(cur) {
			break
		}
		out = append(out, next)
		cur = next
	}

	return out
}

// trigPass applies one bottom-up rewrite pass.
func trigPass(e expr.Expr) expr.Expr {
	switch v := e.(type) {
	case *expr.Add:
		terms := v.Terms()
		out := make([]expr.Expr, len(terms))
		for i, t := range terms {
			out[i] = trigPass(t)
		}

		return expr.Sum(out...)
	case *expr.Mul:
		factors := v.Factors()
		out := make([]expr.Expr, len(factors))
		for i, f := range factors {
			out[i] = trigPass(f)
		}

		return expr.Prod(out...)
	case *expr.Pow:
		base := trigPass(v.Base())
		if c, isCall := base.(*expr.Call); isCall {
			if n, isNum := v.Exp().(*expr.Num); isNum {
				if k, fits := n.Int64(); fits && k >= 2 && k <= trigPowLimit {
					switch c.Fn() {
					case expr.FuncSin:
						return sinPower(c.Arg(), k)
					case expr.FuncCos:
						return cosPower(c.Arg(), k)
					}
				}
			}
		}

		return expr.Power(base, trigPass(v.Exp()))
	case *expr.Call:
		return expr.Apply(v.Fn(), trigPass(v.Arg()))
	default:
		return e
	}
}

// sinPower rewrites sin(u)**k. Even k uses sin**2 = (1-cos(2u))/2; odd
// k peels one sine for a later u = cos(u) substitution.
func sinPower(u expr.Expr, k int64) expr.Expr {
	if k%2 == 0 {
		double := expr.Cos(expr.Prod(expr.Int(2), u))
		reduced := expr.Prod(expr.Ratio(1, 2), expr.Sum(expr.Int(1), expr.Neg(double)))

		return expr.Power(reduced, expr.Int(k/2))
	}
	body := expr.Sum(expr.Int(1), expr.Neg(expr.Power(expr.Cos(u), expr.Int(2))))

	return expr.Prod(expr.Sin(u), expr.Power(body, expr.Int(k/2)))
}

// cosPower mirrors sinPower with cos**2 = (1+cos(2u))/2.
func cosPower(u expr.Expr, k int64) expr.Expr {
	if k%2 == 0 {
		double := expr.Cos(expr.Prod(expr.Int(2), u))
		reduced := expr.Prod(expr.Ratio(1, 2), expr.Sum(expr.Int(1), double))

		return expr.Power(reduced, expr.Int(k/2))
	}
	body := expr.Sum(expr.Int(1), expr.Neg(expr.Power(expr.Sin(u), expr.Int(2))))

	return expr.Prod(expr.Cos(u), expr.Power(body, expr.Int(k/2)))
}
