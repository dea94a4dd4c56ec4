package symbolic

import (
	"github.com/katalvlaran/integrix/expr"
)

// manual is the fourth rung: u-substitution, then integration by
// parts. Both techniques are also retried on the algebraic rewrite
// candidates, because classical integration prepares with algebra
// first (sin**3 becomes sin*(1-cos**2) before substituting u = cos).
func manual(e expr.Expr) (expr.Expr, bool) {
	if anti, ok := techniques(e, byPartsDepth); ok {
		return anti, true
	}
	for _, cand := range rewriteCandidates(e) {
		if cand.Equal(e) {
			continue
		}
		if anti, ok := techniques(cand, byPartsDepth); ok {
			return anti, true
		}
	}

	return nil, false
}

// techniques works term by term over sums; depth bounds by-parts
// recursion.
func techniques(e expr.Expr, depth int) (expr.Expr, bool) {
	if a, isAdd := e.(*expr.Add); isAdd {
		terms := a.Terms()
		parts := make([]expr.Expr, 0, len(terms))
		for _, t := range terms {
			in, ok := integrateTerm(t, depth)
			if !ok {
				return nil, false
			}
			parts = append(parts, in)
		}

		return expr.Sum(parts...), true
	}

	return integrateTerm(e, depth)
}

// integrateTerm runs the full arsenal on a single term. Residual
// integrals from by parts re-enter here, so x*atan(x) can finish with
// a partial-fraction division even though by parts created it.
func integrateTerm(e expr.Expr, depth int) (expr.Expr, bool) {
	if anti, ok := direct(e); ok {
		return anti, true
	}
	if anti, ok := viaSimplify(e); ok {
		return anti, true
	}
	if anti, ok := substitute(e); ok {
		return anti, true
	}

	return byParts(e, depth)
}

// subCandidate is one substitution shape: u is the inner expression to
// differentiate and g the antiderivative of the outer shape, already
// evaluated at u.
type subCandidate struct {
	u expr.Expr
	g expr.Expr
}

// substitute looks for an inner expression u whose derivative accounts
// for the other factors, so that e = k * g(u) * u' for a constant k.
// The antiderivative is then k * G(u).
func substitute(e expr.Expr) (expr.Expr, bool) {
	coeff, core := splitConstant(e)
	factors := []expr.Expr{core}
	if m, isMul := core.(*expr.Mul); isMul {
		factors = m.Factors()
	}

	for i, f := range factors {
		rest := make([]expr.Expr, 0, len(factors)-1)
		rest = append(rest, factors[:i]...)
		rest = append(rest, factors[i+1:]...)
		for _, cand := range innerCandidates(f) {
			if _, isVar := cand.u.(*expr.Var); isVar {
				// A trivial substitution; the direct rules own it.
				continue
			}
			du := expr.Diff(cand.u, expr.VarName)
			ratio := expr.Prod(expr.Prod(rest...), expr.Recip(du))
			if expr.DependsOn(ratio, expr.VarName) {
				continue
			}

			return expr.Prod(coeff, ratio, cand.g), true
		}
	}

	return nil, false
}

// innerCandidates enumerates the substitution shapes of one factor:
// fn(u) through the antiderivative table, u**n through the power rule,
// and the factor itself with g(t) = t for du-matching against the
// remaining factors (sin*cos integrates as sin**2/2 that way).
func innerCandidates(f expr.Expr) []subCandidate {
	var out []subCandidate
	switch v := f.(type) {
	case *expr.Call:
		if g, ok := tableAntiderivative(v.Fn(), v.Arg()); ok {
			out = append(out, subCandidate{u: v.Arg(), g: g})
		}
	case *expr.Pow:
		base, ex := v.Base(), v.Exp()
		if expr.DependsOn(base, expr.VarName) && !expr.DependsOn(ex, expr.VarName) {
			if ex.Equal(expr.Int(-1)) {
				out = append(out, subCandidate{u: base, g: expr.Log(expr.Abs(base))})
			} else {
				cp1 := expr.Sum(ex, expr.Int(1))
				g := expr.Prod(expr.Recip(cp1), expr.Power(base, cp1))
				out = append(out, subCandidate{u: base, g: g})
			}
		}
	}
	half := expr.Prod(expr.Ratio(1, 2), expr.Power(f, expr.Int(2)))

	return append(out, subCandidate{u: f, g: half})
}

// byParts integrates two-factor products: integral(u*dv) = u*v -
// integral(u'*v). The factor kept as u is chosen LIATE-style, with
// logarithms and inverse trig first and the oscillators last. A lone
// logarithm-family factor plays against dv = dx. When the residual
// integral resists and the depth budget is spent, the returned
// candidate carries an explicit integral marker; the chain treats such
// candidates as failures.
func byParts(e expr.Expr, depth int) (expr.Expr, bool) {
	if depth <= 0 {
		return nil, false
	}
	coeff, core := splitConstant(e)

	m, isMul := core.(*expr.Mul)
	if !isMul {
		du := expr.Diff(core, expr.VarName)
		residual := expr.Prod(expr.X(), du)
		if rin, rok := integrateTerm(residual, depth-1); rok {
			cand := expr.Prod(coeff, expr.Sum(expr.Prod(expr.X(), core), expr.Neg(rin)))
			if !expr.HasUnevaluated(cand) {
				return cand, true
			}
		}

		return nil, false
	}

	dep := m.Factors()
	if len(dep) != 2 {
		return nil, false
	}
	first, second := dep[0], dep[1]
	if liateRank(second) < liateRank(first) {
		first, second = second, first
	}

	var marked expr.Expr
	for _, pair := range [2][2]expr.Expr{{first, second}, {second, first}} {
		u, dv := pair[0], pair[1]
		v, vok := direct(dv)
		if !vok {
			continue
		}
		residual := expr.Prod(expr.Diff(u, expr.VarName), v)
		if rin, rok := integrateTerm(residual, depth-1); rok {
			cand := expr.Prod(coeff, expr.Sum(expr.Prod(u, v), expr.Neg(rin)))
			if !expr.HasUnevaluated(cand) {
				return cand, true
			}
			if marked == nil {
				marked = cand
			}
			continue
		}
		if marked == nil {
			marked = expr.Prod(coeff, expr.Sum(expr.Prod(u, v), expr.Neg(expr.IntegralOf(residual))))
		}
	}
	if marked != nil {
		return marked, true
	}

	return nil, false
}

// liateRank orders by-parts choices: logarithms and inverse trig
// differentiate away first, algebraic factors second, oscillators and
// exponentials last.
func liateRank(e expr.Expr) int {
	switch v := e.(type) {
	case *expr.Call:
		switch v.Fn() {
		case expr.FuncLog, expr.FuncLog10, expr.FuncAsin, expr.FuncAcos, expr.FuncAtan:
			return 1
		default:
			return 3
		}
	case *expr.Pow:
		if _, isCall := v.Base().(*expr.Call); isCall {
			return liateRank(v.Base())
		}

		return 2
	default:
		return 2
	}
}
