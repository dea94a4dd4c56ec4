package symbolic

import (
	"math/big"

	"github.com/katalvlaran/integrix/expr"
)

// direct integrates by structural rules alone, with respect to x:
// linearity over sums, constant factors pulled out of products, the
// power rule (including 1/u -> log|u|), exponentials with constant
// bases, and the antiderivative table for f(a*x+b) arguments. It never
// rewrites the input; rewriting belongs to later chain rungs.
//
// The second return is false when no rule applies, which is the common
// signal for the chain to move on.
func direct(e expr.Expr) (expr.Expr, bool) {
	if !expr.DependsOn(e, expr.VarName) {
		// A constant integrates to c*x. This also covers symbolic
		// constants such as pi and e**2.
		return expr.Prod(e, expr.X()), true
	}

	switch v := e.(type) {
	case *expr.Var:
		return expr.Prod(expr.Ratio(1, 2), expr.Power(expr.X(), expr.Int(2))), true
	case *expr.Add:
		terms := v.Terms()
		parts := make([]expr.Expr, 0, len(terms))
		for _, t := range terms {
			in, ok := direct(t)
			if !ok {
				return nil, false
			}
			parts = append(parts, in)
		}

		return expr.Sum(parts...), true
	case *expr.Mul:
		coeff, core := splitConstant(v)
		if cm, still := core.(*expr.Mul); still {
			// u'/u products integrate to a log; other products of
			// x-dependent factors belong to substitution and by-parts.
			if anti, ok := logDerivative(cm); ok {
				return expr.Prod(coeff, anti), true
			}

			return nil, false
		}
		in, ok := direct(core)
		if !ok {
			return nil, false
		}

		return expr.Prod(coeff, in), true
	case *expr.Pow:
		return directPow(v)
	case *expr.Call:
		a, _, ok := linearParts(v.Arg())
		if !ok {
			return nil, false
		}
		f, ok := tableAntiderivative(v.Fn(), v.Arg())
		if !ok {
			return nil, false
		}
		// For any f with antiderivative F, f(a*x+b) integrates to
		// F(a*x+b)/a.
		return expr.Prod(expr.Recip(a), f), true
	default:
		return nil, false
	}
}

// directPow handles the exponentiation shapes the rule set knows:
// (a*x+b)**c by the power rule and c**(a*x+b) as a scaled exponential.
// Towers such as x**x fall through to later rungs (and, in truth, to
// no elementary antiderivative at all).
func directPow(p *expr.Pow) (expr.Expr, bool) {
	base, ex := p.Base(), p.Exp()
	baseDep := expr.DependsOn(base, expr.VarName)
	expDep := expr.DependsOn(ex, expr.VarName)

	switch {
	case baseDep && expDep:
		return nil, false
	case baseDep:
		a, _, ok := linearParts(base)
		if !ok {
			if ex.Equal(expr.Int(-1)) {
				return quadraticRecip(base)
			}

			return nil, false
		}
		if ex.Equal(expr.Int(-1)) {
			// 1/(a*x+b) -> log|a*x+b| / a.
			return expr.Prod(expr.Recip(a), expr.Log(expr.Abs(base))), true
		}
		// (a*x+b)**c -> (a*x+b)**(c+1) / (a*(c+1)); c is constant here,
		// so c+1 cannot vanish unless c == -1, handled above.
		cp1 := expr.Sum(ex, expr.Int(1))

		return expr.Prod(expr.Recip(expr.Prod(a, cp1)), expr.Power(base, cp1)), true
	default:
		a, _, ok := linearParts(ex)
		if !ok {
			return nil, false
		}
		if bn, isNum := base.(*expr.Num); isNum && bn.Sign() <= 0 {
			// log of a non-positive base is undefined.
			return nil, false
		}
		// c**(a*x+b) -> c**(a*x+b) / (a*log(c)). For base e the log
		// folds to 1 during simplification.
		return expr.Prod(expr.Recip(expr.Prod(a, expr.Log(base))), p), true
	}
}

// tableAntiderivative returns F(u) such that F' = fn evaluated at u,
// for the functions users can write. erf and the Fresnel integrals are
// absent: they appear only inside results and are never re-integrated.
func tableAntiderivative(fn expr.FuncName, u expr.Expr) (expr.Expr, bool) {
	switch fn {
	case expr.FuncSin:
		return expr.Neg(expr.Cos(u)), true
	case expr.FuncCos:
		return expr.Sin(u), true
	case expr.FuncTan:
		return expr.Neg(expr.Log(expr.Abs(expr.Cos(u)))), true
	case expr.FuncExp:
		return expr.Exp(u), true
	case expr.FuncLog:
		return expr.Sum(expr.Prod(u, expr.Log(u)), expr.Neg(u)), true
	case expr.FuncLog10:
		nat := expr.Sum(expr.Prod(u, expr.Log(u)), expr.Neg(u))

		return expr.Prod(expr.Recip(expr.Log(expr.Int(10))), nat), true
	case expr.FuncAsin:
		root := expr.Sqrt(expr.Sum(expr.Int(1), expr.Neg(expr.Power(u, expr.Int(2)))))

		return expr.Sum(expr.Prod(u, expr.Asin(u)), root), true
	case expr.FuncAcos:
		root := expr.Sqrt(expr.Sum(expr.Int(1), expr.Neg(expr.Power(u, expr.Int(2)))))

		return expr.Sum(expr.Prod(u, expr.Apply(expr.FuncAcos, u)), expr.Neg(root)), true
	case expr.FuncAtan:
		lg := expr.Log(expr.Sum(expr.Int(1), expr.Power(u, expr.Int(2))))

		return expr.Sum(expr.Prod(u, expr.Atan(u)), expr.Neg(expr.Prod(expr.Ratio(1, 2), lg))), true
	case expr.FuncAbs:
		return expr.Prod(expr.Ratio(1, 2), u, expr.Abs(u)), true
	default:
		return nil, false
	}
}

// linearParts decomposes u as a*x + b with a and b free of x and a
// non-zero. Canonical trees keep the check shallow: a bare x, a product
// with one linear factor, or a sum of such terms plus constants.
func linearParts(u expr.Expr) (a, b expr.Expr, ok bool) {
	switch v := u.(type) {
	case *expr.Var:
		if v.Name() != expr.VarName {
			return nil, nil, false
		}

		return expr.Int(1), expr.Int(0), true
	case *expr.Mul:
		free, dep := partitionFactors(v)
		if len(dep) != 1 {
			return nil, nil, false
		}
		ia, ib, iok := linearParts(dep[0])
		if !iok {
			return nil, nil, false
		}
		k := expr.Prod(free...)

		return expr.Prod(k, ia), expr.Prod(k, ib), true
	case *expr.Add:
		var as, bs []expr.Expr
		for _, t := range v.Terms() {
			if !expr.DependsOn(t, expr.VarName) {
				bs = append(bs, t)
				continue
			}
			ta, tb, tok := linearParts(t)
			if !tok || !tb.Equal(expr.Int(0)) {
				return nil, nil, false
			}
			as = append(as, ta)
		}
		if len(as) == 0 {
			return nil, nil, false
		}

		return expr.Sum(as...), expr.Sum(bs...), true
	default:
		return nil, nil, false
	}
}

// logDerivative recognizes u'/u up to a constant factor and integrates
// it to log|u|. This covers quotients such as cos(x)/sin(x) and
// (2*x+1)/(x**2+x+3) without any rewriting.
func logDerivative(m *expr.Mul) (expr.Expr, bool) {
	fs := m.Factors()
	for i, f := range fs {
		p, isPow := f.(*expr.Pow)
		if !isPow || !p.Exp().Equal(expr.Int(-1)) || !expr.DependsOn(p.Base(), expr.VarName) {
			continue
		}
		rest := make([]expr.Expr, 0, len(fs)-1)
		rest = append(rest, fs[:i]...)
		rest = append(rest, fs[i+1:]...)
		ratio := expr.Prod(expr.Prod(rest...), expr.Recip(expr.Diff(p.Base(), expr.VarName)))
		if expr.DependsOn(ratio, expr.VarName) {
			continue
		}

		return expr.Prod(ratio, expr.Log(expr.Abs(p.Base()))), true
	}

	return nil, false
}

// quadraticRecip integrates 1/(a*x**2+b*x+c). A negative-discriminant
// quadratic yields the arctangent form and a perfect-square quadratic a
// rational one; quadratics with distinct real roots are left for
// partial fractions.
func quadraticRecip(q expr.Expr) (expr.Expr, bool) {
	p, ok := polyOf(q)
	if !ok || p.deg() != 2 {
		return nil, false
	}
	a, b, c := p.at(2), p.at(1), p.at(0)

	// D = 4ac - b**2; positive D means no real roots.
	fourAC := new(big.Rat).Mul(big.NewRat(4, 1), new(big.Rat).Mul(a, c))
	d := new(big.Rat).Sub(fourAC, new(big.Rat).Mul(b, b))
	switch d.Sign() {
	case 1:
		// 2/sqrt(D) * atan((2ax+b)/sqrt(D)).
		s := expr.Sqrt(expr.Rat(d))
		lin := expr.Sum(expr.Prod(expr.Rat(twoTimes(a)), expr.X()), expr.Rat(b))

		return expr.Prod(expr.Int(2), expr.Recip(s), expr.Atan(expr.Prod(expr.Recip(s), lin))), true
	case 0:
		// a*(x+h)**2 with h = b/(2a) integrates to -1/(a*(x+h)).
		h := new(big.Rat).Quo(b, twoTimes(a))

		return expr.Neg(expr.Recip(expr.Prod(expr.Rat(a), expr.Sum(expr.X(), expr.Rat(h))))), true
	default:
		return nil, false
	}
}

func twoTimes(r *big.Rat) *big.Rat {
	return new(big.Rat).Mul(big.NewRat(2, 1), r)
}

// partitionFactors splits a product's factors by x-dependence.
func partitionFactors(m *expr.Mul) (free, dep []expr.Expr) {
	for _, f := range m.Factors() {
		if expr.DependsOn(f, expr.VarName) {
			dep = append(dep, f)
		} else {
			free = append(free, f)
		}
	}

	return free, dep
}

// splitConstant pulls every x-free factor out of e, so e == coeff*core.
// coeff is 1 when there is nothing to pull.
func splitConstant(e expr.Expr) (coeff, core expr.Expr) {
	m, ok := e.(*expr.Mul)
	if !ok {
		return expr.Int(1), e
	}
	free, dep := partitionFactors(m)
	if len(free) == 0 {
		return expr.Int(1), e
	}
	if len(dep) == 0 {
		return expr.Prod(free...), expr.Int(1)
	}

	return expr.Prod(free...), expr.Prod(dep...)
}
