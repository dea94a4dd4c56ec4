package symbolic

import (
	"math/big"

	"github.com/katalvlaran/integrix/expr"
)

// special is the third rung: a closed table of integrands with no
// elementary antiderivative but a standard closed form in terms of the
// error function or the Fresnel integrals. Matching is structural on
// the canonical tree, so sin(x*x), sin(x**2) and 2*sin(3*x**2)/2 all
// reach the same entry. The table is deliberately small; it is a
// lookup, not a rewriting system, and it only runs after the exact
// strategies have failed.
//
// Entries, for positive rational a:
//
//	exp(-a*x**2) -> sqrt(pi)/(2*sqrt(a)) * erf(sqrt(a)*x)
//	sin(a*x**2)  -> sqrt(pi/(2a)) * fresnels(sqrt(2a/pi)*x)
//	cos(a*x**2)  -> sqrt(pi/(2a)) * fresnelc(sqrt(2a/pi)*x)
func special(e expr.Expr) (expr.Expr, bool) {
	coeff, core := splitConstant(e)
	c, isCall := core.(*expr.Call)
	if !isCall {
		return nil, false
	}

	switch c.Fn() {
	case expr.FuncExp:
		a, ok := quadraticArg(c.Arg(), -1)
		if !ok {
			return nil, false
		}

		return expr.Prod(coeff, gaussian(a)), true
	case expr.FuncSin:
		a, ok := quadraticArg(c.Arg(), 1)
		if !ok {
			return nil, false
		}

		return expr.Prod(coeff, fresnel(expr.FuncFresnelS, a)), true
	case expr.FuncCos:
		a, ok := quadraticArg(c.Arg(), 1)
		if !ok {
			return nil, false
		}

		return expr.Prod(coeff, fresnel(expr.FuncFresnelC, a)), true
	default:
		return nil, false
	}
}

// quadraticArg matches arg == s*a*x**2 for a positive rational a and
// the wanted sign s, returning a. Canonical form keeps the shapes
// shallow: x**2 bare or with a leading rational coefficient.
func quadraticArg(arg expr.Expr, sign int) (*expr.Num, bool) {
	if sign > 0 && isSquareOfX(arg) {
		return expr.Int(1), true
	}
	m, isMul := arg.(*expr.Mul)
	if !isMul {
		return nil, false
	}
	fs := m.Factors()
	if len(fs) != 2 || !isSquareOfX(fs[1]) {
		return nil, false
	}
	n, isNum := fs[0].(*expr.Num)
	if !isNum || n.Sign() != sign {
		return nil, false
	}
	if sign < 0 {
		return expr.Rat(new(big.Rat).Neg(n.Rat())), true
	}

	return n, true
}

func isSquareOfX(e expr.Expr) bool {
	p, isPow := e.(*expr.Pow)
	if !isPow {
		return false
	}
	v, isVar := p.Base().(*expr.Var)

	return isVar && v.Name() == expr.VarName && p.Exp().Equal(expr.Int(2))
}

// gaussian returns the antiderivative of exp(-a*x**2). The constants
// stay in power-product form so differentiation folds them back out
// exactly.
func gaussian(a *expr.Num) expr.Expr {
	half, negHalf := expr.Ratio(1, 2), expr.Ratio(-1, 2)
	k := expr.Prod(half, expr.Power(expr.Pi(), half), expr.Power(a, negHalf))

	return expr.Prod(k, expr.Erf(expr.Prod(expr.Power(a, half), expr.X())))
}

// fresnel returns the antiderivative of sin(a*x**2) or cos(a*x**2) in
// terms of the requested Fresnel integral.
func fresnel(fn expr.FuncName, a *expr.Num) expr.Expr {
	half, negHalf := expr.Ratio(1, 2), expr.Ratio(-1, 2)
	k := expr.Prod(expr.Power(expr.Pi(), half), expr.Power(expr.Int(2), negHalf), expr.Power(a, negHalf))
	arg := expr.Prod(expr.Power(expr.Int(2), half), expr.Power(a, half), expr.Power(expr.Pi(), negHalf), expr.X())

	return expr.Prod(k, expr.Apply(fn, arg))
}
