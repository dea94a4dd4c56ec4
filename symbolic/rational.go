package symbolic

import (
	"math/big"

	"github.com/katalvlaran/integrix/expr"
)

// Exact machinery for the partial-fraction rewrite. Polynomials are
// sparse coefficient maps indexed by degree, with big.Rat arithmetic
// throughout to match the expression tree's own exactness.

type poly map[int]*big.Rat

// polyOf extracts exact coefficients, expanding first so factored
// forms like (x+1)*(x-2) qualify.
func polyOf(e expr.Expr) (poly, bool) {
	coeffs, ok := expr.PolyCoeffs(expr.Expand(e), expr.VarName)
	if !ok {
		return nil, false
	}
	p := make(poly, len(coeffs))
	for k, n := range coeffs {
		if !n.IsZero() {
			p[k] = n.Rat()
		}
	}

	return p, true
}

func (p poly) deg() int {
	deg := -1
	for k := range p {
		if k > deg {
			deg = k
		}
	}

	return deg
}

func (p poly) at(k int) *big.Rat {
	if r, ok := p[k]; ok {
		return r
	}

	return new(big.Rat)
}

func (p poly) clone() poly {
	out := make(poly, len(p))
	for k, r := range p {
		out[k] = new(big.Rat).Set(r)
	}

	return out
}

func (p poly) eval(x *big.Rat) *big.Rat {
	out := new(big.Rat)
	for k, c := range p {
		term := new(big.Rat).Set(c)
		for i := 0; i < k; i++ {
			term.Mul(term, x)
		}
		out.Add(out, term)
	}

	return out
}

func (p poly) deriv() poly {
	out := make(poly, len(p))
	for k, c := range p {
		if k == 0 {
			continue
		}
		out[k-1] = new(big.Rat).Mul(big.NewRat(int64(k), 1), c)
	}

	return out
}

// expr rebuilds the polynomial as an expression tree; canonical
// ordering makes the result deterministic despite map iteration.
func (p poly) expr() expr.Expr {
	terms := make([]expr.Expr, 0, len(p))
	for k, c := range p {
		terms = append(terms, expr.Prod(expr.Rat(c), expr.Power(expr.X(), expr.Int(int64(k)))))
	}

	return expr.Sum(terms...)
}

func polyMul(a, b poly) poly {
	out := poly{}
	for i, ca := range a {
		for j, cb := range b {
			t := new(big.Rat).Mul(ca, cb)
			if cur, ok := out[i+j]; ok {
				out[i+j] = new(big.Rat).Add(cur, t)
			} else {
				out[i+j] = t
			}
		}
	}
	for k, c := range out {
		if c.Sign() == 0 {
			delete(out, k)
		}
	}

	return out
}

// polyDiv is exact long division: num = quot*den + rem with
// deg(rem) < deg(den).
func polyDiv(num, den poly) (quot, rem poly) {
	quot = poly{}
	rem = num.clone()
	dd := den.deg()
	lead := den.at(dd)
	for rem.deg() >= dd {
		k := rem.deg() - dd
		c := new(big.Rat).Quo(rem.at(rem.deg()), lead)
		quot[k] = c
		for i, dc := range den {
			cur := rem.at(i + k)
			next := new(big.Rat).Sub(cur, new(big.Rat).Mul(c, dc))
			if next.Sign() == 0 {
				delete(rem, i+k)
			} else {
				rem[i+k] = next
			}
		}
	}

	return quot, rem
}

// ratSqrt returns the exact square root when r is a perfect square.
func ratSqrt(r *big.Rat) (*big.Rat, bool) {
	if r.Sign() < 0 {
		return nil, false
	}
	n := new(big.Int).Sqrt(r.Num())
	d := new(big.Int).Sqrt(r.Denom())
	if new(big.Int).Mul(n, n).Cmp(r.Num()) != 0 {
		return nil, false
	}
	if new(big.Int).Mul(d, d).Cmp(r.Denom()) != 0 {
		return nil, false
	}

	return new(big.Rat).SetFrac(n, d), true
}

// rootsOf returns the rational roots of a degree-1 or degree-2
// polynomial, with multiplicity. ok is false when they are irrational
// or complex.
func rootsOf(p poly) ([]*big.Rat, bool) {
	switch p.deg() {
	case 1:
		r := new(big.Rat).Quo(p.at(0), p.at(1))

		return []*big.Rat{r.Neg(r)}, true
	case 2:
		a, b, c := p.at(2), p.at(1), p.at(0)
		disc := new(big.Rat).Sub(
			new(big.Rat).Mul(b, b),
			new(big.Rat).Mul(big.NewRat(4, 1), new(big.Rat).Mul(a, c)),
		)
		s, ok := ratSqrt(disc)
		if !ok {
			return nil, false
		}
		den := twoTimes(a)
		r1 := new(big.Rat).Quo(new(big.Rat).Sub(s, b), den)
		r2 := new(big.Rat).Quo(new(big.Rat).Sub(new(big.Rat).Neg(b), s), den)

		return []*big.Rat{r1, r2}, true
	default:
		return nil, false
	}
}

// asRatio splits e into a polynomial numerator and the x-dependent
// denominator factors, those raised to the power -1. Other negative
// powers are not collected: the power rule already integrates linear
// ones, and repeated general factors stay out of scope.
func asRatio(e expr.Expr) (num expr.Expr, denBases []expr.Expr, ok bool) {
	if p, isPow := e.(*expr.Pow); isPow {
		if p.Exp().Equal(expr.Int(-1)) && expr.DependsOn(p.Base(), expr.VarName) {
			return expr.Int(1), []expr.Expr{p.Base()}, true
		}

		return nil, nil, false
	}
	m, isMul := e.(*expr.Mul)
	if !isMul {
		return nil, nil, false
	}
	var numFactors []expr.Expr
	for _, f := range m.Factors() {
		if p, isPow := f.(*expr.Pow); isPow && p.Exp().Equal(expr.Int(-1)) && expr.DependsOn(p.Base(), expr.VarName) {
			denBases = append(denBases, p.Base())
			continue
		}
		numFactors = append(numFactors, f)
	}
	if len(denBases) == 0 {
		return nil, nil, false
	}

	return expr.Prod(numFactors...), denBases, true
}

// partialFractions rewrites a rational function as a polynomial plus
// simpler ratios the direct rules can finish: residue terms over
// distinct rational roots, a shifted double pole for a perfect-square
// quadratic, or the u'/u plus arctangent split for an irreducible one.
// The residue at a simple root r is rem(r)/den'(r).
func partialFractions(e expr.Expr) (expr.Expr, bool) {
	numE, denBases, ok := asRatio(e)
	if !ok {
		return nil, false
	}
	num, ok := polyOf(numE)
	if !ok {
		return nil, false
	}
	den := poly{0: big.NewRat(1, 1)}
	bases := make([]poly, 0, len(denBases))
	for _, b := range denBases {
		bp, pok := polyOf(b)
		if !pok || bp.deg() < 1 || bp.deg() > 2 {
			return nil, false
		}
		bases = append(bases, bp)
		den = polyMul(den, bp)
	}
	quot, rem := polyDiv(num, den)

	if len(bases) == 1 && bases[0].deg() == 2 {
		if out, qok := quadraticSplit(quot, rem, bases[0]); qok {
			return out, true
		}
	}

	roots := make([]*big.Rat, 0, den.deg())
	for _, bp := range bases {
		rs, rok := rootsOf(bp)
		if !rok {
			return nil, false
		}
		roots = append(roots, rs...)
	}
	for i := range roots {
		for j := i + 1; j < len(roots); j++ {
			if roots[i].Cmp(roots[j]) == 0 {
				// Repeated roots need a different expansion.
				return nil, false
			}
		}
	}

	dden := den.deriv()
	terms := []expr.Expr{quot.expr()}
	for _, r := range roots {
		res := new(big.Rat).Quo(rem.eval(r), dden.eval(r))
		shift := expr.Sum(expr.X(), expr.Neg(expr.Rat(r)))
		terms = append(terms, expr.Prod(expr.Rat(res), expr.Recip(shift)))
	}

	return expr.Sum(terms...), true
}

// quadraticSplit handles a single quadratic denominator q. A repeated
// rational root r becomes A/(x-r) + B/(x-r)**2; an irreducible q has
// its remainder split so each piece matches a direct rule.
func quadraticSplit(quot, rem, q poly) (expr.Expr, bool) {
	if rs, ok := rootsOf(q); ok {
		if rs[0].Cmp(rs[1]) != 0 {
			// Distinct roots take the residue path.
			return nil, false
		}
		r, lead := rs[0], q.at(2)
		// q = a*(x-r)**2 and rem = A*(x-r) + rem(r), scaled by 1/a.
		aa := new(big.Rat).Quo(rem.at(1), lead)
		bb := new(big.Rat).Quo(rem.eval(r), lead)
		shift := expr.Sum(expr.X(), expr.Neg(expr.Rat(r)))

		return expr.Sum(
			quot.expr(),
			expr.Prod(expr.Rat(aa), expr.Recip(shift)),
			expr.Prod(expr.Rat(bb), expr.Power(shift, expr.Int(-2))),
		), true
	}

	// Irreducible: rem = A*x + B splits against q' = 2ax + b.
	a, b := q.at(2), q.at(1)
	ra, rb := rem.at(1), rem.at(0)
	qe := q.expr()
	terms := []expr.Expr{quot.expr()}
	if ra.Sign() != 0 {
		k := new(big.Rat).Quo(ra, twoTimes(a))
		du := expr.Sum(expr.Prod(expr.Rat(twoTimes(a)), expr.X()), expr.Rat(b))
		terms = append(terms, expr.Prod(expr.Rat(k), du, expr.Recip(qe)))
		rb = new(big.Rat).Sub(rb, new(big.Rat).Mul(k, b))
	}
	if rb.Sign() != 0 {
		terms = append(terms, expr.Prod(expr.Rat(rb), expr.Recip(qe)))
	}

	return expr.Sum(terms...), true
}
