// This file defines the expression nodes and their canonical simplification.
//
// Canonical form contract (relied on by the structural matcher in symbolic):
//   - sums and products are flattened and deterministically ordered
//   - rational arithmetic is folded exactly (big.Rat, never float64)
//   - equal bases inside a product merge into one power (x*x → x**2)
//   - like terms inside a sum merge coefficients (x + 2*x → 3*x)
//
// Every exported constructor returns a simplified tree, so Simplify is
// idempotent and Equal compares canonical forms.
package expr

import (
	"math"
	"math/big"
	"sort"
)

// ratOne is shared for cheap comparisons; never mutated.
var ratOne = big.NewRat(1, 1)

// ---------------------------------------------------------------------------
// Num — exact rational constant
// ---------------------------------------------------------------------------

// Num is an exact rational constant.
type Num struct{ val *big.Rat }

// Int returns the integer constant n.
func Int(n int64) *Num { return &Num{val: new(big.Rat).SetInt64(n)} }

// Ratio returns the exact fraction p/q. q must be non-zero.
func Ratio(p, q int64) *Num { return &Num{val: big.NewRat(p, q)} }

// Rat returns a literal holding a copy of r.
func Rat(r *big.Rat) *Num { return numFromRat(r) }

func numFromRat(r *big.Rat) *Num { return &Num{val: new(big.Rat).Set(r)} }

// Simplify returns the node unchanged; numbers are already canonical.
func (n *Num) Simplify() Expr { return n }

// Substitute returns the node unchanged.
func (n *Num) Substitute(string, Expr) Expr { return n }

// Equal reports exact rational equality.
func (n *Num) Equal(other Expr) bool {
	o, ok := other.(*Num)

	return ok && n.val.Cmp(o.val) == 0
}

// Rat returns a copy of the exact value.
func (n *Num) Rat() *big.Rat { return new(big.Rat).Set(n.val) }

// Float64 returns the nearest float64.
func (n *Num) Float64() float64 { f, _ := n.val.Float64(); return f }

// Sign reports -1, 0, or +1.
func (n *Num) Sign() int { return n.val.Sign() }

// IsZero reports whether the value is exactly 0.
func (n *Num) IsZero() bool { return n.val.Sign() == 0 }

// IsOne reports whether the value is exactly 1.
func (n *Num) IsOne() bool { return n.val.Cmp(ratOne) == 0 }

// IsInt reports whether the value is an integer.
func (n *Num) IsInt() bool { return n.val.IsInt() }

// Int64 returns the value as int64 when it is an integer that fits.
func (n *Num) Int64() (int64, bool) {
	if !n.val.IsInt() || !n.val.Num().IsInt64() {
		return 0, false
	}

	return n.val.Num().Int64(), true
}

func (n *Num) isNegOne() bool { return n.val.Cmp(big.NewRat(-1, 1)) == 0 }

func numAdd(a, b *Num) *Num { return &Num{val: new(big.Rat).Add(a.val, b.val)} }
func numMul(a, b *Num) *Num { return &Num{val: new(big.Rat).Mul(a.val, b.val)} }
func numNeg(a *Num) *Num    { return &Num{val: new(big.Rat).Neg(a.val)} }
func numRecip(a *Num) *Num  { return &Num{val: new(big.Rat).Inv(a.val)} }

// ---------------------------------------------------------------------------
// Var — a free variable
// ---------------------------------------------------------------------------

// Var is a free variable. User input only ever yields the canonical x;
// other names appear transiently inside rewriting (u-substitution).
type Var struct{ name string }

// X returns the canonical free variable.
func X() *Var { return &Var{name: VarName} }

// Variable returns a variable with an explicit name.
func Variable(name string) *Var { return &Var{name: name} }

// Name returns the variable name.
func (v *Var) Name() string { return v.name }

// Simplify returns the node unchanged.
func (v *Var) Simplify() Expr { return v }

// Substitute replaces the variable when the name matches.
func (v *Var) Substitute(name string, value Expr) Expr {
	if v.name == name {
		return value
	}

	return v
}

// Equal reports name equality.
func (v *Var) Equal(other Expr) bool {
	o, ok := other.(*Var)

	return ok && v.name == o.name
}

// ---------------------------------------------------------------------------
// Const — symbolic pi / e
// ---------------------------------------------------------------------------

// Const is a named exact constant, kept symbolic through all rewriting.
type Const struct{ name ConstName }

// Pi returns the symbolic circle constant.
func Pi() *Const { return &Const{name: ConstPi} }

// E returns the symbolic Euler constant.
func E() *Const { return &Const{name: ConstE} }

// Name returns which constant this is.
func (c *Const) Name() ConstName { return c.name }

// Value returns the float64 approximation (math.Pi or math.E).
func (c *Const) Value() float64 {
	if c.name == ConstPi {
		return math.Pi
	}

	return math.E
}

// Simplify returns the node unchanged.
func (c *Const) Simplify() Expr { return c }

// Substitute returns the node unchanged; constants are not variables.
func (c *Const) Substitute(string, Expr) Expr { return c }

// Equal reports same-constant equality.
func (c *Const) Equal(other Expr) bool {
	o, ok := other.(*Const)

	return ok && c.name == o.name
}

// ---------------------------------------------------------------------------
// Add — n-ary sum
// ---------------------------------------------------------------------------

// Add is a flattened n-ary sum in canonical term order.
type Add struct{ terms []Expr }

// Sum builds the canonical sum of terms.
func Sum(terms ...Expr) Expr { return (&Add{terms: terms}).Simplify() }

// Terms returns the ordered terms. Callers must not mutate the slice.
func (a *Add) Terms() []Expr { return a.terms }

// Simplify flattens nested sums, folds rational constants, merges like
// terms by summing their coefficients, and orders the result.
func (a *Add) Simplify() Expr {
	flat := make([]Expr, 0, len(a.terms))
	for _, t := range a.terms {
		s := t.Simplify()
		if inner, ok := s.(*Add); ok {
			flat = append(flat, inner.terms...)
		} else {
			flat = append(flat, s)
		}
	}

	// Group terms by their non-numeric core; sum coefficients exactly.
	constant := Int(0)
	type group struct {
		coeff *Num
		core  Expr
	}
	order := make([]string, 0, len(flat))
	groups := make(map[string]*group, len(flat))
	for _, t := range flat {
		if n, ok := t.(*Num); ok {
			constant = numAdd(constant, n)
			continue
		}
		coeff, core := splitCoeff(t)
		key := core.String()
		g, seen := groups[key]
		if !seen {
			groups[key] = &group{coeff: coeff, core: core}
			order = append(order, key)
			continue
		}
		g.coeff = numAdd(g.coeff, coeff)
	}

	terms := make([]Expr, 0, len(order)+1)
	for _, key := range order {
		g := groups[key]
		if g.coeff.IsZero() {
			continue
		}
		if g.coeff.IsOne() {
			terms = append(terms, g.core)
		} else {
			terms = append(terms, Prod(g.coeff, g.core))
		}
	}
	sortTerms(terms)
	if !constant.IsZero() {
		terms = append(terms, constant)
	}

	switch len(terms) {
	case 0:
		return Int(0)
	case 1:
		return terms[0]
	default:
		return &Add{terms: terms}
	}
}

// Substitute maps over the terms and re-simplifies.
func (a *Add) Substitute(name string, value Expr) Expr {
	terms := make([]Expr, len(a.terms))
	for i, t := range a.terms {
		terms[i] = t.Substitute(name, value)
	}

	return Sum(terms...)
}

// Equal reports ordered structural equality; canonical ordering makes
// this a true commutative comparison.
func (a *Add) Equal(other Expr) bool {
	o, ok := other.(*Add)
	if !ok || len(a.terms) != len(o.terms) {
		return false
	}
	for i := range a.terms {
		if !a.terms[i].Equal(o.terms[i]) {
			return false
		}
	}

	return true
}

// splitCoeff splits t into a leading rational coefficient and the rest.
func splitCoeff(t Expr) (*Num, Expr) {
	m, ok := t.(*Mul)
	if !ok || len(m.factors) == 0 {
		return Int(1), t
	}
	n, ok := m.factors[0].(*Num)
	if !ok {
		return Int(1), t
	}
	rest := m.factors[1:]
	if len(rest) == 1 {
		return n, rest[0]
	}

	return n, &Mul{factors: rest}
}

// sortTerms orders sum terms for display and canonical comparison:
// non-polynomial terms first, then descending polynomial degree, then
// positive coefficients before negative, then lexical.
func sortTerms(terms []Expr) {
	type keyed struct {
		e    Expr
		rank int
		neg  bool
		str  string
	}
	ks := make([]keyed, len(terms))
	for i, t := range terms {
		deg, poly := Degree(t, VarName)
		rank := math.MaxInt32
		if poly {
			rank = deg
		}
		coeff, _ := splitCoeff(t)
		ks[i] = keyed{e: t, rank: rank, neg: coeff.Sign() < 0, str: t.String()}
	}
	sort.SliceStable(ks, func(i, j int) bool {
		if ks[i].rank != ks[j].rank {
			return ks[i].rank > ks[j].rank
		}
		if ks[i].neg != ks[j].neg {
			return !ks[i].neg
		}

		return ks[i].str < ks[j].str
	})
	for i := range ks {
		terms[i] = ks[i].e
	}
}

// ---------------------------------------------------------------------------
// Mul — n-ary product
// ---------------------------------------------------------------------------

// Mul is a flattened n-ary product. A rational coefficient, when present,
// is always the first factor; the rest are in canonical order.
type Mul struct{ factors []Expr }

// Prod builds the canonical product of factors.
func Prod(factors ...Expr) Expr { return (&Mul{factors: factors}).Simplify() }

// Neg returns -e.
func Neg(e Expr) Expr { return Prod(Int(-1), e) }

// Factors returns the ordered factors. Callers must not mutate the slice.
func (m *Mul) Factors() []Expr { return m.factors }

// Simplify flattens nested products, folds the rational coefficient,
// merges equal bases into one power, and orders the remaining factors.
func (m *Mul) Simplify() Expr {
	flat := make([]Expr, 0, len(m.factors))
	for _, f := range m.factors {
		s := f.Simplify()
		if inner, ok := s.(*Mul); ok {
			flat = append(flat, inner.factors...)
		} else {
			flat = append(flat, s)
		}
	}

	coeff := Int(1)
	type group struct {
		base Expr
		exps []Expr
	}
	order := make([]string, 0, len(flat))
	groups := make(map[string]*group, len(flat))
	for _, f := range flat {
		if n, ok := f.(*Num); ok {
			coeff = numMul(coeff, n)
			continue
		}
		base, exp := splitPower(f)
		key := base.String()
		g, seen := groups[key]
		if !seen {
			groups[key] = &group{base: base, exps: []Expr{exp}}
			order = append(order, key)
			continue
		}
		g.exps = append(g.exps, exp)
	}
	if coeff.IsZero() {
		return Int(0)
	}

	factors := make([]Expr, 0, len(order))
	for _, key := range order {
		g := groups[key]
		merged := Power(g.base, Sum(g.exps...))
		if n, ok := merged.(*Num); ok {
			coeff = numMul(coeff, n)
			continue
		}
		if inner, ok := merged.(*Mul); ok {
			// Exponents can cancel back to the bare base, which may itself
			// be a product; keep the result flat.
			for _, f := range inner.factors {
				if n, ok2 := f.(*Num); ok2 {
					coeff = numMul(coeff, n)
				} else {
					factors = append(factors, f)
				}
			}
			continue
		}
		factors = append(factors, merged)
	}
	sortFactors(factors)

	if len(factors) == 0 {
		return coeff
	}
	if coeff.IsOne() {
		if len(factors) == 1 {
			return factors[0]
		}

		return &Mul{factors: factors}
	}

	return &Mul{factors: append([]Expr{coeff}, factors...)}
}

// Substitute maps over the factors and re-simplifies.
func (m *Mul) Substitute(name string, value Expr) Expr {
	factors := make([]Expr, len(m.factors))
	for i, f := range m.factors {
		factors[i] = f.Substitute(name, value)
	}

	return Prod(factors...)
}

// Equal reports ordered structural equality.
func (m *Mul) Equal(other Expr) bool {
	o, ok := other.(*Mul)
	if !ok || len(m.factors) != len(o.factors) {
		return false
	}
	for i := range m.factors {
		if !m.factors[i].Equal(o.factors[i]) {
			return false
		}
	}

	return true
}

// splitPower views f as base**exp, with exp = 1 for non-powers.
func splitPower(f Expr) (base, exp Expr) {
	if p, ok := f.(*Pow); ok {
		return p.base, p.exp
	}

	return f, Int(1)
}

// sortFactors orders product factors deterministically by rendering.
func sortFactors(factors []Expr) {
	type keyed struct {
		e   Expr
		str string
	}
	ks := make([]keyed, len(factors))
	for i, f := range factors {
		ks[i] = keyed{e: f, str: f.String()}
	}
	sort.SliceStable(ks, func(i, j int) bool { return ks[i].str < ks[j].str })
	for i := range ks {
		factors[i] = ks[i].e
	}
}

// ---------------------------------------------------------------------------
// Pow — base ** exponent
// ---------------------------------------------------------------------------

// Pow is an exponentiation node.
type Pow struct{ base, exp Expr }

// Power builds the canonical base**exp.
func Power(base, exp Expr) Expr { return (&Pow{base: base, exp: exp}).Simplify() }

// Recip returns e**-1.
func Recip(e Expr) Expr { return Power(e, Int(-1)) }

// Sqrt returns e**(1/2); square roots are powers throughout the tree and
// only the renderer spells them "sqrt".
func Sqrt(e Expr) Expr { return Power(e, Ratio(1, 2)) }

// Base returns the base operand.
func (p *Pow) Base() Expr { return p.base }

// Exp returns the exponent operand.
func (p *Pow) Exp() Expr { return p.exp }

// foldPowLimit bounds exact integer-power folding so canonical forms stay
// readable; larger powers remain symbolic.
const foldPowLimit = 64

// Simplify applies the safe power identities and exact rational folding.
func (p *Pow) Simplify() Expr {
	base := p.base.Simplify()
	exp := p.exp.Simplify()

	if en, ok := exp.(*Num); ok {
		if en.IsZero() {
			// 0**0 folds to 1 by the usual CAS convention.
			return Int(1)
		}
		if en.IsOne() {
			return base
		}
		if bn, ok2 := base.(*Num); ok2 {
			if bn.IsZero() {
				if en.Sign() > 0 {
					return Int(0)
				}
				// 0 to a negative power: keep the node; numeric eval yields Inf.
				return &Pow{base: base, exp: exp}
			}
			if bn.IsOne() {
				return Int(1)
			}
			if k, fits := en.Int64(); fits && k >= -foldPowLimit && k <= foldPowLimit {
				return numFromRat(ratPow(bn.val, k))
			}
			// Half-integer exponents fold when the base is a perfect
			// square, so sqrt(4) is 2 and 4**(3/2) is 8.
			if !en.IsInt() && en.val.Denom().Cmp(bigTwo) == 0 && bn.Sign() > 0 {
				if root, exact := ratSqrt(bn.val); exact && en.val.Num().IsInt64() {
					p := en.val.Num().Int64()
					if p >= -foldPowLimit && p <= foldPowLimit {
						return numFromRat(ratPow(root, p))
					}
				}
			}
		}
		// (b**m)**n with integer n merges exponents; fractional outer powers
		// stay untouched (sqrt(x**2) is |x|, not x).
		if inner, ok2 := base.(*Pow); ok2 && en.IsInt() {
			if _, ok3 := inner.exp.(*Num); ok3 {
				return Power(inner.base, Prod(inner.exp, exp))
			}
		}
		// (a*b)**n with integer n distributes over the factors, so scaled
		// squares such as (2*x)**2 canonicalize to 4*x**2.
		if inner, ok2 := base.(*Mul); ok2 && en.IsInt() {
			if k, fits := en.Int64(); fits && k >= -foldPowLimit && k <= foldPowLimit {
				parts := make([]Expr, 0, len(inner.factors))
				for _, f := range inner.factors {
					parts = append(parts, Power(f, exp))
				}

				return Prod(parts...)
			}
		}
	}

	return &Pow{base: base, exp: exp}
}

var bigTwo = big.NewInt(2)

// ratSqrt returns the exact square root when r is a perfect square of
// rationals.
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

// ratPow raises r to the integer power k, exactly.
func ratPow(r *big.Rat, k int64) *big.Rat {
	neg := k < 0
	if neg {
		k = -k
	}
	num := new(big.Int).Exp(r.Num(), big.NewInt(k), nil)
	den := new(big.Int).Exp(r.Denom(), big.NewInt(k), nil)
	out := new(big.Rat).SetFrac(num, den)
	if neg {
		out.Inv(out)
	}

	return out
}

// Substitute maps over base and exponent and re-simplifies.
func (p *Pow) Substitute(name string, value Expr) Expr {
	return Power(p.base.Substitute(name, value), p.exp.Substitute(name, value))
}

// Equal reports structural equality of base and exponent.
func (p *Pow) Equal(other Expr) bool {
	o, ok := other.(*Pow)

	return ok && p.base.Equal(o.base) && p.exp.Equal(o.exp)
}

// ---------------------------------------------------------------------------
// Call — unary function application
// ---------------------------------------------------------------------------

// Call applies one function from the vocabulary to an argument.
type Call struct {
	fn  FuncName
	arg Expr
}

// Apply builds the canonical fn(arg).
func Apply(fn FuncName, arg Expr) Expr { return (&Call{fn: fn, arg: arg}).Simplify() }

// Convenience constructors for the names rewriting reaches for.
func Sin(arg Expr) Expr  { return Apply(FuncSin, arg) }
func Cos(arg Expr) Expr  { return Apply(FuncCos, arg) }
func Tan(arg Expr) Expr  { return Apply(FuncTan, arg) }
func Exp(arg Expr) Expr  { return Apply(FuncExp, arg) }
func Log(arg Expr) Expr  { return Apply(FuncLog, arg) }
func Abs(arg Expr) Expr  { return Apply(FuncAbs, arg) }
func Asin(arg Expr) Expr { return Apply(FuncAsin, arg) }
func Atan(arg Expr) Expr { return Apply(FuncAtan, arg) }
func Erf(arg Expr) Expr  { return Apply(FuncErf, arg) }

// Fn returns the function name.
func (c *Call) Fn() FuncName { return c.fn }

// Arg returns the argument expression.
func (c *Call) Arg() Expr { return c.arg }

// Simplify folds the exact special values the engine depends on and
// otherwise simplifies the argument.
func (c *Call) Simplify() Expr {
	arg := c.arg.Simplify()

	if n, ok := arg.(*Num); ok {
		if n.IsZero() {
			switch c.fn {
			case FuncSin, FuncTan, FuncAsin, FuncAtan, FuncAbs, FuncErf, FuncFresnelS, FuncFresnelC:
				return Int(0)
			case FuncCos, FuncExp:
				return Int(1)
			}
		}
		if n.IsOne() && (c.fn == FuncLog || c.fn == FuncLog10) {
			return Int(0)
		}
		if c.fn == FuncAbs {
			if n.Sign() < 0 {
				return numNeg(n)
			}

			return n
		}
	}
	if cn, ok := arg.(*Const); ok {
		if cn.name == ConstE && c.fn == FuncLog {
			return Int(1)
		}
		if cn.name == ConstPi {
			switch c.fn {
			case FuncSin, FuncTan:
				return Int(0)
			case FuncCos:
				return Int(-1)
			}
		}
	}
	// exp(log(u)) → u; log(exp(u)) → u. Both are safe on the parseable
	// vocabulary (log of a non-positive sample is a numeric concern, not a
	// rewriting one).
	if inner, ok := arg.(*Call); ok {
		if c.fn == FuncExp && inner.fn == FuncLog {
			return inner.arg
		}
		if c.fn == FuncLog && inner.fn == FuncExp {
			return inner.arg
		}
	}

	return &Call{fn: c.fn, arg: arg}
}

// Substitute maps over the argument and re-simplifies.
func (c *Call) Substitute(name string, value Expr) Expr {
	return Apply(c.fn, c.arg.Substitute(name, value))
}

// Equal reports same function and structurally equal argument.
func (c *Call) Equal(other Expr) bool {
	o, ok := other.(*Call)

	return ok && c.fn == o.fn && c.arg.Equal(o.arg)
}

// ---------------------------------------------------------------------------
// Integral — unresolved-integral marker
// ---------------------------------------------------------------------------

// Integral marks an antiderivative the rewriting could not resolve.
// A candidate result still containing one of these is a failed candidate;
// HasUnevaluated is the check the fallback chain uses.
type Integral struct{ integrand Expr }

// IntegralOf wraps integrand in an unresolved-integral marker.
func IntegralOf(integrand Expr) *Integral {
	return &Integral{integrand: integrand.Simplify()}
}

// Integrand returns the wrapped expression.
func (in *Integral) Integrand() Expr { return in.integrand }

// Simplify simplifies the integrand and keeps the marker.
func (in *Integral) Simplify() Expr { return &Integral{integrand: in.integrand.Simplify()} }

// Substitute maps into the integrand.
func (in *Integral) Substitute(name string, value Expr) Expr {
	return &Integral{integrand: in.integrand.Substitute(name, value)}
}

// Equal reports structural equality of the integrands.
func (in *Integral) Equal(other Expr) bool {
	o, ok := other.(*Integral)

	return ok && in.integrand.Equal(o.integrand)
}
