// This file renders expressions: String in the input grammar and LaTeX for
// display. Products with negative exponents render as quotients, powers of
// 1/2 render as sqrt, and sums join with explicit signs, so String output
// reads the way the formula was typed and re-parses to an Equal tree.
package expr

import (
	"math/big"
	"strings"
)

func (n *Num) precedence() int      { return precAtom }
func (v *Var) precedence() int      { return precAtom }
func (c *Const) precedence() int    { return precAtom }
func (a *Add) precedence() int      { return precAdd }
func (m *Mul) precedence() int      { return precMul }
func (p *Pow) precedence() int      { return precPow }
func (c *Call) precedence() int     { return precAtom }
func (in *Integral) precedence() int { return precAtom }

// renderAt renders e, parenthesized when it binds looser than min.
func renderAt(e Expr, min int) string {
	s := e.String()
	if e.precedence() < min {
		return "(" + s + ")"
	}

	return s
}

// String renders the exact rational ("3", "-2", "1/3").
func (n *Num) String() string { return n.val.RatString() }

// String returns the variable name.
func (v *Var) String() string { return v.name }

// String returns "pi" or "e".
func (c *Const) String() string { return c.name.String() }

// String joins terms with sign-aware separators: "a + b", "a - b".
func (a *Add) String() string {
	var b strings.Builder
	for i, t := range a.terms {
		s := t.String()
		switch {
		case i == 0:
			b.WriteString(s)
		case strings.HasPrefix(s, "-"):
			b.WriteString(" - ")
			b.WriteString(s[1:])
		default:
			b.WriteString(" + ")
			b.WriteString(s)
		}
	}

	return b.String()
}

// String renders the product as a quotient when negative exponents or a
// non-unit denominator are present: "x**3/3", "2*x/3", "1/(2*x)".
func (m *Mul) String() string {
	coeff, rest := splitCoeff(m)

	return fracString(coeff, rest)
}

// String renders powers; exponent 1/2 spells "sqrt", negative exponents
// render as a quotient.
func (p *Pow) String() string {
	if en, ok := p.exp.(*Num); ok {
		if en.Equal(Ratio(1, 2)) {
			return "sqrt(" + p.base.String() + ")"
		}
		if en.Sign() < 0 {
			return fracString(Int(1), p)
		}
	}
	base := renderAt(p.base, precPow+1)
	if bn, ok := p.base.(*Num); ok && (bn.Sign() < 0 || !bn.IsInt()) {
		base = "(" + bn.String() + ")"
	}
	exp := renderAt(p.exp, precPow+1)
	if en, ok := p.exp.(*Num); ok && (en.Sign() < 0 || !en.IsInt()) {
		exp = "(" + en.String() + ")"
	}

	return base + "**" + exp
}

// String renders the call in the input grammar.
func (c *Call) String() string { return c.fn.String() + "(" + c.arg.String() + ")" }

// String renders the unresolved marker; it is display vocabulary only and
// deliberately not re-parseable.
func (in *Integral) String() string {
	return "integral(" + in.integrand.String() + ", " + VarName + ")"
}

// fracString renders coeff * rest as a quotient string. rest may be nil
// for a pure number.
func fracString(coeff *Num, rest Expr) string {
	numParts, denParts := splitQuotient(rest)

	sign := ""
	if coeff.Sign() < 0 {
		sign = "-"
		coeff = numNeg(coeff)
	}
	p, q := coeff.val.Num(), coeff.val.Denom()
	if p.IsInt64() && p.Int64() == 1 {
		if len(numParts) == 0 {
			numParts = append(numParts, Int(1))
		}
	} else {
		numParts = append([]Expr{numFromRat(ratFromInt(p))}, numParts...)
	}
	if !(q.IsInt64() && q.Int64() == 1) {
		denParts = append([]Expr{numFromRat(ratFromInt(q))}, denParts...)
	}

	num := joinFactors(numParts)
	if len(denParts) == 0 {
		return sign + num
	}
	den := joinFactors(denParts)
	if len(denParts) > 1 {
		den = "(" + den + ")"
	} else if denParts[0].precedence() < precPow {
		den = "(" + den + ")"
	}

	return sign + num + "/" + den
}

// splitQuotient separates e into numerator and denominator factor lists,
// flipping negative exponents into the denominator.
func splitQuotient(e Expr) (num, den []Expr) {
	if e == nil {
		return nil, nil
	}
	factors := []Expr{e}
	if m, ok := e.(*Mul); ok {
		factors = m.factors
	}
	for _, f := range factors {
		if p, ok := f.(*Pow); ok {
			if en, ok2 := p.exp.(*Num); ok2 && en.Sign() < 0 {
				den = append(den, Power(p.base, numNeg(en)))
				continue
			}
		}
		num = append(num, f)
	}

	return num, den
}

// joinFactors renders a factor list with "*", parenthesizing sums.
func joinFactors(factors []Expr) string {
	parts := make([]string, len(factors))
	for i, f := range factors {
		parts[i] = renderAt(f, precMul)
	}

	return strings.Join(parts, "*")
}

func ratFromInt(i *big.Int) *big.Rat { return new(big.Rat).SetInt(i) }

// ---------------------------------------------------------------------------
// LaTeX rendering
// ---------------------------------------------------------------------------

// latexAt renders e as LaTeX, parenthesized when it binds looser than min.
func latexAt(e Expr, min int) string {
	s := e.LaTeX()
	if e.precedence() < min {
		return `\left(` + s + `\right)`
	}

	return s
}

// LaTeX renders the rational, fractions as \frac.
func (n *Num) LaTeX() string {
	if n.IsInt() {
		return n.val.RatString()
	}
	sign := ""
	v := n.val
	if v.Sign() < 0 {
		sign = "-"
		v = new(big.Rat).Neg(v)
	}

	return sign + `\frac{` + v.Num().String() + `}{` + v.Denom().String() + `}`
}

// LaTeX returns the variable name.
func (v *Var) LaTeX() string { return v.name }

// LaTeX renders pi as \pi and e bare.
func (c *Const) LaTeX() string {
	if c.name == ConstPi {
		return `\pi`
	}

	return "e"
}

// LaTeX joins terms with sign-aware separators.
func (a *Add) LaTeX() string {
	var b strings.Builder
	for i, t := range a.terms {
		s := t.LaTeX()
		switch {
		case i == 0:
			b.WriteString(s)
		case strings.HasPrefix(s, "-"):
			b.WriteString(" - ")
			b.WriteString(s[1:])
		default:
			b.WriteString(" + ")
			b.WriteString(s)
		}
	}

	return b.String()
}

// LaTeX renders the product, quotients as \frac.
func (m *Mul) LaTeX() string {
	coeff, rest := splitCoeff(m)

	return fracLaTeX(coeff, rest)
}

// LaTeX renders powers, exponent 1/2 as \sqrt.
func (p *Pow) LaTeX() string {
	if en, ok := p.exp.(*Num); ok {
		if en.Equal(Ratio(1, 2)) {
			return `\sqrt{` + p.base.LaTeX() + `}`
		}
		if en.Sign() < 0 {
			return fracLaTeX(Int(1), p)
		}
	}
	base := latexAt(p.base, precPow+1)
	if bn, ok := p.base.(*Num); ok && (bn.Sign() < 0 || !bn.IsInt()) {
		base = `\left(` + bn.LaTeX() + `\right)`
	}

	return base + "^{" + p.exp.LaTeX() + "}"
}

// latexFuncs maps function names onto their LaTeX macros; absent entries
// use \operatorname.
var latexFuncs = map[FuncName]string{
	FuncSin:      `\sin`,
	FuncCos:      `\cos`,
	FuncTan:      `\tan`,
	FuncAsin:     `\arcsin`,
	FuncAcos:     `\arccos`,
	FuncAtan:     `\arctan`,
	FuncLog:      `\log`,
	FuncLog10:    `\log_{10}`,
	FuncErf:      `\operatorname{erf}`,
	FuncFresnelS: `\operatorname{S}`,
	FuncFresnelC: `\operatorname{C}`,
}

// LaTeX renders function application; exp as a power of e, abs with bars.
func (c *Call) LaTeX() string {
	switch c.fn {
	case FuncExp:
		return "e^{" + c.arg.LaTeX() + "}"
	case FuncAbs:
		return `\left|` + c.arg.LaTeX() + `\right|`
	}
	name, ok := latexFuncs[c.fn]
	if !ok {
		name = `\operatorname{` + c.fn.String() + `}`
	}

	return name + `\left(` + c.arg.LaTeX() + `\right)`
}

// LaTeX renders the unresolved marker as an integral sign.
func (in *Integral) LaTeX() string {
	return `\int ` + in.integrand.LaTeX() + `\, d` + VarName
}

// fracLaTeX renders coeff * rest as LaTeX, quotients as \frac.
func fracLaTeX(coeff *Num, rest Expr) string {
	numParts, denParts := splitQuotient(rest)

	sign := ""
	if coeff.Sign() < 0 {
		sign = "-"
		coeff = numNeg(coeff)
	}
	p, q := coeff.val.Num(), coeff.val.Denom()
	if !(p.IsInt64() && p.Int64() == 1) {
		numParts = append([]Expr{numFromRat(ratFromInt(p))}, numParts...)
	}
	if !(q.IsInt64() && q.Int64() == 1) {
		denParts = append([]Expr{numFromRat(ratFromInt(q))}, denParts...)
	}

	num := joinLaTeXFactors(numParts)
	if num == "" {
		num = "1"
	}
	if len(denParts) == 0 {
		return sign + num
	}

	return sign + `\frac{` + num + `}{` + joinLaTeXFactors(denParts) + "}"
}

// joinLaTeXFactors renders a factor list with implicit multiplication.
func joinLaTeXFactors(factors []Expr) string {
	parts := make([]string, len(factors))
	for i, f := range factors {
		parts[i] = latexAt(f, precMul)
	}

	return strings.Join(parts, " ")
}
