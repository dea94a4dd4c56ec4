// This file provides structural queries (free variables, unresolved
// markers) and the polynomial toolkit (Expand, Degree, PolyCoeffs) the
// rewriting strategies build on.
package expr

// DependsOn reports whether the named variable occurs in e.
func DependsOn(e Expr, name string) bool {
	switch v := e.(type) {
	case *Var:
		return v.name == name
	case *Add:
		for _, t := range v.terms {
			if DependsOn(t, name) {
				return true
			}
		}
	case *Mul:
		for _, f := range v.factors {
			if DependsOn(f, name) {
				return true
			}
		}
	case *Pow:
		return DependsOn(v.base, name) || DependsOn(v.exp, name)
	case *Call:
		return DependsOn(v.arg, name)
	case *Integral:
		return DependsOn(v.integrand, name)
	}

	return false
}

// FreeVars collects the variable names occurring in e.
func FreeVars(e Expr) map[string]struct{} {
	out := make(map[string]struct{})
	collectVars(e, out)

	return out
}

func collectVars(e Expr, out map[string]struct{}) {
	switch v := e.(type) {
	case *Var:
		out[v.name] = struct{}{}
	case *Add:
		for _, t := range v.terms {
			collectVars(t, out)
		}
	case *Mul:
		for _, f := range v.factors {
			collectVars(f, out)
		}
	case *Pow:
		collectVars(v.base, out)
		collectVars(v.exp, out)
	case *Call:
		collectVars(v.arg, out)
	case *Integral:
		collectVars(v.integrand, out)
	}
}

// HasUnevaluated reports whether e contains an unresolved-integral marker.
func HasUnevaluated(e Expr) bool {
	switch v := e.(type) {
	case *Integral:
		return true
	case *Add:
		for _, t := range v.terms {
			if HasUnevaluated(t) {
				return true
			}
		}
	case *Mul:
		for _, f := range v.factors {
			if HasUnevaluated(f) {
				return true
			}
		}
	case *Pow:
		return HasUnevaluated(v.base) || HasUnevaluated(v.exp)
	case *Call:
		return HasUnevaluated(v.arg)
	}

	return false
}

// expandPowLimit bounds how large an integer power of a sum Expand will
// multiply out.
const expandPowLimit = 16

// Expand distributes products over sums and multiplies out small integer
// powers of sums, then re-simplifies. (x+1)**2 → x**2 + 2*x + 1.
func Expand(e Expr) Expr { return expand(e).Simplify() }

func expand(e Expr) Expr {
	switch v := e.(type) {
	case *Add:
		terms := make([]Expr, len(v.terms))
		for i, t := range v.terms {
			terms[i] = expand(t)
		}

		return Sum(terms...)

	case *Mul:
		factors := make([]Expr, len(v.factors))
		for i, f := range v.factors {
			factors[i] = expand(f)
		}

		return distribute(factors)

	case *Pow:
		base := expand(v.base)
		exp := expand(v.exp)
		if en, ok := exp.(*Num); ok {
			if k, fits := en.Int64(); fits && k >= 2 && k <= expandPowLimit {
				if sum, ok2 := base.(*Add); ok2 {
					factors := make([]Expr, k)
					for i := range factors {
						factors[i] = sum
					}

					return distribute(factors)
				}
			}
		}

		return Power(base, exp)

	case *Call:
		return Apply(v.fn, expand(v.arg))
	}

	return e
}

// distribute multiplies out a factor list, crossing every sum.
func distribute(factors []Expr) Expr {
	acc := []Expr{Int(1)}
	for _, f := range factors {
		fTerms := []Expr{f}
		if sum, ok := f.(*Add); ok {
			fTerms = sum.terms
		}
		next := make([]Expr, 0, len(acc)*len(fTerms))
		for _, a := range acc {
			for _, t := range fTerms {
				next = append(next, Prod(a, t))
			}
		}
		acc = next
	}

	return Sum(acc...)
}

// Degree returns the degree of e as a polynomial in the named variable.
// ok is false when e is not a polynomial in it (negative or fractional
// powers, the variable inside a function, unresolved markers).
func Degree(e Expr, name string) (deg int, ok bool) {
	switch v := e.(type) {
	case *Num, *Const:
		return 0, true

	case *Var:
		if v.name == name {
			return 1, true
		}

		return 0, true

	case *Add:
		maxDeg := 0
		for _, t := range v.terms {
			d, tOK := Degree(t, name)
			if !tOK {
				return 0, false
			}
			if d > maxDeg {
				maxDeg = d
			}
		}

		return maxDeg, true

	case *Mul:
		total := 0
		for _, f := range v.factors {
			d, fOK := Degree(f, name)
			if !fOK {
				return 0, false
			}
			total += d
		}

		return total, true

	case *Pow:
		if DependsOn(v.exp, name) {
			return 0, false
		}
		d, bOK := Degree(v.base, name)
		if !bOK {
			return 0, false
		}
		en, isNum := v.exp.(*Num)
		if !isNum {
			// Symbolic exponent over a variable-free base is still degree 0.
			if d == 0 {
				return 0, true
			}

			return 0, false
		}
		k, fits := en.Int64()
		if !fits || k < 0 || !en.IsInt() {
			if d == 0 {
				return 0, true
			}

			return 0, false
		}

		return d * int(k), true

	case *Call:
		if DependsOn(v.arg, name) {
			return 0, false
		}

		return 0, true
	}

	return 0, false
}

// PolyCoeffs extracts the rational coefficient of each power of the named
// variable. It expects (and enforces) a polynomial with *Num coefficients;
// expand first when the input may be factored.
func PolyCoeffs(e Expr, name string) (map[int]*Num, bool) {
	out := make(map[int]*Num)
	terms := []Expr{e}
	if sum, ok := e.(*Add); ok {
		terms = sum.terms
	}
	for _, t := range terms {
		deg, coeff, ok := monomial(t, name)
		if !ok {
			return nil, false
		}
		if prev, seen := out[deg]; seen {
			out[deg] = numAdd(prev, coeff)
		} else {
			out[deg] = coeff
		}
	}

	return out, true
}

// monomial decomposes a term as coeff·name**deg.
func monomial(t Expr, name string) (deg int, coeff *Num, ok bool) {
	switch v := t.(type) {
	case *Num:
		return 0, v, true

	case *Var:
		if v.name == name {
			return 1, Int(1), true
		}

		return 0, nil, false

	case *Pow:
		d, pOK := powVarDegree(v, name)
		if !pOK {
			return 0, nil, false
		}

		return d, Int(1), true

	case *Mul:
		deg = 0
		coeff = Int(1)
		for _, f := range v.factors {
			switch fv := f.(type) {
			case *Num:
				coeff = numMul(coeff, fv)
			case *Var:
				if fv.name != name {
					return 0, nil, false
				}
				deg++
			case *Pow:
				d, pOK := powVarDegree(fv, name)
				if !pOK {
					return 0, nil, false
				}
				deg += d
			default:
				return 0, nil, false
			}
		}

		return deg, coeff, true
	}

	return 0, nil, false
}

// powVarDegree reads name**k with integer k ≥ 0.
func powVarDegree(p *Pow, name string) (int, bool) {
	b, ok := p.base.(*Var)
	if !ok || b.name != name {
		return 0, false
	}
	en, ok := p.exp.(*Num)
	if !ok || !en.IsInt() {
		return 0, false
	}
	k, fits := en.Int64()
	if !fits || k < 0 {
		return 0, false
	}

	return int(k), true
}
