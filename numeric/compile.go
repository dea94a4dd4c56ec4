// This file compiles expression trees into float64 closures.
package numeric

import (
	"fmt"
	"math"

	"github.com/katalvlaran/integrix/expr"
)

// funcTable maps the evaluable vocabulary onto the math package.
// Fresnel integrals are absent on purpose: they only occur inside
// symbolic antiderivatives, which are rendered, never sampled.
var funcTable = map[expr.FuncName]func(float64) float64{
	expr.FuncSin:   math.Sin,
	expr.FuncCos:   math.Cos,
	expr.FuncTan:   math.Tan,
	expr.FuncAsin:  math.Asin,
	expr.FuncAcos:  math.Acos,
	expr.FuncAtan:  math.Atan,
	expr.FuncExp:   math.Exp,
	expr.FuncLog:   math.Log,
	expr.FuncLog10: math.Log10,
	expr.FuncAbs:   math.Abs,
	expr.FuncErf:   math.Erf,
}

// Compile walks the tree once and returns a closure evaluating it.
// Domain violations at evaluation time (log of a negative, division by
// zero) are not errors: the closure returns NaN or ±Inf and Classify
// accounts for them.
//
// Complexity: O(n) nodes to compile; the closure itself is O(n) per call.
func Compile(e expr.Expr) (Fn, error) {
	switch v := e.(type) {
	case *expr.Num:
		c := v.Float64()

		return func(float64) float64 { return c }, nil

	case *expr.Var:
		if v.Name() != expr.VarName {
			return nil, fmt.Errorf("%w: variable %q", ErrUnsupported, v.Name())
		}

		return func(x float64) float64 { return x }, nil

	case *expr.Const:
		c := v.Value()

		return func(float64) float64 { return c }, nil

	case *expr.Add:
		parts, err := compileAll(v.Terms())
		if err != nil {
			return nil, err
		}

		return func(x float64) float64 {
			sum := 0.0
			for _, p := range parts {
				sum += p(x)
			}

			return sum
		}, nil

	case *expr.Mul:
		parts, err := compileAll(v.Factors())
		if err != nil {
			return nil, err
		}

		return func(x float64) float64 {
			prod := 1.0
			for _, p := range parts {
				prod *= p(x)
			}

			return prod
		}, nil

	case *expr.Pow:
		return compilePow(v)

	case *expr.Call:
		fn, ok := funcTable[v.Fn()]
		if !ok {
			return nil, fmt.Errorf("%w: function %s", ErrUnsupported, v.Fn())
		}
		arg, err := Compile(v.Arg())
		if err != nil {
			return nil, err
		}

		return func(x float64) float64 { return fn(arg(x)) }, nil

	case *expr.Integral:
		return nil, fmt.Errorf("%w: unresolved integral", ErrUnsupported)
	}

	return nil, ErrUnsupported
}

func compileAll(es []expr.Expr) ([]Fn, error) {
	out := make([]Fn, len(es))
	for i, e := range es {
		fn, err := Compile(e)
		if err != nil {
			return nil, err
		}
		out[i] = fn
	}

	return out, nil
}

// compilePow prefers exact repeated multiplication for small integer
// exponents, matching math.Pow semantics elsewhere (negative base with a
// fractional exponent yields NaN).
func compilePow(p *expr.Pow) (Fn, error) {
	base, err := Compile(p.Base())
	if err != nil {
		return nil, err
	}
	if en, ok := p.Exp().(*expr.Num); ok {
		if k, fits := en.Int64(); fits && k >= -16 && k <= 16 {
			return func(x float64) float64 { return ipow(base(x), k) }, nil
		}
	}
	exp, err := Compile(p.Exp())
	if err != nil {
		return nil, err
	}

	return func(x float64) float64 { return math.Pow(base(x), exp(x)) }, nil
}

// ipow computes b**k by binary exponentiation; k may be negative.
func ipow(b float64, k int64) float64 {
	if k == 0 {
		return 1
	}
	neg := k < 0
	if neg {
		k = -k
	}
	out := 1.0
	for k > 0 {
		if k&1 == 1 {
			out *= b
		}
		b *= b
		k >>= 1
	}
	if neg {
		return 1 / out
	}

	return out
}
