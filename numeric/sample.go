// This file builds sampling grids and classifies evaluated values.
package numeric

import (
	"math"

	"gonum.org/v1/gonum/floats"
)

// Domain returns the margin-extended sampling grid for plotting a function
// integrated over [lower, upper]: Samples evenly spaced points covering
// [lower-m, upper+m] with m = MarginFrac·(upper-lower).
//
// Errors: ErrBadBounds for non-finite or non-increasing bounds,
// ErrBadSamples for a grid smaller than two points.
//
// Complexity: O(Samples).
func Domain(lower, upper float64, opts Options) ([]float64, error) {
	if !isFinite(lower) || !isFinite(upper) || lower >= upper {
		return nil, ErrBadBounds
	}
	if opts.Samples < 2 {
		return nil, ErrBadSamples
	}

	margin := opts.MarginFrac * (upper - lower)
	xs := make([]float64, opts.Samples)
	floats.Span(xs, lower-margin, upper+margin)

	return xs, nil
}

// EvalOver evaluates fn at every grid point.
func EvalOver(fn Fn, xs []float64) []float64 {
	ys := make([]float64, len(xs))
	for i, x := range xs {
		ys[i] = fn(x)
	}

	return ys
}

// Classify tags every sample as finite, NaN, or ±Inf.
func Classify(ys []float64) Classification {
	cl := Classification{Finite: make([]bool, len(ys))}
	for i, y := range ys {
		switch {
		case math.IsNaN(y):
			cl.NaNs++
		case math.IsInf(y, 1):
			cl.PosInf++
		case math.IsInf(y, -1):
			cl.NegInf++
		default:
			cl.Finite[i] = true
		}
	}

	return cl
}

func isFinite(v float64) bool { return !math.IsNaN(v) && !math.IsInf(v, 0) }
