package plotdata

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/interp"
)

// Build converts raw samples into renderable series.
//
// Description:
//
//	The curve keeps every finite (x, y) pair in order. The fill strip
//	is rebuilt from scratch: FillSamples evenly spaced points across
//	the integration bounds, each y linearly interpolated from the
//	finite samples, clamped to the sampled support. Masking and
//	interpolation are separate concerns on purpose; a pole in the
//	middle of the domain must leave a visible gap in the curve yet
//	still allow shading on both flanks.
//
// Errors:
//   - ErrDimensionMismatch when xs and ys differ in length
//   - ErrBadBounds when the bounds are non-finite or not increasing
//   - ErrBadSamples when opts.FillSamples < 2
//   - ErrNoRenderablePoints when no sample is finite
func Build(xs, ys []float64, lower, upper float64, opts Options) (PlotData, error) {
	if len(xs) != len(ys) {
		return PlotData{}, fmt.Errorf("%w: len(xs)=%d len(ys)=%d", ErrDimensionMismatch, len(xs), len(ys))
	}
	if math.IsNaN(lower) || math.IsNaN(upper) || math.IsInf(lower, 0) || math.IsInf(upper, 0) || lower >= upper {
		return PlotData{}, fmt.Errorf("%w: [%g, %g]", ErrBadBounds, lower, upper)
	}
	if opts.FillSamples < 2 {
		return PlotData{}, fmt.Errorf("%w: got %d", ErrBadSamples, opts.FillSamples)
	}

	curve := make([]Point, 0, len(xs))
	finiteX := make([]float64, 0, len(xs))
	finiteY := make([]float64, 0, len(xs))
	for i, x := range xs {
		y := ys[i]
		if math.IsNaN(y) || math.IsInf(y, 0) {
			continue
		}
		curve = append(curve, Point{X: x, Y: y})
		finiteX = append(finiteX, x)
		finiteY = append(finiteY, y)
	}
	masked := len(xs) - len(curve)
	if len(curve) == 0 {
		return PlotData{}, ErrNoRenderablePoints
	}

	out := PlotData{Curve: curve, Masked: masked}
	out.Fill = fillStrip(finiteX, finiteY, lower, upper, opts.FillSamples)

	return out, nil
}

// fillStrip interpolates the shading points across the part of
// [lower, upper] the finite samples actually cover.
func fillStrip(finiteX, finiteY []float64, lower, upper float64, samples int) []Point {
	lo := math.Max(lower, finiteX[0])
	hi := math.Min(upper, finiteX[len(finiteX)-1])
	if lo > hi {
		// The finite support does not meet the bounds; nothing to shade.
		return nil
	}
	if len(finiteX) == 1 {
		return []Point{{X: lo, Y: finiteY[0]}}
	}

	var pl interp.PiecewiseLinear
	if err := pl.Fit(finiteX, finiteY); err != nil {
		// Fit only fails on malformed abscissae; the sampler emits
		// strictly increasing xs, so treat this as unshadeable.
		return nil
	}
	if lo == hi {
		return []Point{{X: lo, Y: pl.Predict(lo)}}
	}
	grid := make([]float64, samples)
	floats.Span(grid, lo, hi)
	fill := make([]Point, samples)
	for i, x := range grid {
		fill[i] = Point{X: x, Y: pl.Predict(x)}
	}

	return fill
}
