package plotdata

import "errors"

var (
	// ErrDimensionMismatch - xs and ys have different lengths.
	ErrDimensionMismatch = errors.New("plotdata: xs and ys length mismatch")
	// ErrBadBounds - bounds are non-finite or not increasing.
	ErrBadBounds = errors.New("plotdata: invalid bounds")
	// ErrBadSamples - the fill sample count is too small.
	ErrBadSamples = errors.New("plotdata: fill samples must be ≥ 2")
	// ErrNoRenderablePoints - every sample was non-finite; there is
	// nothing to draw.
	ErrNoRenderablePoints = errors.New("plotdata: no renderable points")
)

// DefaultFillSamples is the fill strip resolution across the bounds.
const DefaultFillSamples = 500

// Options tunes Build.
type Options struct {
	// FillSamples is the number of interpolated fill points laid across
	// the integration bounds.
	FillSamples int
}

// DefaultOptions returns the canonical configuration.
func DefaultOptions() Options {
	return Options{FillSamples: DefaultFillSamples}
}

// Point is one plottable sample.
type Point struct {
	X float64
	Y float64
}

// PlotData is the renderable outcome: the masked curve, the fill strip
// under it between the integration bounds, and how many raw samples
// the mask dropped.
type PlotData struct {
	Curve  []Point
	Fill   []Point
	Masked int
}
