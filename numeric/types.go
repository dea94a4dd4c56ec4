// This file declares sentinel errors, sampling options, and the
// Classification result type.
package numeric

import "errors"

// Sentinel errors for compilation and sampling.
var (
	// ErrUnsupported indicates the expression contains a node that has no
	// float64 evaluation (an unresolved-integral marker, a Fresnel integral,
	// or a non-canonical variable).
	ErrUnsupported = errors.New("numeric: expression not evaluable")

	// ErrBadBounds indicates non-finite or non-increasing sampling bounds.
	ErrBadBounds = errors.New("numeric: bounds must be finite with lower < upper")

	// ErrBadSamples indicates a sampling grid of fewer than two points.
	ErrBadSamples = errors.New("numeric: at least two samples required")
)

// Default sampling parameters. The margin widens the plotted window beyond
// the integration bounds; samples size the display grid.
const (
	// DefaultMarginFrac extends the grid by this fraction of (upper-lower)
	// on each side.
	DefaultMarginFrac = 0.2

	// DefaultSamples is the display-grid resolution.
	DefaultSamples = 1000
)

// Options configures Domain.
//
// Fields:
//   - MarginFrac — fraction of the bound span added on each side.
//   - Samples    — number of grid points, endpoints included.
type Options struct {
	MarginFrac float64
	Samples    int
}

// DefaultOptions returns the standard sampling configuration.
func DefaultOptions() Options {
	return Options{
		MarginFrac: DefaultMarginFrac,
		Samples:    DefaultSamples,
	}
}

// Fn is a compiled single-variable function.
type Fn func(x float64) float64

// Classification is the per-sample finiteness accounting of an evaluated
// grid.
type Classification struct {
	// Finite flags each sample as finite.
	Finite []bool

	// NaNs counts not-a-number samples.
	NaNs int

	// PosInf and NegInf count infinite samples by sign.
	PosInf int
	NegInf int
}

// AllFinite reports whether every sample is finite.
func (c Classification) AllFinite() bool {
	return c.NaNs == 0 && c.PosInf == 0 && c.NegInf == 0
}

// FiniteCount returns the number of finite samples.
func (c Classification) FiniteCount() int {
	n := 0
	for _, ok := range c.Finite {
		if ok {
			n++
		}
	}

	return n
}

// NonFiniteWithin reports whether any non-finite sample falls inside the
// closed interval [lo, hi]. xs must be the grid the classification was
// computed from.
func (c Classification) NonFiniteWithin(xs []float64, lo, hi float64) bool {
	for i, ok := range c.Finite {
		if !ok && xs[i] >= lo && xs[i] <= hi {
			return true
		}
	}

	return false
}
