// Package numeric turns symbolic expressions into float64 machinery:
// compiled closures, sampling grids, and finiteness classification.
//
// The pipeline is Compile → Domain → EvalOver → Classify:
//
//	fn, err := numeric.Compile(e)              // expr tree → func(float64) float64
//	xs, err := numeric.Domain(lo, hi, opts)    // margin-extended sampling grid
//	ys := numeric.EvalOver(fn, xs)             // pointwise evaluation
//	cl := numeric.Classify(ys)                 // finite / NaN / ±Inf accounting
//
// NaN and ±Inf are first-class outcomes here, never errors: classification
// records them and the caller decides what is fatal (a pole between the
// integration bounds) and what is cosmetic (a log sampled left of zero in
// the plot margin).
//
// Errors:
//
//	ErrUnsupported - expression contains a node with no float64 counterpart.
//	ErrBadBounds   - sampling bounds are non-finite or not increasing.
//	ErrBadSamples  - fewer than two samples requested.
package numeric
