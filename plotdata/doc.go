// Package plotdata shapes sampled function values into frontend-ready
// series: a curve that skips non-finite samples and a dense fill band
// over the integration interval.
//
// 🚀 What it does
//
//	The numeric layer hands over raw samples across the padded plot
//	domain, NaN and ±Inf included. Build masks the bad samples out of
//	the curve, then lays an evenly spaced, linearly interpolated fill
//	strip across the integration bounds so the shaded area under the
//	curve renders smoothly regardless of how coarse the sampling was.
//
// ✨ Key features:
//   - non-finite samples are masked, never interpolated over silently;
//     the mask count is reported so callers can warn
//   - the fill strip is clamped to the intersection of the bounds with
//     the finite support of the samples
//   - a single finite sample still renders: the fill degenerates to
//     one point
//
// ⚙️ Usage:
//
//	pd, err := plotdata.Build(xs, ys, 0, 2, plotdata.DefaultOptions())
//	if err != nil { ... }
//	draw(pd.Curve, pd.Fill)
//
// Errors: ErrDimensionMismatch, ErrBadBounds, ErrBadSamples,
// ErrNoRenderablePoints.
//
// Complexity: O(n + m) for n samples and m fill points.
package plotdata
