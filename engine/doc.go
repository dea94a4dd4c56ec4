// Package engine orchestrates one integration request end to end:
// parse, validate, sample, integrate numerically and symbolically in
// parallel, and shape the plot series.
//
// 🚀 What it does
//
//	The handler walks a fixed state machine:
//
//	  Idle → Validating → Evaluating → Integrating → Rendering → Done
//	                                            ↘ Failed(kind)
//
//	Every failure is translated into a Failure value carrying an
//	ErrorKind and a human-readable message; no raw error from a lower
//	layer escapes untagged. The visited states are recorded on the
//	response, so the lifecycle is testable rather than documentation
//	fiction.
//
// ✨ Key features:
//   - quadrature and the symbolic fallback chain run concurrently,
//     each under its own timeout; a symbolic miss degrades to a
//     numeric-only answer with a warning, never to a failure
//   - non-finite values strictly inside the bounds fail fast; the
//     same values in the plot margin are masked and merely noted
//   - identical requests produce identical responses; the handler
//     keeps no cross-request state
//   - silent by default, structured stage logs via WithLogger
//
// ⚙️ Usage:
//
//	h := engine.New(engine.WithLogger(logger))
//	resp, err := h.Do(ctx, engine.Request{
//	  ExpressionText: "exp(-x**2)",
//	  LowerLimit:     0,
//	  UpperLimit:     2,
//	})
//	var f *engine.Failure
//	if errors.As(err, &f) {
//	  fmt.Println(f.Kind, f.Message)
//	}
//
// Errors are always *Failure; see ErrorKind for the taxonomy.
package engine
