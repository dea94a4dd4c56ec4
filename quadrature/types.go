// This file declares sentinel errors, options, and the Result type.
package quadrature

import "errors"

// Sentinel errors for input validation and integration outcomes.
var (
	// ErrNilIntegrand indicates a nil integrand function.
	ErrNilIntegrand = errors.New("quadrature: integrand must be non-nil")

	// ErrBadBounds indicates non-finite or non-increasing bounds.
	ErrBadBounds = errors.New("quadrature: bounds must be finite with lower < upper")

	// ErrBadTolerance indicates a negative tolerance, or both tolerances zero.
	ErrBadTolerance = errors.New("quadrature: tolerances must be non-negative and not both zero")

	// ErrBadBudget indicates a subdivision budget below one interval.
	ErrBadBudget = errors.New("quadrature: interval budget must be at least 1")

	// ErrBadIntegrand indicates the integrand returned NaN or ±Inf between
	// the bounds.
	ErrBadIntegrand = errors.New("quadrature: integrand is not finite inside the interval")

	// ErrNotConverged indicates the subdivision budget was exhausted with
	// the error estimate still above tolerance.
	ErrNotConverged = errors.New("quadrature: failed to converge within the interval budget")
)

// Default tolerances and budget, matching the classic QUADPACK defaults.
const (
	// DefaultAbsTol is the absolute tolerance target.
	DefaultAbsTol = 1.49e-8

	// DefaultRelTol is the relative tolerance target.
	DefaultRelTol = 1.49e-8

	// DefaultMaxIntervals bounds the adaptive subdivision.
	DefaultMaxIntervals = 50
)

// Options configures Integrate.
//
// Fields:
//   - AbsTol, RelTol — convergence targets; the loop stops once the summed
//     estimate is ≤ max(AbsTol, RelTol·|value|). At least one must be > 0.
//   - MaxIntervals  — hard cap on subintervals; exhaustion above tolerance
//     returns ErrNotConverged.
type Options struct {
	AbsTol       float64
	RelTol       float64
	MaxIntervals int
}

// DefaultOptions returns the standard configuration.
func DefaultOptions() Options {
	return Options{
		AbsTol:       DefaultAbsTol,
		RelTol:       DefaultRelTol,
		MaxIntervals: DefaultMaxIntervals,
	}
}

// Fn is the integrand: a real function of one real variable.
type Fn func(x float64) float64

// Result is a definite integral with its error estimate.
type Result struct {
	// Value is the integral approximation.
	Value float64

	// ErrorEstimate bounds the absolute error; always ≥ 0 on success.
	ErrorEstimate float64

	// Evaluations counts integrand calls.
	Evaluations int

	// Intervals counts subintervals in the final partition.
	Intervals int
}
