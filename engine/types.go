package engine

import (
	"fmt"

	"github.com/katalvlaran/integrix/plotdata"
)

// State is one stop in the request lifecycle.
type State uint8

const (
	// StateIdle is the initial state of every request.
	StateIdle State = iota
	// StateValidating covers bounds checks and expression parsing.
	StateValidating
	// StateEvaluating covers compilation, sampling and classification.
	StateEvaluating
	// StateIntegrating covers the concurrent numeric and symbolic work.
	StateIntegrating
	// StateRendering covers plot-series construction.
	StateRendering
	// StateDone is the terminal success state.
	StateDone
	// StateFailed is the terminal failure state.
	StateFailed
)

var stateNames = [...]string{
	StateIdle:        "idle",
	StateValidating:  "validating",
	StateEvaluating:  "evaluating",
	StateIntegrating: "integrating",
	StateRendering:   "rendering",
	StateDone:        "done",
	StateFailed:      "failed",
}

// String returns the lowercase state name.
func (s State) String() string {
	if int(s) < len(stateNames) {
		return stateNames[s]
	}

	return "unknown"
}

// ErrorKind classifies a failed request.
type ErrorKind uint8

const (
	// KindParse - the expression text does not parse.
	KindParse ErrorKind = iota
	// KindValidation - the bounds are malformed.
	KindValidation
	// KindEvaluation - the expression cannot be evaluated numerically.
	KindEvaluation
	// KindNonFiniteInBounds - the function leaves the finite reals
	// strictly inside the integration interval.
	KindNonFiniteInBounds
	// KindQuadrature - numeric integration failed or timed out.
	KindQuadrature
	// KindPlotData - the plot series could not be built.
	KindPlotData
	// KindInternal - cancellation or an unexpected condition.
	KindInternal
)

var kindNames = [...]string{
	KindParse:             "parse_error",
	KindValidation:        "validation_error",
	KindEvaluation:        "evaluation_error",
	KindNonFiniteInBounds: "non_finite_in_bounds",
	KindQuadrature:        "quadrature_error",
	KindPlotData:          "plot_data_error",
	KindInternal:          "internal_error",
}

// String returns the snake_case kind name, stable for wire payloads.
func (k ErrorKind) String() string {
	if int(k) < len(kindNames) {
		return kindNames[k]
	}

	return "unknown"
}

// Failure is the only error type the handler returns. Message is
// user-presentable; Err keeps the underlying cause for errors.Is/As.
type Failure struct {
	Kind    ErrorKind
	Stage   State
	Message string
	Err     error
}

// Error formats as "kind: message".
func (f *Failure) Error() string {
	return fmt.Sprintf("%s: %s", f.Kind, f.Message)
}

// Unwrap exposes the underlying cause.
func (f *Failure) Unwrap() error { return f.Err }

// Request is one integration job.
type Request struct {
	// ExpressionText is the function of x, e.g. "sin(x**2) + 1".
	ExpressionText string
	// LowerLimit and UpperLimit bound the definite integral;
	// UpperLimit must be strictly greater.
	LowerLimit float64
	UpperLimit float64
}

// Response is the complete outcome of a successful request.
type Response struct {
	// DefiniteIntegral is the numeric value; ErrorEstimate bounds its
	// absolute error.
	DefiniteIntegral float64
	ErrorEstimate    float64

	// Antiderivative holds the closed form when one was found, in
	// plain text and LaTeX; both are empty when the symbolic chain came
	// up empty. SymbolicStrategy names the technique that produced it.
	Antiderivative      string
	AntiderivativeLaTeX string
	SymbolicStrategy    string

	// Curve and Fill are the renderable series.
	Curve []plotdata.Point
	Fill  []plotdata.Point

	// Warnings surface degraded-but-successful conditions: a large
	// error estimate, masked samples, or a missing closed form.
	Warnings []string

	// Trace lists the states the request visited, in order.
	Trace []State
}

// Messages in the register users of the original calculator know.
const (
	msgBoundsOrder   = "upper limit must be greater than lower limit"
	msgBoundsFinite  = "integration limits must be finite"
	msgBadExpression = "invalid mathematical expression"
	msgEvalFailed    = "unable to evaluate function"
	msgNonFinite     = "function produces invalid values inside the integration bounds"
	msgIntegration   = "integration failed"
	msgPlot          = "plot data could not be built"
	msgCancelled     = "request cancelled"
)
