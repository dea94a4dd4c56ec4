package engine

import (
	"context"
	"errors"
	"fmt"
	"math"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/integrix/expr"
	"github.com/katalvlaran/integrix/numeric"
	"github.com/katalvlaran/integrix/plotdata"
	"github.com/katalvlaran/integrix/quadrature"
	"github.com/katalvlaran/integrix/symbolic"
)

// Handler runs integration requests. Construct with New; the zero
// value is not usable.
type Handler struct {
	cfg Config
	log *zap.Logger
}

// Option configures a Handler.
type Option func(*Handler)

// WithLogger attaches a structured logger; stage transitions and
// failures are emitted at debug level. The default is a no-op logger.
func WithLogger(l *zap.Logger) Option {
	return func(h *Handler) { h.log = l }
}

// WithConfig replaces the whole configuration.
func WithConfig(cfg Config) Option {
	return func(h *Handler) { h.cfg = cfg }
}

// New builds a Handler from DefaultConfig plus the given options.
func New(opts ...Option) *Handler {
	h := &Handler{cfg: DefaultConfig(), log: zap.NewNop()}
	for _, opt := range opts {
		opt(h)
	}

	return h
}

// Do runs one request through the pipeline.
//
// Description:
//
//	Stage 1 - Validating: bounds must be finite and strictly ordered,
//	and the expression must parse.
//	Stage 2 - Evaluating: compile to a float64 closure, probe f(0),
//	sample the margin-padded domain and classify the samples. Non-finite
//	values strictly inside the bounds are fatal here.
//	Stage 3 - Integrating: adaptive quadrature and the symbolic chain
//	run concurrently, each under its own timeout. Quadrature trouble is
//	fatal; a symbolic miss only costs the closed form.
//	Stage 4 - Rendering: build the masked curve and the fill strip.
//
// The returned error is always a *Failure. The Response carries the
// visited states even on failure, with the other fields zeroed.
func (h *Handler) Do(ctx context.Context, req Request) (Response, error) {
	log := h.log.With(
		zap.String("request_id", uuid.NewString()),
		zap.String("expression", req.ExpressionText),
	)
	trace := []State{StateIdle}
	enter := func(s State) {
		trace = append(trace, s)
		log.Debug("stage", zap.Stringer("state", s))
	}
	fail := func(stage State, kind ErrorKind, msg string, cause error) (Response, error) {
		trace = append(trace, StateFailed)
		log.Debug("request failed",
			zap.Stringer("stage", stage),
			zap.Stringer("kind", kind),
			zap.Error(cause),
		)

		return Response{Trace: trace}, &Failure{Kind: kind, Stage: stage, Message: msg, Err: cause}
	}

	enter(StateValidating)
	if err := ctx.Err(); err != nil {
		return fail(StateValidating, KindInternal, msgCancelled, err)
	}
	if !isFinite(req.LowerLimit) || !isFinite(req.UpperLimit) {
		return fail(StateValidating, KindValidation, msgBoundsFinite, nil)
	}
	if req.LowerLimit >= req.UpperLimit {
		return fail(StateValidating, KindValidation, msgBoundsOrder, nil)
	}
	ast, err := expr.Parse(req.ExpressionText)
	if err != nil {
		return fail(StateValidating, KindParse, msgBadExpression, err)
	}

	enter(StateEvaluating)
	if err = ctx.Err(); err != nil {
		return fail(StateEvaluating, KindInternal, msgCancelled, err)
	}
	fn, err := numeric.Compile(ast)
	if err != nil {
		return fail(StateEvaluating, KindEvaluation, msgEvalFailed, err)
	}
	if probe := fn(0); math.IsNaN(probe) || math.IsInf(probe, 0) {
		// Advisory only; plenty of integrable functions misbehave at 0.
		log.Debug("probe at zero non-finite", zap.Float64("probe", probe))
	}
	xs, err := numeric.Domain(req.LowerLimit, req.UpperLimit, h.cfg.Numeric)
	if err != nil {
		return fail(StateEvaluating, KindEvaluation, msgEvalFailed, err)
	}
	ys := numeric.EvalOver(fn, xs)
	cls := numeric.Classify(ys)
	if cls.NonFiniteWithin(xs, req.LowerLimit, req.UpperLimit) {
		return fail(StateEvaluating, KindNonFiniteInBounds, msgNonFinite, nil)
	}

	enter(StateIntegrating)
	var (
		quad  quadrature.Result
		sym   symbolic.Result
		symOK bool
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		qctx, cancel := context.WithTimeout(gctx, h.cfg.QuadratureTimeout)
		defer cancel()
		var qerr error
		quad, qerr = runQuadrature(qctx, quadrature.Fn(fn), req.LowerLimit, req.UpperLimit, h.cfg.Quadrature)

		return qerr
	})
	g.Go(func() error {
		sctx, cancel := context.WithTimeout(gctx, h.cfg.SymbolicTimeout)
		defer cancel()
		sym, symOK = runSymbolic(sctx, ast)

		return nil
	})
	if err = g.Wait(); err != nil {
		if ctx.Err() != nil {
			return fail(StateIntegrating, KindInternal, msgCancelled, err)
		}
		// A pole can sit between samples and only surface at a rule node;
		// the cause is still a non-finite integrand, not the routine.
		if errors.Is(err, quadrature.ErrBadIntegrand) {
			return fail(StateIntegrating, KindNonFiniteInBounds, msgNonFinite, err)
		}

		return fail(StateIntegrating, KindQuadrature, msgIntegration, err)
	}

	enter(StateRendering)
	pd, err := plotdata.Build(xs, ys, req.LowerLimit, req.UpperLimit, h.cfg.Plot)
	if err != nil {
		return fail(StateRendering, KindPlotData, msgPlot, err)
	}

	resp := Response{
		DefiniteIntegral: quad.Value,
		ErrorEstimate:    quad.ErrorEstimate,
		Curve:            pd.Curve,
		Fill:             pd.Fill,
	}
	if symOK {
		resp.Antiderivative = sym.Antiderivative.String()
		resp.AntiderivativeLaTeX = sym.Antiderivative.LaTeX()
		resp.SymbolicStrategy = sym.Strategy.String()
	}
	if quad.ErrorEstimate > h.cfg.WarnThreshold {
		resp.Warnings = append(resp.Warnings, fmt.Sprintf(
			"error estimate %.2e exceeds the %.2e threshold", quad.ErrorEstimate, h.cfg.WarnThreshold))
	}
	if pd.Masked > 0 {
		resp.Warnings = append(resp.Warnings, fmt.Sprintf(
			"%d of %d samples were non-finite and are masked from the plot", pd.Masked, len(ys)))
	}
	if !symOK {
		resp.Warnings = append(resp.Warnings, "no closed form found; the result is numeric only")
	}

	enter(StateDone)
	resp.Trace = trace
	log.Debug("request done",
		zap.Float64("value", quad.Value),
		zap.Float64("estimate", quad.ErrorEstimate),
		zap.String("strategy", resp.SymbolicStrategy),
	)

	return resp, nil
}

// runQuadrature integrates on a worker goroutine so the caller can
// abandon it on timeout; the buffered channel lets the worker finish
// and be collected either way.
func runQuadrature(ctx context.Context, fn quadrature.Fn, lower, upper float64, opts quadrature.Options) (quadrature.Result, error) {
	type outcome struct {
		res quadrature.Result
		err error
	}
	ch := make(chan outcome, 1)
	go func() {
		res, err := quadrature.Integrate(fn, lower, upper, opts)
		ch <- outcome{res: res, err: err}
	}()

	select {
	case <-ctx.Done():
		return quadrature.Result{}, ctx.Err()
	case out := <-ch:
		return out.res, out.err
	}
}

// runSymbolic runs the fallback chain under ctx; a timeout reads as
// "no closed form", never as a failure.
func runSymbolic(ctx context.Context, ast expr.Expr) (symbolic.Result, bool) {
	type outcome struct {
		res symbolic.Result
		ok  bool
	}
	ch := make(chan outcome, 1)
	go func() {
		res, ok := symbolic.Integrate(ast)
		ch <- outcome{res: res, ok: ok}
	}()

	select {
	case <-ctx.Done():
		return symbolic.Result{}, false
	case out := <-ch:
		return out.res, out.ok
	}
}

func isFinite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}
