// This file runs the adaptive subdivision loop over a worst-first
// interval heap.
package quadrature

import (
	"container/heap"
	"math"
)

// widthFloor stops bisection once an interval is this fraction of the
// original span; further splitting only churns roundoff.
const widthFloor = 1e-14

// Integrate computes the definite integral of fn over [lower, upper].
//
// Algorithm Outline:
//  1. Validate inputs (strict sentinels, no partial work on bad input).
//  2. Apply the G7/K15 pair to the whole interval.
//  3. While the summed error estimate exceeds max(AbsTol, RelTol·|value|):
//     pop the interval with the worst estimate, bisect it, integrate both
//     halves, push them back. Stop when the budget or the width floor is
//     reached.
//  4. Sum value and estimate over the final partition.
//
// Errors: ErrNilIntegrand, ErrBadBounds, ErrBadTolerance, ErrBadBudget on
// inputs; ErrBadIntegrand when fn is non-finite at a sample point;
// ErrNotConverged (with the best Result still populated) when the budget
// runs out above tolerance.
//
// Complexity: O(MaxIntervals·log MaxIntervals) heap operations,
// 15 integrand calls per subdivision.
func Integrate(fn Fn, lower, upper float64, opts Options) (Result, error) {
	if err := validate(fn, lower, upper, opts); err != nil {
		return Result{}, err
	}

	value, errEst, err := gk15(fn, lower, upper)
	if err != nil {
		return Result{}, err
	}
	segs := &segmentHeap{{a: lower, b: upper, value: value, errEst: errEst}}
	heap.Init(segs)

	evals := panelEvals
	totalVal := value
	totalErr := errEst
	minWidth := widthFloor * (upper - lower)

	for totalErr > tolerance(opts, totalVal) && segs.Len() < opts.MaxIntervals {
		worst := (*segs)[0]
		mid := 0.5 * (worst.a + worst.b)
		if mid-worst.a < minWidth {
			break
		}

		lv, le, lerr := gk15(fn, worst.a, mid)
		if lerr != nil {
			return Result{}, lerr
		}
		rv, re, rerr := gk15(fn, mid, worst.b)
		if rerr != nil {
			return Result{}, rerr
		}
		evals += 2 * panelEvals

		totalVal += lv + rv - worst.value
		totalErr += le + re - worst.errEst

		heap.Pop(segs)
		heap.Push(segs, segment{a: worst.a, b: mid, value: lv, errEst: le})
		heap.Push(segs, segment{a: mid, b: worst.b, value: rv, errEst: re})
	}

	// Re-sum over the partition: the incremental running totals drift by
	// roundoff after many subdivisions.
	totalVal, totalErr = 0, 0
	for _, s := range *segs {
		totalVal += s.value
		totalErr += s.errEst
	}

	res := Result{
		Value:         totalVal,
		ErrorEstimate: totalErr,
		Evaluations:   evals,
		Intervals:     segs.Len(),
	}
	if totalErr > tolerance(opts, totalVal) {
		return res, ErrNotConverged
	}

	return res, nil
}

// tolerance is the stop target for the current value magnitude.
func tolerance(opts Options, value float64) float64 {
	return math.Max(opts.AbsTol, opts.RelTol*math.Abs(value))
}

// validate applies the input sentinels.
func validate(fn Fn, lower, upper float64, opts Options) error {
	if fn == nil {
		return ErrNilIntegrand
	}
	if !finite(lower) || !finite(upper) || lower >= upper {
		return ErrBadBounds
	}
	if opts.AbsTol < 0 || opts.RelTol < 0 || (opts.AbsTol == 0 && opts.RelTol == 0) {
		return ErrBadTolerance
	}
	if opts.MaxIntervals < 1 {
		return ErrBadBudget
	}

	return nil
}

// segment is one subinterval with its rule results.
type segment struct {
	a, b   float64
	value  float64
	errEst float64
}

// segmentHeap is a max-heap on the error estimate: the root is always the
// interval most worth splitting.
type segmentHeap []segment

func (h segmentHeap) Len() int            { return len(h) }
func (h segmentHeap) Less(i, j int) bool  { return h[i].errEst > h[j].errEst }
func (h segmentHeap) Swap(i, j int)       { h[i], h[j] = h[j], h[i] }
func (h *segmentHeap) Push(x interface{}) { *h = append(*h, x.(segment)) }
func (h *segmentHeap) Pop() interface{} {
	old := *h
	n := len(old)
	s := old[n-1]
	*h = old[:n-1]

	return s
}
