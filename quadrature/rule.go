// This file evaluates the G7/K15 rule pair on one interval.
//
// Node and weight values are the classic QUADPACK dqk15 constants; the
// 7-point Gauss nodes are a subset of the 15 Kronrod points, so both
// rules share every integrand evaluation.
package quadrature

import (
	"fmt"
	"math"
)

// Positive Kronrod abscissae; the full set is symmetric about zero and
// includes the origin. Odd indices are the embedded Gauss nodes.
var kronrodNodes = [7]float64{
	0.991455371120812639206854697526329,
	0.949107912342758524526189684047851,
	0.864864423359769072789712788640926,
	0.741531185599394439863864773280788,
	0.586087235467691130294144838258730,
	0.405845151377397166906606412076961,
	0.207784955007898467600689403773245,
}

// Kronrod weights for the paired nodes above; kronrodCenterW weights the
// origin.
var kronrodWeights = [7]float64{
	0.022935322010529224963732008058970,
	0.063092092629978553290700663189204,
	0.104790010322250183839876322541518,
	0.140653259715525918745189590510238,
	0.169004726639267902826583426598550,
	0.190350578064785409913256402421014,
	0.204432940075298892414161999234649,
}

const kronrodCenterW = 0.209482141084727828012999174891714

// Gauss weights for kronrodNodes[1], [3], [5]; gaussCenterW weights the
// origin.
var gaussWeights = [3]float64{
	0.129484966168869693270611432679082,
	0.279705391489276667901467771423780,
	0.381830050505118944950369775488975,
}

const gaussCenterW = 0.417959183673469387755102040816327

// panelEvals is the integrand-call cost of one rule application.
const panelEvals = 15

// gk15 integrates fn over [a, b] with the rule pair and returns the K15
// value plus the |K15−G7| error estimate. A non-finite integrand sample
// aborts with ErrBadIntegrand carrying the offending abscissa.
func gk15(fn Fn, a, b float64) (value, errEst float64, err error) {
	center := 0.5 * (a + b)
	half := 0.5 * (b - a)

	fc := fn(center)
	if !finite(fc) {
		return 0, 0, badPoint(center)
	}
	resK := fc * kronrodCenterW
	resG := fc * gaussCenterW

	for i, node := range kronrodNodes {
		xLo := center - half*node
		xHi := center + half*node
		fLo, fHi := fn(xLo), fn(xHi)
		if !finite(fLo) {
			return 0, 0, badPoint(xLo)
		}
		if !finite(fHi) {
			return 0, 0, badPoint(xHi)
		}
		pair := fLo + fHi
		resK += kronrodWeights[i] * pair
		if i%2 == 1 {
			resG += gaussWeights[i/2] * pair
		}
	}

	value = resK * half
	errEst = math.Abs((resK - resG) * half)

	return value, errEst, nil
}

func badPoint(x float64) error {
	return fmt.Errorf("%w: f(%g)", ErrBadIntegrand, x)
}

func finite(v float64) bool { return !math.IsNaN(v) && !math.IsInf(v, 0) }
