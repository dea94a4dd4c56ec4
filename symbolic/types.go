package symbolic

import (
	"github.com/katalvlaran/integrix/expr"
)

// Strategy identifies which rung of the fallback chain produced a
// result. The zero value means no strategy has succeeded.
type Strategy uint8

const (
	// StrategyNone is the zero value: no antiderivative was found.
	StrategyNone Strategy = iota
	// StrategyDirect marks a result from rule/table integration.
	StrategyDirect
	// StrategySimplify marks a result found after algebraic rewriting
	// (expansion, partial fractions, trig power reduction).
	StrategySimplify
	// StrategySpecial marks a closed-form result from the
	// non-elementary pattern table (Fresnel, error function).
	StrategySpecial
	// StrategyManual marks a result from u-substitution or
	// integration by parts.
	StrategyManual
)

// strategyNames is indexed by Strategy.
var strategyNames = [...]string{
	StrategyNone:     "none",
	StrategyDirect:   "direct",
	StrategySimplify: "simplify",
	StrategySpecial:  "special",
	StrategyManual:   "manual",
}

// String returns the lowercase strategy name.
func (s Strategy) String() string {
	if int(s) < len(strategyNames) {
		return strategyNames[s]
	}

	return "unknown"
}

// Result is a successful symbolic integration.
type Result struct {
	// Antiderivative is the canonical antiderivative of the input with
	// respect to x. The constant of integration is omitted.
	Antiderivative expr.Expr
	// Strategy records which chain rung produced the result.
	Strategy Strategy
}

// byPartsDepth bounds recursive integration by parts. Three levels
// cover the polynomial-times-oscillator family up to cubic weights
// (x**3*sin(x) peels one degree per level); the cap keeps cyclic
// integrands such as exp(x)*sin(x) from recursing forever.
const byPartsDepth = 3
