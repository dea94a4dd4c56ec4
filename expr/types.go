// This file declares the Expr interface, the function and constant
// vocabularies, sentinel errors, and the ParseError detail type.
package expr

import (
	"errors"
	"fmt"
)

// Sentinel errors for parsing and compilation.
var (
	// ErrEmptyInput indicates the expression text is empty or whitespace-only.
	ErrEmptyInput = errors.New("expr: empty expression")

	// ErrSyntax indicates a malformed token or expression structure.
	ErrSyntax = errors.New("expr: invalid syntax")

	// ErrUnknownFunction indicates a call to a function outside the vocabulary.
	ErrUnknownFunction = errors.New("expr: unknown function")

	// ErrForeignVariable indicates an identifier other than x, pi, e.
	ErrForeignVariable = errors.New("expr: unknown variable")
)

// ParseError reports where and why Parse rejected the input.
// It unwraps to one of the sentinel errors above, so callers can branch
// with errors.Is while still surfacing the position to humans.
type ParseError struct {
	// Pos is the byte offset of the offending token in the input.
	Pos int

	// Tok is the offending token text; empty at end of input.
	Tok string

	// Sentinel is the wrapped category error (ErrSyntax, ErrUnknownFunction, ...).
	Sentinel error
}

// Error renders the position, token, and category in one line.
func (e *ParseError) Error() string {
	if e.Tok == "" {
		return fmt.Sprintf("%v at offset %d", e.Sentinel, e.Pos)
	}

	return fmt.Sprintf("%v: %q at offset %d", e.Sentinel, e.Tok, e.Pos)
}

// Unwrap exposes the sentinel for errors.Is / errors.As.
func (e *ParseError) Unwrap() error { return e.Sentinel }

// FuncName enumerates the closed function vocabulary.
//
// The parser accepts FuncSin..FuncAbs from user text.  FuncErf, FuncFresnelS
// and FuncFresnelC only appear in antiderivatives produced by the symbolic
// layer; Parse rejects them so that user input stays elementary.
type FuncName uint8

const (
	// FuncSin is the sine function.
	FuncSin FuncName = iota

	// FuncCos is the cosine function.
	FuncCos

	// FuncTan is the tangent function.
	FuncTan

	// FuncAsin is the inverse sine.
	FuncAsin

	// FuncAcos is the inverse cosine.
	FuncAcos

	// FuncAtan is the inverse tangent.
	FuncAtan

	// FuncExp is the natural exponential.
	FuncExp

	// FuncLog is the natural logarithm ("ln" parses to it as well).
	FuncLog

	// FuncLog10 is the base-10 logarithm.
	FuncLog10

	// FuncAbs is the absolute value.
	FuncAbs

	// FuncErf is the Gauss error function (result vocabulary only).
	FuncErf

	// FuncFresnelS is the Fresnel sine integral S (result vocabulary only).
	FuncFresnelS

	// FuncFresnelC is the Fresnel cosine integral C (result vocabulary only).
	FuncFresnelC
)

// funcNames maps FuncName to its canonical spelling.
var funcNames = [...]string{
	FuncSin:      "sin",
	FuncCos:      "cos",
	FuncTan:      "tan",
	FuncAsin:     "asin",
	FuncAcos:     "acos",
	FuncAtan:     "atan",
	FuncExp:      "exp",
	FuncLog:      "log",
	FuncLog10:    "log10",
	FuncAbs:      "abs",
	FuncErf:      "erf",
	FuncFresnelS: "fresnels",
	FuncFresnelC: "fresnelc",
}

// String returns the canonical spelling of the function name.
func (f FuncName) String() string {
	if int(f) < len(funcNames) {
		return funcNames[f]
	}

	return fmt.Sprintf("func(%d)", uint8(f))
}

// parseFuncs maps accepted spellings to FuncName for the parser.
/// "sqrt" is absent on purpose: sqrt(u) parses to u**(1/2) (see parseCall).
// The result-only names (erf, fresnels, fresnelc) are absent as well.
var parseFuncs = map[string]FuncName{
	"sin":   FuncSin,
	"cos":   FuncCos,
	"tan":   FuncTan,
	"asin":  FuncAsin,
	"acos":  FuncAcos,
	"atan":  FuncAtan,
	"exp":   FuncExp,
	"log":   FuncLog,
	"ln":    FuncLog,
	"log10": FuncLog10,
	"abs":   FuncAbs,
}

// ConstName enumerates the symbolic constants.
type ConstName uint8

const (
	// ConstPi is the circle constant π.
	ConstPi ConstName = iota

	// ConstE is Euler's number.
	ConstE
)

// String returns the spelling used by the grammar.
func (c ConstName) String() string {
	if c == ConstPi {
		return "pi"
	}

	return "e"
}

// VarName is the canonical free variable accepted from user text.
const VarName = "x"

// Expr is an immutable symbolic expression node.
//
// All constructors return canonically simplified trees, so two expressions
// that simplify to the same form are Equal; the symbolic layer relies on
// that structural-matching guarantee.  Implementations: *Num, *Var,
// *Const, *Add, *Mul, *Pow, *Call, *Integral.
type Expr interface {
	// Simplify returns the canonical form. Idempotent.
	Simplify() Expr

	// Substitute replaces every occurrence of the named variable with value
	// and re-simplifies.
	Substitute(name string, value Expr) Expr

	// Equal reports structural equality with other.
	Equal(other Expr) bool

	// String renders the expression in the input grammar ("**" powers).
	String() string

	// LaTeX renders the expression as a LaTeX fragment.
	LaTeX() string

	// precedence drives parenthesization during rendering.
	precedence() int
}

// Rendering precedence levels, loosest binding first.
const (
	precAdd  = 1 // sums
	precMul  = 2 // products and quotients
	precPow  = 3 // exponentiation
	precAtom = 4 // numbers, variables, calls
)
