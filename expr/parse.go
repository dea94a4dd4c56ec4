// This file implements the tokenizer and recursive-descent parser.
//
// Grammar, loosest binding first:
//
//	expression := term (('+'|'-') term)*
//	term       := unary (('*'|'/') unary)*
//	unary      := '-' unary | power
//	power      := atom (('**'|'^') unary)?      right-associative
//	atom       := NUMBER | IDENT | IDENT '(' expression ')' | '(' expression ')'
//
// "**" and "^" are the same operator. "-x**2" parses as -(x**2) and
// "x**2**3" as x**(2**3), matching the usual scientific convention.
// Implicit multiplication is rejected: "2x" is a syntax error, "2*x" works.
package expr

import (
	"math/big"
	"strings"
	"unicode"
)

// tokenKind discriminates lexical tokens.
type tokenKind uint8

const (
	tokEOF tokenKind = iota
	tokNumber
	tokIdent
	tokPlus
	tokMinus
	tokStar
	tokSlash
	tokPower
	tokLParen
	tokRParen
	tokInvalid
)

// token is one lexical unit with its byte offset.
type token struct {
	kind tokenKind
	text string
	pos  int
}

// tokenizer walks the input byte-wise; the grammar is pure ASCII.
type tokenizer struct {
	input string
	pos   int
}

// next returns the following token, skipping whitespace.
func (t *tokenizer) next() token {
	for t.pos < len(t.input) && unicode.IsSpace(rune(t.input[t.pos])) {
		t.pos++
	}
	if t.pos >= len(t.input) {
		return token{kind: tokEOF, pos: t.pos}
	}

	start := t.pos
	ch := t.input[t.pos]
	switch ch {
	case '+':
		t.pos++
		return token{kind: tokPlus, text: "+", pos: start}
	case '-':
		t.pos++
		return token{kind: tokMinus, text: "-", pos: start}
	case '*':
		t.pos++
		if t.pos < len(t.input) && t.input[t.pos] == '*' {
			t.pos++
			return token{kind: tokPower, text: "**", pos: start}
		}
		return token{kind: tokStar, text: "*", pos: start}
	case '^':
		t.pos++
		return token{kind: tokPower, text: "^", pos: start}
	case '/':
		t.pos++
		return token{kind: tokSlash, text: "/", pos: start}
	case '(':
		t.pos++
		return token{kind: tokLParen, text: "(", pos: start}
	case ')':
		t.pos++
		return token{kind: tokRParen, text: ")", pos: start}
	}
	if isDigit(ch) || ch == '.' {
		return t.readNumber()
	}
	if isAlpha(ch) {
		return t.readIdent()
	}
	t.pos++

	return token{kind: tokInvalid, text: string(ch), pos: start}
}

// readNumber consumes digits with at most one decimal point.
func (t *tokenizer) readNumber() token {
	start := t.pos
	sawDot := false
	for t.pos < len(t.input) {
		ch := t.input[t.pos]
		if isDigit(ch) {
			t.pos++
			continue
		}
		if ch == '.' && !sawDot {
			sawDot = true
			t.pos++
			continue
		}
		break
	}

	return token{kind: tokNumber, text: t.input[start:t.pos], pos: start}
}

// readIdent consumes a letter followed by letters or digits ("log10").
func (t *tokenizer) readIdent() token {
	start := t.pos
	for t.pos < len(t.input) {
		ch := t.input[t.pos]
		if !isAlpha(ch) && !isDigit(ch) {
			break
		}
		t.pos++
	}

	return token{kind: tokIdent, text: t.input[start:t.pos], pos: start}
}

func isDigit(ch byte) bool { return ch >= '0' && ch <= '9' }

func isAlpha(ch byte) bool {
	return ch >= 'a' && ch <= 'z' || ch >= 'A' && ch <= 'Z' || ch == '_'
}

// parser holds one token of lookahead over the tokenizer.
type parser struct {
	tz  tokenizer
	cur token
}

// Parse turns expression text into a canonical tree.
//
// Returns a *ParseError wrapping ErrEmptyInput, ErrSyntax,
// ErrUnknownFunction, or ErrForeignVariable.
//
// Complexity: O(len(text)).
func Parse(text string) (Expr, error) {
	if strings.TrimSpace(text) == "" {
		return nil, &ParseError{Pos: 0, Sentinel: ErrEmptyInput}
	}
	p := &parser{tz: tokenizer{input: text}}
	p.advance()

	e, err := p.parseExpression()
	if err != nil {
		return nil, err
	}
	if p.cur.kind != tokEOF {
		return nil, p.errHere(ErrSyntax)
	}

	return e, nil
}

// MustParse is Parse for known-good literals; it panics on error.
// Intended for fixtures and examples.
func MustParse(text string) Expr {
	e, err := Parse(text)
	if err != nil {
		panic(err)
	}

	return e
}

func (p *parser) advance() { p.cur = p.tz.next() }

// errHere wraps the current token into a ParseError.
func (p *parser) errHere(sentinel error) *ParseError {
	return &ParseError{Pos: p.cur.pos, Tok: p.cur.text, Sentinel: sentinel}
}

// parseExpression handles '+' and '-' (loosest binding).
func (p *parser) parseExpression() (Expr, error) {
	left, err := p.parseTerm()
	if err != nil {
		return nil, err
	}
	for p.cur.kind == tokPlus || p.cur.kind == tokMinus {
		op := p.cur.kind
		p.advance()
		right, err := p.parseTerm()
		if err != nil {
			return nil, err
		}
		if op == tokPlus {
			left = Sum(left, right)
		} else {
			left = Sum(left, Neg(right))
		}
	}

	return left, nil
}

// parseTerm handles '*' and '/'.
func (p *parser) parseTerm() (Expr, error) {
	left, err := p.parseUnary()
	if err != nil {
		return nil, err
	}
	for p.cur.kind == tokStar || p.cur.kind == tokSlash {
		op := p.cur.kind
		p.advance()
		right, err := p.parseUnary()
		if err != nil {
			return nil, err
		}
		if op == tokStar {
			left = Prod(left, right)
		} else {
			left = Prod(left, Recip(right))
		}
	}

	return left, nil
}

// parseUnary handles prefix minus. It binds looser than '**', so
// "-x**2" is -(x**2).
func (p *parser) parseUnary() (Expr, error) {
	if p.cur.kind == tokMinus {
		p.advance()
		inner, err := p.parseUnary()
		if err != nil {
			return nil, err
		}

		return Neg(inner), nil
	}

	return p.parsePower()
}

// parsePower handles right-associative exponentiation.
func (p *parser) parsePower() (Expr, error) {
	base, err := p.parseAtom()
	if err != nil {
		return nil, err
	}
	if p.cur.kind != tokPower {
		return base, nil
	}
	p.advance()
	// The exponent re-enters unary so "2**-3" parses.
	exp, err := p.parseUnary()
	if err != nil {
		return nil, err
	}

	return Power(base, exp), nil
}

// parseAtom handles numbers, identifiers, calls, and parentheses.
func (p *parser) parseAtom() (Expr, error) {
	switch p.cur.kind {
	case tokNumber:
		lit := p.cur.text
		val, ok := new(big.Rat).SetString(lit)
		if !ok {
			return nil, p.errHere(ErrSyntax)
		}
		p.advance()

		return &Num{val: val}, nil

	case tokIdent:
		return p.parseIdent()

	case tokLParen:
		p.advance()
		inner, err := p.parseExpression()
		if err != nil {
			return nil, err
		}
		if p.cur.kind != tokRParen {
			return nil, p.errHere(ErrSyntax)
		}
		p.advance()

		return inner, nil
	}

	return nil, p.errHere(ErrSyntax)
}

// parseIdent resolves an identifier into a call, the variable, or a
// constant, enforcing the closed vocabulary.
func (p *parser) parseIdent() (Expr, error) {
	name := p.cur.text
	namePos := p.cur.pos
	p.advance()

	if p.cur.kind == tokLParen {
		p.advance()
		arg, err := p.parseExpression()
		if err != nil {
			return nil, err
		}
		if p.cur.kind != tokRParen {
			return nil, p.errHere(ErrSyntax)
		}
		p.advance()

		if name == "sqrt" {
			return Sqrt(arg), nil
		}
		fn, ok := parseFuncs[name]
		if !ok {
			return nil, &ParseError{Pos: namePos, Tok: name, Sentinel: ErrUnknownFunction}
		}

		return Apply(fn, arg), nil
	}

	switch name {
	case VarName:
		return X(), nil
	case "pi":
		return Pi(), nil
	case "e":
		return E(), nil
	}
	// A function name without parentheses is a structure problem, not a
	// vocabulary one.
	if _, ok := parseFuncs[name]; ok || name == "sqrt" {
		return nil, &ParseError{Pos: namePos, Tok: name, Sentinel: ErrSyntax}
	}

	return nil, &ParseError{Pos: namePos, Tok: name, Sentinel: ErrForeignVariable}
}
