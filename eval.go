package calc

import "math"

// Option configures a single call to Evaluate.
type Option interface {
	option(*parser)
}

type (
	depthopt int
	convopt  struct{}
)

func (o depthopt) option(p *parser) { p.maxDepth = int(o) }
func (convopt) option(p *parser)    { p.conventional = true }

// MaxDepth sets the nesting depth limit for one evaluation. Expressions that
// recurse deeper than n levels fail with a DepthError. Values less than 1 are
// treated as 1.
func MaxDepth(n int) Option {
	if n < 1 {
		n = 1
	}
	return depthopt(n)
}

// ConventionalNegation switches the grammar so that exponentiation binds
// tighter than a leading unary minus: "-2^2" evaluates to -4 rather than the
// default 4.
func ConventionalNegation() Option {
	return convopt{}
}

// DefaultMaxDepth is the nesting depth limit used when no MaxDepth option is
// given.
const DefaultMaxDepth = 512

// parser is the state of one evaluation: the lexer it drives, the error
// slot, and the recursion depth. A parser is used for exactly one call.
type parser struct {
	lex          *lexer
	err          error
	depth        int
	maxDepth     int
	conventional bool
}

// record stores err in the error slot unless an earlier error is already
// recorded. The first error wins: grammar levels stop consuming tokens once
// the slot is set, so anything recorded later describes a consequence of the
// original failure rather than the failure itself.
func (p *parser) record(err error) {
	if p.err == nil {
		p.err = err
	}
}

// Evaluate lexes, parses, and computes src in a single pass, returning the
// value of the expression. The returned error is non-nil exactly when the
// expression is invalid, and the value is 0 in that case.
//
// Evaluate keeps no state between calls, so concurrent calls are independent.
func Evaluate(src string, opts ...Option) (float64, error) {
	p := parser{lex: newLexer(src), maxDepth: DefaultMaxDepth}
	for _, opt := range opts {
		opt.option(&p)
	}
	p.lex.advance()
	v := p.expression()
	if p.err == nil && p.lex.cur.kind != tokenEOF {
		p.record(&TrailingError{Col: p.lex.cur.col, Token: p.lex.cur.text})
	}
	if p.err != nil {
		return 0, p.err
	}
	return v, nil
}

// expression = term (('+'|'-') term)*
func (p *parser) expression() float64 {
	left := p.term()
	for p.err == nil {
		switch p.lex.cur.kind {
		case tokenPlus:
			p.lex.advance()
			left += p.term()
		case tokenMinus:
			p.lex.advance()
			left -= p.term()
		default:
			return left
		}
	}
	return left
}

// term = factor (('*'|'/'|'%') factor)*
func (p *parser) term() float64 {
	left := p.factor()
	for p.err == nil {
		switch p.lex.cur.kind {
		case tokenStar:
			p.lex.advance()
			left *= p.factor()
		case tokenSlash:
			col := p.lex.cur.col
			p.lex.advance()
			right := p.factor()
			if p.err != nil {
				return 0
			}
			if right == 0 {
				p.record(&DivideError{Col: col})
				return 0
			}
			left /= right
		case tokenPercent:
			col := p.lex.cur.col
			p.lex.advance()
			right := p.factor()
			if p.err != nil {
				return 0
			}
			if right == 0 {
				p.record(&DivideError{Col: col, Mod: true})
				return 0
			}
			left = math.Mod(left, right)
		default:
			return left
		}
	}
	return left
}

// factor = power
//
// factor is a pass-through level between term and power; a postfix operator
// would slot in here.
func (p *parser) factor() float64 {
	return p.power()
}

// enter counts one live recursion frame against the depth limit. power and
// unary together cover every recursion cycle of the grammar: parenthesized
// primaries, chained exponents, and stacked unary signs.
func (p *parser) enter() bool {
	if p.depth >= p.maxDepth {
		p.record(&DepthError{Col: p.lex.cur.col})
		return false
	}
	p.depth++
	return true
}

// power = unary ('^' power)?
//
// The exponent recurses into power, making ^ right-associative. The base is
// a unary, so a leading minus belongs to the base: "-2^2" is (-2)^2 = 4.
// ConventionalNegation flips that (see unary).
func (p *parser) power() float64 {
	if !p.enter() {
		return 0
	}
	defer func() { p.depth-- }()
	left := p.unary()
	if p.err == nil && p.lex.cur.kind == tokenCaret {
		p.lex.advance()
		right := p.power()
		return math.Pow(left, right)
	}
	return left
}

// unary = ('-'|'+') unary | function primary | primary
func (p *parser) unary() float64 {
	if !p.enter() {
		return 0
	}
	defer func() { p.depth-- }()
	switch tok := p.lex.cur; tok.kind {
	case tokenMinus:
		p.lex.advance()
		if p.conventional {
			return -p.power()
		}
		return -p.unary()
	case tokenPlus:
		p.lex.advance()
		return p.unary()
	case tokenSin, tokenCos, tokenTan, tokenSqrt, tokenLog, tokenExp, tokenAbs:
		// A function argument is exactly one primary: a literal, a constant,
		// or a parenthesized expression. "sin -1" is a syntax error;
		// "sin(-1)" is not.
		p.lex.advance()
		x := p.primary()
		if p.err != nil {
			return 0
		}
		return p.apply(tok, x)
	}
	return p.primary()
}

// primary = number | pi | e | '(' expression ')'
func (p *parser) primary() float64 {
	switch tok := p.lex.cur; tok.kind {
	case tokenNumber, tokenPi, tokenE:
		p.lex.advance()
		return tok.val
	case tokenLParen:
		p.lex.advance()
		v := p.expression()
		if p.err != nil {
			return 0
		}
		if p.lex.cur.kind != tokenRParen {
			p.record(&BracketError{Col: tok.col})
			return 0
		}
		p.lex.advance()
		return v
	case tokenEOF:
		p.record(&SyntaxError{Col: tok.col})
	case tokenErr:
		p.record(tok.err)
	default:
		p.record(&SyntaxError{Col: tok.col, Token: tok.text})
	}
	return 0
}
