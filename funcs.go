package calc

import "math"

// keywords resolves identifier spellings to tokens. Matching is
// case-sensitive.
var keywords = map[string]tokenKind{
	"sin":  tokenSin,
	"cos":  tokenCos,
	"tan":  tokenTan,
	"sqrt": tokenSqrt,
	"log":  tokenLog,
	"exp":  tokenExp,
	"abs":  tokenAbs,
	"pi":   tokenPi,
	"e":    tokenE,
}

// constants holds the values carried by constant tokens.
var constants = map[tokenKind]float64{
	tokenPi: math.Pi,
	tokenE:  math.E,
}

// apply computes a unary function on its argument. sqrt of a negative and
// log (natural) of a non-positive argument record a DomainError. The other
// functions follow IEEE-754 semantics with no re-validation, so NaN and ±Inf
// arguments flow through unchanged.
func (p *parser) apply(tok token, x float64) float64 {
	switch tok.kind {
	case tokenSin:
		return math.Sin(x)
	case tokenCos:
		return math.Cos(x)
	case tokenTan:
		return math.Tan(x)
	case tokenSqrt:
		if x < 0 {
			p.record(&DomainError{Col: tok.col, Func: "sqrt", X: x})
			return 0
		}
		return math.Sqrt(x)
	case tokenLog:
		if x <= 0 {
			p.record(&DomainError{Col: tok.col, Func: "log", X: x})
			return 0
		}
		return math.Log(x)
	case tokenExp:
		return math.Exp(x)
	case tokenAbs:
		return math.Abs(x)
	}
	panic("calc: apply on non-function token " + tok.String())
}
