package calc

import "strconv"

// tokenKind identifies the lexical class of a token.
type tokenKind int

const (
	// tokenEOF indicates the end of the input.
	tokenEOF tokenKind = iota
	// tokenNumber is a numeric literal.
	tokenNumber
	tokenPlus
	tokenMinus
	tokenStar
	tokenSlash
	tokenPercent
	tokenCaret
	tokenLParen
	tokenRParen
	// Function keywords.
	tokenSin
	tokenCos
	tokenTan
	tokenSqrt
	tokenLog
	tokenExp
	tokenAbs
	// Constant keywords. These carry their value like number tokens.
	tokenPi
	tokenE
	// tokenErr carries a lexical error.
	tokenErr
)

var tokenNames = [...]string{
	tokenEOF:     "EOF",
	tokenNumber:  "Number",
	tokenPlus:    "Plus",
	tokenMinus:   "Minus",
	tokenStar:    "Star",
	tokenSlash:   "Slash",
	tokenPercent: "Percent",
	tokenCaret:   "Caret",
	tokenLParen:  "LParen",
	tokenRParen:  "RParen",
	tokenSin:     "Sin",
	tokenCos:     "Cos",
	tokenTan:     "Tan",
	tokenSqrt:    "Sqrt",
	tokenLog:     "Log",
	tokenExp:     "Exp",
	tokenAbs:     "Abs",
	tokenPi:      "Pi",
	tokenE:       "E",
	tokenErr:     "Err",
}

func (k tokenKind) String() string {
	if 0 <= int(k) && int(k) < len(tokenNames) {
		return tokenNames[k]
	}
	return "tokenKind(" + strconv.Itoa(int(k)) + ")"
}

// token is a single lexical unit. Tokens are immutable once produced; text is
// kept only for diagnostics.
type token struct {
	kind tokenKind
	// val is the numeric value of number and constant tokens.
	val float64
	// text is the source text of the token.
	text string
	// col is the 1-based rune column of the token's first rune.
	col int
	// err is the lexical error carried by tokenErr tokens.
	err error
}

func (t token) String() string {
	return t.kind.String() + ":" + t.text + "@" + strconv.Itoa(t.col)
}
