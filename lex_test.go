package calc

import (
	"math"
	"testing"
)

func TestLex(t *testing.T) {
	cases := []struct {
		src    string
		tokens []token
	}{
		// spaces
		{"", nil},
		{" \t \r\n ", nil},
		// numbers
		{"0", []token{{kind: tokenNumber, val: 0, text: "0", col: 1}}},
		{"42", []token{{kind: tokenNumber, val: 42, text: "42", col: 1}}},
		{"3.14", []token{{kind: tokenNumber, val: 3.14, text: "3.14", col: 1}}},
		{".5", []token{{kind: tokenNumber, val: .5, text: ".5", col: 1}}},
		{"1.", []token{{kind: tokenNumber, val: 1, text: "1.", col: 1}}},
		{"1 0", []token{
			{kind: tokenNumber, val: 1, text: "1", col: 1},
			{kind: tokenNumber, val: 0, text: "0", col: 3},
		}},
		// only the first dot belongs to the literal
		{"1.2.3", []token{
			{kind: tokenNumber, val: 1.2, text: "1.2", col: 1},
			{kind: tokenNumber, val: .3, text: ".3", col: 4},
		}},
		// operators and parens
		{"+-*/%^()", []token{
			{kind: tokenPlus, text: "+", col: 1},
			{kind: tokenMinus, text: "-", col: 2},
			{kind: tokenStar, text: "*", col: 3},
			{kind: tokenSlash, text: "/", col: 4},
			{kind: tokenPercent, text: "%", col: 5},
			{kind: tokenCaret, text: "^", col: 6},
			{kind: tokenLParen, text: "(", col: 7},
			{kind: tokenRParen, text: ")", col: 8},
		}},
		{"-1", []token{
			{kind: tokenMinus, text: "-", col: 1},
			{kind: tokenNumber, val: 1, text: "1", col: 2},
		}},
		// keywords
		{"sin", []token{{kind: tokenSin, text: "sin", col: 1}}},
		{"cos", []token{{kind: tokenCos, text: "cos", col: 1}}},
		{"tan", []token{{kind: tokenTan, text: "tan", col: 1}}},
		{"sqrt", []token{{kind: tokenSqrt, text: "sqrt", col: 1}}},
		{"log", []token{{kind: tokenLog, text: "log", col: 1}}},
		{"exp", []token{{kind: tokenExp, text: "exp", col: 1}}},
		{"abs", []token{{kind: tokenAbs, text: "abs", col: 1}}},
		{"pi", []token{{kind: tokenPi, val: math.Pi, text: "pi", col: 1}}},
		{"e", []token{{kind: tokenE, val: math.E, text: "e", col: 1}}},
		// keyword lookup is case-sensitive
		{"Sin", []token{{kind: tokenErr, text: "Sin", col: 1}}},
		{"foo", []token{{kind: tokenErr, text: "foo", col: 1}}},
		// stray characters
		{".", []token{{kind: tokenErr, text: ".", col: 1}}},
		{"$", []token{{kind: tokenErr, text: "$", col: 1}}},
		{"1 $ 2", []token{
			{kind: tokenNumber, val: 1, text: "1", col: 1},
			{kind: tokenErr, text: "$", col: 3},
			{kind: tokenNumber, val: 2, text: "2", col: 5},
		}},
		// whitespace positions count in runes
		{"  pi / 2", []token{
			{kind: tokenPi, val: math.Pi, text: "pi", col: 3},
			{kind: tokenSlash, text: "/", col: 6},
			{kind: tokenNumber, val: 2, text: "2", col: 8},
		}},
	}

	for _, c := range cases {
		l := newLexer(c.src)
		for _, want := range c.tokens {
			got := l.next()
			if got.kind == tokenErr && got.err == nil {
				t.Errorf("scanning %q: error token without error: %v", c.src, got)
			}
			got.err = nil
			if got != want {
				t.Errorf("scanning %q: want %v, got %v", c.src, want, got)
			}
		}
		// EOF is sticky.
		for i := 0; i < 3; i++ {
			if got := l.next(); got.kind != tokenEOF {
				t.Errorf("scanning %q: extra token %v", c.src, got)
			}
		}
	}
}

func TestLexErrors(t *testing.T) {
	cases := []struct {
		src   string
		ident bool
	}{
		{"foo", true},
		{"Exp", true},
		{"$", false},
		{"π", false},
		{"@", false},
	}
	for _, c := range cases {
		l := newLexer(c.src)
		got := l.next()
		if got.kind != tokenErr {
			t.Errorf("scanning %q: want error token, got %v", c.src, got)
			continue
		}
		le, ok := got.err.(*LexError)
		if !ok {
			t.Errorf("scanning %q: token error is %T, not *LexError", c.src, got.err)
			continue
		}
		if le.Ident != c.ident {
			t.Errorf("scanning %q: Ident = %v, want %v", c.src, le.Ident, c.ident)
		}
		if le.Col != 1 {
			t.Errorf("scanning %q: Col = %d, want 1", c.src, le.Col)
		}
	}
}

func TestLexAdvance(t *testing.T) {
	l := newLexer("1 + 2")
	if l.cur.kind != tokenEOF {
		t.Errorf("fresh lexer current token is %v, want EOF zero value", l.cur)
	}
	want := []tokenKind{tokenNumber, tokenPlus, tokenNumber, tokenEOF, tokenEOF}
	for _, k := range want {
		l.advance()
		if l.cur.kind != k {
			t.Errorf("advance: current token %v, want kind %v", l.cur, k)
		}
	}
}
