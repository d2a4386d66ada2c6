package calc

import (
	"strconv"
	"unicode"
	"unicode/utf8"
)

// lexer scans tokens from an expression string. The input is borrowed, never
// copied, and the cursor only moves forward. cur holds the most recently
// scanned token; a lexer is used by exactly one evaluation.
type lexer struct {
	src string
	pos int // byte offset of the next unscanned rune
	col int // 1-based rune column of the next unscanned rune
	cur token
}

func newLexer(src string) *lexer {
	return &lexer{src: src, col: 1}
}

// advance scans the next token into cur.
func (l *lexer) advance() {
	l.cur = l.next()
}

// next scans one token. Scanning past the end of the input keeps returning
// EOF tokens.
func (l *lexer) next() token {
	l.skipSpace()
	tok := token{col: l.col}
	if l.pos >= len(l.src) {
		tok.kind = tokenEOF
		return tok
	}
	switch c := l.src[l.pos]; {
	case isDigit(c), c == '.' && l.pos+1 < len(l.src) && isDigit(l.src[l.pos+1]):
		return l.scanNumber()
	case isAlpha(c):
		return l.scanIdent()
	}
	r, sz := utf8.DecodeRuneInString(l.src[l.pos:])
	l.pos += sz
	l.col++
	tok.text = string(r)
	switch r {
	case '+':
		tok.kind = tokenPlus
	case '-':
		tok.kind = tokenMinus
	case '*':
		tok.kind = tokenStar
	case '/':
		tok.kind = tokenSlash
	case '%':
		tok.kind = tokenPercent
	case '^':
		tok.kind = tokenCaret
	case '(':
		tok.kind = tokenLParen
	case ')':
		tok.kind = tokenRParen
	default:
		tok.kind = tokenErr
		tok.err = &LexError{Col: tok.col, Text: tok.text}
	}
	return tok
}

// skipSpace consumes whitespace before a token.
func (l *lexer) skipSpace() {
	for l.pos < len(l.src) {
		r, sz := utf8.DecodeRuneInString(l.src[l.pos:])
		if !unicode.IsSpace(r) {
			return
		}
		l.pos += sz
		l.col++
	}
}

// scanNumber scans digits with at most one decimal point. A second point
// ends the literal; whatever follows lexes as its own token.
func (l *lexer) scanNumber() token {
	tok := token{kind: tokenNumber, col: l.col}
	start := l.pos
	dot := false
	for l.pos < len(l.src) {
		c := l.src[l.pos]
		if c == '.' && !dot {
			dot = true
		} else if !isDigit(c) {
			break
		}
		l.pos++
		l.col++
	}
	tok.text = l.src[start:l.pos]
	// The scan rules only capture valid literals, so the conversion error is
	// not interesting.
	tok.val, _ = strconv.ParseFloat(tok.text, 64)
	return tok
}

// scanIdent scans a maximal run of letters and resolves it against the
// keyword table. Anything not in the table is a lexical error naming the
// identifier.
func (l *lexer) scanIdent() token {
	tok := token{col: l.col}
	start := l.pos
	for l.pos < len(l.src) && isAlpha(l.src[l.pos]) {
		l.pos++
		l.col++
	}
	tok.text = l.src[start:l.pos]
	kind, ok := keywords[tok.text]
	if !ok {
		tok.kind = tokenErr
		tok.err = &LexError{Col: tok.col, Text: tok.text, Ident: true}
		return tok
	}
	tok.kind = kind
	if v, ok := constants[kind]; ok {
		tok.val = v
	}
	return tok
}

func isDigit(c byte) bool { return '0' <= c && c <= '9' }

func isAlpha(c byte) bool { return 'a' <= c && c <= 'z' || 'A' <= c && c <= 'Z' }
