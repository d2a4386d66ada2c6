package calc

import "strconv"

// InputError is an error with position information. Every error resulting
// from an invalid expression implements InputError.
type InputError interface {
	error
	// Pos returns the 1-based rune column of the token that caused the error.
	Pos() int
}

// LexError indicates a token the lexer does not recognize: an identifier
// missing from the keyword table, or a stray character.
type LexError struct {
	// Col is the position of the token.
	Col int
	// Text is the unrecognized identifier or character.
	Text string
	// Ident is whether Text is an identifier rather than a single character.
	Ident bool
}

func (err *LexError) Error() string {
	if err.Ident {
		return errpos(err.Col, "unknown identifier "+strconv.Quote(err.Text))
	}
	return errpos(err.Col, "unexpected character "+strconv.Quote(err.Text))
}

func (err *LexError) Pos() int {
	return err.Col
}

// SyntaxError indicates a token that cannot start a primary, including end of
// input where an operand is required.
type SyntaxError struct {
	// Col is the position of the token.
	Col int
	// Token is the offending token's text, or "" at end of input.
	Token string
}

func (err *SyntaxError) Error() string {
	if err.Token == "" {
		return errpos(err.Col, "unexpected end of expression")
	}
	return errpos(err.Col, "unexpected token "+strconv.Quote(err.Token))
}

func (err *SyntaxError) Pos() int {
	return err.Col
}

// BracketError indicates a parenthesized expression with no closing
// parenthesis.
type BracketError struct {
	// Col is the position of the opening parenthesis.
	Col int
}

func (err *BracketError) Error() string {
	return errpos(err.Col, "missing closing parenthesis")
}

func (err *BracketError) Pos() int {
	return err.Col
}

// TrailingError indicates leftover tokens after a complete expression.
type TrailingError struct {
	// Col is the position of the first leftover token.
	Col int
	// Token is the first leftover token's text.
	Token string
}

func (err *TrailingError) Error() string {
	return errpos(err.Col, "unexpected token "+strconv.Quote(err.Token)+" after expression")
}

func (err *TrailingError) Pos() int {
	return err.Col
}

// DepthError indicates an expression nested beyond the evaluator's depth
// limit.
type DepthError struct {
	// Col is the position at which the limit was exceeded.
	Col int
}

func (err *DepthError) Error() string {
	return errpos(err.Col, "expression too deeply nested")
}

func (err *DepthError) Pos() int {
	return err.Col
}

// DivideError indicates division or modulo by zero.
type DivideError struct {
	// Col is the position of the operator.
	Col int
	// Mod is whether the failing operator was % rather than /.
	Mod bool
}

func (err *DivideError) Error() string {
	if err.Mod {
		return errpos(err.Col, "modulo by zero")
	}
	return errpos(err.Col, "division by zero")
}

func (err *DivideError) Pos() int {
	return err.Col
}

// DomainError indicates a function argument outside the function's domain.
type DomainError struct {
	// Col is the position of the function keyword.
	Col int
	// Func is the function name.
	Func string
	// X is the out-of-domain argument.
	X float64
}

func (err *DomainError) Error() string {
	x := strconv.FormatFloat(err.X, 'g', -1, 64)
	switch err.Func {
	case "sqrt":
		return errpos(err.Col, "square root of negative number: "+x)
	case "log":
		return errpos(err.Col, "logarithm of non-positive number: "+x)
	}
	return errpos(err.Col, x+" outside domain of "+err.Func)
}

func (err *DomainError) Pos() int {
	return err.Col
}

// errpos is a shortcut to create an error message with a position.
func errpos(pos int, msg string) string {
	return strconv.Itoa(pos) + ": " + msg
}

var (
	_ InputError = (*LexError)(nil)
	_ InputError = (*SyntaxError)(nil)
	_ InputError = (*BracketError)(nil)
	_ InputError = (*TrailingError)(nil)
	_ InputError = (*DepthError)(nil)
	_ InputError = (*DivideError)(nil)
	_ InputError = (*DomainError)(nil)
)
