// Package calc implements a double-precision arithmetic calculator.
//
// Expressions use the binary operators + - * / % ^, the unary functions sin,
// cos, tan, sqrt, log, exp, and abs, and the constants pi and e. Lexing,
// parsing, and evaluation happen in a single pass with no syntax tree, and
// Evaluate keeps no state between calls.
//
// A leading unary minus binds tighter than exponentiation: "-2^2" is
// (-2)^2 = 4. Use ConventionalNegation for the -(2^2) reading.
package calc
