// Package repl implements the interactive line-mode front end: it reads
// expressions one line at a time, interprets the reserved command words, and
// renders values or error messages. The evaluator never sees a reserved word.
package repl

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/quaternaut/calc"
)

const banner = "calc — type 'help' for instructions or 'quit' to exit"

// REPL drives one read-evaluate-print session over a reader and writer.
type REPL struct {
	cfg  Config
	in   *bufio.Scanner
	out  io.Writer
	hist *history
}

// New creates a session reading lines from in and writing to out.
func New(in io.Reader, out io.Writer, cfg Config) *REPL {
	return &REPL{
		cfg:  cfg,
		in:   bufio.NewScanner(in),
		out:  out,
		hist: newHistory(cfg.HistorySize),
	}
}

// Run loops until quit, exit, or end of input. The returned error is only a
// read failure on the input; invalid expressions are rendered, not returned.
func (r *REPL) Run() error {
	fmt.Fprintln(r.out, banner)
	for {
		fmt.Fprint(r.out, r.cfg.Prompt)
		if !r.in.Scan() {
			fmt.Fprintln(r.out)
			return r.in.Err()
		}
		switch line := strings.TrimSpace(r.in.Text()); line {
		case "":
		case "quit", "exit":
			fmt.Fprintln(r.out, "Goodbye!")
			return nil
		case "help":
			r.help()
		case "history":
			r.showHistory()
		case "clear":
			// ANSI clear and home, then the banner again.
			fmt.Fprint(r.out, "\x1b[2J\x1b[H")
			fmt.Fprintln(r.out, banner)
		default:
			r.eval(line)
		}
	}
}

func (r *REPL) eval(line string) {
	opts := []calc.Option{calc.MaxDepth(r.cfg.MaxDepth)}
	if r.cfg.ConventionalNegation {
		opts = append(opts, calc.ConventionalNegation())
	}
	v, err := calc.Evaluate(line, opts...)
	e := entry{expr: line, value: v}
	if err != nil {
		e.err = err.Error()
		fmt.Fprintf(r.out, "Error: %s\n", e.err)
	} else {
		fmt.Fprintf(r.out, "= %.*g\n", r.cfg.Digits, v)
	}
	r.hist.push(e)
}

func (r *REPL) showHistory() {
	entries := r.hist.all()
	if len(entries) == 0 {
		fmt.Fprintln(r.out, "history is empty")
		return
	}
	for i, e := range entries {
		if e.err != "" {
			fmt.Fprintf(r.out, "%2d  %s : %s\n", i+1, e.expr, e.err)
			continue
		}
		fmt.Fprintf(r.out, "%2d  %s = %.*g\n", i+1, e.expr, r.cfg.Digits, e.value)
	}
}

func (r *REPL) help() {
	fmt.Fprint(r.out, `
=== Calculator Help ===
Basic Operations:
  +  Addition
  -  Subtraction
  *  Multiplication
  /  Division
  %  Modulo
  ^  Power

Functions:
  sin(x)   Sine
  cos(x)   Cosine
  tan(x)   Tangent
  sqrt(x)  Square root
  log(x)   Natural logarithm
  exp(x)   Exponential (e^x)
  abs(x)   Absolute value

Constants:
  pi       π (3.14159...)
  e        Euler's number (2.71828...)

Commands:
  help     Show this help
  history  Show recent evaluations
  quit     Exit calculator
  exit     Exit calculator
  clear    Clear screen

Examples:
  2 + 3 * 4
  sin(pi/2)
  sqrt(16) + log(e)
  2^8
  (5 + 3) * 2
=======================

`)
}
