package varcalc

import "strconv"

// EmptyExpressionError indicates input that was empty, or all
// whitespace, after trimming.
type EmptyExpressionError struct{}

func (err *EmptyExpressionError) Error() string {
	return "empty expression"
}

// CharError indicates a character outside the allowed symbol and
// identifier sets. It implements InputError.
type CharError struct {
	// Col is the position of the character.
	Col int
	// Char is the offending character.
	Char rune
}

func (err *CharError) Error() string {
	return errpos(err.Col, "invalid character "+strconv.QuoteRune(err.Char))
}

func (err *CharError) Pos() int {
	return err.Col
}

// NumberError indicates a numeric literal that failed to convert. It
// implements InputError.
type NumberError struct {
	// Col is the position of the start of the literal.
	Col int
	// Text is the scanned literal.
	Text string
}

func (err *NumberError) Error() string {
	return errpos(err.Col, "invalid number "+strconv.Quote(err.Text))
}

func (err *NumberError) Pos() int {
	return err.Col
}

// BracketError indicates an unbalanced parenthesis. It implements
// InputError.
type BracketError struct {
	// Col is the position of the unmatched parenthesis.
	Col int
	// Left is set to the open parenthesis when it has no close.
	Left string
	// Right is set to the close parenthesis when it has no open.
	Right string
}

func (err *BracketError) Error() string {
	if err.Left == "" {
		return errpos(err.Col, "close parenthesis with no open parenthesis")
	}
	return errpos(err.Col, "open parenthesis with no close parenthesis")
}

func (err *BracketError) Pos() int {
	return err.Col
}

// NameError indicates a variable that is missing from the scope, or
// whose stored value is not finite.
type NameError struct {
	// Name is the name that failed to resolve.
	Name string
}

func (err *NameError) Error() string {
	return "undefined variable: " + strconv.Quote(err.Name)
}

// OperandError indicates an operator with too few operands. It
// implements InputError.
type OperandError struct {
	// Col is the position of the operator.
	Col int
	// Op is the operator's canonical spelling.
	Op string
}

func (err *OperandError) Error() string {
	op := err.Op
	if op == "u-" {
		op = "-"
	}
	return errpos(err.Col, "operator "+strconv.Quote(op)+" is missing an operand")
}

func (err *OperandError) Pos() int {
	return err.Col
}

// ResultError indicates that evaluation did not produce a single finite
// value: either the final value is infinite or undefined, or the
// operand stack held the wrong number of values at completion.
type ResultError struct {
	// Value is the final value when exactly one remained.
	Value float64
	// Values is the number of values remaining on the operand stack.
	Values int
}

func (err *ResultError) Error() string {
	if err.Values != 1 {
		return "expression does not reduce to a single value"
	}
	return "result is not a finite number: " + strconv.FormatFloat(err.Value, 'g', -1, 64)
}

// errpos is a shortcut to create an error message with a column.
func errpos(pos int, msg string) string {
	return msg + " at column " + strconv.Itoa(pos)
}

// InputError is an error with position information. Every error about a
// malformed token or construct in the input implements InputError.
type InputError interface {
	error
	// Pos returns the 1-based rune column of the token that caused the
	// error.
	Pos() int
}

var (
	_ InputError = (*CharError)(nil)
	_ InputError = (*NumberError)(nil)
	_ InputError = (*BracketError)(nil)
	_ InputError = (*OperandError)(nil)
)
