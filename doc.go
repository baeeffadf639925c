// Package varcalc implements a floating-point calculator with named
// variables.
//
// The syntax of expressions is intended to be forgiving of free-form
// calculator input. "2x" is a multiplication of 2 by the variable x, and
// so is "2(x)". Full-width characters typed through an IME, like ２＋３
// or （ｘ）, are folded to their half-width equivalents before scanning.
// "a^b" and "a**b" are both exponentiation.
//
// Parsing an expression once lets you evaluate it against many variable
// scopes. Evaluation is a pure function of the expression and the scope:
// it never mutates the scope, and it produces either one finite float64
// or an error describing exactly what went wrong.
package varcalc
