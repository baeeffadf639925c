package varcalc

import (
	"sort"
	"strings"
)

// Expr is a parsed expression that can be evaluated against a scope.
type Expr struct {
	// code is the postfix evaluation order.
	code []token
	// names is the sorted list of variable names used in the expression.
	names []string
}

// Parse normalizes and scans an expression and reduces it to postfix
// evaluation order.
func Parse(src string) (*Expr, error) {
	toks, err := tokenize(Normalize(src))
	if err != nil {
		return nil, err
	}
	code, err := parse(toks)
	if err != nil {
		return nil, err
	}
	e := Expr{code: code}
	seen := make(map[string]bool)
	for _, t := range code {
		if t.kind == tokenIdent && !seen[t.text] {
			seen[t.text] = true
			e.names = append(e.names, t.text)
		}
	}
	sort.Strings(e.names)
	return &e, nil
}

// Vars returns the variable names used when evaluating the expression.
func (e *Expr) Vars() []string {
	return append(([]string)(nil), e.names...)
}

// String renders the postfix evaluation order with one space between
// tokens, e.g. "2 3 2 ** **" for 2**3**2.
func (e *Expr) String() string {
	var b strings.Builder
	for i, t := range e.code {
		if i > 0 {
			b.WriteByte(' ')
		}
		b.WriteString(t.text)
	}
	return b.String()
}

type operator struct {
	// prec is the precedence value. Higher is more binding.
	prec int8
	// right indicates right-associativity.
	right bool
	// unary indicates a one-operand operator.
	unary bool
}

// moreBinding reports whether an incoming operator binds ahead of one
// already on the holding stack.
func (o operator) moreBinding(than operator) bool {
	if o.prec != than.prec {
		return o.prec > than.prec
	}
	return o.right
}

// opTable is the fixed precedence, associativity, and arity of every
// operator. It is never mutated.
var opTable = map[string]operator{
	"u-": {prec: 4, right: true, unary: true},
	"**": {prec: 3, right: true},
	"*":  {prec: 2},
	"/":  {prec: 2},
	"%":  {prec: 2},
	"+":  {prec: 1},
	"-":  {prec: 1},
}

// parse reduces a token sequence to postfix order. Operators wait on a
// holding stack until an operator arrives that binds less tightly; an
// open parenthesis is a barrier on that stack, discarded when its close
// arrives. A close with no barrier, or a barrier left at the end of the
// input, is an unbalanced parenthesis.
func parse(toks []token) ([]token, error) {
	out := make([]token, 0, len(toks))
	var hold []token
	for _, t := range toks {
		switch t.kind {
		case tokenNum, tokenIdent:
			out = append(out, t)
		case tokenOp:
			in := opTable[t.text]
			for len(hold) > 0 {
				top := hold[len(hold)-1]
				if top.kind != tokenOp || in.moreBinding(opTable[top.text]) {
					break
				}
				out = append(out, top)
				hold = hold[:len(hold)-1]
			}
			hold = append(hold, t)
		case tokenOpen:
			hold = append(hold, t)
		case tokenClose:
			for {
				if len(hold) == 0 {
					return nil, &BracketError{Col: t.pos, Right: ")"}
				}
				top := hold[len(hold)-1]
				hold = hold[:len(hold)-1]
				if top.kind == tokenOpen {
					break
				}
				out = append(out, top)
			}
		default:
			panic("varcalc: unknown token: " + t.String())
		}
	}
	for len(hold) > 0 {
		top := hold[len(hold)-1]
		hold = hold[:len(hold)-1]
		if top.kind == tokenOpen {
			return nil, &BracketError{Col: top.pos, Left: "("}
		}
		out = append(out, top)
	}
	return out, nil
}
