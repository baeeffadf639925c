package varcalc

import "math"

// Eval evaluates the expression against a scope mapping variable names
// to values. The scope is read-only to the engine and may be nil if the
// expression uses no variables. The result is one finite float64; any
// other outcome is an error.
//
// An Expr holds no evaluation state, so one Expr may be evaluated
// concurrently against different scopes.
func (e *Expr) Eval(scope map[string]float64) (float64, error) {
	stack := make([]float64, 0, len(e.code))
	for _, t := range e.code {
		switch t.kind {
		case tokenNum:
			stack = append(stack, t.val)
		case tokenIdent:
			v, ok := scope[t.text]
			if !ok || !isFinite(v) {
				return 0, &NameError{Name: t.text}
			}
			stack = append(stack, v)
		case tokenOp:
			if opTable[t.text].unary {
				if len(stack) < 1 {
					return 0, &OperandError{Col: t.pos, Op: t.text}
				}
				stack[len(stack)-1] = -stack[len(stack)-1]
				continue
			}
			if len(stack) < 2 {
				return 0, &OperandError{Col: t.pos, Op: t.text}
			}
			r := stack[len(stack)-1]
			l := stack[len(stack)-2]
			stack = stack[:len(stack)-1]
			switch t.text {
			case "+":
				l += r
			case "-":
				l -= r
			case "*":
				l *= r
			case "/":
				l /= r
			case "%":
				l = math.Mod(l, r)
			case "**":
				l = math.Pow(l, r)
			default:
				panic("varcalc: unknown operator: " + t.String())
			}
			stack[len(stack)-1] = l
		default:
			panic("varcalc: unevaluable token: " + t.String())
		}
	}
	if len(stack) != 1 {
		return 0, &ResultError{Values: len(stack)}
	}
	if v := stack[0]; isFinite(v) {
		return v, nil
	}
	return 0, &ResultError{Value: stack[0], Values: 1}
}

// Eval is a shortcut to parse an expression and evaluate it against a
// scope.
func Eval(src string, scope map[string]float64) (float64, error) {
	e, err := Parse(src)
	if err != nil {
		return 0, err
	}
	return e.Eval(scope)
}

func isFinite(v float64) bool {
	return !math.IsInf(v, 0) && !math.IsNaN(v)
}
