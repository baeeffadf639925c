// Package session ties the expression engine to a value store and
// applies the calculator's input conventions at that boundary.
package session

import (
	"strconv"
	"strings"

	"github.com/varcalc/varcalc"
	"github.com/varcalc/varcalc/store"
)

// Session evaluates expressions against the variables saved in a
// store. Each evaluation sees a fresh snapshot of the store, so a
// Session never hands the engine shared mutable state.
type Session struct {
	vars *store.Store
}

// New creates a session over a store.
func New(vars *store.Store) *Session {
	return &Session{vars: vars}
}

// Prepare applies the calculator's input conventions: normalization,
// ignoring one trailing equals sign left by the enter key, and
// treating an empty editor as the literal 0.
func Prepare(text string) string {
	text = strings.TrimSpace(varcalc.Normalize(text))
	text = strings.TrimSuffix(text, "=")
	if strings.TrimSpace(text) == "" {
		return "0"
	}
	return text
}

// Eval evaluates one expression against a snapshot of the saved
// variables.
func (s *Session) Eval(text string) (float64, error) {
	scope, err := s.vars.Snapshot()
	if err != nil {
		return 0, err
	}
	return varcalc.Eval(Prepare(text), scope)
}

// Assign evaluates an expression and saves the result under name. The
// saved value is visible to subsequent evaluations.
func (s *Session) Assign(name, text string) (float64, error) {
	r, err := s.Eval(text)
	if err != nil {
		return 0, err
	}
	if err := s.vars.Set(name, r); err != nil {
		return 0, err
	}
	return r, nil
}

// Format renders a result the way the display shows it: the shortest
// decimal that round-trips, with no trailing zero fraction digits.
func Format(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
