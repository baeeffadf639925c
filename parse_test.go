package varcalc_test

import (
	"errors"
	"reflect"
	"strings"
	"testing"

	"github.com/varcalc/varcalc"
)

func TestParse(t *testing.T) {
	cases := []struct {
		name string
		src  string
		code string
	}{
		{"num", "1", "1"},
		{"ident", "x", "x"},
		{"add", "1+2", "1 2 +"},
		{"chain", "1-2-3", "1 2 - 3 -"},
		{"prec", "1+2*3", "1 2 3 * +"},
		{"group", "(1+2)*3", "1 2 + 3 *"},
		{"nested", "((1))", "1"},
		{"pow-right", "2**3**2", "2 3 2 ** **"},
		{"pow-caret", "2^3", "2 3 **"},
		{"mod", "5%2", "5 2 %"},
		{"neg", "-x", "x u-"},
		{"neg-prod", "3*-2", "3 2 u- *"},
		{"neg-pow", "-2**2", "2 u- 2 **"},
		{"implicit", "2x", "2 x *"},
		{"implicit-group", "2(x+1)", "2 x 1 + *"},
		{"fullwidth", "２＋３", "2 3 +"},
		{"split-literal", "1.2.3", "1.2 .3 *"},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			e, err := varcalc.Parse(c.src)
			if err != nil {
				t.Fatalf("%q failed to parse: %v", c.src, err)
			}
			if got := e.String(); got != c.code {
				t.Errorf("%q gave wrong evaluation order: want %q, got %q", c.src, c.code, got)
			}
		})
	}
}

func TestParseBrackets(t *testing.T) {
	cases := []struct {
		name  string
		src   string
		left  string
		right string
	}{
		{"unclosed", "(1+2", "(", ""},
		{"unopened", "1+2)", "", ")"},
		{"deep-unclosed", "((1+2)", "(", ""},
		{"early-close", ")(", "", ")"},
		{"bare-close", ")", "", ")"},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			_, err := varcalc.Parse(c.src)
			var be *varcalc.BracketError
			if !errors.As(err, &be) {
				t.Fatalf("parsing %q: want BracketError, got %#v", c.src, err)
			}
			if be.Left != c.left || be.Right != c.right {
				t.Errorf("parsing %q: want left %q right %q, got left %q right %q", c.src, c.left, c.right, be.Left, be.Right)
			}
		})
	}
}

func TestVars(t *testing.T) {
	cases := []struct {
		name string
		src  string
		vars []string
	}{
		{"none", "1+2+3", nil},
		{"one", "1+2+x", []string{"x"}},
		{"sort", "z+y+x+w", []string{"w", "x", "y", "z"}},
		{"reuse", "a+b*a-b", []string{"a", "b"}},
		{"implicit", "2a b", []string{"a", "b"}},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			e, err := varcalc.Parse(c.src)
			if err != nil {
				t.Fatalf("%q didn't parse: %v", c.src, err)
			}
			vars := e.Vars()
			if !reflect.DeepEqual(vars, c.vars) {
				t.Errorf("%q gave wrong variable names:\n\twant %q\n\tgot  %q", c.src, c.vars, vars)
			}
		})
	}
}

func TestParseDeepNesting(t *testing.T) {
	const depth = 10000
	src := strings.Repeat("(", depth) + "1" + strings.Repeat(")", depth)
	e, err := varcalc.Parse(src)
	if err != nil {
		t.Fatalf("deeply nested expression failed to parse: %v", err)
	}
	r, err := e.Eval(nil)
	if err != nil {
		t.Fatalf("deeply nested expression failed to evaluate: %v", err)
	}
	if r != 1 {
		t.Errorf("deeply nested expression: want 1, got %g", r)
	}
}
