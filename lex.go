package varcalc

import (
	"strconv"
	"unicode"
	"unicode/utf8"
)

type token struct {
	kind tokenKind
	// text is the token's canonical spelling. Both ^ and ** scan as the
	// power operator "**", and a minus reclassified as unary negation
	// becomes "u-".
	text string
	// val is the converted value of a tokenNum.
	val float64
	// pos is the 1-based rune column of the token's first rune.
	pos int
}

func (t token) String() string {
	return t.kind.String() + ":" + t.text + "@" + strconv.Itoa(t.pos)
}

type tokenKind int8

const (
	tokenNone tokenKind = iota
	// tokenNum is a numeric literal.
	tokenNum
	// tokenIdent is a variable name.
	tokenIdent
	// tokenOp is an operator, including the synthetic u- and implicit *.
	tokenOp
	// tokenOpen is an open parenthesis.
	tokenOpen
	// tokenClose is a close parenthesis.
	tokenClose
)

func (k tokenKind) String() string {
	switch k {
	case tokenNone:
		return "None"
	case tokenNum:
		return "Num"
	case tokenIdent:
		return "Ident"
	case tokenOp:
		return "Op"
	case tokenOpen:
		return "Open"
	case tokenClose:
		return "Close"
	default:
		return "tokenKind(" + strconv.Itoa(int(k)) + ")"
	}
}

type lexer struct {
	src  string
	off  int // byte offset of the next rune
	col  int // rune column of the next rune
	toks []token
}

// tokenize scans a normalized expression into tokens. Implicit
// multiplication and unary-minus reclassification both depend on the
// previously emitted token, so they happen in the same left-to-right
// pass, inside emit.
func tokenize(src string) ([]token, error) {
	l := lexer{src: src, col: 1}
	for l.off < len(l.src) {
		r, sz := utf8.DecodeRuneInString(l.src[l.off:])
		switch {
		case unicode.IsSpace(r):
			l.skip(sz)
		case '0' <= r && r <= '9', r == '.':
			if err := l.scanNum(); err != nil {
				return nil, err
			}
		case r == '_', unicode.IsLetter(r):
			l.scanIdent()
		case r == '(':
			l.emit(token{kind: tokenOpen, text: "(", pos: l.col})
			l.skip(sz)
		case r == ')':
			l.emit(token{kind: tokenClose, text: ")", pos: l.col})
			l.skip(sz)
		case r == '*':
			pos := l.col
			l.skip(sz)
			if l.off < len(l.src) && l.src[l.off] == '*' {
				l.skip(1)
				l.emit(token{kind: tokenOp, text: "**", pos: pos})
				break
			}
			l.emit(token{kind: tokenOp, text: "*", pos: pos})
		case r == '^':
			l.emit(token{kind: tokenOp, text: "**", pos: l.col})
			l.skip(sz)
		case r == '+', r == '-', r == '/', r == '%':
			l.emit(token{kind: tokenOp, text: string(r), pos: l.col})
			l.skip(sz)
		default:
			return nil, &CharError{Col: l.col, Char: r}
		}
	}
	if len(l.toks) == 0 {
		return nil, &EmptyExpressionError{}
	}
	return l.toks, nil
}

// skip advances past a rune of the given encoded size.
func (l *lexer) skip(sz int) {
	l.off += sz
	l.col++
}

// emit appends a token. Before a number, identifier, or open parenthesis
// that directly follows a value-like token, it inserts a multiplication,
// which is how "2x" and "x(y)" become products. A minus that is the first
// token or follows an operator or open parenthesis is reclassified as
// unary negation.
func (l *lexer) emit(t token) {
	switch t.kind {
	case tokenNum, tokenIdent, tokenOpen:
		switch l.last() {
		case tokenNum, tokenIdent, tokenClose:
			l.toks = append(l.toks, token{kind: tokenOp, text: "*", pos: t.pos})
		}
	case tokenOp:
		if t.text == "-" {
			switch l.last() {
			case tokenNone, tokenOp, tokenOpen:
				t.text = "u-"
			}
		}
	}
	l.toks = append(l.toks, t)
}

// last is the kind of the most recently emitted token, or tokenNone at
// the start of the input.
func (l *lexer) last() tokenKind {
	if len(l.toks) == 0 {
		return tokenNone
	}
	return l.toks[len(l.toks)-1].kind
}

// scanNum scans a numeric literal: digits with at most one decimal
// point. A second decimal point ends the literal rather than erroring;
// whatever was scanned must then convert, or the token is invalid.
func (l *lexer) scanNum() error {
	start, pos := l.off, l.col
	dot := false
	for l.off < len(l.src) {
		c := l.src[l.off]
		if c == '.' && !dot {
			dot = true
		} else if c < '0' || c > '9' {
			break
		}
		l.skip(1)
	}
	text := l.src[start:l.off]
	v, err := strconv.ParseFloat(text, 64)
	if err != nil {
		return &NumberError{Col: pos, Text: text}
	}
	l.emit(token{kind: tokenNum, text: text, val: v, pos: pos})
	return nil
}

// scanIdent scans a variable name: an underscore or letter followed by
// any mix of underscores, letters, and digits.
func (l *lexer) scanIdent() {
	start, pos := l.off, l.col
	for l.off < len(l.src) {
		r, sz := utf8.DecodeRuneInString(l.src[l.off:])
		if r != '_' && !unicode.IsLetter(r) && !unicode.IsDigit(r) {
			break
		}
		l.skip(sz)
	}
	l.emit(token{kind: tokenIdent, text: l.src[start:l.off], pos: pos})
}

// ValidName reports whether s is usable as a variable name: an
// underscore or letter followed by underscores, letters, and digits.
func ValidName(s string) bool {
	for i, r := range s {
		switch {
		case r == '_', unicode.IsLetter(r):
		case i > 0 && unicode.IsDigit(r):
		default:
			return false
		}
	}
	return s != ""
}
