package varcalc

import "strings"

// folder maps full-width symbol and digit variants to their canonical
// half-width forms. The source set is disjoint from the replacement set,
// so folding is idempotent.
var folder = strings.NewReplacer(
	"（", "(",
	"）", ")",
	"＝", "=",
	"＋", "+",
	"－", "-",
	"＊", "*",
	"×", "*",
	"／", "/",
	"÷", "/",
	"＾", "^",
	"０", "0",
	"１", "1",
	"２", "2",
	"３", "3",
	"４", "4",
	"５", "5",
	"６", "6",
	"７", "7",
	"８", "8",
	"９", "9",
	"．", ".",
)

// Normalize folds full-width variants of digits, operators, parentheses,
// and the equals sign to their half-width equivalents. It never fails,
// and normalizing an already normalized string is a no-op.
func Normalize(s string) string {
	return folder.Replace(s)
}
