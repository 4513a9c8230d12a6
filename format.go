package quickplot

import (
	"math"
	"math/big"
	"strconv"
	"strings"
	"unicode"

	"github.com/dustin/go-humanize"
)

// Percent formats part/total as a percentage with one decimal, e.g.
// "33.3%".
func Percent(part, total float64) string {
	return strconv.FormatFloat(100*part/total, 'f', 1, 64) + "%"
}

// Thousands formats x with one decimal and thousands separators, e.g.
// "1,234.5". NaN is printed as "nan" and infinities as "inf"/"-inf".
func Thousands(x float64) string {
	switch {
	case math.IsNaN(x):
		return "nan"
	case math.IsInf(x, 1):
		return "inf"
	case math.IsInf(x, -1):
		return "-inf"
	}

	s := strconv.FormatFloat(x, 'f', 1, 64)
	sign := ""
	if strings.HasPrefix(s, "-") {
		sign, s = "-", s[1:]
	}
	intPart, frac := s, ""
	if dot := strings.IndexByte(s, '.'); dot >= 0 {
		intPart, frac = s[:dot], s[dot:]
	}
	n, ok := new(big.Int).SetString(intPart, 10)
	if !ok {
		return sign + s
	}
	return sign + humanize.BigComma(n) + frac
}

// Title upper-cases the first letter of every word in s and lower-cases
// the rest. A word starts at any letter not preceded by a letter, so
// "sepal_length" becomes "Sepal_Length".
func Title(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	prevCased := false
	for _, r := range s {
		cased := unicode.IsUpper(r) || unicode.IsLower(r) || unicode.IsTitle(r)
		switch {
		case cased && prevCased:
			r = unicode.ToLower(r)
		case cased:
			r = unicode.ToTitle(r)
		}
		prevCased = cased
		b.WriteRune(r)
	}
	return b.String()
}
