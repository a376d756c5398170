// Package money formats monetary amounts as Indonesian Rupiah for display.
package money

import (
	"strconv"
	"strings"
)

// FormatIDR renders an amount as an Indonesian Rupiah currency string,
// with dot-grouped thousands and a comma decimal separator.
//
// Examples:
//
//	FormatIDR(15000) -> "Rp15.000,00"
//	FormatIDR(-2500.5) -> "-Rp2.500,50"
func FormatIDR(amount float64) string {
	s := strconv.FormatFloat(amount, 'f', 2, 64)

	neg := strings.HasPrefix(s, "-")
	if neg {
		s = s[1:]
	}

	intPart, fracPart, _ := strings.Cut(s, ".")

	var b strings.Builder
	if neg {
		b.WriteByte('-')
	}
	b.WriteString("Rp")
	for i, r := range intPart {
		if i > 0 && (len(intPart)-i)%3 == 0 {
			b.WriteByte('.')
		}
		b.WriteRune(r)
	}
	b.WriteByte(',')
	b.WriteString(fracPart)
	return b.String()
}
