// Package money formats amounts the way Brazilian documents print them.
package money

import (
	"strings"

	"github.com/shopspring/decimal"
)

// FormatBRL renders an amount as "R$ 1.234,56".
func FormatBRL(d decimal.Decimal) string {
	s := d.Abs().StringFixed(2)
	intPart, frac := s[:len(s)-3], s[len(s)-2:]

	var b strings.Builder
	for i, r := range intPart {
		if i > 0 && (len(intPart)-i)%3 == 0 {
			b.WriteByte('.')
		}
		b.WriteRune(r)
	}
	sign := ""
	if d.IsNegative() {
		sign = "-"
	}
	return sign + "R$ " + b.String() + "," + frac
}
