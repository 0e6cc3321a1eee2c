package models

import (
	"strings"

	"github.com/shopspring/decimal"
)

// formatAmount renders a decimal with two places and comma-grouped thousands.
func formatAmount(d decimal.Decimal) string {
	s := d.StringFixed(2)
	neg := strings.HasPrefix(s, "-")
	if neg {
		s = s[1:]
	}
	dot := strings.Index(s, ".")
	intPart, frac := s[:dot], s[dot:]

	var b strings.Builder
	for i := 0; i < len(intPart); i++ {
		if i > 0 && (len(intPart)-i)%3 == 0 {
			b.WriteByte(',')
		}
		b.WriteByte(intPart[i])
	}
	if neg {
		return "-" + b.String() + frac
	}
	return b.String() + frac
}
