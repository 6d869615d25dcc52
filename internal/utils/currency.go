package utils

import (
	"math"
	"strconv"
	"strings"
)

// FormatPrice renders a whole-dollar price with thousands separators, e.g. "$1,250,000".
func FormatPrice(amount float64) string {
	amount = math.Round(amount)
	negative := amount < 0
	digits := strconv.FormatFloat(math.Abs(amount), 'f', 0, 64)

	var b strings.Builder
	if negative {
		b.WriteByte('-')
	}
	b.WriteByte('$')
	for i, d := range digits {
		if i > 0 && (len(digits)-i)%3 == 0 {
			b.WriteByte(',')
		}
		b.WriteRune(d)
	}
	return b.String()
}
