// Package cli provides formatting and rendering utilities for terminal output.
package cli

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"
)

// FormatMoney formats an amount as dollars with thousands separators.
// e.g., 1234567.891 -> "$1,234,567.89"
func FormatMoney(v float64) string {
	s := decimal.NewFromFloat(v).StringFixed(2)

	sign := ""
	if strings.HasPrefix(s, "-") {
		sign = "-"
		s = s[1:]
	}
	whole, frac, _ := strings.Cut(s, ".")
	return sign + "$" + groupThousands(whole) + "." + frac
}

func groupThousands(digits string) string {
	if len(digits) <= 3 {
		return digits
	}

	var b strings.Builder
	head := len(digits) % 3
	if head > 0 {
		b.WriteString(digits[:head])
	}
	for i := head; i < len(digits); i += 3 {
		if b.Len() > 0 {
			b.WriteByte(',')
		}
		b.WriteString(digits[i : i+3])
	}
	return b.String()
}

// FormatMonths renders a month count with its year equivalent.
// e.g., 360 -> "360 (30y)", 301 -> "301 (25y 1m)", 7 -> "7"
func FormatMonths(n int) string {
	if n < 12 {
		return fmt.Sprintf("%d", n)
	}
	years, months := n/12, n%12
	if months == 0 {
		return fmt.Sprintf("%d (%dy)", n, years)
	}
	return fmt.Sprintf("%d (%dy %dm)", n, years, months)
}

// FormatPercent formats a percentage that is already scaled to 0-100.
func FormatPercent(pct float64) string {
	return strconv.FormatFloat(pct, 'f', -1, 64) + "%"
}
