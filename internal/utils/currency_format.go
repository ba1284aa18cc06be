package utils

import (
	"strings"

	"github.com/shopspring/decimal"
)

// FormatWithPrecision formats an amount with the given precision
// Example: 12.3456 with precision 2 returns "12.35"
func FormatWithPrecision(amount decimal.Decimal, precision int32) string {
	return amount.StringFixed(precision)
}

// FormatMoney formats an amount with the given precision and comma thousands separators.
// Example: -1234567.891 with precision 2 returns "-1,234,567.89"
func FormatMoney(amount decimal.Decimal, precision int32) string {
	s := amount.StringFixed(precision)
	sign := ""
	if strings.HasPrefix(s, "-") {
		sign, s = "-", s[1:]
	}
	whole, frac, hasFrac := strings.Cut(s, ".")

	n := len(whole)
	buf := make([]byte, 0, n+n/3)
	for i := 0; i < n; i++ {
		if i > 0 && (n-i)%3 == 0 {
			buf = append(buf, ',')
		}
		buf = append(buf, whole[i])
	}
	if hasFrac {
		return sign + string(buf) + "." + frac
	}
	return sign + string(buf)
}
