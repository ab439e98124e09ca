package smstext

import (
	"strings"

	"github.com/shopspring/decimal"
)

// ParseAmount parses "1,234.50" style amounts. Malformed input yields zero,
// which callers treat the same as "not found".
func ParseAmount(text string) decimal.Decimal {
	s := strings.TrimSpace(strings.ReplaceAll(text, ",", ""))
	s = strings.TrimRight(s, ".")
	if s == "" {
		return decimal.Zero
	}
	d, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Zero
	}
	return d
}
