// Package smstext holds the institution-agnostic building blocks used by the
// bank recognizers: amount, account, balance and reference patterns, label
// cleanup and the transactional-message gate.
package smstext

import (
	"regexp"
	"strings"

	"github.com/shopspring/decimal"
)

// Currency matches the Indian currency markers seen in bank SMS: "Rs", "Rs.",
// "Rs:", "INR" and "₹".
const Currency = `(?:\brs\.?:?|\binr|₹)`

// Number matches an amount with optional thousands separators and decimals.
const Number = `(\d[\d,]*(?:\.\d+)?)`

// GenericAmountPatterns are tried after a recognizer's own patterns.
var GenericAmountPatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?i)` + Currency + `\s*` + Number),
	regexp.MustCompile(`(?i)` + Number + `\s*(?:rs\b|inr\b)`),
}

var (
	genericAccountPattern = regexp.MustCompile(`(?i)(?:a/c|acct|account|card)\s*(?:no\.?\s*)?(?:ending\s*(?:with\s*)?)?[x*.]*(\d{3,4})\b`)

	balancePattern = regexp.MustCompile(`(?i)(?:avl\.?\s*bal(?:ance)?|available\s+bal(?:ance)?|\bbal(?:ance)?)\s*(?:is\s*)?:?\s*` + Currency + `?\s*:?\s*` + Number)

	referencePatterns = []*regexp.Regexp{
		regexp.MustCompile(`(?i)\b(?:ref(?:erence)?|utr|rrn)\b\.?\s*(?:no\.?|number|#)?\s*[:\-]?\s*([A-Za-z0-9]{6,})`),
		regexp.MustCompile(`(?i)\b(?:txn|transaction)\s*(?:id|no\.?)\s*[:\-]?\s*([A-Za-z0-9]{6,})`),
	}

	hasDigit = regexp.MustCompile(`\d`)
)

// FirstMatch returns the first capture group of the first pattern that matches.
func FirstMatch(text string, patterns ...*regexp.Regexp) (string, bool) {
	for _, p := range patterns {
		if m := p.FindStringSubmatch(text); len(m) > 1 {
			return m[1], true
		}
	}
	return "", false
}

// ExtractAmount returns the amount captured by the first matching pattern.
// The bool reports whether any pattern matched; the amount may still be zero
// when the captured text is malformed.
func ExtractAmount(body string, patterns ...*regexp.Regexp) (decimal.Decimal, bool) {
	s, ok := FirstMatch(body, patterns...)
	if !ok {
		return decimal.Zero, false
	}
	return ParseAmount(s), true
}

// AccountSuffix extracts the trailing digits of an account or card number.
func AccountSuffix(body string, patterns ...*regexp.Regexp) string {
	if s, ok := FirstMatch(body, patterns...); ok {
		return s
	}
	s, _ := FirstMatch(body, genericAccountPattern)
	return s
}

// Balance extracts the available balance reported after the transaction.
func Balance(body string, patterns ...*regexp.Regexp) *decimal.Decimal {
	s, ok := FirstMatch(body, patterns...)
	if !ok {
		s, ok = FirstMatch(body, balancePattern)
	}
	if !ok {
		return nil
	}
	bal := ParseAmount(s)
	if bal.IsZero() && strings.Trim(s, "0.,") != "" {
		return nil
	}
	return &bal
}

// Reference extracts a transaction or UPI reference. References must carry at
// least one digit.
func Reference(body string, patterns ...*regexp.Regexp) string {
	if ref := firstReference(body, patterns); ref != "" {
		return ref
	}
	return firstReference(body, referencePatterns)
}

func firstReference(body string, patterns []*regexp.Regexp) string {
	for _, p := range patterns {
		m := p.FindStringSubmatch(body)
		if len(m) > 1 && hasDigit.MatchString(m[1]) {
			return m[1]
		}
	}
	return ""
}
