package smstext

import (
	"regexp"
	"strings"
	"unicode"
)

// Cleanup steps run in this order. Date, UPI and Ref tails come off before
// corporate suffixes so "ACME PVT LTD on 17-Feb-26" reduces to "ACME".
var (
	trailingParen  = regexp.MustCompile(`\s*\([^()]*\)\s*$`)
	trailingRef    = regexp.MustCompile(`(?i)[\s.,;]+ref\.?\s*(?:no\b|number\b|:|\d).*$`)
	trailingDate   = regexp.MustCompile(`(?i)\s+on\s+(?:\d|date\b).*$`)
	trailingUPI    = regexp.MustCompile(`(?i)[\s.,;/-]+(?:via\s+)?upi\b.*$`)
	corporateTail  = regexp.MustCompile(`(?i)\s+(?:pvt\.?\s*ltd\.?|private\s+limited|ltd\.?|limited)\s*$`)
	trailingDash   = regexp.MustCompile(`\s*-+\s*$`)
	allDigits      = regexp.MustCompile(`^[\d\s]+$`)
	callPrompt     = regexp.MustCompile(`(?i)^call\b`)
	multipleSpaces = regexp.MustCompile(`\s+`)
)

// genericWords surface from naive matches but never name a merchant.
var genericWords = map[string]bool{
	"upi":      true,
	"neft":     true,
	"imps":     true,
	"rtgs":     true,
	"transfer": true,
}

// CleanLabel reduces a raw merchant or payee fragment to a display label.
func CleanLabel(text string) string {
	s := strings.TrimSpace(multipleSpaces.ReplaceAllString(text, " "))
	s = trailingParen.ReplaceAllString(s, "")
	s = trailingRef.ReplaceAllString(s, "")
	s = trailingDate.ReplaceAllString(s, "")
	s = trailingUPI.ReplaceAllString(s, "")
	s = strings.TrimRight(s, " .,;:")
	s = corporateTail.ReplaceAllString(s, "")
	s = trailingDash.ReplaceAllString(s, "")
	return strings.TrimSpace(strings.TrimRight(s, " .,;:"))
}

// IsPlausibleLabel rejects labels that cannot be a merchant or payee name.
func IsPlausibleLabel(text string) bool {
	s := strings.TrimSpace(text)
	if len([]rune(s)) < 2 {
		return false
	}
	if allDigits.MatchString(s) || callPrompt.MatchString(s) || mostlyDigits(s) {
		return false
	}
	return !genericWords[strings.ToLower(s)]
}

func mostlyDigits(s string) bool {
	var digits, other int
	for _, r := range s {
		switch {
		case unicode.IsDigit(r):
			digits++
		case !unicode.IsSpace(r):
			other++
		}
	}
	return digits > other
}

// FirstLabel returns the first cleaned, plausible label captured by patterns.
func FirstLabel(body string, patterns ...*regexp.Regexp) (string, bool) {
	for _, p := range patterns {
		m := p.FindStringSubmatch(body)
		if len(m) < 2 {
			continue
		}
		if label := CleanLabel(m[1]); IsPlausibleLabel(label) {
			return label, true
		}
	}
	return "", false
}
