package smstext

import (
	"regexp"
	"strings"
)

// Fixed labels for counterparties that have no payee name in the text.
const (
	LabelATM    = "ATM Withdrawal"
	LabelSalary = "Salary"
)

type subscription struct {
	keyword string
	name    string
}

// Ordered so that "amazon prime" is seen before a bare "prime" style keyword.
var subscriptions = []subscription{
	{"netflix", "Netflix"},
	{"spotify", "Spotify"},
	{"google play", "Google Play"},
	{"googleplay", "Google Play"},
	{"play store", "Google Play"},
	{"apple.com", "Apple"},
	{"itunes", "Apple"},
	{"apple services", "Apple"},
	{"amazon prime", "Amazon Prime"},
	{"primevideo", "Amazon Prime"},
	{"prime video", "Amazon Prime"},
	{"youtube", "YouTube Premium"},
	{"hotstar", "Disney+ Hotstar"},
}

var (
	atmPattern    = regexp.MustCompile(`\b(?:atm|cash withdrawal|withdrawn|cash wdl|atw)\b`)
	salaryPattern = regexp.MustCompile(`\b(?:salary|sal)\b|\bpayroll\b`)
)

// SubscriptionName maps well-known streaming and app-store charges to a
// canonical merchant name.
func SubscriptionName(body string) (string, bool) {
	lower := strings.ToLower(body)
	for _, s := range subscriptions {
		if strings.Contains(lower, s.keyword) {
			return s.name, true
		}
	}
	return "", false
}

// IsATMWithdrawal reports whether the text reads like a cash withdrawal.
func IsATMWithdrawal(body string) bool {
	return atmPattern.MatchString(strings.ToLower(body))
}

// IsSalaryCredit reports whether a payroll-style note is present.
func IsSalaryCredit(body string) bool {
	return salaryPattern.MatchString(strings.ToLower(body))
}
