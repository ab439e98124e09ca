package recognizer

import (
	"regexp"
	"strings"

	"github.com/cleared-dev/banksms/internal/model"
	"github.com/cleared-dev/banksms/internal/smstext"
)

var (
	hdfcRoutes = []*regexp.Regexp{
		regexp.MustCompile(`^[A-Z]{2}-HDFC[A-Z]{0,4}(?:-[TPSG])?$`),
	}

	hdfcAmounts = []*regexp.Regexp{
		// "Sent Rs.250.00" / "Amt Sent Rs.250.00"
		regexp.MustCompile(`(?i)\bsent\s+` + smstext.Currency + `\s*` + smstext.Number),
		// "Spent Rs.1299 On HDFC Bank Card 4321"
		regexp.MustCompile(`(?i)\bspent\s+` + smstext.Currency + `\s*` + smstext.Number),
		regexp.MustCompile(`(?i)\b(?:debited|credited)\s+(?:with|by|for)\s+` + smstext.Currency + `\s*` + smstext.Number),
	}

	hdfcSent      = regexp.MustCompile(`(?i)^\s*(?:update!?\s*)?(?:amt\s+)?sent\b`)
	hdfcCardSpend = regexp.MustCompile(`(?i)\bspent\b.*\bon\s+hdfc\s+bank\s+card\b|\bhdfc\s+bank\s+credit\s+card\b.*\b(?:spent|used|debited)\b`)
	hdfcDeposit   = regexp.MustCompile(`(?i)\bdeposited\s+in\b|\breceived\s+` + smstext.Currency)

	hdfcAccounts = []*regexp.Regexp{
		regexp.MustCompile(`(?i)\bhdfc\s+bank\s+(?:a/c|acct|card)?\s*(?:no\.?\s*)?[x*]+(\d{3,4})\b`),
	}

	hdfcPayees = []*regexp.Regexp{
		vpaDisplayName,
		regexp.MustCompile(`(?im)^\s*to\s+(?:vpa\s+)?(.+?)\s*$`),
		infoNote,
		atMerchant,
		regexp.MustCompile(`(?i)\bto\s+vpa\s+(\S+?@\S+?)[\s(]`),
	}

	hdfcPayers = []*regexp.Regexp{
		vpaDisplayName,
		regexp.MustCompile(`(?i)\bneft\s+cr-[A-Z0-9]+-([^-]+)-`),
		regexp.MustCompile(`(?i)\bby\s+vpa\s+(\S+?@\S+?)[\s(.]`),
		infoNote,
		fromPayer,
	}

	hdfcReferences = []*regexp.Regexp{
		regexp.MustCompile(`(?i)\binfo:\s*\S*?-(\d{12})\b`),
		regexp.MustCompile(`(?i)\bneft\s+cr-(?:[^-]+-){3}([A-Z0-9]{10,})`),
	}
)

// HDFC recognizes HDFC Bank savings, debit card, credit card and UPI alerts.
func HDFC() *Recognizer {
	return &Recognizer{
		Institution:    model.InstitutionHDFC,
		SenderTokens:   []string{"HDFCBK", "HDFCBN", "HDFCCC"},
		SenderRoutes:   hdfcRoutes,
		AmountPatterns: hdfcAmounts,
		Direction:      hdfcDirection,
		Account: func(body string) string {
			return smstext.AccountSuffix(body, hdfcAccounts...)
		},
		Counterparty: labeler(hdfcPayees, hdfcPayers),
		Reference: func(body string) string {
			return smstext.Reference(body, hdfcReferences...)
		},
	}
}

func hdfcDirection(body string) model.Direction {
	switch {
	case hdfcCardSpend.MatchString(body):
		return model.DirectionCreditCardSpend
	case hdfcSent.MatchString(body):
		return model.DirectionExpense
	case hdfcDeposit.MatchString(body) && !strings.Contains(strings.ToLower(body), "debited"):
		return model.DirectionIncome
	}
	return model.DirectionUnknown
}
