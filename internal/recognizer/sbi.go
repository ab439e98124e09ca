package recognizer

import (
	"regexp"

	"github.com/cleared-dev/banksms/internal/model"
	"github.com/cleared-dev/banksms/internal/smstext"
)

var (
	sbiRoutes = []*regexp.Regexp{
		regexp.MustCompile(`^[A-Z]{2}-SBI[A-Z]{0,5}(?:-[TPSG])?$`),
		regexp.MustCompile(`^[A-Z]{2}-[A-Z]{0,3}SBI(?:-[TPSG])?$`),
	}

	// UPI alerts carry the amount without a currency marker: "debited by 250.0".
	sbiAmounts = []*regexp.Regexp{
		regexp.MustCompile(`(?i)\b(?:debited|credited)\s+by\s+` + smstext.Currency + `?\s*` + smstext.Number),
		regexp.MustCompile(`(?i)\b(?:debit|credit)\s+by\s+\w+\s+of\s+` + smstext.Currency + `\s*` + smstext.Number),
	}

	sbiDebitBy  = regexp.MustCompile(`(?i)\bhas\s+a\s+debit\s+by\b`)
	sbiCreditBy = regexp.MustCompile(`(?i)\bhas\s+a\s+credit\s+by\b`)

	sbiAccounts = []*regexp.Regexp{
		regexp.MustCompile(`(?i)\ba/c\s*(?:no\.?\s*)?[x*]*(\d{3,4})\b`),
	}

	sbiPayees = []*regexp.Regexp{
		regexp.MustCompile(`(?i)\btrf\s+to\s+(.+?)\s+ref\s*no\b`),
		vpaDisplayName,
		atMerchant,
	}

	sbiPayers = []*regexp.Regexp{
		regexp.MustCompile(`(?i)\btransfer\s+from\s+(.+?)\s+ref\b`),
		vpaDisplayName,
		fromPayer,
	}

	sbiReferences = []*regexp.Regexp{
		regexp.MustCompile(`(?i)\bref\s*no\.?\s*:?\s*([A-Za-z0-9]{6,})`),
		regexp.MustCompile(`(?i)\btxn\s*#\s*([A-Za-z0-9]+)`),
	}
)

// SBI recognizes State Bank of India account, UPI, ATM and SBI Card alerts.
func SBI() *Recognizer {
	return &Recognizer{
		Institution:    model.InstitutionSBI,
		SenderTokens:   []string{"SBI"},
		SenderRoutes:   sbiRoutes,
		AmountPatterns: sbiAmounts,
		Direction:      sbiDirection,
		Account: func(body string) string {
			return smstext.AccountSuffix(body, sbiAccounts...)
		},
		Counterparty: labeler(sbiPayees, sbiPayers),
		Reference: func(body string) string {
			return smstext.Reference(body, sbiReferences...)
		},
	}
}

func sbiDirection(body string) model.Direction {
	switch {
	case sbiDebitBy.MatchString(body):
		return model.DirectionExpense
	case sbiCreditBy.MatchString(body):
		return model.DirectionIncome
	}
	return model.DirectionUnknown
}
