package recognizer

import (
	"regexp"

	"github.com/cleared-dev/banksms/internal/model"
	"github.com/cleared-dev/banksms/internal/smstext"
)

var (
	unionRoutes = []*regexp.Regexp{
		regexp.MustCompile(`^[A-Z]{2}-UNION[A-Z]?(?:-[TPSG])?$`),
		regexp.MustCompile(`^[A-Z]{2}-UBI[A-Z]{0,3}(?:-[TPSG])?$`),
	}

	// "Debited for Rs:500.00"
	unionAmounts = []*regexp.Regexp{
		regexp.MustCompile(`(?i)\b(?:debited|credited)\s+for\s+` + smstext.Currency + `\s*` + smstext.Number),
	}

	unionAccounts = []*regexp.Regexp{
		regexp.MustCompile(`(?i)\b(?:sb|ca|od)\s+a/c\s*(?:no\.?\s*)?[x*]*(\d{3,4})\b`),
	}
)

// UnionBank recognizes Union Bank of India account alerts.
func UnionBank() *Recognizer {
	return &Recognizer{
		Institution:    model.InstitutionUnion,
		SenderTokens:   []string{"UNIONB", "UBOI", "UBINBK"},
		SenderRoutes:   unionRoutes,
		AmountPatterns: unionAmounts,
		Account: func(body string) string {
			return smstext.AccountSuffix(body, unionAccounts...)
		},
		Counterparty: labeler(
			[]*regexp.Regexp{infoNote, vpaDisplayName, atMerchant},
			[]*regexp.Regexp{infoNote, vpaDisplayName, fromPayer},
		),
	}
}
