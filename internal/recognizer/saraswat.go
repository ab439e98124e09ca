package recognizer

import (
	"regexp"

	"github.com/cleared-dev/banksms/internal/model"
	"github.com/cleared-dev/banksms/internal/smstext"
)

var (
	saraswatRoutes = []*regexp.Regexp{
		regexp.MustCompile(`^[A-Z]{2}-SARAS[A-Z]{0,3}(?:-[TPSG])?$`),
		regexp.MustCompile(`^[A-Z]{2}-SRCB[A-Z]{0,2}(?:-[TPSG])?$`),
	}

	saraswatAmounts = []*regexp.Regexp{
		regexp.MustCompile(`(?i)\b(?:debited|credited)\s+for\s+` + smstext.Currency + `\s*` + smstext.Number),
	}

	// "towards UPI/604812345678/SWIGGY" and "by NEFT/SRCBN26032123456/ACME PAYROLL"
	saraswatNote = regexp.MustCompile(`(?i)\b(?:towards|by)\s+(?:upi|imps|neft|rtgs)/[^/\s]+/([^./\n]+)`)

	saraswatReferences = []*regexp.Regexp{
		regexp.MustCompile(`(?i)\b(?:upi|imps|neft|rtgs)/([A-Za-z0-9]{6,})/`),
	}
)

// Saraswat recognizes Saraswat Co-operative Bank account alerts.
func Saraswat() *Recognizer {
	return &Recognizer{
		Institution:    model.InstitutionSaraswat,
		SenderTokens:   []string{"SARASB", "SARSWT", "SRCBNK"},
		SenderRoutes:   saraswatRoutes,
		AmountPatterns: saraswatAmounts,
		Counterparty: labeler(
			[]*regexp.Regexp{saraswatNote, vpaDisplayName, atMerchant},
			[]*regexp.Regexp{saraswatNote, vpaDisplayName, fromPayer},
		),
		Reference: func(body string) string {
			return smstext.Reference(body, saraswatReferences...)
		},
	}
}
