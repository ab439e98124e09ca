package recognizer

import (
	"regexp"

	"github.com/cleared-dev/banksms/internal/model"
	"github.com/cleared-dev/banksms/internal/smstext"
)

var (
	iciciRoutes = []*regexp.Regexp{
		regexp.MustCompile(`^[A-Z]{2}-ICICI[A-Z]?(?:-[TPSG])?$`),
	}

	iciciAmounts = []*regexp.Regexp{
		regexp.MustCompile(`(?i)\b(?:debited|credited)\s+(?:for|with)\s+` + smstext.Currency + `\s*` + smstext.Number),
		regexp.MustCompile(`(?i)\btransaction\s+of\s+` + smstext.Currency + `\s*` + smstext.Number),
		regexp.MustCompile(`(?i)` + smstext.Currency + `\s*` + smstext.Number + `\s+spent\b`),
	}

	iciciCardSpend = regexp.MustCompile(`(?i)\bspent\s+(?:using|on)\s+icici\s+bank\s+(?:credit\s+)?card\b.*\bavl\.?\s*(?:limit|lmt)\b|\bicici\s+bank\s+credit\s+card\b.*\bspent\b`)
	iciciPeerDebit = regexp.MustCompile(`(?i)\bdebited\s+for\b.*;\s*.+?\s+credited\b`)
	iciciCredited  = regexp.MustCompile(`(?i)\bis\s+credited\s+with\b`)

	iciciAccounts = []*regexp.Regexp{
		regexp.MustCompile(`(?i)\bacct\s+(?:no\.?\s*)?[x*]+(\d{3,4})\b`),
		regexp.MustCompile(`(?i)\bcard\s+(?:no\.?\s*)?[x*]+(\d{3,4})\b`),
	}

	iciciPayees = []*regexp.Regexp{
		// "debited for Rs 1,250.00 on 17-Feb-26; SWIGGY credited."
		regexp.MustCompile(`(?i);\s*([^;.]+?)\s+credited\b`),
		// "on 17-Feb-26 on AMAZON." / "on 17-Feb-26 at AMAZON."
		regexp.MustCompile(`(?i)\bon\s+\d{1,2}-\w{3}-\d{2,4}\s+(?:on|at)\s+([^.]+?)\s*(?:\.(?:\s|$)|$)`),
		vpaDisplayName,
		infoNote,
		atMerchant,
	}

	iciciPayers = []*regexp.Regexp{
		vpaDisplayName,
		fromPayer,
		regexp.MustCompile(`(?i)\bby\s+([^.]+?)\s*\.\s*(?:upi|imps|neft)\b`),
	}

	iciciReferences = []*regexp.Regexp{
		regexp.MustCompile(`(?i)\b(?:upi|imps|neft|rrn):\s*(\d{6,})`),
	}
)

// ICICI recognizes ICICI Bank account, UPI and card alerts.
func ICICI() *Recognizer {
	return &Recognizer{
		Institution:    model.InstitutionICICI,
		SenderTokens:   []string{"ICICIB", "ICICIT", "ICICIO"},
		SenderRoutes:   iciciRoutes,
		AmountPatterns: iciciAmounts,
		Direction:      iciciDirection,
		Account: func(body string) string {
			return smstext.AccountSuffix(body, iciciAccounts...)
		},
		Counterparty: labeler(iciciPayees, iciciPayers),
		Reference: func(body string) string {
			return smstext.Reference(body, iciciReferences...)
		},
	}
}

func iciciDirection(body string) model.Direction {
	switch {
	case iciciCardSpend.MatchString(body):
		return model.DirectionCreditCardSpend
	case iciciPeerDebit.MatchString(body):
		// The payee is "credited" in the same sentence; the account was debited.
		return model.DirectionExpense
	case iciciCredited.MatchString(body):
		return model.DirectionIncome
	}
	return model.DirectionUnknown
}
