package recognizer

import (
	"regexp"

	"github.com/cleared-dev/banksms/internal/model"
	"github.com/cleared-dev/banksms/internal/smstext"
)

var (
	indianRoutes = []*regexp.Regexp{
		regexp.MustCompile(`^[A-Z]{2}-INDB[A-Z]{0,3}(?:-[TPSG])?$`),
	}

	// "A/c *1234 debited Rs. 300.00"
	indianAmounts = []*regexp.Regexp{
		regexp.MustCompile(`(?i)\b(?:debited|credited)\s+` + smstext.Currency + `\s*` + smstext.Number),
	}

	indianPayees = []*regexp.Regexp{
		vpaDisplayName,
		regexp.MustCompile(`(?i)\bto\s+vpa\s+(\S+?@[A-Za-z]+)`),
		atMerchant,
	}

	indianPayers = []*regexp.Regexp{
		vpaDisplayName,
		regexp.MustCompile(`(?i)\bby\s+vpa\s+(\S+?@[A-Za-z]+)`),
		fromPayer,
	}
)

// IndianBank recognizes Indian Bank account and UPI alerts.
func IndianBank() *Recognizer {
	return &Recognizer{
		Institution:    model.InstitutionIndian,
		SenderTokens:   []string{"INDBNK", "INDIANBK", "INDBK"},
		SenderRoutes:   indianRoutes,
		AmountPatterns: indianAmounts,
		Counterparty:   labeler(indianPayees, indianPayers),
	}
}
