package smstext

import (
	"regexp"
	"strings"

	"github.com/cleared-dev/banksms/internal/model"
)

var (
	promoCashback = regexp.MustCompile(`\bearn cashback\b`)

	creditCardProduct = regexp.MustCompile(`\bcredit\s*card\b|\bcc\s*(?:no\.?\s*)?[x*]+\d{3,4}\b`)
	creditCardVerb    = regexp.MustCompile(`\b(?:spent|used|charged|debited|purchase|txn|transaction)\b`)
	creditCardInflow  = regexp.MustCompile(`\b(?:payment|credited|refund(?:ed)?|revers(?:al|ed)|bill|repayment|outstanding)\b|\btowards\s+(?:your\s+)?(?:\w+\s+)?credit\s*card\b`)

	expenseKeywords = regexp.MustCompile(`\b(?:debited|withdrawn|spent|charged|paid|purchase|sent|deducted|transferred)\b`)
	incomeKeywords  = regexp.MustCompile(`\b(?:credited|deposited|received|refund(?:ed)?|cashback)\b`)
)

// ClassifyDirection applies the generic direction policy. Promotional
// cashback wins over everything, credit-card spend is checked before plain
// expense, and expense keywords are checked before income keywords.
func ClassifyDirection(body string) model.Direction {
	lower := strings.ToLower(body)

	if IsPromoCashback(lower) {
		return model.DirectionUnknown
	}
	if IsCreditCardSpend(lower) {
		return model.DirectionCreditCardSpend
	}
	if expenseKeywords.MatchString(lower) {
		return model.DirectionExpense
	}
	if incomeKeywords.MatchString(lower) {
		return model.DirectionIncome
	}
	return model.DirectionUnknown
}

// IsPromoCashback reports whether body advertises cashback to be earned.
func IsPromoCashback(body string) bool {
	lower := strings.ToLower(body)
	return strings.Contains(lower, "cashback") && promoCashback.MatchString(lower)
}

// IsCreditCardSpend reports whether the message names a credit card together
// with a spend verb. Payments, refunds and reversals on a card are not spend,
// and neither is an account debit towards the card bill.
func IsCreditCardSpend(body string) bool {
	lower := strings.ToLower(body)
	if !creditCardProduct.MatchString(lower) || !creditCardVerb.MatchString(lower) {
		return false
	}
	if strings.Contains(lower, "spent") {
		return true
	}
	return !creditCardInflow.MatchString(lower)
}
