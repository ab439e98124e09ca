package recognizer

import (
	"regexp"

	"github.com/cleared-dev/banksms/internal/model"
	"github.com/cleared-dev/banksms/internal/smstext"
)

// Counterparty phrasings shared by several banks.
var (
	vpaDisplayName = regexp.MustCompile(`(?i)\bvpa\s+\S+?\s*\(([^)]+)\)`)
	infoNote       = regexp.MustCompile(`(?i)\binfo:\s*(?:(?:upi|imps|neft|rtgs|pos|ach|ecs)[-/:])?\s*([^-/:\n]+?)\s*(?:[-/:]|\.(?:\s|$)|$)`)
	atMerchant     = regexp.MustCompile(`(?i)\bat\s+(.+?)\s+on\s+\d`)
	fromPayer      = regexp.MustCompile(`(?i)\bfrom\s+([^.\n(]+?)\s*(?:\.(?:\s|$)|\bon\s+\d|\(|\bupi\b|\bref\b|$)`)

	mentionsATM = regexp.MustCompile(`(?i)\batm\b`)

	genericPayees = []*regexp.Regexp{vpaDisplayName, infoNote, atMerchant}
	genericPayers = []*regexp.Regexp{vpaDisplayName, infoNote, fromPayer}
)

// labeler builds a counterparty extractor. Payee patterns serve debits and
// payer patterns serve credits; subscription, ATM and salary labels take
// precedence where they apply.
func labeler(payee, payer []*regexp.Regexp) func(string, model.Direction) string {
	return func(body string, dir model.Direction) string {
		if !dir.IsDebit() {
			if smstext.IsSalaryCredit(body) {
				return smstext.LabelSalary
			}
			label, _ := smstext.FirstLabel(body, payer...)
			return label
		}

		if name, ok := smstext.SubscriptionName(body); ok {
			return name
		}
		label, _ := smstext.FirstLabel(body, payee...)
		if smstext.IsATMWithdrawal(body) && (label == "" || mentionsATM.MatchString(label)) {
			return smstext.LabelATM
		}
		return label
	}
}
