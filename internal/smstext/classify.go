package smstext

import (
	"regexp"
	"strings"
)

// skipPatterns mark informational or promotional traffic. Any hit rejects the
// message even when transaction words are also present.
var skipPatterns = []*regexp.Regexp{
	// OTP and verification.
	regexp.MustCompile(`\botp\b`),
	regexp.MustCompile(`one[\s-]time[\s-]password`),
	regexp.MustCompile(`verification code`),
	regexp.MustCompile(`\bsecurity code\b`),
	// Offers and promotions.
	regexp.MustCompile(`\boffers?\b`),
	regexp.MustCompile(`pre-?approved`),
	regexp.MustCompile(`\bcongratulations\b`),
	regexp.MustCompile(`\bapply now\b`),
	regexp.MustCompile(`\blimited period\b`),
	regexp.MustCompile(`\bvoucher\b`),
	// Bill and payment reminders.
	regexp.MustCompile(`\bis due\b`),
	regexp.MustCompile(`\bdue (?:on|by|date)\b`),
	regexp.MustCompile(`\b(?:minimum|total) amount due\b`),
	regexp.MustCompile(`\bpayment reminder\b`),
	// Pending mandates.
	regexp.MustCompile(`\bmandate\b.*\b(?:created|registered|set up|setup)\b`),
	regexp.MustCompile(`\b(?:create|register)\w* (?:a |an |the )?(?:e-?)?mandate\b`),
	// Future-tense notices.
	regexp.MustCompile(`\bwill be (?:debited|deducted|charged)\b`),
	// Failures.
	regexp.MustCompile(`\b(?:failed|declined|unsuccessful)\b`),
	regexp.MustCompile(`could not be (?:processed|completed)`),
}

// transactionKeywords must appear at least once for a message to count as a
// money movement.
var transactionKeywords = regexp.MustCompile(`\b(?:debited|credited|withdrawn|deposited|spent|received|transferred|paid|sent|deducted|txn|paid thru|has been (?:debited|credited)|a (?:debit|credit) by)\b`)

// LooksTransactional reports whether body describes an actual money movement
// rather than an OTP, promotion, reminder or failure notice.
func LooksTransactional(body string) bool {
	lower := strings.ToLower(body)
	for _, p := range skipPatterns {
		if p.MatchString(lower) {
			return false
		}
	}
	return transactionKeywords.MatchString(lower)
}
