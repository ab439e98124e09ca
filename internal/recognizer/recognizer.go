// Package recognizer holds one Recognizer per supported bank and the ordered
// Directory used to pick the recognizer for a sender.
package recognizer

import (
	"regexp"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/cleared-dev/banksms/internal/model"
	"github.com/cleared-dev/banksms/internal/smstext"
)

// Outcome explains why Parse did or did not produce a transaction.
type Outcome string

const (
	OutcomeParsed           Outcome = "parsed"
	OutcomeNotTransactional Outcome = "not_transactional"
	OutcomeNoAmount         Outcome = "no_amount"
	OutcomeNoDirection      Outcome = "no_direction"
)

// Recognizer bundles a bank's sender matching data with its field
// extractors. Nil extractors fall back to the generic smstext rules.
type Recognizer struct {
	Institution model.Institution

	// SenderTokens are upper-case literals looked for anywhere in the sender.
	SenderTokens []string
	// SenderRoutes match carrier route variants such as "AX-HDFCBK-S".
	SenderRoutes []*regexp.Regexp

	// AmountPatterns are tried in order before the generic patterns.
	AmountPatterns []*regexp.Regexp

	// Direction returns DirectionUnknown to defer to the generic policy.
	Direction    func(body string) model.Direction
	Account      func(body string) string
	Counterparty func(body string, dir model.Direction) string
	Reference    func(body string) string
	Balance      func(body string) *decimal.Decimal
}

// ClaimsSender reports whether sender belongs to this bank.
func (r *Recognizer) ClaimsSender(sender string) bool {
	s := strings.ToUpper(strings.TrimSpace(sender))
	if s == "" {
		return false
	}
	for _, tok := range r.SenderTokens {
		if strings.Contains(s, tok) {
			return true
		}
	}
	for _, route := range r.SenderRoutes {
		if route.MatchString(s) {
			return true
		}
	}
	return false
}

// Parse runs the extraction pipeline. A nil transaction is always paired
// with the Outcome that stopped the pipeline.
func (r *Recognizer) Parse(sender, body string, at time.Time) (*model.ParsedTransaction, Outcome) {
	if !smstext.LooksTransactional(body) {
		return nil, OutcomeNotTransactional
	}

	amount, ok := smstext.ExtractAmount(body, r.AmountPatterns...)
	if !ok {
		amount, ok = smstext.ExtractAmount(body, smstext.GenericAmountPatterns...)
	}
	if !ok || !amount.IsPositive() {
		return nil, OutcomeNoAmount
	}

	dir := r.direction(body)
	if dir == model.DirectionUnknown {
		return nil, OutcomeNoDirection
	}

	return &model.ParsedTransaction{
		Institution:      r.Institution,
		Amount:           amount,
		AccountSuffix:    r.account(body),
		Direction:        dir,
		IsDebit:          dir.IsDebit(),
		Counterparty:     r.counterparty(body, dir),
		ReferenceID:      r.reference(body),
		AvailableBalance: r.balance(body),
		RawBody:          body,
		ContentHash:      smstext.ComputeHash(body),
		Sender:           sender,
		OccurredAt:       at,
	}, OutcomeParsed
}

func (r *Recognizer) direction(body string) model.Direction {
	if smstext.IsPromoCashback(body) {
		return model.DirectionUnknown
	}
	if r.Direction != nil {
		if dir := r.Direction(body); dir != model.DirectionUnknown {
			return dir
		}
	}
	return smstext.ClassifyDirection(body)
}

func (r *Recognizer) account(body string) string {
	if r.Account != nil {
		return r.Account(body)
	}
	return smstext.AccountSuffix(body)
}

func (r *Recognizer) counterparty(body string, dir model.Direction) string {
	if r.Counterparty != nil {
		return r.Counterparty(body, dir)
	}
	return labeler(genericPayees, genericPayers)(body, dir)
}

func (r *Recognizer) reference(body string) string {
	if r.Reference != nil {
		return r.Reference(body)
	}
	return smstext.Reference(body)
}

func (r *Recognizer) balance(body string) *decimal.Decimal {
	if r.Balance != nil {
		return r.Balance(body)
	}
	return smstext.Balance(body)
}
