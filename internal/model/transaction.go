package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// Institution identifies the bank that sent a message.
type Institution string

const (
	InstitutionUnknown  Institution = "unknown"
	InstitutionHDFC     Institution = "hdfc"
	InstitutionICICI    Institution = "icici"
	InstitutionSBI      Institution = "sbi"
	InstitutionSaraswat Institution = "saraswat"
	InstitutionIndian   Institution = "indian_bank"
	InstitutionUnion    Institution = "union_bank"
)

var institutionNames = map[Institution]string{
	InstitutionHDFC:     "HDFC Bank",
	InstitutionICICI:    "ICICI Bank",
	InstitutionSBI:      "State Bank of India",
	InstitutionSaraswat: "Saraswat Co-operative Bank",
	InstitutionIndian:   "Indian Bank",
	InstitutionUnion:    "Union Bank of India",
}

// DisplayName returns the human-readable bank name.
func (i Institution) DisplayName() string {
	if name, ok := institutionNames[i]; ok {
		return name
	}
	return "Unknown"
}

// Direction classifies the money movement in a message.
type Direction string

const (
	DirectionUnknown         Direction = "unknown"
	DirectionExpense         Direction = "expense"
	DirectionIncome          Direction = "income"
	DirectionCreditCardSpend Direction = "credit_card_spend" // debit against a credit line, not a bank balance
)

// IsDebit reports whether the direction takes money out.
func (d Direction) IsDebit() bool {
	return d == DirectionExpense || d == DirectionCreditCardSpend
}

// Message is one inbound SMS as delivered by the device inbox.
type Message struct {
	Sender          string `json:"sender" yaml:"sender"`
	Body            string `json:"body" yaml:"body"`
	TimestampMillis int64  `json:"timestamp" yaml:"timestamp"` // 0 = unknown, parse time is used
}

// ParsedTransaction is the structured result of a successful parse.
// Optional fields are empty strings or nil.
type ParsedTransaction struct {
	Institution      Institution      `yaml:"institution"`
	Amount           decimal.Decimal  `yaml:"amount"`
	AccountSuffix    string           `yaml:"account_suffix,omitempty"`
	Direction        Direction        `yaml:"direction"`
	IsDebit          bool             `yaml:"is_debit"`
	Counterparty     string           `yaml:"counterparty,omitempty"`
	ReferenceID      string           `yaml:"reference_id,omitempty"`
	AvailableBalance *decimal.Decimal `yaml:"available_balance,omitempty"`
	RawBody          string           `yaml:"raw_body"`
	ContentHash      string           `yaml:"content_hash"`
	Sender           string           `yaml:"sender"`
	OccurredAt       time.Time        `yaml:"occurred_at"`
}

// Description returns the counterparty, falling back to the raw body.
func (t *ParsedTransaction) Description() string {
	if t.Counterparty != "" {
		return t.Counterparty
	}
	return t.RawBody
}
