package export

import (
	"strings"

	"github.com/cleared-dev/banksms/internal/model"
)

// Fallback categories.
const (
	CategoryOthers = "Others"
	CategoryIncome = "Income"
)

// Rule assigns Category when Keyword appears in the counterparty or body.
type Rule struct {
	Keyword  string
	Category string
}

// DefaultAliases renames legacy category names to their display form.
func DefaultAliases() map[string]string {
	return map[string]string{
		"grooming":  "Personal Care",
		"misc":      "Others",
		"household": "Family",
		"bills":     "Bills & Utilities",
		"dinning":   "Food & Dinning",
		"emi":       "EMI & Loans",
	}
}

// Categorizer picks a category for a transaction from keyword rules.
type Categorizer struct {
	rules   []Rule
	aliases map[string]string
}

// NewCategorizer creates a Categorizer. Rules are matched in order; alias
// keys are compared case-insensitively.
func NewCategorizer(rules []Rule, aliases map[string]string) *Categorizer {
	normalized := make(map[string]string, len(aliases))
	for k, v := range aliases {
		normalized[strings.ToLower(k)] = v
	}
	return &Categorizer{rules: rules, aliases: normalized}
}

// Categorize returns the display category for txn.
func (c *Categorizer) Categorize(txn *model.ParsedTransaction) string {
	if !txn.IsDebit {
		return CategoryIncome
	}
	text := strings.ToLower(txn.Counterparty + " " + txn.RawBody)
	for _, r := range c.rules {
		if r.Keyword != "" && strings.Contains(text, strings.ToLower(r.Keyword)) {
			return c.rename(r.Category)
		}
	}
	return CategoryOthers
}

func (c *Categorizer) rename(category string) string {
	if alias, ok := c.aliases[strings.ToLower(category)]; ok {
		return alias
	}
	return category
}
