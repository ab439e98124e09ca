// Package export writes parsed transactions as an expense sheet CSV.
package export

import (
	"encoding/csv"
	"fmt"
	"io"
	"strings"

	"github.com/cleared-dev/banksms/internal/model"
)

// Header is the CSV header of the expense sheet.
const Header = "Account,Category,Amount,Date,Description"

const (
	numFields     = 5
	colAccount    = 0
	colCategory   = 1
	colAmount     = 2
	colDate       = 3
	colDesc       = 4
	defaultLayout = "2006-01-02"
)

// Options controls which rows are written and how.
type Options struct {
	IncludeIncome bool
	DateFormat    string // Go time layout, defaults to 2006-01-02
	Categorizer   *Categorizer
}

// WriteCSV writes the header and one row per exported transaction. Income is
// skipped unless IncludeIncome is set. Returns the number of rows written.
func WriteCSV(w io.Writer, txns []*model.ParsedTransaction, opts Options) (int, error) {
	cw := csv.NewWriter(w)

	if err := cw.Write(strings.Split(Header, ",")); err != nil {
		return 0, fmt.Errorf("writing header: %w", err)
	}

	n := 0
	for _, txn := range txns {
		if !txn.IsDebit && !opts.IncludeIncome {
			continue
		}
		if err := cw.Write(MarshalRow(txn, opts)); err != nil {
			return n, fmt.Errorf("writing row %d: %w", n+2, err)
		}
		n++
	}
	cw.Flush()
	return n, cw.Error()
}

// MarshalRow converts a transaction to a CSV row.
func MarshalRow(txn *model.ParsedTransaction, opts Options) []string {
	layout := opts.DateFormat
	if layout == "" {
		layout = defaultLayout
	}
	categorizer := opts.Categorizer
	if categorizer == nil {
		categorizer = NewCategorizer(nil, DefaultAliases())
	}

	row := make([]string, numFields)
	row[colAccount] = AccountLabel(txn)
	row[colCategory] = categorizer.Categorize(txn)
	row[colAmount] = txn.Amount.StringFixed(2)
	row[colDate] = txn.OccurredAt.Format(layout)
	row[colDesc] = txn.Description()
	return row
}

// AccountLabel names the funding account, e.g. "HDFC Bank XX1234".
func AccountLabel(txn *model.ParsedTransaction) string {
	name := txn.Institution.DisplayName()
	if txn.AccountSuffix == "" {
		return name
	}
	return name + " XX" + txn.AccountSuffix
}
