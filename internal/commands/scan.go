package commands

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/cleared-dev/banksms/internal/dedup"
	"github.com/cleared-dev/banksms/internal/export"
	"github.com/cleared-dev/banksms/internal/inbox"
	"github.com/cleared-dev/banksms/internal/parser"
	"github.com/cleared-dev/banksms/internal/runlog"
	"github.com/cleared-dev/banksms/internal/scan"
)

type scanOptions struct {
	output        string
	stateFile     string
	noState       bool
	workers       int
	includeIncome bool
}

func newScanCommand(opts *globalOptions) *cobra.Command {
	so := &scanOptions{}

	cmd := &cobra.Command{
		Use:   "scan <inbox>",
		Short: "Parse an inbox export and write new transactions as CSV",
		Long: `Parse every message in a CSV (sender,body,timestamp) or JSON inbox
export. Transactions already seen in a previous scan are skipped using
the content hashes kept in the state file. Each run is recorded in the
scan history (see "banksms history").`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runScan(cmd, opts, so, args[0])
		},
	}

	cmd.Flags().StringVarP(&so.output, "output", "o", "", "CSV output file (default stdout)")
	cmd.Flags().StringVar(&so.stateFile, "state", "", "seen-hash state file (overrides config)")
	cmd.Flags().BoolVar(&so.noState, "no-state", false, "do not read or write the state and history files")
	cmd.Flags().IntVar(&so.workers, "workers", 0, "parallel parsers (overrides config)")
	cmd.Flags().BoolVar(&so.includeIncome, "include-income", false, "also export incoming transactions")

	return cmd
}

func runScan(cmd *cobra.Command, opts *globalOptions, so *scanOptions, inboxPath string) error {
	cfg, err := opts.loadConfig(cmd)
	if err != nil {
		return err
	}
	logger, err := opts.logger(cmd.ErrOrStderr(), cfg)
	if err != nil {
		return err
	}

	msgs, err := inbox.Load(inboxPath)
	if err != nil {
		return err
	}

	stateFile := cfg.Scan.StateFile
	if so.stateFile != "" {
		stateFile = so.stateFile
	}
	var store *dedup.Store
	if !so.noState {
		store, err = dedup.Load(stateFile)
		if err != nil {
			return err
		}
	}

	workers := cfg.Scan.Workers
	if so.workers > 0 {
		workers = so.workers
	}

	scanner := scan.New(parser.New(nil, logger), store, workers, logger)
	res, err := scanner.Run(cmd.Context(), msgs)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	if so.output != "" {
		f, err := os.Create(so.output)
		if err != nil {
			return fmt.Errorf("creating %s: %w", so.output, err)
		}
		defer f.Close()
		out = f
	}

	rows, err := writeExport(out, res, cfg.Export.Rules(), cfg.Export.CategoryAliases, export.Options{
		IncludeIncome: so.includeIncome || cfg.Export.IncludeIncome,
		DateFormat:    cfg.Export.DateFormat,
	})
	if err != nil {
		return err
	}

	if store != nil {
		if err := store.Save(stateFile); err != nil {
			return err
		}
		entry := runlog.Entry{
			Timestamp:  time.Now().UTC().Truncate(time.Second),
			RunID:      res.RunID,
			Inbox:      inboxPath,
			Total:      res.Total,
			New:        len(res.Transactions),
			Skipped:    res.Skipped,
			Duplicates: res.Duplicates,
			Exported:   rows,
		}
		if err := runlog.Append(cfg.Scan.HistoryFile, entry); err != nil {
			return err
		}
	}

	if rows == 0 {
		logger.Warn("no transactions to export", "inbox", inboxPath)
	}
	logger.Info("export written",
		"rows", rows,
		"new", len(res.Transactions),
		"skipped", res.Skipped,
		"duplicates", res.Duplicates,
	)
	return nil
}

func writeExport(w io.Writer, res *scan.Result, rules []export.Rule, aliases map[string]string, opts export.Options) (int, error) {
	opts.Categorizer = export.NewCategorizer(rules, aliases)
	n, err := export.WriteCSV(w, res.Transactions, opts)
	if err != nil {
		return n, fmt.Errorf("writing export: %w", err)
	}
	return n, nil
}
