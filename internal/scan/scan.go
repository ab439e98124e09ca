// Package scan parses a batch of inbox messages in parallel and drops
// messages whose content hash was already recorded.
package scan

import (
	"context"
	"fmt"
	"io"
	"runtime"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"github.com/cleared-dev/banksms/internal/dedup"
	"github.com/cleared-dev/banksms/internal/model"
	"github.com/cleared-dev/banksms/internal/parser"
)

// Result summarizes one scan.
type Result struct {
	RunID        string
	Transactions []*model.ParsedTransaction // new transactions, in inbox order
	Total        int
	Skipped      int // not a recognized transaction
	Duplicates   int
}

// Scanner runs the parser over many messages.
type Scanner struct {
	parser  *parser.Parser
	store   *dedup.Store
	workers int
	logger  *log.Logger
}

// New creates a Scanner. A nil store deduplicates within each run only;
// workers <= 0 uses GOMAXPROCS.
func New(p *parser.Parser, store *dedup.Store, workers int, logger *log.Logger) *Scanner {
	if workers <= 0 {
		workers = runtime.GOMAXPROCS(0)
	}
	if logger == nil {
		logger = log.New(io.Discard)
	}
	return &Scanner{parser: p, store: store, workers: workers, logger: logger}
}

// Run parses msgs and records the hashes of new transactions in the store.
// Output order follows input order regardless of worker scheduling.
func (s *Scanner) Run(ctx context.Context, msgs []model.Message) (*Result, error) {
	res := &Result{RunID: uuid.NewString(), Total: len(msgs)}
	logger := s.logger.With("run", res.RunID)
	logger.Info("scan started", "messages", len(msgs), "workers", s.workers)

	parsed := make([]*model.ParsedTransaction, len(msgs))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(s.workers)
	for i, msg := range msgs {
		i, msg := i, msg
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			parsed[i] = s.parser.Parse(msg)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, fmt.Errorf("scanning inbox: %w", err)
	}

	store := s.store
	if store == nil {
		store = dedup.NewStore()
	}
	for _, txn := range parsed {
		switch {
		case txn == nil:
			res.Skipped++
		case !store.Add(txn.ContentHash):
			res.Duplicates++
			logger.Debug("duplicate message", "hash", txn.ContentHash)
		default:
			res.Transactions = append(res.Transactions, txn)
		}
	}

	logger.Info("scan finished",
		"new", len(res.Transactions),
		"skipped", res.Skipped,
		"duplicates", res.Duplicates,
	)
	return res, nil
}
