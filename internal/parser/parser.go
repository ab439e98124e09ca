// Package parser is the single entry point for turning a bank SMS into a
// ParsedTransaction.
package parser

import (
	"io"
	"time"

	"github.com/charmbracelet/log"
	"github.com/patrickmn/go-cache"

	"github.com/cleared-dev/banksms/internal/model"
	"github.com/cleared-dev/banksms/internal/recognizer"
)

// Parser dispatches messages to the recognizer that claims their sender.
// It is safe for concurrent use.
type Parser struct {
	directory *recognizer.Directory
	logger    *log.Logger
	now       func() time.Time
	senders   *cache.Cache // sender -> *recognizer.Recognizer, nil when unclaimed
}

// Option configures a Parser.
type Option func(*Parser)

// WithClock overrides the clock used when a message has no timestamp.
func WithClock(now func() time.Time) Option {
	return func(p *Parser) {
		p.now = now
	}
}

// New creates a Parser. A nil directory uses the built-in banks and a nil
// logger discards diagnostics. The directory must not be modified afterwards.
func New(directory *recognizer.Directory, logger *log.Logger, opts ...Option) *Parser {
	if directory == nil {
		directory = recognizer.DefaultDirectory()
	}
	if logger == nil {
		logger = log.New(io.Discard)
	}
	p := &Parser{
		directory: directory,
		logger:    logger,
		now:       time.Now,
		senders:   cache.New(cache.NoExpiration, 0),
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// ParseMessage returns the transaction described by body, or nil when the
// sender is unknown or the message is not a money movement. A zero
// timestampMillis means "now".
func (p *Parser) ParseMessage(sender, body string, timestampMillis int64) *model.ParsedTransaction {
	r := p.recognizerFor(sender)
	if r == nil {
		p.logger.Debug("unrecognized sender", "sender", sender)
		return nil
	}

	txn, outcome := r.Parse(sender, body, p.occurredAt(timestampMillis))
	if txn == nil {
		p.logger.Debug("message skipped", "sender", sender, "institution", r.Institution, "outcome", outcome)
		return nil
	}

	p.logger.Debug("parsed transaction",
		"institution", txn.Institution,
		"amount", txn.Amount.StringFixed(2),
		"direction", txn.Direction,
		"hash", txn.ContentHash,
	)
	return txn
}

// Parse is ParseMessage for a model.Message.
func (p *Parser) Parse(msg model.Message) *model.ParsedTransaction {
	return p.ParseMessage(msg.Sender, msg.Body, msg.TimestampMillis)
}

// recognizerFor memoizes directory lookups per sender.
func (p *Parser) recognizerFor(sender string) *recognizer.Recognizer {
	if v, ok := p.senders.Get(sender); ok {
		return v.(*recognizer.Recognizer)
	}
	r := p.directory.Find(sender)
	p.senders.Set(sender, r, cache.NoExpiration)
	return r
}

func (p *Parser) occurredAt(timestampMillis int64) time.Time {
	if timestampMillis == 0 {
		return p.now()
	}
	return time.UnixMilli(timestampMillis)
}
