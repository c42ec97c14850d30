// Package processor applies blocks to the glyph store: it persists
// recognized outputs, reconciles glyphs revealed or moved by them and marks
// consumed outputs spent.
package processor

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/btcsuite/btcd/chaincfg"
	"github.com/goodnatureofminers/glyphindexer/internal/glyph/model"
	"go.uber.org/zap"
)

// ErrMissingInput is returned when a transaction carrying a glyph output has
// no spendable first input to derive the glyph ref from.
var ErrMissingInput = errors.New("reveal transaction has no first input")

// Glyph lifecycle events reported to metrics.
const (
	eventCreated     = "created"
	eventUpdated     = "updated"
	eventTransferred = "transferred"
	eventMelted      = "melted"
)

// Config tunes which outputs are persisted.
type Config struct {
	Params *chaincfg.Params
	// IndexRXD persists plain P2PKH outputs as RXD TxOs.
	IndexRXD bool
}

// Processor applies blocks strictly in order. It is not safe for concurrent use.
type Processor struct {
	chain    Chain
	store    Store
	stats    StatsRefresher
	metrics  Metrics
	params   *chaincfg.Params
	indexRXD bool
	logger   *zap.Logger
}

// New builds a Processor. stats may be nil to skip the roll-up.
func New(chain Chain, store Store, stats StatsRefresher, metrics Metrics, cfg Config, logger *zap.Logger) (*Processor, error) {
	if chain == nil {
		return nil, errors.New("processor chain client is required")
	}
	if store == nil {
		return nil, errors.New("processor store is required")
	}
	if metrics == nil {
		return nil, errors.New("processor metrics is required")
	}
	params := cfg.Params
	if params == nil {
		params = &chaincfg.MainNetParams
	}
	return &Processor{
		chain:    chain,
		store:    store,
		stats:    stats,
		metrics:  metrics,
		params:   params,
		indexRXD: cfg.IndexRXD,
		logger:   logger.Named("processor"),
	}, nil
}

// ProcessBlock stores the header on first sight and applies every
// transaction in order. Re-running a fully applied block changes nothing.
// Any failure aborts the block.
func (p *Processor) ProcessBlock(ctx context.Context, block model.Block) (err error) {
	started := time.Now()
	defer func() {
		p.metrics.ObserveBlock(err, started)
	}()

	logger := p.logger.With(zap.Int64("height", block.Height), zap.String("hash", block.Hash))
	logger.Debug("processing block", zap.Int("transactions", len(block.Transactions)))

	if err = p.storeHeader(ctx, block, logger); err != nil {
		logger.Error("store block header failed", zap.Error(err))
		return fmt.Errorf("block %d: %w", block.Height, err)
	}

	for _, tx := range block.Transactions {
		txLogger := logger.With(zap.String("txid", tx.TxID))
		if err = p.processTransaction(ctx, block, tx, txLogger); err != nil {
			txLogger.Error("transaction processing failed", zap.Error(err))
			return fmt.Errorf("block %d tx %s: %w", block.Height, tx.TxID, err)
		}
	}

	if p.stats != nil {
		if _, statsErr := p.stats.Refresh(ctx); statsErr != nil {
			logger.Warn("stats refresh failed", zap.Error(statsErr))
		}
	}

	logger.Info("block processed", zap.Duration("took", time.Since(started)))
	return nil
}

// processTransaction applies outputs in array order and then the inputs, so
// a glyph moved by this transaction is re-pointed before its previous
// outpoint is checked for a melt.
func (p *Processor) processTransaction(ctx context.Context, block model.Block, tx model.Transaction, logger *zap.Logger) error {
	for _, out := range tx.Outputs {
		if err := p.processOutput(ctx, block, tx, out, logger); err != nil {
			return fmt.Errorf("output %d: %w", out.N, err)
		}
	}
	if err := p.markInputsSpent(ctx, tx, logger); err != nil {
		return fmt.Errorf("mark inputs spent: %w", err)
	}
	return nil
}
