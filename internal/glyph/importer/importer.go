// Package importer drives block import: it holds the import lease, walks the
// chain from the last committed height and records progress per block.
package importer

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/goodnatureofminers/glyphindexer/internal/glyph/model"
	"go.uber.org/multierr"
	"go.uber.org/zap"
)

// ErrAlreadyImporting is returned when the import lease is held elsewhere.
var ErrAlreadyImporting = errors.New("import is already running")

// Config selects the network and batch size.
type Config struct {
	Network   model.Network
	BatchSize int
}

// Result summarizes one batch.
type Result struct {
	NoNewBlocks bool  `json:"noNewBlocks"`
	Processed   int   `json:"processed"`
	LastHeight  int64 `json:"lastHeight"`
	ChainHeight int64 `json:"chainHeight"`
	Reorg       bool  `json:"reorg"`
}

// Synced reports whether the committed height is within one block of the tip.
func (r Result) Synced() bool {
	return r.LastHeight >= r.ChainHeight-1
}

// ResetOptions describes an operator reset. Height rewinds progress; Hash is
// stored with it and defaults to the zero hash. ClearFlag releases a stuck
// import lease.
type ResetOptions struct {
	Height    *int64
	Hash      string
	ClearFlag bool
}

// Importer imports blocks in batches.
type Importer struct {
	chain     Chain
	processor BlockProcessor
	store     StateStore
	metrics   Metrics
	genesis   int64
	batchSize int
	logger    *zap.Logger
}

// New builds an Importer.
func New(chain Chain, processor BlockProcessor, store StateStore, metrics Metrics, cfg Config, logger *zap.Logger) (*Importer, error) {
	if err := cfg.Network.Validate(); err != nil {
		return nil, err
	}
	if chain == nil || processor == nil || store == nil {
		return nil, errors.New("importer chain, processor and store are required")
	}
	if metrics == nil {
		return nil, errors.New("importer metrics is required")
	}
	batchSize := cfg.BatchSize
	if batchSize <= 0 {
		batchSize = DefaultBatchSize
	}
	return &Importer{
		chain:     chain,
		processor: processor,
		store:     store,
		metrics:   metrics,
		genesis:   cfg.Network.GenesisHeight(),
		batchSize: batchSize,
		logger:    logger.Named("importer").With(zap.String("network", string(cfg.Network))),
	}, nil
}

// WithBatchSize returns a copy of the importer using n blocks per batch.
func (i *Importer) WithBatchSize(n int) *Importer {
	cp := *i
	if n > 0 {
		cp.batchSize = n
	}
	return &cp
}

// State returns the persisted import state.
func (i *Importer) State(ctx context.Context) (model.ImportState, error) {
	return i.store.ImportState(ctx, i.genesis)
}

// ImportBatch imports up to one batch of blocks past the last committed
// height. The lease is released on every path. A block, once started, is
// processed to completion; cancellation is observed between blocks.
func (i *Importer) ImportBatch(ctx context.Context) (Result, error) {
	started := time.Now()
	if err := i.AcquireLease(ctx); err != nil {
		i.metrics.ObserveBatch(err, 0, started)
		return Result{}, err
	}
	return i.importLeased(ctx, started)
}

// AcquireLease takes the persisted import lease. It returns
// ErrAlreadyImporting when another run holds it.
func (i *Importer) AcquireLease(ctx context.Context) error {
	acquired, err := i.store.AcquireImportLease(ctx, i.genesis)
	if err != nil {
		return fmt.Errorf("acquire import lease: %w", err)
	}
	if !acquired {
		return ErrAlreadyImporting
	}
	return nil
}

// ReleaseLease gives the persisted import lease back.
func (i *Importer) ReleaseLease(ctx context.Context) error {
	if err := i.store.ReleaseImportLease(ctx); err != nil {
		return fmt.Errorf("release import lease: %w", err)
	}
	return nil
}

// ImportLeased imports one batch under a lease already taken with
// AcquireLease, and releases it on every path.
func (i *Importer) ImportLeased(ctx context.Context) (Result, error) {
	return i.importLeased(ctx, time.Now())
}

func (i *Importer) importLeased(ctx context.Context, started time.Time) (res Result, err error) {
	defer func() {
		i.metrics.ObserveBatch(err, res.Processed, started)
	}()
	defer func() {
		releaseCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), releaseTimeout)
		defer cancel()
		if releaseErr := i.ReleaseLease(releaseCtx); releaseErr != nil {
			i.logger.Error("release import lease failed", zap.Error(releaseErr))
			err = multierr.Append(err, releaseErr)
		}
	}()

	res, err = i.importBlocks(ctx)
	if err != nil {
		i.logger.Error("import batch failed", zap.Error(err), zap.Int64("lastHeight", res.LastHeight))
	}
	return res, err
}

func (i *Importer) importBlocks(ctx context.Context) (Result, error) {
	var res Result

	state, err := i.store.ImportState(ctx, i.genesis)
	if err != nil {
		return res, fmt.Errorf("load import state: %w", err)
	}
	res.LastHeight = state.LastBlockHeight

	chainHeight, err := i.chain.GetBlockCount(ctx)
	if err != nil {
		return res, fmt.Errorf("get block count: %w", err)
	}
	res.ChainHeight = chainHeight
	i.metrics.SetHeights(res.LastHeight, chainHeight)

	if state.LastBlockHeight >= chainHeight {
		res.NoNewBlocks = true
		i.logger.Info("no new blocks to import",
			zap.Int64("lastHeight", state.LastBlockHeight),
			zap.Int64("chainHeight", chainHeight),
		)
		return res, nil
	}

	from := state.LastBlockHeight + 1
	to := min(state.LastBlockHeight+int64(i.batchSize), chainHeight)
	i.logger.Info("importing blocks", zap.Int64("from", from), zap.Int64("to", to), zap.Int64("chainHeight", chainHeight))

	prevHash := state.LastBlockHash
	for height := from; height <= to; height++ {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return res, ctxErr
		}

		hash, err := i.chain.GetBlockHash(ctx, height)
		if err != nil {
			return res, fmt.Errorf("get block hash %d: %w", height, err)
		}
		block, err := i.chain.GetBlockVerbose(ctx, hash)
		if err != nil {
			return res, fmt.Errorf("get block %d: %w", height, err)
		}

		if knownHash(prevHash) && block.PreviousHash != prevHash {
			res.Reorg = true
			rewound, err := i.rewind(ctx, height-1, prevHash, block.PreviousHash)
			if err != nil {
				return res, err
			}
			res.LastHeight = rewound
			return res, nil
		}

		// The write path is not interrupted mid-block.
		writeCtx := context.WithoutCancel(ctx)
		if err = i.processor.ProcessBlock(writeCtx, block); err != nil {
			return res, fmt.Errorf("process block %d: %w", height, err)
		}
		if err = i.store.SaveImportProgress(writeCtx, height, block.Hash); err != nil {
			return res, fmt.Errorf("save import progress %d: %w", height, err)
		}

		res.Processed++
		res.LastHeight = height
		prevHash = block.Hash
		i.metrics.SetHeights(height, chainHeight)
		i.logger.Info("imported block", zap.Int64("height", height), zap.Int64("to", to), zap.String("hash", block.Hash))
	}

	i.logger.Info("import batch completed", zap.Int64("from", from), zap.Int64("to", to), zap.Int("processed", res.Processed))
	return res, nil
}

// rewind handles a block whose parent is not the last committed block: the
// committed block at orphan is superseded, so progress moves back one block
// and the next batch re-checks against the stored parent.
func (i *Importer) rewind(ctx context.Context, orphan int64, committed, parent string) (int64, error) {
	target := max(orphan-1, 0)

	flagged, err := i.store.MarkReorg(ctx, target)
	if err != nil {
		return orphan, fmt.Errorf("mark reorg above %d: %w", target, err)
	}

	hash := model.ZeroHash
	header, err := i.store.CanonicalBlockHeader(ctx, target)
	switch {
	case err == nil:
		hash = header.Hash
	case !errors.Is(err, model.ErrNotFound):
		return orphan, fmt.Errorf("load block header %d: %w", target, err)
	}

	if err = i.store.SaveImportProgress(ctx, target, hash); err != nil {
		return orphan, fmt.Errorf("rewind import progress to %d: %w", target, err)
	}
	i.logger.Warn("chain reorganization detected, rewinding",
		zap.Int64("orphanHeight", orphan),
		zap.String("committedHash", committed),
		zap.String("parentHash", parent),
		zap.Int64("rewoundTo", target),
		zap.Int64("headersFlagged", flagged),
	)
	return target, nil
}

// Reset applies an operator reset and returns the resulting state.
func (i *Importer) Reset(ctx context.Context, opts ResetOptions) (model.ImportState, error) {
	if opts.ClearFlag {
		if err := i.store.ReleaseImportLease(ctx); err != nil {
			return model.ImportState{}, fmt.Errorf("reset import flag: %w", err)
		}
		i.logger.Info("import flag reset to false")
	}

	if opts.Height != nil {
		height := *opts.Height
		if height < 0 {
			return model.ImportState{}, fmt.Errorf("reset height %d is negative", height)
		}
		hash := strings.TrimSpace(opts.Hash)
		if hash == "" {
			hash = model.ZeroHash
		}
		if err := i.store.SaveImportProgress(ctx, height, hash); err != nil {
			return model.ImportState{}, fmt.Errorf("reset import progress: %w", err)
		}
		i.logger.Info("import progress reset", zap.Int64("height", height), zap.String("hash", hash))
	}

	return i.store.ImportState(ctx, i.genesis)
}

func knownHash(h string) bool {
	h = strings.TrimSpace(h)
	return h != "" && h != model.ZeroHash
}
