package processor

import (
	"context"
	"errors"
	"fmt"

	"github.com/goodnatureofminers/glyphindexer/internal/glyph/model"
	"github.com/goodnatureofminers/glyphindexer/internal/glyph/radiant"
	"go.uber.org/zap"
)

func (p *Processor) storeHeader(ctx context.Context, block model.Block, logger *zap.Logger) error {
	existing, err := p.store.BlockHeaderByHash(ctx, block.Hash)
	if err == nil {
		if !existing.Reorg {
			logger.Debug("block header already stored")
			return nil
		}
		if err = p.store.RestoreBlockHeader(ctx, block.Hash, block.Height); err != nil {
			return err
		}
		logger.Info("reorged block header is canonical again")
		return nil
	}
	if !errors.Is(err, model.ErrNotFound) {
		return err
	}

	raw, err := p.chain.GetBlockRaw(ctx, block.Hash)
	if err != nil {
		return fmt.Errorf("fetch raw block: %w", err)
	}
	buf, err := radiant.HeaderBytes(raw)
	if err != nil {
		return err
	}

	if _, err = p.store.InsertBlockHeader(ctx, model.BlockHeader{
		Hash:      block.Hash,
		Height:    block.Height,
		Timestamp: block.Time,
		Buffer:    buf,
	}); err != nil {
		return err
	}
	logger.Debug("stored block header")
	return nil
}
