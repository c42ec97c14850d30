package processor

import (
	"context"
	"errors"

	"github.com/goodnatureofminers/glyphindexer/internal/glyph/model"
	"github.com/goodnatureofminers/glyphindexer/internal/glyph/script"
	"go.uber.org/zap"
)

// markInputsSpent flips consumed TxOs to spent and melts glyphs whose current
// outpoint is consumed without the output at the same index re-asserting a
// singleton ref.
func (p *Processor) markInputsSpent(ctx context.Context, tx model.Transaction, logger *zap.Logger) error {
	for _, in := range tx.Inputs {
		if in.Coinbase {
			continue
		}

		spent, err := p.store.MarkTxOSpent(ctx, in.PrevTxID, in.PrevVout)
		if err != nil {
			return err
		}
		if spent {
			logger.Debug("marked txo spent", zap.String("prevTxid", in.PrevTxID), zap.Uint32("prevVout", in.PrevVout))
		}

		prev := outpointString(in.PrevTxID, in.PrevVout)
		g, err := p.store.GlyphByRevealOutpoint(ctx, prev)
		if err != nil {
			if errors.Is(err, model.ErrNotFound) {
				continue
			}
			return err
		}
		if g.Spent == 1 {
			continue
		}

		if in.Index < len(tx.Outputs) {
			next := tx.Outputs[in.Index]
			if script.HasSingletonRef(next.ScriptAsm, next.ScriptHex) {
				logger.Debug("glyph carried forward", zap.String("ref", g.Ref))
				continue
			}
		}

		melted, err := p.store.MarkGlyphSpent(ctx, g.Ref)
		if err != nil {
			return err
		}
		if melted {
			p.metrics.IncGlyphEvent(eventMelted)
			logger.Info("glyph melted", zap.String("ref", g.Ref), zap.String("outpoint", prev))
		}
	}
	return nil
}
