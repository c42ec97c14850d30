package processor

import (
	"context"
	"errors"
	"fmt"

	"github.com/goodnatureofminers/glyphindexer/internal/glyph/model"
	"github.com/goodnatureofminers/glyphindexer/internal/glyph/outpoint"
	"github.com/goodnatureofminers/glyphindexer/internal/glyph/payload"
	"github.com/goodnatureofminers/glyphindexer/internal/glyph/script"
	"go.uber.org/zap"
)

// reconcileGlyph creates or updates the glyph revealed by out. The glyph ref
// is the outpoint (first input prev txid, out.N); the reveal is the input
// spending exactly that outpoint. replay marks an output whose TxO was
// already stored; a glyph that has since moved to a later block is left alone.
func (p *Processor) reconcileGlyph(
	ctx context.Context,
	block model.Block,
	tx model.Transaction,
	out model.Output,
	m script.Match,
	txo model.TxO,
	replay bool,
	logger *zap.Logger,
) error {
	if len(tx.Inputs) == 0 || tx.Inputs[0].Coinbase {
		return fmt.Errorf("%w: tx %s", ErrMissingInput, tx.TxID)
	}
	first := tx.Inputs[0].PrevTxID

	ref, err := outpoint.FromUTXO(first, out.N)
	if err != nil {
		return fmt.Errorf("build glyph ref: %w", err)
	}
	reveal, ok := payload.FromInputs(ref, tx.Inputs)
	if !ok {
		return p.transferGlyph(ctx, block, tx, out, m, txo, replay, logger)
	}

	pl := reveal.Payload
	var location string
	if loc, ok := pl.Loc(); ok {
		// The linked reveal is keyed by the input at this output's index.
		if int(out.N) < len(tx.Inputs) && !tx.Inputs[out.N].Coinbase {
			linkedRef, err := outpoint.FromUTXO(tx.Inputs[out.N].PrevTxID, loc)
			if err != nil {
				return fmt.Errorf("build location ref: %w", err)
			}
			if linked, ok := payload.FromInputs(linkedRef, tx.Inputs); ok {
				pl.Merge(linked.Payload)
				location = linkedRef.Hex()
			}
		} else {
			logger.Debug("no input for location link", zap.Uint32("loc", loc))
		}
	}

	g, ok := buildGlyph(ref, pl)
	if !ok {
		logger.Warn("could not determine glyph contract", zap.String("ref", ref.Hex()))
		return nil
	}
	g.Location = location
	g.RevealOutpoint = outpointString(tx.TxID, out.N)
	g.LastTxoID = txo.ID
	g.Height = block.Height
	g.Timestamp = block.Time
	g.Fresh = 1

	stored, created, err := p.store.FindOrCreateGlyph(ctx, g)
	if err != nil {
		return err
	}
	logger = logger.With(zap.String("ref", g.Ref))

	switch {
	case created:
		p.metrics.IncGlyphEvent(eventCreated)
		logger.Info("glyph created", zap.String("tokenType", string(g.TokenType)), zap.String("name", g.Name))
	case txo.ContractType.IsDelegate():
		logger.Debug("delegate output references existing glyph, skipping")
		return nil
	case replay && stored.Height > block.Height:
		logger.Debug("glyph moved in a later block, skipping replayed output", zap.Int64("glyphHeight", stored.Height))
		return nil
	case stored.RevealOutpoint != g.RevealOutpoint:
		if err = p.store.UpdateGlyph(ctx, g.Ref, model.GlyphUpdate{
			RevealOutpoint: g.RevealOutpoint,
			LastTxoID:      g.LastTxoID,
			Height:         g.Height,
			Timestamp:      g.Timestamp,
			Metadata:       &g,
		}); err != nil {
			return err
		}
		if stored.HasContainer() && stored.Container != g.Container {
			if err = p.store.RemoveFromContainer(ctx, stored.Container, g.Ref); err != nil {
				return err
			}
		}
		p.metrics.IncGlyphEvent(eventUpdated)
		logger.Info("glyph updated", zap.String("revealOutpoint", g.RevealOutpoint))
	}

	if g.IsContainer && !stored.IsContainer {
		if err = p.store.SetContainerFlag(ctx, g.Ref); err != nil {
			return err
		}
	}
	if g.HasContainer() {
		return p.joinContainer(ctx, g, logger)
	}
	return nil
}

// joinContainer adds g to its declared container when that container is indexed.
func (p *Processor) joinContainer(ctx context.Context, g model.Glyph, logger *zap.Logger) error {
	if _, err := p.store.GlyphByRef(ctx, g.Container); err != nil {
		if errors.Is(err, model.ErrNotFound) {
			logger.Debug("container not indexed", zap.String("container", g.Container))
			return nil
		}
		return err
	}
	if err := p.store.AddToContainer(ctx, g.Container, g.Ref); err != nil {
		return err
	}
	logger.Debug("added glyph to container", zap.String("container", g.Container))
	return nil
}

// transferGlyph re-points an existing NFT to out when out carries its
// singleton ref without a reveal.
func (p *Processor) transferGlyph(
	ctx context.Context,
	block model.Block,
	tx model.Transaction,
	out model.Output,
	m script.Match,
	txo model.TxO,
	replay bool,
	logger *zap.Logger,
) error {
	if txo.ContractType != model.ContractNFT {
		return nil
	}
	ref, ok := m.Ref()
	if !ok {
		return nil
	}

	g, err := p.store.GlyphByRef(ctx, ref.Hex())
	if err != nil {
		if errors.Is(err, model.ErrNotFound) {
			return nil
		}
		return err
	}

	revealOutpoint := outpointString(tx.TxID, out.N)
	if g.RevealOutpoint == revealOutpoint || (replay && g.Height > block.Height) {
		return nil
	}
	if err = p.store.UpdateGlyph(ctx, g.Ref, model.GlyphUpdate{
		RevealOutpoint: revealOutpoint,
		LastTxoID:      txo.ID,
		Height:         block.Height,
		Timestamp:      block.Time,
	}); err != nil {
		return err
	}
	p.metrics.IncGlyphEvent(eventTransferred)
	logger.Debug("glyph transferred", zap.String("ref", g.Ref), zap.String("revealOutpoint", revealOutpoint))
	return nil
}
