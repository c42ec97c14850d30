package processor

import (
	"context"

	"github.com/goodnatureofminers/glyphindexer/internal/glyph/model"
	"github.com/goodnatureofminers/glyphindexer/internal/glyph/script"
	"go.uber.org/zap"
)

func (p *Processor) processOutput(ctx context.Context, block model.Block, tx model.Transaction, out model.Output, logger *zap.Logger) error {
	m, ok := script.ClassifyHex(out.ScriptHex)
	if !ok {
		return nil
	}
	contractType := m.ContractType()
	if contractType == model.ContractRXD && !p.indexRXD {
		return nil
	}

	address, err := m.Address(p.params)
	if err != nil {
		return err
	}
	txo := model.TxO{
		TxID:         tx.TxID,
		Vout:         out.N,
		Script:       out.ScriptHex,
		Value:        out.Value,
		Date:         block.Time.Unix(),
		Height:       block.Height,
		ContractType: contractType,
		Address:      address,
	}
	if r, ok := m.Ref(); ok {
		txo.Ref = r.Hex()
	}

	stored, created, err := p.store.InsertTxO(ctx, txo)
	if err != nil {
		return err
	}
	if created {
		p.metrics.IncOutput(string(contractType))
		logger.Debug("stored txo", zap.Uint32("vout", out.N), zap.String("contractType", string(contractType)))
	}

	switch {
	case m.Kind == script.KindContractBurn:
		return nil
	case contractType == model.ContractNFT, contractType == model.ContractFT, contractType.IsDelegate():
		return p.reconcileGlyph(ctx, block, tx, out, m, stored, !created, logger.With(zap.Uint32("vout", out.N)))
	default:
		return nil
	}
}
