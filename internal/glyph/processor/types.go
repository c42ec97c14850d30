//go:generate mockgen -source=$GOFILE -destination=mocks_test.go -package=$GOPACKAGE
package processor

import (
	"context"
	"time"

	"github.com/goodnatureofminers/glyphindexer/internal/glyph/model"
)

type (
	Chain interface {
		GetBlockRaw(ctx context.Context, hash string) ([]byte, error)
	}
	Store interface {
		BlockHeaderByHash(ctx context.Context, hash string) (model.BlockHeader, error)
		InsertBlockHeader(ctx context.Context, header model.BlockHeader) (bool, error)
		RestoreBlockHeader(ctx context.Context, hash string, height int64) error
		InsertTxO(ctx context.Context, txo model.TxO) (model.TxO, bool, error)
		MarkTxOSpent(ctx context.Context, txid string, vout uint32) (bool, error)
		GlyphByRef(ctx context.Context, ref string) (model.Glyph, error)
		GlyphByRevealOutpoint(ctx context.Context, outpoint string) (model.Glyph, error)
		FindOrCreateGlyph(ctx context.Context, g model.Glyph) (model.Glyph, bool, error)
		UpdateGlyph(ctx context.Context, ref string, upd model.GlyphUpdate) error
		SetContainerFlag(ctx context.Context, ref string) error
		MarkGlyphSpent(ctx context.Context, ref string) (bool, error)
		AddToContainer(ctx context.Context, container, item string) error
		RemoveFromContainer(ctx context.Context, container, item string) error
	}
	StatsRefresher interface {
		Refresh(ctx context.Context) (model.Stats, error)
	}
	Metrics interface {
		ObserveBlock(err error, started time.Time)
		IncOutput(contractType string)
		IncGlyphEvent(event string)
	}
)
