package stats

import (
	"context"

	"github.com/goodnatureofminers/glyphindexer/internal/glyph/model"
)

//go:generate mockgen -source=types.go -destination=mocks_test.go -package=stats

type (
	Store interface {
		CountGlyphs(ctx context.Context, filter model.GlyphFilter) (int64, error)
		CountTxOs(ctx context.Context, filter model.TxOFilter) (int64, error)
		CountBlockHeaders(ctx context.Context) (int64, error)
		LatestBlockHeader(ctx context.Context) (model.BlockHeader, error)
		SaveStats(ctx context.Context, stats model.Stats) error
		LoadStats(ctx context.Context) (model.Stats, error)
	}

	Cache interface {
		Get(ctx context.Context) (model.Stats, bool, error)
		Set(ctx context.Context, stats model.Stats) error
	}
)
