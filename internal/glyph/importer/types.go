//go:generate mockgen -source=$GOFILE -destination=mocks_test.go -package=$GOPACKAGE
package importer

import (
	"context"
	"time"

	"github.com/goodnatureofminers/glyphindexer/internal/glyph/model"
)

type (
	Chain interface {
		GetBlockCount(ctx context.Context) (int64, error)
		GetBlockHash(ctx context.Context, height int64) (string, error)
		GetBlockVerbose(ctx context.Context, hash string) (model.Block, error)
	}
	BlockProcessor interface {
		ProcessBlock(ctx context.Context, block model.Block) error
	}
	StateStore interface {
		ImportState(ctx context.Context, genesis int64) (model.ImportState, error)
		SaveImportProgress(ctx context.Context, height int64, hash string) error
		AcquireImportLease(ctx context.Context, genesis int64) (bool, error)
		ReleaseImportLease(ctx context.Context) error
		CanonicalBlockHeader(ctx context.Context, height int64) (model.BlockHeader, error)
		MarkReorg(ctx context.Context, height int64) (int64, error)
	}
	StatsRefresher interface {
		Refresh(ctx context.Context) (model.Stats, error)
	}
	Metrics interface {
		ObserveBatch(err error, blocks int, started time.Time)
		SetHeights(last, chain int64)
	}
	BatchImporter interface {
		ImportBatch(ctx context.Context) (Result, error)
	}
	Runner interface {
		State(ctx context.Context) (model.ImportState, error)
		Reset(ctx context.Context, opts ResetOptions) (model.ImportState, error)
		AcquireLease(ctx context.Context) error
		ReleaseLease(ctx context.Context) error
		ImportLeased(ctx context.Context) (Result, error)
	}
)
