package transport

import (
	"context"
	"time"

	"github.com/goodnatureofminers/glyphindexer/internal/glyph/importer"
	"github.com/goodnatureofminers/glyphindexer/internal/glyph/model"
)

//go:generate mockgen -source=types.go -destination=mocks_test.go -package=transport

type (
	ImportController interface {
		Start(ctx context.Context, resetTo *int64) error
		Stop() bool
		Status() importer.Status
		State(ctx context.Context) (model.ImportState, error)
		Reset(ctx context.Context, opts importer.ResetOptions) (model.ImportState, error)
	}

	LogStore interface {
		ImportLogs(ctx context.Context, filter model.ImportLogFilter) ([]model.ImportLog, error)
		CountImportLogs(ctx context.Context, filter model.ImportLogFilter) (uint64, error)
		DeleteImportLogsBefore(ctx context.Context, before time.Time) error
	}

	StatsReader interface {
		Stats(ctx context.Context) (model.Stats, error)
	}
)
