package clickhouse

import (
	"context"
	"fmt"
	"time"

	"github.com/goodnatureofminers/glyphindexer/internal/glyph/model"
)

const insertImportLogsQuery = `
INSERT INTO glyph_import_logs (
	timestamp,
	level,
	message,
	details,
	block_height,
	txid
) VALUES`

// InsertImportLogs stores import log rows in one batch.
func (r *Repository) InsertImportLogs(ctx context.Context, logs []model.ImportLog) error {
	start := time.Now()
	var err error
	defer func() {
		r.metrics.Observe("insert_import_logs", err, start)
	}()

	if len(logs) == 0 {
		return nil
	}

	batch, err := r.conn.PrepareBatch(ctx, insertImportLogsQuery)
	if err != nil {
		return fmt.Errorf("prepare import logs batch: %w", err)
	}
	defer func() {
		if err != nil {
			_ = batch.Abort()
		}
	}()

	for _, entry := range logs {
		if err = batch.Append(
			entry.Timestamp.UTC(),
			entry.Level,
			entry.Message,
			entry.Details,
			entry.BlockHeight,
			entry.TxID,
		); err != nil {
			return fmt.Errorf("append import log: %w", err)
		}
	}

	if err = batch.Send(); err != nil {
		return fmt.Errorf("insert import logs: %w", err)
	}
	return nil
}
