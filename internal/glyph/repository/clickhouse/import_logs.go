package clickhouse

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/goodnatureofminers/glyphindexer/internal/glyph/model"
)

const (
	defaultLogLimit = 100
	maxLogLimit     = 1000
)

const selectImportLogsQuery = `
SELECT
	timestamp,
	level,
	message,
	details,
	block_height,
	txid
FROM glyph_import_logs`

const countImportLogsQuery = `
SELECT count()
FROM glyph_import_logs`

// ImportLogs returns the newest log entries matching filter.
func (r *Repository) ImportLogs(ctx context.Context, filter model.ImportLogFilter) (logs []model.ImportLog, err error) {
	start := time.Now()
	defer func() {
		r.metrics.Observe("import_logs", err, start)
	}()

	where, args := importLogWhere(filter)
	limit := filter.Limit
	if limit <= 0 {
		limit = defaultLogLimit
	}
	limit = min(limit, maxLogLimit)
	args = append(args, limit, max(filter.Offset, 0))

	query := selectImportLogsQuery + where + `
ORDER BY timestamp DESC
LIMIT ? OFFSET ?`

	rows, err := r.conn.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("query import logs: %w", err)
	}
	defer func() {
		if closeErr := rows.Close(); closeErr != nil && err == nil {
			err = fmt.Errorf("close rows: %w", closeErr)
		}
	}()

	logs = make([]model.ImportLog, 0, limit)
	for rows.Next() {
		var (
			entry  model.ImportLog
			height *int64
		)
		if err = rows.Scan(
			&entry.Timestamp,
			&entry.Level,
			&entry.Message,
			&entry.Details,
			&height,
			&entry.TxID,
		); err != nil {
			return nil, fmt.Errorf("scan import log: %w", err)
		}
		entry.BlockHeight = height
		logs = append(logs, entry)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate import logs: %w", err)
	}

	return logs, nil
}

// CountImportLogs counts log entries matching filter, ignoring its paging.
func (r *Repository) CountImportLogs(ctx context.Context, filter model.ImportLogFilter) (count uint64, err error) {
	start := time.Now()
	defer func() {
		r.metrics.Observe("count_import_logs", err, start)
	}()

	where, args := importLogWhere(filter)
	rows, err := r.conn.Query(ctx, countImportLogsQuery+where, args...)
	if err != nil {
		return 0, fmt.Errorf("query import log count: %w", err)
	}
	defer func() {
		if closeErr := rows.Close(); closeErr != nil && err == nil {
			err = fmt.Errorf("close rows: %w", closeErr)
		}
	}()

	if !rows.Next() {
		return 0, fmt.Errorf("import log count not found")
	}
	if err = rows.Scan(&count); err != nil {
		return 0, fmt.Errorf("scan import log count: %w", err)
	}
	if err = rows.Err(); err != nil {
		return 0, fmt.Errorf("iterate import log count: %w", err)
	}

	return count, nil
}

// DeleteImportLogsBefore removes entries older than before.
func (r *Repository) DeleteImportLogsBefore(ctx context.Context, before time.Time) error {
	start := time.Now()
	var err error
	defer func() {
		r.metrics.Observe("delete_import_logs", err, start)
	}()

	if err = r.conn.Exec(ctx, `DELETE FROM glyph_import_logs WHERE timestamp < ?`, before.UTC()); err != nil {
		return fmt.Errorf("delete import logs: %w", err)
	}
	return nil
}

func importLogWhere(f model.ImportLogFilter) (string, []any) {
	var (
		conds []string
		args  []any
	)
	if f.Level != "" {
		conds = append(conds, "level = ?")
		args = append(args, f.Level)
	}
	if f.BlockHeight != nil {
		conds = append(conds, "block_height = ?")
		args = append(args, *f.BlockHeight)
	}
	if f.Since != nil {
		conds = append(conds, "timestamp >= ?")
		args = append(args, f.Since.UTC())
	}
	if f.Until != nil {
		conds = append(conds, "timestamp <= ?")
		args = append(args, f.Until.UTC())
	}
	if len(conds) == 0 {
		return "", nil
	}
	return "\nWHERE " + strings.Join(conds, " AND "), args
}
