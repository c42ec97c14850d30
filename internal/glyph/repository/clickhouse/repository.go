// Package clickhouse stores importer log entries in ClickHouse.
package clickhouse

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/ClickHouse/clickhouse-go/v2"
	"github.com/ClickHouse/clickhouse-go/v2/lib/driver"
)

//go:generate mockgen -source=repository.go -destination=mocks_test.go -package=clickhouse

type (
	// Conn is the subset of the ClickHouse driver the repository uses.
	Conn interface {
		PrepareBatch(ctx context.Context, query string, opts ...driver.PrepareBatchOption) (driver.Batch, error)
		Query(ctx context.Context, query string, args ...any) (driver.Rows, error)
		Exec(ctx context.Context, query string, args ...any) error
		Close() error
	}

	Metrics interface {
		Observe(operation string, err error, started time.Time)
	}
)

type Repository struct {
	conn    Conn
	metrics Metrics
}

func NewRepository(dsn string, metrics Metrics) (*Repository, error) {
	if dsn == "" {
		return nil, errors.New("clickhouse dsn is required")
	}

	options, err := clickhouse.ParseDSN(dsn)
	if err != nil {
		return nil, fmt.Errorf("parse clickhouse dsn: %w", err)
	}

	conn, err := clickhouse.Open(options)
	if err != nil {
		return nil, fmt.Errorf("open clickhouse connection: %w", err)
	}

	return &Repository{conn: conn, metrics: metrics}, nil
}

// Close releases the underlying connection pool.
func (r *Repository) Close() error {
	return r.conn.Close()
}
