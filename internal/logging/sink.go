package logging

import (
	"context"
	"time"

	"github.com/goodnatureofminers/glyphindexer/internal/glyph/model"
	"github.com/goodnatureofminers/glyphindexer/pkg/batcher"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

const (
	sinkFlushSize     = 200
	sinkFlushInterval = 2 * time.Second
	sinkFlushRPS      = 10
	sinkInsertTimeout = 10 * time.Second
)

// LogStore persists import log rows.
type LogStore interface {
	InsertImportLogs(ctx context.Context, logs []model.ImportLog) error
}

// Sink batches import log rows into a LogStore. Rows are dropped rather than
// blocking the caller when the queue is full.
type Sink struct {
	batcher *batcher.Batcher[model.ImportLog]
}

// NewSink builds a Sink. logger reports flush failures and must not itself
// write into the sink.
func NewSink(store LogStore, logger *zap.Logger) *Sink {
	flush := func(ctx context.Context, logs []model.ImportLog) error {
		ctx, cancel := context.WithTimeout(ctx, sinkInsertTimeout)
		defer cancel()
		return store.InsertImportLogs(ctx, logs)
	}
	return &Sink{
		batcher: batcher.New(logger.Named("log_sink"), flush, sinkFlushSize, sinkFlushInterval, sinkFlushRPS),
	}
}

// Start begins background flushing.
func (s *Sink) Start(ctx context.Context) {
	s.batcher.Start(ctx)
}

// Stop flushes queued rows and stops.
func (s *Sink) Stop() {
	s.batcher.Stop()
}

// Emit queues one row without blocking.
func (s *Sink) Emit(entry model.ImportLog) bool {
	return s.batcher.TryAdd(entry)
}

// Dropped returns how many rows were discarded.
func (s *Sink) Dropped() int64 {
	return s.batcher.Dropped()
}

// Core returns a zap core feeding entries at or above level into the sink.
func (s *Sink) Core(level zapcore.LevelEnabler) zapcore.Core {
	return NewStoreCore(level, s.Emit)
}
