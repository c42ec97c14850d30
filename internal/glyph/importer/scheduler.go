package importer

import (
	"context"
	"errors"
	"time"

	"github.com/goodnatureofminers/glyphindexer/internal/clock"
	"go.uber.org/zap"
)

// Scheduler runs import batches forever. While catching up it runs them back
// to back with a short delay; once within one block of the tip it switches
// to a fixed polling interval. Failed runs are retried after a fixed delay
// without changing mode.
type Scheduler struct {
	importer     BatchImporter
	stats        StatsRefresher
	logger       *zap.Logger
	wait         func(context.Context, time.Duration) error
	quickDelay   time.Duration
	pollInterval time.Duration
	retryDelay   time.Duration
	initialSync  bool
}

// NewScheduler builds a Scheduler. stats may be nil. A non-nil blockSignal
// cuts any wait short when the node announces a block.
func NewScheduler(importer BatchImporter, stats StatsRefresher, logger *zap.Logger, blockSignal <-chan struct{}) (*Scheduler, error) {
	if importer == nil {
		return nil, errors.New("scheduler importer is required")
	}
	return &Scheduler{
		importer: importer,
		stats:    stats,
		logger:   logger.Named("scheduler"),
		wait: func(ctx context.Context, d time.Duration) error {
			return clock.WaitOrSignal(ctx, d, blockSignal)
		},
		quickDelay:   quickDelay,
		pollInterval: pollInterval,
		retryDelay:   retryDelay,
		initialSync:  true,
	}, nil
}

// Run schedules batches until the context is canceled.
func (s *Scheduler) Run(ctx context.Context) error {
	s.logger.Info("starting import scheduler, initial sync mode")
	for {
		if ctx.Err() != nil {
			return ctx.Err()
		}
		d := s.run(ctx)
		if err := s.wait(ctx, d); err != nil {
			return err
		}
	}
}

// run performs one batch and returns the delay before the next one.
func (s *Scheduler) run(ctx context.Context) time.Duration {
	res, err := s.importer.ImportBatch(ctx)
	if err != nil && ctx.Err() != nil {
		return 0
	}
	s.refreshStats(ctx)

	if err != nil {
		if errors.Is(err, ErrAlreadyImporting) {
			s.logger.Info("import already running elsewhere", zap.Duration("sleep", s.retryDelay))
		} else {
			s.logger.Warn("run iteration failed, backing off", zap.Error(err), zap.Duration("sleep", s.retryDelay))
		}
		return s.retryDelay
	}

	switch {
	case s.initialSync && res.Synced():
		s.initialSync = false
		s.logger.Info("initial sync completed, switching to regular interval",
			zap.Int64("lastHeight", res.LastHeight),
			zap.Duration("interval", s.pollInterval),
		)
		return s.pollInterval
	case s.initialSync:
		s.logger.Debug("still in initial sync mode",
			zap.Int64("lastHeight", res.LastHeight),
			zap.Int64("chainHeight", res.ChainHeight),
		)
		return s.quickDelay
	default:
		s.logger.Debug("scheduling next import", zap.Duration("sleep", s.pollInterval))
		return s.pollInterval
	}
}

func (s *Scheduler) refreshStats(ctx context.Context) {
	if s.stats == nil {
		return
	}
	if _, err := s.stats.Refresh(ctx); err != nil {
		s.logger.Error("stats refresh failed", zap.Error(err))
		return
	}
	s.logger.Debug("stats updated")
}
