package importer

import (
	"context"
	"sync"
	"time"

	"github.com/goodnatureofminers/glyphindexer/internal/glyph/model"
	"go.uber.org/multierr"
	"go.uber.org/zap"
)

// Status describes the most recent operator-triggered run.
type Status struct {
	Running    bool      `json:"running"`
	StartedAt  time.Time `json:"startedAt,omitempty"`
	FinishedAt time.Time `json:"finishedAt,omitempty"`
	LastResult *Result   `json:"lastResult,omitempty"`
	LastError  string    `json:"lastError,omitempty"`
}

// Controller starts and stops single background import runs on request.
type Controller struct {
	runner Runner
	logger *zap.Logger

	mu     sync.Mutex
	status Status
	cancel context.CancelFunc
	done   chan struct{}
}

// NewController builds a Controller around runner.
func NewController(runner Runner, logger *zap.Logger) *Controller {
	return &Controller{
		runner: runner,
		logger: logger.Named("controller"),
	}
}

// Start takes the import lease and launches one batch in the background,
// optionally rewinding progress to resetTo first. It returns
// ErrAlreadyImporting when a run is active here or the persisted lease is
// held elsewhere.
func (c *Controller) Start(ctx context.Context, resetTo *int64) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.status.Running {
		return ErrAlreadyImporting
	}
	if err := c.runner.AcquireLease(ctx); err != nil {
		return err
	}
	if resetTo != nil {
		if _, err := c.runner.Reset(ctx, ResetOptions{Height: resetTo}); err != nil {
			return multierr.Append(err, c.runner.ReleaseLease(context.WithoutCancel(ctx)))
		}
	}

	runCtx, cancel := context.WithCancel(context.WithoutCancel(ctx))
	done := make(chan struct{})
	c.cancel = cancel
	c.done = done
	c.status = Status{Running: true, StartedAt: time.Now().UTC()}

	go c.run(runCtx, cancel, done)
	c.logger.Info("import started")
	return nil
}

func (c *Controller) run(ctx context.Context, cancel context.CancelFunc, done chan struct{}) {
	defer close(done)
	defer cancel()

	res, err := c.runner.ImportLeased(ctx)

	c.mu.Lock()
	defer c.mu.Unlock()
	c.status.Running = false
	c.status.FinishedAt = time.Now().UTC()
	c.status.LastResult = &res
	c.status.LastError = ""
	if err != nil {
		c.status.LastError = err.Error()
		c.logger.Error("import run failed", zap.Error(err))
		return
	}
	c.logger.Info("import run finished",
		zap.Int("processed", res.Processed),
		zap.Int64("lastHeight", res.LastHeight),
		zap.Int64("chainHeight", res.ChainHeight),
	)
}

// Stop cancels the active run, if any, and waits for it to finish its
// current block.
func (c *Controller) Stop() bool {
	c.mu.Lock()
	cancel, done, running := c.cancel, c.done, c.status.Running
	c.mu.Unlock()

	if !running || cancel == nil {
		return false
	}
	cancel()
	<-done
	c.logger.Info("import stopped")
	return true
}

// Wait blocks until the active run, if any, has finished.
func (c *Controller) Wait() {
	c.mu.Lock()
	done := c.done
	c.mu.Unlock()
	if done != nil {
		<-done
	}
}

// Status returns a snapshot of the controller state.
func (c *Controller) Status() Status {
	c.mu.Lock()
	defer c.mu.Unlock()
	s := c.status
	if s.LastResult != nil {
		r := *s.LastResult
		s.LastResult = &r
	}
	return s
}

// State proxies the persisted import state.
func (c *Controller) State(ctx context.Context) (model.ImportState, error) {
	return c.runner.State(ctx)
}

// Reset proxies an operator reset.
func (c *Controller) Reset(ctx context.Context, opts ResetOptions) (model.ImportState, error) {
	return c.runner.Reset(ctx, opts)
}
