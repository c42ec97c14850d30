// Package batcher provides a generic buffered batch processor with rate limiting.
package batcher

import (
	"context"
	"sync"
	"sync/atomic"
	"time"

	"go.uber.org/ratelimit"
	"go.uber.org/zap"
)

// Batcher buffers items and flushes them either by size or interval. Items
// still queued when it stops are flushed before Stop returns.
type Batcher[T any] struct {
	flushCallback func(context.Context, []T) error
	itemsCh       chan T
	flushSize     int
	flushInterval time.Duration
	rl            ratelimit.Limiter
	logger        *zap.Logger

	dropped  atomic.Int64
	wg       sync.WaitGroup
	stop     chan struct{}
	stopOnce sync.Once
}

// New constructs a Batcher. The queue holds twice flushSize items.
func New[T any](logger *zap.Logger, flushCallback func(context.Context, []T) error, flushSize int, flushInterval time.Duration, rps int) *Batcher[T] {
	if flushSize <= 0 {
		flushSize = 1
	}
	return &Batcher[T]{
		logger:        logger,
		flushCallback: flushCallback,
		itemsCh:       make(chan T, flushSize*2),
		flushSize:     flushSize,
		flushInterval: flushInterval,
		rl:            ratelimit.New(rps),
		stop:          make(chan struct{}),
	}
}

// Start begins the background flushing loop.
func (b *Batcher[T]) Start(ctx context.Context) {
	b.wg.Add(1)
	go b.run(ctx)
}

// Stop stops the background flushing loop and waits for the final flush.
// It is safe to call more than once.
func (b *Batcher[T]) Stop() {
	b.stopOnce.Do(func() { close(b.stop) })
	b.wg.Wait()
}

// Add queues an item for batching, respecting context cancellation.
func (b *Batcher[T]) Add(ctx context.Context, item T) error {
	select {
	case <-b.stop:
		return context.Canceled
	default:
	}

	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-b.stop:
		return context.Canceled
	case b.itemsCh <- item:
		return nil
	}
}

// TryAdd queues an item without blocking. It reports false, and counts the
// item as dropped, when the queue is full or the batcher is stopped.
func (b *Batcher[T]) TryAdd(item T) bool {
	select {
	case <-b.stop:
		b.dropped.Add(1)
		return false
	default:
	}

	select {
	case b.itemsCh <- item:
		return true
	default:
		b.dropped.Add(1)
		return false
	}
}

// Dropped returns how many items TryAdd has rejected.
func (b *Batcher[T]) Dropped() int64 {
	return b.dropped.Load()
}

func (b *Batcher[T]) run(ctx context.Context) {
	defer b.wg.Done()

	ticker := time.NewTicker(b.flushInterval)
	defer ticker.Stop()

	buf := make([]T, 0, b.flushSize)

	flush := func(ctx context.Context) {
		if len(buf) == 0 {
			return
		}

		b.rl.Take()
		err := b.flushCallback(ctx, buf)
		if err != nil {
			b.logger.Error("batch not flushed", zap.Error(err), zap.Int("size", len(buf)))
		} else {
			b.logger.Debug("batch flushed", zap.Int("size", len(buf)))
		}
		buf = buf[:0]
	}

	drain := func() {
		final := context.WithoutCancel(ctx)
		for {
			select {
			case item := <-b.itemsCh:
				buf = append(buf, item)
				if len(buf) >= b.flushSize {
					flush(final)
				}
			default:
				flush(final)
				return
			}
		}
	}

	for {
		select {
		case <-ctx.Done():
			drain()
			return

		case <-b.stop:
			drain()
			return

		case item := <-b.itemsCh:
			buf = append(buf, item)
			if len(buf) >= b.flushSize {
				flush(ctx)
			}

		case <-ticker.C:
			flush(ctx)
		}
	}
}
