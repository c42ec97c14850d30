//go:build !zmq

package main

import (
	"context"

	"go.uber.org/zap"
)

// startBlockSignal is unavailable without the zmq build tag; the scheduler
// then relies on its polling interval alone.
func startBlockSignal(_ context.Context, addr string, logger *zap.Logger) (<-chan struct{}, error) {
	if addr != "" {
		logger.Warn("zmq endpoint ignored, binary built without the zmq tag", zap.String("addr", addr))
	}
	return nil, nil
}
