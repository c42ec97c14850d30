// Package logging builds the process logger and mirrors importer log entries
// into a durable store.
package logging

import (
	"fmt"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Config selects the console logger flavour.
type Config struct {
	JSON  bool
	Level string
}

// New builds a development logger, or a production JSON logger when
// cfg.JSON is set. An empty level keeps the flavour's default.
func New(cfg Config) (*zap.Logger, error) {
	zcfg := zap.NewDevelopmentConfig()
	if cfg.JSON {
		zcfg = zap.NewProductionConfig()
		zcfg.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	}
	if cfg.Level != "" {
		level, err := zapcore.ParseLevel(cfg.Level)
		if err != nil {
			return nil, fmt.Errorf("parse log level: %w", err)
		}
		zcfg.Level = zap.NewAtomicLevelAt(level)
	}

	logger, err := zcfg.Build()
	if err != nil {
		return nil, fmt.Errorf("build logger: %w", err)
	}
	return logger, nil
}

// Tee returns a logger that writes to both the logger's own core and core.
func Tee(logger *zap.Logger, core zapcore.Core) *zap.Logger {
	return logger.WithOptions(zap.WrapCore(func(c zapcore.Core) zapcore.Core {
		return zapcore.NewTee(c, core)
	}))
}
