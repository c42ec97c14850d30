package model

import "time"

// Import log levels, matching the zap level names that are persisted.
const (
	LogLevelError = "error"
	LogLevelWarn  = "warn"
	LogLevelInfo  = "info"
	LogLevelDebug = "debug"
)

// ImportLog is a durable record of an importer log entry.
type ImportLog struct {
	Timestamp   time.Time `json:"timestamp"`
	Level       string    `json:"level"`
	Message     string    `json:"message"`
	Details     string    `json:"details,omitempty"`
	BlockHeight *int64    `json:"blockHeight,omitempty"`
	TxID        string    `json:"txid,omitempty"`
}

// ImportLogFilter narrows import log queries. Zero fields do not filter.
type ImportLogFilter struct {
	Level       string
	BlockHeight *int64
	Since       *time.Time
	Until       *time.Time
	Limit       int
	Offset      int
}
