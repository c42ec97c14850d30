package logging

import (
	"encoding/json"
	"fmt"

	"github.com/goodnatureofminers/glyphindexer/internal/glyph/model"
	"go.uber.org/zap/zapcore"
)

// Field keys lifted out of the encoded details into their own columns.
const (
	heightKey = "height"
	txidKey   = "txid"
)

type storeCore struct {
	zapcore.LevelEnabler
	fields []zapcore.Field
	emit   func(model.ImportLog) bool
}

// NewStoreCore returns a core that converts entries at or above level into
// import log rows and hands them to emit. emit must not block.
func NewStoreCore(level zapcore.LevelEnabler, emit func(model.ImportLog) bool) zapcore.Core {
	return &storeCore{LevelEnabler: level, emit: emit}
}

func (c *storeCore) With(fields []zapcore.Field) zapcore.Core {
	clone := *c
	clone.fields = make([]zapcore.Field, 0, len(c.fields)+len(fields))
	clone.fields = append(clone.fields, c.fields...)
	clone.fields = append(clone.fields, fields...)
	return &clone
}

func (c *storeCore) Check(ent zapcore.Entry, ce *zapcore.CheckedEntry) *zapcore.CheckedEntry {
	if c.Enabled(ent.Level) {
		return ce.AddCore(ent, c)
	}
	return ce
}

func (c *storeCore) Write(ent zapcore.Entry, fields []zapcore.Field) error {
	enc := zapcore.NewMapObjectEncoder()
	for _, f := range c.fields {
		f.AddTo(enc)
	}
	for _, f := range fields {
		f.AddTo(enc)
	}

	entry := model.ImportLog{
		Timestamp: ent.Time.UTC(),
		Level:     ent.Level.String(),
		Message:   ent.Message,
	}
	if h, ok := intField(enc.Fields[heightKey]); ok {
		entry.BlockHeight = &h
		delete(enc.Fields, heightKey)
	}
	if txid, ok := enc.Fields[txidKey].(string); ok {
		entry.TxID = txid
		delete(enc.Fields, txidKey)
	}
	if ent.LoggerName != "" {
		enc.Fields["logger"] = ent.LoggerName
	}
	if len(enc.Fields) > 0 {
		details, err := json.Marshal(enc.Fields)
		if err != nil {
			details = []byte(fmt.Sprintf("%q", fmt.Sprint(enc.Fields)))
		}
		entry.Details = string(details)
	}

	c.emit(entry)
	return nil
}

func (c *storeCore) Sync() error {
	return nil
}

func intField(v any) (int64, bool) {
	switch n := v.(type) {
	case int64:
		return n, true
	case int:
		return int64(n), true
	case int32:
		return int64(n), true
	case uint32:
		return int64(n), true
	default:
		return 0, false
	}
}
