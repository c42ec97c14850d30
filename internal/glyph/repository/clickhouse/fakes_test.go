package clickhouse

import (
	"errors"
	"time"

	"github.com/ClickHouse/clickhouse-go/v2/lib/driver"
	"github.com/goodnatureofminers/glyphindexer/internal/glyph/model"
)

type fakeBatch struct {
	driver.Batch
	appended  [][]any
	appendErr error
	sendErr   error
	sent      bool
	aborted   bool
}

func (b *fakeBatch) Append(v ...any) error {
	if b.appendErr != nil {
		return b.appendErr
	}
	b.appended = append(b.appended, v)
	return nil
}

func (b *fakeBatch) Send() error {
	b.sent = true
	return b.sendErr
}

func (b *fakeBatch) Abort() error {
	b.aborted = true
	return nil
}

type fakeRows struct {
	driver.Rows
	logs     []model.ImportLog
	count    *uint64
	pos      int
	scanErr  error
	iterErr  error
	closeErr error
	closed   bool
}

func (r *fakeRows) Next() bool {
	if r.count != nil {
		if r.pos > 0 {
			return false
		}
		r.pos++
		return true
	}
	if r.pos >= len(r.logs) {
		return false
	}
	r.pos++
	return true
}

func (r *fakeRows) Scan(dest ...any) error {
	if r.scanErr != nil {
		return r.scanErr
	}
	if r.count != nil {
		*dest[0].(*uint64) = *r.count
		return nil
	}
	if len(dest) != 6 {
		return errors.New("unexpected column count")
	}
	entry := r.logs[r.pos-1]
	*dest[0].(*time.Time) = entry.Timestamp
	*dest[1].(*string) = entry.Level
	*dest[2].(*string) = entry.Message
	*dest[3].(*string) = entry.Details
	*dest[4].(**int64) = entry.BlockHeight
	*dest[5].(*string) = entry.TxID
	return nil
}

func (r *fakeRows) Err() error { return r.iterErr }

func (r *fakeRows) Close() error {
	r.closed = true
	return r.closeErr
}

func int64Ptr(v int64) *int64 { return &v }
