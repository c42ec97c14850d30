package clickhouse

import (
	"time"

	"github.com/golang/mock/gomock"
	"github.com/goodnatureofminers/glyphindexer/internal/glyph/model"
)

func (s *RepositorySuite) seedLogs(now time.Time) []model.ImportLog {
	logs := []model.ImportLog{
		{Timestamp: now.Add(-2 * time.Hour), Level: model.LogLevelInfo, Message: "imported block", BlockHeight: int64Ptr(100)},
		{Timestamp: now.Add(-time.Hour), Level: model.LogLevelError, Message: "process block failed", Details: `{"error":"boom"}`, BlockHeight: int64Ptr(101), TxID: "ab"},
		{Timestamp: now, Level: model.LogLevelWarn, Message: "stats refresh failed"},
	}
	s.metrics.EXPECT().Observe("insert_import_logs", gomock.Nil(), gomock.Any())
	s.Require().NoError(s.repo.InsertImportLogs(s.testCtx, logs))
	return logs
}

func (s *RepositorySuite) TestInsertImportLogs() {
	now := time.Now().UTC().Truncate(time.Millisecond)
	logs := s.seedLogs(now)

	s.Equal(uint64(len(logs)), s.countRows("glyph_import_logs"))
}

func (s *RepositorySuite) TestImportLogsNewestFirst() {
	now := time.Now().UTC().Truncate(time.Millisecond)
	logs := s.seedLogs(now)

	s.metrics.EXPECT().Observe("import_logs", gomock.Nil(), gomock.Any())
	got, err := s.repo.ImportLogs(s.testCtx, model.ImportLogFilter{})
	s.Require().NoError(err)
	s.Require().Len(got, 3)
	s.Equal(logs[2].Message, got[0].Message)
	s.Nil(got[0].BlockHeight)
	s.Equal(logs[1].Details, got[1].Details)
	s.Equal(logs[1].TxID, got[1].TxID)
	s.Require().NotNil(got[2].BlockHeight)
	s.Equal(int64(100), *got[2].BlockHeight)
	s.True(logs[0].Timestamp.Equal(got[2].Timestamp))
}

func (s *RepositorySuite) TestImportLogsFilters() {
	now := time.Now().UTC().Truncate(time.Millisecond)
	s.seedLogs(now)
	since := now.Add(-90 * time.Minute)

	tests := []struct {
		name   string
		filter model.ImportLogFilter
		want   []string
	}{
		{name: "level", filter: model.ImportLogFilter{Level: model.LogLevelError}, want: []string{"process block failed"}},
		{name: "block height", filter: model.ImportLogFilter{BlockHeight: int64Ptr(100)}, want: []string{"imported block"}},
		{name: "since", filter: model.ImportLogFilter{Since: &since}, want: []string{"stats refresh failed", "process block failed"}},
		{name: "paging", filter: model.ImportLogFilter{Limit: 1, Offset: 1}, want: []string{"process block failed"}},
	}
	for _, tt := range tests {
		s.Run(tt.name, func() {
			s.metrics.EXPECT().Observe("import_logs", gomock.Nil(), gomock.Any())
			got, err := s.repo.ImportLogs(s.testCtx, tt.filter)
			s.Require().NoError(err)

			messages := make([]string, 0, len(got))
			for _, l := range got {
				messages = append(messages, l.Message)
			}
			s.Equal(tt.want, messages)
		})
	}
}

func (s *RepositorySuite) TestCountImportLogs() {
	now := time.Now().UTC().Truncate(time.Millisecond)
	s.seedLogs(now)

	s.metrics.EXPECT().Observe("count_import_logs", gomock.Nil(), gomock.Any()).Times(2)

	total, err := s.repo.CountImportLogs(s.testCtx, model.ImportLogFilter{Limit: 1})
	s.Require().NoError(err)
	s.Equal(uint64(3), total)

	errorsOnly, err := s.repo.CountImportLogs(s.testCtx, model.ImportLogFilter{Level: model.LogLevelError})
	s.Require().NoError(err)
	s.Equal(uint64(1), errorsOnly)
}

func (s *RepositorySuite) TestDeleteImportLogsBefore() {
	now := time.Now().UTC().Truncate(time.Millisecond)
	s.seedLogs(now)

	s.metrics.EXPECT().Observe("delete_import_logs", gomock.Nil(), gomock.Any())
	s.Require().NoError(s.repo.DeleteImportLogsBefore(s.testCtx, now.Add(-30*time.Minute)))

	s.Equal(uint64(1), s.countRows("glyph_import_logs"))
}
