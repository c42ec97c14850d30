package mongo

import (
	"errors"

	"github.com/goodnatureofminers/glyphindexer/internal/glyph/model"
)

func (s *RepositorySuite) TestImportStateCreatedAtGenesis() {
	state, err := s.repo.ImportState(s.testCtx, 315114)
	s.Require().NoError(err)
	s.Equal(int64(315114), state.LastBlockHeight)
	s.Equal(model.ZeroHash, state.LastBlockHash)
	s.False(state.IsImporting)

	state, err = s.repo.ImportState(s.testCtx, 0)
	s.Require().NoError(err)
	s.Equal(int64(315114), state.LastBlockHeight)
}

func (s *RepositorySuite) TestImportLease() {
	ok, err := s.repo.AcquireImportLease(s.testCtx, 0)
	s.Require().NoError(err)
	s.True(ok)

	ok, err = s.repo.AcquireImportLease(s.testCtx, 0)
	s.Require().NoError(err)
	s.False(ok)

	s.Require().NoError(s.repo.ReleaseImportLease(s.testCtx))

	ok, err = s.repo.AcquireImportLease(s.testCtx, 0)
	s.Require().NoError(err)
	s.True(ok)
}

func (s *RepositorySuite) TestSaveImportProgress() {
	s.Require().NoError(s.repo.SaveImportProgress(s.testCtx, 110, txid("e")))

	state, err := s.repo.ImportState(s.testCtx, 0)
	s.Require().NoError(err)
	s.Equal(int64(110), state.LastBlockHeight)
	s.Equal(txid("e"), state.LastBlockHash)
	s.False(state.IsImporting)
}

func (s *RepositorySuite) TestStatsRoundTrip() {
	_, err := s.repo.LoadStats(s.testCtx)
	s.True(errors.Is(err, ErrNotFound))

	stats := model.Stats{
		Glyphs: model.GlyphStats{Total: 3, NFT: 2, FT: 1},
		TxOs:   model.TxOStats{Total: 5},
		Blocks: model.BlockStats{Count: 7},
	}
	s.Require().NoError(s.repo.SaveStats(s.testCtx, stats))
	s.Require().NoError(s.repo.SaveStats(s.testCtx, stats))

	got, err := s.repo.LoadStats(s.testCtx)
	s.Require().NoError(err)
	s.Equal(stats.Glyphs, got.Glyphs)
	s.Equal(stats.Blocks.Count, got.Blocks.Count)
}
