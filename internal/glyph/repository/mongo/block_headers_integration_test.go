package mongo

import (
	"errors"
	"time"

	"github.com/goodnatureofminers/glyphindexer/internal/glyph/model"
)

func (s *RepositorySuite) TestInsertBlockHeaderIsIdempotent() {
	header := model.BlockHeader{
		Hash:      txid("1"),
		Height:    101,
		Timestamp: time.Unix(1700000000, 0).UTC(),
		Buffer:    make([]byte, 80),
	}

	created, err := s.repo.InsertBlockHeader(s.testCtx, header)
	s.Require().NoError(err)
	s.True(created)

	created, err = s.repo.InsertBlockHeader(s.testCtx, header)
	s.Require().NoError(err)
	s.False(created)

	n, err := s.repo.CountBlockHeaders(s.testCtx)
	s.Require().NoError(err)
	s.Equal(int64(1), n)

	got, err := s.repo.BlockHeaderByHash(s.testCtx, header.Hash)
	s.Require().NoError(err)
	s.Equal(header, got)
}

func (s *RepositorySuite) TestBlockHeaderByHashNotFound() {
	_, err := s.repo.BlockHeaderByHash(s.testCtx, txid("f"))
	s.True(errors.Is(err, ErrNotFound))
}

func (s *RepositorySuite) TestMarkReorgAndLatest() {
	for i, c := range []string{"1", "2", "3"} {
		_, err := s.repo.InsertBlockHeader(s.testCtx, model.BlockHeader{
			Hash:      txid(c),
			Height:    int64(100 + i),
			Timestamp: time.Unix(int64(1700000000+i), 0).UTC(),
		})
		s.Require().NoError(err)
	}

	flagged, err := s.repo.MarkReorg(s.testCtx, 100)
	s.Require().NoError(err)
	s.Equal(int64(2), flagged)

	latest, err := s.repo.LatestBlockHeader(s.testCtx)
	s.Require().NoError(err)
	s.Equal(txid("1"), latest.Hash)

	height := int64(102)
	headers, err := s.repo.FindBlockHeaders(s.testCtx, &height, model.Page{})
	s.Require().NoError(err)
	s.Require().Len(headers, 1)
	s.True(headers[0].Reorg)
}

func (s *RepositorySuite) TestCanonicalBlockHeader() {
	for _, h := range []model.BlockHeader{
		{Hash: txid("a"), Height: 200, Reorg: true},
		{Hash: txid("b"), Height: 200},
	} {
		_, err := s.repo.InsertBlockHeader(s.testCtx, h)
		s.Require().NoError(err)
	}

	header, err := s.repo.CanonicalBlockHeader(s.testCtx, 200)
	s.Require().NoError(err)
	s.Equal(txid("b"), header.Hash)

	_, err = s.repo.CanonicalBlockHeader(s.testCtx, 201)
	s.True(errors.Is(err, ErrNotFound))
}

func (s *RepositorySuite) TestRestoreBlockHeader() {
	for _, h := range []model.BlockHeader{
		{Hash: txid("a"), Height: 300, Reorg: true},
		{Hash: txid("b"), Height: 300},
		{Hash: txid("c"), Height: 301},
	} {
		_, err := s.repo.InsertBlockHeader(s.testCtx, h)
		s.Require().NoError(err)
	}

	s.Require().NoError(s.repo.RestoreBlockHeader(s.testCtx, txid("a"), 300))

	header, err := s.repo.CanonicalBlockHeader(s.testCtx, 300)
	s.Require().NoError(err)
	s.Equal(txid("a"), header.Hash)

	fork, err := s.repo.BlockHeaderByHash(s.testCtx, txid("b"))
	s.Require().NoError(err)
	s.True(fork.Reorg)

	next, err := s.repo.BlockHeaderByHash(s.testCtx, txid("c"))
	s.Require().NoError(err)
	s.False(next.Reorg)

	err = s.repo.RestoreBlockHeader(s.testCtx, txid("d"), 300)
	s.True(errors.Is(err, ErrNotFound))
}
