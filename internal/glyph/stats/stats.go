// Package stats maintains the denormalized collection counts.
package stats

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/goodnatureofminers/glyphindexer/internal/glyph/model"
	"github.com/goodnatureofminers/glyphindexer/pkg/workerpool"
	"go.uber.org/zap"
)

const countWorkers = 4

// Service recomputes stats wholesale and serves them through an optional cache.
type Service struct {
	store  Store
	cache  Cache
	logger *zap.Logger
	now    func() time.Time
}

// New builds a Service. cache may be nil.
func New(store Store, cache Cache, logger *zap.Logger) (*Service, error) {
	if store == nil {
		return nil, errors.New("stats store is required")
	}
	return &Service{
		store:  store,
		cache:  cache,
		logger: logger.Named("stats"),
		now:    func() time.Time { return time.Now().UTC() },
	}, nil
}

type count struct {
	name string
	run  func(context.Context) (int64, error)
}

// Refresh recounts every collection, stores the result and primes the cache.
func (s *Service) Refresh(ctx context.Context) (model.Stats, error) {
	isContainer, notContainer := true, false
	counts := []count{
		{"glyphs.nft", s.glyphs(model.GlyphFilter{TokenType: model.TokenNFT})},
		{"glyphs.ft", s.glyphs(model.GlyphFilter{TokenType: model.TokenFT})},
		{"glyphs.dat", s.glyphs(model.GlyphFilter{TokenType: model.TokenDAT})},
		{"glyphs.users", s.glyphs(model.GlyphFilter{TokenType: model.TokenUser})},
		{"glyphs.containers", s.glyphs(model.GlyphFilter{IsContainer: &isContainer})},
		{"glyphs.contained", s.glyphs(model.GlyphFilter{Contained: true, IsContainer: &notContainer})},
		{"txos.rxd", s.txos(model.ContractRXD)},
		{"txos.nft", s.txos(model.ContractNFT)},
		{"txos.ft", s.txos(model.ContractFT)},
		{"blocks", s.store.CountBlockHeaders},
	}

	n, err := workerpool.Map(ctx, countWorkers, counts, func(ctx context.Context, c count) (int64, error) {
		v, err := c.run(ctx)
		if err != nil {
			return 0, fmt.Errorf("count %s: %w", c.name, err)
		}
		return v, nil
	})
	if err != nil {
		return model.Stats{}, err
	}

	stats := model.Stats{
		Glyphs: model.GlyphStats{
			NFT:            n[0],
			FT:             n[1],
			DAT:            n[2],
			Users:          n[3],
			Containers:     n[4],
			ContainedItems: n[5],
		},
		TxOs: model.TxOStats{
			RXD: n[6],
			NFT: n[7],
			FT:  n[8],
		},
		Blocks:      model.BlockStats{Count: n[9]},
		LastUpdated: s.now(),
	}
	stats.Glyphs.Total = stats.Glyphs.NFT + stats.Glyphs.FT + stats.Glyphs.DAT + stats.Glyphs.Containers + stats.Glyphs.Users
	stats.TxOs.Total = stats.TxOs.RXD + stats.TxOs.NFT + stats.TxOs.FT

	latest, err := s.store.LatestBlockHeader(ctx)
	switch {
	case err == nil:
		stats.Blocks.Latest = &model.LatestBlock{Hash: latest.Hash, Height: latest.Height, Timestamp: latest.Timestamp}
	case !errors.Is(err, model.ErrNotFound):
		return model.Stats{}, fmt.Errorf("latest block header: %w", err)
	}

	if err = s.store.SaveStats(ctx, stats); err != nil {
		return model.Stats{}, fmt.Errorf("save stats: %w", err)
	}
	s.prime(ctx, stats)

	s.logger.Debug("stats refreshed",
		zap.Int64("glyphs", stats.Glyphs.Total),
		zap.Int64("txos", stats.TxOs.Total),
		zap.Int64("blocks", stats.Blocks.Count),
	)
	return stats, nil
}

// Stats returns the cached stats, falling back to the stored document and
// computing it when none exists yet.
func (s *Service) Stats(ctx context.Context) (model.Stats, error) {
	if s.cache != nil {
		cached, ok, err := s.cache.Get(ctx)
		if err != nil {
			s.logger.Warn("stats cache read failed", zap.Error(err))
		} else if ok {
			return cached, nil
		}
	}

	stats, err := s.store.LoadStats(ctx)
	if errors.Is(err, model.ErrNotFound) {
		return s.Refresh(ctx)
	}
	if err != nil {
		return model.Stats{}, fmt.Errorf("load stats: %w", err)
	}
	s.prime(ctx, stats)
	return stats, nil
}

func (s *Service) prime(ctx context.Context, stats model.Stats) {
	if s.cache == nil {
		return
	}
	if err := s.cache.Set(ctx, stats); err != nil {
		s.logger.Warn("stats cache write failed", zap.Error(err))
	}
}

func (s *Service) glyphs(filter model.GlyphFilter) func(context.Context) (int64, error) {
	return func(ctx context.Context) (int64, error) {
		return s.store.CountGlyphs(ctx, filter)
	}
}

func (s *Service) txos(contract model.ContractType) func(context.Context) (int64, error) {
	return func(ctx context.Context) (int64, error) {
		return s.store.CountTxOs(ctx, model.TxOFilter{ContractType: contract})
	}
}
