package processor

import (
	"context"
	"fmt"
	"slices"
	"sync"

	"github.com/goodnatureofminers/glyphindexer/internal/glyph/model"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// memStore mirrors the document semantics of the mongo repository closely
// enough to replay blocks against it.
type memStore struct {
	mu      sync.Mutex
	headers map[string]model.BlockHeader
	txos    map[string]model.TxO
	glyphs  map[string]model.Glyph
}

func newMemStore() *memStore {
	return &memStore{
		headers: map[string]model.BlockHeader{},
		txos:    map[string]model.TxO{},
		glyphs:  map[string]model.Glyph{},
	}
}

func (s *memStore) BlockHeaderByHash(_ context.Context, hash string) (model.BlockHeader, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	h, ok := s.headers[hash]
	if !ok {
		return model.BlockHeader{}, fmt.Errorf("header %s: %w", hash, model.ErrNotFound)
	}
	return h, nil
}

func (s *memStore) InsertBlockHeader(_ context.Context, header model.BlockHeader) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.headers[header.Hash]; ok {
		return false, nil
	}
	s.headers[header.Hash] = header
	return true, nil
}

func (s *memStore) RestoreBlockHeader(_ context.Context, hash string, height int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for k, h := range s.headers {
		if h.Height == height {
			h.Reorg = h.Hash != hash
			s.headers[k] = h
		}
	}
	return nil
}

func (s *memStore) InsertTxO(_ context.Context, txo model.TxO) (model.TxO, bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	key := outpointString(txo.TxID, txo.Vout)
	if existing, ok := s.txos[key]; ok {
		return existing, false, nil
	}
	txo.ID = primitive.NewObjectID()
	s.txos[key] = txo
	return txo, true, nil
}

func (s *memStore) MarkTxOSpent(_ context.Context, txid string, vout uint32) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	key := outpointString(txid, vout)
	txo, ok := s.txos[key]
	if !ok || txo.Spent == 1 {
		return false, nil
	}
	txo.Spent = 1
	s.txos[key] = txo
	return true, nil
}

func (s *memStore) GlyphByRef(_ context.Context, ref string) (model.Glyph, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	g, ok := s.glyphs[ref]
	if !ok {
		return model.Glyph{}, fmt.Errorf("glyph %s: %w", ref, model.ErrNotFound)
	}
	return clone(g), nil
}

func (s *memStore) GlyphByRevealOutpoint(_ context.Context, outpoint string) (model.Glyph, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, g := range s.glyphs {
		if g.RevealOutpoint == outpoint {
			return clone(g), nil
		}
	}
	return model.Glyph{}, fmt.Errorf("glyph at %s: %w", outpoint, model.ErrNotFound)
}

func (s *memStore) FindOrCreateGlyph(_ context.Context, g model.Glyph) (model.Glyph, bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if existing, ok := s.glyphs[g.Ref]; ok {
		return clone(existing), false, nil
	}
	g.ID = primitive.NewObjectID()
	s.glyphs[g.Ref] = clone(g)
	return g, true, nil
}

func (s *memStore) UpdateGlyph(_ context.Context, ref string, upd model.GlyphUpdate) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	g, ok := s.glyphs[ref]
	if !ok {
		return fmt.Errorf("update glyph %s: %w", ref, model.ErrNotFound)
	}
	g.RevealOutpoint = upd.RevealOutpoint
	g.LastTxoID = upd.LastTxoID
	g.Height = upd.Height
	g.Timestamp = upd.Timestamp
	g.Fresh = 0
	if m := upd.Metadata; m != nil {
		g.TokenType = m.TokenType
		g.Protocols = m.Protocols
		g.Type = m.Type
		g.Name = m.Name
		g.Description = m.Description
		g.Author = m.Author
		g.Container = m.Container
		g.Attrs = m.Attrs
		g.Immutable = m.Immutable
		g.Embed = m.Embed
		g.Remote = m.Remote
		g.Ticker = m.Ticker
		g.Location = m.Location
	}
	s.glyphs[ref] = g
	return nil
}

func (s *memStore) SetContainerFlag(_ context.Context, ref string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if g, ok := s.glyphs[ref]; ok {
		g.IsContainer = true
		s.glyphs[ref] = g
	}
	return nil
}

func (s *memStore) MarkGlyphSpent(_ context.Context, ref string) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	g, ok := s.glyphs[ref]
	if !ok || g.Spent == 1 {
		return false, nil
	}
	g.Spent = 1
	s.glyphs[ref] = g
	return true, nil
}

func (s *memStore) AddToContainer(_ context.Context, container, item string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	c, ok := s.glyphs[container]
	if !ok {
		return fmt.Errorf("container %s: %w", container, model.ErrNotFound)
	}
	if !slices.Contains(c.ContainerItems, item) {
		c.ContainerItems = append(c.ContainerItems, item)
		s.glyphs[container] = c
	}
	if g, ok := s.glyphs[item]; ok {
		g.Container = container
		s.glyphs[item] = g
	}
	return nil
}

func (s *memStore) RemoveFromContainer(_ context.Context, container, item string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if c, ok := s.glyphs[container]; ok {
		c.ContainerItems = slices.DeleteFunc(c.ContainerItems, func(r string) bool { return r == item })
		s.glyphs[container] = c
	}
	if g, ok := s.glyphs[item]; ok && g.Container == container {
		g.Container = model.UnknownRef
		s.glyphs[item] = g
	}
	return nil
}

func (s *memStore) glyph(ref string) (model.Glyph, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	g, ok := s.glyphs[ref]
	return clone(g), ok
}

func (s *memStore) txo(txid string, vout uint32) (model.TxO, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	t, ok := s.txos[outpointString(txid, vout)]
	return t, ok
}

// snapshot copies the state for before/after comparison.
func (s *memStore) snapshot() (map[string]model.BlockHeader, map[string]model.TxO, map[string]model.Glyph) {
	s.mu.Lock()
	defer s.mu.Unlock()
	headers := make(map[string]model.BlockHeader, len(s.headers))
	for k, v := range s.headers {
		headers[k] = v
	}
	txos := make(map[string]model.TxO, len(s.txos))
	for k, v := range s.txos {
		txos[k] = v
	}
	glyphs := make(map[string]model.Glyph, len(s.glyphs))
	for k, v := range s.glyphs {
		glyphs[k] = clone(v)
	}
	return headers, txos, glyphs
}

func clone(g model.Glyph) model.Glyph {
	g.ContainerItems = slices.Clone(g.ContainerItems)
	return g
}
