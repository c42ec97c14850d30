package mongo

import (
	"context"
	"fmt"
	"time"

	"github.com/goodnatureofminers/glyphindexer/internal/glyph/model"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// GlyphByRef returns the glyph keyed by ref or ErrNotFound.
func (r *Repository) GlyphByRef(ctx context.Context, ref string) (model.Glyph, error) {
	start := time.Now()
	var err error
	defer func() {
		r.metrics.Observe("glyph_by_ref", err, start)
	}()

	var g model.Glyph
	if err = r.glyphs.FindOne(ctx, bson.M{"ref": ref}).Decode(&g); err != nil {
		err = notFound(err)
		return model.Glyph{}, fmt.Errorf("find glyph %s: %w", ref, err)
	}
	return g, nil
}

// GlyphByRevealOutpoint returns the glyph whose current outpoint is
// outpoint ("txid:vout") or ErrNotFound.
func (r *Repository) GlyphByRevealOutpoint(ctx context.Context, outpoint string) (model.Glyph, error) {
	start := time.Now()
	var err error
	defer func() {
		r.metrics.Observe("glyph_by_reveal_outpoint", err, start)
	}()

	var g model.Glyph
	if err = r.glyphs.FindOne(ctx, bson.M{"revealOutpoint": outpoint}).Decode(&g); err != nil {
		err = notFound(err)
		return model.Glyph{}, fmt.Errorf("find glyph at %s: %w", outpoint, err)
	}
	return g, nil
}

// FindOrCreateGlyph inserts g when no glyph with g.Ref exists and returns the
// stored document. Concurrent callers racing on the same ref converge on a
// single document through the unique ref index.
func (r *Repository) FindOrCreateGlyph(ctx context.Context, g model.Glyph) (model.Glyph, bool, error) {
	start := time.Now()
	var err error
	defer func() {
		r.metrics.Observe("find_or_create_glyph", err, start)
	}()

	g.ID = primitive.NilObjectID
	opts := options.Update().SetUpsert(true)
	res, err := r.glyphs.UpdateOne(ctx, bson.M{"ref": g.Ref}, bson.M{"$setOnInsert": g}, opts)
	if err != nil && mongo.IsDuplicateKeyError(err) {
		res, err = r.glyphs.UpdateOne(ctx, bson.M{"ref": g.Ref}, bson.M{"$setOnInsert": g}, opts)
	}
	if err != nil {
		return model.Glyph{}, false, fmt.Errorf("upsert glyph %s: %w", g.Ref, err)
	}

	var stored model.Glyph
	if err = r.glyphs.FindOne(ctx, bson.M{"ref": g.Ref}).Decode(&stored); err != nil {
		return model.Glyph{}, false, fmt.Errorf("load glyph %s: %w", g.Ref, err)
	}
	return stored, res.UpsertedCount == 1, nil
}

// UpdateGlyph moves a glyph to a new outpoint and, when upd.Metadata is set,
// rewrites its derived metadata. The ref and membership list never change here.
func (r *Repository) UpdateGlyph(ctx context.Context, ref string, upd model.GlyphUpdate) error {
	start := time.Now()
	var err error
	defer func() {
		r.metrics.Observe("update_glyph", err, start)
	}()

	set := bson.M{
		"revealOutpoint": upd.RevealOutpoint,
		"lastTxoId":      upd.LastTxoID,
		"height":         upd.Height,
		"timestamp":      upd.Timestamp,
		"fresh":          0,
	}
	unset := bson.M{}
	if m := upd.Metadata; m != nil {
		set["tokenType"] = m.TokenType
		set["p"] = m.Protocols
		set["type"] = m.Type
		set["name"] = m.Name
		set["description"] = m.Description
		set["author"] = m.Author
		set["container"] = m.Container
		set["attrs"] = m.Attrs
		set["immutable"] = m.Immutable
		optional := map[string]any{
			"embed":    m.Embed,
			"remote":   m.Remote,
			"ticker":   m.Ticker,
			"location": m.Location,
		}
		for k, v := range optional {
			if isEmpty(v) {
				unset[k] = ""
			} else {
				set[k] = v
			}
		}
	}

	update := bson.M{"$set": set}
	if len(unset) > 0 {
		update["$unset"] = unset
	}
	res, err := r.glyphs.UpdateOne(ctx, bson.M{"ref": ref}, update)
	if err != nil {
		return fmt.Errorf("update glyph %s: %w", ref, err)
	}
	if res.MatchedCount == 0 {
		err = ErrNotFound
		return fmt.Errorf("update glyph %s: %w", ref, err)
	}
	return nil
}

// SetContainerFlag marks the glyph as a container.
func (r *Repository) SetContainerFlag(ctx context.Context, ref string) error {
	start := time.Now()
	var err error
	defer func() {
		r.metrics.Observe("set_container_flag", err, start)
	}()

	if _, err = r.glyphs.UpdateOne(ctx, bson.M{"ref": ref}, bson.M{"$set": bson.M{"isContainer": true}}); err != nil {
		return fmt.Errorf("set container flag on %s: %w", ref, err)
	}
	return nil
}

// MarkGlyphSpent flips spent from 0 to 1 and reports whether it did.
func (r *Repository) MarkGlyphSpent(ctx context.Context, ref string) (bool, error) {
	start := time.Now()
	var err error
	defer func() {
		r.metrics.Observe("mark_glyph_spent", err, start)
	}()

	res, err := r.glyphs.UpdateOne(ctx,
		bson.M{"ref": ref, "spent": 0},
		bson.M{"$set": bson.M{"spent": 1}},
	)
	if err != nil {
		return false, fmt.Errorf("mark glyph %s spent: %w", ref, err)
	}
	return res.ModifiedCount == 1, nil
}

// FindGlyphs lists glyphs matching filter.
func (r *Repository) FindGlyphs(ctx context.Context, filter model.GlyphFilter, page model.Page) ([]model.Glyph, error) {
	start := time.Now()
	var err error
	defer func() {
		r.metrics.Observe("find_glyphs", err, start)
	}()

	cursor, err := r.glyphs.Find(ctx, glyphFilter(filter), findOptions(page))
	if err != nil {
		return nil, fmt.Errorf("find glyphs: %w", err)
	}
	var glyphs []model.Glyph
	if err = cursor.All(ctx, &glyphs); err != nil {
		return nil, fmt.Errorf("decode glyphs: %w", err)
	}
	return glyphs, nil
}

// CountGlyphs counts glyphs matching filter.
func (r *Repository) CountGlyphs(ctx context.Context, filter model.GlyphFilter) (int64, error) {
	start := time.Now()
	var err error
	defer func() {
		r.metrics.Observe("count_glyphs", err, start)
	}()

	n, err := r.glyphs.CountDocuments(ctx, glyphFilter(filter))
	if err != nil {
		return 0, fmt.Errorf("count glyphs: %w", err)
	}
	return n, nil
}

func isEmpty(v any) bool {
	switch x := v.(type) {
	case *model.Embed:
		return x == nil
	case *model.Remote:
		return x == nil
	case string:
		return x == ""
	default:
		return v == nil
	}
}
