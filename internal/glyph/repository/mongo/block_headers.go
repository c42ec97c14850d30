package mongo

import (
	"context"
	"fmt"
	"time"

	"github.com/goodnatureofminers/glyphindexer/internal/glyph/model"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// InsertBlockHeader stores a header on first sight. It reports false when a
// header with the same hash already exists.
func (r *Repository) InsertBlockHeader(ctx context.Context, header model.BlockHeader) (bool, error) {
	start := time.Now()
	var err error
	defer func() {
		r.metrics.Observe("insert_block_header", err, start)
	}()

	if _, err = r.blockHeaders.InsertOne(ctx, header); err != nil {
		if mongo.IsDuplicateKeyError(err) {
			err = nil
			return false, nil
		}
		return false, fmt.Errorf("insert block header %s: %w", header.Hash, err)
	}
	return true, nil
}

// BlockHeaderByHash returns the header with hash or ErrNotFound.
func (r *Repository) BlockHeaderByHash(ctx context.Context, hash string) (model.BlockHeader, error) {
	start := time.Now()
	var err error
	defer func() {
		r.metrics.Observe("block_header_by_hash", err, start)
	}()

	var header model.BlockHeader
	if err = r.blockHeaders.FindOne(ctx, bson.M{"hash": hash}).Decode(&header); err != nil {
		err = notFound(err)
		return model.BlockHeader{}, fmt.Errorf("find block header %s: %w", hash, err)
	}
	return header, nil
}

// CanonicalBlockHeader returns the non-reorg header at height or ErrNotFound.
func (r *Repository) CanonicalBlockHeader(ctx context.Context, height int64) (model.BlockHeader, error) {
	start := time.Now()
	var err error
	defer func() {
		r.metrics.Observe("canonical_block_header", err, start)
	}()

	var header model.BlockHeader
	if err = r.blockHeaders.FindOne(ctx, bson.M{"height": height, "reorg": false}).Decode(&header); err != nil {
		err = notFound(err)
		return model.BlockHeader{}, fmt.Errorf("find block header at %d: %w", height, err)
	}
	return header, nil
}

// LatestBlockHeader returns the highest non-reorg header or ErrNotFound.
func (r *Repository) LatestBlockHeader(ctx context.Context) (model.BlockHeader, error) {
	start := time.Now()
	var err error
	defer func() {
		r.metrics.Observe("latest_block_header", err, start)
	}()

	opts := options.FindOne().SetSort(bson.D{{Key: "height", Value: -1}})
	var header model.BlockHeader
	if err = r.blockHeaders.FindOne(ctx, bson.M{"reorg": false}, opts).Decode(&header); err != nil {
		err = notFound(err)
		return model.BlockHeader{}, fmt.Errorf("find latest block header: %w", err)
	}
	return header, nil
}

// FindBlockHeaders lists headers, optionally only those at height.
func (r *Repository) FindBlockHeaders(ctx context.Context, height *int64, page model.Page) ([]model.BlockHeader, error) {
	start := time.Now()
	var err error
	defer func() {
		r.metrics.Observe("find_block_headers", err, start)
	}()

	filter := bson.M{}
	if height != nil {
		filter["height"] = *height
	}

	cursor, err := r.blockHeaders.Find(ctx, filter, findOptions(page))
	if err != nil {
		return nil, fmt.Errorf("find block headers: %w", err)
	}
	var headers []model.BlockHeader
	if err = cursor.All(ctx, &headers); err != nil {
		return nil, fmt.Errorf("decode block headers: %w", err)
	}
	return headers, nil
}

// CountBlockHeaders counts stored headers, reorged ones included.
func (r *Repository) CountBlockHeaders(ctx context.Context) (int64, error) {
	start := time.Now()
	var err error
	defer func() {
		r.metrics.Observe("count_block_headers", err, start)
	}()

	n, err := r.blockHeaders.CountDocuments(ctx, bson.M{})
	if err != nil {
		return 0, fmt.Errorf("count block headers: %w", err)
	}
	return n, nil
}

// MarkReorg flags every canonical header above height as superseded and
// returns how many were flagged.
func (r *Repository) MarkReorg(ctx context.Context, height int64) (int64, error) {
	start := time.Now()
	var err error
	defer func() {
		r.metrics.Observe("mark_reorg", err, start)
	}()

	res, err := r.blockHeaders.UpdateMany(ctx,
		bson.M{"height": bson.M{"$gt": height}, "reorg": false},
		bson.M{"$set": bson.M{"reorg": true}},
	)
	if err != nil {
		return 0, fmt.Errorf("mark reorg above %d: %w", height, err)
	}
	return res.ModifiedCount, nil
}

// RestoreBlockHeader makes the header with hash canonical at height again and
// flags every other header stored at that height.
func (r *Repository) RestoreBlockHeader(ctx context.Context, hash string, height int64) error {
	start := time.Now()
	var err error
	defer func() {
		r.metrics.Observe("restore_block_header", err, start)
	}()

	if _, err = r.blockHeaders.UpdateMany(ctx,
		bson.M{"height": height, "hash": bson.M{"$ne": hash}, "reorg": false},
		bson.M{"$set": bson.M{"reorg": true}},
	); err != nil {
		return fmt.Errorf("flag headers at %d: %w", height, err)
	}

	res, err := r.blockHeaders.UpdateOne(ctx,
		bson.M{"hash": hash},
		bson.M{"$set": bson.M{"reorg": false}},
	)
	if err != nil {
		return fmt.Errorf("restore block header %s: %w", hash, err)
	}
	if res.MatchedCount == 0 {
		err = fmt.Errorf("block header %s: %w", hash, ErrNotFound)
		return err
	}
	return nil
}
