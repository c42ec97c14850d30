package mongo

import (
	"context"
	"fmt"
	"time"

	"github.com/goodnatureofminers/glyphindexer/internal/glyph/model"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// ImportState returns the singleton, creating it at genesis on first access.
func (r *Repository) ImportState(ctx context.Context, genesis int64) (model.ImportState, error) {
	start := time.Now()
	var err error
	defer func() {
		r.metrics.Observe("import_state", err, start)
	}()

	opts := options.FindOneAndUpdate().
		SetUpsert(true).
		SetReturnDocument(options.After)
	update := bson.M{"$setOnInsert": bson.M{
		"lastBlockHeight": genesis,
		"lastBlockHash":   model.ZeroHash,
		"lastUpdated":     r.now(),
		"isImporting":     false,
	}}

	var state model.ImportState
	if err = r.importState.FindOneAndUpdate(ctx, bson.M{"_id": singletonID}, update, opts).Decode(&state); err != nil {
		return model.ImportState{}, fmt.Errorf("load import state: %w", err)
	}
	return state, nil
}

// SaveImportProgress records the last committed block.
func (r *Repository) SaveImportProgress(ctx context.Context, height int64, hash string) error {
	start := time.Now()
	var err error
	defer func() {
		r.metrics.Observe("save_import_progress", err, start)
	}()

	if _, err = r.importState.UpdateOne(ctx,
		bson.M{"_id": singletonID},
		bson.M{
			"$set": bson.M{
				"lastBlockHeight": height,
				"lastBlockHash":   hash,
				"lastUpdated":     r.now(),
			},
			"$setOnInsert": bson.M{"isImporting": false},
		},
		options.Update().SetUpsert(true),
	); err != nil {
		return fmt.Errorf("save import progress %d: %w", height, err)
	}
	return nil
}

// AcquireImportLease sets isImporting when it is clear and reports whether
// this call took the lease.
func (r *Repository) AcquireImportLease(ctx context.Context, genesis int64) (bool, error) {
	if _, err := r.ImportState(ctx, genesis); err != nil {
		return false, err
	}

	start := time.Now()
	var err error
	defer func() {
		r.metrics.Observe("acquire_import_lease", err, start)
	}()

	res, err := r.importState.UpdateOne(ctx,
		bson.M{"_id": singletonID, "isImporting": false},
		bson.M{"$set": bson.M{"isImporting": true, "lastUpdated": r.now()}},
	)
	if err != nil {
		return false, fmt.Errorf("acquire import lease: %w", err)
	}
	return res.ModifiedCount == 1, nil
}

// ReleaseImportLease clears isImporting unconditionally.
func (r *Repository) ReleaseImportLease(ctx context.Context) error {
	start := time.Now()
	var err error
	defer func() {
		r.metrics.Observe("release_import_lease", err, start)
	}()

	if _, err = r.importState.UpdateOne(ctx,
		bson.M{"_id": singletonID},
		bson.M{"$set": bson.M{"isImporting": false, "lastUpdated": r.now()}},
	); err != nil {
		return fmt.Errorf("release import lease: %w", err)
	}
	return nil
}
