package mongo

import (
	"context"
	"fmt"
	"time"

	"github.com/goodnatureofminers/glyphindexer/internal/glyph/model"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// SaveStats replaces the stats singleton.
func (r *Repository) SaveStats(ctx context.Context, stats model.Stats) error {
	start := time.Now()
	var err error
	defer func() {
		r.metrics.Observe("save_stats", err, start)
	}()

	if _, err = r.stats.ReplaceOne(ctx, bson.M{"_id": singletonID}, stats, options.Replace().SetUpsert(true)); err != nil {
		return fmt.Errorf("save stats: %w", err)
	}
	return nil
}

// LoadStats returns the stored stats or ErrNotFound before the first roll-up.
func (r *Repository) LoadStats(ctx context.Context) (model.Stats, error) {
	start := time.Now()
	var err error
	defer func() {
		r.metrics.Observe("load_stats", err, start)
	}()

	var stats model.Stats
	if err = r.stats.FindOne(ctx, bson.M{"_id": singletonID}).Decode(&stats); err != nil {
		err = notFound(err)
		return model.Stats{}, fmt.Errorf("load stats: %w", err)
	}
	return stats, nil
}
