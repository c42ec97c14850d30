package mongo

import (
	"context"
	"fmt"
	"time"

	"github.com/goodnatureofminers/glyphindexer/pkg/workerpool"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

func ascending(key string) mongo.IndexModel {
	return mongo.IndexModel{Keys: bson.D{{Key: key, Value: 1}}}
}

func unique(keys bson.D) mongo.IndexModel {
	return mongo.IndexModel{Keys: keys, Options: options.Index().SetUnique(true)}
}

type collectionIndexes struct {
	coll   *mongo.Collection
	models []mongo.IndexModel
}

// EnsureIndexes creates the unique keys and query indexes of every collection.
func (r *Repository) EnsureIndexes(ctx context.Context) error {
	start := time.Now()
	var err error
	defer func() {
		r.metrics.Observe("ensure_indexes", err, start)
	}()

	indexes := []collectionIndexes{
		{r.blockHeaders, []mongo.IndexModel{
			unique(bson.D{{Key: "hash", Value: 1}}),
			ascending("height"),
		}},
		{r.txos, []mongo.IndexModel{
			unique(bson.D{{Key: "txid", Value: 1}, {Key: "vout", Value: 1}}),
			ascending("contractType"),
			ascending("spent"),
			ascending("height"),
			ascending("address"),
		}},
		{r.glyphs, []mongo.IndexModel{
			unique(bson.D{{Key: "ref", Value: 1}}),
			ascending("tokenType"),
			ascending("container"),
			ascending("isContainer"),
			ascending("spent"),
			ascending("revealOutpoint"),
			{Keys: bson.D{
				{Key: "name", Value: "text"},
				{Key: "description", Value: "text"},
				{Key: "author", Value: "text"},
			}},
		}},
	}

	err = workerpool.Process(ctx, len(indexes), indexes, func(ctx context.Context, idx collectionIndexes) error {
		if _, createErr := idx.coll.Indexes().CreateMany(ctx, idx.models); createErr != nil {
			return fmt.Errorf("create indexes on %s: %w", idx.coll.Name(), createErr)
		}
		return nil
	})
	return err
}
