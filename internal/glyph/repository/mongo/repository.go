// Package mongo is the MongoDB persistence gateway for block headers,
// transaction outputs, glyphs, import state and stats.
package mongo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/goodnatureofminers/glyphindexer/internal/glyph/model"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"
)

// Collection names.
const (
	BlockHeadersCollection = "blockheaders"
	TxOsCollection         = "txos"
	GlyphsCollection       = "glyphs"
	ImportStateCollection  = "importstate"
	StatsCollection        = "stats"
)

// singletonID keys the importstate and stats documents.
const singletonID = "singleton"

// ErrNotFound is returned when a lookup by key matches nothing.
var ErrNotFound = model.ErrNotFound

// Repository wraps the collections of one database.
type Repository struct {
	blockHeaders *mongo.Collection
	txos         *mongo.Collection
	glyphs       *mongo.Collection
	importState  *mongo.Collection
	stats        *mongo.Collection
	metrics      Metrics
	now          func() time.Time
}

// Connect opens a client and verifies the primary is reachable.
func Connect(ctx context.Context, uri string) (*mongo.Client, error) {
	if uri == "" {
		return nil, errors.New("mongodb uri is required")
	}

	client, err := mongo.Connect(ctx, options.Client().ApplyURI(uri))
	if err != nil {
		return nil, fmt.Errorf("connect mongodb: %w", err)
	}
	if err := client.Ping(ctx, readpref.Primary()); err != nil {
		_ = client.Disconnect(context.Background())
		return nil, fmt.Errorf("ping mongodb: %w", err)
	}
	return client, nil
}

// NewRepository binds the repository to database on an existing client.
func NewRepository(client *mongo.Client, database string, metrics Metrics) (*Repository, error) {
	if client == nil {
		return nil, errors.New("mongodb client is required")
	}
	if database == "" {
		return nil, errors.New("mongodb database is required")
	}

	db := client.Database(database)
	return &Repository{
		blockHeaders: db.Collection(BlockHeadersCollection),
		txos:         db.Collection(TxOsCollection),
		glyphs:       db.Collection(GlyphsCollection),
		importState:  db.Collection(ImportStateCollection),
		stats:        db.Collection(StatsCollection),
		metrics:      metrics,
		now:          func() time.Time { return time.Now().UTC() },
	}, nil
}

func notFound(err error) error {
	if errors.Is(err, mongo.ErrNoDocuments) {
		return ErrNotFound
	}
	return err
}
