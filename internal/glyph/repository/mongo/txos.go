package mongo

import (
	"context"
	"fmt"
	"time"

	"github.com/goodnatureofminers/glyphindexer/internal/glyph/model"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

// InsertTxO stores txo unless (txid, vout) already exists. It returns the
// stored document and whether it was created by this call.
func (r *Repository) InsertTxO(ctx context.Context, txo model.TxO) (model.TxO, bool, error) {
	start := time.Now()
	var err error
	defer func() {
		r.metrics.Observe("insert_txo", err, start)
	}()

	txo.ID = primitive.NilObjectID
	res, err := r.txos.InsertOne(ctx, txo)
	if err == nil {
		if id, ok := res.InsertedID.(primitive.ObjectID); ok {
			txo.ID = id
		}
		return txo, true, nil
	}
	if !mongo.IsDuplicateKeyError(err) {
		return model.TxO{}, false, fmt.Errorf("insert txo %s:%d: %w", txo.TxID, txo.Vout, err)
	}

	var existing model.TxO
	if err = r.txos.FindOne(ctx, outpointFilter(txo.TxID, txo.Vout)).Decode(&existing); err != nil {
		return model.TxO{}, false, fmt.Errorf("load existing txo %s:%d: %w", txo.TxID, txo.Vout, err)
	}
	return existing, false, nil
}

// TxOByOutpoint returns the TxO at (txid, vout) or ErrNotFound.
func (r *Repository) TxOByOutpoint(ctx context.Context, txid string, vout uint32) (model.TxO, error) {
	start := time.Now()
	var err error
	defer func() {
		r.metrics.Observe("txo_by_outpoint", err, start)
	}()

	var txo model.TxO
	if err = r.txos.FindOne(ctx, outpointFilter(txid, vout)).Decode(&txo); err != nil {
		err = notFound(err)
		return model.TxO{}, fmt.Errorf("find txo %s:%d: %w", txid, vout, err)
	}
	return txo, nil
}

// MarkTxOSpent flips spent from 0 to 1. It reports false when no unspent
// TxO exists at (txid, vout).
func (r *Repository) MarkTxOSpent(ctx context.Context, txid string, vout uint32) (bool, error) {
	start := time.Now()
	var err error
	defer func() {
		r.metrics.Observe("mark_txo_spent", err, start)
	}()

	filter := outpointFilter(txid, vout)
	filter["spent"] = 0
	res, err := r.txos.UpdateOne(ctx, filter, bson.M{"$set": bson.M{"spent": 1}})
	if err != nil {
		return false, fmt.Errorf("mark txo %s:%d spent: %w", txid, vout, err)
	}
	return res.ModifiedCount == 1, nil
}

// FindTxOs lists TxOs matching filter.
func (r *Repository) FindTxOs(ctx context.Context, filter model.TxOFilter, page model.Page) ([]model.TxO, error) {
	start := time.Now()
	var err error
	defer func() {
		r.metrics.Observe("find_txos", err, start)
	}()

	cursor, err := r.txos.Find(ctx, txoFilter(filter), findOptions(page))
	if err != nil {
		return nil, fmt.Errorf("find txos: %w", err)
	}
	var txos []model.TxO
	if err = cursor.All(ctx, &txos); err != nil {
		return nil, fmt.Errorf("decode txos: %w", err)
	}
	return txos, nil
}

// CountTxOs counts TxOs matching filter.
func (r *Repository) CountTxOs(ctx context.Context, filter model.TxOFilter) (int64, error) {
	start := time.Now()
	var err error
	defer func() {
		r.metrics.Observe("count_txos", err, start)
	}()

	n, err := r.txos.CountDocuments(ctx, txoFilter(filter))
	if err != nil {
		return 0, fmt.Errorf("count txos: %w", err)
	}
	return n, nil
}

func outpointFilter(txid string, vout uint32) bson.M {
	return bson.M{"txid": txid, "vout": vout}
}
