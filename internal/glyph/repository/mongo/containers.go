package mongo

import (
	"context"
	"fmt"
	"time"

	"github.com/goodnatureofminers/glyphindexer/internal/glyph/model"
	"go.mongodb.org/mongo-driver/bson"
)

// AddToContainer records item as a member of container on both documents:
// the item ref joins the container's containerItems set and the item's
// container field names the container. Both writes are idempotent.
func (r *Repository) AddToContainer(ctx context.Context, container, item string) error {
	start := time.Now()
	var err error
	defer func() {
		r.metrics.Observe("add_to_container", err, start)
	}()

	res, err := r.glyphs.UpdateOne(ctx,
		bson.M{"ref": container},
		bson.M{"$addToSet": bson.M{"containerItems": item}},
	)
	if err != nil {
		return fmt.Errorf("add %s to container %s: %w", item, container, err)
	}
	if res.MatchedCount == 0 {
		err = ErrNotFound
		return fmt.Errorf("add %s to container %s: %w", item, container, err)
	}

	if _, err = r.glyphs.UpdateOne(ctx,
		bson.M{"ref": item},
		bson.M{"$set": bson.M{"container": container}},
	); err != nil {
		return fmt.Errorf("set container of %s: %w", item, err)
	}
	return nil
}

// RemoveFromContainer reverses AddToContainer. The item's container field is
// reset only while it still names container.
func (r *Repository) RemoveFromContainer(ctx context.Context, container, item string) error {
	start := time.Now()
	var err error
	defer func() {
		r.metrics.Observe("remove_from_container", err, start)
	}()

	if _, err = r.glyphs.UpdateOne(ctx,
		bson.M{"ref": container},
		bson.M{"$pull": bson.M{"containerItems": item}},
	); err != nil {
		return fmt.Errorf("remove %s from container %s: %w", item, container, err)
	}

	if _, err = r.glyphs.UpdateOne(ctx,
		bson.M{"ref": item, "container": container},
		bson.M{"$set": bson.M{"container": model.UnknownRef}},
	); err != nil {
		return fmt.Errorf("reset container of %s: %w", item, err)
	}
	return nil
}
