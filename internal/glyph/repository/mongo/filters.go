package mongo

import (
	"strings"

	"github.com/goodnatureofminers/glyphindexer/internal/glyph/model"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const maxPageLimit = 1000

func glyphFilter(f model.GlyphFilter) bson.M {
	filter := bson.M{}
	if f.TokenType != "" {
		filter["tokenType"] = f.TokenType
	}
	if f.Container != "" {
		filter["container"] = f.Container
	}
	if f.Contained {
		filter["container"] = bson.M{"$nin": bson.A{"", model.UnknownRef}}
	}
	if f.IsContainer != nil {
		filter["isContainer"] = *f.IsContainer
	}
	if f.Spent != nil {
		filter["spent"] = *f.Spent
	}
	if f.Text != "" {
		filter["$text"] = bson.M{"$search": f.Text}
	}
	return filter
}

func txoFilter(f model.TxOFilter) bson.M {
	filter := bson.M{}
	if f.ContractType != "" {
		filter["contractType"] = f.ContractType
	}
	if f.Spent != nil {
		filter["spent"] = *f.Spent
	}
	if f.Height != nil {
		filter["height"] = *f.Height
	}
	if f.Address != "" {
		filter["address"] = f.Address
	}
	return filter
}

func findOptions(page model.Page) *options.FindOptions {
	opts := options.Find()
	if page.Limit > 0 {
		opts.SetLimit(min(page.Limit, maxPageLimit))
	}
	if page.Offset > 0 {
		opts.SetSkip(page.Offset)
	}
	if sort := sortSpec(page.Sort); len(sort) > 0 {
		opts.SetSort(sort)
	}
	return opts
}

func sortSpec(fields []string) bson.D {
	var sort bson.D
	for _, f := range fields {
		dir := 1
		if name, ok := strings.CutPrefix(f, "-"); ok {
			f, dir = name, -1
		}
		if f == "" {
			continue
		}
		sort = append(sort, bson.E{Key: f, Value: dir})
	}
	return sort
}
