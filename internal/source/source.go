// Package source reads raw per-source documents from the scrape databases.
// Sources share no schema; records are handed downstream as loosely-typed
// maps and every field access there is defensive.
package source

import (
	"context"
	"fmt"
	"strings"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"

	"github.com/itsmudassir/expert-finder/internal/config"
	"github.com/itsmudassir/expert-finder/internal/domain"
)

// Reader streams the raw documents of one configured source.
type Reader struct {
	client *mongo.Client
	cfg    config.SourceConfig
}

// NewReaders builds a reader per configured source over a shared client.
func NewReaders(client *mongo.Client, sources []config.SourceConfig) []*Reader {
	readers := make([]*Reader, 0, len(sources))
	for _, src := range sources {
		readers = append(readers, &Reader{client: client, cfg: src})
	}
	return readers
}

// Name returns the source name used in source_ids and metadata.sources.
func (r *Reader) Name() string { return r.cfg.Name }

// Each invokes fn for every document across the source's collections.
// Collection names matching the llm-parsed quality tiers (cat_1 .. cat_4)
// stamp the record's data_quality_tier when the document carries none.
func (r *Reader) Each(ctx context.Context, fn func(domain.Record) error) error {
	db := r.client.Database(r.cfg.Database)

	for _, name := range r.cfg.Collections {
		cursor, err := db.Collection(name).Find(ctx, bson.D{})
		if err != nil {
			return fmt.Errorf("source %s: find %s.%s: %w", r.cfg.Name, r.cfg.Database, name, err)
		}

		for cursor.Next(ctx) {
			var raw bson.M
			if err := cursor.Decode(&raw); err != nil {
				cursor.Close(ctx)
				return fmt.Errorf("source %s: decode %s: %w", r.cfg.Name, name, err)
			}
			rec := domain.Record(raw)
			if strings.HasPrefix(name, "cat_") && rec.String("data_quality_tier") == "" {
				rec["data_quality_tier"] = name
			}
			if err := fn(rec); err != nil {
				cursor.Close(ctx)
				return err
			}
		}
		if err := cursor.Err(); err != nil {
			cursor.Close(ctx)
			return fmt.Errorf("source %s: cursor %s: %w", r.cfg.Name, name, err)
		}
		if err := cursor.Close(ctx); err != nil {
			return fmt.Errorf("source %s: close cursor %s: %w", r.cfg.Name, name, err)
		}
	}
	return nil
}
