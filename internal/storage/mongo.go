// Package storage persists consolidated profiles to MongoDB and serves the
// query layer's search, facet, and statistics reads.
package storage

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"

	"github.com/itsmudassir/expert-finder/internal/config"
	"github.com/itsmudassir/expert-finder/internal/domain"
	"github.com/itsmudassir/expert-finder/internal/logging"
)

// Store wraps the unified profile collection.
type Store struct {
	client *mongo.Client
	coll   *mongo.Collection
	logger logging.Logger
}

// Connect opens a client for the configured cluster.
func Connect(cfg config.MongoConfig) (*mongo.Client, error) {
	client, err := mongo.Connect(options.Client().ApplyURI(cfg.URI).SetTimeout(cfg.Timeout))
	if err != nil {
		return nil, fmt.Errorf("connect mongo: %w", err)
	}
	return client, nil
}

// New returns a store over the configured target collection.
func New(client *mongo.Client, cfg config.MongoConfig, logger logging.Logger) *Store {
	return &Store{
		client: client,
		coll:   client.Database(cfg.TargetDatabase).Collection(cfg.TargetCollection),
		logger: logger,
	}
}

// Replace drops the target collection and bulk-inserts the given profiles in
// batches. A failed batch aborts with an error; there is no partial-success
// state, a re-run replaces the collection wholesale. Returns the number of
// profiles written.
func (s *Store) Replace(ctx context.Context, profiles []*domain.Profile, batchSize int) (int, error) {
	if batchSize <= 0 {
		batchSize = 1000
	}

	s.logger.Info("clearing target collection", logging.String("collection", s.coll.Name()))
	if err := s.coll.Drop(ctx); err != nil {
		return 0, fmt.Errorf("drop target collection: %w", err)
	}

	written := 0
	for start := 0; start < len(profiles); start += batchSize {
		end := start + batchSize
		if end > len(profiles) {
			end = len(profiles)
		}
		docs := make([]any, 0, end-start)
		for _, p := range profiles[start:end] {
			docs = append(docs, p)
		}
		if _, err := s.coll.InsertMany(ctx, docs); err != nil {
			return written, fmt.Errorf("insert batch %d-%d: %w", start, end, err)
		}
		written += len(docs)
		s.logger.Debug("batch written",
			logging.Int("from", start),
			logging.Int("to", end),
		)
	}
	return written, nil
}

// EnsureIndexes creates the text index and the single-field indexes every
// documented query path relies on.
func (s *Store) EnsureIndexes(ctx context.Context) error {
	models := []mongo.IndexModel{
		{
			Keys: bson.D{
				{Key: "basic_info.full_name", Value: "text"},
				{Key: "professional_info.title", Value: "text"},
				{Key: "professional_info.tagline", Value: "text"},
				{Key: "biography.full", Value: "text"},
				{Key: "expertise.keywords", Value: "text"},
			},
			Options: options.Index().SetName("profile_text"),
		},
		{Keys: bson.D{{Key: "unified_id", Value: 1}}, Options: options.Index().SetUnique(true)},
		{Keys: bson.D{{Key: "expertise.primary_categories", Value: 1}}},
		{Keys: bson.D{{Key: "expertise.parent_categories", Value: 1}}},
		{Keys: bson.D{{Key: "expertise.normalized_industries.primary", Value: 1}}},
		{Keys: bson.D{{Key: "location.country", Value: 1}}},
		{Keys: bson.D{{Key: "location.city", Value: 1}}},
		{Keys: bson.D{{Key: "languages.codes", Value: 1}}},
		{Keys: bson.D{{Key: "speaking_info.formats", Value: 1}}},
		{Keys: bson.D{{Key: "speaking_info.audience_types", Value: 1}}},
		{Keys: bson.D{{Key: "speaking_info.fee.bucket", Value: 1}}},
		{Keys: bson.D{{Key: "demographics.is_dei_speaker", Value: 1}}},
		{Keys: bson.D{{Key: "metadata.profile_score", Value: -1}}},
		{Keys: bson.D{{Key: "metadata.data_quality_tier", Value: 1}}},
		{Keys: bson.D{{Key: "metadata.sources", Value: 1}}},
	}

	if _, err := s.coll.Indexes().CreateMany(ctx, models); err != nil {
		return fmt.Errorf("create indexes: %w", err)
	}
	return nil
}
