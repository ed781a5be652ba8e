package storage

import (
	"context"
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"

	"github.com/itsmudassir/expert-finder/internal/domain"
)

// ErrNotFound marks a lookup for an unknown unified id.
var ErrNotFound = errors.New("storage: profile not found")

const (
	defaultPageSize = 20
	maxPageSize     = 100
	facetLimit      = 20
)

// Query carries the speaker-search filters. Zero values mean "no filter".
type Query struct {
	Text           string
	Category       string
	ParentCategory string
	Industry       string
	Country        string
	City           string
	Language       string
	Format         string
	Audience       string
	FeeBucket      string
	DEIOnly        bool

	MinProfileScore    int
	MinExperienceScore int

	Sort     string // profile_score (default), rating, name
	Page     int
	PageSize int
}

// FacetBucket is one value/count pair in a facet.
type FacetBucket struct {
	Value string `bson:"_id"   json:"value"`
	Count int    `bson:"count" json:"count"`
}

// Facets summarizes the distribution of the main browsable fields.
type Facets struct {
	Categories       []FacetBucket `bson:"categories"        json:"categories"`
	ParentCategories []FacetBucket `bson:"parent_categories" json:"parent_categories"`
	Industries       []FacetBucket `bson:"industries"        json:"industries"`
	Countries        []FacetBucket `bson:"countries"         json:"countries"`
	Formats          []FacetBucket `bson:"formats"           json:"formats"`
	Languages        []FacetBucket `bson:"languages"         json:"languages"`
	FeeBuckets       []FacetBucket `bson:"fee_buckets"       json:"fee_buckets"`
}

// Stats summarizes the whole collection.
type Stats struct {
	TotalProfiles   int64         `json:"total_profiles"`
	BySource        []FacetBucket `json:"by_source"`
	AvgProfileScore float64       `json:"avg_profile_score"`
	AvgCompleteness float64       `json:"avg_completeness_score"`
	AvgExperience   float64       `json:"avg_experience_score"`
}

// Search returns one page of matching profiles plus the total match count.
func (s *Store) Search(ctx context.Context, q Query) ([]domain.Profile, int64, error) {
	filter := q.filter()

	total, err := s.coll.CountDocuments(ctx, filter)
	if err != nil {
		return nil, 0, fmt.Errorf("count profiles: %w", err)
	}

	page, size := q.Page, q.PageSize
	if page < 1 {
		page = 1
	}
	if size <= 0 {
		size = defaultPageSize
	}
	if size > maxPageSize {
		size = maxPageSize
	}

	opts := options.Find().
		SetSort(q.sort()).
		SetSkip(int64(page-1) * int64(size)).
		SetLimit(int64(size))

	cursor, err := s.coll.Find(ctx, filter, opts)
	if err != nil {
		return nil, 0, fmt.Errorf("find profiles: %w", err)
	}
	var profiles []domain.Profile
	if err := cursor.All(ctx, &profiles); err != nil {
		return nil, 0, fmt.Errorf("decode profiles: %w", err)
	}
	return profiles, total, nil
}

// Get returns one profile by unified id.
func (s *Store) Get(ctx context.Context, unifiedID string) (*domain.Profile, error) {
	var p domain.Profile
	err := s.coll.FindOne(ctx, bson.D{{Key: "unified_id", Value: unifiedID}}).Decode(&p)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("get profile %s: %w", unifiedID, err)
	}
	return &p, nil
}

// Facets runs a single $facet aggregation over the collection.
func (s *Store) Facets(ctx context.Context) (*Facets, error) {
	pipeline := mongo.Pipeline{
		{{Key: "$facet", Value: bson.D{
			{Key: "categories", Value: unwindCount("$expertise.primary_categories")},
			{Key: "parent_categories", Value: unwindCount("$expertise.parent_categories")},
			{Key: "industries", Value: unwindCount("$expertise.normalized_industries.primary")},
			{Key: "countries", Value: sortByCount("$location.country")},
			{Key: "formats", Value: unwindCount("$speaking_info.formats")},
			{Key: "languages", Value: unwindCount("$languages.codes")},
			{Key: "fee_buckets", Value: sortByCount("$speaking_info.fee.bucket")},
		}}},
	}

	cursor, err := s.coll.Aggregate(ctx, pipeline)
	if err != nil {
		return nil, fmt.Errorf("facet aggregation: %w", err)
	}
	var results []Facets
	if err := cursor.All(ctx, &results); err != nil {
		return nil, fmt.Errorf("decode facets: %w", err)
	}
	if len(results) == 0 {
		return &Facets{}, nil
	}
	return &results[0], nil
}

// Stats aggregates collection totals, per-source counts, and score averages.
func (s *Store) Stats(ctx context.Context) (*Stats, error) {
	total, err := s.coll.CountDocuments(ctx, bson.D{})
	if err != nil {
		return nil, fmt.Errorf("count profiles: %w", err)
	}
	stats := &Stats{TotalProfiles: total}

	cursor, err := s.coll.Aggregate(ctx, mongo.Pipeline{
		{{Key: "$unwind", Value: "$metadata.sources"}},
		{{Key: "$sortByCount", Value: "$metadata.sources"}},
	})
	if err != nil {
		return nil, fmt.Errorf("source aggregation: %w", err)
	}
	if err := cursor.All(ctx, &stats.BySource); err != nil {
		return nil, fmt.Errorf("decode source counts: %w", err)
	}

	cursor, err = s.coll.Aggregate(ctx, mongo.Pipeline{
		{{Key: "$group", Value: bson.D{
			{Key: "_id", Value: nil},
			{Key: "profile", Value: bson.D{{Key: "$avg", Value: "$metadata.profile_score"}}},
			{Key: "completeness", Value: bson.D{{Key: "$avg", Value: "$metadata.completeness_score"}}},
			{Key: "experience", Value: bson.D{{Key: "$avg", Value: "$metadata.experience_score"}}},
		}}},
	})
	if err != nil {
		return nil, fmt.Errorf("score aggregation: %w", err)
	}
	var averages []struct {
		Profile      float64 `bson:"profile"`
		Completeness float64 `bson:"completeness"`
		Experience   float64 `bson:"experience"`
	}
	if err := cursor.All(ctx, &averages); err != nil {
		return nil, fmt.Errorf("decode score averages: %w", err)
	}
	if len(averages) > 0 {
		stats.AvgProfileScore = averages[0].Profile
		stats.AvgCompleteness = averages[0].Completeness
		stats.AvgExperience = averages[0].Experience
	}
	return stats, nil
}

// Ping verifies the connection, used by the health endpoint.
func (s *Store) Ping(ctx context.Context) error {
	return s.client.Ping(ctx, nil)
}

func (q Query) filter() bson.D {
	filter := bson.D{}
	if q.Text != "" {
		filter = append(filter, bson.E{Key: "$text", Value: bson.D{{Key: "$search", Value: q.Text}}})
	}

	for _, f := range []struct {
		path  string
		value string
	}{
		{"expertise.primary_categories", q.Category},
		{"expertise.parent_categories", q.ParentCategory},
		{"expertise.normalized_industries.primary", q.Industry},
		{"location.country", q.Country},
		{"location.city", q.City},
		{"languages.codes", q.Language},
		{"speaking_info.formats", q.Format},
		{"speaking_info.audience_types", q.Audience},
		{"speaking_info.fee.bucket", q.FeeBucket},
	} {
		if f.value != "" {
			filter = append(filter, bson.E{Key: f.path, Value: f.value})
		}
	}

	if q.DEIOnly {
		filter = append(filter, bson.E{Key: "demographics.is_dei_speaker", Value: true})
	}
	if q.MinProfileScore > 0 {
		filter = append(filter, bson.E{Key: "metadata.profile_score",
			Value: bson.D{{Key: "$gte", Value: q.MinProfileScore}}})
	}
	if q.MinExperienceScore > 0 {
		filter = append(filter, bson.E{Key: "metadata.experience_score",
			Value: bson.D{{Key: "$gte", Value: q.MinExperienceScore}}})
	}
	return filter
}

func (q Query) sort() bson.D {
	switch q.Sort {
	case "rating":
		return bson.D{{Key: "speaking_info.average_rating", Value: -1}}
	case "name":
		return bson.D{{Key: "basic_info.full_name", Value: 1}}
	default:
		return bson.D{{Key: "metadata.profile_score", Value: -1}}
	}
}

func unwindCount(path string) mongo.Pipeline {
	return mongo.Pipeline{
		{{Key: "$unwind", Value: path}},
		{{Key: "$sortByCount", Value: path}},
		{{Key: "$limit", Value: facetLimit}},
	}
}

func sortByCount(path string) mongo.Pipeline {
	return mongo.Pipeline{
		{{Key: "$sortByCount", Value: path}},
		{{Key: "$limit", Value: facetLimit}},
	}
}
