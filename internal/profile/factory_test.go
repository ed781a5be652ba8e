package profile

import (
	"errors"
	"reflect"
	"testing"

	"github.com/itsmudassir/expert-finder/internal/domain"
)

func TestFactory_BuildFullRecord(t *testing.T) {
	f := NewFactory()

	p, err := f.Build("allamericanspeakers", domain.Record{
		"speaker_id": "sp-123",
		"name":       "Dr. Jane Smith",
		"job_title":  "Chief Economist",
		"company":    "Acme Corp",
		"gender":     "Female (she/her)",
		"location":   "Austin, TX",
		"biography":  "Jane advises boards on AI strategy. She is a CISSP.",
		"topics":     []string{"Artificial Intelligence", "Leadership"},
		"industries": []string{"Healthcare", "Technology"},
		"languages":  []string{"English (Native)", "Spanish (Fluent)"},
		"education":  []string{"PhD in Economics from Stanford"},
		"fee_range":  "$10,000 - $20,000",
		"email":      "jane@example.com",
		"testimonials": []any{
			map[string]any{"text": "Outstanding keynote", "author": "Event Co", "rating": 5.0},
			map[string]any{"text": "Very engaging", "rating": 4.0},
		},
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if p.BasicInfo.FirstName != "Jane" || p.BasicInfo.LastName != "Smith" {
		t.Errorf("unexpected name parse: %+v", p.BasicInfo)
	}
	if p.BasicInfo.Gender != "female" || p.BasicInfo.Pronouns != "she/her" {
		t.Errorf("unexpected gender parse: %+v", p.BasicInfo)
	}
	if p.SourceIDs["allamericanspeakers"] != "sp-123" {
		t.Errorf("unexpected source ids: %v", p.SourceIDs)
	}
	if p.Location.City != "Austin" || p.Location.State != "TX" || p.Location.Country != "United States" {
		t.Errorf("unexpected location: %+v", p.Location)
	}

	if !contains(p.Expertise.PrimaryCategories, "artificial_intelligence") ||
		!contains(p.Expertise.PrimaryCategories, "leadership") {
		t.Errorf("unexpected primary categories: %v", p.Expertise.PrimaryCategories)
	}
	if !reflect.DeepEqual(p.Expertise.NormalizedIndustries.Primary, []string{"healthcare", "technology"}) {
		t.Errorf("unexpected industries: %v", p.Expertise.NormalizedIndustries.Primary)
	}

	if !contains(p.Languages.Native, "en") || !contains(p.Languages.Fluent, "es") {
		t.Errorf("unexpected languages: %+v", p.Languages)
	}

	if len(p.Credentials.Degrees) == 0 || p.Credentials.Degrees[0].Degree != "PhD" {
		t.Fatalf("unexpected degrees: %+v", p.Credentials.Degrees)
	}
	if p.Credentials.Degrees[0].Institution != "Stanford" {
		t.Errorf("unexpected institution: %q", p.Credentials.Degrees[0].Institution)
	}
	if !contains(p.Education.Degrees, "PhD") {
		t.Errorf("education view not flattened: %+v", p.Education)
	}

	if p.SpeakingInfo.Fee == nil || p.SpeakingInfo.Fee.Bucket != "10000_20000" {
		t.Errorf("unexpected fee: %+v", p.SpeakingInfo.Fee)
	}

	if p.SpeakingInfo.TestimonialCount != 2 {
		t.Errorf("unexpected testimonial count: %d", p.SpeakingInfo.TestimonialCount)
	}
	if p.Engagement.AverageRating == nil || *p.Engagement.AverageRating != 4.5 {
		t.Errorf("unexpected average rating: %v", p.Engagement.AverageRating)
	}

	// Bio scanner picks up the certification the structured fields missed.
	foundCISSP := false
	for _, c := range p.Credentials.Certifications {
		if c.Certification == "CISSP" {
			foundCISSP = true
		}
	}
	if !foundCISSP {
		t.Errorf("expected CISSP from biography, got %+v", p.Credentials.Certifications)
	}

	if p.Metadata.PrimarySource != "allamericanspeakers" ||
		!reflect.DeepEqual(p.Metadata.Sources, []string{"allamericanspeakers"}) {
		t.Errorf("unexpected metadata: %+v", p.Metadata)
	}
	if p.Metadata.ProfileScore <= 0 || p.Metadata.ProfileScore > 100 {
		t.Errorf("profile score out of range: %d", p.Metadata.ProfileScore)
	}
	if p.UnifiedID != "" {
		t.Errorf("factory must not assign identity, got %q", p.UnifiedID)
	}
}

func TestFactory_MissingNameSkipped(t *testing.T) {
	f := NewFactory()

	for _, name := range []any{nil, "", "None", "n/a"} {
		_, err := f.Build("src", domain.Record{"name": name})
		if !errors.Is(err, ErrNoName) {
			t.Errorf("name %v: expected ErrNoName, got %v", name, err)
		}
	}
}

func TestFactory_MinimalRecord(t *testing.T) {
	f := NewFactory()

	p, err := f.Build("src", domain.Record{"name": "Bob"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if p.BasicInfo.FirstName != "Bob" || p.BasicInfo.LastName != "" {
		t.Errorf("unexpected name: %+v", p.BasicInfo)
	}
	if p.Expertise.PrimaryCategories == nil || p.Expertise.Keywords == nil {
		t.Error("expertise slices must be non-nil on empty input")
	}
	if p.Metadata.Completeness < 0 || p.Metadata.Completeness > 100 {
		t.Errorf("completeness out of range: %d", p.Metadata.Completeness)
	}
}

func TestFactory_StructuredLocationAndFee(t *testing.T) {
	f := NewFactory()

	p, err := f.Build("src", domain.Record{
		"name": "Ana Torres",
		"location": map[string]any{
			"city":    "Madrid",
			"country": "Spain",
		},
		"fee_details": map[string]any{
			"min":     5000,
			"max":     9000,
			"display": "$5,000 - $9,000",
		},
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if p.Location.City != "Madrid" || p.Location.Country != "Spain" {
		t.Errorf("unexpected location: %+v", p.Location)
	}
	if p.SpeakingInfo.Fee == nil || p.SpeakingInfo.Fee.Bucket != "5000_10000" {
		t.Errorf("unexpected fee: %+v", p.SpeakingInfo.Fee)
	}
}

func contains(list []string, want string) bool {
	for _, s := range list {
		if s == want {
			return true
		}
	}
	return false
}
