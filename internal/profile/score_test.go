package profile

import (
	"strings"
	"testing"

	"github.com/itsmudassir/expert-finder/internal/domain"
)

func scoringFixture() *domain.Profile {
	years := 10
	rating := 4.9
	return &domain.Profile{
		BasicInfo: domain.BasicInfo{
			FullName:  "Jane Smith",
			FirstName: "Jane",
			LastName:  "Smith",
		},
		ProfessionalInfo: domain.ProfessionalInfo{Title: "CEO"},
		Biography:        domain.Biography{Full: strings.Repeat("x", 300)},
		Location:         domain.Location{City: "Austin", Country: "United States"},
		Expertise: domain.Expertise{
			PrimaryCategories: []string{"leadership"},
			Keywords:          []string{"a", "b", "c", "d", "e", "f"},
		},
		Credentials: domain.Credentials{
			Degrees: []domain.Degree{{Degree: "MBA", Level: 4}},
		},
		SpeakingInfo: domain.SpeakingInfo{
			YearsSpeaking: &years,
			Formats:       []string{"keynote", "workshop"},
			AudienceSizes: domain.AudienceSizes{ComfortableWithLarge: true},
			AverageRating: &rating,
			Fee:           &domain.FeeInfo{Display: "$10,000+", Bucket: "10000_20000"},
		},
		Media:   domain.Media{Images: []string{"https://example.com/jane.jpg"}},
		Contact: domain.Contact{Email: "jane@example.com"},
	}
}

func TestScore_PointTable(t *testing.T) {
	p := scoringFixture()

	// name 10+5, title 5, bio 10 (201-500 chars), country 5, city 5,
	// primary categories 10, keywords 5, degrees 5, fee 5, images 5, email 5.
	if got := Score(p); got != 75 {
		t.Errorf("unexpected score: %d", got)
	}
}

func TestScore_BiographyLengthTiers(t *testing.T) {
	tests := []struct {
		length int
		want   int
	}{
		{600, 15},
		{300, 10},
		{50, 5},
		{0, 0},
	}
	for _, tt := range tests {
		p := &domain.Profile{Biography: domain.Biography{Full: strings.Repeat("x", tt.length)}}
		if got := Score(p); got != tt.want {
			t.Errorf("bio length %d: score %d, want %d", tt.length, got, tt.want)
		}
	}
}

func TestScore_Bounded(t *testing.T) {
	if got := Score(&domain.Profile{}); got != 0 {
		t.Errorf("empty profile must score 0, got %d", got)
	}

	p := scoringFixture()
	p.BasicInfo.Pronouns = "she/her"
	p.ProfessionalInfo.Tagline = "Keynotes on leadership"
	p.Biography.Full = strings.Repeat("x", 600)
	p.Expertise.ResearchAreas = []string{"organizational behavior"}
	p.Media.Videos = []string{"https://example.com/reel"}
	if got := Score(p); got != 100 {
		t.Errorf("full profile must cap at 100, got %d", got)
	}
}

func TestCompleteness(t *testing.T) {
	if got := Completeness(&domain.Profile{}); got != 0 {
		t.Errorf("empty profile completeness %d, want 0", got)
	}

	// 12 of the 25 checklist fields are filled in the fixture.
	if got := Completeness(scoringFixture()); got != 48 {
		t.Errorf("unexpected completeness: %d", got)
	}
}

func TestExperienceScore_FromSpeakingInfo(t *testing.T) {
	// years 10 -> 15, formats 2 -> 8, large audiences -> 20, rating 4.9 -> 20.
	if got := ExperienceScore(scoringFixture()); got != 63 {
		t.Errorf("unexpected experience score: %d", got)
	}
}

func TestRescore_SetsAllThree(t *testing.T) {
	p := scoringFixture()
	Rescore(p)

	if p.Metadata.ProfileScore != 75 {
		t.Errorf("unexpected profile score: %d", p.Metadata.ProfileScore)
	}
	if p.Metadata.Completeness != 48 {
		t.Errorf("unexpected completeness: %d", p.Metadata.Completeness)
	}
	if p.Metadata.ExperienceScore != 63 {
		t.Errorf("unexpected experience score: %d", p.Metadata.ExperienceScore)
	}
}
