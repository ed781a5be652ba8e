package normalizer

import (
	"reflect"
	"testing"
	"time"
)

func fixedClock() time.Time {
	return time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)
}

func TestDemographicsNormalizer_GenderWithPronouns(t *testing.T) {
	n := NewDemographicsNormalizer()

	result := n.NormalizeGender("Woman (she/her/hers)")

	if result.Gender != "female" {
		t.Errorf("unexpected gender: %q", result.Gender)
	}
	if result.Pronouns != "she/her" {
		t.Errorf("unexpected pronouns: %q", result.Pronouns)
	}
	if result.Display != "Female" {
		t.Errorf("unexpected display: %q", result.Display)
	}
}

func TestDemographicsNormalizer_NonBinary(t *testing.T) {
	n := NewDemographicsNormalizer()

	result := n.NormalizeGender("Non-binary")
	if result.Gender != "non-binary" {
		t.Errorf("unexpected gender: %q", result.Gender)
	}
	if result.Pronouns != "" {
		t.Errorf("pronouns must not be inferred for non-binary, got %q", result.Pronouns)
	}
}

func TestDemographicsNormalizer_EmptyGender(t *testing.T) {
	n := NewDemographicsNormalizer()

	result := n.NormalizeGender("")
	if result.Gender != "not_specified" || result.Display != "Not Specified" {
		t.Errorf("unexpected result: %+v", result)
	}
}

func TestDemographicsNormalizer_AgeBrackets(t *testing.T) {
	n := NewDemographicsNormalizer()
	n.now = fixedClock

	result, ok := n.NormalizeAge(45)
	if !ok {
		t.Fatal("expected a result")
	}
	if result.Bracket != "gen_x" || result.Generation != "Gen X" {
		t.Errorf("unexpected bracket: %+v", result)
	}
	if result.BirthYear != 1980 {
		t.Errorf("unexpected birth year: %d", result.BirthYear)
	}
}

func TestDemographicsNormalizer_AgeFromBirthYear(t *testing.T) {
	n := NewDemographicsNormalizer()
	n.now = fixedClock

	result, _ := n.NormalizeAge("born 1990")
	if result.Age != 35 || result.Bracket != "millennial" {
		t.Errorf("unexpected result: %+v", result)
	}
}

func TestDemographicsNormalizer_AgeFromGenerationKeyword(t *testing.T) {
	n := NewDemographicsNormalizer()
	n.now = fixedClock

	result, _ := n.NormalizeAge("proud millennial")
	if result.Bracket != "millennial" {
		t.Errorf("unexpected bracket: %q", result.Bracket)
	}
	if result.Age != 35 { // bracket midpoint
		t.Errorf("unexpected age: %d", result.Age)
	}
}

func TestDemographicsNormalizer_DiversityFlags(t *testing.T) {
	n := NewDemographicsNormalizer()

	result := n.NormalizeDiversity([]string{"Latina", "Women in Tech", "Veteran"})

	if !result.Flags["bipoc"] {
		t.Error("expected bipoc flag")
	}
	if !result.Flags["woman"] || !result.Flags["woman_in_tech"] {
		t.Error("expected woman and woman_in_tech flags")
	}
	if !result.Flags["veteran"] {
		t.Error("expected veteran flag")
	}
	if !result.DEISpeaker {
		t.Error("expected dei_speaker")
	}
	if !reflect.DeepEqual(result.Categories, []string{"hispanic_latino", "veteran", "woman_in_tech"}) {
		t.Errorf("unexpected categories: %v", result.Categories)
	}
}

func TestDemographicsNormalizer_BioExtractionRequiresSelfIdentification(t *testing.T) {
	n := NewDemographicsNormalizer()

	// Mentioning a demographic term without self-identification yields nothing.
	result := n.ExtractFromBio("She advises veteran-owned businesses on growth.")
	if len(result.Diversity) != 0 {
		t.Errorf("expected no diversity extraction, got %v", result.Diversity)
	}

	result = n.ExtractFromBio("As a veteran, I bring lessons from two decades of service. (he/him)")
	if !reflect.DeepEqual(result.Diversity, []string{"veteran"}) {
		t.Errorf("expected veteran from self-identification, got %v", result.Diversity)
	}
	if result.Pronouns != "he/him" || result.Gender != "male" {
		t.Errorf("unexpected pronoun extraction: %+v", result)
	}
}

func TestDemographicsNormalizer_BioGenerationKeyword(t *testing.T) {
	n := NewDemographicsNormalizer()

	result := n.ExtractFromBio("A proud Gen X technologist.")
	if result.AgeBracket != "gen_x" {
		t.Errorf("unexpected bracket: %q", result.AgeBracket)
	}
}
