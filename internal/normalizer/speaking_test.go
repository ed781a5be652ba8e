package normalizer

import (
	"reflect"
	"testing"
)

func TestSpeakingNormalizer_FormatPriority(t *testing.T) {
	n := NewSpeakingNormalizer()

	result := n.NormalizeFormats([]string{"Panel Discussion", "Opening Keynote", "Zoom sessions"})

	if !reflect.DeepEqual(result.Formats, []string{"keynote", "panel", "webinar"}) {
		t.Errorf("unexpected formats: %v", result.Formats)
	}
	if result.PrimaryFormat != "keynote" {
		t.Errorf("expected keynote as primary, got %q", result.PrimaryFormat)
	}
	if !result.VirtualCapable {
		t.Error("expected virtual capability from webinar format")
	}
}

func TestSpeakingNormalizer_EmceeFlag(t *testing.T) {
	n := NewSpeakingNormalizer()

	result := n.NormalizeFormats([]string{"Master of Ceremonies"})

	if !result.CanEmcee {
		t.Error("expected can_emcee")
	}
	if result.PrimaryFormat != "" {
		t.Errorf("emcee is not a priority format, got primary %q", result.PrimaryFormat)
	}
}

func TestSpeakingNormalizer_AudienceSectors(t *testing.T) {
	n := NewSpeakingNormalizer()

	result := n.NormalizeAudiences([]string{"C-Suite", "Nurses", "Town councils"})

	if !reflect.DeepEqual(result.AudienceTypes, []string{"executives", "healthcare_professionals"}) {
		t.Errorf("unexpected audiences: %v", result.AudienceTypes)
	}
	if result.PrimaryAudience != "executives" {
		t.Errorf("expected executives as primary, got %q", result.PrimaryAudience)
	}
	if !reflect.DeepEqual(result.Sectors, []string{"corporate", "healthcare"}) {
		t.Errorf("unexpected sectors: %v", result.Sectors)
	}
}

func TestSpeakingNormalizer_AudienceSizeNumeric(t *testing.T) {
	n := NewSpeakingNormalizer()

	result, ok := n.NormalizeAudienceSize(250)
	if !ok {
		t.Fatal("expected a result")
	}
	if result.Bracket != "medium" {
		t.Errorf("expected medium bracket, got %q", result.Bracket)
	}
	if result.ComfortableWithLarge {
		t.Error("medium bracket must not set comfortable_with_large")
	}
}

func TestSpeakingNormalizer_AudienceSizeRange(t *testing.T) {
	n := NewSpeakingNormalizer()

	result, _ := n.NormalizeAudienceSize("100-2000 attendees")
	if result.Min != 100 || result.Max != 2000 {
		t.Errorf("unexpected range: %d-%d", result.Min, result.Max)
	}
	if result.Bracket != "large" {
		t.Errorf("expected large bracket from midpoint, got %q", result.Bracket)
	}
	if !result.ComfortableWithLarge {
		t.Error("max over 500 should set comfortable_with_large")
	}
}

func TestSpeakingNormalizer_DurationPhrases(t *testing.T) {
	n := NewSpeakingNormalizer()

	result, _ := n.NormalizeDuration("TED Talk style")
	if result.Minutes != 18 || result.Category != "lightning" {
		t.Errorf("unexpected result: %+v", result)
	}

	result, _ = n.NormalizeDuration("2 hours, flexible")
	if result.Minutes != 120 || result.Category != "extended" {
		t.Errorf("unexpected result: %+v", result)
	}
	if !result.Flexible {
		t.Error("expected flexible flag")
	}

	result, _ = n.NormalizeDuration("45 minute session")
	if result.Minutes != 45 || result.Category != "standard" {
		t.Errorf("unexpected numeric fallback: %+v", result)
	}
}

func TestSpeakingNormalizer_ExperienceScoreCapsAt100(t *testing.T) {
	n := NewSpeakingNormalizer()

	score := n.ExperienceScore(ExperienceInput{
		YearsSpeaking:        25,
		TalksDelivered:       1000,
		FormatCount:          9,
		ComfortableWithLarge: true,
		AverageRating:        5.0,
	})
	if score != 100 {
		t.Errorf("expected capped score 100, got %d", score)
	}
}

func TestSpeakingNormalizer_ExperienceScoreComponents(t *testing.T) {
	n := NewSpeakingNormalizer()

	score := n.ExperienceScore(ExperienceInput{
		YearsSpeaking:  5,   // 10
		TalksDelivered: 100, // 10
		FormatCount:    2,   // 8
		MaxAudience:    600, // 10
		AverageRating:  4.6, // 15
	})
	if score != 53 {
		t.Errorf("expected 53, got %d", score)
	}
}

func TestSpeakingNormalizer_EmptyInputs(t *testing.T) {
	n := NewSpeakingNormalizer()

	if result := n.NormalizeFormats(nil); len(result.Formats) != 0 || result.PrimaryFormat != "" {
		t.Errorf("unexpected result for nil formats: %+v", result)
	}
	if _, ok := n.NormalizeAudienceSize(nil); ok {
		t.Error("nil size input should report no result")
	}
	if _, ok := n.NormalizeDuration(""); ok {
		t.Error("empty duration should report no result")
	}
	if score := n.ExperienceScore(ExperienceInput{}); score != 0 {
		t.Errorf("expected zero score, got %d", score)
	}
}
