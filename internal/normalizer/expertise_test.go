package normalizer

import (
	"reflect"
	"testing"
)

func TestExpertiseNormalizer_ExactMatchIsPrimary(t *testing.T) {
	n := NewExpertiseNormalizer()

	result := n.Normalize([]string{"Machine Learning", "Leadership"})

	if !reflect.DeepEqual(result.PrimaryCategories, []string{"artificial_intelligence", "leadership"}) {
		t.Errorf("unexpected primary categories: %v", result.PrimaryCategories)
	}
	if !reflect.DeepEqual(result.ParentCategories, []string{"business", "technology"}) {
		t.Errorf("unexpected parent categories: %v", result.ParentCategories)
	}
	if len(result.Unmatched) != 0 {
		t.Errorf("expected no unmatched terms, got %v", result.Unmatched)
	}
}

func TestExpertiseNormalizer_SubstringMatchIsSecondary(t *testing.T) {
	n := NewExpertiseNormalizer()

	result := n.Normalize([]string{"enterprise cybersecurity strategies"})

	if len(result.PrimaryCategories) != 0 {
		t.Errorf("expected no primary categories, got %v", result.PrimaryCategories)
	}
	if !reflect.DeepEqual(result.SecondaryCategories, []string{"cybersecurity"}) {
		t.Errorf("unexpected secondary categories: %v", result.SecondaryCategories)
	}
}

func TestExpertiseNormalizer_UnmatchedTermStaysSearchable(t *testing.T) {
	n := NewExpertiseNormalizer()

	result := n.Normalize([]string{"underwater basket weaving"})

	if !reflect.DeepEqual(result.Unmatched, []string{"underwater basket weaving"}) {
		t.Errorf("unexpected unmatched: %v", result.Unmatched)
	}
	if !reflect.DeepEqual(result.Keywords, []string{"underwater basket weaving"}) {
		t.Errorf("unmatched term should still be a keyword, got %v", result.Keywords)
	}
}

func TestExpertiseNormalizer_SkipsNoiseTerms(t *testing.T) {
	n := NewExpertiseNormalizer()

	result := n.Normalize([]string{"None", "n/a", "", "  ", "AI"})

	if !reflect.DeepEqual(result.PrimaryCategories, []string{"artificial_intelligence"}) {
		t.Errorf("unexpected primary categories: %v", result.PrimaryCategories)
	}
	if len(result.Unmatched) != 0 {
		t.Errorf("noise terms must not land in unmatched, got %v", result.Unmatched)
	}
	if len(result.Keywords) != 1 {
		t.Errorf("expected one keyword, got %v", result.Keywords)
	}
}

func TestExpertiseNormalizer_EmptyInputReturnsZeroShape(t *testing.T) {
	n := NewExpertiseNormalizer()

	result := n.Normalize(nil)

	if result.PrimaryCategories == nil || result.Keywords == nil || result.Unmatched == nil {
		t.Fatal("zero-shaped result must have non-nil slices")
	}
	if len(result.PrimaryCategories) != 0 || len(result.Keywords) != 0 {
		t.Errorf("expected empty result, got %+v", result)
	}
}

func TestExpertiseNormalizer_IdempotentOnMergedTermSets(t *testing.T) {
	n := NewExpertiseNormalizer()

	termsA := []string{"machine learning", "public speaking"}
	termsB := []string{"data science", "machine learning"}

	union := append(append([]string{}, termsA...), termsB...)
	reversed := append(append([]string{}, termsB...), termsA...)

	first := n.Normalize(union)
	second := n.Normalize(reversed)

	if !reflect.DeepEqual(first.PrimaryCategories, second.PrimaryCategories) {
		t.Errorf("category assignment depends on term order: %v vs %v",
			first.PrimaryCategories, second.PrimaryCategories)
	}
	if !reflect.DeepEqual(first.ParentCategories, second.ParentCategories) {
		t.Errorf("parent assignment depends on term order: %v vs %v",
			first.ParentCategories, second.ParentCategories)
	}

	// Re-running on the same set reproduces the same output.
	again := n.Normalize(union)
	if !reflect.DeepEqual(first, again) {
		t.Error("normalization is not idempotent")
	}
}

func TestExpertiseNormalizer_CategoryInfo(t *testing.T) {
	n := NewExpertiseNormalizer()

	info, ok := n.CategoryInfo("wellness")
	if !ok {
		t.Fatal("expected wellness to exist")
	}
	if info.Parent != "health_sciences" {
		t.Errorf("unexpected parent: %s", info.Parent)
	}
	if info.ParentDisplayName != "Healthcare & Life Sciences" {
		t.Errorf("unexpected parent display name: %s", info.ParentDisplayName)
	}

	if _, ok := n.CategoryInfo("nope"); ok {
		t.Error("expected unknown category to report false")
	}
}
