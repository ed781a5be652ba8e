package normalizer

import "strings"

// ExpertiseResult is the structured output of expertise classification.
// Category slices are sorted; Unmatched preserves input order.
type ExpertiseResult struct {
	PrimaryCategories   []string `json:"primary_categories"`
	SecondaryCategories []string `json:"secondary_categories"`
	ParentCategories    []string `json:"parent_categories"`
	Keywords            []string `json:"keywords"`
	OriginalTerms       []string `json:"original_terms"`
	Unmatched           []string `json:"unmatched"`
}

// CategoryInfo describes one taxonomy category for display purposes.
type CategoryInfo struct {
	ID                string `json:"id"`
	DisplayName       string `json:"display_name"`
	Parent            string `json:"parent"`
	ParentDisplayName string `json:"parent_display_name"`
}

// ExpertiseNormalizer maps free-text expertise terms onto the hierarchical
// expertise taxonomy.
type ExpertiseNormalizer struct {
	vocab *vocabulary
}

func NewExpertiseNormalizer() *ExpertiseNormalizer {
	return &ExpertiseNormalizer{
		vocab: newVocabulary(expertiseKeywords, expertiseCategoryOrder),
	}
}

// Normalize classifies a list of expertise terms. Matching per term, first
// hit wins: exact keyword -> primary; substring containment or single-word
// hit -> secondary; otherwise the term lands in Unmatched but still
// contributes to Keywords so it stays searchable.
//
// The function is idempotent over term sets: re-running it on the union of
// original terms from merged profiles reproduces a consistent category
// assignment regardless of merge order.
func (n *ExpertiseNormalizer) Normalize(terms []string) ExpertiseResult {
	result := ExpertiseResult{
		PrimaryCategories:   []string{},
		SecondaryCategories: []string{},
		ParentCategories:    []string{},
		Keywords:            []string{},
		OriginalTerms:       []string{},
		Unmatched:           []string{},
	}
	if len(terms) == 0 {
		return result
	}
	result.OriginalTerms = terms

	primary := make(stringSet)
	secondary := make(stringSet)
	parents := make(stringSet)
	keywords := make(stringSet)

	for _, term := range terms {
		if skipTerm(term) {
			continue
		}
		lower := strings.ToLower(strings.TrimSpace(term))

		outcome := n.vocab.match(lower)
		if !outcome.ok {
			result.Unmatched = append(result.Unmatched, term)
			keywords.Add(lower)
			continue
		}
		if outcome.exact {
			primary.Add(outcome.category)
		} else if !primary.Has(outcome.category) {
			secondary.Add(outcome.category)
		}
		parents.Add(expertiseCategories[outcome.category].parent)
		keywords.Add(lower)
	}

	result.PrimaryCategories = primary.Sorted()
	result.SecondaryCategories = secondary.Sorted()
	result.ParentCategories = parents.Sorted()
	result.Keywords = keywords.Sorted()
	return result
}

// CategoryInfo returns display information for a category id, or false when
// the id is not in the taxonomy.
func (n *ExpertiseNormalizer) CategoryInfo(id string) (CategoryInfo, bool) {
	cat, ok := expertiseCategories[id]
	if !ok {
		return CategoryInfo{}, false
	}
	return CategoryInfo{
		ID:                id,
		DisplayName:       cat.display,
		Parent:            cat.parent,
		ParentDisplayName: expertiseParents[cat.parent],
	}, true
}

// Hierarchy returns all categories grouped by parent id.
func (n *ExpertiseNormalizer) Hierarchy() map[string][]CategoryInfo {
	out := make(map[string][]CategoryInfo, len(expertiseParents))
	for _, id := range expertiseCategoryOrder {
		cat := expertiseCategories[id]
		out[cat.parent] = append(out[cat.parent], CategoryInfo{
			ID:                id,
			DisplayName:       cat.display,
			Parent:            cat.parent,
			ParentDisplayName: expertiseParents[cat.parent],
		})
	}
	return out
}
