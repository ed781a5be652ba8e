package normalizer

import "strings"

// IndustryResult is the structured output of industry classification.
type IndustryResult struct {
	PrimaryIndustries   []string `json:"primary_industries"`
	SecondaryIndustries []string `json:"secondary_industries"`
	Subcategories       []string `json:"subcategories"`
	Keywords            []string `json:"keywords"`
	OriginalTerms       []string `json:"original_terms"`
	Unmatched           []string `json:"unmatched"`

	// NonIndustryCategories is populated only by MergeWithCategories: the
	// input terms that matched no industry keyword and belong with the
	// topic taxonomy instead.
	NonIndustryCategories []string `json:"non_industry_categories,omitempty"`
}

// IndustryNormalizer maps free-text industry terms onto the industry
// taxonomy. Same matching algorithm as the expertise normalizer.
type IndustryNormalizer struct {
	vocab *vocabulary
}

func NewIndustryNormalizer() *IndustryNormalizer {
	return &IndustryNormalizer{
		vocab: newVocabulary(industryKeywords, industryOrder),
	}
}

// Normalize classifies a list of industry terms.
func (n *IndustryNormalizer) Normalize(terms []string) IndustryResult {
	result := IndustryResult{
		PrimaryIndustries:   []string{},
		SecondaryIndustries: []string{},
		Subcategories:       []string{},
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
		keywords.Add(lower)
	}

	// Subcategory detection from the matched keyword pool.
	subcategories := make(stringSet)
	if primary.Has("technology") || secondary.Has("technology") {
		for kw := range keywords {
			if strings.Contains(kw, "fintech") {
				subcategories.Add("fintech")
			}
			if strings.Contains(kw, "edtech") {
				subcategories.Add("edtech")
			}
		}
	}

	result.PrimaryIndustries = primary.Sorted()
	result.SecondaryIndustries = secondary.Sorted()
	result.Subcategories = subcategories.Sorted()
	result.Keywords = keywords.Sorted()
	return result
}

// MergeWithCategories partitions a mixed topic/industry list: terms matching
// any industry keyword are normalized as industries, the rest are returned
// untouched in NonIndustryCategories. Used for sources that conflate topics
// and industries in one field.
func (n *IndustryNormalizer) MergeWithCategories(categories []string) IndustryResult {
	var industryTerms, nonIndustry []string

	for _, category := range categories {
		if category == "" {
			continue
		}
		lower := strings.ToLower(category)
		isIndustry := false
		for _, e := range n.vocab.entries {
			if strings.Contains(lower, e.keyword) || strings.Contains(e.keyword, lower) {
				isIndustry = true
				break
			}
		}
		if isIndustry {
			industryTerms = append(industryTerms, category)
		} else {
			nonIndustry = append(nonIndustry, category)
		}
	}

	result := n.Normalize(industryTerms)
	result.NonIndustryCategories = nonIndustry
	return result
}

// IndustryInfo returns display information for an industry id.
func (n *IndustryNormalizer) IndustryInfo(id string) (string, []string, bool) {
	entry, ok := industries[id]
	if !ok {
		return "", nil, false
	}
	return entry.display, entry.subcategories, true
}
