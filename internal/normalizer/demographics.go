package normalizer

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// GenderResult is a normalized gender/pronoun pair.
type GenderResult struct {
	Gender   string `json:"gender"`
	Pronouns string `json:"pronouns,omitempty"`
	Display  string `json:"display"`
	Original string `json:"original,omitempty"`
}

// AgeResult buckets an age, birth year, or generation phrase into one of
// the five generational brackets.
type AgeResult struct {
	Age        int    `json:"age,omitempty"`
	Bracket    string `json:"bracket,omitempty"`
	Generation string `json:"generation,omitempty"`
	Display    string `json:"display"`
	BirthYear  int    `json:"birth_year,omitempty"`
}

// DiversityResult is the normalized view of self-identified diversity
// categories with derived flags.
type DiversityResult struct {
	Categories []string        `json:"categories"`
	Flags      map[string]bool `json:"flags"`
	Display    []string        `json:"display"`
	DEISpeaker bool            `json:"dei_speaker"`
	Original   []string        `json:"original"`
}

// BioDemographics holds demographics found in biography text. Extraction is
// restricted to explicit self-identification: stated pronouns, generation
// phrases, and first-person statements ("i am a", "as a"). Nothing is ever
// inferred from names or other proxies.
type BioDemographics struct {
	Gender     string   `json:"gender,omitempty"`
	Pronouns   string   `json:"pronouns,omitempty"`
	AgeBracket string   `json:"age_bracket,omitempty"`
	Diversity  []string `json:"diversity"`
}

// DemographicsNormalizer normalizes gender, pronouns, age brackets, and
// self-identified diversity categories.
type DemographicsNormalizer struct {
	now func() time.Time
}

func NewDemographicsNormalizer() *DemographicsNormalizer {
	return &DemographicsNormalizer{now: time.Now}
}

// NormalizeGender normalizes a self-reported gender string, extracting
// pronouns from a parenthetical suffix ("Woman (she/her)") when present.
func (n *DemographicsNormalizer) NormalizeGender(raw string) GenderResult {
	if strings.TrimSpace(raw) == "" {
		return GenderResult{Gender: "not_specified", Display: "Not Specified"}
	}
	lower := strings.ToLower(strings.TrimSpace(raw))

	pronouns := ""
	if open := strings.Index(lower, "("); open >= 0 {
		if end := strings.Index(lower, ")"); end > open {
			part := strings.TrimSpace(lower[open+1 : end])
			if mapped, ok := pronounMappings[part]; ok {
				pronouns = mapped
			} else {
				pronouns = part
			}
			lower = strings.TrimSpace(lower[:open])
		}
	}

	gender := "not_specified"
	for _, key := range genderKeyOrder {
		if strings.Contains(lower, key) {
			gender = genderMappings[key]
			break
		}
	}

	if pronouns == "" {
		switch gender {
		case "male":
			pronouns = "he/him"
		case "female":
			pronouns = "she/her"
		}
	}

	display := genderDisplay[gender]
	if display == "" {
		display = "Not Specified"
	}
	return GenderResult{Gender: gender, Pronouns: pronouns, Display: display, Original: raw}
}

// NormalizeAge buckets age input in any of its shapes: 45, "45", "45-54",
// "millennial", "born 1978".
func (n *DemographicsNormalizer) NormalizeAge(input any) (AgeResult, bool) {
	currentYear := n.now().Year()

	switch v := input.(type) {
	case nil:
		return AgeResult{}, false
	case int:
		return n.ageResult(v, currentYear-v)
	case int32:
		return n.ageResult(int(v), currentYear-int(v))
	case int64:
		return n.ageResult(int(v), currentYear-int(v))
	case float64:
		return n.ageResult(int(v), currentYear-int(v))
	}

	str := strings.ToLower(fmt.Sprintf("%v", input))
	if strings.TrimSpace(str) == "" {
		return AgeResult{}, false
	}

	if match := yearPattern.FindString(str); match != "" {
		birthYear, _ := strconv.Atoi(match)
		if res, ok := n.ageResult(currentYear-birthYear, birthYear); ok {
			return res, true
		}
	}

	for _, gen := range generationOrder {
		for _, keyword := range generationKeywords[gen] {
			if strings.Contains(str, keyword) {
				b := bracketByName(gen)
				avgAge := (b.min + b.max) / 2
				return AgeResult{
					Age:        avgAge,
					Bracket:    b.name,
					Generation: generationDisplay(b),
					Display:    b.display,
					BirthYear:  currentYear - avgAge,
				}, true
			}
		}
	}

	if num := numberPattern.FindString(str); num != "" {
		age, _ := strconv.Atoi(num)
		if res, ok := n.ageResult(age, currentYear-age); ok {
			return res, true
		}
	}

	return AgeResult{Display: fmt.Sprintf("%v", input)}, true
}

func (n *DemographicsNormalizer) ageResult(age, birthYear int) (AgeResult, bool) {
	for _, b := range ageBrackets {
		if age >= b.min && age <= b.max {
			return AgeResult{
				Age:        age,
				Bracket:    b.name,
				Generation: generationDisplay(b),
				Display:    b.display,
				BirthYear:  birthYear,
			}, true
		}
	}
	return AgeResult{}, false
}

// NormalizeDiversity matches self-identified diversity terms against the
// category vocabulary and derives the aggregate flags.
func (n *DemographicsNormalizer) NormalizeDiversity(inputs []string) DiversityResult {
	result := DiversityResult{
		Categories: []string{},
		Flags:      map[string]bool{},
		Display:    []string{},
		Original:   inputs,
	}

	categories := make(stringSet)
	display := make(stringSet)

	for _, raw := range inputs {
		if strings.TrimSpace(raw) == "" {
			continue
		}
		lower := strings.ToLower(strings.TrimSpace(raw))

		for _, cat := range diversityOrder {
			if !containsAny(lower, diversityCategories[cat]) {
				continue
			}
			categories.Add(cat)
			applyDiversityFlags(result.Flags, cat)
			display.Add(raw)
			break
		}
	}

	result.Categories = categories.Sorted()
	result.Display = display.Sorted()
	result.DEISpeaker = len(categories) > 0
	return result
}

// ExtractFromBio pulls demographics out of biography text. Only explicit
// self-identification counts: a parenthesized or labeled pronoun set, a
// generation phrase, or an "i am a X" / "as a X" statement.
func (n *DemographicsNormalizer) ExtractFromBio(bio string) BioDemographics {
	result := BioDemographics{Diversity: []string{}}
	if bio == "" {
		return result
	}
	lower := strings.ToLower(bio)

	for key, value := range pronounMappings {
		if strings.Contains(lower, "("+key+")") || strings.Contains(lower, "pronouns: "+key) {
			result.Pronouns = value
			switch value {
			case "he/him":
				result.Gender = "male"
			case "she/her":
				result.Gender = "female"
			case "they/them":
				result.Gender = "non-binary"
			}
			break
		}
	}

	for _, gen := range generationOrder {
		if containsAny(lower, generationKeywords[gen]) {
			result.AgeBracket = gen
			break
		}
	}

	if strings.Contains(lower, "i am a") || strings.Contains(lower, "as a") {
		for _, cat := range diversityOrder {
			for _, keyword := range diversityCategories[cat] {
				if strings.Contains(lower, "i am a "+keyword) || strings.Contains(lower, "as a "+keyword) {
					result.Diversity = append(result.Diversity, cat)
					break
				}
			}
		}
	}

	return result
}

func applyDiversityFlags(flags map[string]bool, category string) {
	if bipocCategories[category] {
		flags["bipoc"] = true
	}
	if womanCategories[category] {
		flags["woman"] = true
		if strings.Contains(category, "tech") {
			flags["woman_in_tech"] = true
		}
		if strings.Contains(category, "stem") {
			flags["woman_in_stem"] = true
		}
	}
	if lgbtqCategories[category] {
		flags["lgbtq"] = true
	}
	switch category {
	case "veteran":
		flags["veteran"] = true
	case "disability":
		flags["disability"] = true
	case "first_gen":
		flags["first_generation"] = true
	}
}

func containsAny(s string, keywords []string) bool {
	for _, kw := range keywords {
		if strings.Contains(s, kw) {
			return true
		}
	}
	return false
}

func bracketByName(name string) ageBracket {
	for _, b := range ageBrackets {
		if b.name == name {
			return b
		}
	}
	return ageBrackets[0]
}

func generationDisplay(b ageBracket) string {
	if idx := strings.Index(b.display, " ("); idx >= 0 {
		return b.display[:idx]
	}
	return b.display
}
