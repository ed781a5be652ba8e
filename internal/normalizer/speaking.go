package normalizer

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

var numberPattern = regexp.MustCompile(`\d+`)

// FormatResult is the normalized view of a speaker's session formats.
type FormatResult struct {
	Formats        []string `json:"formats"`
	PrimaryFormat  string   `json:"primary_format,omitempty"`
	VirtualCapable bool     `json:"virtual_capable"`
	CanEmcee       bool     `json:"can_emcee"`
	Original       []string `json:"original"`
}

// AudienceResult is the normalized view of a speaker's audience types.
type AudienceResult struct {
	AudienceTypes   []string `json:"audience_types"`
	PrimaryAudience string   `json:"primary_audience,omitempty"`
	Sectors         []string `json:"sectors"`
	Original        []string `json:"original"`
}

// SizeResult is a normalized audience-size bracket.
type SizeResult struct {
	Bracket              string `json:"bracket"`
	Min                  int    `json:"min,omitempty"`
	Max                  int    `json:"max,omitempty"` // 0 = open-ended
	Display              string `json:"display"`
	ComfortableWithLarge bool   `json:"comfortable_with_large"`
}

// DurationResult is a normalized session duration.
type DurationResult struct {
	Minutes  int    `json:"minutes,omitempty"`
	Display  string `json:"display"`
	Category string `json:"category,omitempty"` // lightning, standard, extended, workshop
	Flexible bool   `json:"flexible"`
}

// ExperienceInput carries the fields the experience score is computed from.
type ExperienceInput struct {
	YearsSpeaking        int
	TalksDelivered       int
	FormatCount          int
	ComfortableWithLarge bool
	MaxAudience          int
	AverageRating        float64
}

// SpeakingNormalizer maps speaking formats, audience descriptors, audience
// sizes, and session durations onto canonical tags and brackets.
type SpeakingNormalizer struct{}

func NewSpeakingNormalizer() *SpeakingNormalizer {
	return &SpeakingNormalizer{}
}

// NormalizeFormats maps format synonyms onto the canonical format tags and
// derives the primary format plus capability flags.
func (n *SpeakingNormalizer) NormalizeFormats(formats []string) FormatResult {
	result := FormatResult{Formats: []string{}, Original: []string{}}
	matched := make(stringSet)

	for _, raw := range formats {
		if strings.TrimSpace(raw) == "" {
			continue
		}
		result.Original = append(result.Original, raw)
		lower := strings.ToLower(strings.TrimSpace(raw))
		for _, key := range formatKeyOrder {
			if strings.Contains(lower, key) {
				matched.Add(formatMappings[key])
				break
			}
		}
	}

	result.Formats = matched.Sorted()
	result.VirtualCapable = matched.Has("webinar")
	result.CanEmcee = matched.Has("emcee")
	for _, fmtTag := range formatPriority {
		if matched.Has(fmtTag) {
			result.PrimaryFormat = fmtTag
			break
		}
	}
	return result
}

// NormalizeAudiences maps audience synonyms onto canonical audience tags
// and derives the sectors they imply.
func (n *SpeakingNormalizer) NormalizeAudiences(audiences []string) AudienceResult {
	result := AudienceResult{AudienceTypes: []string{}, Sectors: []string{}, Original: []string{}}
	matched := make(stringSet)
	sectors := make(stringSet)

	for _, raw := range audiences {
		if strings.TrimSpace(raw) == "" {
			continue
		}
		result.Original = append(result.Original, raw)
		lower := strings.ToLower(strings.TrimSpace(raw))
		for _, key := range audienceKeyOrder {
			if strings.Contains(lower, key) {
				audience := audienceMappings[key]
				matched.Add(audience)
				if sector, ok := audienceSectors[audience]; ok {
					sectors.Add(sector)
				}
				break
			}
		}
	}

	result.AudienceTypes = matched.Sorted()
	result.Sectors = sectors.Sorted()
	for _, aud := range audiencePriority {
		if matched.Has(aud) {
			result.PrimaryAudience = aud
			break
		}
	}
	return result
}

// NormalizeAudienceSize buckets mixed numeric/phrase size input: 250,
// "100-500", "Large", "5000+".
func (n *SpeakingNormalizer) NormalizeAudienceSize(input any) (SizeResult, bool) {
	switch v := input.(type) {
	case nil:
		return SizeResult{}, false
	case int:
		return bracketForSize(v), true
	case int32:
		return bracketForSize(int(v)), true
	case int64:
		return bracketForSize(int(v)), true
	case float64:
		return bracketForSize(int(v)), true
	}

	str := strings.ToLower(fmt.Sprintf("%v", input))
	if strings.TrimSpace(str) == "" {
		return SizeResult{}, false
	}

	for _, b := range sizeBrackets {
		if strings.Contains(str, b.name) {
			return SizeResult{
				Bracket:              b.name,
				Min:                  b.min,
				Max:                  b.max,
				Display:              b.display,
				ComfortableWithLarge: b.name == "large" || b.name == "xlarge",
			}, true
		}
	}

	numbers := numberPattern.FindAllString(str, -1)
	if len(numbers) > 0 {
		minSize, _ := strconv.Atoi(numbers[0])
		maxSize, _ := strconv.Atoi(numbers[len(numbers)-1])
		if maxSize < minSize {
			maxSize = minSize
		}
		mid := (minSize + maxSize) / 2
		b := findBracket(mid)
		return SizeResult{
			Bracket:              b.name,
			Min:                  minSize,
			Max:                  maxSize,
			Display:              fmt.Sprintf("%d-%d", minSize, maxSize),
			ComfortableWithLarge: maxSize > 500,
		}, true
	}

	return SizeResult{
		Bracket:              "unknown",
		Display:              fmt.Sprintf("%v", input),
		ComfortableWithLarge: strings.Contains(str, "large") || strings.Contains(str, "any"),
	}, true
}

// NormalizeDuration parses a session duration phrase or numeric string into
// minutes plus a length category.
func (n *SpeakingNormalizer) NormalizeDuration(raw string) (DurationResult, bool) {
	if strings.TrimSpace(raw) == "" {
		return DurationResult{}, false
	}
	lower := strings.ToLower(strings.TrimSpace(raw))
	flexible := strings.Contains(lower, "flexible") || strings.Contains(lower, "adjustable")

	for _, key := range durationKeyOrder {
		if strings.Contains(lower, key) {
			minutes := durationMappings[key]
			return DurationResult{
				Minutes:  minutes,
				Display:  key,
				Category: durationCategory(minutes),
				Flexible: flexible,
			}, true
		}
	}

	if num := numberPattern.FindString(lower); num != "" {
		minutes, _ := strconv.Atoi(num)
		if strings.Contains(lower, "hour") {
			minutes *= 60
		}
		return DurationResult{
			Minutes:  minutes,
			Display:  raw,
			Category: durationCategory(minutes),
			Flexible: flexible,
		}, true
	}

	return DurationResult{Display: raw, Flexible: true}, true
}

// ExperienceScore computes the 0-100 speaking experience score: five
// components worth up to 20 points each.
func (n *SpeakingNormalizer) ExperienceScore(in ExperienceInput) int {
	score := 0

	switch {
	case in.YearsSpeaking >= 20:
		score += 20
	case in.YearsSpeaking >= 10:
		score += 15
	case in.YearsSpeaking >= 5:
		score += 10
	case in.YearsSpeaking >= 2:
		score += 5
	}

	switch {
	case in.TalksDelivered >= 500:
		score += 20
	case in.TalksDelivered >= 200:
		score += 15
	case in.TalksDelivered >= 100:
		score += 10
	case in.TalksDelivered >= 50:
		score += 5
	}

	if diversity := in.FormatCount * 4; diversity > 20 {
		score += 20
	} else {
		score += diversity
	}

	if in.ComfortableWithLarge {
		score += 20
	} else if in.MaxAudience > 500 {
		score += 10
	}

	switch {
	case in.AverageRating >= 4.8:
		score += 20
	case in.AverageRating >= 4.5:
		score += 15
	case in.AverageRating >= 4.0:
		score += 10
	case in.AverageRating >= 3.5:
		score += 5
	}

	if score > 100 {
		score = 100
	}
	return score
}

func durationCategory(minutes int) string {
	switch {
	case minutes <= 20:
		return "lightning"
	case minutes <= 90:
		return "standard"
	case minutes <= 240:
		return "extended"
	default:
		return "workshop"
	}
}

func bracketForSize(size int) SizeResult {
	b := findBracket(size)
	return SizeResult{
		Bracket:              b.name,
		Min:                  b.min,
		Max:                  b.max,
		Display:              b.display,
		ComfortableWithLarge: b.name == "large" || b.name == "xlarge",
	}
}

func findBracket(size int) sizeBracket {
	for _, b := range sizeBrackets {
		if size >= b.min && (b.max == 0 || size <= b.max) {
			return b
		}
	}
	return sizeBrackets[0]
}
