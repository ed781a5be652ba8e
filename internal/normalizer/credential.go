package normalizer

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/cloudflare/ahocorasick"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/itsmudassir/expert-finder/internal/domain"
)

var yearPattern = regexp.MustCompile(`\b(19\d{2}|20\d{2})\b`)

// AwardResult aggregates a normalized award list with prestige bucketing.
type AwardResult struct {
	Awards           []domain.Award `json:"awards"`
	Categories       []string       `json:"categories"`
	PrestigiousCount int            `json:"prestigious_count"`
	SpeakerAwards    []string       `json:"speaker_awards"`
	MediaAwards      []string       `json:"media_awards"`
}

// BioCredentials holds credentials found by the best-effort biography
// scanner. Pattern matching over free text, not guaranteed extraction.
type BioCredentials struct {
	Degrees        []domain.Degree        `json:"degrees"`
	Certifications []domain.Certification `json:"certifications"`
	Awards         []domain.Award         `json:"awards"`
}

// CredentialNormalizer parses degree, certification, and award strings, and
// scans biography text for credential keywords in a single automaton pass.
type CredentialNormalizer struct {
	titler cases.Caser

	bioMatcher  *ahocorasick.Matcher
	bioPatterns []bioPattern
}

type bioPattern struct {
	key  string
	kind int // 0 degree, 1 certification, 2 award
}

func NewCredentialNormalizer() *CredentialNormalizer {
	n := &CredentialNormalizer{titler: cases.Title(language.Und)}

	for _, key := range degreeKeyOrder {
		n.bioPatterns = append(n.bioPatterns, bioPattern{key: key, kind: 0})
	}
	for _, key := range certificationKeyOrder {
		n.bioPatterns = append(n.bioPatterns, bioPattern{key: key, kind: 1})
	}
	for _, key := range awardKeyOrder {
		n.bioPatterns = append(n.bioPatterns, bioPattern{key: key, kind: 2})
	}
	patterns := make([]string, len(n.bioPatterns))
	for i, p := range n.bioPatterns {
		patterns[i] = p.key
	}
	n.bioMatcher = ahocorasick.NewStringMatcher(patterns)
	return n
}

// NormalizeDegree parses a degree string like "Ph.D. Computer Science from
// MIT" into its canonical form. Unrecognized degree types keep the original
// text with level 0.
func (n *CredentialNormalizer) NormalizeDegree(raw string) (domain.Degree, bool) {
	if strings.TrimSpace(raw) == "" {
		return domain.Degree{}, false
	}
	lower := strings.ToLower(strings.TrimSpace(raw))

	degreeType := ""
	for _, key := range degreeKeyOrder {
		if strings.Contains(lower, key) {
			degreeType = degreeMappings[key]
			break
		}
	}

	// Institution follows "from", "at", a dash, or a comma.
	institution := ""
	for _, sep := range []string{" from ", " at ", " - ", ", "} {
		if idx := strings.LastIndex(lower, sep); idx >= 0 {
			institution = n.titler.String(strings.TrimSpace(lower[idx+len(sep):]))
			break
		}
	}

	if degreeType == "" {
		return domain.Degree{Degree: raw, Level: 0}, true
	}

	// Field of study is what remains after stripping the degree type and
	// institution.
	fieldStr := lower
	for _, key := range degreeKeyOrder {
		fieldStr = strings.ReplaceAll(fieldStr, key, "")
	}
	if institution != "" {
		fieldStr = strings.ReplaceAll(fieldStr, strings.ToLower(institution), "")
	}
	for _, sep := range []string{" from ", " at ", " - ", ", ", " in "} {
		fieldStr = strings.ReplaceAll(fieldStr, sep, " ")
	}
	field := ""
	if fieldStr = strings.Join(strings.Fields(fieldStr), " "); fieldStr != "" {
		field = n.titler.String(fieldStr)
	}

	return domain.Degree{
		Degree:      degreeType,
		Field:       field,
		Institution: institution,
		Level:       degreeLevels[degreeType],
	}, true
}

// NormalizeCertification parses a certification string, extracting the
// canonical certification type, issuer, and year when present.
func (n *CredentialNormalizer) NormalizeCertification(raw string) (domain.Certification, bool) {
	if strings.TrimSpace(raw) == "" {
		return domain.Certification{}, false
	}
	lower := strings.ToLower(strings.TrimSpace(raw))

	certType := ""
	for _, key := range certificationKeyOrder {
		if strings.Contains(lower, key) {
			certType = certificationMappings[key]
			break
		}
	}

	year := extractYear(raw)

	issuer := ""
	for _, sep := range []string{" by ", " from ", " - "} {
		if idx := strings.LastIndex(lower, sep); idx >= 0 {
			issuer = n.titler.String(strings.TrimSpace(lower[idx+len(sep):]))
			break
		}
	}

	if certType == "" {
		return domain.Certification{Certification: raw, Year: year}, true
	}
	return domain.Certification{Certification: certType, Issuer: issuer, Year: year}, true
}

// NormalizeAwards classifies a list of award strings into categories and
// prestige buckets.
func (n *CredentialNormalizer) NormalizeAwards(awards []string) AwardResult {
	result := AwardResult{
		Awards:        []domain.Award{},
		Categories:    []string{},
		SpeakerAwards: []string{},
		MediaAwards:   []string{},
	}

	categories := make(stringSet)
	prestigious := make(stringSet)
	speaker := make(stringSet)
	media := make(stringSet)

	for _, raw := range awards {
		if strings.TrimSpace(raw) == "" {
			continue
		}
		lower := strings.ToLower(raw)

		category := ""
		for _, key := range awardKeyOrder {
			if strings.Contains(lower, key) {
				category = awardCategories[key]
				categories.Add(category)
				switch {
				case prestigiousAwards[category]:
					prestigious.Add(category)
				case speakerAwards[category]:
					speaker.Add(category)
				case mediaAwards[category]:
					media.Add(category)
				}
				break
			}
		}

		result.Awards = append(result.Awards, domain.Award{
			Award:    raw,
			Category: category,
			Year:     extractYear(raw),
		})
	}

	result.Categories = categories.Sorted()
	result.PrestigiousCount = len(prestigious)
	result.SpeakerAwards = speaker.Sorted()
	result.MediaAwards = media.Sorted()
	return result
}

// ExtractFromBio scans biography text for degree, certification, and award
// keywords in one automaton pass over the combined tables.
func (n *CredentialNormalizer) ExtractFromBio(bio string) BioCredentials {
	result := BioCredentials{
		Degrees:        []domain.Degree{},
		Certifications: []domain.Certification{},
		Awards:         []domain.Award{},
	}
	if bio == "" {
		return result
	}
	lower := strings.ToLower(bio)

	seenDegrees := make(stringSet)
	seenCerts := make(stringSet)
	seenAwards := make(stringSet)

	for _, hit := range n.bioMatcher.Match([]byte(lower)) {
		p := n.bioPatterns[hit]
		switch p.kind {
		case 0:
			canonical := degreeMappings[p.key]
			if seenDegrees.Has(canonical) {
				continue
			}
			seenDegrees.Add(canonical)
			if deg, ok := n.NormalizeDegree(degreeContext(lower, p.key)); ok {
				result.Degrees = append(result.Degrees, deg)
			}
		case 1:
			canonical := certificationMappings[p.key]
			if seenCerts.Has(canonical) {
				continue
			}
			seenCerts.Add(canonical)
			result.Certifications = append(result.Certifications, domain.Certification{Certification: canonical})
		case 2:
			canonical := awardCategories[p.key]
			if seenAwards.Has(canonical) {
				continue
			}
			seenAwards.Add(canonical)
			result.Awards = append(result.Awards, domain.Award{Award: canonical, Category: canonical})
		}
	}
	return result
}

// degreeContext cuts a short window after the first occurrence of the
// degree keyword, enough to carry a field of study and institution.
func degreeContext(text, key string) string {
	idx := strings.Index(text, key)
	if idx < 0 {
		return key
	}
	end := idx + len(key) + 80
	if end > len(text) {
		end = len(text)
	}
	if stop := strings.IndexAny(text[idx:end], ".;\n"); stop > len(key) {
		end = idx + stop
	}
	return text[idx:end]
}

func extractYear(s string) *int {
	match := yearPattern.FindString(s)
	if match == "" {
		return nil
	}
	year, err := strconv.Atoi(match)
	if err != nil {
		return nil
	}
	return &year
}
