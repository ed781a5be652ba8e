package resolver

import (
	"errors"
	"strconv"
	"strings"
	"time"

	"github.com/itsmudassir/expert-finder/internal/domain"
	"github.com/itsmudassir/expert-finder/internal/normalizer"
	"github.com/itsmudassir/expert-finder/internal/profile"
)

// ErrMissingIdentity marks an attempt to merge a profile that was never
// assigned a unified id. This is a programming error, not bad input.
var ErrMissingIdentity = errors.New("resolver: profile has no unified id")

var (
	expertiseNorm = normalizer.NewExpertiseNormalizer()
	industryNorm  = normalizer.NewIndustryNormalizer()
)

// Merge folds src into dst. Precedence rules: classifier-backed category
// fields are re-derived from the union of raw inputs rather than merged;
// scalars prefer the non-empty value with dst winning on conflict; list
// fields concatenate and deduplicate; the numerically lowest data-quality
// tier wins. All derived scores are recomputed from the merged state.
func Merge(dst, src *domain.Profile, now time.Time) error {
	if dst.UnifiedID == "" || src.UnifiedID == "" {
		return ErrMissingIdentity
	}

	dst.Metadata.Sources = normalizer.Dedupe(append(dst.Metadata.Sources, src.Metadata.Sources...))
	for source, id := range src.SourceIDs {
		if _, ok := dst.SourceIDs[source]; !ok {
			dst.SourceIDs[source] = id
		}
	}

	mergeExpertise(dst, src)
	mergeScalars(dst, src)
	mergeLists(dst, src)
	mergeCredentials(dst, src)
	mergeLanguages(dst, src)
	mergeEngagement(dst, src)

	if tierRank(src.Metadata.DataQualityTier) < tierRank(dst.Metadata.DataQualityTier) {
		dst.Metadata.DataQualityTier = src.Metadata.DataQualityTier
	}

	profile.Rescore(dst)
	dst.Touch(now)
	return nil
}

// mergeExpertise re-runs both classifiers on the unions of original terms.
// Merging pre-computed category lists directly would make the result depend
// on merge order.
func mergeExpertise(dst, src *domain.Profile) {
	terms := normalizer.Dedupe(append(dst.Expertise.OriginalTerms, src.Expertise.OriginalTerms...))
	exp := expertiseNorm.Normalize(terms)
	dst.Expertise.PrimaryCategories = exp.PrimaryCategories
	dst.Expertise.SecondaryCategories = exp.SecondaryCategories
	dst.Expertise.ParentCategories = exp.ParentCategories
	dst.Expertise.Keywords = exp.Keywords
	dst.Expertise.OriginalTerms = exp.OriginalTerms

	industries := normalizer.Dedupe(append(dst.Expertise.Industries, src.Expertise.Industries...))
	if len(industries) > 0 {
		ind := industryNorm.Normalize(industries)
		dst.Expertise.Industries = industries
		dst.Expertise.NormalizedIndustries = domain.NormalizedIndustries{
			Primary:   ind.PrimaryIndustries,
			Secondary: ind.SecondaryIndustries,
			Keywords:  ind.Keywords,
		}
	}

	dst.Expertise.ResearchAreas = normalizer.Dedupe(append(dst.Expertise.ResearchAreas, src.Expertise.ResearchAreas...))
}

func mergeScalars(dst, src *domain.Profile) {
	preferNonEmpty(&dst.BasicInfo.Gender, src.BasicInfo.Gender)
	preferNonEmpty(&dst.BasicInfo.Pronouns, src.BasicInfo.Pronouns)

	preferNonEmpty(&dst.ProfessionalInfo.Title, src.ProfessionalInfo.Title)
	preferNonEmpty(&dst.ProfessionalInfo.Company, src.ProfessionalInfo.Company)
	preferNonEmpty(&dst.ProfessionalInfo.Tagline, src.ProfessionalInfo.Tagline)
	if dst.ProfessionalInfo.YearsExperience == nil {
		dst.ProfessionalInfo.YearsExperience = src.ProfessionalInfo.YearsExperience
	}

	preferNonEmpty(&dst.Biography.Full, src.Biography.Full)
	preferNonEmpty(&dst.Biography.Short, src.Biography.Short)
	preferNonEmpty(&dst.Biography.Brief, src.Biography.Brief)

	preferNonEmpty(&dst.Location.City, src.Location.City)
	preferNonEmpty(&dst.Location.State, src.Location.State)
	preferNonEmpty(&dst.Location.Country, src.Location.Country)
	preferNonEmpty(&dst.Location.Timezone, src.Location.Timezone)

	preferNonEmpty(&dst.Contact.Email, src.Contact.Email)
	preferNonEmpty(&dst.Contact.Phone, src.Contact.Phone)
	preferNonEmpty(&dst.Contact.BookingURL, src.Contact.BookingURL)

	preferNonEmpty(&dst.OnlinePresence.Website, src.OnlinePresence.Website)
	if dst.OnlinePresence.SocialMedia == nil {
		dst.OnlinePresence.SocialMedia = map[string]string{}
	}
	for network, url := range src.OnlinePresence.SocialMedia {
		if dst.OnlinePresence.SocialMedia[network] == "" {
			dst.OnlinePresence.SocialMedia[network] = url
		}
	}

	preferNonEmpty(&dst.Demographics.AgeBracket, src.Demographics.AgeBracket)
	preferNonEmpty(&dst.Demographics.Generation, src.Demographics.Generation)
	if dst.Demographics.Age == nil {
		dst.Demographics.Age = src.Demographics.Age
	}
	if dst.Demographics.BirthYear == nil {
		dst.Demographics.BirthYear = src.Demographics.BirthYear
	}
	if dst.Demographics.DiversityFlags == nil {
		dst.Demographics.DiversityFlags = map[string]bool{}
	}
	for flag, set := range src.Demographics.DiversityFlags {
		if set {
			dst.Demographics.DiversityFlags[flag] = true
		}
	}
	dst.Demographics.IsDEISpeaker = dst.Demographics.IsDEISpeaker || src.Demographics.IsDEISpeaker

	preferNonEmpty(&dst.SpeakingInfo.PrimaryFormat, src.SpeakingInfo.PrimaryFormat)
	preferNonEmpty(&dst.SpeakingInfo.PrimaryAudience, src.SpeakingInfo.PrimaryAudience)
	preferNonEmpty(&dst.Media.PrimaryImage, src.Media.PrimaryImage)

	dst.SpeakingInfo.VirtualCapable = dst.SpeakingInfo.VirtualCapable || src.SpeakingInfo.VirtualCapable
	dst.SpeakingInfo.CanEmcee = dst.SpeakingInfo.CanEmcee || src.SpeakingInfo.CanEmcee
	dst.SpeakingInfo.AcceptsProBono = dst.SpeakingInfo.AcceptsProBono || src.SpeakingInfo.AcceptsProBono

	if dst.SpeakingInfo.YearsSpeaking == nil {
		dst.SpeakingInfo.YearsSpeaking = src.SpeakingInfo.YearsSpeaking
	}
	if dst.SpeakingInfo.TalksDelivered == nil {
		dst.SpeakingInfo.TalksDelivered = src.SpeakingInfo.TalksDelivered
	}
	if dst.SpeakingInfo.Fee == nil {
		dst.SpeakingInfo.Fee = src.SpeakingInfo.Fee
	}
	if dst.SpeakingInfo.AudienceSizes.Min == nil {
		dst.SpeakingInfo.AudienceSizes.Min = src.SpeakingInfo.AudienceSizes.Min
	}
	if dst.SpeakingInfo.AudienceSizes.Max == nil {
		dst.SpeakingInfo.AudienceSizes.Max = src.SpeakingInfo.AudienceSizes.Max
	}
	dst.SpeakingInfo.AudienceSizes.ComfortableWithLarge = dst.SpeakingInfo.AudienceSizes.ComfortableWithLarge ||
		src.SpeakingInfo.AudienceSizes.ComfortableWithLarge
}

func mergeLists(dst, src *domain.Profile) {
	dst.SpeakingInfo.Formats = normalizer.Dedupe(append(dst.SpeakingInfo.Formats, src.SpeakingInfo.Formats...))
	dst.SpeakingInfo.AudienceTypes = normalizer.Dedupe(append(dst.SpeakingInfo.AudienceTypes, src.SpeakingInfo.AudienceTypes...))
	dst.SpeakingInfo.SectorsServed = normalizer.Dedupe(append(dst.SpeakingInfo.SectorsServed, src.SpeakingInfo.SectorsServed...))
	dst.SpeakingInfo.EventTypes = normalizer.Dedupe(append(dst.SpeakingInfo.EventTypes, src.SpeakingInfo.EventTypes...))

	dst.Media.Images = normalizer.Dedupe(append(dst.Media.Images, src.Media.Images...))
	dst.Media.Videos = normalizer.Dedupe(append(dst.Media.Videos, src.Media.Videos...))
	dst.Media.AudioClips = normalizer.Dedupe(append(dst.Media.AudioClips, src.Media.AudioClips...))
	dst.Media.OneSheets = normalizer.Dedupe(append(dst.Media.OneSheets, src.Media.OneSheets...))

	dst.Achievements.Books = normalizer.Dedupe(append(dst.Achievements.Books, src.Achievements.Books...))
	dst.Achievements.MediaAppearances = normalizer.Dedupe(append(dst.Achievements.MediaAppearances, src.Achievements.MediaAppearances...))
	dst.Achievements.SpeakingHighlights = normalizer.Dedupe(append(dst.Achievements.SpeakingHighlights, src.Achievements.SpeakingHighlights...))
}

func mergeCredentials(dst, src *domain.Profile) {
	seen := make(map[string]bool, len(dst.Credentials.Degrees))
	for _, d := range dst.Credentials.Degrees {
		seen[strings.ToLower(d.Degree)] = true
	}
	for _, d := range src.Credentials.Degrees {
		if !seen[strings.ToLower(d.Degree)] {
			seen[strings.ToLower(d.Degree)] = true
			dst.Credentials.Degrees = append(dst.Credentials.Degrees, d)
		}
	}

	seen = make(map[string]bool, len(dst.Credentials.Certifications))
	for _, c := range dst.Credentials.Certifications {
		seen[strings.ToLower(c.Certification)] = true
	}
	for _, c := range src.Credentials.Certifications {
		if !seen[strings.ToLower(c.Certification)] {
			seen[strings.ToLower(c.Certification)] = true
			dst.Credentials.Certifications = append(dst.Credentials.Certifications, c)
		}
	}

	seen = make(map[string]bool, len(dst.Credentials.Awards))
	for _, a := range dst.Credentials.Awards {
		seen[strings.ToLower(a.Award)] = true
	}
	for _, a := range src.Credentials.Awards {
		if !seen[strings.ToLower(a.Award)] {
			seen[strings.ToLower(a.Award)] = true
			dst.Credentials.Awards = append(dst.Credentials.Awards, a)
		}
	}

	dst.Credentials.Honors = normalizer.Dedupe(append(dst.Credentials.Honors, src.Credentials.Honors...))

	dst.Education.Degrees = normalizer.Dedupe(append(dst.Education.Degrees, src.Education.Degrees...))
	dst.Education.Institutions = normalizer.Dedupe(append(dst.Education.Institutions, src.Education.Institutions...))
	dst.Education.FieldsOfStudy = normalizer.Dedupe(append(dst.Education.FieldsOfStudy, src.Education.FieldsOfStudy...))
}

func mergeLanguages(dst, src *domain.Profile) {
	dst.Languages.Native = normalizer.Dedupe(append(dst.Languages.Native, src.Languages.Native...))
	dst.Languages.Fluent = normalizer.Dedupe(append(dst.Languages.Fluent, src.Languages.Fluent...))
	dst.Languages.Conversational = normalizer.Dedupe(append(dst.Languages.Conversational, src.Languages.Conversational...))
	dst.Languages.Basic = normalizer.Dedupe(append(dst.Languages.Basic, src.Languages.Basic...))
	dst.Languages.Codes = normalizer.Dedupe(append(dst.Languages.Codes, src.Languages.Codes...))
	dst.Languages.Count = len(dst.Languages.Codes)

	// The display string is derived data; rebuild it from the merged
	// buckets like the category fields are re-derived from term unions.
	if len(dst.Languages.Codes) > 0 {
		dst.Languages.Display = normalizer.LanguageDisplay(
			dst.Languages.Codes,
			dst.Languages.Native,
			dst.Languages.Fluent,
			dst.Languages.Conversational,
			dst.Languages.Basic,
		)
	} else {
		preferNonEmpty(&dst.Languages.Display, src.Languages.Display)
	}

	dst.SpeakingInfo.Languages = dst.Languages.Codes
}

func mergeEngagement(dst, src *domain.Profile) {
	seen := make(map[string]bool, len(dst.Engagement.Testimonials))
	for _, t := range dst.Engagement.Testimonials {
		seen[testimonialKey(t)] = true
	}
	for _, t := range src.Engagement.Testimonials {
		key := testimonialKey(t)
		if seen[key] {
			continue
		}
		seen[key] = true
		dst.Engagement.Testimonials = append(dst.Engagement.Testimonials, t)
	}
	dst.SpeakingInfo.TestimonialCount = len(dst.Engagement.Testimonials)

	sum, count := 0.0, 0
	for _, t := range dst.Engagement.Testimonials {
		if t.Rating != nil {
			sum += *t.Rating
			count++
		}
	}
	switch {
	case count > 0:
		avg := sum / float64(count)
		dst.Engagement.AverageRating = &avg
		dst.Engagement.RatingCount = count
		dst.SpeakingInfo.AverageRating = &avg
		dst.SpeakingInfo.TotalRatings = count
	case dst.Engagement.AverageRating == nil && src.Engagement.AverageRating != nil:
		dst.Engagement.AverageRating = src.Engagement.AverageRating
		dst.Engagement.RatingCount = src.Engagement.RatingCount
		dst.SpeakingInfo.AverageRating = src.SpeakingInfo.AverageRating
		dst.SpeakingInfo.TotalRatings = src.SpeakingInfo.TotalRatings
	}
}

// testimonialKey identifies a testimonial for dedup purposes. Text alone is
// not enough: rating-only entries all share the empty text.
func testimonialKey(t domain.Testimonial) string {
	key := t.Text + "\x00" + t.Author
	if t.Rating != nil {
		key += "\x00" + strconv.FormatFloat(*t.Rating, 'f', -1, 64)
	}
	return key
}

func preferNonEmpty(dst *string, src string) {
	if *dst == "" && src != "" {
		*dst = src
	}
}

// tierRank orders data-quality tiers: cat_1 outranks cat_2 and so on. The
// empty tier ranks last.
func tierRank(tier string) int {
	if !strings.HasPrefix(tier, "cat_") {
		return 1 << 30
	}
	n, err := strconv.Atoi(strings.TrimPrefix(tier, "cat_"))
	if err != nil {
		return 1 << 30
	}
	return n
}
