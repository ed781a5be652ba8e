package profile

import (
	"github.com/itsmudassir/expert-finder/internal/domain"
	"github.com/itsmudassir/expert-finder/internal/normalizer"
)

var speaking = normalizer.NewSpeakingNormalizer()

// Rescore recomputes all derived scores from the profile's current state.
// Called after construction and after every merge; scores are never carried
// over or combined arithmetically.
func Rescore(p *domain.Profile) {
	p.Metadata.ProfileScore = Score(p)
	p.Metadata.Completeness = Completeness(p)
	p.Metadata.ExperienceScore = ExperienceScore(p)
}

// Score is the 0-100 quality score: a fixed additive point table over
// presence and length thresholds, capped at 100.
func Score(p *domain.Profile) int {
	score := 0

	if p.BasicInfo.FullName != "" {
		score += 10
	}
	if p.BasicInfo.FirstName != "" && p.BasicInfo.LastName != "" {
		score += 5
	}
	if p.BasicInfo.Pronouns != "" {
		score += 5
	}

	if p.ProfessionalInfo.Title != "" {
		score += 5
	}
	if p.ProfessionalInfo.Tagline != "" {
		score += 5
	}

	switch bio := len(p.Biography.Full); {
	case bio > 500:
		score += 15
	case bio > 200:
		score += 10
	case bio > 0:
		score += 5
	}

	if p.Location.Country != "" {
		score += 5
	}
	if p.Location.City != "" || p.Location.State != "" {
		score += 5
	}

	if len(p.Expertise.PrimaryCategories) > 0 {
		score += 10
	}
	if len(p.Expertise.Keywords) > 5 {
		score += 5
	}
	if len(p.Expertise.ResearchAreas) > 0 {
		score += 5
	}

	if len(p.Credentials.Degrees) > 0 {
		score += 5
	}

	if p.SpeakingInfo.Fee != nil {
		score += 5
	}

	if len(p.Media.Images) > 0 {
		score += 5
	}
	if len(p.Media.Videos) > 0 {
		score += 5
	}

	if p.Contact.Email != "" || p.Contact.BookingURL != "" {
		score += 5
	}

	if score > 100 {
		score = 100
	}
	return score
}

// completenessChecks is the fixed field checklist the completeness
// percentage is computed over.
func completenessChecks(p *domain.Profile) []bool {
	return []bool{
		p.BasicInfo.FullName != "",
		p.BasicInfo.FirstName != "",
		p.BasicInfo.LastName != "",
		p.BasicInfo.Pronouns != "",

		p.Demographics.AgeBracket != "",
		p.Demographics.Generation != "",

		p.ProfessionalInfo.Title != "",
		p.ProfessionalInfo.Company != "",
		p.ProfessionalInfo.YearsExperience != nil,

		len(p.Credentials.Degrees) > 0,
		len(p.Credentials.Certifications) > 0,
		len(p.Credentials.Awards) > 0,

		len(p.Languages.Codes) > 0,

		p.Location.City != "",
		p.Location.Country != "",
		p.Location.Timezone != "",

		len(p.Expertise.PrimaryCategories) > 0,
		len(p.Expertise.NormalizedIndustries.Primary) > 0,

		len(p.SpeakingInfo.Formats) > 0,
		len(p.SpeakingInfo.AudienceTypes) > 0,
		p.SpeakingInfo.Fee != nil,

		len(p.Media.Images) > 0,
		len(p.Media.Videos) > 0,

		p.Contact.Email != "",
		p.Contact.Phone != "",
	}
}

// Completeness is the percentage of checklist fields that are filled.
func Completeness(p *domain.Profile) int {
	checks := completenessChecks(p)
	filled := 0
	for _, ok := range checks {
		if ok {
			filled++
		}
	}
	return filled * 100 / len(checks)
}

// ExperienceScore computes the speaking-experience score from the profile's
// speaking section.
func ExperienceScore(p *domain.Profile) int {
	in := normalizer.ExperienceInput{
		FormatCount:          len(p.SpeakingInfo.Formats),
		ComfortableWithLarge: p.SpeakingInfo.AudienceSizes.ComfortableWithLarge,
	}
	if p.SpeakingInfo.YearsSpeaking != nil {
		in.YearsSpeaking = *p.SpeakingInfo.YearsSpeaking
	}
	if p.SpeakingInfo.TalksDelivered != nil {
		in.TalksDelivered = *p.SpeakingInfo.TalksDelivered
	}
	if p.SpeakingInfo.AudienceSizes.Max != nil {
		in.MaxAudience = *p.SpeakingInfo.AudienceSizes.Max
	}
	if p.SpeakingInfo.AverageRating != nil {
		in.AverageRating = *p.SpeakingInfo.AverageRating
	}
	return speaking.ExperienceScore(in)
}
