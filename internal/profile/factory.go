// Package profile builds canonical profiles from raw source records and
// computes their derived scores.
package profile

import (
	"errors"
	"strings"
	"time"

	"github.com/itsmudassir/expert-finder/internal/domain"
	"github.com/itsmudassir/expert-finder/internal/normalizer"
	"github.com/itsmudassir/expert-finder/internal/parser"
)

// ErrNoName marks a source record without a usable name. Callers skip and
// count these; they never abort a run.
var ErrNoName = errors.New("profile: record has no usable name")

// Factory assembles one canonical profile per source record, running every
// free-text field through the matching classifier or parser.
type Factory struct {
	expertise    *normalizer.ExpertiseNormalizer
	industry     *normalizer.IndustryNormalizer
	language     *normalizer.LanguageNormalizer
	credential   *normalizer.CredentialNormalizer
	speaking     *normalizer.SpeakingNormalizer
	demographics *normalizer.DemographicsNormalizer

	now func() time.Time
}

func NewFactory() *Factory {
	return &Factory{
		expertise:    normalizer.NewExpertiseNormalizer(),
		industry:     normalizer.NewIndustryNormalizer(),
		language:     normalizer.NewLanguageNormalizer(),
		credential:   normalizer.NewCredentialNormalizer(),
		speaking:     normalizer.NewSpeakingNormalizer(),
		demographics: normalizer.NewDemographicsNormalizer(),
		now:          time.Now,
	}
}

// Build populates a profile from one raw source record. Field access is
// defensive throughout; no source guarantees a schema. The unified identity
// key is assigned later by the resolver.
func (f *Factory) Build(source string, rec domain.Record) (*domain.Profile, error) {
	rawName := rec.FirstString("name", "full_name", "speaker_name")
	if rawName == "" || isNoise(rawName) {
		return nil, ErrNoName
	}

	now := f.now()
	p := &domain.Profile{
		SourceIDs: map[string]string{},
		Metadata: domain.Metadata{
			CreatedAt:     now,
			UpdatedAt:     now,
			PrimarySource: source,
			Sources:       []string{source},
		},
	}

	if id := rec.FirstString("speaker_id", "source_id", "id", "_id"); id != "" {
		p.SourceIDs[source] = id
	}

	name := parser.ParseName(rawName)
	p.BasicInfo = domain.BasicInfo{
		FullName:    rawName,
		FirstName:   name.First,
		LastName:    name.Last,
		DisplayName: name.Display,
	}

	f.buildDemographics(p, rec)
	f.buildProfessional(p, rec)
	f.buildBiography(p, rec)
	f.buildLocation(p, rec)
	f.buildExpertise(p, rec)
	f.buildLanguages(p, rec)
	f.buildCredentials(p, rec)
	f.buildSpeaking(p, rec)
	f.buildMedia(p, rec)
	f.buildPresence(p, rec)
	f.buildContact(p, rec)
	f.buildEngagement(p, rec)
	f.extractFromBio(p)

	p.Metadata.DataQualityTier = rec.FirstString("data_quality_tier", "tier")

	Rescore(p)
	return p, nil
}

func (f *Factory) buildDemographics(p *domain.Profile, rec domain.Record) {
	if raw := rec.String("gender"); raw != "" {
		g := f.demographics.NormalizeGender(raw)
		p.BasicInfo.Gender = g.Gender
		p.BasicInfo.Pronouns = g.Pronouns
	}
	if raw := rec.String("pronouns"); raw != "" {
		p.BasicInfo.Pronouns = raw
	}

	ageInput := rec["age"]
	if ageInput == nil {
		ageInput = rec["birth_year"]
	}
	if age, ok := f.demographics.NormalizeAge(ageInput); ok {
		if age.Age > 0 {
			p.Demographics.Age = &age.Age
		}
		p.Demographics.AgeBracket = age.Bracket
		p.Demographics.Generation = age.Generation
		if age.BirthYear > 0 {
			p.Demographics.BirthYear = &age.BirthYear
		}
	}

	terms := rec.StringList("diversity")
	terms = append(terms, rec.StringList("diversity_categories")...)
	div := f.demographics.NormalizeDiversity(terms)
	p.Demographics.DiversityFlags = div.Flags
	p.Demographics.IsDEISpeaker = div.DEISpeaker
}

func (f *Factory) buildProfessional(p *domain.Profile, rec domain.Record) {
	p.ProfessionalInfo.Title = rec.FirstString("job_title", "title")
	p.ProfessionalInfo.Company = rec.FirstString("company", "organization", "employer")
	p.ProfessionalInfo.Tagline = rec.String("tagline")
	if years, ok := rec.Int("years_experience"); ok {
		p.ProfessionalInfo.YearsExperience = &years
	}
}

func (f *Factory) buildBiography(p *domain.Profile, rec domain.Record) {
	p.Biography.Full = rec.FirstString("biography", "bio", "about", "description")
	p.Biography.Short = rec.FirstString("short_bio", "summary")
	p.Biography.Brief = rec.String("brief_bio")
}

func (f *Factory) buildLocation(p *domain.Profile, rec domain.Record) {
	if obj := rec.Map("location"); obj != nil {
		p.Location = parser.ParseLocationObject(obj)
		return
	}
	p.Location = parser.ParseLocation(rec.String("location"))
}

func (f *Factory) buildExpertise(p *domain.Profile, rec domain.Record) {
	var terms []string
	for _, key := range []string{"topics", "speaking_topics", "expertise", "field_of_expertise", "categories"} {
		terms = append(terms, rec.StringList(key)...)
	}
	terms = normalizer.Dedupe(terms)

	exp := f.expertise.Normalize(terms)
	p.Expertise.PrimaryCategories = exp.PrimaryCategories
	p.Expertise.SecondaryCategories = exp.SecondaryCategories
	p.Expertise.ParentCategories = exp.ParentCategories
	p.Expertise.Keywords = exp.Keywords
	p.Expertise.OriginalTerms = exp.OriginalTerms
	p.Expertise.ResearchAreas = rec.StringList("research_areas")

	// Explicit industry field when present; otherwise salvage industry
	// terms from the topic list, which some sources conflate.
	var ind normalizer.IndustryResult
	if industries := rec.StringList("industries"); len(industries) > 0 {
		p.Expertise.Industries = industries
		ind = f.industry.Normalize(industries)
	} else {
		ind = f.industry.MergeWithCategories(terms)
		p.Expertise.Industries = ind.OriginalTerms
	}
	p.Expertise.NormalizedIndustries = domain.NormalizedIndustries{
		Primary:   ind.PrimaryIndustries,
		Secondary: ind.SecondaryIndustries,
		Keywords:  ind.Keywords,
	}
}

func (f *Factory) buildLanguages(p *domain.Profile, rec domain.Record) {
	lang := f.language.Normalize(rec["languages"])
	p.Languages = domain.Languages{
		Native:         lang.Native,
		Fluent:         lang.Fluent,
		Conversational: lang.Conversational,
		Basic:          lang.Basic,
		Codes:          lang.Codes,
		Count:          lang.Count,
		Display:        lang.Display,
	}
	p.SpeakingInfo.Languages = lang.Codes
}

func (f *Factory) buildCredentials(p *domain.Profile, rec domain.Record) {
	var degrees []string
	degrees = append(degrees, rec.StringList("degrees")...)
	degrees = append(degrees, rec.StringList("education")...)
	for _, raw := range normalizer.Dedupe(degrees) {
		if deg, ok := f.credential.NormalizeDegree(raw); ok {
			p.Credentials.Degrees = append(p.Credentials.Degrees, deg)
		}
	}

	for _, raw := range rec.StringList("certifications") {
		if cert, ok := f.credential.NormalizeCertification(raw); ok {
			p.Credentials.Certifications = append(p.Credentials.Certifications, cert)
		}
	}

	var awards []string
	awards = append(awards, rec.StringList("awards")...)
	awards = append(awards, rec.StringList("honors")...)
	result := f.credential.NormalizeAwards(normalizer.Dedupe(awards))
	p.Credentials.Awards = result.Awards
	p.Credentials.Honors = rec.StringList("honors")

	flattenEducation(p)
}

func (f *Factory) buildSpeaking(p *domain.Profile, rec domain.Record) {
	var rawFormats []string
	for _, key := range []string{"formats", "presentation_types", "session_types"} {
		rawFormats = append(rawFormats, rec.StringList(key)...)
	}
	formats := f.speaking.NormalizeFormats(rawFormats)
	p.SpeakingInfo.Formats = formats.Formats
	p.SpeakingInfo.PrimaryFormat = formats.PrimaryFormat
	p.SpeakingInfo.VirtualCapable = formats.VirtualCapable
	p.SpeakingInfo.CanEmcee = formats.CanEmcee

	var rawAudiences []string
	for _, key := range []string{"audiences", "audience_types", "target_audience"} {
		rawAudiences = append(rawAudiences, rec.StringList(key)...)
	}
	audiences := f.speaking.NormalizeAudiences(rawAudiences)
	p.SpeakingInfo.AudienceTypes = audiences.AudienceTypes
	p.SpeakingInfo.PrimaryAudience = audiences.PrimaryAudience
	p.SpeakingInfo.SectorsServed = audiences.Sectors

	if size, ok := f.speaking.NormalizeAudienceSize(rec["audience_size"]); ok {
		if size.Min > 0 {
			p.SpeakingInfo.AudienceSizes.Min = &size.Min
		}
		if size.Max > 0 {
			p.SpeakingInfo.AudienceSizes.Max = &size.Max
		}
		p.SpeakingInfo.AudienceSizes.ComfortableWithLarge = size.ComfortableWithLarge
	}

	if years, ok := rec.Int("years_speaking"); ok {
		p.SpeakingInfo.YearsSpeaking = &years
	}
	if talks, ok := rec.Int("talks_delivered"); ok {
		p.SpeakingInfo.TalksDelivered = &talks
	} else if talks, ok := rec.Int("total_talks"); ok {
		p.SpeakingInfo.TalksDelivered = &talks
	}

	p.SpeakingInfo.EventTypes = rec.StringList("event_types")

	f.buildFee(p, rec)
}

func (f *Factory) buildFee(p *domain.Profile, rec domain.Record) {
	for _, key := range []string{"fee_details", "fee_info"} {
		if obj := rec.Map(key); obj != nil {
			if fee, ok := parser.ParseFeeObject(obj); ok {
				p.SpeakingInfo.Fee = &fee
				p.SpeakingInfo.AcceptsProBono = fee.Negotiable
				return
			}
		}
	}
	if raw := rec.FirstString("fee_range", "fee", "speaking_fee"); raw != "" {
		if fee, ok := parser.ParseFee(raw); ok {
			p.SpeakingInfo.Fee = &fee
			p.SpeakingInfo.AcceptsProBono = fee.Negotiable
		}
	}
}

func (f *Factory) buildMedia(p *domain.Profile, rec domain.Record) {
	p.Media.PrimaryImage = rec.FirstString("profile_image", "image", "photo")
	p.Media.Images = rec.StringList("images")
	if p.Media.PrimaryImage != "" && len(p.Media.Images) == 0 {
		p.Media.Images = []string{p.Media.PrimaryImage}
	}
	p.Media.Videos = rec.StringList("videos")
	p.Achievements.Books = rec.StringList("books")
}

func (f *Factory) buildPresence(p *domain.Profile, rec domain.Record) {
	p.OnlinePresence.Website = rec.String("website")
	p.OnlinePresence.SocialMedia = map[string]string{}

	if social := rec.Map("social_media"); social != nil {
		for key := range social {
			if url := social.String(key); url != "" {
				p.OnlinePresence.SocialMedia[key] = url
			}
		}
	}
	for _, network := range []string{"linkedin", "twitter", "instagram", "youtube", "facebook"} {
		if url := rec.String(network); url != "" {
			p.OnlinePresence.SocialMedia[network] = url
		}
	}
}

func (f *Factory) buildContact(p *domain.Profile, rec domain.Record) {
	p.Contact.Email = rec.String("email")
	p.Contact.Phone = rec.String("phone")
	p.Contact.BookingURL = rec.FirstString("booking_url", "contact_url")
}

func (f *Factory) buildEngagement(p *domain.Profile, rec domain.Record) {
	var testimonials []domain.Testimonial
	for _, key := range []string{"testimonials", "reviews"} {
		for _, obj := range rec.MapList(key) {
			t := domain.Testimonial{
				Text:   obj.FirstString("text", "quote", "review"),
				Author: obj.FirstString("author", "name"),
			}
			if rating, ok := obj.Float("rating"); ok {
				t.Rating = &rating
			}
			if t.Text != "" || t.Rating != nil {
				testimonials = append(testimonials, t)
			}
		}
	}
	p.Engagement.Testimonials = testimonials
	p.SpeakingInfo.TestimonialCount = len(testimonials)

	sum, count := 0.0, 0
	for _, t := range testimonials {
		if t.Rating != nil {
			sum += *t.Rating
			count++
		}
	}
	if count > 0 {
		avg := sum / float64(count)
		p.Engagement.AverageRating = &avg
		p.Engagement.RatingCount = count
		p.SpeakingInfo.AverageRating = &avg
		p.SpeakingInfo.TotalRatings = count
	} else if rating, ok := rec.Float("average_rating"); ok {
		p.Engagement.AverageRating = &rating
		p.SpeakingInfo.AverageRating = &rating
		if total, ok := rec.Int("total_ratings"); ok {
			p.Engagement.RatingCount = total
			p.SpeakingInfo.TotalRatings = total
		}
	}
}

// extractFromBio runs the best-effort biography scanners and fills only the
// gaps structured fields left empty.
func (f *Factory) extractFromBio(p *domain.Profile) {
	bio := p.Biography.Full
	if bio == "" {
		return
	}

	creds := f.credential.ExtractFromBio(bio)
	p.Credentials.Degrees = appendNewDegrees(p.Credentials.Degrees, creds.Degrees)
	p.Credentials.Certifications = appendNewCertifications(p.Credentials.Certifications, creds.Certifications)
	p.Credentials.Awards = appendNewAwards(p.Credentials.Awards, creds.Awards)
	flattenEducation(p)

	demo := f.demographics.ExtractFromBio(bio)
	if p.BasicInfo.Gender == "" && demo.Gender != "" {
		p.BasicInfo.Gender = demo.Gender
	}
	if p.BasicInfo.Pronouns == "" && demo.Pronouns != "" {
		p.BasicInfo.Pronouns = demo.Pronouns
	}
	if p.Demographics.AgeBracket == "" && demo.AgeBracket != "" {
		p.Demographics.AgeBracket = demo.AgeBracket
	}
	if len(demo.Diversity) > 0 {
		div := f.demographics.NormalizeDiversity(demo.Diversity)
		if p.Demographics.DiversityFlags == nil {
			p.Demographics.DiversityFlags = map[string]bool{}
		}
		for flag := range div.Flags {
			p.Demographics.DiversityFlags[flag] = true
		}
		p.Demographics.IsDEISpeaker = p.Demographics.IsDEISpeaker || div.DEISpeaker
	}
}

// flattenEducation rebuilds the flattened education view from the parsed
// degree entries.
func flattenEducation(p *domain.Profile) {
	degrees := make([]string, 0, len(p.Credentials.Degrees))
	var institutions, fields []string
	for _, deg := range p.Credentials.Degrees {
		degrees = append(degrees, deg.Degree)
		if deg.Institution != "" {
			institutions = append(institutions, deg.Institution)
		}
		if deg.Field != "" {
			fields = append(fields, deg.Field)
		}
	}
	p.Education.Degrees = normalizer.Dedupe(degrees)
	p.Education.Institutions = normalizer.Dedupe(institutions)
	p.Education.FieldsOfStudy = normalizer.Dedupe(fields)
}

func appendNewDegrees(existing, found []domain.Degree) []domain.Degree {
	seen := make(map[string]bool, len(existing))
	for _, d := range existing {
		seen[strings.ToLower(d.Degree)] = true
	}
	for _, d := range found {
		if !seen[strings.ToLower(d.Degree)] {
			seen[strings.ToLower(d.Degree)] = true
			existing = append(existing, d)
		}
	}
	return existing
}

func appendNewCertifications(existing, found []domain.Certification) []domain.Certification {
	seen := make(map[string]bool, len(existing))
	for _, c := range existing {
		seen[strings.ToLower(c.Certification)] = true
	}
	for _, c := range found {
		if !seen[strings.ToLower(c.Certification)] {
			seen[strings.ToLower(c.Certification)] = true
			existing = append(existing, c)
		}
	}
	return existing
}

func appendNewAwards(existing, found []domain.Award) []domain.Award {
	seen := make(map[string]bool, len(existing))
	for _, a := range existing {
		seen[strings.ToLower(a.Award)] = true
	}
	for _, a := range found {
		if !seen[strings.ToLower(a.Award)] {
			seen[strings.ToLower(a.Award)] = true
			existing = append(existing, a)
		}
	}
	return existing
}

func isNoise(name string) bool {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "", "none", "n/a":
		return true
	}
	return false
}
