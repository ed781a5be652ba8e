// Package domain defines the canonical profile model shared by the
// consolidation pipeline, the resolver, and the query API.
package domain

import "time"

// Profile is the unit of record: one consolidated speaker/expert identity
// assembled from one or more source observations. Field paths (bson tags)
// are the stable contract the query layer depends on.
type Profile struct {
	UnifiedID string `bson:"unified_id" json:"unified_id"`

	// SourceIDs maps source name to that source's native identifier for
	// this person. Accumulates across merges.
	SourceIDs map[string]string `bson:"source_ids" json:"source_ids"`

	BasicInfo        BasicInfo        `bson:"basic_info"        json:"basic_info"`
	Demographics     Demographics     `bson:"demographics"      json:"demographics"`
	ProfessionalInfo ProfessionalInfo `bson:"professional_info" json:"professional_info"`
	Credentials      Credentials      `bson:"credentials"       json:"credentials"`
	Location         Location         `bson:"location"          json:"location"`
	Languages        Languages        `bson:"languages"         json:"languages"`
	Biography        Biography        `bson:"biography"         json:"biography"`
	Expertise        Expertise        `bson:"expertise"         json:"expertise"`
	SpeakingInfo     SpeakingInfo     `bson:"speaking_info"     json:"speaking_info"`
	Media            Media            `bson:"media"             json:"media"`
	Achievements     Achievements     `bson:"achievements"      json:"achievements"`
	Education        Education        `bson:"education"         json:"education"`
	OnlinePresence   OnlinePresence   `bson:"online_presence"   json:"online_presence"`
	Contact          Contact          `bson:"contact"           json:"contact"`
	Engagement       Engagement       `bson:"engagement"        json:"engagement"`
	Metadata         Metadata         `bson:"metadata"          json:"metadata"`
}

// BasicInfo holds name components plus self-reported gender identity.
type BasicInfo struct {
	FullName    string `bson:"full_name"          json:"full_name"`
	FirstName   string `bson:"first_name"         json:"first_name"`
	LastName    string `bson:"last_name"          json:"last_name"`
	DisplayName string `bson:"display_name"       json:"display_name"`
	Pronouns    string `bson:"pronouns,omitempty" json:"pronouns,omitempty"`
	Gender      string `bson:"gender,omitempty"   json:"gender,omitempty"`
}

// Demographics carries only self-identified attributes. Nothing here is
// ever inferred from names, photos, or other proxy signals.
type Demographics struct {
	Age            *int            `bson:"age,omitempty"         json:"age,omitempty"`
	AgeBracket     string          `bson:"age_bracket,omitempty" json:"age_bracket,omitempty"`
	Generation     string          `bson:"generation,omitempty"  json:"generation,omitempty"`
	BirthYear      *int            `bson:"birth_year,omitempty"  json:"birth_year,omitempty"`
	DiversityFlags map[string]bool `bson:"diversity_flags"       json:"diversity_flags"`
	IsDEISpeaker   bool            `bson:"is_dei_speaker"        json:"is_dei_speaker"`
}

type ProfessionalInfo struct {
	Title             string   `bson:"title,omitempty"            json:"title,omitempty"`
	Company           string   `bson:"company,omitempty"          json:"company,omitempty"`
	Tagline           string   `bson:"tagline,omitempty"          json:"tagline,omitempty"`
	YearsExperience   *int     `bson:"years_experience,omitempty" json:"years_experience,omitempty"`
	PreviousCompanies []string `bson:"previous_companies"         json:"previous_companies"`
	BoardMemberships  []string `bson:"board_memberships"          json:"board_memberships"`
}

// Degree is one parsed education entry.
type Degree struct {
	Degree      string `bson:"degree"                json:"degree"`
	Field       string `bson:"field,omitempty"       json:"field,omitempty"`
	Institution string `bson:"institution,omitempty" json:"institution,omitempty"`
	Level       int    `bson:"level"                 json:"level"`
}

// Certification is one parsed certification entry.
type Certification struct {
	Certification string `bson:"certification"    json:"certification"`
	Issuer        string `bson:"issuer,omitempty" json:"issuer,omitempty"`
	Year          *int   `bson:"year,omitempty"   json:"year,omitempty"`
}

// Award is one parsed award/honor entry.
type Award struct {
	Award    string `bson:"award"              json:"award"`
	Category string `bson:"category,omitempty" json:"category,omitempty"`
	Year     *int   `bson:"year,omitempty"     json:"year,omitempty"`
}

type Credentials struct {
	Degrees        []Degree        `bson:"degrees"        json:"degrees"`
	Certifications []Certification `bson:"certifications" json:"certifications"`
	Awards         []Award         `bson:"awards"         json:"awards"`
	Honors         []string        `bson:"honors"         json:"honors"`
}

type Location struct {
	City             string `bson:"city,omitempty"         json:"city,omitempty"`
	State            string `bson:"state,omitempty"        json:"state,omitempty"`
	Country          string `bson:"country,omitempty"      json:"country,omitempty"`
	CountryCode      string `bson:"country_code,omitempty" json:"country_code,omitempty"`
	Region           string `bson:"region,omitempty"       json:"region,omitempty"`
	Timezone         string `bson:"timezone,omitempty"     json:"timezone,omitempty"`
	AvailableTravel  bool   `bson:"available_for_travel"   json:"available_for_travel"`
	VirtualAvailable bool   `bson:"virtual_available"      json:"virtual_available"`
}

// Languages buckets the person's languages by proficiency. Codes are
// ISO 639-1; Display is a human-readable summary string.
type Languages struct {
	Native         []string `bson:"native"            json:"native"`
	Fluent         []string `bson:"fluent"            json:"fluent"`
	Conversational []string `bson:"conversational"    json:"conversational"`
	Basic          []string `bson:"basic"             json:"basic"`
	Codes          []string `bson:"codes"             json:"codes"`
	Count          int      `bson:"count"             json:"count"`
	Display        string   `bson:"display,omitempty" json:"display,omitempty"`
}

type Biography struct {
	Brief string `bson:"brief,omitempty" json:"brief,omitempty"`
	Short string `bson:"short,omitempty" json:"short,omitempty"`
	Full  string `bson:"full,omitempty"  json:"full,omitempty"`
}

// NormalizedIndustries is the industry classifier output attached to a
// profile's expertise section.
type NormalizedIndustries struct {
	Primary   []string `bson:"primary"   json:"primary"`
	Secondary []string `bson:"secondary" json:"secondary"`
	Keywords  []string `bson:"keywords"  json:"keywords"`
}

// Expertise is layered: OriginalTerms preserves verbatim source input so
// category assignment can be recomputed from scratch after every merge.
type Expertise struct {
	PrimaryCategories    []string             `bson:"primary_categories"    json:"primary_categories"`
	SecondaryCategories  []string             `bson:"secondary_categories"  json:"secondary_categories"`
	ParentCategories     []string             `bson:"parent_categories"     json:"parent_categories"`
	Keywords             []string             `bson:"keywords"              json:"keywords"`
	OriginalTerms        []string             `bson:"original_terms"        json:"original_terms"`
	ResearchAreas        []string             `bson:"research_areas"        json:"research_areas"`
	Industries           []string             `bson:"industries"            json:"industries"`
	NormalizedIndustries NormalizedIndustries `bson:"normalized_industries" json:"normalized_industries"`
}

// AudienceSizes records the size range the speaker works with.
type AudienceSizes struct {
	Min                  *int `bson:"min,omitempty" json:"min,omitempty"`
	Max                  *int `bson:"max,omitempty" json:"max,omitempty"`
	ComfortableWithLarge bool `bson:"comfortable_with_large" json:"comfortable_with_large"`
}

// FeeInfo is the structured speaking-fee representation. Display always
// holds the original text; Min/Max/Bucket are set only when parseable.
type FeeInfo struct {
	Min      *int   `bson:"min,omitempty"    json:"min,omitempty"`
	Max      *int   `bson:"max,omitempty"    json:"max,omitempty"`
	Display  string `bson:"display"          json:"display"`
	Bucket   string `bson:"bucket,omitempty" json:"bucket,omitempty"`
	Currency string `bson:"currency"         json:"currency"`
	Negotiable bool `bson:"negotiable"       json:"negotiable"`
}

type SpeakingInfo struct {
	YearsSpeaking  *int     `bson:"years_speaking,omitempty"  json:"years_speaking,omitempty"`
	TalksDelivered *int     `bson:"talks_delivered,omitempty" json:"talks_delivered,omitempty"`
	Formats        []string `bson:"formats"                   json:"formats"`
	PrimaryFormat  string   `bson:"primary_format,omitempty"  json:"primary_format,omitempty"`
	VirtualCapable bool     `bson:"virtual_capable"           json:"virtual_capable"`
	CanEmcee       bool     `bson:"can_emcee"                 json:"can_emcee"`

	AudienceTypes   []string      `bson:"audience_types"           json:"audience_types"`
	PrimaryAudience string        `bson:"primary_audience,omitempty" json:"primary_audience,omitempty"`
	SectorsServed   []string      `bson:"sectors_served"           json:"sectors_served"`
	AudienceSizes   AudienceSizes `bson:"audience_sizes"           json:"audience_sizes"`

	Fee            *FeeInfo `bson:"fee,omitempty"        json:"fee,omitempty"`
	AcceptsProBono bool     `bson:"accepts_pro_bono"     json:"accepts_pro_bono"`

	Languages []string `bson:"languages" json:"languages"`

	AverageRating    *float64 `bson:"average_rating,omitempty" json:"average_rating,omitempty"`
	TotalRatings     int      `bson:"total_ratings"            json:"total_ratings"`
	TestimonialCount int      `bson:"testimonial_count"        json:"testimonial_count"`

	EventTypes []string `bson:"event_types" json:"event_types"`
}

type Media struct {
	PrimaryImage string   `bson:"primary_image,omitempty" json:"primary_image,omitempty"`
	Images       []string `bson:"images"                  json:"images"`
	Videos       []string `bson:"videos"                  json:"videos"`
	AudioClips   []string `bson:"audio_clips"             json:"audio_clips"`
	OneSheets    []string `bson:"one_sheets"              json:"one_sheets"`
}

type Achievements struct {
	Books              []string `bson:"books"               json:"books"`
	MediaAppearances   []string `bson:"media_appearances"   json:"media_appearances"`
	SpeakingHighlights []string `bson:"speaking_highlights" json:"speaking_highlights"`
}

// Education is the flattened view of the parsed degree entries, kept for
// search and faceting.
type Education struct {
	Degrees       []string `bson:"degrees"         json:"degrees"`
	Institutions  []string `bson:"institutions"    json:"institutions"`
	FieldsOfStudy []string `bson:"fields_of_study" json:"fields_of_study"`
}

type OnlinePresence struct {
	Website     string            `bson:"website,omitempty" json:"website,omitempty"`
	Blog        string            `bson:"blog,omitempty"    json:"blog,omitempty"`
	Podcast     string            `bson:"podcast,omitempty" json:"podcast,omitempty"`
	SocialMedia map[string]string `bson:"social_media"      json:"social_media"`
}

type AgentInfo struct {
	Name   string `bson:"name,omitempty"   json:"name,omitempty"`
	Agency string `bson:"agency,omitempty" json:"agency,omitempty"`
	Email  string `bson:"email,omitempty"  json:"email,omitempty"`
	Phone  string `bson:"phone,omitempty"  json:"phone,omitempty"`
}

type Contact struct {
	Email      string     `bson:"email,omitempty"       json:"email,omitempty"`
	Phone      string     `bson:"phone,omitempty"       json:"phone,omitempty"`
	BookingURL string     `bson:"booking_url,omitempty" json:"booking_url,omitempty"`
	Agent      *AgentInfo `bson:"agent,omitempty"       json:"agent,omitempty"`
}

// Testimonial is one piece of social proof from a source.
type Testimonial struct {
	Text   string   `bson:"text"             json:"text"`
	Author string   `bson:"author,omitempty" json:"author,omitempty"`
	Rating *float64 `bson:"rating,omitempty" json:"rating,omitempty"`
}

type Engagement struct {
	Testimonials  []Testimonial `bson:"testimonials"             json:"testimonials"`
	AverageRating *float64      `bson:"average_rating,omitempty" json:"average_rating,omitempty"`
	RatingCount   int           `bson:"rating_count"             json:"rating_count"`
}

// Metadata carries provenance and derived scores. Scores are always
// recomputed from the current merged state, never carried over or averaged.
type Metadata struct {
	CreatedAt       time.Time `bson:"created_at"                  json:"created_at"`
	UpdatedAt       time.Time `bson:"updated_at"                  json:"updated_at"`
	ProfileScore    int       `bson:"profile_score"               json:"profile_score"`
	Completeness    int       `bson:"completeness_score"          json:"completeness_score"`
	ExperienceScore int       `bson:"experience_score"            json:"experience_score"`
	DataQualityTier string    `bson:"data_quality_tier,omitempty" json:"data_quality_tier,omitempty"`
	PrimarySource   string    `bson:"primary_source"              json:"primary_source"`
	Sources         []string  `bson:"sources"                     json:"sources"`
}

// Touch updates the profile's modification timestamp.
func (p *Profile) Touch(now time.Time) {
	p.Metadata.UpdatedAt = now
}

// SocialURLs returns all social-media and website URLs attached to the
// profile, used by the resolver's shared-URL identity check.
func (p *Profile) SocialURLs() []string {
	urls := make([]string, 0, len(p.OnlinePresence.SocialMedia)+1)
	for _, u := range p.OnlinePresence.SocialMedia {
		if u != "" {
			urls = append(urls, u)
		}
	}
	if p.OnlinePresence.Website != "" {
		urls = append(urls, p.OnlinePresence.Website)
	}
	return urls
}
