package resolver

import (
	"strings"
	"time"

	"github.com/itsmudassir/expert-finder/internal/domain"
)

const (
	// DefaultThreshold is the name-similarity score treated as a
	// same-identity verdict on its own.
	DefaultThreshold = 85

	// locationThreshold is the lower similarity bar accepted when the two
	// profiles also share a city and country.
	locationThreshold = 70
)

// Resolver accumulates per-source profiles under their stage-1 identity
// keys, then groups cross-source duplicates by similarity in a second stage.
// Not safe for concurrent use; callers serialize Add.
type Resolver struct {
	threshold int
	profiles  map[string]*domain.Profile
	order     []string
	merged    int
	now       func() time.Time
}

func New(threshold int) *Resolver {
	if threshold <= 0 {
		threshold = DefaultThreshold
	}
	return &Resolver{
		threshold: threshold,
		profiles:  map[string]*domain.Profile{},
		now:       time.Now,
	}
}

// Add stores a profile under its identity key, merging when the key is
// already known. Profiles arriving without a unified id get one derived
// from their name and primary source.
func (r *Resolver) Add(p *domain.Profile) (bool, error) {
	if p.UnifiedID == "" {
		if p.BasicInfo.FullName == "" {
			return false, ErrMissingIdentity
		}
		p.UnifiedID = IdentityKey(p.BasicInfo.FullName, p.Metadata.PrimarySource)
	}

	existing, ok := r.profiles[p.UnifiedID]
	if !ok {
		r.profiles[p.UnifiedID] = p
		r.order = append(r.order, p.UnifiedID)
		return false, nil
	}

	if err := Merge(existing, p, r.now()); err != nil {
		return false, err
	}
	r.merged++
	return true, nil
}

// Resolve runs the second stage: profiles whose stage-1 keys differ but
// that denote the same person are grouped by pairwise similarity and merged.
// Returns the final deduplicated profiles in first-seen order.
func (r *Resolver) Resolve() ([]*domain.Profile, error) {
	var final []*domain.Profile

	for _, key := range r.order {
		p := r.profiles[key]
		matched := false
		for _, rep := range final {
			if !r.sameIdentity(rep, p) {
				continue
			}
			if err := Merge(rep, p, r.now()); err != nil {
				return nil, err
			}
			r.merged++
			matched = true
			break
		}
		if !matched {
			final = append(final, p)
		}
	}
	return final, nil
}

// MergedCount reports how many profiles were folded into others across both
// stages.
func (r *Resolver) MergedCount() int { return r.merged }

// Len reports the number of distinct stage-1 profiles held.
func (r *Resolver) Len() int { return len(r.profiles) }

// sameIdentity decides whether two profiles denote the same person: high
// name similarity alone, a shared social URL, or moderate similarity backed
// by a matching city and country.
func (r *Resolver) sameIdentity(a, b *domain.Profile) bool {
	sim := Similarity(a.BasicInfo.FullName, b.BasicInfo.FullName)
	if sim >= r.threshold {
		return true
	}

	if sharesSocialURL(a, b) {
		return true
	}

	if sim >= locationThreshold &&
		a.Location.City != "" && a.Location.Country != "" &&
		strings.EqualFold(a.Location.City, b.Location.City) &&
		strings.EqualFold(a.Location.Country, b.Location.Country) {
		return true
	}
	return false
}

// sharesSocialURL reports whether the two profiles list any identical
// social-media or website URL. A shared URL is a stronger identity signal
// than name similarity.
func sharesSocialURL(a, b *domain.Profile) bool {
	urls := make(map[string]bool)
	for _, u := range a.SocialURLs() {
		urls[normalizeURL(u)] = true
	}
	for _, u := range b.SocialURLs() {
		if urls[normalizeURL(u)] {
			return true
		}
	}
	return false
}

func normalizeURL(u string) string {
	return strings.TrimSuffix(strings.ToLower(strings.TrimSpace(u)), "/")
}
