// Package normalizer contains the controlled-vocabulary classifiers that map
// free-text profile fields onto canonical categories. Each classifier is a
// pure keyword-table matcher: no classifier ever returns an error, and
// missing or empty input yields the zero-shaped result.
package normalizer

import (
	"sort"
	"strings"
)

// vocabEntry is one keyword -> category binding. Entries keep declaration
// order so substring matching is deterministic.
type vocabEntry struct {
	keyword  string
	category string
}

// vocabulary is a keyword table with an exact-match index and an ordered
// entry list for containment matching.
type vocabulary struct {
	exact   map[string]string
	entries []vocabEntry
}

func newVocabulary(table map[string][]string, order []string) *vocabulary {
	v := &vocabulary{exact: make(map[string]string)}
	for _, category := range order {
		for _, kw := range table[category] {
			kw = strings.ToLower(kw)
			if _, ok := v.exact[kw]; !ok {
				v.exact[kw] = category
			}
			v.entries = append(v.entries, vocabEntry{keyword: kw, category: category})
		}
	}
	return v
}

// matchOutcome reports how a single term matched against a vocabulary.
type matchOutcome struct {
	category string
	exact    bool
	ok       bool
}

// match runs the three matching steps for one lowercased term: exact lookup,
// substring containment either direction (keywords longer than three
// characters only, to avoid short-token false positives), then per-word
// exact lookup.
func (v *vocabulary) match(term string) matchOutcome {
	if cat, ok := v.exact[term]; ok {
		return matchOutcome{category: cat, exact: true, ok: true}
	}
	for _, e := range v.entries {
		if len(e.keyword) > 3 && (strings.Contains(term, e.keyword) || strings.Contains(e.keyword, term)) {
			return matchOutcome{category: e.category, ok: true}
		}
	}
	for _, word := range strings.Fields(term) {
		if cat, ok := v.exact[word]; ok {
			return matchOutcome{category: cat, ok: true}
		}
	}
	return matchOutcome{}
}

// skipTerm reports whether a raw input term carries no information and
// should be ignored entirely.
func skipTerm(term string) bool {
	switch strings.ToLower(strings.TrimSpace(term)) {
	case "", "none", "n/a":
		return true
	}
	return false
}

// stringSet accumulates unique values; Sorted returns them as a
// deterministic slice.
type stringSet map[string]struct{}

func (s stringSet) Add(v string) { s[v] = struct{}{} }

func (s stringSet) Has(v string) bool {
	_, ok := s[v]
	return ok
}

func (s stringSet) Sorted() []string {
	out := make([]string, 0, len(s))
	for v := range s {
		out = append(out, v)
	}
	sort.Strings(out)
	return out
}

// Dedupe returns the input with duplicates removed, preserving first-seen
// order. Used for list fields that accumulate across merges.
func Dedupe(in []string) []string {
	seen := make(stringSet, len(in))
	out := make([]string, 0, len(in))
	for _, v := range in {
		if v == "" || seen.Has(v) {
			continue
		}
		seen.Add(v)
		out = append(out, v)
	}
	return out
}
