package normalizer

import (
	"sort"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Language is one normalized language entry. Code is empty when the name
// was not recognized; Original always carries the source text.
type Language struct {
	Code        string `json:"code,omitempty"`
	Name        string `json:"name"`
	Proficiency string `json:"proficiency,omitempty"`
	Original    string `json:"original"`
}

// LanguageResult aggregates a list of language entries into per-proficiency
// buckets and a human-readable display string.
type LanguageResult struct {
	Languages      []Language `json:"languages"`
	Codes          []string   `json:"codes"`
	Count          int        `json:"count"`
	Native         []string   `json:"native"`
	Fluent         []string   `json:"fluent"`
	Conversational []string   `json:"conversational"`
	Basic          []string   `json:"basic"`
	Display        string     `json:"display"`
}

// LanguageNormalizer maps language name variants to ISO 639-1 codes and
// proficiency descriptors to canonical levels.
type LanguageNormalizer struct {
	codeKeys []string
	titler   cases.Caser
}

func NewLanguageNormalizer() *LanguageNormalizer {
	keys := make([]string, 0, len(languageCodes))
	for k := range languageCodes {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return &LanguageNormalizer{
		codeKeys: keys,
		titler:   cases.Title(language.Und),
	}
}

// NormalizeOne normalizes a single language string, extracting an embedded
// proficiency descriptor when present ("english native speaker").
func (n *LanguageNormalizer) NormalizeOne(raw string) (Language, bool) {
	if strings.TrimSpace(raw) == "" {
		return Language{}, false
	}
	lower := strings.ToLower(strings.TrimSpace(raw))

	proficiency := ""
	for _, key := range proficiencyOrder {
		if strings.Contains(lower, key) {
			proficiency = proficiencyLevels[key]
			lower = strings.TrimSpace(strings.ReplaceAll(lower, key, ""))
			break
		}
	}

	code := languageCodes[lower]
	if code == "" {
		// Bare ISO 639-1 codes pass through as-is.
		if _, ok := languageNames[lower]; ok {
			code = lower
		}
	}
	if code == "" {
		for _, key := range n.codeKeys {
			if strings.Contains(lower, key) || (len(lower) > 3 && strings.Contains(key, lower)) {
				code = languageCodes[key]
				break
			}
		}
	}

	if code == "" {
		return Language{Name: n.titler.String(raw), Proficiency: proficiency, Original: raw}, true
	}

	base, _, _ := strings.Cut(code, "-")
	name := languageNames[base]
	if name == "" {
		name = n.titler.String(raw)
	}
	return Language{Code: code, Name: name, Proficiency: proficiency, Original: raw}, true
}

// Normalize normalizes a loosely-typed language field. Accepted shapes:
// a comma-separated string, a list of strings (with optional parenthetical
// proficiency, "Spanish (Fluent)"), or a list of {language, proficiency}
// maps.
func (n *LanguageNormalizer) Normalize(input any) LanguageResult {
	var entries []Language

	for _, item := range languageItems(input) {
		switch val := item.(type) {
		case map[string]any:
			langStr, _ := val["language"].(string)
			profStr, _ := val["proficiency"].(string)
			entry, ok := n.NormalizeOne(langStr)
			if !ok {
				continue
			}
			if profStr != "" && entry.Proficiency == "" {
				profLower := strings.ToLower(profStr)
				if level, ok := proficiencyLevels[profLower]; ok {
					entry.Proficiency = level
				} else {
					entry.Proficiency = profLower
				}
			}
			entries = append(entries, entry)
		case string:
			if open := strings.Index(val, "("); open >= 0 {
				if end := strings.Index(val, ")"); end > open {
					entry, ok := n.NormalizeOne(strings.TrimSpace(val[:open]))
					if !ok {
						continue
					}
					profLower := strings.ToLower(strings.TrimSpace(val[open+1 : end]))
					if level, ok := proficiencyLevels[profLower]; ok {
						entry.Proficiency = level
					} else {
						entry.Proficiency = profLower
					}
					entry.Original = val
					entries = append(entries, entry)
					continue
				}
			}
			if entry, ok := n.NormalizeOne(val); ok {
				entries = append(entries, entry)
			}
		}
	}

	result := LanguageResult{
		Languages:      entries,
		Codes:          []string{},
		Count:          len(entries),
		Native:         []string{},
		Fluent:         []string{},
		Conversational: []string{},
		Basic:          []string{},
	}

	codes := make(stringSet)
	var displayParts []string
	for _, entry := range entries {
		if entry.Code != "" {
			codes.Add(entry.Code)
			switch entry.Proficiency {
			case "native":
				result.Native = append(result.Native, entry.Code)
			case "fluent":
				result.Fluent = append(result.Fluent, entry.Code)
			case "conversational":
				result.Conversational = append(result.Conversational, entry.Code)
			case "basic":
				result.Basic = append(result.Basic, entry.Code)
			}
		}
		if entry.Proficiency != "" {
			displayParts = append(displayParts, entry.Name+" ("+n.titler.String(entry.Proficiency)+")")
		} else {
			displayParts = append(displayParts, entry.Name)
		}
	}
	result.Codes = codes.Sorted()
	result.Display = strings.Join(displayParts, ", ")
	return result
}

// LanguageDisplay rebuilds the human-readable language summary from
// per-proficiency code buckets, for use after merges where the original
// entries are no longer available. Unknown codes appear verbatim.
func LanguageDisplay(codes, native, fluent, conversational, basic []string) string {
	level := make(map[string]string, len(codes))
	for _, bucket := range []struct {
		codes []string
		label string
	}{
		{native, "Native"},
		{fluent, "Fluent"},
		{conversational, "Conversational"},
		{basic, "Basic"},
	} {
		for _, c := range bucket.codes {
			if _, ok := level[c]; !ok {
				level[c] = bucket.label
			}
		}
	}

	parts := make([]string, 0, len(codes))
	for _, code := range codes {
		base, _, _ := strings.Cut(code, "-")
		name := languageNames[base]
		if name == "" {
			name = code
		}
		if lvl := level[code]; lvl != "" {
			parts = append(parts, name+" ("+lvl+")")
		} else {
			parts = append(parts, name)
		}
	}
	return strings.Join(parts, ", ")
}

// languageItems flattens the accepted input shapes into a single item list.
func languageItems(input any) []any {
	switch v := input.(type) {
	case nil:
		return nil
	case string:
		parts := strings.Split(v, ",")
		items := make([]any, 0, len(parts))
		for _, p := range parts {
			if p = strings.TrimSpace(p); p != "" {
				items = append(items, p)
			}
		}
		return items
	case []string:
		items := make([]any, 0, len(v))
		for _, s := range v {
			items = append(items, s)
		}
		return items
	case []any:
		return v
	default:
		return nil
	}
}
