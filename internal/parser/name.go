// Package parser contains the deterministic field parsers: name, location,
// and speaking fee. Unlike the classifiers these have no vocabulary
// ambiguity; they are pure text-to-struct extractors.
package parser

import (
	"regexp"
	"strings"
)

var (
	whitespacePattern = regexp.MustCompile(`\s+`)
	quotePattern      = regexp.MustCompile(`["']`)
)

// honorifics stripped before splitting name parts. Order matters: dotted
// forms first so "Dr." is not left as ".".
var honorifics = []string{"Dr.", "Dr", "Prof.", "Prof", "Mr.", "Mr", "Mrs.", "Mrs", "Ms.", "Ms"}

// Name is a parsed person name. DisplayName keeps the cleaned original,
// honorifics included.
type Name struct {
	First   string
	Last    string
	Display string
}

// ParseName splits a free-text name into first/last components. The first
// token is the first name, everything after it the last name.
func ParseName(raw string) Name {
	if raw == "" {
		return Name{}
	}

	clean := whitespacePattern.ReplaceAllString(strings.TrimSpace(raw), " ")
	clean = quotePattern.ReplaceAllString(clean, "")
	display := clean

	for _, title := range honorifics {
		clean = strings.ReplaceAll(clean, title+" ", "")
		clean = strings.ReplaceAll(clean, " "+title, "")
	}

	parts := strings.Fields(clean)
	name := Name{Display: display}
	switch {
	case len(parts) >= 2:
		name.First = parts[0]
		name.Last = strings.Join(parts[1:], " ")
	case len(parts) == 1:
		name.First = parts[0]
	}
	return name
}
