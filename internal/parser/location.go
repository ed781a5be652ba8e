package parser

import (
	"strings"

	"github.com/itsmudassir/expert-finder/internal/domain"
)

var usaVariants = map[string]bool{
	"USA":                      true,
	"US":                       true,
	"UNITED STATES":            true,
	"UNITED STATES OF AMERICA": true,
}

// ParseLocation applies comma-split heuristics to a location string:
// "City, State, Country", "City, Country", "City, XX" (two-letter US state),
// or a bare country.
func ParseLocation(raw string) domain.Location {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return domain.Location{}
	}

	parts := strings.Split(raw, ",")
	for i := range parts {
		parts[i] = strings.TrimSpace(parts[i])
	}

	switch len(parts) {
	case 1:
		return domain.Location{Country: parts[0]}
	case 2:
		switch {
		case usaVariants[strings.ToUpper(parts[1])]:
			return domain.Location{City: parts[0], Country: "United States"}
		case len(parts[1]) == 2:
			// Two-letter second part reads as a US state abbreviation.
			return domain.Location{City: parts[0], State: parts[1], Country: "United States"}
		default:
			return domain.Location{City: parts[0], Country: parts[1]}
		}
	default:
		return domain.Location{City: parts[0], State: parts[1], Country: parts[2]}
	}
}

// ParseLocationObject maps an already-structured location record onto the
// canonical shape, tolerating either "state" or "state_province" keys.
func ParseLocationObject(obj domain.Record) domain.Location {
	state := obj.String("state")
	if state == "" {
		state = obj.String("state_province")
	}
	return domain.Location{
		City:        obj.String("city"),
		State:       state,
		Country:     obj.String("country"),
		CountryCode: obj.String("country_code"),
		Timezone:    obj.String("timezone"),
	}
}
