package domain

import (
	"fmt"
	"strings"
)

// Record is one raw document read from a source database. No schema is
// guaranteed across sources, so every accessor is missing-key-safe and
// tolerant of the value types the Mongo driver produces.
type Record map[string]any

// String returns the trimmed string value for key, or "" when the key is
// missing or not string-like.
func (r Record) String(key string) string {
	v, ok := r[key]
	if !ok || v == nil {
		return ""
	}
	switch s := v.(type) {
	case string:
		return strings.TrimSpace(s)
	case fmt.Stringer:
		return strings.TrimSpace(s.String())
	default:
		return ""
	}
}

// StringList returns the value for key as a list of non-empty strings.
// Accepts a real list, a single string, or a comma-separated string.
func (r Record) StringList(key string) []string {
	v, ok := r[key]
	if !ok || v == nil {
		return nil
	}
	switch list := v.(type) {
	case []string:
		return cleanStrings(list)
	case []any:
		out := make([]string, 0, len(list))
		for _, item := range list {
			if s, ok := item.(string); ok {
				if s = strings.TrimSpace(s); s != "" {
					out = append(out, s)
				}
			}
		}
		return out
	case string:
		if strings.Contains(list, ",") {
			return cleanStrings(strings.Split(list, ","))
		}
		if s := strings.TrimSpace(list); s != "" {
			return []string{s}
		}
		return nil
	default:
		return nil
	}
}

// Map returns the value for key as a nested Record, or nil.
func (r Record) Map(key string) Record {
	switch m := r[key].(type) {
	case map[string]any:
		return Record(m)
	case Record:
		return m
	default:
		return nil
	}
}

// MapList returns the value for key as a list of nested Records.
func (r Record) MapList(key string) []Record {
	list, ok := r[key].([]any)
	if !ok {
		return nil
	}
	out := make([]Record, 0, len(list))
	for _, item := range list {
		if m, ok := item.(map[string]any); ok {
			out = append(out, Record(m))
		}
	}
	return out
}

// Int returns the value for key as an int. Handles the numeric types the
// driver decodes to plus numeric strings.
func (r Record) Int(key string) (int, bool) {
	switch n := r[key].(type) {
	case int:
		return n, true
	case int32:
		return int(n), true
	case int64:
		return int(n), true
	case float64:
		return int(n), true
	case string:
		var v int
		if _, err := fmt.Sscanf(strings.TrimSpace(n), "%d", &v); err == nil {
			return v, true
		}
	}
	return 0, false
}

// Float returns the value for key as a float64.
func (r Record) Float(key string) (float64, bool) {
	switch n := r[key].(type) {
	case float64:
		return n, true
	case float32:
		return float64(n), true
	case int:
		return float64(n), true
	case int32:
		return float64(n), true
	case int64:
		return float64(n), true
	case string:
		var v float64
		if _, err := fmt.Sscanf(strings.TrimSpace(n), "%g", &v); err == nil {
			return v, true
		}
	}
	return 0, false
}

// FirstString returns the first non-empty string among the given keys.
func (r Record) FirstString(keys ...string) string {
	for _, key := range keys {
		if s := r.String(key); s != "" {
			return s
		}
	}
	return ""
}

func cleanStrings(in []string) []string {
	out := make([]string, 0, len(in))
	for _, s := range in {
		if s = strings.TrimSpace(s); s != "" {
			out = append(out, s)
		}
	}
	return out
}
