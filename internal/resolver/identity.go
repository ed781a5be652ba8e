// Package resolver assigns identity keys to profiles, detects when two
// profiles denote the same person, and merges them under defined precedence
// rules.
package resolver

import (
	"crypto/sha256"
	"encoding/hex"
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"

	"github.com/itsmudassir/expert-finder/internal/parser"
)

// IdentityKey derives the stage-1 identity key for a (name, source) pair.
// The key is source-scoped: the same person observed in two sources gets two
// keys, and the cross-source reconciliation happens in the resolver's second
// stage.
func IdentityKey(name, source string) string {
	sum := sha256.Sum256([]byte(NormalizeName(name) + ":" + source))
	return hex.EncodeToString(sum[:])
}

// NormalizeName reduces a name to its comparable form: honorifics stripped,
// lowercased, diacritics folded, everything but letters and digits removed.
func NormalizeName(name string) string {
	parsed := parser.ParseName(name)
	base := strings.TrimSpace(parsed.First + " " + parsed.Last)
	if base == "" {
		base = name
	}

	folded := removeAccents(strings.ToLower(base))
	var b strings.Builder
	b.Grow(len(folded))
	for _, r := range folded {
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			b.WriteRune(r)
		}
	}
	return b.String()
}

// removeAccents strips diacritical marks from a string.
func removeAccents(s string) string {
	t := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	result, _, _ := transform.String(t, s)
	return result
}
