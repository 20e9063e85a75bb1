// Package costcenter holds the deterministic cost center code derivation
// shared by every workflow that ensures a client cost center.
package costcenter

import (
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

const (
	CodePrefix    = "CC-"
	MaxCodeLength = 30
)

// GenerateCode turns a client name into CC-<SLUG>: uppercase, no diacritics,
// only A-Z, 0-9 and spaces kept, whitespace runs joined by '-', cut at 30
// chars even when the cut leaves a trailing '-'.
func GenerateCode(name string) string {
	stripped, _, err := transform.String(transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC), name)
	if err != nil {
		stripped = name
	}
	stripped = strings.ToUpper(stripped)

	var b strings.Builder
	for _, r := range stripped {
		switch {
		case r >= 'A' && r <= 'Z', r >= '0' && r <= '9':
			b.WriteRune(r)
		case unicode.IsSpace(r):
			b.WriteRune(' ')
		}
	}

	slug := strings.Join(strings.Fields(b.String()), "-")
	code := CodePrefix + slug
	if len(code) > MaxCodeLength {
		code = code[:MaxCodeLength]
	}
	return code
}
