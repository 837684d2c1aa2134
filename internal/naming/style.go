package naming

import (
	"strings"
	"unicode"

	"github.com/dlclark/regexp2"
	"golang.org/x/text/unicode/norm"
)

// identifierStart matches a rune a generated identifier is allowed to
// begin with. Expressed with regexp2, not stdlib regexp, to stay
// consistent with the rest of the per-language pattern checks in this
// package (swiftContextualKeywordPatterns and the keyword-pattern tables
// a future renderer would add) rather than mixing two regex engines.
var identifierStart = regexp2.MustCompile(`^[A-Za-z_]`, regexp2.None)

// Normalize applies Unicode NFC normalization to a raw name pulled from a
// sample key, schema property, or GraphQL field, before any casing
// transform runs on it. Two keys that differ only in normalization form
// (e.g. combining vs. precomposed accents) must style to the same
// spelling, or collision avoidance in Namer.assign would not catch them.
func Normalize(raw string) string {
	return norm.NFC.String(raw)
}

// splitWords breaks a normalized raw name into casing-transform words on
// underscore, hyphen, space, and dot separators, and on an uppercase
// letter following a lowercase one (so "userID" splits as "user", "ID").
func splitWords(raw string) []string {
	s := Normalize(raw)
	var words []string
	var cur []rune
	flush := func() {
		if len(cur) > 0 {
			words = append(words, string(cur))
			cur = nil
		}
	}
	var prev rune
	for i, r := range s {
		switch {
		case r == '_' || r == '-' || r == ' ' || r == '.':
			flush()
		case i > 0 && unicode.IsUpper(r) && !unicode.IsUpper(prev):
			flush()
			cur = append(cur, r)
		default:
			cur = append(cur, r)
		}
		prev = r
	}
	flush()
	return words
}

// UpperCamel renders raw in PascalCase, matching the style most of the
// renderer target languages named in spec.md §1 use for type names.
// Non-English inputs that split into no recognizable word boundaries
// pass through unchanged but for the leading-letter guard below (spec.md
// §9: "non-English inputs simply pass through unchanged. This is by
// design.").
func UpperCamel(raw string) string {
	words := splitWords(raw)
	var b strings.Builder
	for _, w := range words {
		if w == "" {
			continue
		}
		r := []rune(w)
		b.WriteRune(unicode.ToUpper(r[0]))
		if len(r) > 1 {
			b.WriteString(string(r[1:]))
		}
	}
	out := b.String()
	if out == "" {
		return "Value"
	}
	if ok, _ := identifierStart.MatchString(out); !ok {
		out = "_" + out
	}
	return out
}

// LowerCamel renders raw in camelCase, the style spec.md §1's renderers
// use for property names.
func LowerCamel(raw string) string {
	up := UpperCamel(raw)
	r := []rune(up)
	r[0] = unicode.ToLower(r[0])
	return string(r)
}
