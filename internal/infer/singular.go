package infer

import "strings"

// Singular returns the conservative, ASCII-only depluralized form of name,
// used to name the element type of an array or map found under a property
// called name (spec.md §4.5, §9: "non-English inputs simply pass through
// unchanged. This is by design.").
func Singular(name string) string {
	switch {
	case strings.HasSuffix(name, "ies") && len(name) > 3:
		return name[:len(name)-3] + "y"
	case strings.HasSuffix(name, "es") && len(name) > 2:
		return name[:len(name)-2]
	case strings.HasSuffix(name, "s") && len(name) > 1:
		return name[:len(name)-1]
	default:
		return name
	}
}
