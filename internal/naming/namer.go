package naming

import "fmt"

// Namer implements spec.md §4.6's assignment algorithm: given a raw name
// and a forbidden-spelling test, try style(raw), then style(prefix+raw)
// for each prefix in order, then style(raw+suffix) with a numeric suffix
// starting at 2, until an unclaimed spelling is found.
type Namer struct {
	Style    func(string) string
	Prefixes []string
}

// NewGoNamer returns the Namer the shipped langs/gojson renderer uses for
// both class and property names, with Style chosen at the call site
// (langs/gojson passes UpperCamel for both).
func NewGoNamer(style func(string) string) *Namer {
	return &Namer{
		Style:    style,
		Prefixes: []string{"The", "Its", "My"},
	}
}

// assign returns the first candidate spelling not rejected by forbidden,
// trying style(raw), each style(prefix+raw), and finally style(raw) with
// an incrementing numeric suffix.
func (nm *Namer) assign(raw string, forbidden func(string) bool) string {
	base := nm.Style(raw)
	if !forbidden(base) {
		return base
	}
	for _, prefix := range nm.Prefixes {
		c := nm.Style(prefix + raw)
		if !forbidden(c) {
			return c
		}
	}
	for suffix := 2; ; suffix++ {
		c := fmt.Sprintf("%s%d", base, suffix)
		if !forbidden(c) {
			return c
		}
	}
}
