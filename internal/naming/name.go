package naming

import "fmt"

// Kind tags a Name's variant, per spec.md §4.6: Fixed(s), Simple(raw,
// namer), or Dependency(parts, assemble).
type Kind int

const (
	KindFixed Kind = iota
	KindSimple
	KindDependency
)

// Name is one of the three spec.md §4.6 variants, modeled as a tagged
// struct rather than an interface to stay consistent with ir.IRType's
// closed-sum style elsewhere in this module.
type Name struct {
	Kind Kind

	// Fixed is set iff Kind == KindFixed: a literal final spelling that
	// bypasses styling and collision avoidance entirely (it still
	// reserves its spelling in its Namespace, so nothing else may later
	// collide with it).
	Fixed string

	// Raw and Namer are set iff Kind == KindSimple.
	Raw   string
	Namer *Namer

	// Parts and Assemble are set iff Kind == KindDependency: the final
	// spelling is assembled from other Names' resolved spellings only
	// once every part has itself resolved.
	Parts    []*Name
	Assemble func(parts []string) string

	resolved string
	done     bool
}

// NewFixedName returns a Name whose final spelling is s, unconditionally.
func NewFixedName(s string) *Name {
	return &Name{Kind: KindFixed, Fixed: s}
}

// NewSimpleName returns a Name to be styled by namer, subject to
// collision avoidance against its Namespace's forbidden set.
func NewSimpleName(raw string, namer *Namer) *Name {
	return &Name{Kind: KindSimple, Raw: raw, Namer: namer}
}

// NewDependencyName returns a Name composed from other Names' resolved
// spellings via assemble, once all of parts have resolved.
func NewDependencyName(parts []*Name, assemble func([]string) string) *Name {
	return &Name{Kind: KindDependency, Parts: parts, Assemble: assemble}
}

// Resolved returns n's final spelling and whether resolution has run yet.
func (n *Name) Resolved() (string, bool) {
	return n.resolved, n.done
}

// String panics if n is not yet resolved, for call sites downstream of
// naming resolution (renderers) that can assume every Name reaching them
// is already final.
func (n *Name) String() string {
	if !n.done {
		panic(fmt.Sprintf("naming: String() called on unresolved Name (kind %v)", n.Kind))
	}
	return n.resolved
}
