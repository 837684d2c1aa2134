package render

import (
	"github.com/marlowcharite/quicktype/internal/ir"
	"github.com/marlowcharite/quicktype/internal/naming"
)

// LangRenderer is the capability interface a per-language renderer
// implements; ConvenienceRenderer drives the traversal, LangRenderer
// supplies everything language-specific (spec.md §9 Design Notes).
type LangRenderer interface {
	// TopLevelNameStyle styles a top level's raw configured name (e.g.
	// UpperCamel for Go, a language that capitalizes exported types).
	TopLevelNameStyle(raw string) string

	// NamedTypeNamer returns the Namer used for class and enum names.
	NamedTypeNamer() *naming.Namer

	// PropertyNamer returns the Namer used for property names.
	PropertyNamer() *naming.Namer

	// NamedTypeToNameForTopLevel reports whether a top level whose type
	// is exactly t should reuse t's own named-type spelling as its
	// top-level name, rather than generating a distinct top-level
	// wrapper name. Go, which has no notion of a top-level alias
	// distinct from the type itself, always returns true.
	NamedTypeToNameForTopLevel(t ir.IRType) bool

	// EmitSourceStructure drives r's ForEach* primitives to produce the
	// renderer's output; it is the single entry point a renderer
	// implements.
	EmitSourceStructure(r *ConvenienceRenderer) error
}
