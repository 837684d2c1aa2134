// Package gojson is the reference renderer exercising internal/render end
// to end (spec.md §9, "not named in spec.md by name"): it emits Go
// structs with encoding/json tags, one source file's worth of
// declarations per inference session, using ConvenienceRenderer
// exclusively rather than walking the graph directly.
package gojson

import (
	"fmt"

	"github.com/marlowcharite/quicktype/internal/ir"
	"github.com/marlowcharite/quicktype/internal/naming"
	"github.com/marlowcharite/quicktype/internal/render"
)

// Renderer implements render.LangRenderer for Go.
type Renderer struct {
	namedTypeNamer *naming.Namer
	propertyNamer  *naming.Namer
	PackageName    string
}

// New returns a Renderer that emits into package packageName ("main" if
// empty).
func New(packageName string) *Renderer {
	if packageName == "" {
		packageName = "main"
	}
	return &Renderer{
		namedTypeNamer: naming.NewGoNamer(naming.UpperCamel),
		// Go field names must be exported (UpperCamel) to survive
		// encoding/json's reflection-based marshaling without a tag on
		// every single field; the json tag still carries the original
		// name regardless.
		propertyNamer: naming.NewGoNamer(naming.UpperCamel),
		PackageName:   packageName,
	}
}

func (r *Renderer) TopLevelNameStyle(raw string) string { return naming.UpperCamel(raw) }
func (r *Renderer) NamedTypeNamer() *naming.Namer        { return r.namedTypeNamer }
func (r *Renderer) PropertyNamer() *naming.Namer         { return r.propertyNamer }

// NamedTypeToNameForTopLevel is always true for Go: there is no separate
// notion of a top-level alias distinct from the named type itself.
func (r *Renderer) NamedTypeToNameForTopLevel(t ir.IRType) bool { return true }

// EmitSourceStructure drives the one pass over cr that produces this
// session's Go source: package clause, then every enum, then every
// class, in each case in cr's stable resolved-name order.
func (r *Renderer) EmitSourceStructure(cr *render.ConvenienceRenderer) error {
	cr.Emitf("package %s", r.PackageName)
	cr.Emit("")

	cr.ForEachEnum(render.BlankInterposing, func(ed *ir.EnumData, name *naming.Name) {
		r.emitEnum(cr, ed, name)
	})
	cr.ForEachClass(render.BlankInterposing, func(id ir.ClassId, name *naming.Name, cd *ir.ClassData) {
		r.emitClass(cr, id, name, cd)
	})
	return nil
}

func (r *Renderer) emitEnum(cr *render.ConvenienceRenderer, ed *ir.EnumData, name *naming.Name) {
	cr.Emitf("type %s string", name.String())
	cr.Emit("")
	cr.Emit("const (")
	for _, v := range ed.SortedValues() {
		cr.Emitf("\t%s%s %s = %q", name.String(), naming.UpperCamel(v), name.String(), v)
	}
	cr.Emit(")")
}

func (r *Renderer) emitClass(cr *render.ConvenienceRenderer, id ir.ClassId, name *naming.Name, cd *ir.ClassData) {
	cr.Emitf("type %s struct {", name.String())
	cr.ForEachProperty(id, render.BlankNone, func(pname *naming.Name, jsonName string, t ir.IRType) {
		goType, ok := r.goType(cr, t)
		if !ok {
			cr.Emitf("\t%s interface{} `json:%q`", pname.String(), jsonName)
			cr.Annotate(render.Issue, fmt.Sprintf("property %q has an unsupported union shape and was rendered as interface{}", jsonName))
			return
		}
		cr.Emitf("\t%s %s `json:%q`", pname.String(), goType, jsonName)
	})
	cr.Emit("}")
}

// goType returns the Go type expression for t, and false if t cannot be
// represented precisely, in which case the caller degrades to
// interface{} and records an Issue (spec.md §7's renderer policy).
func (r *Renderer) goType(cr *render.ConvenienceRenderer, t ir.IRType) (string, bool) {
	switch t.Kind {
	case ir.KindAny, ir.KindNoInformation, ir.KindNull:
		return "interface{}", true
	case ir.KindInteger:
		return "int64", true
	case ir.KindDouble:
		return "float64", true
	case ir.KindBool:
		return "bool", true
	case ir.KindString:
		return "string", true
	case ir.KindArray:
		elemType, ok := r.goType(cr, *t.Elem)
		if !ok {
			return "", false
		}
		return "[]" + elemType, true
	case ir.KindMap:
		elemType, ok := r.goType(cr, *t.Elem)
		if !ok {
			return "", false
		}
		return "map[string]" + elemType, true
	case ir.KindClass:
		effective, err := ir.EffectiveType(cr.Graph(), t)
		if err != nil {
			return "", false
		}
		if effective.Kind != ir.KindClass {
			return r.goType(cr, effective)
		}
		name, ok := cr.NameForNamedType(effective)
		if !ok {
			return "", false
		}
		return "*" + name.String(), true
	case ir.KindEnum:
		name, ok := cr.NameForNamedType(t)
		if !ok {
			return "", false
		}
		return name.String(), true
	case ir.KindUnion:
		return r.unionGoType(cr, t.Union)
	default:
		return "", false
	}
}

// unionGoType implements the degradation policy named in SPEC_FULL.md's
// reference-renderer section: a union with exactly one non-null kind
// renders as that kind's Go type (pointer-wrapped if nullable and not
// already nil-able), one with none renders as interface{}, and one with
// more than one non-null kind is unrepresentable.
func (r *Renderer) unionGoType(cr *render.ConvenienceRenderer, u *ir.UnionRep) (string, bool) {
	hadNull, rest := ir.RemoveNull(u)
	if rest.KindCount() == 0 {
		return "interface{}", true
	}
	if rest.KindCount() > 1 {
		return "", false
	}
	sole := rest.ForceSoleType()
	inner, ok := r.goType(cr, sole)
	if !ok {
		return "", false
	}
	if !hadNull {
		return inner, true
	}
	switch sole.Kind {
	case ir.KindClass, ir.KindArray, ir.KindMap:
		// Already pointer/slice/map-typed, hence already nil-able; a
		// second pointer layer would be redundant.
		return inner, true
	default:
		return "*" + inner, true
	}
}
