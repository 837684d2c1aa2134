// Package render provides the rendering scaffolding of spec.md §4.7:
// traversal primitives consumed only by per-language renderers, never by
// the inference core.
package render

import (
	"fmt"

	"github.com/marlowcharite/quicktype/internal/ir"
	"github.com/marlowcharite/quicktype/internal/naming"
)

// SerializedRenderResult is the public output type of a render pass
// (spec.md §6): a pair of emitted lines and the annotations attached to
// them.
type SerializedRenderResult struct {
	Lines       []string
	Annotations Annotations
}

// ConvenienceRenderer is the unexported-state traversal engine renderers
// drive through LangRenderer.EmitSourceStructure; it owns the output
// buffer and exposes only the ForEach*/Emit* primitives spec.md §4.7
// lists.
type ConvenienceRenderer struct {
	graph *ir.Graph
	names *NameTable
	lang  LangRenderer

	lines       []string
	annotations Annotations
}

// NewConvenienceRenderer returns a renderer over an already-canonicalized
// graph and a NameTable already resolved against lang's namers.
func NewConvenienceRenderer(g *ir.Graph, names *NameTable, lang LangRenderer) *ConvenienceRenderer {
	return &ConvenienceRenderer{graph: g, names: names, lang: lang}
}

// Render drives lang.EmitSourceStructure and returns the accumulated
// output.
func (r *ConvenienceRenderer) Render() (SerializedRenderResult, error) {
	if err := r.lang.EmitSourceStructure(r); err != nil {
		return SerializedRenderResult{}, err
	}
	return SerializedRenderResult{Lines: r.lines, Annotations: r.annotations}, nil
}

// Emit appends one output line.
func (r *ConvenienceRenderer) Emit(line string) {
	r.lines = append(r.lines, line)
}

// Emitf appends one output line built with fmt.Sprintf.
func (r *ConvenienceRenderer) Emitf(format string, args ...interface{}) {
	r.Emit(fmt.Sprintf(format, args...))
}

// Annotate attaches ann to the most recently emitted line.
func (r *ConvenienceRenderer) Annotate(kind Kind, message string) {
	line := len(r.lines) - 1
	r.annotations = Append(r.annotations, Annotation{Span: Span{Line: line}, Kind: kind, Message: message})
}

// Graph exposes the underlying graph for renderers that need direct
// lookups (e.g. resolving a Class reference's ClassData) beyond what the
// ForEach* primitives hand them.
func (r *ConvenienceRenderer) Graph() *ir.Graph { return r.graph }

// NameForNamedType implements spec.md §4.7's nameForNamedType lookup: it
// resolves t (following a Class's redirect chain and a demoted class's
// EffectiveType first) to the naming.Name already assigned to it, which
// must have been built into the NameTable ahead of time.
func (r *ConvenienceRenderer) NameForNamedType(t ir.IRType) (*naming.Name, bool) {
	switch t.Kind {
	case ir.KindClass:
		effective, err := ir.EffectiveType(r.graph, t)
		if err != nil || effective.Kind != ir.KindClass {
			return nil, false
		}
		live, err := r.graph.FollowIndex(t.Class)
		if err != nil {
			return nil, false
		}
		n, ok := r.names.ClassNames[live]
		return n, ok
	case ir.KindEnum:
		if t.EnumData == nil {
			return nil, false
		}
		n, ok := r.names.EnumNames[t.EnumData]
		return n, ok
	case ir.KindUnion:
		if t.Union == nil {
			return nil, false
		}
		n, ok := r.names.UnionNames[t.Union]
		return n, ok
	default:
		return nil, false
	}
}

// ForEachTopLevel visits every named top-level entry point, in the
// stable order of its own resolved name.
func (r *ConvenienceRenderer) ForEachTopLevel(policy BlankPolicy, emit func(name *naming.Name, t ir.IRType)) {
	tls := append([]ir.TopLevel(nil), r.graph.Toplevels...)
	sortTopLevelsByResolvedName(r.names, tls)
	for i, tl := range tls {
		r.emitBlank(policy, i)
		emit(r.names.TopLevelNames[tl.Name], tl.Type)
	}
}

func sortTopLevelsByResolvedName(nt *NameTable, tls []ir.TopLevel) {
	less := func(i, j int) bool {
		ni, _ := nt.TopLevelNames[tls[i].Name].Resolved()
		nj, _ := nt.TopLevelNames[tls[j].Name].Resolved()
		return ni < nj
	}
	insertionSort(len(tls), less, func(i, j int) { tls[i], tls[j] = tls[j], tls[i] })
}

// insertionSort avoids importing sort a second time with a closure-based
// comparator identical in spirit to internal/infer's own small
// package-local sort helper.
func insertionSort(n int, less func(i, j int) bool, swap func(i, j int)) {
	for i := 1; i < n; i++ {
		for j := i; j > 0 && less(j, j-1); j-- {
			swap(j, j-1)
		}
	}
}

// ForEachClass visits every live class, in stable order of its resolved
// name.
func (r *ConvenienceRenderer) ForEachClass(policy BlankPolicy, emit func(id ir.ClassId, name *naming.Name, cd *ir.ClassData)) {
	ids := r.names.sortedClassIds(r.graph.LiveClassIds())
	i := 0
	for _, id := range ids {
		cd, err := r.graph.ClassData(id)
		if err != nil || cd.MapElem != nil {
			// A class demoted to a map by the map-vs-class heuristic
			// (spec.md §4.3) is not a named type in its own right;
			// EffectiveType resolves references to it directly to
			// Map(elem), so it never reaches the renderer as a class.
			continue
		}
		r.emitBlank(policy, i)
		i++
		emit(id, r.names.ClassNames[id], cd)
	}
}

// ForEachProperty visits class id's properties, in stable order of each
// property's own resolved name (spec.md §4.7).
func (r *ConvenienceRenderer) ForEachProperty(id ir.ClassId, policy BlankPolicy, emit func(name *naming.Name, jsonName string, t ir.IRType)) {
	cd, err := r.graph.ClassData(id)
	if err != nil {
		return
	}
	names := r.names.PropertyNames[id]
	order := append([]string(nil), cd.PropertyOrder...)
	less := func(i, j int) bool {
		ni, _ := names[order[i]].Resolved()
		nj, _ := names[order[j]].Resolved()
		return ni < nj
	}
	insertionSort(len(order), less, func(i, j int) { order[i], order[j] = order[j], order[i] })
	for i, jsonName := range order {
		r.emitBlank(policy, i)
		emit(names[jsonName], jsonName, cd.Properties[jsonName])
	}
}

// ForEachEnum visits every registered enum, in stable order of its
// resolved name.
func (r *ConvenienceRenderer) ForEachEnum(policy BlankPolicy, emit func(ed *ir.EnumData, name *naming.Name)) {
	type entry struct {
		ed   *ir.EnumData
		name *naming.Name
	}
	var entries []entry
	for ed, n := range r.names.EnumNames {
		entries = append(entries, entry{ed, n})
	}
	less := func(i, j int) bool {
		ni, _ := entries[i].name.Resolved()
		nj, _ := entries[j].name.Resolved()
		return ni < nj
	}
	insertionSort(len(entries), less, func(i, j int) { entries[i], entries[j] = entries[j], entries[i] })
	for i, e := range entries {
		r.emitBlank(policy, i)
		emit(e.ed, e.name)
	}
}

// ForEachUnion visits every union a renderer has registered a name for
// via NameTable.RegisterUnion, in stable order of its resolved name. A
// renderer that never registers any union (e.g. langs/gojson, which
// renders unions inline) simply never has this called with anything.
func (r *ConvenienceRenderer) ForEachUnion(policy BlankPolicy, emit func(u *ir.UnionRep, name *naming.Name)) {
	type entry struct {
		u    *ir.UnionRep
		name *naming.Name
	}
	var entries []entry
	for u, n := range r.names.UnionNames {
		entries = append(entries, entry{u, n})
	}
	less := func(i, j int) bool {
		ni, _ := entries[i].name.Resolved()
		nj, _ := entries[j].name.Resolved()
		return ni < nj
	}
	insertionSort(len(entries), less, func(i, j int) { entries[i], entries[j] = entries[j], entries[i] })
	for i, e := range entries {
		r.emitBlank(policy, i)
		emit(e.u, e.name)
	}
}

// ForEachNamedType visits every class and enum with an assigned name (not
// top levels, which name an entry point rather than a type), classes
// first then enums, each internally in stable resolved-name order.
func (r *ConvenienceRenderer) ForEachNamedType(policy BlankPolicy, emit func(t ir.IRType, name *naming.Name)) {
	i := 0
	r.ForEachClass(BlankNone, func(id ir.ClassId, name *naming.Name, _ *ir.ClassData) {
		r.emitBlank(policy, i)
		i++
		emit(ir.ClassRef(id), name)
	})
	r.ForEachEnum(BlankNone, func(ed *ir.EnumData, name *naming.Name) {
		r.emitBlank(policy, i)
		i++
		emit(ir.EnumType(ed), name)
	})
}
