package render

import (
	"sort"

	"github.com/marlowcharite/quicktype/internal/ir"
	"github.com/marlowcharite/quicktype/internal/naming"
)

// NameTable holds every resolved naming.Name a render pass needs, keyed
// by what it names. Built once, ahead of rendering, so ForEach* can look
// names up rather than invent them mid-traversal (spec.md §4.6's fixed
// point must run to completion before spec.md §4.7's traversal begins,
// per the phase ordering in spec.md §5).
type NameTable struct {
	Root *naming.Namespace

	ClassNames map[ir.ClassId]*naming.Name
	// PropertySpaces holds one child Namespace per class, so two
	// classes' properties never collide with each other even though
	// each class's properties are named independently.
	PropertySpaces map[ir.ClassId]*naming.Namespace
	PropertyNames  map[ir.ClassId]map[string]*naming.Name

	EnumNames map[*ir.EnumData]*naming.Name
	// UnionNames holds names only for unions a renderer explicitly
	// registers via RegisterUnion; most renderers (e.g. langs/gojson)
	// never populate it: gojson renders a union with exactly one non-null
	// kind inline and degrades any wider union to interface{}.
	UnionNames map[*ir.UnionRep]*naming.Name

	TopLevelNames map[string]*naming.Name
}

// BuildNameTable allocates Names for every top level, live class, and
// enum reachable in g, under lang's namers, and resolves them all via
// naming.Resolve before returning.
func BuildNameTable(g *ir.Graph, keywords []string, lang LangRenderer) (*NameTable, error) {
	nt := &NameTable{
		Root:           naming.NewNamespace(nil, keywords),
		ClassNames:     map[ir.ClassId]*naming.Name{},
		PropertySpaces: map[ir.ClassId]*naming.Namespace{},
		PropertyNames:  map[ir.ClassId]map[string]*naming.Name{},
		EnumNames:      map[*ir.EnumData]*naming.Name{},
		UnionNames:     map[*ir.UnionRep]*naming.Name{},
		TopLevelNames:  map[string]*naming.Name{},
	}

	namedTypeNamer := lang.NamedTypeNamer()
	propertyNamer := lang.PropertyNamer()

	for _, id := range g.LiveClassIds() {
		cd, err := g.ClassData(id)
		if err != nil {
			return nil, err
		}
		nt.ClassNames[id] = classOrEnumName(cd.Names, namedTypeNamer, nt.Root)

		propSpace := naming.NewNamespace(nt.Root, nil)
		nt.PropertySpaces[id] = propSpace
		nt.PropertyNames[id] = map[string]*naming.Name{}
		for _, propName := range cd.PropertyOrder {
			n := naming.NewSimpleName(propName, propertyNamer)
			propSpace.Add(n)
			nt.PropertyNames[id][propName] = n
		}
	}

	for _, tl := range g.Toplevels {
		styled := lang.TopLevelNameStyle(tl.Name)
		n := naming.NewFixedName(styled)
		nt.Root.Add(n)
		nt.TopLevelNames[tl.Name] = n
	}

	collectEnums(g, nt, namedTypeNamer)

	if err := naming.Resolve(nt.Root); err != nil {
		return nil, err
	}
	return nt, nil
}

// collectEnums walks every live class's properties (and top levels) for
// reachable Enum types, registering one Name per distinct *ir.EnumData
// pointer so two properties sharing the same enum value set (as unified
// by internal/infer) share a single generated type.
func collectEnums(g *ir.Graph, nt *NameTable, namer *naming.Namer) {
	seen := map[*ir.EnumData]bool{}
	visit := func(t ir.IRType) {
		ir.Walk(t, func(sub ir.IRType) {
			if sub.Kind == ir.KindEnum && sub.EnumData != nil && !seen[sub.EnumData] {
				seen[sub.EnumData] = true
				nt.EnumNames[sub.EnumData] = classOrEnumName(sub.EnumData.Names, namer, nt.Root)
			}
		})
	}
	for _, id := range g.LiveClassIds() {
		cd, err := g.ClassData(id)
		if err != nil {
			continue
		}
		for _, t := range cd.Properties {
			visit(t)
		}
	}
	for _, tl := range g.Toplevels {
		visit(tl.Type)
	}
}

// classOrEnumName builds a Simple Name styled by namer from the
// alphabetically first spelling in names (Given or Inferred alike), or
// from "Value" when names is empty, registering it in root.
func classOrEnumName(names ir.Named[map[string]struct{}], namer *naming.Namer, root *naming.Namespace) *naming.Name {
	sorted := names.SortedNames()
	raw := "Value"
	if len(sorted) > 0 {
		raw = sorted[0]
	}
	// Both Given and Inferred spellings still need casing/escaping
	// (e.g. a JSON Schema "title" of "User Profile" must still become
	// "UserProfile"), so both go through the same Namer; the given/
	// inferred distinction already did its job upstream, in regatherNames
	// refusing to let an Inferred property name overwrite a Given one.
	n := naming.NewSimpleName(raw, namer)
	root.Add(n)
	return n
}

// RegisterUnion lets a renderer that needs a standalone name for a union
// (e.g. a target language whose tagged unions are generated types)
// allocate one and add it to nt.Root. BuildNameTable has already run
// naming.Resolve, so a caller registering a union afterwards runs
// naming.Resolve(nt.Root) again before reading the new name.
func (nt *NameTable) RegisterUnion(u *ir.UnionRep, namer *naming.Namer) *naming.Name {
	if n, ok := nt.UnionNames[u]; ok {
		return n
	}
	sorted := u.Names.SortedNames()
	raw := "Value"
	if len(sorted) > 0 {
		raw = sorted[0]
	}
	n := naming.NewSimpleName(raw, namer)
	nt.Root.Add(n)
	nt.UnionNames[u] = n
	return n
}

// sortedClassIds returns ids sorted by their resolved final spelling
// (spec.md §4.7: ForEachProperty "iterates in stable order (sorted by
// final resolved name)"; the same discipline is applied to every other
// ForEach* primitive here for a single consistent emission order).
func (nt *NameTable) sortedClassIds(ids []ir.ClassId) []ir.ClassId {
	out := append([]ir.ClassId(nil), ids...)
	sort.Slice(out, func(i, j int) bool {
		ni, _ := nt.ClassNames[out[i]].Resolved()
		nj, _ := nt.ClassNames[out[j]].Resolved()
		return ni < nj
	})
	return out
}
