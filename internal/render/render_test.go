package render

import (
	"testing"

	"github.com/marlowcharite/quicktype/internal/ir"
	"github.com/marlowcharite/quicktype/internal/naming"
)

type fakeLang struct {
	namedTypeNamer *naming.Namer
	propertyNamer  *naming.Namer
}

func newFakeLang() *fakeLang {
	return &fakeLang{
		namedTypeNamer: naming.NewGoNamer(naming.UpperCamel),
		propertyNamer:  naming.NewGoNamer(naming.LowerCamel),
	}
}

func (f *fakeLang) TopLevelNameStyle(raw string) string       { return naming.UpperCamel(raw) }
func (f *fakeLang) NamedTypeNamer() *naming.Namer              { return f.namedTypeNamer }
func (f *fakeLang) PropertyNamer() *naming.Namer               { return f.propertyNamer }
func (f *fakeLang) NamedTypeToNameForTopLevel(t ir.IRType) bool { return true }
func (f *fakeLang) EmitSourceStructure(r *ConvenienceRenderer) error {
	r.ForEachClass(BlankInterposing, func(id ir.ClassId, name *naming.Name, cd *ir.ClassData) {
		r.Emitf("type %s struct {", name.String())
		r.ForEachProperty(id, BlankNone, func(pname *naming.Name, jsonName string, t ir.IRType) {
			r.Emitf("\t%s %v `json:%q`", pname.String(), t.Kind, jsonName)
		})
		r.Emit("}")
	})
	return nil
}

func buildGraph(t *testing.T) *ir.Graph {
	t.Helper()
	g := ir.NewGraph()
	cd := ir.NewClassData(ir.Given(map[string]struct{}{"Root": {}}, ir.StringSetMerge))
	cd.SetProperty("a", ir.Primitive(ir.KindInteger))
	cd.SetProperty("b", ir.Primitive(ir.KindString))
	id := g.AddClass(cd)
	g.AddTopLevel("Root", ir.ClassRef(id))
	return g
}

func TestConvenienceRendererEmitsStructFields(t *testing.T) {
	g := buildGraph(t)
	lang := newFakeLang()
	nt, err := BuildNameTable(g, naming.GoKeywords, lang)
	if err != nil {
		t.Fatalf("BuildNameTable: %v", err)
	}
	r := NewConvenienceRenderer(g, nt, lang)
	result, err := r.Render()
	if err != nil {
		t.Fatalf("Render: %v", err)
	}
	if len(result.Lines) != 4 {
		t.Fatalf("Lines = %v, want 4 lines (struct header, 2 fields, closing brace)", result.Lines)
	}
	if result.Lines[0] != "type Root struct {" {
		t.Fatalf("Lines[0] = %q, want %q", result.Lines[0], "type Root struct {")
	}
	if result.Lines[len(result.Lines)-1] != "}" {
		t.Fatalf("last line = %q, want }", result.Lines[len(result.Lines)-1])
	}
}

func TestNameForNamedTypeFollowsRedirectAndDemotion(t *testing.T) {
	g := ir.NewGraph()
	innerID := g.AddClass(ir.NewClassData(ir.Given(map[string]struct{}{"Inner": {}}, ir.StringSetMerge)))
	redirectedID := g.AddClass(ir.NewClassData(ir.Inferred(map[string]struct{}{}, ir.StringSetMerge)))
	g.Redirect(redirectedID, innerID)

	root := ir.NewClassData(ir.Given(map[string]struct{}{"Root": {}}, ir.StringSetMerge))
	root.SetProperty("p", ir.ClassRef(redirectedID))
	rootID := g.AddClass(root)
	g.AddTopLevel("Root", ir.ClassRef(rootID))

	demoted := ir.NewClassData(ir.Inferred(map[string]struct{}{"entries": {}}, ir.StringSetMerge))
	demoted.SetProperty("en", ir.Primitive(ir.KindString))
	demotedElem := ir.Primitive(ir.KindString)
	demoted.MapElem = &demotedElem
	demotedID := g.AddClass(demoted)

	lang := newFakeLang()
	nt, err := BuildNameTable(g, naming.GoKeywords, lang)
	if err != nil {
		t.Fatalf("BuildNameTable: %v", err)
	}
	r := NewConvenienceRenderer(g, nt, lang)

	name, ok := r.NameForNamedType(ir.ClassRef(redirectedID))
	if !ok {
		t.Fatalf("NameForNamedType(redirected) not found")
	}
	if got := name.String(); got != "Inner" {
		t.Fatalf("NameForNamedType(redirected) = %q, want Inner", got)
	}

	if _, ok := r.NameForNamedType(ir.ClassRef(demotedID)); ok {
		t.Fatalf("NameForNamedType(demoted) found a name, want none (a demoted class is a map)")
	}
}
