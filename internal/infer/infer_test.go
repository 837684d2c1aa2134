package infer

import (
	"strings"
	"testing"

	"github.com/marlowcharite/quicktype/internal/ir"
	"github.com/marlowcharite/quicktype/internal/jsonstream"
)

func decode(t *testing.T, s string) jsonstream.Value {
	t.Helper()
	v, err := jsonstream.Decode(strings.NewReader(s))
	if err != nil {
		t.Fatalf("decode(%q): %v", s, err)
	}
	return v
}

// S1: {"a": 1, "b": "x"} -> class Root{a: Integer, b: String}, in order a, b.
func TestSeedS1(t *testing.T) {
	g := ir.NewGraph()
	u := NewUnifier(g, false)

	typ, err := u.Infer(decode(t, `{"a": 1, "b": "x"}`), NameHint{Name: "Root", Given: true})
	if err != nil {
		t.Fatalf("Infer: %v", err)
	}
	if typ.Kind != ir.KindClass {
		t.Fatalf("Kind = %v, want Class", typ.Kind)
	}
	cd, err := g.ClassData(typ.Class)
	if err != nil {
		t.Fatalf("ClassData: %v", err)
	}
	if got := cd.PropertyOrder; len(got) != 2 || got[0] != "a" || got[1] != "b" {
		t.Fatalf("PropertyOrder = %v, want [a b]", got)
	}
	if cd.Properties["a"].Kind != ir.KindInteger {
		t.Errorf("a.Kind = %v, want Integer", cd.Properties["a"].Kind)
	}
	if cd.Properties["b"].Kind != ir.KindString {
		t.Errorf("b.Kind = %v, want String", cd.Properties["b"].Kind)
	}
}

// S2: {"xs": []} then {"xs": [1]} -> xs: Array(Integer); NoInformation erased.
func TestSeedS2(t *testing.T) {
	g := ir.NewGraph()
	u := NewUnifier(g, false)

	agg := ir.NoInformation()
	var err error
	agg, err = u.IntegrateSample(agg, decode(t, `{"xs": []}`), NameHint{Name: "Root", Given: true})
	if err != nil {
		t.Fatalf("IntegrateSample 1: %v", err)
	}
	agg, err = u.IntegrateSample(agg, decode(t, `{"xs": [1]}`), NameHint{Name: "Root", Given: true})
	if err != nil {
		t.Fatalf("IntegrateSample 2: %v", err)
	}

	cd, err := g.ClassData(agg.Class)
	if err != nil {
		t.Fatalf("ClassData: %v", err)
	}
	xs := cd.Properties["xs"]
	if xs.Kind != ir.KindArray {
		t.Fatalf("xs.Kind = %v, want Array", xs.Kind)
	}
	if xs.Elem.Kind != ir.KindInteger {
		t.Fatalf("xs element Kind = %v, want Integer", xs.Elem.Kind)
	}
}

// S3: {"x":1,"y":null} + {"x":null,"y":2} -> x, y both nullable integer.
func TestSeedS3(t *testing.T) {
	g := ir.NewGraph()
	u := NewUnifier(g, false)

	agg := ir.NoInformation()
	var err error
	agg, err = u.IntegrateSample(agg, decode(t, `{"x": 1, "y": null}`), NameHint{Name: "Root", Given: true})
	if err != nil {
		t.Fatalf("IntegrateSample 1: %v", err)
	}
	agg, err = u.IntegrateSample(agg, decode(t, `{"x": null, "y": 2}`), NameHint{Name: "Root", Given: true})
	if err != nil {
		t.Fatalf("IntegrateSample 2: %v", err)
	}

	cd, err := g.ClassData(agg.Class)
	if err != nil {
		t.Fatalf("ClassData: %v", err)
	}
	for _, prop := range []string{"x", "y"} {
		pt := cd.Properties[prop]
		if pt.Kind != ir.KindUnion {
			t.Fatalf("%s.Kind = %v, want Union", prop, pt.Kind)
		}
		sole, ok := ir.NullableFrom(pt.Union)
		if !ok || sole.Kind != ir.KindInteger {
			t.Fatalf("%s: NullableFrom = (%v, %v), want (Integer, true)", prop, sole.Kind, ok)
		}
	}
}

// S4: {"p": {"a": 1}, "q": {"a": 2}} -> one class referenced by both p and
// q, with inferred names {p, q}.
func TestSeedS4(t *testing.T) {
	g := ir.NewGraph()
	u := NewUnifier(g, false)

	typ, err := u.Infer(decode(t, `{"p": {"a": 1}, "q": {"a": 2}}`), NameHint{Name: "Root", Given: true})
	if err != nil {
		t.Fatalf("Infer: %v", err)
	}
	cd, err := g.ClassData(typ.Class)
	if err != nil {
		t.Fatalf("ClassData: %v", err)
	}
	p, q := cd.Properties["p"], cd.Properties["q"]
	if p.Kind != ir.KindClass || q.Kind != ir.KindClass {
		t.Fatalf("p.Kind=%v q.Kind=%v, want Class, Class", p.Kind, q.Kind)
	}
	pLive, _ := g.FollowIndex(p.Class)
	qLive, _ := g.FollowIndex(q.Class)
	if pLive != qLive {
		t.Fatalf("p and q resolve to different classes: %d != %d", pLive, qLive)
	}
	inner, err := g.ClassData(pLive)
	if err != nil {
		t.Fatalf("ClassData(inner): %v", err)
	}
	names := inner.Names.SortedNames()
	if len(names) != 2 || names[0] != "p" || names[1] != "q" {
		t.Fatalf("inner class names = %v, want [p q]", names)
	}
	if inner.Properties["a"].Kind != ir.KindInteger {
		t.Fatalf("inner.a.Kind = %v, want Integer", inner.Properties["a"].Kind)
	}
}

// S6: three single-property samples sharing a top level -> with maps
// enabled, the resulting class demotes to Map(String); with maps
// disabled, it stays a class with three nullable string properties.
func TestSeedS6MapsEnabled(t *testing.T) {
	g := ir.NewGraph()
	u := NewUnifier(g, false)

	agg := ir.NoInformation()
	var err error
	for _, sample := range []string{`{"en": "one"}`, `{"fr": "un"}`, `{"de": "eins"}`} {
		agg, err = u.IntegrateSample(agg, decode(t, sample), NameHint{Name: "Root", Given: true})
		if err != nil {
			t.Fatalf("IntegrateSample(%s): %v", sample, err)
		}
	}
	if err := u.ApplyMapHeuristic(); err != nil {
		t.Fatalf("ApplyMapHeuristic: %v", err)
	}

	effective, err := ir.EffectiveType(g, agg)
	if err != nil {
		t.Fatalf("EffectiveType: %v", err)
	}
	if effective.Kind != ir.KindMap {
		t.Fatalf("effective.Kind = %v, want Map", effective.Kind)
	}
	if effective.Elem.Kind != ir.KindString {
		t.Fatalf("effective element Kind = %v, want String", effective.Elem.Kind)
	}
}

func TestSeedS6MapsDisabled(t *testing.T) {
	g := ir.NewGraph()
	u := NewUnifier(g, true) // --no-maps

	agg := ir.NoInformation()
	var err error
	for _, sample := range []string{`{"en": "one"}`, `{"fr": "un"}`, `{"de": "eins"}`} {
		agg, err = u.IntegrateSample(agg, decode(t, sample), NameHint{Name: "Root", Given: true})
		if err != nil {
			t.Fatalf("IntegrateSample(%s): %v", sample, err)
		}
	}
	if err := u.ApplyMapHeuristic(); err != nil {
		t.Fatalf("ApplyMapHeuristic: %v", err)
	}

	cd, err := g.ClassData(agg.Class)
	if err != nil {
		t.Fatalf("ClassData: %v", err)
	}
	if cd.MapElem != nil {
		t.Fatalf("MapElem set despite --no-maps")
	}
	if len(cd.PropertyOrder) != 3 {
		t.Fatalf("PropertyOrder = %v, want 3 properties", cd.PropertyOrder)
	}
	for _, prop := range []string{"en", "fr", "de"} {
		pt := cd.Properties[prop]
		if pt.Kind != ir.KindUnion {
			t.Fatalf("%s.Kind = %v, want Union (nullable string)", prop, pt.Kind)
		}
		sole, ok := ir.NullableFrom(pt.Union)
		if !ok || sole.Kind != ir.KindString {
			t.Fatalf("%s: NullableFrom = (%v, %v), want (String, true)", prop, sole.Kind, ok)
		}
	}
}

func TestSingular(t *testing.T) {
	cases := map[string]string{
		"xs":        "x",
		"classes":   "class",
		"countries": "country",
		"data":      "data",
		"s":         "s",
	}
	for in, want := range cases {
		if got := Singular(in); got != want {
			t.Errorf("Singular(%q) = %q, want %q", in, got, want)
		}
	}
}
