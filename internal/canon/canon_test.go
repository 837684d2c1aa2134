package canon

import (
	"testing"

	"github.com/marlowcharite/quicktype/internal/ir"
)

// A Root class with a property "p" of type Class(inner) gets "p" added to
// inner's Inferred name set; an array property "tags" of Class(tag)
// contributes the singular "tag" instead.
func TestRegatherNamesDirectAndSingular(t *testing.T) {
	g := ir.NewGraph()
	innerID := g.AddClass(ir.NewClassData(ir.Inferred(map[string]struct{}{}, ir.StringSetMerge)))
	tagID := g.AddClass(ir.NewClassData(ir.Inferred(map[string]struct{}{}, ir.StringSetMerge)))

	root := ir.NewClassData(ir.Given(map[string]struct{}{"Root": {}}, ir.StringSetMerge))
	root.SetProperty("p", ir.ClassRef(innerID))
	root.SetProperty("tags", ir.ArrayOf(ir.ClassRef(tagID)))
	rootID := g.AddClass(root)
	g.AddTopLevel("Root", ir.ClassRef(rootID))

	if err := Canonicalize(g); err != nil {
		t.Fatalf("Canonicalize: %v", err)
	}

	innerCD, err := g.ClassData(innerID)
	if err != nil {
		t.Fatalf("ClassData(inner): %v", err)
	}
	if names := innerCD.Names.SortedNames(); len(names) != 1 || names[0] != "p" {
		t.Fatalf("inner names = %v, want [p]", names)
	}

	tagCD, err := g.ClassData(tagID)
	if err != nil {
		t.Fatalf("ClassData(tag): %v", err)
	}
	if names := tagCD.Names.SortedNames(); len(names) != 1 || names[0] != "tag" {
		t.Fatalf("tag names = %v, want [tag] (singular of tags)", names)
	}
}

// A Given class name is never displaced by a regathered Inferred name.
func TestRegatherNamesGivenWins(t *testing.T) {
	g := ir.NewGraph()
	innerID := g.AddClass(ir.NewClassData(ir.Given(map[string]struct{}{"Widget": {}}, ir.StringSetMerge)))
	root := ir.NewClassData(ir.Given(map[string]struct{}{"Root": {}}, ir.StringSetMerge))
	root.SetProperty("p", ir.ClassRef(innerID))
	rootID := g.AddClass(root)
	g.AddTopLevel("Root", ir.ClassRef(rootID))

	if err := Canonicalize(g); err != nil {
		t.Fatalf("Canonicalize: %v", err)
	}
	innerCD, err := g.ClassData(innerID)
	if err != nil {
		t.Fatalf("ClassData(inner): %v", err)
	}
	if !innerCD.Names.IsGiven() {
		t.Fatalf("inner lost its Given name")
	}
	if names := innerCD.Names.SortedNames(); len(names) != 1 || names[0] != "Widget" {
		t.Fatalf("inner names = %v, want [Widget]", names)
	}
}

// A Class reference through a redirect is rewritten to point at the live
// entry directly, while the redirect slot itself is left in place.
func TestCollapseRedirects(t *testing.T) {
	g := ir.NewGraph()
	oldID := g.AddClass(ir.NewClassData(ir.Inferred(map[string]struct{}{}, ir.StringSetMerge)))
	newID := g.AddClass(ir.NewClassData(ir.Inferred(map[string]struct{}{}, ir.StringSetMerge)))
	g.Redirect(oldID, newID)

	root := ir.NewClassData(ir.Given(map[string]struct{}{"Root": {}}, ir.StringSetMerge))
	root.SetProperty("p", ir.ClassRef(oldID))
	rootID := g.AddClass(root)
	g.AddTopLevel("Root", ir.ClassRef(rootID))

	if err := Canonicalize(g); err != nil {
		t.Fatalf("Canonicalize: %v", err)
	}
	rootCD, err := g.ClassData(rootID)
	if err != nil {
		t.Fatalf("ClassData(root): %v", err)
	}
	if got := rootCD.Properties["p"].Class; got != newID {
		t.Fatalf("p.Class = %d, want %d (collapsed past redirect)", got, newID)
	}

	entry := g.Entry(oldID)
	if entry.Kind != ir.EntryRedirect {
		t.Fatalf("redirect slot at %d was removed, want it to remain", oldID)
	}
}

// Running Canonicalize twice produces the same result as once.
func TestCanonicalizeIdempotent(t *testing.T) {
	g := ir.NewGraph()
	innerID := g.AddClass(ir.NewClassData(ir.Inferred(map[string]struct{}{}, ir.StringSetMerge)))
	root := ir.NewClassData(ir.Given(map[string]struct{}{"Root": {}}, ir.StringSetMerge))
	root.SetProperty("p", ir.ClassRef(innerID))
	rootID := g.AddClass(root)
	g.AddTopLevel("Root", ir.ClassRef(rootID))

	if err := Canonicalize(g); err != nil {
		t.Fatalf("Canonicalize (1st): %v", err)
	}
	first, err := g.ClassData(innerID)
	if err != nil {
		t.Fatalf("ClassData: %v", err)
	}
	firstNames := first.Names.SortedNames()

	if err := Canonicalize(g); err != nil {
		t.Fatalf("Canonicalize (2nd): %v", err)
	}
	second, err := g.ClassData(innerID)
	if err != nil {
		t.Fatalf("ClassData: %v", err)
	}
	secondNames := second.Names.SortedNames()

	if len(firstNames) != len(secondNames) {
		t.Fatalf("name set changed across repeated Canonicalize: %v != %v", firstNames, secondNames)
	}
	for i := range firstNames {
		if firstNames[i] != secondNames[i] {
			t.Fatalf("name set changed across repeated Canonicalize: %v != %v", firstNames, secondNames)
		}
	}
}
