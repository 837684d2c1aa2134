package jsonschema

import (
	"fmt"

	"github.com/marlowcharite/quicktype/internal/errlist"
	"github.com/marlowcharite/quicktype/internal/ir"
)

// Translator maps a JSON Schema document tree into a Graph, implementing
// spec.md §4.4. A Translator accumulates non-fatal Issues (spec.md §7)
// rather than aborting when it meets an unsupported construct.
type Translator struct {
	Graph  *ir.Graph
	Issues errlist.List
	// refs caches $ref strings already resolved to a ClassId, so that a
	// cyclic $ref (a definition that refers to itself, directly or
	// through others) terminates: the id is reserved before the target's
	// properties are translated (spec.md §4.4, §9).
	refs map[string]ir.ClassId
}

// NewTranslator returns a Translator that allocates into g.
func NewTranslator(g *ir.Graph) *Translator {
	return &Translator{Graph: g, refs: map[string]ir.ClassId{}}
}

// Translate implements spec.md §4.4's mapping table for one schema node.
// root is the document $refs resolve against; nameSet seeds the names of
// any class, enum, or union this node introduces (spec.md's Given/
// Inferred distinction -- a "title" on doc becomes a Given name, which
// replaces an Inferred nameSet and is added to a Given one, per spec.md
// §4.4).
func (t *Translator) Translate(root, doc *Document, nameSet ir.Named[map[string]struct{}]) (ir.IRType, error) {
	return t.translate(root, doc, nameSet, nil)
}

func (t *Translator) translate(root, doc *Document, nameSet ir.Named[map[string]struct{}], presetID *ir.ClassId) (ir.IRType, error) {
	if doc.Ref != "" {
		return t.translateRef(root, doc, nameSet)
	}

	if doc.Title != "" {
		nameSet = ir.Given(map[string]struct{}{doc.Title: {}}, ir.StringSetMerge).Merge(nameSet)
	}

	if doc.Pattern != "" || doc.Minimum != nil || doc.Maximum != nil || len(doc.AllOf) > 0 {
		t.Issues = errlist.Append(t.Issues, fmt.Errorf("jsonschema: unsupported constraint on %q degraded to its base type", doc.Type))
	}

	switch {
	case len(doc.Enum) > 0:
		return t.translateEnum(doc, nameSet), nil
	case len(doc.OneOf) > 0:
		return t.translateUnion(root, doc.OneOf, nameSet)
	case len(doc.AnyOf) > 0:
		return t.translateUnion(root, doc.AnyOf, nameSet)
	}

	switch doc.Type {
	case "string":
		return ir.Primitive(ir.KindString), nil
	case "number":
		return ir.Primitive(ir.KindDouble), nil
	case "integer":
		return ir.Primitive(ir.KindInteger), nil
	case "boolean":
		return ir.Primitive(ir.KindBool), nil
	case "null":
		return ir.Primitive(ir.KindNull), nil
	case "array":
		return t.translateArray(root, doc, nameSet)
	case "object":
		return t.translateObject(root, doc, nameSet, presetID)
	default:
		t.Issues = errlist.Append(t.Issues, fmt.Errorf("jsonschema: node with no recognized type degraded to Any"))
		return ir.Any(), nil
	}
}

func (t *Translator) translateRef(root, doc *Document, nameSet ir.Named[map[string]struct{}]) (ir.IRType, error) {
	if id, ok := t.refs[doc.Ref]; ok {
		return ir.ClassRef(id), nil
	}
	target, ok := resolveRef(root, doc.Ref)
	if !ok {
		t.Issues = errlist.Append(t.Issues, fmt.Errorf("jsonschema: unresolved $ref %q degraded to Any", doc.Ref))
		return ir.Any(), nil
	}
	id := t.Graph.Reserve()
	t.refs[doc.Ref] = id
	return t.translate(root, target, nameSet, &id)
}

func (t *Translator) translateArray(root, doc *Document, nameSet ir.Named[map[string]struct{}]) (ir.IRType, error) {
	if doc.Items == nil {
		return ir.ArrayOf(ir.NoInformation()), nil
	}
	elem, err := t.translate(root, doc.Items, nameSet, nil)
	if err != nil {
		return ir.IRType{}, err
	}
	return ir.ArrayOf(elem), nil
}

func (t *Translator) translateObject(root, doc *Document, nameSet ir.Named[map[string]struct{}], presetID *ir.ClassId) (ir.IRType, error) {
	if len(doc.Properties) == 0 {
		elem := ir.Any()
		if ap := doc.AdditionalProperties; ap != nil && ap.Schema != nil {
			var err error
			elem, err = t.translate(root, ap.Schema, nameSet, nil)
			if err != nil {
				return ir.IRType{}, err
			}
		}
		return ir.MapOf(elem), nil
	}

	cd := ir.NewClassData(nameSet)
	cd.Forced = true
	var id ir.ClassId
	if presetID != nil {
		id = *presetID
	} else {
		id = t.Graph.Reserve()
	}
	for _, key := range doc.PropertyOrder {
		sub := doc.Properties[key]
		subNames := ir.Inferred(map[string]struct{}{key: {}}, ir.StringSetMerge)
		subType, err := t.translate(root, sub, subNames, nil)
		if err != nil {
			return ir.IRType{}, err
		}
		if !t.isRequired(doc, key) {
			subType = nullableUnion(subType)
		}
		cd.SetProperty(key, subType)
	}
	if err := t.Graph.Populate(id, cd); err != nil {
		return ir.IRType{}, err
	}
	return ir.ClassRef(id), nil
}

func (t *Translator) isRequired(doc *Document, key string) bool {
	if !doc.RequiredSet {
		return false
	}
	for _, r := range doc.Required {
		if r == key {
			return true
		}
	}
	return false
}

// nullableUnion wraps t in Union({t, Null}), folding t's own arms in if it
// is already a union, so a property never ends up as Union(Union(...)).
func nullableUnion(t ir.IRType) ir.IRType {
	rep := ir.EmptyUnion(ir.Inferred(map[string]struct{}{}, ir.StringSetMerge))
	rep.InsertPrimitive(ir.KindNull)
	insertSimple(rep, t)
	return ir.UnionType(rep)
}

// insertSimple adds t's kind to rep without the recursive unify that
// internal/infer's Unifier performs -- schema translation never observes
// two conflicting values for the same slot the way sample-based inference
// does, so a straightforward "first one wins" insert is sufficient here.
func insertSimple(rep *ir.UnionRep, t ir.IRType) {
	switch t.Kind {
	case ir.KindNull, ir.KindInteger, ir.KindDouble, ir.KindBool, ir.KindString:
		rep.InsertPrimitive(t.Kind)
	case ir.KindArray:
		if rep.ArrayType == nil {
			e := *t.Elem
			rep.ArrayType = &e
		}
	case ir.KindClass:
		if rep.ClassRef == nil {
			id := t.Class
			rep.ClassRef = &id
		}
	case ir.KindMap:
		if rep.MapType == nil {
			e := *t.Elem
			rep.MapType = &e
		}
	case ir.KindEnum:
		if rep.EnumData == nil {
			rep.EnumData = t.EnumData
		}
	case ir.KindUnion:
		ir.ForEach(t.Union, func(arm ir.IRType) { insertSimple(rep, arm) })
	}
}

func (t *Translator) translateEnum(doc *Document, nameSet ir.Named[map[string]struct{}]) ir.IRType {
	if len(doc.Enum) == 0 {
		return ir.Any()
	}
	ed := ir.NewEnumData(nameSet, doc.Enum[0])
	for _, v := range doc.Enum[1:] {
		ed.Values[v] = struct{}{}
	}
	return ir.EnumType(ed)
}

func (t *Translator) translateUnion(root *Document, arms []*Document, nameSet ir.Named[map[string]struct{}]) (ir.IRType, error) {
	rep := ir.EmptyUnion(nameSet)
	for _, arm := range arms {
		at, err := t.translate(root, arm, nameSet, nil)
		if err != nil {
			return ir.IRType{}, err
		}
		insertSimple(rep, at)
	}
	return ir.UnionType(rep), nil
}
