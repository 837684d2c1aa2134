package graphqlschema

import (
	"fmt"

	"github.com/marlowcharite/quicktype/internal/errlist"
	"github.com/marlowcharite/quicktype/internal/ir"
)

// Translator maps a Schema's named types into a Graph. One Translator
// should be reused across every root operation type translated from the
// same Schema, so that two fields referencing the same GraphQL type
// resolve to the same ClassId (mirroring jsonschema.Translator's refs
// cache, spec.md §4.4).
type Translator struct {
	Graph  *ir.Graph
	Schema *Schema
	Issues errlist.List
	// classes caches GraphQL type name -> ClassId for OBJECT and
	// INPUT_OBJECT kinds, and enums caches name -> *ir.EnumData for ENUM
	// kinds, so cyclic object graphs (a Comment whose replies are
	// Comments) terminate the same way jsonschema's $ref cache does.
	classes map[string]ir.ClassId
	enums   map[string]*ir.EnumData
}

// NewTranslator returns a Translator over g for the given introspected
// schema.
func NewTranslator(g *ir.Graph, schema *Schema) *Translator {
	return &Translator{
		Graph:   g,
		Schema:  schema,
		classes: map[string]ir.ClassId{},
		enums:   map[string]*ir.EnumData{},
	}
}

// TranslateOperation translates one root operation type (Query, Mutation,
// or Subscription) to an IRType, registering it as a named top-level in
// Graph.
func (t *Translator) TranslateOperation(name string, root *TypeRef) (ir.IRType, error) {
	if root == nil {
		return ir.IRType{}, fmt.Errorf("graphqlschema: operation %q has no root type", name)
	}
	typ, err := t.translateRef(*root, ir.Given(map[string]struct{}{name: {}}, ir.StringSetMerge))
	if err != nil {
		return ir.IRType{}, err
	}
	t.Graph.AddTopLevel(name, typ)
	return typ, nil
}

func (t *Translator) translateRef(ref TypeRef, nameSet ir.Named[map[string]struct{}]) (ir.IRType, error) {
	switch ref.Kind {
	case List:
		if ref.OfType == nil {
			return ir.IRType{}, fmt.Errorf("graphqlschema: LIST type with no ofType")
		}
		elem, err := t.translateRef(*ref.OfType, nameSet)
		if err != nil {
			return ir.IRType{}, err
		}
		return ir.ArrayOf(elem), nil
	case NonNull:
		if ref.OfType == nil {
			return ir.IRType{}, fmt.Errorf("graphqlschema: NON_NULL type with no ofType")
		}
		// The IR has no separate non-null wrapper (spec.md §3); a NON_NULL
		// ref simply contributes the wrapped type directly, since the
		// nullable case (the common one in practice) is the one that
		// needs a Union({..., Null}) wrapper, added by translateField,
		// not here.
		return t.translateRef(*ref.OfType, nameSet)
	}

	if isBuiltinScalar(ref.Name) {
		return t.translateScalar(ref.Name), nil
	}

	full, ok := t.Schema.lookup(ref.Name)
	if !ok {
		t.Issues = errlist.Append(t.Issues, fmt.Errorf("graphqlschema: unresolved type %q degraded to Any", ref.Name))
		return ir.Any(), nil
	}

	switch full.Kind {
	case Scalar:
		// A custom scalar (e.g. "Date", "DateTime") carries no shape
		// information in introspection; spec.md's IR has no opaque
		// scalar kind, so it degrades to String, the representation
		// every custom scalar serializes to over the wire in practice.
		return ir.Primitive(ir.KindString), nil
	case Enum:
		return t.translateEnum(full, nameSet), nil
	case Object, InputObject:
		return t.translateObject(full, nameSet)
	case Interface, Union:
		return t.translateUnionKind(full, nameSet)
	default:
		t.Issues = errlist.Append(t.Issues, fmt.Errorf("graphqlschema: unsupported type kind %q for %q degraded to Any", full.Kind, full.Name))
		return ir.Any(), nil
	}
}

func (t *Translator) translateScalar(name string) ir.IRType {
	switch name {
	case "Int":
		return ir.Primitive(ir.KindInteger)
	case "Float":
		return ir.Primitive(ir.KindDouble)
	case "Boolean":
		return ir.Primitive(ir.KindBool)
	case "String", "ID":
		return ir.Primitive(ir.KindString)
	default:
		return ir.Primitive(ir.KindString)
	}
}

func (t *Translator) translateEnum(full *FullType, nameSet ir.Named[map[string]struct{}]) ir.IRType {
	if ed, ok := t.enums[full.Name]; ok {
		return ir.EnumType(ed)
	}
	if len(full.EnumValues) == 0 {
		return ir.Any()
	}
	ed := ir.NewEnumData(nameSet, full.EnumValues[0].Name)
	for _, v := range full.EnumValues[1:] {
		ed.Values[v.Name] = struct{}{}
	}
	t.enums[full.Name] = ed
	return ir.EnumType(ed)
}

func (t *Translator) translateObject(full *FullType, nameSet ir.Named[map[string]struct{}]) (ir.IRType, error) {
	if id, ok := t.classes[full.Name]; ok {
		return ir.ClassRef(id), nil
	}
	id := t.Graph.Reserve()
	t.classes[full.Name] = id

	cd := ir.NewClassData(nameSet)
	cd.Forced = true
	if full.Kind == InputObject {
		for _, f := range full.InputFields {
			if err := t.translateField(cd, f.Name, f.Type); err != nil {
				return ir.IRType{}, err
			}
		}
	} else {
		for _, f := range full.Fields {
			if err := t.translateField(cd, f.Name, f.Type); err != nil {
				return ir.IRType{}, err
			}
		}
	}
	if err := t.Graph.Populate(id, cd); err != nil {
		return ir.IRType{}, err
	}
	return ir.ClassRef(id), nil
}

func (t *Translator) translateField(cd *ir.ClassData, name string, ref TypeRef) error {
	fieldNames := ir.Inferred(map[string]struct{}{name: {}}, ir.StringSetMerge)
	ft, err := t.translateRef(ref, fieldNames)
	if err != nil {
		return err
	}
	if ref.Kind != NonNull {
		ft = nullableUnion(ft)
	}
	cd.SetProperty(name, ft)
	return nil
}

// nullableUnion wraps t in Union({t, Null}); GraphQL's nullable-by-default
// fields (anything not wrapped in NON_NULL) are translated the same way
// jsonschema's optional properties are (spec.md §4.4).
func nullableUnion(t ir.IRType) ir.IRType {
	rep := ir.EmptyUnion(ir.Inferred(map[string]struct{}{}, ir.StringSetMerge))
	rep.InsertPrimitive(ir.KindNull)
	insertSimple(rep, t)
	return ir.UnionType(rep)
}

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

// translateUnionKind maps a GraphQL UNION or INTERFACE to a Union over its
// possible concrete types. A GraphQL union can only ever contain OBJECT
// members, so each member translates via translateObject; only the first
// becomes the Union's class arm.
func (t *Translator) translateUnionKind(full *FullType, nameSet ir.Named[map[string]struct{}]) (ir.IRType, error) {
	rep := ir.EmptyUnion(nameSet)
	for _, memberName := range full.PossibleTypes {
		member, ok := t.Schema.lookup(memberName)
		if !ok {
			t.Issues = errlist.Append(t.Issues, fmt.Errorf("graphqlschema: unresolved union member %q", memberName))
			continue
		}
		mt, err := t.translateObject(member, ir.Inferred(map[string]struct{}{memberName: {}}, ir.StringSetMerge))
		if err != nil {
			return ir.IRType{}, err
		}
		// UnionRep carries at most one class slot (spec.md §3); a GraphQL
		// union with more than one OBJECT member can't be represented
		// precisely, so every member after the first is recorded as a
		// dropped issue rather than silently overwriting the slot.
		if mt.Kind == ir.KindClass && rep.ClassRef != nil {
			t.Issues = errlist.Append(t.Issues, fmt.Errorf("graphqlschema: union %q has multiple object members; %q dropped", full.Name, memberName))
			continue
		}
		insertSimple(rep, mt)
	}
	return ir.UnionType(rep), nil
}
