package ir

import "sort"

// Kind tags the variant of an IRType. It is the discriminant of the closed
// sum described by spec.md §3; every switch over a Kind in this codebase
// must be exhaustive, so adding a Kind means touching every such switch.
type Kind int

const (
	// KindNoInformation is a placeholder for an unknown slot (e.g. the
	// element type of an empty array) that must not survive to a
	// finalized graph.
	KindNoInformation Kind = iota
	// KindAny is observed as inhabitable by more than one incompatible
	// class; renderers map it to the target language's top type.
	KindAny
	KindNull
	KindInteger
	KindDouble
	KindBool
	KindString
	KindArray
	KindClass
	KindMap
	KindEnum
	KindUnion
)

func (k Kind) String() string {
	switch k {
	case KindNoInformation:
		return "no-information"
	case KindAny:
		return "any"
	case KindNull:
		return "null"
	case KindInteger:
		return "integer"
	case KindDouble:
		return "double"
	case KindBool:
		return "bool"
	case KindString:
		return "string"
	case KindArray:
		return "array"
	case KindClass:
		return "class"
	case KindMap:
		return "map"
	case KindEnum:
		return "enum"
	case KindUnion:
		return "union"
	default:
		return "unknown"
	}
}

// ClassId is an arena index into a Graph's class table. Indices are never
// reused and never shrink; a Redirect entry keeps a ClassId valid forever
// even after its class has been unified into another.
type ClassId int

// IRType is the closed sum described by spec.md §3. Only one of the
// pointer/value fields is meaningful, selected by Kind:
//
//	KindArray -> Elem
//	KindClass -> Class
//	KindMap   -> Elem
//	KindEnum  -> EnumData
//	KindUnion -> Union
//
// All other kinds carry no payload. IRType is a value type, cheap to copy;
// the only graph-level sharing is through ClassId indirection into the
// owning Graph's arena (spec.md §5).
type IRType struct {
	Kind     Kind
	Elem     *IRType
	Class    ClassId
	EnumData *EnumData
	Union    *UnionRep
}

// Primitive constructs a primitive, arrayless, classless IRType.
func Primitive(k Kind) IRType {
	return IRType{Kind: k}
}

// NoInformation is the placeholder type for an unknown slot.
func NoInformation() IRType { return IRType{Kind: KindNoInformation} }

// Any is the top type.
func Any() IRType { return IRType{Kind: KindAny} }

// ArrayOf builds an Array(elem) type.
func ArrayOf(elem IRType) IRType {
	e := elem
	return IRType{Kind: KindArray, Elem: &e}
}

// MapOf builds a Map(elem) type, produced only by the map-vs-class
// heuristic (spec.md §4.3).
func MapOf(elem IRType) IRType {
	e := elem
	return IRType{Kind: KindMap, Elem: &e}
}

// ClassRef builds a Class(id) type.
func ClassRef(id ClassId) IRType {
	return IRType{Kind: KindClass, Class: id}
}

// EnumType builds an Enum(data) type.
func EnumType(e *EnumData) IRType {
	return IRType{Kind: KindEnum, EnumData: e}
}

// UnionType builds a Union(rep) type.
func UnionType(u *UnionRep) IRType {
	return IRType{Kind: KindUnion, Union: u}
}

// IsNoInformation reports whether t is the NoInformation placeholder.
func (t IRType) IsNoInformation() bool { return t.Kind == KindNoInformation }

// ClassData describes a candidate or finalized class (struct/record) type:
// its accumulated names and its properties in first-encountered order.
type ClassData struct {
	Names Named[map[string]struct{}]
	// PropertyOrder records insertion order; PropertyOrder[i] indexes
	// into Properties. Unification preserves the order contributed by
	// the first sample that introduced each property (spec.md §3).
	PropertyOrder []string
	Properties    map[string]IRType
	// MapElem is set by the map-vs-class heuristic (spec.md §4.3) when
	// this class is demoted to a string-keyed map. The class's arena
	// entry and ClassId are left untouched -- classes are never deleted,
	// only redirected or demoted -- so existing Class(id) references
	// remain valid; callers that need the demoted shape call
	// EffectiveType instead of inspecting Kind directly.
	MapElem *IRType
	// Forced marks a class whose shape was dictated explicitly -- a JSON
	// Schema or GraphQL object type's own "properties" list -- rather
	// than merely named. spec.md §4.3's "never demote a user-named class"
	// exclusion is for this case, not for a top-level sample's Given name:
	// a sample-inferred class stays demotable even when Names.IsGiven()
	// is true, so map-vs-class demotion gates on Forced instead of on
	// Names.IsGiven().
	Forced bool
}

// EffectiveType returns t unchanged unless t is a Class reference to a
// class that the map-vs-class heuristic has demoted, in which case it
// returns the equivalent Map(elem) type.
func EffectiveType(g *Graph, t IRType) (IRType, error) {
	if t.Kind != KindClass {
		return t, nil
	}
	cd, err := g.ClassData(t.Class)
	if err != nil {
		return IRType{}, err
	}
	if cd.MapElem != nil {
		return MapOf(*cd.MapElem), nil
	}
	return t, nil
}

// NewClassData returns an empty ClassData ready to accumulate properties.
func NewClassData(name Named[map[string]struct{}]) *ClassData {
	return &ClassData{Names: name, Properties: map[string]IRType{}}
}

// SetProperty inserts or overwrites a property, appending to
// PropertyOrder only on first insertion so iteration order tracks
// first-contribution order.
func (c *ClassData) SetProperty(name string, t IRType) {
	if _, ok := c.Properties[name]; !ok {
		c.PropertyOrder = append(c.PropertyOrder, name)
	}
	c.Properties[name] = t
}

// HasProperty reports whether name is already a property of c.
func (c *ClassData) HasProperty(name string) bool {
	_, ok := c.Properties[name]
	return ok
}

// EnumData describes a closed set of string values observed for an
// enumerated property.
type EnumData struct {
	Names  Named[map[string]struct{}]
	Values map[string]struct{}
}

// NewEnumData returns an EnumData seeded with a single value.
func NewEnumData(name Named[map[string]struct{}], firstValue string) *EnumData {
	return &EnumData{Names: name, Values: map[string]struct{}{firstValue: {}}}
}

// SortedValues returns the enum's values in sorted order, for stable
// emission (spec.md §8 property 4).
func (e *EnumData) SortedValues() []string {
	out := make([]string, 0, len(e.Values))
	for v := range e.Values {
		out = append(out, v)
	}
	sort.Strings(out)
	return out
}
