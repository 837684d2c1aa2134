// Package graphqlschema translates a GraphQL server's __schema
// introspection result into the core's IR, per spec.md §4.4's extension to
// GraphQL sources. The shapes here mirror the standard introspection
// query's JSON response (the "__Schema"/"__Type" meta-fields every
// GraphQL server exposes), not any particular server implementation.
package graphqlschema

import "encoding/json"

// TypeKind is GraphQL's __TypeKind enum.
type TypeKind string

const (
	Scalar      TypeKind = "SCALAR"
	Object      TypeKind = "OBJECT"
	Interface   TypeKind = "INTERFACE"
	Union       TypeKind = "UNION"
	Enum        TypeKind = "ENUM"
	InputObject TypeKind = "INPUT_OBJECT"
	List        TypeKind = "LIST"
	NonNull     TypeKind = "NON_NULL"
)

// Schema is the decoded body of a standard introspection query's
// "__schema" field.
type Schema struct {
	QueryType        *TypeRef   `json:"queryType"`
	MutationType     *TypeRef   `json:"mutationType"`
	SubscriptionType *TypeRef   `json:"subscriptionType"`
	Types            []FullType `json:"types"`
}

// TypeRef is a reference to a named type, or a List/NonNull wrapper around
// one, matching __Type's recursive "ofType" shape.
type TypeRef struct {
	Kind   TypeKind `json:"kind"`
	Name   string   `json:"name"` // empty for LIST and NON_NULL
	OfType *TypeRef `json:"ofType"`
}

// FullType is one entry of Schema.Types: the complete definition of a
// named type, as opposed to a reference to it.
type FullType struct {
	Kind        TypeKind     `json:"kind"`
	Name        string       `json:"name"`
	Fields      []Field      `json:"fields"`
	InputFields []InputValue `json:"inputFields"`
	EnumValues  []EnumValue  `json:"enumValues"`
	// PossibleTypes lists the member types of a UNION, or the
	// implementations of an INTERFACE; only the member/implementation
	// names are needed here, so it is stored as a name list rather than
	// full TypeRefs. UnmarshalJSON below flattens the introspection
	// result's {name, kind, ...} entries down to just the names.
	PossibleTypes []string `json:"-"`
}

// UnmarshalJSON decodes a standard introspection "possibleTypes" array
// (a list of partial __Type objects) straight into FullType.PossibleTypes.
func (f *FullType) UnmarshalJSON(data []byte) error {
	type alias FullType
	aux := struct {
		*alias
		PossibleTypes []struct {
			Name string `json:"name"`
		} `json:"possibleTypes"`
	}{alias: (*alias)(f)}
	if err := json.Unmarshal(data, &aux); err != nil {
		return err
	}
	for _, pt := range aux.PossibleTypes {
		f.PossibleTypes = append(f.PossibleTypes, pt.Name)
	}
	return nil
}

// Field is one field of an OBJECT or INTERFACE type.
type Field struct {
	Name string  `json:"name"`
	Type TypeRef `json:"type"`
}

// InputValue is one field of an INPUT_OBJECT type, or one argument of a
// Field -- only the former is consumed here, since the IR has no notion
// of callable operations (spec.md §4.4's GraphQL extension translates
// data shapes, not the query/mutation/subscription operations themselves).
type InputValue struct {
	Name string  `json:"name"`
	Type TypeRef `json:"type"`
}

// EnumValue is one member of an ENUM type.
type EnumValue struct {
	Name string `json:"name"`
}

// lookup finds a FullType by name, for resolving a TypeRef's Name field
// down to its definition.
func (s *Schema) lookup(name string) (*FullType, bool) {
	for i := range s.Types {
		if s.Types[i].Name == name {
			return &s.Types[i], true
		}
	}
	return nil, false
}

// isBuiltinScalar reports whether name is one of GraphQL's five built-in
// scalars, which translate directly to IR primitives rather than through
// a FullType lookup.
func isBuiltinScalar(name string) bool {
	switch name {
	case "Int", "Float", "String", "Boolean", "ID":
		return true
	default:
		return false
	}
}
