package graphqlschema

import (
	"testing"

	"github.com/marlowcharite/quicktype/internal/ir"
)

func namedType(name string) TypeRef { return TypeRef{Kind: Object, Name: name} }

func nonNull(inner TypeRef) TypeRef { return TypeRef{Kind: NonNull, OfType: &inner} }

func list(inner TypeRef) TypeRef { return TypeRef{Kind: List, OfType: &inner} }

func scalar(name string) TypeRef { return TypeRef{Kind: Scalar, Name: name} }

// A Query { user: User } with User { id: ID!, name: String, tags: [String!] }
// -> a class for Query with one property referencing a class for User,
// whose "name" is nullable String and "id" is plain String (NON_NULL).
func TestTranslateObjectWithNullability(t *testing.T) {
	schema := &Schema{
		Types: []FullType{
			{
				Kind: Object,
				Name: "Query",
				Fields: []Field{
					{Name: "user", Type: namedType("User")},
				},
			},
			{
				Kind: Object,
				Name: "User",
				Fields: []Field{
					{Name: "id", Type: nonNull(scalar("ID"))},
					{Name: "name", Type: scalar("String")},
					{Name: "tags", Type: list(nonNull(scalar("String")))},
				},
			},
		},
	}
	schema.QueryType = &TypeRef{Kind: Object, Name: "Query"}

	g := ir.NewGraph()
	tr := NewTranslator(g, schema)
	typ, err := tr.TranslateOperation("Query", schema.QueryType)
	if err != nil {
		t.Fatalf("TranslateOperation: %v", err)
	}
	qcd, err := g.ClassData(typ.Class)
	if err != nil {
		t.Fatalf("ClassData(Query): %v", err)
	}
	userField := qcd.Properties["user"]
	if userField.Kind != ir.KindUnion {
		t.Fatalf("user.Kind = %v, want Union (nullable)", userField.Kind)
	}
	sole, ok := ir.NullableFrom(userField.Union)
	if !ok || sole.Kind != ir.KindClass {
		t.Fatalf("user: NullableFrom = (%v, %v), want (Class, true)", sole.Kind, ok)
	}
	ucd, err := g.ClassData(sole.Class)
	if err != nil {
		t.Fatalf("ClassData(User): %v", err)
	}
	if got := ucd.Properties["id"].Kind; got != ir.KindString {
		t.Fatalf("id.Kind = %v, want String (NON_NULL unwrapped)", got)
	}
	nameField := ucd.Properties["name"]
	if nameField.Kind != ir.KindUnion {
		t.Fatalf("name.Kind = %v, want Union (nullable)", nameField.Kind)
	}
	tagsField := ucd.Properties["tags"]
	tagsSole, ok := ir.NullableFrom(tagsField.Union)
	if !ok || tagsSole.Kind != ir.KindArray || tagsSole.Elem.Kind != ir.KindString {
		t.Fatalf("tags: NullableFrom = (%v, %v), want (Array(String), true)", tagsSole.Kind, ok)
	}
}

// A self-referential type (Comment { replies: [Comment!] }) must terminate
// and have its "replies" element resolve back to the same class.
func TestTranslateSelfReferentialObject(t *testing.T) {
	schema := &Schema{
		Types: []FullType{
			{
				Kind: Object,
				Name: "Comment",
				Fields: []Field{
					{Name: "body", Type: scalar("String")},
					{Name: "replies", Type: list(nonNull(namedType("Comment")))},
				},
			},
		},
	}
	root := &TypeRef{Kind: Object, Name: "Comment"}

	g := ir.NewGraph()
	tr := NewTranslator(g, schema)
	typ, err := tr.TranslateOperation("Comment", root)
	if err != nil {
		t.Fatalf("TranslateOperation: %v", err)
	}
	cd, err := g.ClassData(typ.Class)
	if err != nil {
		t.Fatalf("ClassData: %v", err)
	}
	replies := cd.Properties["replies"]
	sole, ok := ir.NullableFrom(replies.Union)
	if !ok || sole.Kind != ir.KindArray {
		t.Fatalf("replies: NullableFrom = (%v, %v), want (Array, true)", sole.Kind, ok)
	}
	elemLive, err := g.FollowIndex(sole.Elem.Class)
	if err != nil {
		t.Fatalf("FollowIndex: %v", err)
	}
	selfLive, err := g.FollowIndex(typ.Class)
	if err != nil {
		t.Fatalf("FollowIndex(self): %v", err)
	}
	if elemLive != selfLive {
		t.Fatalf("replies element does not resolve back to Comment: %d != %d", elemLive, selfLive)
	}
}

// An ENUM type translates to Enum with its values preserved.
func TestTranslateEnum(t *testing.T) {
	schema := &Schema{
		Types: []FullType{
			{
				Kind: Object,
				Name: "Query",
				Fields: []Field{
					{Name: "status", Type: nonNull(namedType("Status"))},
				},
			},
			{
				Kind: Enum,
				Name: "Status",
				EnumValues: []EnumValue{
					{Name: "ACTIVE"}, {Name: "INACTIVE"},
				},
			},
		},
	}
	root := &TypeRef{Kind: Object, Name: "Query"}

	g := ir.NewGraph()
	tr := NewTranslator(g, schema)
	typ, err := tr.TranslateOperation("Query", root)
	if err != nil {
		t.Fatalf("TranslateOperation: %v", err)
	}
	cd, err := g.ClassData(typ.Class)
	if err != nil {
		t.Fatalf("ClassData: %v", err)
	}
	status := cd.Properties["status"]
	if status.Kind != ir.KindEnum {
		t.Fatalf("status.Kind = %v, want Enum", status.Kind)
	}
	values := status.EnumData.SortedValues()
	if len(values) != 2 || values[0] != "ACTIVE" || values[1] != "INACTIVE" {
		t.Fatalf("status values = %v, want [ACTIVE INACTIVE]", values)
	}
}
