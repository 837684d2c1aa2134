package graphqlschema

import (
	"strings"
	"testing"
)

const sampleIntrospection = `{
	"data": {
		"__schema": {
			"queryType": {"kind": "OBJECT", "name": "Query"},
			"types": [
				{
					"kind": "OBJECT",
					"name": "Query",
					"fields": [
						{"name": "user", "type": {"kind": "OBJECT", "name": "User"}}
					]
				},
				{
					"kind": "OBJECT",
					"name": "User",
					"fields": [
						{"name": "id", "type": {"kind": "NON_NULL", "ofType": {"kind": "SCALAR", "name": "ID"}}},
						{"name": "name", "type": {"kind": "SCALAR", "name": "String"}}
					]
				},
				{
					"kind": "UNION",
					"name": "SearchResult",
					"possibleTypes": [{"kind": "OBJECT", "name": "User"}]
				}
			]
		}
	}
}`

func TestLoadSchemaFromEnvelope(t *testing.T) {
	schema, err := LoadSchema(strings.NewReader(sampleIntrospection))
	if err != nil {
		t.Fatalf("LoadSchema: %v", err)
	}
	if schema.QueryType == nil || schema.QueryType.Name != "Query" {
		t.Fatalf("QueryType = %+v, want Query", schema.QueryType)
	}
	user, ok := schema.lookup("User")
	if !ok {
		t.Fatalf("lookup(User) failed")
	}
	if len(user.Fields) != 2 || user.Fields[0].Name != "id" || user.Fields[1].Name != "name" {
		t.Fatalf("User.Fields = %+v, want [id name]", user.Fields)
	}
	search, ok := schema.lookup("SearchResult")
	if !ok {
		t.Fatalf("lookup(SearchResult) failed")
	}
	if len(search.PossibleTypes) != 1 || search.PossibleTypes[0] != "User" {
		t.Fatalf("SearchResult.PossibleTypes = %v, want [User]", search.PossibleTypes)
	}
}

func TestLoadSchemaFromBareSchemaObject(t *testing.T) {
	bare := `{"queryType": {"kind": "OBJECT", "name": "Query"}, "types": [{"kind": "OBJECT", "name": "Query", "fields": []}]}`
	schema, err := LoadSchema(strings.NewReader(bare))
	if err != nil {
		t.Fatalf("LoadSchema: %v", err)
	}
	if schema.QueryType == nil || schema.QueryType.Name != "Query" {
		t.Fatalf("QueryType = %+v, want Query", schema.QueryType)
	}
}
