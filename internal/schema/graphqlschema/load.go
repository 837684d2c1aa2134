package graphqlschema

import (
	"encoding/json"
	"io"
)

// introspectionResponse is the envelope a GraphQL server's introspection
// query actually returns: {"data": {"__schema": {...}}}.
type introspectionResponse struct {
	Data struct {
		Schema Schema `json:"__schema"`
	} `json:"data"`
}

// LoadSchema reads a GraphQL introspection result from r, accepting either
// a server's full {"data":{"__schema":...}} envelope or a bare __schema
// object (as produced by stripping the envelope beforehand).
func LoadSchema(r io.Reader) (*Schema, error) {
	raw, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}

	var env introspectionResponse
	if err := json.Unmarshal(raw, &env); err == nil && len(env.Data.Schema.Types) > 0 {
		return &env.Data.Schema, nil
	}

	var schema Schema
	if err := json.Unmarshal(raw, &schema); err != nil {
		return nil, err
	}
	return &schema, nil
}
