package jsonschema

import (
	"fmt"
	"io"
	"strconv"

	"github.com/marlowcharite/quicktype/internal/jsonstream"
)

// LoadDocument decodes a JSON Schema document from r into a Document tree,
// via the same order-preserving decoder internal/jsonstream hands the
// inference engine, rather than encoding/json: a schema's "properties" key
// order must survive decoding (it seeds PropertyOrder), and "required"
// being present-but-empty must be distinguished from it being entirely
// absent (RequiredSet), neither of which plain struct-tag unmarshaling can
// express.
func LoadDocument(r io.Reader) (*Document, error) {
	v, err := jsonstream.Decode(r)
	if err != nil {
		return nil, err
	}
	return documentFromValue(v)
}

func documentFromValue(v jsonstream.Value) (*Document, error) {
	if v.Kind != jsonstream.KindObject {
		return nil, fmt.Errorf("jsonschema: expected a JSON object, got kind %v", v.Kind)
	}
	doc := &Document{}
	for _, key := range v.ObjKeys {
		val := v.Obj[key]
		var err error
		switch key {
		case "title":
			doc.Title = stringValue(val)
		case "type":
			doc.Type = stringValue(val)
		case "$ref":
			doc.Ref = stringValue(val)
		case "pattern":
			doc.Pattern = stringValue(val)
		case "minimum":
			f := numberValue(val)
			doc.Minimum = &f
		case "maximum":
			f := numberValue(val)
			doc.Maximum = &f
		case "items":
			doc.Items, err = documentFromValue(val)
		case "properties":
			doc.Properties, doc.PropertyOrder, err = propertiesFromValue(val)
		case "required":
			doc.RequiredSet = true
			for _, e := range val.Arr {
				doc.Required = append(doc.Required, stringValue(e))
			}
		case "additionalProperties":
			doc.AdditionalProperties, err = additionalPropertiesFromValue(val)
		case "enum":
			for _, e := range val.Arr {
				doc.Enum = append(doc.Enum, stringValue(e))
			}
		case "oneOf":
			doc.OneOf, err = documentSlice(val)
		case "anyOf":
			doc.AnyOf, err = documentSlice(val)
		case "allOf":
			doc.AllOf, err = documentSlice(val)
		case "definitions":
			defs, _, derr := propertiesFromValue(val)
			doc.Definitions, err = defs, derr
		}
		if err != nil {
			return nil, fmt.Errorf("jsonschema: decoding %q: %w", key, err)
		}
	}
	return doc, nil
}

func propertiesFromValue(v jsonstream.Value) (map[string]*Document, []string, error) {
	if v.Kind != jsonstream.KindObject {
		return nil, nil, fmt.Errorf("expected a JSON object, got kind %v", v.Kind)
	}
	props := map[string]*Document{}
	for _, key := range v.ObjKeys {
		sub, err := documentFromValue(v.Obj[key])
		if err != nil {
			return nil, nil, err
		}
		props[key] = sub
	}
	return props, v.ObjKeys, nil
}

func documentSlice(v jsonstream.Value) ([]*Document, error) {
	out := make([]*Document, 0, len(v.Arr))
	for _, e := range v.Arr {
		sub, err := documentFromValue(e)
		if err != nil {
			return nil, err
		}
		out = append(out, sub)
	}
	return out, nil
}

func additionalPropertiesFromValue(v jsonstream.Value) (*AdditionalProperties, error) {
	if v.Kind == jsonstream.KindBool {
		b := v.Bool
		return &AdditionalProperties{Bool: &b}, nil
	}
	sub, err := documentFromValue(v)
	if err != nil {
		return nil, err
	}
	return &AdditionalProperties{Schema: sub}, nil
}

func stringValue(v jsonstream.Value) string {
	if v.Kind == jsonstream.KindString {
		return v.Str
	}
	return ""
}

func numberValue(v jsonstream.Value) float64 {
	if v.Kind != jsonstream.KindNumber {
		return 0
	}
	f, _ := strconv.ParseFloat(v.Num.Literal, 64)
	return f
}
