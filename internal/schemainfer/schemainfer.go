// Package schemainfer implements spec.md §4.2: deriving an OpenAPI schema
// from an example JSON/text payload. It is a pure function — the same
// input always produces the same schema — and never merges schemas across
// multiple examples; that is the transpiler engine's concern.
package schemainfer

import (
	"encoding/json"

	"github.com/pm2openapi/pm2openapi/openapi"
	"github.com/pm2openapi/pm2openapi/postman"
	"github.com/pm2openapi/pm2openapi/sequencedmap"
	"gopkg.in/yaml.v3"
)

// FromRaw infers a schema from a raw request/response body and its
// Postman language hint, per spec.md §4.2.
func FromRaw(body string, language postman.RawLanguage) *openapi.Schema {
	if language == postman.RawLanguageJSON || (language == "" && LooksLikeJSON(body)) {
		if schema, ok := fromJSONText(body); ok {
			return schema
		}
		// Malformed JSON: fall back per spec.md §4.3 "Failure semantics".
	}

	return &openapi.Schema{Type: openapi.SchemaTypeString, Example: body}
}

// FromURLEncoded infers a schema for a urlencoded request body, per
// spec.md §4.2.
func FromURLEncoded(fields []postman.KeyValue) *openapi.Schema {
	props := sequencedmap.New[string, *openapi.Schema]()
	for _, f := range fields {
		if f.Disabled {
			continue
		}
		props.Set(f.Key, &openapi.Schema{Type: openapi.SchemaTypeString})
	}
	return &openapi.Schema{Type: openapi.SchemaTypeObject, Properties: props}
}

// FromFormData infers a schema for a multipart/form-data request body,
// per spec.md §4.2. Entries with Type "file" become {type: string,
// format: binary}.
func FromFormData(fields []postman.FormParam) *openapi.Schema {
	props := sequencedmap.New[string, *openapi.Schema]()
	for _, f := range fields {
		if f.Disabled {
			continue
		}
		if f.Type == "file" {
			props.Set(f.Key, &openapi.Schema{Type: openapi.SchemaTypeString, Format: "binary"})
		} else {
			props.Set(f.Key, &openapi.Schema{Type: openapi.SchemaTypeString})
		}
	}
	return &openapi.Schema{Type: openapi.SchemaTypeObject, Properties: props}
}

// FromGraphQL infers the fixed request body schema for a graphql body,
// per spec.md §4.2, with the literal query string as an example.
func FromGraphQL(body *postman.GraphQLBody) *openapi.Schema {
	props := sequencedmap.New[string, *openapi.Schema]()

	query := ""
	if body != nil {
		query = body.Query
	}
	props.Set("query", &openapi.Schema{Type: openapi.SchemaTypeString})
	props.Set("variables", &openapi.Schema{Type: openapi.SchemaTypeObject})

	return &openapi.Schema{Type: openapi.SchemaTypeObject, Properties: props, Example: query}
}

// FromFile returns the fixed schema for a file-mode body, per spec.md
// §4.3(d).
func FromFile() *openapi.Schema {
	return &openapi.Schema{Type: openapi.SchemaTypeString, Format: "binary"}
}

// LooksLikeJSON reports whether s begins (after whitespace) with '{' or
// '[', the same sniff FromRaw uses to treat an unhinted raw body as JSON.
// Exposed so callers choosing a media type for the same body can agree
// with the schema actually inferred for it.
func LooksLikeJSON(s string) bool {
	for _, r := range s {
		switch r {
		case ' ', '\t', '\n', '\r':
			continue
		case '{', '[':
			return true
		default:
			return false
		}
	}
	return false
}

// fromJSONText infers a schema from a JSON document, walking a *yaml.Node
// tree rather than decoding into map[string]any so that object property
// order matches the source text (spec.md §4.2: "Property order follows
// the first-seen order") — encoding/json's map[string]any would discard
// it. json.Valid gates which texts are accepted as JSON at all, since
// YAML's grammar is a superset of JSON's and would otherwise accept text
// JSON rejects.
func fromJSONText(s string) (*openapi.Schema, bool) {
	if !json.Valid([]byte(s)) {
		return nil, false
	}

	var doc yaml.Node
	if err := yaml.Unmarshal([]byte(s), &doc); err != nil {
		return nil, false
	}
	if len(doc.Content) == 0 {
		return nil, false
	}

	return fromNode(doc.Content[0]), true
}

// fromNode implements the recursive value-to-schema mapping of spec.md
// §4.2 over a parsed YAML/JSON node.
func fromNode(n *yaml.Node) *openapi.Schema {
	switch n.Kind {
	case yaml.MappingNode:
		props := sequencedmap.New[string, *openapi.Schema]()
		for i := 0; i+1 < len(n.Content); i += 2 {
			props.Set(n.Content[i].Value, fromNode(n.Content[i+1]))
		}

		var example any
		_ = n.Decode(&example)

		return &openapi.Schema{Type: openapi.SchemaTypeObject, Properties: props, Example: example}
	case yaml.SequenceNode:
		if len(n.Content) == 0 {
			return &openapi.Schema{Type: openapi.SchemaTypeArray, Items: &openapi.Schema{}}
		}
		return &openapi.Schema{Type: openapi.SchemaTypeArray, Items: fromNode(n.Content[0])}
	case yaml.ScalarNode:
		switch n.Tag {
		case "!!str":
			return &openapi.Schema{Type: openapi.SchemaTypeString}
		case "!!int":
			return &openapi.Schema{Type: openapi.SchemaTypeInteger}
		case "!!float":
			return &openapi.Schema{Type: openapi.SchemaTypeNumber}
		case "!!bool":
			return &openapi.Schema{Type: openapi.SchemaTypeBoolean}
		case "!!null":
			t := true
			return &openapi.Schema{Nullable: &t}
		default:
			return &openapi.Schema{Type: openapi.SchemaTypeString}
		}
	default:
		return &openapi.Schema{Type: openapi.SchemaTypeString}
	}
}
