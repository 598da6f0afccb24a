package openapi

import (
	"bytes"
	"encoding/json"

	"gopkg.in/yaml.v3"
)

// MarshalYAML serializes the document to YAML using block style with
// 2-space indentation, preserving the field order captured by each
// model's own MarshalYAML/struct-tag order, per spec.md §6.
func (o *OpenApi) MarshalYAML() ([]byte, error) {
	var buf bytes.Buffer
	enc := yaml.NewEncoder(&buf)
	enc.SetIndent(2)
	if err := enc.Encode(o); err != nil {
		return nil, err
	}
	if err := enc.Close(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// MarshalJSON serializes the document to JSON with 2-space indentation,
// per spec.md §6.
func (o *OpenApi) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetIndent("", "  ")
	enc.SetEscapeHTML(false)
	if err := enc.Encode(openApiJSON(*o)); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// openApiJSON is a plain alias to avoid infinite recursion through
// (*OpenApi).MarshalJSON when delegating to encoding/json for the default
// struct-tag-driven encoding.
type openApiJSON OpenApi

func marshalJSONMap(v any) ([]byte, error) {
	return json.Marshal(v)
}
