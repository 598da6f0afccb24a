package openapi

import "github.com/pm2openapi/pm2openapi/sequencedmap"

// MediaType provides a schema and examples for the associated media type.
type MediaType struct {
	Schema   *Schema                              `yaml:"schema,omitempty" json:"schema,omitempty"`
	Example  any                                  `yaml:"example,omitempty" json:"example,omitempty"`
	Examples *sequencedmap.Map[string, *Example]  `yaml:"examples,omitempty" json:"examples,omitempty"`
}

// Example is a named example value attached to a MediaType.
type Example struct {
	Value any `yaml:"value,omitempty" json:"value,omitempty"`
}

// RequestBody describes a single request body.
type RequestBody struct {
	Description *string                          `yaml:"description,omitempty" json:"description,omitempty"`
	Content     *sequencedmap.Map[string, *MediaType] `yaml:"content" json:"content"`
	Required    *bool                             `yaml:"required,omitempty" json:"required,omitempty"`
}

// NewRequestBody creates a RequestBody with a single content entry.
func NewRequestBody(contentType string, mt *MediaType) *RequestBody {
	content := sequencedmap.New[string, *MediaType]()
	content.Set(contentType, mt)
	return &RequestBody{Content: content}
}
