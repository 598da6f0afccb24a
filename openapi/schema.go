package openapi

import "github.com/pm2openapi/pm2openapi/sequencedmap"

// SchemaType is the JSON Schema "type" value. OpenAPI 3.0.3's schema
// object supports a single type per node (3.1's type arrays do not apply
// here).
type SchemaType string

const (
	SchemaTypeObject  SchemaType = "object"
	SchemaTypeArray   SchemaType = "array"
	SchemaTypeString  SchemaType = "string"
	SchemaTypeInteger SchemaType = "integer"
	SchemaTypeNumber  SchemaType = "number"
	SchemaTypeBoolean SchemaType = "boolean"
)

// Schema is the subset of JSON Schema / OpenAPI 3.0.3 "Schema Object" this
// transpiler needs: enough to describe the shape inferred from an example
// payload (internal/schemainfer) or a $ref into components.schemas.
type Schema struct {
	Ref        *string                             `yaml:"$ref,omitempty" json:"$ref,omitempty"`
	Type       SchemaType                          `yaml:"type,omitempty" json:"type,omitempty"`
	Format     string                              `yaml:"format,omitempty" json:"format,omitempty"`
	Nullable   *bool                               `yaml:"nullable,omitempty" json:"nullable,omitempty"`
	Properties *sequencedmap.Map[string, *Schema]  `yaml:"properties,omitempty" json:"properties,omitempty"`
	Items      *Schema                             `yaml:"items,omitempty" json:"items,omitempty"`
	Example    any                                 `yaml:"example,omitempty" json:"example,omitempty"`
}

// NewRef creates a Schema that is a $ref to the named component schema.
func NewRef(name string) *Schema {
	ref := "#/components/schemas/" + name
	return &Schema{Ref: &ref}
}

// IsObject reports whether this schema describes a JSON object.
func (s *Schema) IsObject() bool {
	return s != nil && s.Type == SchemaTypeObject
}

// Signature returns a string that is equal for two schemas with identical
// shape (type, format, property names/types, nullability) and ignores their
// Example values. The transpiler uses this to deduplicate repeated inline
// object schemas into a single named components.schemas entry (see
// SPEC_FULL.md §7 "Named component schemas").
func (s *Schema) Signature() string {
	if s == nil {
		return "null"
	}
	if s.Ref != nil {
		return "ref:" + *s.Ref
	}

	sig := string(s.Type) + "|" + s.Format
	if s.Nullable != nil && *s.Nullable {
		sig += "|nullable"
	}
	if s.Items != nil {
		sig += "|items(" + s.Items.Signature() + ")"
	}
	if s.Properties != nil {
		sig += "|props("
		for name, prop := range s.Properties.All() {
			sig += name + ":" + prop.Signature() + ","
		}
		sig += ")"
	}
	return sig
}
