package openapi

import "github.com/pm2openapi/pm2openapi/sequencedmap"

// Components holds reusable objects referenced from elsewhere in the
// document via $ref.
type Components struct {
	Schemas         *sequencedmap.Map[string, *Schema]         `yaml:"schemas,omitempty" json:"schemas,omitempty"`
	SecuritySchemes *sequencedmap.Map[string, *SecurityScheme] `yaml:"securitySchemes,omitempty" json:"securitySchemes,omitempty"`
}

// IsEmpty reports whether Components has nothing worth emitting.
func (c *Components) IsEmpty() bool {
	return c == nil || (c.Schemas.Len() == 0 && c.SecuritySchemes.Len() == 0)
}
