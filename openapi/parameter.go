package openapi

// ParameterIn is the location of a parameter.
type ParameterIn string

const (
	ParameterInPath   ParameterIn = "path"
	ParameterInQuery  ParameterIn = "query"
	ParameterInHeader ParameterIn = "header"
	ParameterInCookie ParameterIn = "cookie"
)

// Parameter describes a single operation parameter.
type Parameter struct {
	Name        string      `yaml:"name" json:"name"`
	In          ParameterIn `yaml:"in" json:"in"`
	Description *string     `yaml:"description,omitempty" json:"description,omitempty"`
	Required    bool        `yaml:"required" json:"required"`
	Schema      *Schema     `yaml:"schema,omitempty" json:"schema,omitempty"`
	Example     any         `yaml:"example,omitempty" json:"example,omitempty"`
}

// GetName returns the value of the Name field. Returns empty string if not set.
func (p *Parameter) GetName() string {
	if p == nil {
		return ""
	}
	return p.Name
}
