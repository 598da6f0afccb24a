// Package openapi provides a structural representation of an OpenAPI
// 3.0.3 document, modeled after the teacher's hand-rolled approach: plain
// Go structs, pointer optionals, nil-safe getters, and sequencedmap for
// every object that is conceptually a map, so that insertion order survives
// YAML/JSON serialization.
package openapi

// OpenApi is the root OpenAPI document.
type OpenApi struct {
	OpenAPI    string      `yaml:"openapi" json:"openapi"`
	Info       *Info       `yaml:"info" json:"info"`
	Servers    []*Server   `yaml:"servers,omitempty" json:"servers,omitempty"`
	Paths      *Paths      `yaml:"paths" json:"paths"`
	Components *Components `yaml:"components,omitempty" json:"components,omitempty"`
	Tags       []*Tag      `yaml:"tags,omitempty" json:"tags,omitempty"`
}

// New creates an empty OpenAPI document with initialized maps, ready to be
// populated by the transpiler engine.
func New() *OpenApi {
	return &OpenApi{
		OpenAPI: "3.0.3",
		Info:    &Info{},
		Paths:   NewPaths(),
	}
}
