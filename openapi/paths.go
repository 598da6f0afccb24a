package openapi

import (
	"iter"
	"strings"

	"github.com/pm2openapi/pm2openapi/sequencedmap"
)

// Paths is a map of relative endpoint paths to their corresponding PathItem
// objects, in first-insertion order.
type Paths struct {
	*sequencedmap.Map[string, *PathItem]
}

// NewPaths creates a new Paths object with the embedded map initialized.
func NewPaths() *Paths {
	return &Paths{Map: sequencedmap.New[string, *PathItem]()}
}

// Len returns the number of paths. nil safe.
func (p *Paths) Len() int {
	if p == nil || p.Map == nil {
		return 0
	}
	return p.Map.Len()
}

// All returns an iterator over all path items, in first-insertion order. nil safe.
func (p *Paths) All() iter.Seq2[string, *PathItem] {
	if p == nil {
		return func(func(string, *PathItem) bool) {}
	}
	return p.Map.All()
}

// MarshalYAML delegates to the embedded map so Paths serializes as a plain
// mapping node rather than as a struct wrapping one.
func (p *Paths) MarshalYAML() (any, error) {
	if p == nil || p.Map == nil {
		return NewPaths().Map.MarshalYAML()
	}
	return p.Map.MarshalYAML()
}

// MarshalJSON delegates to the embedded map for the same reason.
func (p *Paths) MarshalJSON() ([]byte, error) {
	if p == nil || p.Map == nil {
		return NewPaths().Map.MarshalJSON()
	}
	return p.Map.MarshalJSON()
}

// HTTPMethod is an enum representing the HTTP methods available in the
// OpenAPI specification.
type HTTPMethod string

const (
	HTTPMethodGet     HTTPMethod = "get"
	HTTPMethodPut     HTTPMethod = "put"
	HTTPMethodPost    HTTPMethod = "post"
	HTTPMethodDelete  HTTPMethod = "delete"
	HTTPMethodOptions HTTPMethod = "options"
	HTTPMethodHead    HTTPMethod = "head"
	HTTPMethodPatch   HTTPMethod = "patch"
	HTTPMethodTrace   HTTPMethod = "trace"
)

func (m HTTPMethod) String() string {
	return string(m)
}

// NormalizeMethod lowercases an HTTP method name, per spec.md §4.3(b).
func NormalizeMethod(method string) HTTPMethod {
	return HTTPMethod(strings.ToLower(method))
}

// PathItem represents the available operations for a specific endpoint path,
// keyed by lowercased HTTP method in first-insertion order.
type PathItem struct {
	*sequencedmap.Map[HTTPMethod, *Operation]
}

// NewPathItem creates a new PathItem with the embedded map initialized.
func NewPathItem() *PathItem {
	return &PathItem{Map: sequencedmap.New[HTTPMethod, *Operation]()}
}

// MarshalYAML delegates to the embedded map.
func (p *PathItem) MarshalYAML() (any, error) {
	if p == nil {
		return nil, nil
	}
	return p.Map.MarshalYAML()
}

// MarshalJSON mirrors MarshalYAML's behavior for JSON output.
func (p *PathItem) MarshalJSON() ([]byte, error) {
	if p == nil {
		return []byte("null"), nil
	}
	return p.Map.MarshalJSON()
}
