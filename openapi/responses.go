package openapi

import (
	"iter"

	"github.com/pm2openapi/pm2openapi/sequencedmap"
)

// Responses is a map of HTTP status codes (as strings, e.g. "200") to
// Response objects, in first-insertion order.
type Responses struct {
	*sequencedmap.Map[string, *Response]
}

// NewResponses creates a new Responses object with the embedded map initialized.
func NewResponses() *Responses {
	return &Responses{Map: sequencedmap.New[string, *Response]()}
}

// All returns an iterator over all responses, in first-insertion order. nil safe.
func (r *Responses) All() iter.Seq2[string, *Response] {
	if r == nil {
		return func(func(string, *Response) bool) {}
	}
	return r.Map.All()
}

// MarshalYAML delegates to the embedded map.
func (r *Responses) MarshalYAML() (any, error) {
	if r == nil || r.Map == nil {
		return NewResponses().Map.MarshalYAML()
	}
	return r.Map.MarshalYAML()
}

// MarshalJSON delegates to the embedded map.
func (r *Responses) MarshalJSON() ([]byte, error) {
	if r == nil || r.Map == nil {
		return NewResponses().Map.MarshalJSON()
	}
	return r.Map.MarshalJSON()
}

// Response describes a single response from an API operation.
type Response struct {
	Description string                                 `yaml:"description" json:"description"`
	Headers     *sequencedmap.Map[string, *ResponseHeader] `yaml:"headers,omitempty" json:"headers,omitempty"`
	Content     *sequencedmap.Map[string, *MediaType]      `yaml:"content,omitempty" json:"content,omitempty"`
}

// DefaultDescriptionForStatus returns the conventional description for a
// status code when the example provided none, per spec.md §4.3(f).
func DefaultDescriptionForStatus(code string) string {
	if len(code) == 0 {
		return "Successful response"
	}
	switch code[0] {
	case '2':
		return "OK"
	case '3':
		return "Redirection"
	case '4':
		return "Client Error"
	case '5':
		return "Server Error"
	default:
		return "Response"
	}
}
