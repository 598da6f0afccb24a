package postman

import (
	"encoding/json"
	"strings"
)

// Url is a Postman URL value, which the v2.1.0 dialect allows to be either
// a bare string or a structured object. Raw is populated when the source
// was a string, or when a structured source carried its own "raw" field;
// it is not rebuilt from the structured fields. Protocol/Host/Path/Query/
// Variable are populated only when the source was structured; for a bare
// string, internal/urlnorm parses Raw into a structured copy and leaves
// this value unchanged.
type Url struct {
	Raw      string         `json:"raw,omitempty"`
	Protocol string         `json:"protocol,omitempty"`
	Host     []string       `json:"host,omitempty"`
	Path     []string       `json:"path,omitempty"`
	Query    []KeyValue     `json:"query,omitempty"`
	Variable []URLVariable  `json:"variable,omitempty"`
}

// URLVariable is a path-variable declaration carried on url.variable[],
// used to enrich a discovered path parameter with description/example.
type URLVariable struct {
	Key         string  `json:"key"`
	Value       *string `json:"value,omitempty"`
	Description *string `json:"description,omitempty"`
}

// UnmarshalJSON decodes a JSON string as the bare raw form and any other
// JSON value as the structured object shape; an error from either decode
// is returned as is.
func (u *Url) UnmarshalJSON(data []byte) error {
	trimmed := strings.TrimSpace(string(data))
	if len(trimmed) > 0 && trimmed[0] == '"' {
		var raw string
		if err := json.Unmarshal(data, &raw); err != nil {
			return err
		}
		u.Raw = raw
		return nil
	}

	type structured struct {
		Raw      string        `json:"raw,omitempty"`
		Protocol string        `json:"protocol,omitempty"`
		Host     []string      `json:"host,omitempty"`
		Path     []string      `json:"path,omitempty"`
		Query    []KeyValue    `json:"query,omitempty"`
		Variable []URLVariable `json:"variable,omitempty"`
	}

	var s structured
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}

	u.Raw = s.Raw
	u.Protocol = s.Protocol
	u.Host = s.Host
	u.Path = s.Path
	u.Query = s.Query
	u.Variable = s.Variable
	return nil
}

// IsStructured reports whether the URL carries a structured host/path form,
// as opposed to only a raw string.
func (u *Url) IsStructured() bool {
	return u != nil && (len(u.Host) > 0 || len(u.Path) > 0)
}
