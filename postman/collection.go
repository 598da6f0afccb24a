// Package postman provides a structural representation of a Postman
// Collection v2.1.0 document (https://schema.getpostman.com/json/collection/v2.1.0/collection.json).
//
// Url, which the Postman dialect allows to be either a bare string or a
// structured object, decodes a JSON string as its raw form and any other
// value as the structured form; Item is told apart as folder or request by
// the presence of a "request" key. Unknown fields are ignored. A known
// field whose JSON type does not match its modeled Go type (for example an
// object where a string is expected) is not tolerated: decoding of the
// whole document fails with an error.
package postman

import "encoding/json"

// Collection is the root of a Postman v2.1.0 document.
type Collection struct {
	Info     Info     `json:"info"`
	Item     []Item   `json:"item"`
	Variable []KeyValue `json:"variable,omitempty"`
	Auth     *Auth    `json:"auth,omitempty"`
}

// Info carries the collection's identifying metadata.
type Info struct {
	Name        string  `json:"name"`
	Description *string `json:"description,omitempty"`
	Version     *string `json:"version,omitempty"`
	Schema      string  `json:"schema,omitempty"`
}

// KeyValue is a generic {key, value} pair used for variables, query
// parameters, and form fields.
type KeyValue struct {
	Key         string  `json:"key"`
	Value       string  `json:"value"`
	Disabled    bool    `json:"disabled,omitempty"`
	Description *string `json:"description,omitempty"`
	Type        *string `json:"type,omitempty"`
}

// Header is a request or response header entry.
type Header struct {
	Key         string  `json:"key"`
	Value       string  `json:"value"`
	Disabled    bool    `json:"disabled,omitempty"`
	Description *string `json:"description,omitempty"`
}

// Item is either a folder (has nested Item[]) or a request item (has
// Request and optional Response[]). Exactly one of Folder/Request is set
// after decoding.
type Item struct {
	Folder  *Folder
	Request *RequestItem
}

// Folder is a Postman collection folder.
type Folder struct {
	Name        string     `json:"name"`
	Description *string    `json:"description,omitempty"`
	Auth        *Auth      `json:"auth,omitempty"`
	Variable    []KeyValue `json:"variable,omitempty"`
	Item        []Item     `json:"item"`
}

// RequestItem is a single saved request, plus any example responses.
type RequestItem struct {
	Name     string     `json:"name"`
	Request  Request    `json:"request"`
	Response []Response `json:"response,omitempty"`
}

// UnmarshalJSON discriminates an Item between folder and request shape by
// the presence of a "request" field, per the Postman v2.1.0 dialect where a
// collection tree node is polymorphic.
func (it *Item) UnmarshalJSON(data []byte) error {
	var probe struct {
		Request json.RawMessage `json:"request"`
	}
	if err := json.Unmarshal(data, &probe); err != nil {
		return err
	}

	if probe.Request != nil {
		var r RequestItem
		if err := json.Unmarshal(data, &r); err != nil {
			return err
		}
		it.Request = &r
		return nil
	}

	var f Folder
	if err := json.Unmarshal(data, &f); err != nil {
		return err
	}
	it.Folder = &f
	return nil
}

// IsFolder reports whether this item is a folder. nil safe.
func (it *Item) IsFolder() bool {
	return it != nil && it.Folder != nil
}
