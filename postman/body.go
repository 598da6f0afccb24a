package postman

// BodyMode enumerates the supported Postman request body modes.
type BodyMode string

const (
	BodyModeRaw        BodyMode = "raw"
	BodyModeURLEncoded BodyMode = "urlencoded"
	BodyModeFormData   BodyMode = "formdata"
	BodyModeFile       BodyMode = "file"
	BodyModeGraphQL    BodyMode = "graphql"
)

// RawLanguage is the optional language hint Postman attaches to a raw body.
type RawLanguage string

const (
	RawLanguageJSON       RawLanguage = "json"
	RawLanguageXML        RawLanguage = "xml"
	RawLanguageText       RawLanguage = "text"
	RawLanguageHTML       RawLanguage = "html"
	RawLanguageJavaScript RawLanguage = "javascript"
)

// FormParam is a single multipart/form-data field.
type FormParam struct {
	Key      string `json:"key"`
	Value    string `json:"value,omitempty"`
	Type     string `json:"type,omitempty"` // "text" or "file"
	Disabled bool   `json:"disabled,omitempty"`
}

// GraphQLBody is a GraphQL request payload.
type GraphQLBody struct {
	Query     string `json:"query,omitempty"`
	Variables string `json:"variables,omitempty"`
}

// rawOptions carries the optional language hint for a raw body, nested the
// way Postman nests it (under body.options.raw.language).
type rawOptions struct {
	Raw struct {
		Language RawLanguage `json:"language,omitempty"`
	} `json:"raw"`
}

// FileRef is a reference to a file on disk used by BodyModeFile.
type FileRef struct {
	Src string `json:"src,omitempty"`
}

// Body is a tagged Postman request/response body. Exactly the field
// matching Mode is meaningfully populated.
type Body struct {
	Mode       BodyMode     `json:"mode"`
	Raw        string       `json:"raw,omitempty"`
	URLEncoded []KeyValue   `json:"urlencoded,omitempty"`
	FormData   []FormParam  `json:"formdata,omitempty"`
	File       *FileRef     `json:"file,omitempty"`
	GraphQL    *GraphQLBody `json:"graphql,omitempty"`
	Options    *rawOptions  `json:"options,omitempty"`
}

// Language returns the raw-body language hint, if any.
func (b *Body) Language() RawLanguage {
	if b == nil || b.Options == nil {
		return ""
	}
	return b.Options.Raw.Language
}
