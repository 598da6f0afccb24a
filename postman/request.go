package postman

// Request is a single Postman request definition.
type Request struct {
	Method      string  `json:"method"`
	Description *string `json:"description,omitempty"`
	Auth        *Auth   `json:"auth,omitempty"`
	Header      []Header `json:"header,omitempty"`
	Body        *Body   `json:"body,omitempty"`
	URL         Url     `json:"url"`
}

// Response is a saved example response recorded on a request item.
type Response struct {
	Name                  string    `json:"name,omitempty"`
	Code                  int       `json:"code,omitempty"`
	Header                []Header  `json:"header,omitempty"`
	Body                  string    `json:"body,omitempty"`
	OriginalRequest       *Request  `json:"originalRequest,omitempty"`
	PreviewLanguage       string    `json:"_postman_previewlanguage,omitempty"`
}

// AuthType enumerates the Postman auth kinds this transpiler understands.
type AuthType string

const (
	AuthTypeBasic  AuthType = "basic"
	AuthTypeBearer AuthType = "bearer"
	AuthTypeAPIKey AuthType = "apikey"
	AuthTypeOAuth2 AuthType = "oauth2"
)

// Auth describes a Postman auth block. Postman models auth parameters as
// an array of {key, value} pairs keyed by Type; Param looks a parameter up
// by key in the array that matches Type.
type Auth struct {
	Type   AuthType `json:"type"`
	Basic  []KeyValue `json:"basic,omitempty"`
	Bearer []KeyValue `json:"bearer,omitempty"`
	APIKey []KeyValue `json:"apikey,omitempty"`
	OAuth2 []KeyValue `json:"oauth2,omitempty"`
}

// Param returns the value of the named parameter for this auth block's own
// type's parameter array (e.g. for AuthTypeAPIKey, looks in APIKey).
func (a *Auth) Param(name string) (string, bool) {
	if a == nil {
		return "", false
	}

	var list []KeyValue
	switch a.Type {
	case AuthTypeBasic:
		list = a.Basic
	case AuthTypeBearer:
		list = a.Bearer
	case AuthTypeAPIKey:
		list = a.APIKey
	case AuthTypeOAuth2:
		list = a.OAuth2
	}

	for _, kv := range list {
		if kv.Key == name {
			return kv.Value, true
		}
	}
	return "", false
}
