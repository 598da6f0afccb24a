package transpile

import (
	"strconv"
	"strings"

	"github.com/pm2openapi/pm2openapi/openapi"
	"github.com/pm2openapi/pm2openapi/postman"
)

// translateAuth implements spec.md §4.3(e)'s auth → SecurityScheme mapping.
// Returns nil, "" for an unsupported or absent auth.Type — such requests
// are skipped silently per spec.md §4.3's "Failure semantics".
func translateAuth(auth *postman.Auth) (*openapi.SecurityScheme, string) {
	if auth == nil {
		return nil, ""
	}

	switch auth.Type {
	case postman.AuthTypeBasic:
		return &openapi.SecurityScheme{Type: openapi.SecuritySchemeTypeHTTP, Scheme: "basic"}, "basicAuth"
	case postman.AuthTypeBearer:
		return &openapi.SecurityScheme{Type: openapi.SecuritySchemeTypeHTTP, Scheme: "bearer"}, "bearerAuth"
	case postman.AuthTypeAPIKey:
		name, _ := auth.Param("key")
		in, _ := auth.Param("in")
		loc := openapi.SecuritySchemeInHeader
		if strings.EqualFold(in, "query") {
			loc = openapi.SecuritySchemeInQuery
		}
		return &openapi.SecurityScheme{Type: openapi.SecuritySchemeTypeAPIKey, In: loc, Name: name}, "apiKeyAuth"
	case postman.AuthTypeOAuth2:
		return &openapi.SecurityScheme{Type: openapi.SecuritySchemeTypeOAuth2, Flows: oauthFlows(auth)}, "oauth2"
	default:
		return nil, ""
	}
}

// oauthFlows implements spec.md §4.3(e)'s oauth2 rule: flows are
// populated only for fields present in the Postman auth block. Postman
// models a single flow per auth block via "grant_type"; the matching
// OAuthFlow is populated and the others left nil.
func oauthFlows(auth *postman.Auth) *openapi.OAuthFlows {
	authURL, _ := auth.Param("authUrl")
	tokenURL, _ := auth.Param("accessTokenUrl")
	grantType, _ := auth.Param("grant_type")

	flow := &openapi.OAuthFlow{
		AuthorizationURL: authURL,
		TokenURL:         tokenURL,
		Scopes:           map[string]string{},
	}
	if scope, ok := auth.Param("scope"); ok {
		for _, s := range strings.Fields(scope) {
			flow.Scopes[s] = ""
		}
	}

	flows := &openapi.OAuthFlows{}
	switch grantType {
	case "authorization_code", "":
		flows.AuthorizationCode = flow
	case "client_credentials":
		flows.ClientCredentials = flow
	case "password_credentials", "password":
		flows.Password = flow
	case "implicit":
		flows.Implicit = flow
	default:
		flows.AuthorizationCode = flow
	}
	return flows
}

// registerSecurityScheme implements the dedup-by-structural-equality rule
// of spec.md §4.3(e): an identical scheme reuses the existing name;
// otherwise it is registered under baseName, suffixed "_<N>" on collision
// (named explicitly for apiKeyAuth by spec.md §4.3(e), applied generically
// here so no distinct scheme is ever silently dropped under a shared key).
func (e *engine) registerSecurityScheme(scheme *openapi.SecurityScheme, baseName string) string {
	sig := scheme.Signature()
	if name, ok := e.securitySchemeSig[sig]; ok {
		return name
	}

	name := baseName
	for n := 2; e.securitySchemeNames[name]; n++ {
		name = baseName + "_" + strconv.Itoa(n)
	}

	e.securitySchemeNames[name] = true
	e.securitySchemeSig[sig] = name
	e.ensureSecuritySchemes().Set(name, scheme)
	return name
}

// effectiveAuth resolves spec.md §4.3(e)'s request-overrides-folder rule:
// a request-level auth wins outright over any enclosing folder's auth.
func effectiveAuth(request *postman.Auth, folder *postman.Auth) *postman.Auth {
	if request != nil {
		return request
	}
	return folder
}
