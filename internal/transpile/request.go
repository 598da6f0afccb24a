package transpile

import (
	"strings"

	"github.com/pm2openapi/pm2openapi/internal/schemainfer"
	"github.com/pm2openapi/pm2openapi/internal/urlnorm"
	"github.com/pm2openapi/pm2openapi/openapi"
	"github.com/pm2openapi/pm2openapi/postman"
)

// headerIgnoreSet implements spec.md §4.3(c)'s ignore list for header
// parameters: these are already represented elsewhere in the OpenAPI
// document (content negotiation, auth, transport) and are never emitted
// as a Parameter.
var headerIgnoreSet = map[string]bool{
	"content-type":   true,
	"accept":         true,
	"authorization":  true,
	"cookie":         true,
	"host":           true,
	"content-length": true,
	"user-agent":     true,
}

// assembleRequest implements spec.md §4.3's "Request assembly" in full
// for one Postman request item.
func (e *engine) assembleRequest(item *postman.RequestItem, ctx *folderContext) {
	req := &item.Request

	norm := urlnorm.Normalize(req.URL)
	e.registerServer(norm.ServerURL)

	method := openapi.NormalizeMethod(req.Method)
	pathKey := norm.TemplatePath

	pathItem, ok := e.doc.Paths.Get(pathKey)
	if !ok {
		pathItem = openapi.NewPathItem()
		e.doc.Paths.Set(pathKey, pathItem)
	}

	if op, exists := pathItem.Get(method); exists {
		// spec.md §4.3(b): two requests sharing (template_path, method)
		// collapse into one operation; only their responses are merged.
		// The second item's own operationId is still reserved so a later,
		// genuinely distinct operation can never collide with it.
		e.reserveOperationID(item.Name, string(method), pathKey)
		e.mergeResponses(op, item.Response, op.OperationID)
		return
	}

	op := &openapi.Operation{}
	op.OperationID = e.operationID(item.Name, string(method), pathKey)

	if item.Name != "" {
		summary := item.Name
		op.Summary = &summary
	}
	if req.Description != nil && *req.Description != "" {
		op.Description = e.substituteVariablesPtr(req.Description)
	}
	if ctx != nil && ctx.tagName != "" {
		op.Tags = []string{ctx.tagName}
	}

	op.Parameters = e.buildParameters(norm, req.Header)

	if req.Body != nil {
		op.RequestBody = e.buildRequestBody(op.OperationID, req.Body)
	}

	auth := effectiveAuth(req.Auth, folderAuth(ctx))
	if scheme, baseName := translateAuth(auth); scheme != nil {
		name := e.registerSecurityScheme(scheme, baseName)
		op.Security = []*openapi.SecurityRequirement{{Name: name, Scopes: []string{}}}
	}

	op.Responses = e.buildResponses(op.OperationID, item.Response)

	pathItem.Set(method, op)
}

func folderAuth(ctx *folderContext) *postman.Auth {
	if ctx == nil {
		return nil
	}
	return ctx.auth
}

// buildParameters implements spec.md §4.3(c): path params first (discovery
// order), then query params (source order), then non-ignored, non-disabled
// header params (source order).
func (e *engine) buildParameters(norm urlnorm.Result, headers []postman.Header) []*openapi.Parameter {
	var params []*openapi.Parameter

	for _, p := range norm.PathParams {
		param := &openapi.Parameter{
			Name:     p.Name,
			In:       openapi.ParameterInPath,
			Required: true,
			Schema:   &openapi.Schema{Type: openapi.SchemaTypeString},
		}
		param.Description = p.Description
		if p.Example != nil {
			param.Example = *p.Example
		}
		params = append(params, param)
	}

	for _, q := range norm.QueryParams {
		param := &openapi.Parameter{
			Name:   q.Name,
			In:     openapi.ParameterInQuery,
			Schema: &openapi.Schema{Type: openapi.SchemaTypeString},
		}
		if q.Example != nil {
			param.Example = *q.Example
		}
		params = append(params, param)
	}

	for _, h := range headers {
		if h.Disabled {
			continue
		}
		if headerIgnoreSet[strings.ToLower(h.Key)] {
			continue
		}
		param := &openapi.Parameter{
			Name:     h.Key,
			In:       openapi.ParameterInHeader,
			Required: true,
			Schema:   &openapi.Schema{Type: openapi.SchemaTypeString},
			Example:  h.Value,
		}
		param.Description = h.Description
		params = append(params, param)
	}

	return params
}

// buildRequestBody implements spec.md §4.3(d)'s body-mode dispatch.
func (e *engine) buildRequestBody(operationID string, body *postman.Body) *openapi.RequestBody {
	var mediaType string
	var schema *openapi.Schema

	switch body.Mode {
	case postman.BodyModeRaw:
		mediaType = rawMediaType(body.Language(), body.Raw)
		schema = schemainfer.FromRaw(body.Raw, body.Language())
	case postman.BodyModeURLEncoded:
		mediaType = "application/x-www-form-urlencoded"
		schema = schemainfer.FromURLEncoded(body.URLEncoded)
	case postman.BodyModeFormData:
		mediaType = "multipart/form-data"
		schema = schemainfer.FromFormData(body.FormData)
	case postman.BodyModeFile:
		mediaType = "application/octet-stream"
		schema = schemainfer.FromFile()
	case postman.BodyModeGraphQL:
		mediaType = "application/json"
		schema = schemainfer.FromGraphQL(body.GraphQL)
	default:
		// Unknown body mode: skipped with no effect, per spec.md §4.3
		// "Failure semantics".
		return nil
	}

	mt := &openapi.MediaType{Schema: schema, Example: schema.Example}
	e.trackSchema(&mt.Schema, operationID+" request")

	return openapi.NewRequestBody(mediaType, mt)
}

// rawMediaType implements spec.md §4.3(d)'s raw-body language-hint table.
// An unhinted body that sniffs as JSON (the same sniff schemainfer.FromRaw
// uses to decide how to infer its schema) is treated as "json" too, so the
// media type key always matches the schema actually produced for it.
func rawMediaType(lang postman.RawLanguage, raw string) string {
	if lang == "" && schemainfer.LooksLikeJSON(raw) {
		lang = postman.RawLanguageJSON
	}

	switch lang {
	case postman.RawLanguageJSON:
		return "application/json"
	case postman.RawLanguageXML:
		return "application/xml"
	case postman.RawLanguageHTML:
		return "text/html"
	case postman.RawLanguageJavaScript:
		return "application/javascript"
	default:
		return "text/plain"
	}
}
