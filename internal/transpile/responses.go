package transpile

import (
	"strconv"
	"strings"

	"github.com/pm2openapi/pm2openapi/internal/schemainfer"
	"github.com/pm2openapi/pm2openapi/openapi"
	"github.com/pm2openapi/pm2openapi/postman"
	"github.com/pm2openapi/pm2openapi/sequencedmap"
)

// buildResponses implements spec.md §4.3(f) for a request item seen for
// the first time at its (template_path, method): a single default "200"
// when there are no saved examples, otherwise one merged Response entry
// per distinct status code.
func (e *engine) buildResponses(operationID string, examples []postman.Response) *openapi.Responses {
	responses := openapi.NewResponses()
	if len(examples) == 0 {
		responses.Set("200", &openapi.Response{Description: "Successful response"})
		return responses
	}
	e.addResponses(responses, operationID, examples)
	return responses
}

// mergeResponses implements the merge half of spec.md §4.3(b): a second
// request item sharing (template_path, method) with an already-assembled
// operation contributes its example responses into the same Responses map.
func (e *engine) mergeResponses(op *openapi.Operation, examples []postman.Response, operationID string) {
	if len(examples) == 0 {
		return
	}
	if op.Responses == nil {
		op.Responses = openapi.NewResponses()
	}
	e.addResponses(op.Responses, operationID, examples)
}

// addResponses implements spec.md §4.3(f)'s merge rule proper: responses
// are keyed by decimal status code; repeats of the same code merge into
// the same Response, with one MediaType per distinct content-type, and a
// recurring (code, content-type) pair stores only its example value under
// examples.<name>; the first MediaType's schema and example are kept.
func (e *engine) addResponses(responses *openapi.Responses, operationID string, examples []postman.Response) {
	for _, ex := range examples {
		code := strconv.Itoa(ex.Code)
		if ex.Code == 0 {
			code = "200"
		}

		resp, exists := responses.Get(code)
		if !exists {
			desc := ex.Name
			if desc == "" {
				desc = openapi.DefaultDescriptionForStatus(code)
			}
			resp = &openapi.Response{Description: desc}
			responses.Set(code, resp)
		}

		for _, h := range ex.Header {
			if h.Key == "" {
				continue
			}
			if resp.Headers == nil {
				resp.Headers = sequencedmap.New[string, *openapi.ResponseHeader]()
			}
			if resp.Headers.Has(h.Key) {
				continue
			}
			rh := &openapi.ResponseHeader{Description: h.Description}
			if h.Value != "" {
				rh.Example = h.Value
			}
			resp.Headers.Set(h.Key, rh)
		}

		contentType := contentTypeForResponse(ex)
		schema := schemainfer.FromRaw(ex.Body, postman.RawLanguage(ex.PreviewLanguage))

		if resp.Content == nil {
			resp.Content = sequencedmap.New[string, *openapi.MediaType]()
		}

		mt, hasMT := resp.Content.Get(contentType)
		if !hasMT {
			mt = &openapi.MediaType{Schema: schema, Example: schema.Example}
			resp.Content.Set(contentType, mt)
			e.trackSchema(&mt.Schema, operationID+" response "+code)
			continue
		}

		// Same (code, content-type) recurring: the first MediaType's
		// schema/example stays; this one is filed under examples.<name>.
		if mt.Examples == nil {
			mt.Examples = sequencedmap.New[string, *openapi.Example]()
		}
		name := ex.Name
		if name == "" {
			name = "example"
		}
		key := name
		for n := 2; mt.Examples.Has(key); n++ {
			key = name + "_" + strconv.Itoa(n)
		}
		mt.Examples.Set(key, &openapi.Example{Value: schema.Example})
	}
}

// contentTypeForResponse implements the content-type half of spec.md
// §4.3(f): prefer an explicit Content-Type response header, falling back
// to the same language-hint table request bodies use.
func contentTypeForResponse(ex postman.Response) string {
	for _, h := range ex.Header {
		if strings.EqualFold(h.Key, "content-type") {
			ct := h.Value
			if idx := strings.Index(ct, ";"); idx >= 0 {
				ct = ct[:idx]
			}
			return strings.TrimSpace(ct)
		}
	}
	return rawMediaType(postman.RawLanguage(ex.PreviewLanguage), ex.Body)
}
