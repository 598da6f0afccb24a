// Package pm2openapi converts a Postman Collection v2.1.0 document into an
// OpenAPI 3.0.3 document. This is the public library API; the core
// transpiler algorithm lives in internal/transpile and is exposed here
// together with the adapters spec.md §1 calls out as external
// collaborators: JSON parsing of the input and serialization of the
// output.
package pm2openapi

import (
	"encoding/json"
	"errors"
	"fmt"

	pmerrors "github.com/pm2openapi/pm2openapi/errors"
	"github.com/pm2openapi/pm2openapi/internal/transpile"
	"github.com/pm2openapi/pm2openapi/openapi"
	"github.com/pm2openapi/pm2openapi/postman"
)

// Kind discriminates the three error categories of spec.md §6.
type Kind string

const (
	KindParse          Kind = "parse"
	KindSchemaMismatch Kind = "schema-mismatch"
	KindSerialize      Kind = "serialize"
)

// Error is this package's error type, built directly on errors/errors.go's
// const-error idiom: newError turns the Kind and message into a
// pmerrors.Error and, when there's a cause, calls its Wrap method, so
// Error()/Unwrap() are the const-error's own formatting and cause-chain
// rather than a reimplementation of them here.
type Error struct {
	Kind    Kind
	Message string
	wrapped error
}

func (e *Error) Error() string {
	return e.wrapped.Error()
}

// Unwrap exposes the wrapped cause, if any, to errors.Is/errors.As.
func (e *Error) Unwrap() error {
	return errors.Unwrap(e.wrapped)
}

func newError(kind Kind, message string, cause error) *Error {
	base := pmerrors.Error(fmt.Sprintf("%s: %s", kind, message))

	var wrapped error = base
	if cause != nil {
		wrapped = base.Wrap(cause)
	}

	return &Error{Kind: kind, Message: message, wrapped: wrapped}
}

// Transpile converts an already-decoded Postman collection tree into an
// OpenAPI document, per spec.md §6's "already-decoded tree" input form.
func Transpile(collection *postman.Collection) (*openapi.OpenApi, error) {
	if collection == nil {
		return nil, newError(KindSchemaMismatch, "collection is nil", nil)
	}
	return transpile.Transpile(collection), nil
}

// TranspileJSON parses text as a Postman v2.1.0 collection document and
// transpiles it, per spec.md §6's "JSON text that the caller asks to be
// parsed first" input form. Errors are classified per spec.md §6: malformed
// JSON is a "parse" error; a missing or wrongly-shaped top-level "info" or
// "item" field is a "schema-mismatch" error.
func TranspileJSON(data []byte) (*openapi.OpenApi, error) {
	var probe map[string]json.RawMessage
	if err := json.Unmarshal(data, &probe); err != nil {
		return nil, newError(KindParse, "input is not a valid JSON object", err)
	}

	infoRaw, hasInfo := probe["info"]
	if !hasInfo || !looksLikeJSONObject(infoRaw) {
		return nil, newError(KindSchemaMismatch, `missing or malformed top-level "info" field`, nil)
	}

	itemRaw, hasItem := probe["item"]
	if !hasItem || !looksLikeJSONArray(itemRaw) {
		return nil, newError(KindSchemaMismatch, `missing or malformed top-level "item" field`, nil)
	}

	var collection postman.Collection
	if err := json.Unmarshal(data, &collection); err != nil {
		return nil, newError(KindParse, "failed to decode Postman collection", err)
	}

	return transpile.Transpile(&collection), nil
}

// ToYAML serializes an OpenAPI document to YAML per spec.md §6 (block
// style, 2-space indentation, model field order preserved).
func ToYAML(doc *openapi.OpenApi) ([]byte, error) {
	out, err := doc.MarshalYAML()
	if err != nil {
		return nil, newError(KindSerialize, "failed to serialize OpenAPI document to YAML", err)
	}
	return out, nil
}

// ToJSON serializes an OpenAPI document to JSON per spec.md §6 (2-space
// indentation, model field order preserved).
func ToJSON(doc *openapi.OpenApi) ([]byte, error) {
	out, err := doc.MarshalJSON()
	if err != nil {
		return nil, newError(KindSerialize, "failed to serialize OpenAPI document to JSON", err)
	}
	return out, nil
}

func looksLikeJSONObject(raw json.RawMessage) bool {
	return firstNonSpace(raw) == '{'
}

func looksLikeJSONArray(raw json.RawMessage) bool {
	return firstNonSpace(raw) == '['
}

func firstNonSpace(raw json.RawMessage) byte {
	for _, b := range raw {
		switch b {
		case ' ', '\t', '\n', '\r':
			continue
		default:
			return b
		}
	}
	return 0
}
