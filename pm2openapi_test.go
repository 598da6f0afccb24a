package pm2openapi_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/pm2openapi/pm2openapi"
	"github.com/pm2openapi/pm2openapi/openapi"
)

func TestTranspileJSON_MinimalCollection_S1(t *testing.T) {
	t.Parallel()

	doc, err := pm2openapi.TranspileJSON([]byte(`{
		"info": {"name": "Demo"},
		"item": [
			{"name": "List Users", "request": {"method": "GET", "url": "https://example.com/users"}}
		]
	}`))
	require.NoError(t, err)

	require.Len(t, doc.Servers, 1)
	require.Equal(t, "https://example.com", doc.Servers[0].URL)

	pathItem, ok := doc.Paths.Get("/users")
	require.True(t, ok)

	op, ok := pathItem.Get("get")
	require.True(t, ok)

	resp, ok := op.Responses.Get("200")
	require.True(t, ok)
	require.Equal(t, "Successful response", resp.Description)
}

func TestTranspileJSON_MergedResponses_S2(t *testing.T) {
	t.Parallel()

	doc, err := pm2openapi.TranspileJSON([]byte(`{
		"info": {"name": "Demo"},
		"item": [
			{"name": "Folder", "item": [
				{"name": "Get User", "request": {"method": "GET", "url": {"host":["example","com"],"path":["u", ":id"]}},
				 "response": [{"name":"OK","code":200,"body":"{}"}]},
				{"name": "Get User Missing", "request": {"method": "GET", "url": {"host":["example","com"],"path":["u", ":id"]}},
				 "response": [{"name":"Not Found","code":404,"body":"{}"}]}
			]}
		]
	}`))
	require.NoError(t, err)

	require.Equal(t, 1, doc.Paths.Len())

	pathItem, ok := doc.Paths.Get("/u/{id}")
	require.True(t, ok)
	require.Equal(t, 1, pathItem.Len())

	op, ok := pathItem.Get("get")
	require.True(t, ok)
	require.Equal(t, 2, op.Responses.Len())

	_, ok = op.Responses.Get("200")
	require.True(t, ok)
	_, ok = op.Responses.Get("404")
	require.True(t, ok)

	require.Len(t, op.Parameters, 1)
	require.Equal(t, "id", op.Parameters[0].Name)
}

func TestTranspileJSON_RawJSONBody_S3(t *testing.T) {
	t.Parallel()

	doc, err := pm2openapi.TranspileJSON([]byte(`{
		"info": {"name": "Demo"},
		"item": [
			{"name": "Login", "request": {
				"method": "POST",
				"url": "https://example.com/login",
				"body": {"mode": "raw", "raw": "{\"user\":\"a\",\"pwd\":\"b\"}", "options": {"raw": {"language": "json"}}}
			}}
		]
	}`))
	require.NoError(t, err)

	pathItem, ok := doc.Paths.Get("/login")
	require.True(t, ok)
	op, ok := pathItem.Get("post")
	require.True(t, ok)

	mt, ok := op.RequestBody.Content.Get("application/json")
	require.True(t, ok)
	require.Equal(t, "object", string(mt.Schema.Type))

	user, ok := mt.Schema.Properties.Get("user")
	require.True(t, ok)
	require.Equal(t, "string", string(user.Type))
}

func TestTranspileJSON_AuthOverride_S4(t *testing.T) {
	t.Parallel()

	doc, err := pm2openapi.TranspileJSON([]byte(`{
		"info": {"name": "Demo"},
		"item": [
			{"name": "Folder", "auth": {"type": "basic", "basic": [{"key":"username","value":"u"}]}, "item": [
				{"name": "Get", "request": {
					"method": "GET",
					"url": "https://example.com/secure",
					"auth": {"type": "bearer", "bearer": [{"key":"token","value":"x"}]}
				}}
			]}
		]
	}`))
	require.NoError(t, err)

	require.NotNil(t, doc.Components)
	_, ok := doc.Components.SecuritySchemes.Get("basicAuth")
	require.True(t, ok)
	_, ok = doc.Components.SecuritySchemes.Get("bearerAuth")
	require.True(t, ok)

	pathItem, _ := doc.Paths.Get("/secure")
	op, _ := pathItem.Get("get")
	require.Len(t, op.Security, 1)
	require.Equal(t, "bearerAuth", op.Security[0].Name)
}

func TestTranspileJSON_HeaderFiltering_S5(t *testing.T) {
	t.Parallel()

	doc, err := pm2openapi.TranspileJSON([]byte(`{
		"info": {"name": "Demo"},
		"item": [
			{"name": "Get", "request": {
				"method": "GET",
				"url": "https://example.com/trace",
				"header": [
					{"key": "Authorization", "value": "Bearer x"},
					{"key": "Content-Type", "value": "application/json"},
					{"key": "X-Trace-Id", "value": "abc"}
				]
			}}
		]
	}`))
	require.NoError(t, err)

	pathItem, _ := doc.Paths.Get("/trace")
	op, _ := pathItem.Get("get")

	require.Len(t, op.Parameters, 1)
	require.Equal(t, "X-Trace-Id", op.Parameters[0].Name)
	require.Equal(t, "header", string(op.Parameters[0].In))
}

func TestTranspileJSON_OperationIDCollision_S6(t *testing.T) {
	t.Parallel()

	doc, err := pm2openapi.TranspileJSON([]byte(`{
		"info": {"name": "Demo"},
		"item": [
			{"name": "Get User", "request": {"method": "GET", "url": "https://example.com/a"}},
			{"name": "Get User", "request": {"method": "GET", "url": "https://example.com/b"}}
		]
	}`))
	require.NoError(t, err)

	opA := mustOp(t, doc, "/a", "get")
	opB := mustOp(t, doc, "/b", "get")

	require.Equal(t, "get-user", opA.OperationID)
	require.Equal(t, "get-user-2", opB.OperationID)
}

func TestTranspileJSON_MalformedJSON_ParseError(t *testing.T) {
	t.Parallel()

	_, err := pm2openapi.TranspileJSON([]byte(`{not valid`))
	require.Error(t, err)

	var pmErr *pm2openapi.Error
	require.ErrorAs(t, err, &pmErr)
	require.Equal(t, pm2openapi.KindParse, pmErr.Kind)
}

func TestTranspileJSON_MissingItem_SchemaMismatch(t *testing.T) {
	t.Parallel()

	_, err := pm2openapi.TranspileJSON([]byte(`{"info": {"name": "Demo"}}`))
	require.Error(t, err)

	var pmErr *pm2openapi.Error
	require.ErrorAs(t, err, &pmErr)
	require.Equal(t, pm2openapi.KindSchemaMismatch, pmErr.Kind)
}

func TestTranspileJSON_MissingTopLevelFields_DefaultsApplied(t *testing.T) {
	t.Parallel()

	doc, err := pm2openapi.TranspileJSON([]byte(`{"info": {}, "item": []}`))
	require.NoError(t, err)
	require.Equal(t, "API", doc.Info.Title)
	require.Equal(t, 0, doc.Paths.Len())
}

func TestToYAML_And_ToJSON(t *testing.T) {
	t.Parallel()

	doc, err := pm2openapi.TranspileJSON([]byte(`{
		"info": {"name": "Demo"},
		"item": [
			{"name": "List", "request": {"method": "GET", "url": "https://example.com/users"}}
		]
	}`))
	require.NoError(t, err)

	yamlOut, err := pm2openapi.ToYAML(doc)
	require.NoError(t, err)
	require.Contains(t, string(yamlOut), "openapi: 3.0.3")

	jsonOut, err := pm2openapi.ToJSON(doc)
	require.NoError(t, err)
	require.Contains(t, string(jsonOut), `"openapi": "3.0.3"`)
}

func mustOp(t *testing.T, doc *openapi.OpenApi, path, method string) *openapi.Operation {
	t.Helper()
	pathItem, ok := doc.Paths.Get(path)
	require.True(t, ok, "path %q not found", path)
	op, ok := pathItem.Get(openapi.HTTPMethod(method))
	require.True(t, ok, "method %q not found on %q", method, path)
	return op
}
