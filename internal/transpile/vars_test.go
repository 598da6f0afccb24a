package transpile_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/pm2openapi/pm2openapi/internal/transpile"
	"github.com/pm2openapi/pm2openapi/postman"
)

func TestTranspile_VariableSubstitution_InDescriptions(t *testing.T) {
	t.Parallel()

	collection := &postman.Collection{
		Info:     postman.Info{Name: "Demo", Description: ptr("Base URL is {{baseUrl}}")},
		Variable: []postman.KeyValue{{Key: "baseUrl", Value: "https://example.com"}},
		Item: []postman.Item{
			{Request: &postman.RequestItem{Name: "Get", Request: postman.Request{
				Method:      "GET",
				URL:         postman.Url{Raw: "https://example.com/users"},
				Description: ptr("Hits {{baseUrl}}/users"),
			}}},
		},
	}

	doc := transpile.Transpile(collection)

	require.Equal(t, "Base URL is https://example.com", *doc.Info.Description)

	pathItem, _ := doc.Paths.Get("/users")
	op, _ := pathItem.Get("get")
	require.Equal(t, "Hits https://example.com/users", *op.Description)
}

func TestTranspile_VariableSubstitution_ResolvesThroughChain(t *testing.T) {
	t.Parallel()

	collection := &postman.Collection{
		Info: postman.Info{Name: "Demo"},
		Variable: []postman.KeyValue{
			{Key: "host", Value: "{{scheme}}://example.com"},
			{Key: "scheme", Value: "https"},
		},
		Item: []postman.Item{
			{Request: &postman.RequestItem{Name: "Get", Request: postman.Request{
				Method:      "GET",
				URL:         postman.Url{Raw: "https://example.com/users"},
				Description: ptr("Base is {{host}}"),
			}}},
		},
	}

	doc := transpile.Transpile(collection)

	pathItem, _ := doc.Paths.Get("/users")
	op, _ := pathItem.Get("get")
	require.Equal(t, "Base is https://example.com", *op.Description)
}

func TestTranspile_VariableSubstitution_UnresolvedLeftLiteral(t *testing.T) {
	t.Parallel()

	collection := &postman.Collection{
		Info: postman.Info{Name: "Demo"},
		Item: []postman.Item{
			{Request: &postman.RequestItem{Name: "Get", Request: postman.Request{
				Method:      "GET",
				URL:         postman.Url{Raw: "https://example.com/users"},
				Description: ptr("Needs {{undefinedVar}}"),
			}}},
		},
	}

	doc := transpile.Transpile(collection)

	pathItem, _ := doc.Paths.Get("/users")
	op, _ := pathItem.Get("get")
	require.Equal(t, "Needs {{undefinedVar}}", *op.Description)
}
