package urlnorm_test

import (
	"testing"

	"github.com/pm2openapi/pm2openapi/internal/urlnorm"
	"github.com/pm2openapi/pm2openapi/postman"
	"github.com/stretchr/testify/require"
)

func TestNormalize_RawString(t *testing.T) {
	t.Parallel()

	res := urlnorm.Normalize(postman.Url{Raw: "https://example.com/users"})

	require.Equal(t, "https://example.com", res.ServerURL)
	require.Equal(t, "/users", res.TemplatePath)
	require.Empty(t, res.PathParams)
}

func TestNormalize_PathFormEquivalence(t *testing.T) {
	t.Parallel()

	colon := urlnorm.Normalize(postman.Url{
		Protocol: "https",
		Host:     []string{"example", "com"},
		Path:     []string{"a", ":id", "b"},
	})

	doubleBrace := urlnorm.Normalize(postman.Url{
		Protocol: "https",
		Host:     []string{"example", "com"},
		Path:     []string{"a", "{{id}}", "b"},
	})

	require.Equal(t, "/a/{id}/b", colon.TemplatePath)
	require.Equal(t, colon.TemplatePath, doubleBrace.TemplatePath)
	require.Len(t, colon.PathParams, 1)
	require.Len(t, doubleBrace.PathParams, 1)
	require.Equal(t, "id", colon.PathParams[0].Name)
	require.Equal(t, "id", doubleBrace.PathParams[0].Name)
}

func TestNormalize_DuplicateParamNameCollapses(t *testing.T) {
	t.Parallel()

	res := urlnorm.Normalize(postman.Url{
		Host: []string{"example", "com"},
		Path: []string{"a", ":id", "b", ":id"},
	})

	require.Len(t, res.PathParams, 1)
}

func TestNormalize_QueryParams_DisabledOmitted(t *testing.T) {
	t.Parallel()

	res := urlnorm.Normalize(postman.Url{
		Host: []string{"example", "com"},
		Path: []string{"users"},
		Query: []postman.KeyValue{
			{Key: "active", Value: "true"},
			{Key: "hidden", Value: "x", Disabled: true},
			{Key: "active", Value: "false"}, // duplicate, first wins
		},
	})

	require.Len(t, res.QueryParams, 1)
	require.Equal(t, "active", res.QueryParams[0].Name)
	require.Equal(t, "true", *res.QueryParams[0].Example)
}

func TestNormalize_NoHost_NoServer(t *testing.T) {
	t.Parallel()

	res := urlnorm.Normalize(postman.Url{Path: []string{"users"}})

	require.Empty(t, res.ServerURL)
	require.Equal(t, "/users", res.TemplatePath)
}

func TestNormalize_RawWithQuery(t *testing.T) {
	t.Parallel()

	res := urlnorm.Normalize(postman.Url{Raw: "https://example.com/users?active=true"})

	require.Equal(t, "/users", res.TemplatePath)
	require.Len(t, res.QueryParams, 1)
	require.Equal(t, "active", res.QueryParams[0].Name)
}
