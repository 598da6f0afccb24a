package postman_test

import (
	"encoding/json"
	"testing"

	"github.com/pm2openapi/pm2openapi/postman"
	"github.com/stretchr/testify/require"
)

func TestItem_UnmarshalJSON_Folder(t *testing.T) {
	t.Parallel()

	data := []byte(`{"name":"Users","item":[]}`)

	var item postman.Item
	require.NoError(t, json.Unmarshal(data, &item))
	require.True(t, item.IsFolder())
	require.Equal(t, "Users", item.Folder.Name)
}

func TestItem_UnmarshalJSON_Request(t *testing.T) {
	t.Parallel()

	data := []byte(`{"name":"Get User","request":{"method":"GET","url":"https://example.com/users"}}`)

	var item postman.Item
	require.NoError(t, json.Unmarshal(data, &item))
	require.False(t, item.IsFolder())
	require.Equal(t, "Get User", item.Request.Name)
	require.Equal(t, "GET", item.Request.Request.Method)
}

func TestUrl_UnmarshalJSON_StringForm(t *testing.T) {
	t.Parallel()

	var u postman.Url
	require.NoError(t, json.Unmarshal([]byte(`"https://example.com/users"`), &u))
	require.Equal(t, "https://example.com/users", u.Raw)
	require.False(t, u.IsStructured())
}

func TestUrl_UnmarshalJSON_StructuredForm(t *testing.T) {
	t.Parallel()

	data := []byte(`{"protocol":"https","host":["example","com"],"path":["users",":id"]}`)

	var u postman.Url
	require.NoError(t, json.Unmarshal(data, &u))
	require.True(t, u.IsStructured())
	require.Equal(t, []string{"example", "com"}, u.Host)
	require.Equal(t, []string{"users", ":id"}, u.Path)
}

func TestAuth_Param(t *testing.T) {
	t.Parallel()

	auth := &postman.Auth{
		Type:   postman.AuthTypeAPIKey,
		APIKey: []postman.KeyValue{{Key: "key", Value: "X-Api-Key"}, {Key: "in", Value: "header"}},
	}

	v, ok := auth.Param("key")
	require.True(t, ok)
	require.Equal(t, "X-Api-Key", v)

	_, ok = auth.Param("missing")
	require.False(t, ok)
}
