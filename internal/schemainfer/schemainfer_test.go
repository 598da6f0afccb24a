package schemainfer_test

import (
	"encoding/json"
	"testing"

	"github.com/pm2openapi/pm2openapi/internal/schemainfer"
	"github.com/pm2openapi/pm2openapi/openapi"
	"github.com/pm2openapi/pm2openapi/postman"
	"github.com/stretchr/testify/require"
)

func TestFromRaw_JSONObject(t *testing.T) {
	t.Parallel()

	schema := schemainfer.FromRaw(`{"user":"a","pwd":"b","age":30,"active":true,"note":null,"tags":["x"]}`, postman.RawLanguageJSON)

	require.Equal(t, openapi.SchemaTypeObject, schema.Type)

	user, ok := schema.Properties.Get("user")
	require.True(t, ok)
	require.Equal(t, openapi.SchemaTypeString, user.Type)

	age, ok := schema.Properties.Get("age")
	require.True(t, ok)
	require.Equal(t, openapi.SchemaTypeInteger, age.Type)

	active, ok := schema.Properties.Get("active")
	require.True(t, ok)
	require.Equal(t, openapi.SchemaTypeBoolean, active.Type)

	note, ok := schema.Properties.Get("note")
	require.True(t, ok)
	require.True(t, *note.Nullable)

	tags, ok := schema.Properties.Get("tags")
	require.True(t, ok)
	require.Equal(t, openapi.SchemaTypeArray, tags.Type)
	require.Equal(t, openapi.SchemaTypeString, tags.Items.Type)
}

func TestFromRaw_PropertyOrderPreserved(t *testing.T) {
	t.Parallel()

	schema := schemainfer.FromRaw(`{"zebra":1,"apple":2,"mango":3}`, postman.RawLanguageJSON)

	var keys []string
	for k := range schema.Properties.Keys() {
		keys = append(keys, k)
	}

	require.Equal(t, []string{"zebra", "apple", "mango"}, keys)
}

func TestFromRaw_RoundTripsExample(t *testing.T) {
	t.Parallel()

	original := `{"a":1,"b":[1,2,3],"c":{"d":"e"}}`

	schema := schemainfer.FromRaw(original, postman.RawLanguageJSON)

	exampleJSON, err := json.Marshal(schema.Example)
	require.NoError(t, err)
	require.JSONEq(t, original, string(exampleJSON))
}

func TestFromRaw_EmptyArray(t *testing.T) {
	t.Parallel()

	schema := schemainfer.FromRaw(`{"items":[]}`, postman.RawLanguageJSON)

	items, ok := schema.Properties.Get("items")
	require.True(t, ok)
	require.Equal(t, openapi.SchemaTypeArray, items.Type)
	require.Equal(t, openapi.SchemaType(""), items.Items.Type)
}

func TestFromRaw_MalformedJSON_FallsBackToString(t *testing.T) {
	t.Parallel()

	schema := schemainfer.FromRaw(`{not valid json`, postman.RawLanguageJSON)

	require.Equal(t, openapi.SchemaTypeString, schema.Type)
	require.Equal(t, `{not valid json`, schema.Example)
}

func TestFromRaw_PlainText(t *testing.T) {
	t.Parallel()

	schema := schemainfer.FromRaw("hello world", postman.RawLanguageText)

	require.Equal(t, openapi.SchemaTypeString, schema.Type)
	require.Equal(t, "hello world", schema.Example)
}

func TestFromURLEncoded(t *testing.T) {
	t.Parallel()

	schema := schemainfer.FromURLEncoded([]postman.KeyValue{
		{Key: "user"},
		{Key: "skip", Disabled: true},
	})

	require.Equal(t, openapi.SchemaTypeObject, schema.Type)
	require.Equal(t, 1, schema.Properties.Len())
	_, ok := schema.Properties.Get("user")
	require.True(t, ok)
}

func TestFromFormData_FileField(t *testing.T) {
	t.Parallel()

	schema := schemainfer.FromFormData([]postman.FormParam{
		{Key: "avatar", Type: "file"},
		{Key: "name", Type: "text"},
	})

	avatar, ok := schema.Properties.Get("avatar")
	require.True(t, ok)
	require.Equal(t, "binary", avatar.Format)

	name, ok := schema.Properties.Get("name")
	require.True(t, ok)
	require.Equal(t, openapi.SchemaTypeString, name.Type)
	require.Empty(t, name.Format)
}

func TestFromGraphQL(t *testing.T) {
	t.Parallel()

	schema := schemainfer.FromGraphQL(&postman.GraphQLBody{Query: "{ me { id } }"})

	require.Equal(t, "{ me { id } }", schema.Example)
	_, ok := schema.Properties.Get("query")
	require.True(t, ok)
	_, ok = schema.Properties.Get("variables")
	require.True(t, ok)
}

func TestFromFile(t *testing.T) {
	t.Parallel()

	schema := schemainfer.FromFile()
	require.Equal(t, openapi.SchemaTypeString, schema.Type)
	require.Equal(t, "binary", schema.Format)
}
