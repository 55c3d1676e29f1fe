package binder_test

import (
	"bytes"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/frostal/binder"
)

func jsonRequest(body, contentType string) *http.Request {
	r := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(body))
	if contentType != "" {
		r.Header.Set("Content-Type", contentType)
	}
	return r
}

func TestJSON(t *testing.T) {
	t.Parallel()

	bind := binder.JSON()

	t.Run("decodes into a map", func(t *testing.T) {
		data := map[string]any{"page": "1"}
		err := bind(jsonRequest(`{"email":"a@b.co","age":42,"tags":["x"],"address":{"city":"Berlin"}}`, "application/json; charset=utf-8"), &data)
		require.NoError(t, err)
		assert.Equal(t, map[string]any{
			"page":    "1",
			"email":   "a@b.co",
			"age":     float64(42),
			"tags":    []any{"x"},
			"address": map[string]any{"city": "Berlin"},
		}, data)
	})

	t.Run("accepts json suffix types", func(t *testing.T) {
		var data map[string]any
		require.NoError(t, bind(jsonRequest(`{"a":1}`, "application/vnd.api+json"), &data))
		assert.Equal(t, float64(1), data["a"])
	})

	t.Run("decodes into structs", func(t *testing.T) {
		var req struct {
			Email string `json:"email"`
		}
		require.NoError(t, bind(jsonRequest(`{"email":"a@b.co"}`, "application/json"), &req))
		assert.Equal(t, "a@b.co", req.Email)
	})

	tests := []struct {
		name        string
		body        string
		contentType string
		want        error
	}{
		{"missing content type", `{}`, "", binder.ErrMissingContentType},
		{"wrong content type", `{}`, "text/plain", binder.ErrUnsupportedMediaType},
		{"malformed content type", `{}`, "application/json; =", binder.ErrUnsupportedMediaType},
		{"empty body", ``, "application/json", binder.ErrInvalidJSON},
		{"syntax error", `{"a":`, "application/json", binder.ErrInvalidJSON},
		{"trailing data", `{"a":1} {"b":2}`, "application/json", binder.ErrInvalidJSON},
		{"wrong shape", `[1,2]`, "application/json", binder.ErrInvalidJSON},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var data map[string]any
			assert.ErrorIs(t, bind(jsonRequest(tt.body, tt.contentType), &data), tt.want)
		})
	}
}

func TestForm(t *testing.T) {
	t.Parallel()

	bind := binder.Form()

	t.Run("urlencoded with nested names", func(t *testing.T) {
		form := url.Values{
			"name":          {"Jane"},
			"tags[]":        {"a", "b"},
			"address[city]": {"Berlin"},
			"address[zip]":  {"10115"},
			"roles":         {"admin", "editor"},
		}
		r := jsonRequest(form.Encode(), "application/x-www-form-urlencoded")

		var data map[string]any
		require.NoError(t, bind(r, &data))
		assert.Equal(t, map[string]any{
			"name":    "Jane",
			"tags":    []any{"a", "b"},
			"address": map[string]any{"city": "Berlin", "zip": "10115"},
			"roles":   []any{"admin", "editor"},
		}, data)
	})

	t.Run("multipart", func(t *testing.T) {
		body := &bytes.Buffer{}
		mw := multipart.NewWriter(body)
		require.NoError(t, mw.WriteField("email", "a@b.co"))
		require.NoError(t, mw.WriteField("items[]", "1"))
		require.NoError(t, mw.Close())

		var data map[string]any
		require.NoError(t, bind(jsonRequest(body.String(), mw.FormDataContentType()), &data))
		assert.Equal(t, map[string]any{"email": "a@b.co", "items": []any{"1"}}, data)
	})

	t.Run("errors", func(t *testing.T) {
		var data map[string]any
		assert.ErrorIs(t, bind(jsonRequest("a=1", ""), &data), binder.ErrMissingContentType)
		assert.ErrorIs(t, bind(jsonRequest("{}", "application/json"), &data), binder.ErrUnsupportedMediaType)

		var wrong struct{}
		assert.ErrorIs(t, bind(jsonRequest("a=1", "application/x-www-form-urlencoded"), &wrong), binder.ErrInvalidTarget)
	})
}

func TestQuery(t *testing.T) {
	t.Parallel()

	bind := binder.Query()

	var data map[string]any
	r := httptest.NewRequest(http.MethodGet, "/search?q=go&filter[lang]=en&ids[]=1&ids[]=2", nil)
	require.NoError(t, bind(r, &data))
	assert.Equal(t, map[string]any{
		"q":      "go",
		"filter": map[string]any{"lang": "en"},
		"ids":    []any{"1", "2"},
	}, data)

	r = httptest.NewRequest(http.MethodGet, "/search", nil)
	r.URL.RawQuery = "a=%zz"
	assert.ErrorIs(t, bind(r, &data), binder.ErrInvalidQuery)
}

func TestValues(t *testing.T) {
	t.Parallel()

	got := binder.Values(url.Values{
		"a[b][c]": {"deep"},
		"a[x]":    {"y"},
		"bad[":    {"1"},
		"[x]":     {"2"},
		"m[][n]":  {"3"},
		"empty":   {},
	})
	assert.Equal(t, map[string]any{
		"a":      map[string]any{"b": map[string]any{"c": "deep"}, "x": "y"},
		"bad[":   "1",
		"[x]":    "2",
		"m[][n]": "3",
	}, got)
}

func TestBody(t *testing.T) {
	t.Parallel()

	bind := binder.Body()

	t.Run("json", func(t *testing.T) {
		var data map[string]any
		require.NoError(t, bind(jsonRequest(`{"a":"b"}`, "application/json"), &data))
		assert.Equal(t, map[string]any{"a": "b"}, data)
	})

	t.Run("form", func(t *testing.T) {
		var data map[string]any
		require.NoError(t, bind(jsonRequest("a=b", "application/x-www-form-urlencoded"), &data))
		assert.Equal(t, map[string]any{"a": "b"}, data)
	})

	t.Run("no body", func(t *testing.T) {
		var data map[string]any
		err := bind(httptest.NewRequest(http.MethodPost, "/", nil), &data)
		assert.ErrorIs(t, err, binder.ErrBinderNotApplicable)
	})

	t.Run("body without content type", func(t *testing.T) {
		var data map[string]any
		assert.ErrorIs(t, bind(jsonRequest("a=b", ""), &data), binder.ErrMissingContentType)
	})

	t.Run("unsupported type", func(t *testing.T) {
		var data map[string]any
		assert.ErrorIs(t, bind(jsonRequest("<a/>", "application/xml"), &data), binder.ErrUnsupportedMediaType)
	})
}
