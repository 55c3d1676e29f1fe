package main

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"testing/fstest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/frostal/pkg/validator"
)

func writeFiles(t *testing.T, files map[string]string) string {
	t.Helper()
	dir := t.TempDir()
	for name, content := range files {
		require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte(content), 0o600))
	}
	return dir
}

const signupScheme = `
name:
  - required
  - minLength: 3
email:
  - required
  - email
address:
  array:
    city: [required]
`

func newTestApp(t *testing.T, mutate func(*Config)) http.Handler {
	t.Helper()
	cfg := Config{
		Name:       "frostal",
		Env:        "development",
		PagesIndex: "home",
		TemplatesPath: writeFiles(t, map[string]string{
			"home.html":  `<h1>{{.App}}</h1>`,
			"about.html": `about {{index .Query "who"}}`,
		}),
		SchemesPath: writeFiles(t, map[string]string{
			"signup.yaml": signupScheme,
			"search.json": `{"q": ["required"]}`,
			"README.md":   "ignored",
		}),
	}
	if mutate != nil {
		mutate(&cfg)
	}
	app, err := NewApp(cfg, nil)
	require.NoError(t, err)
	return app.Handler()
}

func serve(h http.Handler, req *http.Request) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	h.ServeHTTP(w, req)
	return w
}

func TestPages(t *testing.T) {
	t.Parallel()
	h := newTestApp(t, nil)

	t.Run("index page", func(t *testing.T) {
		t.Parallel()
		w := serve(h, httptest.NewRequest(http.MethodGet, "/", nil))
		assert.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, "<h1>frostal</h1>", w.Body.String())
		assert.NotEmpty(t, w.Header().Get("X-Request-ID"))
	})

	t.Run("named page gets query", func(t *testing.T) {
		t.Parallel()
		w := serve(h, httptest.NewRequest(http.MethodGet, "/pages/about?who=us", nil))
		assert.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, "about us", w.Body.String())
	})

	t.Run("unknown page is 404", func(t *testing.T) {
		t.Parallel()
		req := httptest.NewRequest(http.MethodGet, "/pages/missing", nil)
		req.Header.Set("Accept", "application/json")
		w := serve(h, req)
		assert.Equal(t, http.StatusNotFound, w.Code)
		assert.JSONEq(t, `{"code":404,"message":"Not Found","errors":{}}`, w.Body.String())
	})

	t.Run("trailing slash redirects", func(t *testing.T) {
		t.Parallel()
		w := serve(h, httptest.NewRequest(http.MethodGet, "/pages/about/?who=us", nil))
		assert.Equal(t, http.StatusMovedPermanently, w.Code)
		assert.Equal(t, "/pages/about?who=us", w.Header().Get("Location"))
	})

	t.Run("unknown route", func(t *testing.T) {
		t.Parallel()
		w := serve(h, httptest.NewRequest(http.MethodGet, "/nowhere", nil))
		assert.Equal(t, http.StatusNotFound, w.Code)
		assert.Contains(t, w.Body.String(), "<h1>404</h1>")
	})

	t.Run("method not allowed", func(t *testing.T) {
		t.Parallel()
		req := httptest.NewRequest(http.MethodDelete, "/health", nil)
		req.Header.Set("Accept", "application/xml")
		w := serve(h, req)
		assert.Equal(t, http.StatusMethodNotAllowed, w.Code)
		assert.Contains(t, w.Body.String(), "<code>405</code>")
	})
}

func TestPagesWithoutTemplates(t *testing.T) {
	t.Parallel()
	h := newTestApp(t, func(cfg *Config) { cfg.TemplatesPath = "" })

	w := serve(h, httptest.NewRequest(http.MethodGet, "/", nil))
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestTrailingSlashMode(t *testing.T) {
	t.Parallel()
	h := newTestApp(t, func(cfg *Config) { cfg.TrailingSlash = true })

	w := serve(h, httptest.NewRequest(http.MethodGet, "/pages/about", nil))
	assert.Equal(t, http.StatusMovedPermanently, w.Code)
	assert.Equal(t, "/pages/about/", w.Header().Get("Location"))

	w = serve(h, httptest.NewRequest(http.MethodGet, "/pages/about/?who=me", nil))
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "about me", w.Body.String())

	w = serve(h, httptest.NewRequest(http.MethodGet, "/health/", nil))
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestSchemes(t *testing.T) {
	t.Parallel()
	h := newTestApp(t, nil)

	post := func(name, body string) *httptest.ResponseRecorder {
		req := httptest.NewRequest(http.MethodPost, "/schemes/"+name, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
		req.Header.Set("Accept", "application/json")
		return serve(h, req)
	}

	t.Run("valid body", func(t *testing.T) {
		t.Parallel()
		w := post("signup", `{"name":"Alice","email":"alice@example.com","address":{"city":"Oslo"},"admin":true}`)
		require.Equal(t, http.StatusOK, w.Code, w.Body.String())

		var body struct {
			Data map[string]any `json:"data"`
		}
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
		assert.Equal(t, map[string]any{
			"name":    "Alice",
			"email":   "alice@example.com",
			"address": map[string]any{"city": "Oslo"},
		}, body.Data)
	})

	t.Run("invalid body", func(t *testing.T) {
		t.Parallel()
		w := post("signup", `{"name":"Al","email":"nope","address":{}}`)
		require.Equal(t, http.StatusUnprocessableEntity, w.Code)

		var body struct {
			Code   int                 `json:"code"`
			Errors map[string][]string `json:"errors"`
		}
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
		assert.Equal(t, 422, body.Code)
		assert.Contains(t, body.Errors, "name")
		assert.Contains(t, body.Errors, "email")
		assert.Contains(t, body.Errors, "address.city")
		assert.NotContains(t, body.Errors, "address")
	})

	t.Run("form body against json scheme", func(t *testing.T) {
		t.Parallel()
		req := httptest.NewRequest(http.MethodPost, "/schemes/search", strings.NewReader("q=go"))
		req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
		w := serve(h, req)
		require.Equal(t, http.StatusOK, w.Code)
		assert.JSONEq(t, `{"data":{"q":"go"}}`, w.Body.String())
	})

	t.Run("unknown scheme", func(t *testing.T) {
		t.Parallel()
		w := post("nope", `{}`)
		assert.Equal(t, http.StatusNotFound, w.Code)
	})

	t.Run("malformed json", func(t *testing.T) {
		t.Parallel()
		w := post("search", `{"q":`)
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}

func TestHealth(t *testing.T) {
	t.Parallel()
	w := serve(newTestApp(t, nil), httptest.NewRequest(http.MethodGet, "/health", nil))
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "ALIVE", w.Body.String())
}

func TestMessageOverrides(t *testing.T) {
	t.Parallel()
	dir := writeFiles(t, map[string]string{"messages.yaml": `required: "%s cannot be empty"`})
	h := newTestApp(t, func(cfg *Config) { cfg.MessagesFile = filepath.Join(dir, "messages.yaml") })

	req := httptest.NewRequest(http.MethodPost, "/schemes/search", strings.NewReader(`{}`))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")
	w := serve(h, req)

	require.Equal(t, http.StatusUnprocessableEntity, w.Code)
	assert.Contains(t, w.Body.String(), "q cannot be empty")
}

func TestNewAppErrors(t *testing.T) {
	t.Parallel()

	_, err := NewApp(Config{SchemesPath: writeFiles(t, map[string]string{"bad.yaml": "name: [nosuchrule]"})}, nil)
	assert.ErrorIs(t, err, validator.ErrRuleNotFound)

	_, err = NewApp(Config{TemplatesPath: t.TempDir()}, nil)
	assert.Error(t, err)

	_, err = NewApp(Config{MessagesFile: filepath.Join(t.TempDir(), "missing.yaml")}, nil)
	assert.Error(t, err)
}

func TestLoadSchemes(t *testing.T) {
	t.Parallel()

	fsys := fstest.MapFS{
		"user.yml":  {Data: []byte("id: [required, integer]")},
		"user.json": {Data: []byte(`{"id": ["required"]}`)},
	}
	_, err := loadSchemes(fsys, validator.New())
	assert.ErrorIs(t, err, ErrDuplicateScheme)

	delete(fsys, "user.json")
	fsys["nested/skip.yaml"] = &fstest.MapFile{Data: []byte("x: [required]")}
	schemes, err := loadSchemes(fsys, validator.New())
	require.NoError(t, err)
	require.Contains(t, schemes, "user")
	assert.Equal(t, []string{"required", "integer"}, schemes["user"]["id"].Names())
	assert.NotContains(t, schemes, "skip")
}
