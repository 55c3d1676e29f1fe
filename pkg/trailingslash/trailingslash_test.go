package trailingslash_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/dmitrymomot/frostal/pkg/trailingslash"
)

func TestNormalize(t *testing.T) {
	t.Parallel()

	tests := []struct {
		path string
		add  bool
		want string
	}{
		{"/", false, "/"},
		{"/", true, "/"},
		{"", false, "/"},
		{"//", false, "/"},
		{"/foo", false, "/foo"},
		{"/foo/", false, "/foo"},
		{"/foo//", false, "/foo"},
		{"/foo", true, "/foo/"},
		{"/foo//", true, "/foo/"},
		{"/foo/bar/", true, "/foo/bar/"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, trailingslash.Normalize(tt.path, tt.add), "%q add=%v", tt.path, tt.add)
	}
}

func TestMiddleware(t *testing.T) {
	t.Parallel()

	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})

	tests := []struct {
		name     string
		opts     []trailingslash.Option
		target   string
		code     int
		location string
	}{
		{"canonical passes", nil, "/pages/home", http.StatusOK, ""},
		{"root passes", nil, "/", http.StatusOK, ""},
		{"trailing slash removed", nil, "/pages/home/", http.StatusMovedPermanently, "/pages/home"},
		{"query kept", nil, "/pages/home/?a=1&b=2", http.StatusMovedPermanently, "/pages/home?a=1&b=2"},
		{"slash added", []trailingslash.Option{trailingslash.WithTrailingSlash(true)}, "/pages/home?x=y", http.StatusMovedPermanently, "/pages/home/?x=y"},
		{"slash kept", []trailingslash.Option{trailingslash.WithTrailingSlash(true)}, "/pages/home/", http.StatusOK, ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := httptest.NewRecorder()
			trailingslash.Middleware(tt.opts...)(next).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, tt.target, nil))
			assert.Equal(t, tt.code, rec.Code)
			assert.Equal(t, tt.location, rec.Header().Get("Location"))
		})
	}
}
