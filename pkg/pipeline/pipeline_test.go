package pipeline_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/dmitrymomot/frostal/pkg/pipeline"
)

func tag(name string, trace *[]string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			*trace = append(*trace, name)
			next.ServeHTTP(w, r)
		})
	}
}

func TestPipelineOrder(t *testing.T) {
	t.Parallel()

	var trace []string
	p := pipeline.New().
		Pipe(tag("page", &trace), 100).
		Pipe(tag("slash", &trace), -50).
		Pipe(tag("recover", &trace), -100).
		Pipe(tag("first-zero", &trace), 0).
		Pipe(tag("second-zero", &trace), 0).
		Pipe(nil, 1)

	assert.Equal(t, 5, p.Len())

	h := p.Then(func(w http.ResponseWriter, r *http.Request) {
		trace = append(trace, "final")
		w.WriteHeader(http.StatusTeapot)
	})

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))

	assert.Equal(t, http.StatusTeapot, rec.Code)
	assert.Equal(t, []string{"recover", "slash", "first-zero", "second-zero", "page", "final"}, trace)
}

func TestPipelineShortCircuit(t *testing.T) {
	t.Parallel()

	finalCalled := false
	block := func(http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusForbidden)
		})
	}

	h := pipeline.New().Pipe(block, 0).Then(func(http.ResponseWriter, *http.Request) {
		finalCalled = true
	})

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))

	assert.Equal(t, http.StatusForbidden, rec.Code)
	assert.False(t, finalCalled)
}

func TestEmptyPipeline(t *testing.T) {
	t.Parallel()

	p := pipeline.New()
	assert.Empty(t, p.Middlewares())

	rec := httptest.NewRecorder()
	p.Handler(nil).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))
	assert.Equal(t, http.StatusNotFound, rec.Code)
}
