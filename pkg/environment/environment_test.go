package environment_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/dmitrymomot/frostal/pkg/environment"
)

func TestParse(t *testing.T) {
	t.Parallel()

	tests := map[string]environment.Environment{
		"production": environment.Production,
		"PROD":       environment.Production,
		" stage ":    environment.Staging,
		"staging":    environment.Staging,
		"dev":        environment.Development,
		"":           environment.Development,
		"whatever":   environment.Development,
	}
	for in, want := range tests {
		assert.Equal(t, want, environment.Parse(in), in)
	}

	assert.True(t, environment.Production.IsProduction())
	assert.True(t, environment.Staging.IsStaging())
	assert.False(t, environment.Staging.IsDevelopment())
	assert.Equal(t, "development", environment.Development.String())
}

func TestMiddleware(t *testing.T) {
	t.Parallel()

	var got environment.Environment
	h := environment.Middleware(environment.Staging)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		got = environment.FromContext(r.Context())
	}))
	h.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/", nil))

	assert.Equal(t, environment.Staging, got)
}
