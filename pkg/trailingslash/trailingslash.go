package trailingslash

import (
	"net/http"
	"strings"
)

type options struct {
	addSlash bool
}

// Option configures Middleware.
type Option func(*options)

// WithTrailingSlash makes every non-root path end with exactly one slash
// instead of none.
func WithTrailingSlash(add bool) Option {
	return func(o *options) { o.addSlash = add }
}

// Normalize returns path in its canonical form.
func Normalize(path string, addSlash bool) string {
	trimmed := strings.TrimRight(path, "/")
	if trimmed == "" {
		return "/"
	}
	if addSlash {
		return trimmed + "/"
	}
	return trimmed
}

// Middleware redirects requests whose path is not canonical with a 301 and
// passes the rest through.
func Middleware(opts ...Option) func(http.Handler) http.Handler {
	o := &options{}
	for _, opt := range opts {
		opt(o)
	}

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			path := r.URL.Path
			canonical := Normalize(path, o.addSlash)
			if canonical == path {
				next.ServeHTTP(w, r)
				return
			}

			target := canonical
			if r.URL.RawQuery != "" {
				target += "?" + r.URL.RawQuery
			}
			w.Header().Set("Location", target)
			w.WriteHeader(http.StatusMovedPermanently)
		})
	}
}
