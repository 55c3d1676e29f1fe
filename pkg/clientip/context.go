package clientip

import (
	"context"
	"log/slog"
	"net/http"
)

type contextKey struct{}

// WithContext stores the client IP in ctx.
func WithContext(ctx context.Context, ip string) context.Context {
	return context.WithValue(ctx, contextKey{}, ip)
}

// FromContext returns the client IP stored by Middleware, or "".
func FromContext(ctx context.Context) string {
	ip, _ := ctx.Value(contextKey{}).(string)
	return ip
}

// Middleware resolves the client IP once per request. Without arguments
// DefaultHeaders are trusted; pass explicit header names to narrow that down
// to what the fronting proxy actually sets.
func Middleware(headers ...string) func(http.Handler) http.Handler {
	if len(headers) == 0 {
		headers = DefaultHeaders
	}
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ip := FromRequest(r, headers...)
			next.ServeHTTP(w, r.WithContext(WithContext(r.Context(), ip)))
		})
	}
}

// LoggerExtractor adds the "client_ip" attribute when the context carries one.
func LoggerExtractor() func(ctx context.Context) (slog.Attr, bool) {
	return func(ctx context.Context) (slog.Attr, bool) {
		if ip := FromContext(ctx); ip != "" {
			return slog.String("client_ip", ip), true
		}
		return slog.Attr{}, false
	}
}
