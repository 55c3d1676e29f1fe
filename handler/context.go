package handler

import (
	"context"
	"net/http"
	"sync"
	"time"

	"github.com/starfederation/datastar-go/datastar"
)

// Context wraps http.Request and http.ResponseWriter with context.Context.
// It embeds the request's context and provides access to HTTP components.
type Context interface {
	context.Context
	Request() *http.Request
	ResponseWriter() http.ResponseWriter
	SSE() *datastar.ServerSentEventGenerator
}

// NewContext creates a new Context from HTTP request and response writer.
func NewContext(w http.ResponseWriter, r *http.Request) Context {
	return &httpContext{
		w: w,
		r: r,
	}
}

// httpContext is the default implementation of Context.
type httpContext struct {
	w       http.ResponseWriter
	r       *http.Request
	sseOnce sync.Once
	sse     *datastar.ServerSentEventGenerator
}

func (c *httpContext) Request() *http.Request {
	return c.r
}

func (c *httpContext) ResponseWriter() http.ResponseWriter {
	return c.w
}

// SSE returns the event generator of a DataStar request, or nil.
// The stream headers are written on first use.
func (c *httpContext) SSE() *datastar.ServerSentEventGenerator {
	if !IsDataStar(c.r) {
		return nil
	}
	c.sseOnce.Do(func() {
		c.sse = NewSSE(c.w, c.r)
	})
	return c.sse
}

// Delegate context.Context methods to the request's context
func (c *httpContext) Deadline() (deadline time.Time, ok bool) {
	return c.r.Context().Deadline()
}

func (c *httpContext) Done() <-chan struct{} {
	return c.r.Context().Done()
}

func (c *httpContext) Err() error {
	return c.r.Context().Err()
}

func (c *httpContext) Value(key any) any {
	return c.r.Context().Value(key)
}
