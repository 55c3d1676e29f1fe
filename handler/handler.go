package handler

import (
	"errors"
	"net/http"

	"github.com/dmitrymomot/frostal/binder"
	"github.com/dmitrymomot/frostal/pkg/validator"
)

// HandlerFunc provides type-safe HTTP request handling with custom context support.
// C must implement the Context interface, R can be any request type. Handlers
// fed to the validator usually take map[string]any.
//
// Example:
//
//	h := handler.HandlerFunc[handler.Context, map[string]any](
//		func(ctx handler.Context, req map[string]any) handler.Response {
//			return handler.JSON(req)
//		},
//	)
type HandlerFunc[C Context, R any] func(ctx C, req R) Response

// Response renders itself to an http.ResponseWriter.
// Implementations should set headers, status code, and write body.
// A returned error is passed to the error handler.
type Response interface {
	Render(w http.ResponseWriter, r *http.Request) error
}

// Bind parses HTTP requests into typed values.
type Bind func(r *http.Request, v any) error

// ErrorHandler handles errors from binding or rendering.
type ErrorHandler[C Context] func(ctx C, err error)

// Decorator wraps a HandlerFunc to add cross-cutting functionality.
// Decorators are applied in order, with the first decorator in the list
// being the outermost wrapper.
type Decorator[C Context, R any] func(HandlerFunc[C, R]) HandlerFunc[C, R]

// WrapOption configures the Wrap function.
type WrapOption[C Context, R any] func(*wrapConfig[C, R])

type wrapConfig[C Context, R any] struct {
	binders        []Bind
	errorHandler   ErrorHandler[C]
	contextFactory func(http.ResponseWriter, *http.Request) C
	decorators     []Decorator[C, R]
}

// WithBinder replaces the binders with a single one.
func WithBinder[C Context, R any](b Bind) WrapOption[C, R] {
	return func(c *wrapConfig[C, R]) {
		if b != nil {
			c.binders = []Bind{b}
		}
	}
}

// WithBinders appends binders that are applied in order. With map targets
// every binder merges into the same map, so later binders win on key clashes.
//
// Example:
//
//	handler.Wrap(h, handler.WithBinders[handler.Context, map[string]any](
//		binder.Query(),
//		binder.Body(),
//	))
func WithBinders[C Context, R any](binders ...Bind) WrapOption[C, R] {
	return func(c *wrapConfig[C, R]) {
		for _, b := range binders {
			if b != nil {
				c.binders = append(c.binders, b)
			}
		}
	}
}

// WithErrorHandler sets a custom error handler.
func WithErrorHandler[C Context, R any](h ErrorHandler[C]) WrapOption[C, R] {
	return func(c *wrapConfig[C, R]) {
		if h != nil {
			c.errorHandler = h
		}
	}
}

// WithContextFactory sets a custom context factory.
func WithContextFactory[C Context, R any](f func(http.ResponseWriter, *http.Request) C) WrapOption[C, R] {
	return func(c *wrapConfig[C, R]) {
		if f != nil {
			c.contextFactory = f
		}
	}
}

// WithDecorators adds decorators to wrap the handler.
// Decorators are applied in order, with the first decorator being the outermost.
func WithDecorators[C Context, R any](decorators ...Decorator[C, R]) WrapOption[C, R] {
	return func(c *wrapConfig[C, R]) {
		c.decorators = append(c.decorators, decorators...)
	}
}

// defaultErrorHandler writes a plain text error. HTTPError keeps its status,
// validation errors answer 422 and anything else 500.
func defaultErrorHandler[C Context](ctx C, err error) {
	if verrs := validator.ExtractErrors(err); verrs != nil {
		http.Error(ctx.ResponseWriter(), verrs.Error(), http.StatusUnprocessableEntity)
		return
	}
	var httpErr HTTPError
	if errors.As(err, &httpErr) {
		http.Error(ctx.ResponseWriter(), httpErr.Message(), httpErr.Code)
		return
	}
	http.Error(ctx.ResponseWriter(), ErrInternalServerError.Message(), http.StatusInternalServerError)
}

// Wrap converts a typed HandlerFunc to http.HandlerFunc.
//
// Example:
//
//	http.HandleFunc("/schemes/signup", handler.Wrap(h,
//		handler.WithBinders[handler.Context, map[string]any](binder.Body()),
//		handler.WithErrorHandler[handler.Context, map[string]any](errorHandler),
//		handler.WithDecorators(handler.ValidateRequest[handler.Context](v, rules)),
//	))
func Wrap[C Context, R any](h HandlerFunc[C, R], opts ...WrapOption[C, R]) http.HandlerFunc {
	cfg := &wrapConfig[C, R]{
		errorHandler: defaultErrorHandler[C],
		contextFactory: func(w http.ResponseWriter, r *http.Request) C {
			ctx := NewContext(w, r)
			if c, ok := any(ctx).(C); ok {
				return c
			}
			panic("cannot use default context factory with custom context type - provide WithContextFactory")
		},
	}

	for _, opt := range opts {
		opt(cfg)
	}

	// Apply decorators in reverse order so first decorator is outermost
	finalHandler := h
	for i := len(cfg.decorators) - 1; i >= 0; i-- {
		finalHandler = cfg.decorators[i](finalHandler)
	}

	return func(w http.ResponseWriter, r *http.Request) {
		ctx := cfg.contextFactory(w, r)

		var req R

		for _, bind := range cfg.binders {
			if err := bind(r, &req); err != nil {
				if errors.Is(err, binder.ErrBinderNotApplicable) {
					continue
				}
				cfg.errorHandler(ctx, err)
				return
			}
		}

		response := finalHandler(ctx, req)
		if response == nil {
			cfg.errorHandler(ctx, ErrNilResponse)
			return
		}
		if err := response.Render(w, r); err != nil {
			cfg.errorHandler(ctx, err)
		}
	}
}
