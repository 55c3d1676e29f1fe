// Package handler provides type-safe HTTP request handling on top of net/http.
//
// A HandlerFunc takes a typed context and a bound request value and returns
// a Response. Wrap turns it into an http.HandlerFunc that runs the binders,
// the decorators and finally renders the response. Any error raised along
// the way goes to a single ErrorHandler.
//
//	h := func(ctx handler.Context, req map[string]any) handler.Response {
//		return handler.JSON(req)
//	}
//
//	mux.HandleFunc("/schemes/signup", handler.Wrap(h,
//		handler.WithBinders[handler.Context, map[string]any](binder.Query(), binder.Body()),
//		handler.WithErrorHandler[handler.Context, map[string]any](errorHandler),
//		handler.WithDecorators(handler.ValidateRequest[handler.Context](v, rules)),
//	))
//
// # Responses
//
//	handler.JSON(data)                          // 200 {"data": ...}
//	handler.JSON(data, handler.WithJSONStatus(201))
//	handler.XML(doc)                            // application/xml
//	handler.Templ(component)                    // HTML, or SSE patch for DataStar
//	handler.TemplPartial(partial, full)
//	handler.Empty()                             // 204
//	handler.Error(handler.ErrNotFound)          // rendered by the error handler
//
// # Errors
//
// HTTPError carries a status code and a translation key. NewHTTPError accepts
// any 4xx or 5xx code known to net/http, plus 444, 499 and 599.
//
// NewErrorHandler classifies an error (HTTPError keeps its status,
// validator.Errors answers 422 with per-field messages, binder failures
// answer 400 or 415, everything else is a 500), logs it at warn or error
// level and renders it:
//
//   - DataStar requests get a toast patched into ToastTarget.
//   - Other requests get the first format of the Accept header that has a
//     renderer: an HTML page, {"code","message","errors"} JSON or an
//     <error> XML document. HTML is the fallback.
//
// Recoverer is a middleware that routes panics into the same error handler.
package handler
