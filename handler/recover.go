package handler

import (
	"fmt"
	"net/http"
)

// Recoverer converts a panic in downstream handlers into an error handler
// call, which answers with 500 Internal Server Error.
// http.ErrAbortHandler is re-raised so the server can abort the response.
//
// Example:
//
//	errorHandler := handler.NewErrorHandler(log, handler.ErrorHandlerConfig{})
//	p.Pipe(handler.Recoverer(errorHandler), -100)
func Recoverer(errorHandler ErrorHandler[Context]) func(http.Handler) http.Handler {
	if errorHandler == nil {
		errorHandler = defaultErrorHandler[Context]
	}

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			defer func() {
				rec := recover()
				if rec == nil {
					return
				}
				if rec == http.ErrAbortHandler {
					panic(rec)
				}

				err, ok := rec.(error)
				if !ok {
					err = fmt.Errorf("%v", rec)
				}
				errorHandler(NewContext(w, r), fmt.Errorf("%w: %w", ErrPanicRecovered, err))
			}()

			next.ServeHTTP(w, r)
		})
	}
}
