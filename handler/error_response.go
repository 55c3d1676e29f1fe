package handler

import "net/http"

type errorResponse struct {
	err error
}

// Render hands the error back to Wrap, which passes it to the error handler.
func (e errorResponse) Render(w http.ResponseWriter, r *http.Request) error {
	return e.err
}

// Error creates a response that is rendered by the configured error handler.
// A nil error becomes ErrInternalServerError.
//
// Example:
//
//	if !found {
//		return handler.Error(handler.ErrNotFound)
//	}
func Error(err error) Response {
	if err == nil {
		err = ErrInternalServerError
	}
	return errorResponse{err: err}
}
