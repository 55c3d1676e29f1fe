package handler

import (
	"errors"
	"fmt"
	"net/http"
	"strings"
)

// ErrInvalidStatusCode is returned by NewHTTPError for codes outside the
// 4xx/5xx catalog.
var ErrInvalidStatusCode = errors.New("invalid http error status code")

// Non-standard status codes used by nginx and some proxies.
const (
	StatusConnectionClosedWithoutResponse = 444
	StatusClientClosedRequest             = 499
	StatusNetworkConnectTimeout           = 599
)

var extraStatusText = map[int]string{
	StatusConnectionClosedWithoutResponse: "Connection Closed Without Response",
	StatusClientClosedRequest:             "Client Closed Request",
	StatusNetworkConnectTimeout:           "Network Connect Timeout Error",
}

// HTTPError represents an HTTP error with status code and translation key.
// The Key field is intended for i18n/l10n - response types can use it
// to look up translated error messages.
type HTTPError struct {
	Code int    // HTTP status code
	Key  string // Translation key (e.g., "not_found", "unauthorized")
}

// Error implements the error interface.
func (e HTTPError) Error() string {
	return e.Key
}

// Message returns the reason phrase of the status code.
func (e HTTPError) Message() string {
	return StatusText(e.Code)
}

// StatusText extends http.StatusText with the non-standard codes above.
func StatusText(code int) string {
	if text, ok := extraStatusText[code]; ok {
		return text
	}
	return http.StatusText(code)
}

// NewHTTPError creates an HTTP error for a 4xx or 5xx status code.
// The key is derived from the reason phrase ("Not Found" -> "not_found").
//
// Example:
//
//	err, _ := handler.NewHTTPError(http.StatusForbidden)
func NewHTTPError(code int) (HTTPError, error) {
	text := StatusText(code)
	if code < 400 || code > 599 || text == "" {
		return HTTPError{}, fmt.Errorf("%w: %d", ErrInvalidStatusCode, code)
	}
	return HTTPError{Code: code, Key: statusKey(text)}, nil
}

// MustHTTPError is like NewHTTPError but panics on an unknown code.
func MustHTTPError(code int) HTTPError {
	e, err := NewHTTPError(code)
	if err != nil {
		panic(err)
	}
	return e
}

func statusKey(text string) string {
	var b strings.Builder
	underscore := false
	for _, r := range strings.ToLower(text) {
		if (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9') {
			b.WriteRune(r)
			underscore = false
			continue
		}
		if !underscore && b.Len() > 0 {
			b.WriteByte('_')
			underscore = true
		}
	}
	return strings.TrimSuffix(b.String(), "_")
}

// 4xx Client Errors
var (
	ErrBadRequest            = MustHTTPError(http.StatusBadRequest)
	ErrUnauthorized          = MustHTTPError(http.StatusUnauthorized)
	ErrForbidden             = MustHTTPError(http.StatusForbidden)
	ErrNotFound              = MustHTTPError(http.StatusNotFound)
	ErrMethodNotAllowed      = MustHTTPError(http.StatusMethodNotAllowed)
	ErrNotAcceptable         = MustHTTPError(http.StatusNotAcceptable)
	ErrRequestTimeout        = MustHTTPError(http.StatusRequestTimeout)
	ErrConflict              = MustHTTPError(http.StatusConflict)
	ErrRequestEntityTooLarge = MustHTTPError(http.StatusRequestEntityTooLarge)
	ErrUnsupportedMediaType  = MustHTTPError(http.StatusUnsupportedMediaType)
	ErrUnprocessableEntity   = MustHTTPError(http.StatusUnprocessableEntity)
	ErrTooManyRequests       = MustHTTPError(http.StatusTooManyRequests)
	ErrClientClosedRequest   = MustHTTPError(StatusClientClosedRequest)
)

// 5xx Server Errors
var (
	ErrInternalServerError = MustHTTPError(http.StatusInternalServerError)
	ErrNotImplemented      = MustHTTPError(http.StatusNotImplemented)
	ErrBadGateway          = MustHTTPError(http.StatusBadGateway)
	ErrServiceUnavailable  = MustHTTPError(http.StatusServiceUnavailable)
	ErrGatewayTimeout      = MustHTTPError(http.StatusGatewayTimeout)
)
