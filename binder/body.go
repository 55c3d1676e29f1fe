package binder

import (
	"errors"
	"fmt"
	"net/http"
)

// Body picks JSON or Form from the request Content-Type. Requests without
// a body and without a Content-Type return ErrBinderNotApplicable.
func Body() func(r *http.Request, v any) error {
	jsonBinder := JSON()
	formBinder := Form()

	return func(r *http.Request, v any) error {
		mediaType, err := requestMediaType(r)
		if errors.Is(err, ErrMissingContentType) && (r.Body == nil || r.Body == http.NoBody || r.ContentLength == 0) {
			return ErrBinderNotApplicable
		}
		if err != nil {
			return err
		}

		switch {
		case isJSON(mediaType):
			return jsonBinder(r, v)
		case mediaType == "application/x-www-form-urlencoded", mediaType == "multipart/form-data":
			return formBinder(r, v)
		}
		return fmt.Errorf("%w: %s", ErrUnsupportedMediaType, mediaType)
	}
}
