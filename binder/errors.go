package binder

import "errors"

var (
	ErrUnsupportedMediaType = errors.New("unsupported media type")
	ErrInvalidJSON          = errors.New("invalid JSON")
	ErrInvalidForm          = errors.New("invalid form data")
	ErrInvalidQuery         = errors.New("invalid query parameter")
	ErrMissingContentType   = errors.New("missing content type")
	ErrInvalidTarget        = errors.New("binding target must be *map[string]any")

	// ErrBinderNotApplicable tells handler.Wrap to skip a binder for the
	// current request, for example Body() on a request without a body.
	ErrBinderNotApplicable = errors.New("binder not applicable")
)
