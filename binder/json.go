package binder

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"mime"
	"net/http"
	"strings"
)

// JSON decodes an application/json (or any +json) body into v. With a
// *map[string]any target the decoded keys are merged into the map, so it
// can follow Query() in a binder list.
func JSON() func(r *http.Request, v any) error {
	return func(r *http.Request, v any) error {
		mediaType, err := requestMediaType(r)
		if err != nil {
			return err
		}
		if !isJSON(mediaType) {
			return fmt.Errorf("%w: got %s, expected application/json", ErrUnsupportedMediaType, mediaType)
		}
		return decodeJSON(r.Body, v)
	}
}

func decodeJSON(body io.Reader, v any) error {
	if body == nil {
		return fmt.Errorf("%w: empty body", ErrInvalidJSON)
	}

	dec := json.NewDecoder(body)
	if err := dec.Decode(v); err != nil {
		if errors.Is(err, io.EOF) {
			return fmt.Errorf("%w: empty body", ErrInvalidJSON)
		}
		return errors.Join(ErrInvalidJSON, err)
	}

	var extra json.RawMessage
	if err := dec.Decode(&extra); !errors.Is(err, io.EOF) {
		return fmt.Errorf("%w: unexpected data after JSON value", ErrInvalidJSON)
	}
	return nil
}

func isJSON(mediaType string) bool {
	switch mediaType {
	case "application/json", "text/json", "application/x-json":
		return true
	}
	return strings.HasPrefix(mediaType, "application/") && strings.HasSuffix(mediaType, "+json")
}

func requestMediaType(r *http.Request) (string, error) {
	contentType := r.Header.Get("Content-Type")
	if contentType == "" {
		return "", ErrMissingContentType
	}
	mediaType, _, err := mime.ParseMediaType(contentType)
	if err != nil {
		return "", fmt.Errorf("%w: %s", ErrUnsupportedMediaType, contentType)
	}
	return mediaType, nil
}
