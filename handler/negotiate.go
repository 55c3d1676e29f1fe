package handler

import (
	"strconv"
	"strings"
)

// ErrorFormat is the body format chosen for an error response.
type ErrorFormat string

const (
	FormatHTML ErrorFormat = "html"
	FormatJSON ErrorFormat = "json"
	FormatXML  ErrorFormat = "xml"
)

var errorFormats = map[string]ErrorFormat{
	"text/html":             FormatHTML,
	"application/xhtml+xml": FormatHTML,
	"application/json":      FormatJSON,
	"text/json":             FormatJSON,
	"application/x-json":    FormatJSON,
	"application/xml":       FormatXML,
	"text/xml":              FormatXML,
}

// NegotiateErrorFormat picks the first media type of the Accept header that
// has an error renderer. Media types are taken in header order, quality
// values only matter for excluding q=0 entries. Falls back to HTML.
func NegotiateErrorFormat(accept string) ErrorFormat {
	for entry := range strings.SplitSeq(accept, ",") {
		mediaType, params, _ := strings.Cut(entry, ";")
		mediaType = strings.ToLower(strings.TrimSpace(mediaType))

		format, ok := errorFormats[mediaType]
		if !ok || rejected(params) {
			continue
		}
		return format
	}
	return FormatHTML
}

func rejected(params string) bool {
	for param := range strings.SplitSeq(params, ";") {
		key, value, ok := strings.Cut(param, "=")
		if !ok || !strings.EqualFold(strings.TrimSpace(key), "q") {
			continue
		}
		q, err := strconv.ParseFloat(strings.TrimSpace(value), 64)
		return err == nil && q == 0
	}
	return false
}
