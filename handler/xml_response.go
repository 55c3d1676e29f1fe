package handler

import (
	"encoding/xml"
	"io"
	"net/http"
)

// xmlResponse implements Response for XML rendering
type xmlResponse struct {
	status int
	body   any
}

func (x xmlResponse) Render(w http.ResponseWriter, r *http.Request) error {
	w.Header().Set("Content-Type", "application/xml; charset=utf-8")
	w.WriteHeader(x.status)
	if _, err := io.WriteString(w, xml.Header); err != nil {
		return err
	}
	return xml.NewEncoder(w).Encode(x.body)
}

// XMLOption configures XML response
type XMLOption func(*xmlResponse)

// WithXMLStatus sets custom HTTP status code
func WithXMLStatus(status int) XMLOption {
	return func(r *xmlResponse) {
		r.status = status
	}
}

// XML creates an XML response. The value is encoded with encoding/xml, so
// it must be a type xml.Marshal accepts.
func XML(v any, opts ...XMLOption) Response {
	r := &xmlResponse{
		status: http.StatusOK,
		body:   v,
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// xmlError is the XML document of an error response:
//
//	<error><code>422</code><message>...</message>
//	<errors><field name="email"><message>...</message></field></errors></error>
type xmlError struct {
	XMLName xml.Name        `xml:"error"`
	Code    int             `xml:"code"`
	Message string          `xml:"message"`
	Fields  []xmlErrorField `xml:"errors>field"`
}

type xmlErrorField struct {
	Name     string   `xml:"name,attr"`
	Messages []string `xml:"message"`
}

func newXMLError(info ErrorInfo) xmlError {
	doc := xmlError{
		Code:    info.StatusCode,
		Message: info.Message,
	}
	for _, field := range info.Details.Fields() {
		doc.Fields = append(doc.Fields, xmlErrorField{
			Name:     field,
			Messages: info.Details[field],
		})
	}
	return doc
}
