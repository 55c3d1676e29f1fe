package handler_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/dmitrymomot/frostal/handler"
)

func TestNegotiateErrorFormat(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		accept string
		want   handler.ErrorFormat
	}{
		{"empty header", "", handler.FormatHTML},
		{"wildcard", "*/*", handler.FormatHTML},
		{"json", "application/json", handler.FormatJSON},
		{"text json", "text/json", handler.FormatJSON},
		{"x-json", "application/x-json", handler.FormatJSON},
		{"xml", "application/xml", handler.FormatXML},
		{"text xml", "text/xml", handler.FormatXML},
		{"xhtml", "application/xhtml+xml", handler.FormatHTML},
		{"header order wins over quality", "application/xml;q=0.1, application/json", handler.FormatXML},
		{"unknown types are skipped", "image/png, text/xml", handler.FormatXML},
		{"params are stripped", "application/json; charset=utf-8", handler.FormatJSON},
		{"case insensitive", "Application/JSON", handler.FormatJSON},
		{"q zero is excluded", "application/json;q=0, text/xml", handler.FormatXML},
		{"q zero with decimals", "application/json; q=0.000", handler.FormatHTML},
		{"browser header", "text/html,application/xhtml+xml,application/xml;q=0.9,*/*;q=0.8", handler.FormatHTML},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, handler.NegotiateErrorFormat(tt.accept))
		})
	}
}
