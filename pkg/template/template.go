package template

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"

	"github.com/dmitrymomot/frostal/handler"
)

// Template is the rendering entry point shared by the application.
type Template struct {
	renderer Renderer
}

// New wraps a renderer. A nil renderer knows no templates.
func New(renderer Renderer) *Template {
	return &Template{renderer: renderer}
}

// Render writes the named template to w.
func (t *Template) Render(ctx context.Context, w io.Writer, name string, data any) error {
	if t == nil || t.renderer == nil {
		return fmt.Errorf("%w: %s", ErrTemplateNotFound, name)
	}
	return t.renderer.Render(ctx, w, name, data)
}

// Response renders the named template as a text/html handler.Response.
// The page is buffered, so a failing template never leaves a half written
// body. A missing template also matches handler.ErrNotFound.
func (t *Template) Response(name string, data any) handler.Response {
	return pageResponse{tmpl: t, name: name, data: data}
}

type pageResponse struct {
	tmpl *Template
	name string
	data any
}

func (p pageResponse) Render(w http.ResponseWriter, r *http.Request) error {
	var buf bytes.Buffer
	if err := p.tmpl.Render(r.Context(), &buf, p.name, p.data); err != nil {
		if errors.Is(err, ErrTemplateNotFound) {
			return fmt.Errorf("%w: %w", handler.ErrNotFound, err)
		}
		return err
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	_, err := buf.WriteTo(w)
	return err
}
