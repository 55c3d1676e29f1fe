package template

import (
	"context"
	"errors"
	"fmt"
	"html/template"
	"io"
	"io/fs"
	"path"
	"strings"

	"github.com/a-h/templ"
)

var (
	// ErrTemplateNotFound is returned when no template is registered under a name.
	ErrTemplateNotFound = errors.New("template not found")

	// ErrNoTemplates is returned by NewHTML when the patterns match no file.
	ErrNoTemplates = errors.New("no templates matched")
)

// Renderer writes the named template with data to w.
type Renderer interface {
	Render(ctx context.Context, w io.Writer, name string, data any) error
}

// extensions tried when a name is given without one.
var extensions = []string{".html", ".gohtml", ".tmpl"}

// HTML renders html/template files loaded from a file system.
type HTML struct {
	root *template.Template
}

// NewHTML parses every file matching patterns in fsys. Patterns without a
// match are skipped, at least one must match. Templates are named after their
// base file name; Render also accepts the name without extension.
// Default pattern is "*.html".
func NewHTML(fsys fs.FS, patterns ...string) (*HTML, error) {
	if len(patterns) == 0 {
		patterns = []string{"*.html"}
	}

	// ParseFS rejects patterns without matches, so only matching ones are passed on.
	matched := make([]string, 0, len(patterns))
	for _, pattern := range patterns {
		files, err := fs.Glob(fsys, pattern)
		if err != nil {
			return nil, fmt.Errorf("template: bad pattern %q: %w", pattern, err)
		}
		if len(files) > 0 {
			matched = append(matched, pattern)
		}
	}
	if len(matched) == 0 {
		return nil, fmt.Errorf("%w: %s", ErrNoTemplates, strings.Join(patterns, ", "))
	}

	root, err := template.New("").ParseFS(fsys, matched...)
	if err != nil {
		return nil, fmt.Errorf("template: parse: %w", err)
	}
	return &HTML{root: root}, nil
}

// Render executes the named template.
func (h *HTML) Render(ctx context.Context, w io.Writer, name string, data any) error {
	t := h.lookup(name)
	if t == nil {
		return fmt.Errorf("%w: %s", ErrTemplateNotFound, name)
	}
	return t.Execute(w, data)
}

func (h *HTML) lookup(name string) *template.Template {
	if name == "" || strings.Contains(name, "..") {
		return nil
	}
	if t := h.root.Lookup(name); t != nil {
		return t
	}
	if path.Ext(name) != "" {
		return nil
	}
	for _, ext := range extensions {
		if t := h.root.Lookup(name + ext); t != nil {
			return t
		}
	}
	return nil
}

// Templ renders templ components registered by name.
type Templ struct {
	components map[string]func(data any) templ.Component
}

// NewTempl builds a renderer from component constructors.
//
// Example:
//
//	r := template.NewTempl(map[string]func(any) templ.Component{
//		"home": func(data any) templ.Component { return views.Home(data.(views.HomeData)) },
//	})
func NewTempl(components map[string]func(data any) templ.Component) *Templ {
	t := &Templ{components: make(map[string]func(any) templ.Component, len(components))}
	for name, fn := range components {
		if fn != nil {
			t.components[name] = fn
		}
	}
	return t
}

// Render renders the component registered under name.
func (t *Templ) Render(ctx context.Context, w io.Writer, name string, data any) error {
	fn, ok := t.components[name]
	if !ok {
		return fmt.Errorf("%w: %s", ErrTemplateNotFound, name)
	}
	return fn(data).Render(ctx, w)
}
