package handler

import (
	"net/http"

	"github.com/a-h/templ"
	"github.com/starfederation/datastar-go/datastar"
)

// TemplOption is an alias for datastar's PatchElementOption
type TemplOption = datastar.PatchElementOption

// WithTarget sets the target selector for where the component should be rendered
func WithTarget(selector string) TemplOption {
	return datastar.WithSelector(selector)
}

// WithPatchMode sets how the component should be merged into the DOM
func WithPatchMode(mode datastar.ElementPatchMode) TemplOption {
	return datastar.WithMode(mode)
}

// templResponse renders partial as an SSE patch for DataStar requests and
// full as a text/html page otherwise.
type templResponse struct {
	partial templ.Component
	full    templ.Component
	options []TemplOption
}

func (t templResponse) Render(w http.ResponseWriter, r *http.Request) error {
	if IsDataStar(r) {
		return NewSSE(w, r).PatchElementTempl(t.partial, t.options...)
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	return t.full.Render(r.Context(), w)
}

// Templ creates a response from a templ component. DataStar requests receive
// it as an element patch, honoring WithTarget and WithPatchMode.
//
//	return handler.Templ(views.Toast(msg),
//		handler.WithTarget("#toast-container"),
//		handler.WithPatchMode(handler.PatchPrepend),
//	)
func Templ(component templ.Component, opts ...TemplOption) Response {
	return templResponse{partial: component, full: component, options: opts}
}

// TemplPartial renders only partial for DataStar requests and full for
// regular page loads.
//
//	return handler.TemplPartial(views.SchemeForm(data), views.SchemePage(data),
//		handler.WithTarget("#scheme-form"),
//	)
func TemplPartial(partial, full templ.Component, opts ...TemplOption) Response {
	return templResponse{partial: partial, full: full, options: opts}
}
