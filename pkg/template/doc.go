// Package template renders named pages through a pluggable Renderer.
//
// Two renderers are provided: HTML for html/template files loaded from an
// fs.FS and Templ for compiled templ components.
//
//	r, err := template.NewHTML(os.DirFS("templates"), "*.html")
//	if err != nil {
//		return err
//	}
//	pages := template.New(r)
//	mux.Handle("/", handler.Wrap(func(ctx handler.Context, _ map[string]any) handler.Response {
//		return pages.Response("home", nil)
//	}))
//
// Unknown names fail with ErrTemplateNotFound, which Response turns into a
// 404 for the error handler.
package template
