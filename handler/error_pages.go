package handler

import (
	"context"
	"html/template"
	"io"

	"github.com/a-h/templ"
)

var errorPageTmpl = template.Must(template.New("error_page").Parse(`<!DOCTYPE html>
<html>
<head>
<meta http-equiv="Content-Type" content="text/html; charset=utf-8">
<title>{{.StatusCode}} - {{.Error}}</title>
<style>
body{background:#eaeaea;font-family:Verdana,sans-serif}
h1{margin:100px auto 0 auto;font-size:10rem;line-height:10rem;font-weight:200;text-align:center}
h2{margin:20px auto 30px auto;font-size:1.5rem;font-weight:200;text-align:center}
ul{max-width:40rem;margin:0 auto}
</style>
</head>
<body>
<h1>{{.StatusCode}}</h1>
<h2>{{.Error}}</h2>
{{- if .Details}}
<ul>
{{- range $field := .Details.Fields}}{{range index $.Details $field}}
<li><strong>{{$field}}</strong>: {{.}}</li>
{{- end}}{{end}}
</ul>
{{- end}}
{{- if .RequestID}}
<p style="text-align:center"><small>Request ID: {{.RequestID}}</small></p>
{{- end}}
</body>
</html>
`))

var errorToastTmpl = template.Must(template.New("error_toast").Parse(
	`<div class="toast toast-{{.Type}}" role="alert">{{.Message}}</div>`,
))

// defaultErrorPage renders a standalone HTML error page.
func defaultErrorPage(params ErrorPageParams) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		return errorPageTmpl.Execute(w, params)
	})
}

func defaultErrorToast(params ErrorToastParams) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		return errorToastTmpl.Execute(w, params)
	})
}
