package web

import (
	"embed"
	"html/template"
)

//go:embed templates/*.html
var templates embed.FS

// Templates parses the embedded HTML pages. Pages are addressed by file name.
func Templates() *template.Template {
	return template.Must(template.ParseFS(templates, "templates/*.html"))
}
