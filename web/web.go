// Package web holds the dashboard page template and its icon assets.
package web

import (
	"embed"
	"html/template"
	"io/fs"
)

//go:embed templates/*.html
var templates embed.FS

//go:embed static
var static embed.FS

// Static serves files under /static, e.g. icons/clear.svg.
func Static() fs.FS {
	sub, err := fs.Sub(static, "static")
	if err != nil {
		panic(err)
	}
	return sub
}

// Dashboard parses the page template.
func Dashboard() (*template.Template, error) {
	return template.New("dashboard.html").Funcs(template.FuncMap{
		"iconURL": func(key string) string { return "/static/icons/" + key + ".svg" },
		"deref":   func(b *bool) bool { return b != nil && *b },
	}).ParseFS(templates, "templates/dashboard.html")
}
