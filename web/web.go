// Package web embeds the page templates and static assets.
package web

import (
	"embed"
	"html/template"
	"io/fs"
	"strings"
	"time"
)

//go:embed templates/*.html
var templates embed.FS

//go:embed static
var static embed.FS

// Funcs are available to every template.
var Funcs = template.FuncMap{
	"year":  func() int { return time.Now().Year() },
	"lower": strings.ToLower,
}

// Templates parses every page and fragment template.
func Templates() (*template.Template, error) {
	return template.New("").Funcs(Funcs).ParseFS(templates, "templates/*.html")
}

// Static returns the static assets rooted at the static directory.
func Static() fs.FS {
	sub, err := fs.Sub(static, "static")
	if err != nil {
		panic(err)
	}
	return sub
}
