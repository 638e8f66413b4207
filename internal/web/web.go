// Package web bundles the HTML templates and static assets into the binary
// and renders pages.
package web

import (
	"embed"
	"fmt"
	"html/template"
	"io"
	"io/fs"
	"net/http"
)

//go:embed templates static
var assets embed.FS

// Renderer executes one of the embedded page templates.
type Renderer struct {
	tmpl *template.Template
}

// NewRenderer parses all embedded templates once at startup.
func NewRenderer() (*Renderer, error) {
	tmpl, err := template.New("").Funcs(template.FuncMap{
		"chl": formatChl,
	}).ParseFS(assets, "templates/*.html")
	if err != nil {
		return nil, fmt.Errorf("web: parse templates: %w", err)
	}
	return &Renderer{tmpl: tmpl}, nil
}

// Render writes the named page. Page names are the template file names
// without extension ("home", "team", ...).
func (r *Renderer) Render(w io.Writer, page string, data interface{}) error {
	return r.tmpl.ExecuteTemplate(w, page+".html", data)
}

// StaticHandler serves the embedded assets under /static/.
func StaticHandler() http.Handler {
	sub, err := fs.Sub(assets, "static")
	if err != nil {
		// The static directory is embedded above; missing it is a build defect.
		panic(err)
	}
	return http.StripPrefix("/static/", http.FileServer(http.FS(sub)))
}

// formatChl renders a nullable chlorophyll value, with an en dash for missing
// retrievals.
func formatChl(v *float64) string {
	if v == nil {
		return "–"
	}
	return fmt.Sprintf("%.2f", *v)
}
