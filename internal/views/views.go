// Package views renders the small HTML surface of the addon: the configure
// page the user runs once, and the success/error pages the add endpoint
// answers with inside Stremio's external-link browser.
package views

import (
	"embed"
	"html/template"
	"io"
)

//go:embed templates/*.html
var templateFS embed.FS

type Renderer struct {
	templates *template.Template
}

func New() (*Renderer, error) {
	t, err := template.ParseFS(templateFS, "templates/*.html")
	if err != nil {
		return nil, err
	}
	return &Renderer{templates: t}, nil
}

// Configure renders the list-selection / OAuth landing page.
func (r *Renderer) Configure(w io.Writer, baseURL string) error {
	return r.templates.ExecuteTemplate(w, "configure.html", map[string]string{
		"BaseURL": baseURL,
	})
}

// Success renders the confirmation page shown after an item was added.
func (r *Renderer) Success(w io.Writer, listName string) error {
	return r.templates.ExecuteTemplate(w, "success.html", map[string]string{
		"ListName": listName,
	})
}

// Error renders the generic failure page.
func (r *Renderer) Error(w io.Writer) error {
	return r.templates.ExecuteTemplate(w, "error.html", nil)
}
