// Package view renders the catalog view models with html/template.
package view

import (
	"bytes"
	"embed"
	"fmt"
	"html/template"
	"io"
	"io/fs"
	"path"
	"strings"
)

// ViewError is the generic failure page.
const ViewError = "error"

//go:embed templates/*.tmpl
var templateFS embed.FS

// ErrorView is the model of the error page.
type ErrorView struct {
	Title   string
	Status  int
	Message string
}

// Renderer writes a named view.
type Renderer interface {
	Render(w io.Writer, view string, data any) error
}

// Templates holds one parsed template set per view, each sharing the layout.
type Templates struct {
	views map[string]*template.Template
}

// New parses every embedded view.
func New() (*Templates, error) {
	files, err := fs.Glob(templateFS, "templates/*.tmpl")
	if err != nil {
		return nil, fmt.Errorf("failed to list templates: %w", err)
	}

	t := &Templates{views: make(map[string]*template.Template, len(files))}
	for _, file := range files {
		name := strings.TrimSuffix(path.Base(file), ".tmpl")
		if name == "layout" {
			continue
		}
		tmpl, err := template.New(name).ParseFS(templateFS, "templates/layout.tmpl", file)
		if err != nil {
			return nil, fmt.Errorf("failed to parse view %s: %w", name, err)
		}
		t.views[name] = tmpl
	}
	return t, nil
}

// Render executes view into a buffer first so a failing template never
// leaves a half-written page.
func (t *Templates) Render(w io.Writer, view string, data any) error {
	tmpl, ok := t.views[view]
	if !ok {
		return fmt.Errorf("unknown view %q", view)
	}
	var buf bytes.Buffer
	if err := tmpl.ExecuteTemplate(&buf, "layout", data); err != nil {
		return fmt.Errorf("failed to render %s: %w", view, err)
	}
	_, err := buf.WriteTo(w)
	return err
}
