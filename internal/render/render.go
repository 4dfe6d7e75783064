// Package render writes a profile through a text template.
package render

import (
	"bytes"
	_ "embed"
	"fmt"
	"os"
	"text/template"

	"github.com/naka-gawa/github-profile-stats/internal/domain"
)

//go:embed templates/README.md.tmpl
var defaultTemplate string

// Renderer executes one parsed template.
type Renderer struct {
	tpl *template.Template
}

// New parses text as the profile template.
func New(text string) (*Renderer, error) {
	tpl, err := template.New("profile").Option("missingkey=error").Parse(text)
	if err != nil {
		return nil, fmt.Errorf("failed to parse template: %w", err)
	}
	return &Renderer{tpl: tpl}, nil
}

// Load reads the template at path, or uses the built-in one when path is empty.
func Load(path string) (*Renderer, error) {
	if path == "" {
		return New(defaultTemplate)
	}
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read template: %w", err)
	}
	return New(string(b))
}

// Render returns the document for profile.
func (r *Renderer) Render(profile *domain.Profile) (string, error) {
	buf := new(bytes.Buffer)
	if err := r.tpl.Execute(buf, profile); err != nil {
		return "", fmt.Errorf("failed to render template: %w", err)
	}
	return buf.String(), nil
}

// WriteFile renders profile into path.
func (r *Renderer) WriteFile(path string, profile *domain.Profile) error {
	text, err := r.Render(profile)
	if err != nil {
		return err
	}
	if err := os.WriteFile(path, []byte(text), 0o644); err != nil {
		return fmt.Errorf("failed to write %s: %w", path, err)
	}
	return nil
}
