package template

import (
	"bytes"
	"fmt"
	"io/fs"
	"strings"
	"text/template"
)

// templateFuncMap provides custom functions available in all templates.
var templateFuncMap = template.FuncMap{
	// upper uppercases a string, used for env variable names derived from
	// service names (e.g. "web-app" -> "WEB_APP").
	"upper": strings.ToUpper,
	// envName converts a kebab-case service name to an env-style identifier.
	"envName": func(s string) string {
		return strings.ToUpper(strings.ReplaceAll(s, "-", "_"))
	},
	// title uppercases the first letter of a string.
	"title": func(s string) string {
		if s == "" {
			return s
		}
		return strings.ToUpper(s[:1]) + s[1:]
	},
}

// Renderer renders Go text/template files with strict mode enabled.
type Renderer interface {
	// Render parses the named template from the backing FS and executes it
	// with the given data. Returns ErrTemplateSyntax on parse failure and
	// ErrMissingTemplateKey when the data lacks a referenced field. Both
	// must propagate to the caller: a broken template stops the scaffold.
	Render(templateName string, data any) ([]byte, error)
}

// renderer is the concrete implementation of Renderer.
type renderer struct {
	fsys fs.FS
}

// NewRenderer creates a Renderer backed by the given filesystem.
func NewRenderer(fsys fs.FS) Renderer {
	return &renderer{fsys: fsys}
}

// Render parses and executes a template with strict mode (missingkey=error).
func (r *renderer) Render(templateName string, data any) ([]byte, error) {
	content, err := fs.ReadFile(r.fsys, templateName)
	if err != nil {
		return nil, fmt.Errorf("%w: %s", ErrTemplateNotFound, templateName)
	}

	tmpl, err := template.New(templateName).
		Funcs(templateFuncMap).
		Option("missingkey=error").
		Parse(string(content))
	if err != nil {
		return nil, fmt.Errorf("%w: %q: %v", ErrTemplateSyntax, templateName, err)
	}

	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, data); err != nil {
		return nil, fmt.Errorf("%w: %q: %v", ErrMissingTemplateKey, templateName, err)
	}

	return buf.Bytes(), nil
}
