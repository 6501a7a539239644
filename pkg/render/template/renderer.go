// Package template defines the engine contract used by renderers that
// compose output through template files.
package template

// TemplateRenderer renders a named template with the supplied data.
type TemplateRenderer interface {
	RenderTemplate(name string, data map[string]any) (string, error)
}
