package vanilla

import (
	"embed"
	"io/fs"
)

//go:embed templates/*.tmpl
var embeddedTemplates embed.FS

// StylesheetAssetKey is the go-theme asset key resolved to a stylesheet
// link when a theme is selected.
const StylesheetAssetKey = "geo.stylesheet"

// TemplatesFS exposes the embedded template bundle for consumers that want
// to reuse or extend the built-in page composition.
func TemplatesFS() fs.FS {
	return embeddedTemplates
}
