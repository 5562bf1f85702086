package formbuilder

import (
	"embed"
	"io/fs"
)

//go:embed templates/*.tpl
var embeddedTemplates embed.FS

// DefaultTemplate is the embedded form layout used by GenerateHTML.
const DefaultTemplate = "form.tpl"

// EmbeddedTemplates exposes the built-in pongo2 templates so callers can
// reuse or extend them.
//
//	engine, _ := pongo.New(b, pongo.WithTemplates(formbuilder.EmbeddedTemplates()))
func EmbeddedTemplates() fs.FS {
	sub, err := fs.Sub(embeddedTemplates, "templates")
	if err != nil {
		return embeddedTemplates
	}
	return sub
}
