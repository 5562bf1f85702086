package template

import (
	"io"
)

// TemplateRenderer renders named templates or inline template content with
// the field helpers available. Output is returned and, when writers are
// supplied, copied to each of them.
type TemplateRenderer interface {
	RenderTemplate(name string, data map[string]any, out ...io.Writer) (string, error)
	RenderString(templateContent string, data map[string]any, out ...io.Writer) (string, error)
}
