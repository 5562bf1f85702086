package builder

import (
	"strings"

	"github.com/goliatone/go-formbuilder/pkg/model"
)

// Textarea renders a <textarea> whose content is the escaped submitted value
// for name, or empty when nothing was submitted.
func (b *Builder) Textarea(name string, attrs *model.Attributes) string {
	var builder strings.Builder
	builder.WriteString("<textarea")
	writeName(&builder, name)
	writeAttributes(&builder, attrs)
	builder.WriteByte('>')
	if value, ok := b.lookup(name); ok {
		builder.WriteString(Clean(value))
	}
	builder.WriteString("</textarea>\n")
	return builder.String()
}
