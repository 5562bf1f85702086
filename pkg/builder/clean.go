package builder

import (
	"html"
	"strings"

	"github.com/goliatone/go-formbuilder/pkg/model"
)

// trimSet mirrors the whitespace historically stripped from submitted values.
const trimSet = " \t\n\r\x00\x0B"

// Clean escapes s for use inside a double-quoted attribute or a text node.
// Entities already present are decoded first, so escaping happens exactly
// once and Clean(Clean(s)) == Clean(s). Surrounding whitespace is trimmed and
// backslashes are kept as typed.
func Clean(s string) string {
	return html.EscapeString(strings.Trim(html.UnescapeString(s), trimSet))
}

func writeName(builder *strings.Builder, name string) {
	if name == "" {
		return
	}
	writeAttribute(builder, "name", name)
}

func writeAttribute(builder *strings.Builder, name, value string) {
	builder.WriteByte(' ')
	builder.WriteString(Clean(name))
	builder.WriteString(`="`)
	builder.WriteString(Clean(value))
	builder.WriteByte('"')
}

func writeAttributes(builder *strings.Builder, attrs *model.Attributes) {
	for name, value := range attrs.All() {
		writeAttribute(builder, name, value)
	}
}
