package builder

import (
	"strings"

	"github.com/goliatone/go-formbuilder/pkg/model"
)

// Field renders a whole field description with the builder matching its kind.
// Submit fields use their value attribute, falling back to the label, as the
// button caption. Unknown kinds render as inputs of that type.
func (b *Builder) Field(field model.Field) string {
	switch field.Kind {
	case model.KindSelect:
		return b.Select(field.Name, field.Options, field.Attributes)
	case model.KindTextarea:
		return b.Textarea(field.Name, field.Attributes)
	case model.KindSubmit:
		caption, ok := field.Attributes.Get("value")
		if !ok {
			caption = field.Label
		}
		return b.Submit(caption, field.Attributes)
	default:
		return b.Input(field.Kind, field.Name, field.Attributes)
	}
}

// Fields renders each field in order and concatenates the markup.
func (b *Builder) Fields(fields ...model.Field) string {
	var builder strings.Builder
	for _, field := range fields {
		builder.WriteString(b.Field(field))
	}
	return builder.String()
}
