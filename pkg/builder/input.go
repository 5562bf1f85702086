package builder

import (
	"strings"

	"github.com/goliatone/go-formbuilder/pkg/model"
)

const defaultSubmitLabel = "Submit"

// Input renders an <input> of the given kind. The type attribute comes first,
// then name, then attrs in insertion order. A checkbox submitted as "on" is
// rendered checked. Unless the kind is password or attrs carries a value, the
// submitted value for name is appended as the value attribute.
func (b *Builder) Input(kind model.Kind, name string, attrs *model.Attributes) string {
	if kind == "" {
		kind = model.KindText
	}
	attrs = attrs.Clone()

	submittedValue, hasSubmitted := b.lookup(name)
	if kind == model.KindCheckbox && hasSubmitted && submittedValue == "on" {
		attrs.Set("checked", "checked")
	}

	var builder strings.Builder
	builder.WriteString(`<input type="`)
	builder.WriteString(Clean(string(kind)))
	builder.WriteByte('"')
	writeName(&builder, name)
	writeAttributes(&builder, attrs)

	if hasSubmitted && kind != model.KindPassword && !attrs.Has("value") {
		writeAttribute(&builder, "value", submittedValue)
	}

	builder.WriteString(">\n")
	return builder.String()
}

// Hidden renders a hidden input carrying value. The explicit value always wins
// over a submitted one.
func (b *Builder) Hidden(name, value string) string {
	return b.Input(model.KindHidden, name, model.Attrs("value", value))
}

// Submit renders a nameless submit button. value replaces any value in attrs;
// an empty value renders the default "Submit" label.
func (b *Builder) Submit(value string, attrs *model.Attributes) string {
	if value == "" {
		value = defaultSubmitLabel
	}
	attrs = attrs.Clone()
	attrs.Set("value", value)
	return b.Input(model.KindSubmit, "", attrs)
}

// Text renders a text input.
func (b *Builder) Text(name string, attrs *model.Attributes) string {
	return b.Input(model.KindText, name, attrs)
}

// Password renders a password input. It is never repopulated.
func (b *Builder) Password(name string, attrs *model.Attributes) string {
	return b.Input(model.KindPassword, name, attrs)
}

// Email renders an email input.
func (b *Builder) Email(name string, attrs *model.Attributes) string {
	return b.Input(model.KindEmail, name, attrs)
}

// Checkbox renders a checkbox input.
func (b *Builder) Checkbox(name string, attrs *model.Attributes) string {
	return b.Input(model.KindCheckbox, name, attrs)
}
