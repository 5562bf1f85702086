package builder

import (
	"strings"

	"github.com/goliatone/go-formbuilder/pkg/model"
)

// Select renders a <select> with one <option> per entry of options.
//
// A non-empty "value" entry in attrs names the option to select and overrides
// both the submitted value and any --selected marker. An empty one is dropped.
// Without an override the option equal to the submitted value is selected;
// when nothing was submitted for name, or the submitted value matches no
// option, the options carrying a --selected marker are. Values are compared
// after Clean, so an entity in an option value matches its decoded posting.
func (b *Builder) Select(name string, options model.Options, attrs *model.Attributes) string {
	attrs = attrs.Clone()
	override, _ := attrs.Delete("value")
	forced := override != ""

	resolved := options.Resolve()
	submittedValue, hasSubmitted := b.lookup(name)
	if hasSubmitted && !forced && !anyOption(resolved, submittedValue) {
		hasSubmitted = false
	}

	var builder strings.Builder
	builder.WriteString("<select")
	writeName(&builder, name)
	writeAttributes(&builder, attrs)
	builder.WriteString(">\n")

	for _, option := range resolved {
		selected := option.Selected
		switch {
		case forced:
			selected = sameValue(option.Value, override)
		case hasSubmitted:
			selected = sameValue(option.Value, submittedValue)
		}

		builder.WriteString(`<option value="`)
		builder.WriteString(Clean(option.Value))
		builder.WriteByte('"')
		if option.Disabled {
			builder.WriteString(` disabled="disabled"`)
		}
		if selected {
			builder.WriteString(` selected="selected"`)
		}
		builder.WriteByte('>')
		builder.WriteString(b.label(option.Label))
		builder.WriteString("</option>\n")
	}

	builder.WriteString("</select>\n")
	return builder.String()
}

// sameValue compares an option value with a posted one as rendered.
func sameValue(optionValue, posted string) bool {
	return Clean(optionValue) == Clean(posted)
}

func anyOption(options []model.Option, posted string) bool {
	for _, option := range options {
		if sameValue(option.Value, posted) {
			return true
		}
	}
	return false
}
